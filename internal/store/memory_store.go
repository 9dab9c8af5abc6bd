package store

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

const (
	handoffTimeout = 2 * time.Minute

	memoryStoreMaxEntries = 10000
	payloadMaxSize        = 10000 // in bytes
)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

type memoryStore struct {
	maxEntries    int
	entries       map[string]*entry
	evictionQueue []string
	mu            sync.Mutex

	generateKey func() ([32]byte, error)
}

func NewMemoryStore() *memoryStore {
	return &memoryStore{
		maxEntries: memoryStoreMaxEntries,
		entries:    make(map[string]*entry),
	}
}

func (m *memoryStore) Put(payload []byte) (string, error) {
	if len(payload) > payloadMaxSize {
		return "", fmt.Errorf("payload size exceeds maximum of %d bytes: %d", payloadMaxSize, len(payload))
	}

	m.mu.Lock()
	defer func() { m.collectGarbage(); m.mu.Unlock() }()

	for {
		generateKey := generateHandoffKey
		if m.generateKey != nil {
			generateKey = m.generateKey
		}
		keyBytes, err := generateKey()
		if err != nil {
			return "", fmt.Errorf("failed to generate handoff key: %w", err)
		}
		key := base64.RawURLEncoding.EncodeToString(keyBytes[:])
		if _, ok := m.entries[key]; ok {
			continue
		}

		// Enforce maximum size.
		for len(m.entries) >= m.maxEntries {
			oldest := m.evictionQueue[0]
			m.evictionQueue = m.evictionQueue[1:]
			delete(m.entries, oldest)
		}

		m.entries[key] = &entry{
			payload:   payload,
			expiresAt: time.Now().Add(handoffTimeout),
		}
		m.evictionQueue = append(m.evictionQueue, key)
		return key, nil
	}
}

// Get retrieves and deletes a payload. Keys are single-use.
func (m *memoryStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	e, ok := m.entries[key]
	delete(m.entries, key)
	m.collectGarbage()
	m.mu.Unlock()

	if !ok || e.expiresAt.Before(time.Now()) {
		return nil, false
	}
	return e.payload, true
}

func (m *memoryStore) collectGarbage() {
	var evictionQueue []string
	for _, key := range m.evictionQueue {
		e, ok := m.entries[key]
		if !ok {
			continue
		}
		if time.Now().Before(e.expiresAt) {
			evictionQueue = append(evictionQueue, key)
		} else {
			delete(m.entries, key)
		}
	}
	m.evictionQueue = evictionQueue
}

// generateHandoffKey draws a random 32-byte key, unguessable enough to
// double as an authorization-code-like credential.
func generateHandoffKey() ([32]byte, error) {
	var b [32]byte
	_, err := rand.Read(b[:])
	return b, err
}
