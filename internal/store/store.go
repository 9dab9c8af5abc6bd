// Package store holds token sets server-side for the optional session
// handoff mode, keyed by single-use random codes.
package store

type Store interface {
	Put(payload []byte) (string, error)
	Get(key string) ([]byte, bool)
}
