package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
)

func TestServer(t *testing.T) {
	t.Run("health endpoints", func(t *testing.T) {
		g := NewWithT(t)

		apiCalled := false
		api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiCalled = true
			w.WriteHeader(http.StatusOK)
		})

		conf := testConfig(g, "https://auth.example.com", "https://americas.example.com", "https://na1.example.com")

		registry := prometheus.NewRegistry()
		server := newServer(conf, api, registry, registry)

		for _, path := range []string{"/readyz", "/healthz"} {
			t.Run(path, func(t *testing.T) {
				apiCalled = false
				req := httptest.NewRequest(http.MethodGet, path, nil)
				rec := httptest.NewRecorder()

				server.Handler.ServeHTTP(rec, req)

				g.Expect(rec.Code).To(Equal(http.StatusOK))
				g.Expect(apiCalled).To(BeFalse())
			})
		}
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		g := NewWithT(t)

		api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		conf := testConfig(g, "https://auth.example.com", "https://americas.example.com", "https://na1.example.com")

		registry := prometheus.NewRegistry()
		server := newServer(conf, api, registry, registry)

		// Generate one observation so the summary shows up.
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		server.Handler.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		g.Expect(rec.Code).To(Equal(http.StatusOK))
		g.Expect(rec.Body.String()).To(ContainSubstring("http_request_duration_seconds"))
	})

	t.Run("API routing", func(t *testing.T) {
		g := NewWithT(t)

		apiCalled := false
		api := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiCalled = true
			w.WriteHeader(http.StatusTeapot)
		})

		conf := testConfig(g, "https://auth.example.com", "https://americas.example.com", "https://na1.example.com")

		registry := prometheus.NewRegistry()
		server := newServer(conf, api, registry, registry)

		req := httptest.NewRequest(http.MethodGet, "/show-data/", nil)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		g.Expect(rec.Code).To(Equal(http.StatusTeapot))
		g.Expect(apiCalled).To(BeTrue())
	})

	t.Run("listen address from configuration", func(t *testing.T) {
		g := NewWithT(t)

		conf := testConfig(g, "https://auth.example.com", "https://americas.example.com", "https://na1.example.com")
		conf.Server.Addr = ":9999"

		registry := prometheus.NewRegistry()
		server := newServer(conf, http.NotFoundHandler(), registry, registry)

		g.Expect(server.Addr).To(Equal(":9999"))
	})
}

func TestFactory(t *testing.T) {
	g := NewWithT(t)

	conf := testConfig(g, "https://auth.example.com", "https://americas.example.com", "https://na1.example.com")

	// The default prometheus registerer is process-global; a second New
	// would panic on duplicate registration, so only the wiring is checked.
	server := New(conf)

	g.Expect(server).NotTo(BeNil())
	g.Expect(server.Addr).To(Equal(":3000"))
	g.Expect(server.Handler).NotTo(BeNil())
}
