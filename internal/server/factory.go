package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rso-sample-apps/rso-web/internal/config"
	"github.com/rso-sample-apps/rso-web/internal/riot"
	"github.com/rso-sample-apps/rso-web/internal/rso"
	"github.com/rso-sample-apps/rso-web/internal/store"
)

func New(conf *config.Config) *http.Server {
	rsoClient := rso.NewClient(conf)
	riotClient := riot.NewClient(conf)
	handoff := store.NewMemoryStore()
	api := newAPI(conf, rsoClient, riotClient, handoff)
	return newServer(conf, api, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}
