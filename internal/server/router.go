// Package server exposes the create-lead function over plain HTTP for local
// runs and container deployments.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	CreateLeadPath        = "/create-lead"
	NetlifyCreateLeadPath = "/.netlify/functions/create-lead"
	HealthPath            = "/healthz"
	MetricsPath           = "/metrics"
)

type RouterOptions struct {
	Version string
	// Gatherer defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewRouter mounts createLead on both the plain and the Netlify-style path.
func NewRouter(createLead http.Handler, opts RouterOptions) *http.ServeMux {
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()
	mux.Handle(CreateLeadPath, createLead)
	mux.Handle(NetlifyCreateLeadPath, createLead)
	mux.Handle(MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"version": opts.Version,
		})
	})
	return mux
}
