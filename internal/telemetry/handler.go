package telemetry

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sportsbot/statcache/internal/cache"
)

// Handler returns the polling surface a dashboard or scraper points at:
// GET /metrics serves the Prometheus exposition, GET /stats serves the raw
// snapshot as indented JSON. The host application mounts it wherever its
// operational endpoints live.
func Handler(c *cache.Cache, namespace string) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewCollector(c, namespace)); err != nil {
		return nil, fmt.Errorf("registering cache collector: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
		data, err := json.MarshalIndent(c.Stats(), "", "  ")
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
	return mux, nil
}
