// FILE: lixenwraith/promconf/example/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/promconf"
)

// fakeIndexDocs stands in for cluster index stats so the demo runs without
// a live cluster behind it.
var fakeIndexDocs = map[string]float64{
	"logs-2026.08.24": 182331,
	"logs-2026.08.25": 97210,
	"metrics-rollup":  40112,
	"audit":           5523,
}

// clusterCollector simulates the exporter's collection pass. It consults
// the live settings on every scrape, so updates take effect on the next
// /metrics request without a restart.
type clusterCollector struct {
	settings *promconf.Settings

	up           *prometheus.Desc
	indexDocs    *prometheus.Desc
	maxShards    *prometheus.Desc
	filterOption *prometheus.Desc
}

func newClusterCollector(settings *promconf.Settings) *clusterCollector {
	return &clusterCollector{
		settings: settings,
		up: prometheus.NewDesc("demo_cluster_up",
			"Whether the demo cluster is reachable.", nil, nil),
		indexDocs: prometheus.NewDesc("demo_index_docs",
			"Document count per index.", []string{"index"}, nil),
		maxShards: prometheus.NewDesc("demo_cluster_max_shards_per_node",
			"A cluster settings metric, exported only when enabled.", nil, nil),
		filterOption: prometheus.NewDesc("demo_index_filter_option",
			"Numeric id of the active index filter option.", nil, nil),
	}
}

func (c *clusterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.up
	ch <- c.indexDocs
	ch <- c.maxShards
	ch <- c.filterOption
}

func (c *clusterCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1)

	if c.settings.ClusterSettings() {
		ch <- prometheus.MustNewConstMetric(c.maxShards, prometheus.GaugeValue, 1000)
	}

	if c.settings.Indices() {
		ch <- prometheus.MustNewConstMetric(c.filterOption, prometheus.GaugeValue,
			float64(c.settings.SelectedOption()))
		for _, index := range selectedIndices(c.settings) {
			ch <- prometheus.MustNewConstMetric(c.indexDocs, prometheus.GaugeValue,
				fakeIndexDocs[index], index)
		}
	}
}

// selectedIndices applies the selected indices filter; an empty filter
// means all indices.
func selectedIndices(settings *promconf.Settings) []string {
	selected := settings.SelectedIndices()
	if len(selected) == 0 {
		all := make([]string, 0, len(fakeIndexDocs))
		for index := range fakeIndexDocs {
			all = append(all, index)
		}
		return all
	}
	var known []string
	for _, index := range selected {
		if _, ok := fakeIndexDocs[index]; ok {
			known = append(known, index)
		}
	}
	return known
}

// handleSettings serves the admin surface: GET returns the current values,
// POST applies a batch of raw string updates.
func handleSettings(settings *promconf.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(settings.Registry().Snapshot())

		case http.MethodPost:
			var updates map[string]string
			if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
				http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
				return
			}
			if err := settings.UpdateBatch(updates); err != nil {
				// The error text carries the allowed values for enum settings
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusNoContent)

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func main() {
	// Optional .env file for local runs, real deployments set env directly
	_ = godotenv.Load()

	settings, err := promconf.NewBuilder().
		WithEnvPrefix("EXPORTER_").
		WithFileDiscovery(promconf.DefaultDiscoveryOptions("exporter")).
		Build()
	if err != nil {
		if errors.Is(err, promconf.ErrConfigNotFound) {
			log.Println("No config file found, running on defaults and environment")
		} else {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	log.Printf("Exporting indices=%t cluster_settings=%t nodes_filter=%q option=%s",
		settings.Indices(), settings.ClusterSettings(),
		settings.NodesFilter(), settings.SelectedOption())

	// Log every accepted settings change
	changes := settings.Registry().Watch()
	defer settings.Registry().Unwatch(changes)
	go func() {
		for change := range changes {
			log.Printf("Setting changed: %s = %v (was %v)", change.Key, change.New, change.Old)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(newClusterCollector(settings))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/settings", handleSettings(settings))

	server := &http.Server{Addr: ":9114", Handler: mux}
	go func() {
		log.Println("Serving metrics on http://localhost:9114/metrics")
		log.Println("Update settings with: curl -X POST localhost:9114/settings -d '{\"prometheus.indices\":\"false\"}'")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
