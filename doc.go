// File: lixenwraith/promconf/doc.go

// Package promconf provides live-updatable settings for a Prometheus
// metrics exporter running inside a clustered host, with initial values
// loaded from TOML, JSON, or YAML files, environment variables, and
// command-line arguments.
//
// Features:
//   - Typed setting definitions (bool, string, enum, string list) with defaults
//   - Lock-free reads on collection hot paths via atomic value caches
//   - Per-key serialized live updates with validate-before-apply semantics
//   - One update handler per dynamic setting, notified after each change
//   - Index filter options with a total name resolution policy table
//   - Multiple sources with fixed precedence and a builder for wiring them
//   - Change watch channels for observing accepted updates
//
// Quick Start:
//
//	settings, err := promconf.Quick("EXPORTER_", "exporter.toml")
//	if err != nil && !errors.Is(err, promconf.ErrConfigNotFound) {
//	    log.Fatal(err)
//	}
//
//	if settings.Indices() {
//	    opts := settings.IndicesOptions()
//	    _ = opts // scope the index stats request
//	}
//
// Live updates arrive as raw strings, typically relayed from a cluster
// settings endpoint:
//
//	err = settings.Update(promconf.KeySelectedOption, "STRICT_EXPAND_OPEN")
//
// A rejected value never disturbs the current one, and an accepted value is
// visible to every reader before its update handler runs.
//
// Source Precedence (highest to lowest):
//  1. Command-line arguments (--prometheus.indices=false)
//  2. Environment variables (EXPORTER_PROMETHEUS_INDICES=false)
//  3. Configuration file (exporter.toml)
//  4. Default values
//
// Thread Safety:
// All operations are thread-safe. Getters never block; updates to the same
// key are serialized while updates to different keys proceed independently.
package promconf
