// File: lixenwraith/promconf/settings.go
package promconf

import (
	"fmt"
	"sync/atomic"
)

// Setting keys for the Prometheus exporter.
const (
	KeyClusterSettings    = "prometheus.cluster.settings"
	KeyIndices            = "prometheus.indices"
	KeyNodesFilter        = "prometheus.nodes.filter"
	KeySelectedIndices    = "prometheus.indices_filter.selected_indices"
	KeySelectedOption     = "prometheus.indices_filter.selected_option"
	KeyOptionsDescription = "prometheus.indices_filter.options_description"
)

// Settings is the exporter's live view of its configuration. Getters read
// cached atomic fields, so they are safe to call from collection hot paths
// at any rate. The cache is kept current by per-key update handlers on the
// underlying registry.
type Settings struct {
	reg *Registry

	clusterSettings atomic.Bool
	indices         atomic.Bool
	nodesFilter     atomic.Value // string
	selectedIndices atomic.Value // string, raw comma-separated form
	selectedOption  atomic.Uint32

	optionsDescription []string
}

// New registers the exporter settings, initializes them from the source,
// and wires the live cache. A nil source yields all defaults. A source
// carrying an invalid value fails construction.
func New(src Source) (*Settings, error) {
	reg := NewRegistry()
	err := reg.Register(
		BoolSetting(KeyClusterSettings, true, true),
		BoolSetting(KeyIndices, true, true),
		StringSetting(KeyNodesFilter, "_local", true),
		StringSetting(KeySelectedIndices, "", true),
		EnumSetting(KeySelectedOption, DefaultIndexFilterOption, true),
		StringListSetting(KeyOptionsDescription, OptionDescriptions()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register settings: %w", err)
	}
	if err := reg.Initialize(src); err != nil {
		return nil, err
	}

	s := &Settings{reg: reg}

	desc, err := reg.StringSlice(KeyOptionsDescription)
	if err != nil {
		return nil, err
	}
	s.optionsDescription = desc

	wiring := []struct {
		key     string
		handler func(any)
	}{
		{KeyClusterSettings, func(v any) { s.clusterSettings.Store(v.(bool)) }},
		{KeyIndices, func(v any) { s.indices.Store(v.(bool)) }},
		{KeyNodesFilter, func(v any) { s.nodesFilter.Store(v.(string)) }},
		{KeySelectedIndices, func(v any) { s.selectedIndices.Store(v.(string)) }},
		{KeySelectedOption, func(v any) { s.selectedOption.Store(uint32(v.(IndexFilterOption))) }},
	}
	for _, w := range wiring {
		current, _ := reg.Get(w.key)
		w.handler(current)
		if err := reg.Subscribe(w.key, w.handler); err != nil {
			return nil, fmt.Errorf("failed to subscribe to %s: %w", w.key, err)
		}
	}
	return s, nil
}

// ClusterSettings reports whether cluster settings metrics are exported.
func (s *Settings) ClusterSettings() bool {
	return s.clusterSettings.Load()
}

// Indices reports whether index level metrics are exported.
func (s *Settings) Indices() bool {
	return s.indices.Load()
}

// NodesFilter returns the node filter the exporter scopes its node
// statistics requests to.
func (s *Settings) NodesFilter() string {
	return s.nodesFilter.Load().(string)
}

// SelectedIndicesRaw returns the selected indices setting as stored, a
// comma-separated string.
func (s *Settings) SelectedIndicesRaw() string {
	return s.selectedIndices.Load().(string)
}

// SelectedIndices returns the selected index names. Empty entries from
// stray commas are dropped; an unset filter yields an empty slice.
func (s *Settings) SelectedIndices() []string {
	return splitList(s.SelectedIndicesRaw())
}

// SelectedOption returns the active index filter option.
func (s *Settings) SelectedOption() IndexFilterOption {
	return IndexFilterOption(s.selectedOption.Load())
}

// IndicesOptions returns the index name resolution policy for the active
// filter option.
func (s *Settings) IndicesOptions() IndicesOptions {
	return s.SelectedOption().IndicesOptions()
}

// OptionsDescription returns the human-readable description of every index
// filter option. The list is static and the returned slice is a copy.
func (s *Settings) OptionsDescription() []string {
	out := make([]string, len(s.optionsDescription))
	copy(out, s.optionsDescription)
	return out
}

// Update applies a new raw value to one dynamic setting. See
// Registry.Update for validation and visibility semantics.
func (s *Settings) Update(key, raw string) error {
	return s.reg.Update(key, raw)
}

// UpdateBatch applies several raw values, validating all before applying
// any. See Registry.UpdateBatch.
func (s *Settings) UpdateBatch(values map[string]string) error {
	return s.reg.UpdateBatch(values)
}

// Registry exposes the underlying settings registry for snapshots, watch
// channels, and generic access.
func (s *Settings) Registry() *Registry {
	return s.reg
}
