// FILE: lixenwraith/promconf/loader_test.go
package promconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileSource tests config file loading across formats
func TestFileSource(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("ValidTOMLFile", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "exporter.toml")
		content := `
# Exporter configuration
[prometheus]
indices = false

[prometheus.cluster]
settings = false

[prometheus.nodes]
filter = "master-*"

[prometheus.indices_filter]
selected_indices = ["logs-*", "metrics-*"]
selected_option = "LENIENT_EXPAND_OPEN"
`
		os.WriteFile(configFile, []byte(content), 0644)

		src, err := FileSource(configFile)
		require.NoError(t, err)

		// Nested tables flatten to dotted keys, scalars stringify
		value, ok := src.Lookup("prometheus.indices")
		require.True(t, ok)
		assert.Equal(t, "false", value)

		value, ok = src.Lookup("prometheus.cluster.settings")
		require.True(t, ok)
		assert.Equal(t, "false", value)

		value, ok = src.Lookup("prometheus.nodes.filter")
		require.True(t, ok)
		assert.Equal(t, "master-*", value)

		// Arrays become comma-separated lists
		value, ok = src.Lookup("prometheus.indices_filter.selected_indices")
		require.True(t, ok)
		assert.Equal(t, "logs-*,metrics-*", value)

		// The same file drives the settings end to end
		s, err := New(src)
		require.NoError(t, err)
		assert.False(t, s.Indices())
		assert.False(t, s.ClusterSettings())
		assert.Equal(t, "master-*", s.NodesFilter())
		assert.Equal(t, []string{"logs-*", "metrics-*"}, s.SelectedIndices())
		assert.Equal(t, LenientExpandOpen, s.SelectedOption())
	})

	t.Run("ValidJSONFile", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "exporter.json")
		content := `{
  "prometheus": {
    "indices": false,
    "nodes": {"filter": "data-*"}
  },
  "exporter": {"port": 9114}
}`
		os.WriteFile(configFile, []byte(content), 0644)

		src, err := FileSource(configFile)
		require.NoError(t, err)

		value, ok := src.Lookup("prometheus.indices")
		require.True(t, ok)
		assert.Equal(t, "false", value)

		value, ok = src.Lookup("prometheus.nodes.filter")
		require.True(t, ok)
		assert.Equal(t, "data-*", value)

		// Numbers keep their literal form
		value, ok = src.Lookup("exporter.port")
		require.True(t, ok)
		assert.Equal(t, "9114", value)
	})

	t.Run("ValidYAMLFile", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "exporter.yaml")
		content := `
prometheus:
  indices: true
  nodes:
    filter: coordinating-*
  indices_filter:
    selected_indices:
      - logs-*
      - traces-*
    selected_option: STRICT_EXPAND_OPEN
`
		os.WriteFile(configFile, []byte(content), 0644)

		src, err := FileSource(configFile)
		require.NoError(t, err)

		value, ok := src.Lookup("prometheus.nodes.filter")
		require.True(t, ok)
		assert.Equal(t, "coordinating-*", value)

		value, ok = src.Lookup("prometheus.indices_filter.selected_indices")
		require.True(t, ok)
		assert.Equal(t, "logs-*,traces-*", value)

		s, err := New(src)
		require.NoError(t, err)
		assert.Equal(t, StrictExpandOpen, s.SelectedOption())
	})

	t.Run("EmptyArrayBecomesEmptyList", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "empty-list.toml")
		os.WriteFile(configFile, []byte(`
[prometheus.indices_filter]
selected_indices = []
`), 0644)

		src, err := FileSource(configFile)
		require.NoError(t, err)

		value, ok := src.Lookup("prometheus.indices_filter.selected_indices")
		require.True(t, ok)
		assert.Equal(t, "", value)
	})

	t.Run("InvalidTOMLFile", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "invalid.toml")
		os.WriteFile(configFile, []byte(`invalid = toml content`), 0644)

		_, err := FileSource(configFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse TOML")
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := FileSource("/non/existent/exporter.toml")
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("ContentDetectionForConfExtension", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "exporter.conf")
		os.WriteFile(configFile, []byte(`{"prometheus": {"indices": false}}`), 0644)

		src, err := FileSource(configFile)
		require.NoError(t, err)

		value, ok := src.Lookup("prometheus.indices")
		require.True(t, ok)
		assert.Equal(t, "false", value)
	})

	t.Run("ContentDetectionYAML", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "settings.conf")
		os.WriteFile(configFile, []byte("prometheus:\n  nodes:\n    filter: _all\n"), 0644)

		src, err := FileSource(configFile)
		require.NoError(t, err)

		value, ok := src.Lookup("prometheus.nodes.filter")
		require.True(t, ok)
		assert.Equal(t, "_all", value)
	})

	t.Run("UndetectableFormat", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "garbage.conf")
		os.WriteFile(configFile, []byte{0x00, 0x01, 0x02, 0xff}, 0644)

		_, err := FileSource(configFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unable to determine config format")
	})

	t.Run("UnregisteredKeysIgnored", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "extra.toml")
		os.WriteFile(configFile, []byte(`
[prometheus]
indices = false

[unrelated]
knob = "ignored"
`), 0644)

		src, err := FileSource(configFile)
		require.NoError(t, err)

		// Initialization only consumes registered keys
		s, err := New(src)
		require.NoError(t, err)
		assert.False(t, s.Indices())
		_, ok := s.Registry().Get("unrelated.knob")
		assert.False(t, ok)
	})

	t.Run("InvalidFileValueAbortsStartup", func(t *testing.T) {
		configFile := filepath.Join(tmpDir, "bad-value.toml")
		os.WriteFile(configFile, []byte(`
[prometheus.indices_filter]
selected_option = "EXPAND_EVERYTHING"
`), 0644)

		src, err := FileSource(configFile)
		require.NoError(t, err)

		_, err = New(src)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.Contains(t, err.Error(), KeySelectedOption)
	})
}
