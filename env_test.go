// FILE: lixenwraith/promconf/env_test.go
package promconf_test

import (
	"os"
	"testing"

	"github.com/lixenwraith/promconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentVariables(t *testing.T) {
	t.Run("Basic Environment Loading", func(t *testing.T) {
		// Set up environment
		envVars := map[string]string{
			"EXPORTER_PROMETHEUS_INDICES":                         "false",
			"EXPORTER_PROMETHEUS_NODES_FILTER":                    "ingest-*",
			"EXPORTER_PROMETHEUS_INDICES_FILTER_SELECTED_INDICES": "logs-*,metrics-*",
		}
		for k, v := range envVars {
			os.Setenv(k, v)
			defer os.Unsetenv(k)
		}

		s, err := promconf.New(promconf.EnvSource{Prefix: "EXPORTER_"})
		require.NoError(t, err)

		assert.False(t, s.Indices())
		assert.Equal(t, "ingest-*", s.NodesFilter())
		assert.Equal(t, []string{"logs-*", "metrics-*"}, s.SelectedIndices())

		// Keys without a matching variable keep their defaults
		assert.True(t, s.ClusterSettings())
		assert.Equal(t, promconf.DefaultIndexFilterOption, s.SelectedOption())
	})

	t.Run("Custom Environment Transform", func(t *testing.T) {
		os.Setenv("FILTER_OPTION", "LENIENT_EXPAND_OPEN")
		os.Setenv("NODE_SELECTOR", "data-*")
		defer func() {
			os.Unsetenv("FILTER_OPTION")
			os.Unsetenv("NODE_SELECTOR")
		}()

		src := promconf.EnvSource{
			Transform: func(key string) string {
				mapping := map[string]string{
					promconf.KeySelectedOption: "FILTER_OPTION",
					promconf.KeyNodesFilter:    "NODE_SELECTOR",
				}
				return mapping[key]
			},
		}

		s, err := promconf.New(src)
		require.NoError(t, err)

		assert.Equal(t, promconf.LenientExpandOpen, s.SelectedOption())
		assert.Equal(t, "data-*", s.NodesFilter())

		// Keys outside the mapping fall back to defaults
		assert.True(t, s.Indices())
	})

	t.Run("Prefix Isolation", func(t *testing.T) {
		// A variable without the prefix must not be picked up
		os.Setenv("PROMETHEUS_INDICES", "false")
		defer os.Unsetenv("PROMETHEUS_INDICES")

		s, err := promconf.New(promconf.EnvSource{Prefix: "EXPORTER_"})
		require.NoError(t, err)

		assert.True(t, s.Indices())
	})

	t.Run("Empty Value Is Honored", func(t *testing.T) {
		// Set-but-empty differs from unset
		os.Setenv("EXPORTER_PROMETHEUS_NODES_FILTER", "")
		defer os.Unsetenv("EXPORTER_PROMETHEUS_NODES_FILTER")

		s, err := promconf.New(promconf.EnvSource{Prefix: "EXPORTER_"})
		require.NoError(t, err)

		assert.Equal(t, "", s.NodesFilter())
	})

	t.Run("Environment Discovery", func(t *testing.T) {
		// Set up various env vars
		envVars := map[string]string{
			"APP_PROMETHEUS_INDICES":      "false",
			"APP_PROMETHEUS_NODES_FILTER": "coordinating-*",
			"APP_UNREGISTERED":            "ignored",
		}
		for k, v := range envVars {
			os.Setenv(k, v)
			defer os.Unsetenv(k)
		}

		s, err := promconf.New(nil)
		require.NoError(t, err)

		// Discover which registered keys have env vars
		discovered := s.Registry().DiscoverEnv("APP_")

		// Should find 2 env vars
		assert.Len(t, discovered, 2)
		assert.Equal(t, "APP_PROMETHEUS_INDICES", discovered[promconf.KeyIndices])
		assert.Equal(t, "APP_PROMETHEUS_NODES_FILTER", discovered[promconf.KeyNodesFilter])
		assert.NotContains(t, discovered, promconf.KeyClusterSettings)
	})

	t.Run("Invalid Environment Value", func(t *testing.T) {
		os.Setenv("EXPORTER_PROMETHEUS_INDICES", "maybe")
		defer os.Unsetenv("EXPORTER_PROMETHEUS_INDICES")

		s, err := promconf.New(promconf.EnvSource{Prefix: "EXPORTER_"})
		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, promconf.ErrInvalidValue)
		assert.Contains(t, err.Error(), promconf.KeyIndices)
	})
}
