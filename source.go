// FILE: lixenwraith/promconf/source.go
package promconf

import (
	"fmt"
	"os"
	"strings"
)

// Source supplies raw string values for setting keys. Lookup reports
// whether the source carries a value for the key; absent keys fall back to
// the setting default.
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource is an in-memory source, convenient for tests and for wiring
// values computed elsewhere.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

// EnvTransformFunc converts a setting key to an environment variable name
type EnvTransformFunc func(key string) string

// defaultEnvTransform creates the default environment variable transformer
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(key string) string {
		env := strings.ReplaceAll(key, ".", "_")
		env = strings.ToUpper(env)
		if prefix != "" {
			env = prefix + env
		}
		return env
	}
}

// EnvSource reads setting values from environment variables.
//
// Prefix is prepended to variable names, so with prefix "EXPORTER_" the key
// "prometheus.indices" maps to "EXPORTER_PROMETHEUS_INDICES". Transform
// overrides the key-to-variable mapping; if nil, the default transformation
// applies (dots to underscores, uppercase, prefix).
type EnvSource struct {
	Prefix    string
	Transform EnvTransformFunc
}

func (s EnvSource) Lookup(key string) (string, bool) {
	transform := s.Transform
	if transform == nil {
		transform = defaultEnvTransform(s.Prefix)
	}
	return os.LookupEnv(transform(key))
}

// ArgsSource parses command-line arguments into a source. It accepts
// "--key=value", "--key value", and bare "--key" as a boolean true flag.
// Non-flag arguments are skipped.
func ArgsSource(args []string) (Source, error) {
	parsed, err := parseArgs(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCLIParse, err)
	}
	return MapSource(parsed), nil
}

// parseArgs processes command-line arguments into a flat key-value map.
func parseArgs(args []string) (map[string]string, error) {
	result := make(map[string]string)
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			// Skip non-flag arguments
			i++
			continue
		}

		argContent := strings.TrimPrefix(arg, "--")
		if argContent == "" {
			// Skip "--" argument if used as a separator
			i++
			continue
		}

		var keyPath string
		var valueStr string

		// Check for "--key=value" format
		if strings.Contains(argContent, "=") {
			parts := strings.SplitN(argContent, "=", 2)
			keyPath = parts[0]
			valueStr = parts[1]
			i++ // Consume only this argument
		} else {
			// Handle "--key value" or "--booleanflag"
			keyPath = argContent
			// Check if it's a boolean flag (next arg is another flag or end of args)
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				valueStr = "true"
				i++ // Consume only the flag argument
			} else {
				// It's a key-value pair with a space
				valueStr = args[i+1]
				i += 2 // Consume both flag and value arguments
			}
		}

		if keyPath == "" {
			// Skip invalid flags like --=value
			continue
		}

		// Validate keyPath segments
		for _, segment := range strings.Split(keyPath, ".") {
			if !isValidKeySegment(segment) {
				return nil, fmt.Errorf("invalid command-line key segment %q in flag %q", segment, keyPath)
			}
		}

		result[keyPath] = valueStr
	}

	return result, nil
}

// Layered combines sources with first-match-wins precedence: the first
// source that carries a key supplies its value. Nil sources are skipped.
func Layered(sources ...Source) Source {
	layered := make(layeredSource, 0, len(sources))
	for _, src := range sources {
		if src != nil {
			layered = append(layered, src)
		}
	}
	return layered
}

type layeredSource []Source

func (l layeredSource) Lookup(key string) (string, bool) {
	for _, src := range l {
		if value, ok := src.Lookup(key); ok {
			return value, ok
		}
	}
	return "", false
}

// DiscoverEnv finds all environment variables matching registered keys
// and returns a map of key -> env var name for found variables
func (r *Registry) DiscoverEnv(prefix string) map[string]string {
	transform := defaultEnvTransform(prefix)

	discovered := make(map[string]string)
	for _, key := range r.Keys() {
		envVar := transform(key)
		if _, exists := os.LookupEnv(envVar); exists {
			discovered[key] = envVar
		}
	}
	return discovered
}
