// File: lixenwraith/promconf/convenience.go
package promconf

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// Quick creates fully loaded Settings with a single call
// This is the recommended way to initialize the exporter configuration for most applications
func Quick(envPrefix, configFile string) (*Settings, error) {
	return NewBuilder().
		WithEnvPrefix(envPrefix).
		WithFile(configFile).
		Build()
}

// MustQuick is like Quick but panics on error. A missing config file is not
// treated as an error; the exporter runs on defaults and env vars.
func MustQuick(envPrefix, configFile string) *Settings {
	s, err := Quick(envPrefix, configFile)
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		panic(fmt.Sprintf("settings initialization failed: %v", err))
	}
	return s
}

// NewDefault creates Settings holding every default value, untouched by any
// source.
func NewDefault() *Settings {
	return MustNew(nil)
}

// MustNew is like New but panics on error
func MustNew(src Source) *Settings {
	s, err := New(src)
	if err != nil {
		panic(fmt.Sprintf("settings initialization failed: %v", err))
	}
	return s
}

// GenerateFlags creates flag.FlagSet entries for all dynamic settings
func (r *Registry) GenerateFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)

	for _, key := range r.Keys() {
		def, _ := r.Definition(key)
		if !def.Dynamic() {
			continue
		}

		// Create flag based on setting kind
		switch def.Kind() {
		case KindBool:
			fs.Bool(key, def.Default().(bool), fmt.Sprintf("Setting: %s", key))
		default:
			raw, _ := r.String(key)
			fs.String(key, raw, fmt.Sprintf("Setting: %s", key))
		}
	}

	return fs
}

// BindFlags applies values from a parsed flag.FlagSet as setting updates.
// Only flags that were explicitly set are applied.
func (r *Registry) BindFlags(fs *flag.FlagSet) error {
	var errs []error

	fs.Visit(func(f *flag.Flag) {
		if err := r.Update(f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag %s: %w", f.Name, err))
		}
	})

	if len(errs) > 0 {
		return fmt.Errorf("failed to bind %d flags: %w", len(errs), errors.Join(errs...))
	}

	return nil
}

// Validate checks that all required settings are set
// A value is considered "set" if it differs from its default value
func (r *Registry) Validate(required ...string) error {
	var missing []string

	for _, key := range required {
		e, ok := r.lookup(key)
		if !ok {
			missing = append(missing, key+" (not registered)")
			continue
		}
		if reflect.DeepEqual(e.value.Load(), e.def.Default()) {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Debug returns a formatted string showing all settings and their state
func (r *Registry) Debug() string {
	var b strings.Builder
	b.WriteString("Settings Debug Info:\n")

	for _, key := range r.Keys() {
		def, _ := r.Definition(key)
		current, _ := r.Get(key)

		b.WriteString(fmt.Sprintf("  %s:\n", key))
		b.WriteString(fmt.Sprintf("    Kind: %s\n", def.Kind()))
		b.WriteString(fmt.Sprintf("    Dynamic: %t\n", def.Dynamic()))
		b.WriteString(fmt.Sprintf("    Current: %v\n", current))
		b.WriteString(fmt.Sprintf("    Default: %v\n", def.Default()))
	}

	return b.String()
}

// Dump writes the current settings to stdout in TOML format
func (r *Registry) Dump() error {
	nestedData := make(map[string]any)
	for key, value := range r.Snapshot() {
		if opt, ok := value.(IndexFilterOption); ok {
			value = opt.String()
		}
		setNestedValue(nestedData, key, value)
	}

	encoder := toml.NewEncoder(os.Stdout)
	return encoder.Encode(nestedData)
}

// Clone creates a registry with the same definitions and current values.
// Handlers and watch channels are not carried over.
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for key, e := range r.entries {
		ne := &entry{def: e.def}
		ne.value.Store(e.value.Load())
		clone.entries[key] = ne
	}

	return clone
}
