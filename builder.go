// File: lixenwraith/promconf/builder.go
package promconf

import (
	"errors"
	"fmt"
	"os"
)

// ValidatorFunc defines the signature for a function that can validate the
// built Settings. It receives the fully loaded *Settings and should return
// an error if validation fails.
type ValidatorFunc func(s *Settings) error

// Builder provides a fluent interface for building Settings from layered
// sources.
type Builder struct {
	file         string
	args         []string
	envPrefix    string
	envTransform EnvTransformFunc
	sources      []Source
	validators   []ValidatorFunc
	err          error
}

// NewBuilder creates a new settings builder
func NewBuilder() *Builder {
	return &Builder{
		args:       os.Args[1:],
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFileDiscovery locates the configuration file automatically instead of
// taking an explicit path. An explicit WithFile call takes precedence.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if b.file == "" {
		b.file = opts.locate(b.args)
	}
	return b
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithEnvPrefix sets the environment variable prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	return b
}

// WithEnvTransform sets a custom environment variable transformer
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.envTransform = fn
	return b
}

// WithSource adds a custom source ahead of the built-in ones. Sources added
// earlier win over sources added later.
func (b *Builder) WithSource(src Source) *Builder {
	if src != nil {
		b.sources = append(b.sources, src)
	}
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Settings instance from the configured sources.
// Precedence is custom sources, then command-line arguments, then
// environment variables, then the configuration file, then defaults.
//
// A configured file that does not exist is not fatal: Build returns usable
// Settings together with ErrConfigNotFound so the caller can decide whether
// a missing file matters.
func (b *Builder) Build() (*Settings, error) {
	if b.err != nil {
		return nil, b.err
	}

	sources := make([]Source, 0, len(b.sources)+3)
	sources = append(sources, b.sources...)

	if len(b.args) > 0 {
		argsSource, err := ArgsSource(b.args)
		if err != nil {
			return nil, err
		}
		sources = append(sources, argsSource)
	}

	sources = append(sources, EnvSource{Prefix: b.envPrefix, Transform: b.envTransform})

	var notFound error
	if b.file != "" {
		fileSource, err := FileSource(b.file)
		switch {
		case err == nil:
			sources = append(sources, fileSource)
		case errors.Is(err, ErrConfigNotFound):
			// Not fatal, the app can run with defaults/env
			notFound = err
		default:
			return nil, err
		}
	}

	s, err := New(Layered(sources...))
	if err != nil {
		return nil, err
	}

	// Run validators
	for _, validator := range b.validators {
		if err := validator(s); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	// ErrConfigNotFound or nil
	return s, notFound
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Settings {
	s, err := b.Build()
	if err != nil {
		// Ignore ErrConfigNotFound as it is not a fatal error for MustBuild.
		// The application can proceed with defaults/env vars.
		if !errors.Is(err, ErrConfigNotFound) {
			panic(fmt.Sprintf("settings build failed: %v", err))
		}
	}
	return s
}

// BuildAndScan builds the settings and additionally unmarshals the final
// values into the provided target struct pointer
func (b *Builder) BuildAndScan(basePath string, target any) (*Settings, error) {
	s, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return nil, err
	}

	if scanErr := s.Registry().Scan(basePath, target); scanErr != nil {
		return nil, fmt.Errorf("failed to scan final config into target: %w", scanErr)
	}

	// ErrConfigNotFound or nil
	return s, err
}
