// FILE: lixenwraith/promconf/discovery.go
package promconf

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures automatic config file discovery
type FileDiscoveryOptions struct {
	// Base name of config file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths (in addition to defaults)
	Paths []string

	// Environment variable to check for explicit path
	EnvVar string

	// CLI flag to check (e.g., "--config" or "-c")
	CLIFlag string

	// Whether to search in XDG config directories
	UseXDG bool

	// Whether to search in current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns sensible defaults
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          appName,
		Extensions:    []string{".toml", ".yaml", ".yml", ".json"},
		EnvVar:        strings.ToUpper(appName) + "_CONFIG",
		CLIFlag:       "--config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// locate resolves the config file path. Precedence: CLI flag, environment
// variable, then a search of custom, current-directory, and XDG paths. An
// empty return means nothing was found, which is not an error.
func (opts FileDiscoveryOptions) locate(args []string) string {
	if path := opts.pathFromArgs(args); path != "" {
		return path
	}

	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	for _, dir := range opts.searchPaths() {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}

// pathFromArgs scans command-line arguments for the config flag, accepting
// both "--config path" and "--config=path".
func (opts FileDiscoveryOptions) pathFromArgs(args []string) string {
	if opts.CLIFlag == "" {
		return ""
	}
	for i, arg := range args {
		if arg == opts.CLIFlag && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, opts.CLIFlag+"=") {
			return strings.TrimPrefix(arg, opts.CLIFlag+"=")
		}
	}
	return ""
}

func (opts FileDiscoveryOptions) searchPaths() []string {
	var paths []string

	// Custom paths first
	paths = append(paths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			paths = append(paths, cwd)
		}
	}

	if opts.UseXDG {
		paths = append(paths, xdgConfigPaths(opts.Name)...)
	}
	return paths
}

// xdgConfigPaths returns XDG-compliant config search paths
func xdgConfigPaths(appName string) []string {
	var paths []string

	// XDG_CONFIG_HOME
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	// XDG_CONFIG_DIRS
	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		// Default system paths
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
