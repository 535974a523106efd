package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/modbundle/internal/config"
)

const (
	DefaultSourceDir   = "."
	DefaultExtension   = ".js"
	DefaultHeaderLines = 13
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Modules are the requested module names. Ignored when All is set.
	Modules []string
	// All requests every module in the dependency table.
	All bool

	// ManifestPath is an HCL file or directory. Empty selects the
	// compiled-in table.
	ManifestPath string
	// Overrides are assembly settings given on the command line or in the
	// environment. They win over the manifest's bundle block.
	Overrides config.BundleSettings

	// OrderOnly prints the resolved order instead of assembling sources.
	OrderOnly bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if !cfg.All && len(cfg.Modules) == 0 {
		return nil, errors.New("at least one module name (or 'all') is required")
	}
	if h := cfg.Overrides.HeaderLines; h != nil && *h < 0 {
		return nil, fmt.Errorf("header line count must not be negative, got %d", *h)
	}
	return &cfg, nil
}

// bundleSettings are the assembly settings after merging every source.
type bundleSettings struct {
	SourceDir   string
	Extension   string
	HeaderLines int
}

// resolveBundleSettings applies, in order of precedence, the overrides, the
// manifest's bundle block, then the defaults.
func resolveBundleSettings(overrides config.BundleSettings, manifest *config.BundleSettings) (bundleSettings, error) {
	if manifest == nil {
		manifest = &config.BundleSettings{}
	}
	s := bundleSettings{
		SourceDir:   firstSet(DefaultSourceDir, overrides.SourceDir, manifest.SourceDir),
		Extension:   firstSet(DefaultExtension, overrides.Extension, manifest.Extension),
		HeaderLines: firstSet(DefaultHeaderLines, overrides.HeaderLines, manifest.HeaderLines),
	}
	if s.HeaderLines < 0 {
		return bundleSettings{}, fmt.Errorf("header line count must not be negative, got %d", s.HeaderLines)
	}
	return s, nil
}

func firstSet[T any](fallback T, candidates ...*T) T {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return fallback
}
