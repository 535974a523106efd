package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/modbundle/internal/assemble"
	"github.com/specialistvlad/modbundle/internal/config"
	"github.com/specialistvlad/modbundle/internal/ctxlog"
	"github.com/specialistvlad/modbundle/internal/depgraph"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	graph    *depgraph.Graph
	settings bundleSettings
	source   assemble.SourceLocator
}

// NewApp builds an App. Logs go to logW so that outW carries only the
// bundle. When cfg.ManifestPath is set the dependency table and bundle
// settings are read through loader; otherwise the compiled-in table is used
// and loader may be nil.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	graph := depgraph.Default()
	var manifestBundle *config.BundleSettings

	if cfg.ManifestPath != "" {
		if loader == nil {
			return nil, fmt.Errorf("manifest %s given but no loader configured", cfg.ManifestPath)
		}
		model, err := loader.Load(ctx, cfg.ManifestPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifest: %w", err)
		}
		graph, err = depgraph.New(model.Table())
		if err != nil {
			return nil, fmt.Errorf("invalid dependency table in %s: %w", cfg.ManifestPath, err)
		}
		manifestBundle = model.Bundle
		logger.Debug("Dependency table loaded from manifest.", "path", cfg.ManifestPath, "modules", graph.Len())
	} else {
		logger.Debug("Using the compiled-in dependency table.", "modules", graph.Len())
	}

	settings, err := resolveBundleSettings(cfg.Overrides, manifestBundle)
	if err != nil {
		return nil, err
	}
	logger.Debug("Bundle settings resolved.", "source_dir", settings.SourceDir, "extension", settings.Extension, "header_lines", settings.HeaderLines)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		graph:    graph,
		settings: settings,
		source:   assemble.NewDirSource(settings.SourceDir, settings.Extension),
	}, nil
}

// Graph returns the dependency table in use. This is primarily for testing.
func (a *App) Graph() *depgraph.Graph {
	return a.graph
}
