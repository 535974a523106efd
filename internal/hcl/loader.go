package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/modbundle/internal/config"
	"github.com/specialistvlad/modbundle/internal/ctxlog"
	"github.com/specialistvlad/modbundle/internal/fsutil"
	"github.com/specialistvlad/modbundle/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from paths and merges their blocks
// into one model. A path may name a single file or a directory, which is
// searched recursively. A missing path is an error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	var bundleSource string

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Bundles {
			if model.Bundle != nil {
				return nil, fmt.Errorf("duplicate bundle block in %s (first declared in %s)", file, bundleSource)
			}
			model.Bundle = translateBundle(b)
			bundleSource = file
		}

		for _, m := range root.Modules {
			if prev, ok := model.Modules[m.Name]; ok {
				return nil, fmt.Errorf("module %q declared in both %s and %s", m.Name, prev.Source, file)
			}
			def, err := translateModule(m, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
			}
			def.Source = file
			model.Modules[def.Name] = def
		}
	}

	logger.Debug("HCL loading complete.", "modules", len(model.Modules), "bundle", model.Bundle != nil)
	return model, nil
}

// findAllHCLFiles expands paths into a flat, de-duplicated list of .hcl files.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing manifest path %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(path) != ".hcl" {
				return nil, fmt.Errorf("manifest file %s must have the .hcl extension", path)
			}
			add(path)
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return allFiles, nil
}
