package config

import (
	"maps"
	"slices"
)

// Model is the unified, format-agnostic representation of a manifest: the
// declared modules and optional bundle settings.
type Model struct {
	Modules map[string]*ModuleDefinition
	Bundle  *BundleSettings
}

// ModuleDefinition is the format-agnostic representation of a `module` block.
type ModuleDefinition struct {
	Name        string
	Description string
	Requires    []string
	// Source is the file the module was declared in, for error messages.
	Source string
}

// BundleSettings carries assembly defaults declared in a manifest. Nil
// fields were not set.
type BundleSettings struct {
	SourceDir   *string
	Extension   *string
	HeaderLines *int
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{Modules: make(map[string]*ModuleDefinition)}
}

// Table returns the dependency table described by the model.
func (m *Model) Table() map[string][]string {
	table := make(map[string][]string, len(m.Modules))
	for name, def := range m.Modules {
		table[name] = slices.Clone(def.Requires)
	}
	return table
}

// ModuleNames returns the declared module names in sorted order.
func (m *Model) ModuleNames() []string {
	return slices.Sorted(maps.Keys(m.Modules))
}
