package depgraph

import (
	"fmt"
	"slices"
	"sort"
)

// Graph is an immutable, name-keyed dependency table.
type Graph struct {
	deps  map[string][]string
	names []string // sorted keys
}

// New validates table and returns a Graph holding a private copy of it.
// The order of each dependency list is preserved.
func New(table map[string][]string) (*Graph, error) {
	g := &Graph{
		deps:  make(map[string][]string, len(table)),
		names: make([]string, 0, len(table)),
	}
	for name, deps := range table {
		g.deps[name] = slices.Clone(deps)
		g.names = append(g.names, name)
	}
	sort.Strings(g.names)

	for _, name := range g.names {
		for _, dep := range g.deps[name] {
			if dep == name {
				return nil, &TableError{Kind: ErrSelfDependency, Module: name}
			}
			if _, ok := g.deps[dep]; !ok {
				return nil, &TableError{Kind: ErrUnknownDependency, Module: name, Msg: fmt.Sprintf("%q is not declared", dep)}
			}
		}
	}

	if err := g.detectCycles(); err != nil {
		return nil, err
	}
	return g, nil
}

// MustNew is like New but panics on an invalid table. It is meant for
// compiled-in tables.
func MustNew(table map[string][]string) *Graph {
	g, err := New(table)
	if err != nil {
		panic(err)
	}
	return g
}

// Has reports whether name is a key of the graph.
func (g *Graph) Has(name string) bool {
	_, ok := g.deps[name]
	return ok
}

// DependenciesOf returns the direct dependencies of name in declaration
// order. The returned slice must not be modified.
func (g *Graph) DependenciesOf(name string) ([]string, bool) {
	deps, ok := g.deps[name]
	return deps, ok
}

// Names returns every module name in sorted order.
func (g *Graph) Names() []string {
	return slices.Clone(g.names)
}

// Len returns the number of modules in the graph.
func (g *Graph) Len() int {
	return len(g.names)
}

// detectCycles runs a depth-first search with temporary and permanent
// marks. Modules are visited in sorted order so the reported path is stable.
func (g *Graph) detectCycles() error {
	permanent := make(map[string]bool, len(g.names))
	temporary := make(map[string]bool)
	var stack []string

	var visit func(name string) error
	visit = func(name string) error {
		if permanent[name] {
			return nil
		}
		if temporary[name] {
			start := slices.Index(stack, name)
			path := append(slices.Clone(stack[start:]), name)
			return cycleError(path)
		}

		temporary[name] = true
		stack = append(stack, name)
		for _, dep := range g.deps[name] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		delete(temporary, name)
		permanent[name] = true
		return nil
	}

	for _, name := range g.names {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
