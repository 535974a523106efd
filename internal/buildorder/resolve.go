package buildorder

import (
	"context"
	"maps"
	"slices"

	"github.com/specialistvlad/modbundle/internal/ctxlog"
)

// Graph is the read-only view of the dependency table used for resolution.
type Graph interface {
	Has(name string) bool
	DependenciesOf(name string) ([]string, bool)
}

// Closure maps every module required by a request to its reference count.
type Closure map[string]int

// Names returns the closure members in sorted order.
func (c Closure) Names() []string {
	return slices.Sorted(maps.Keys(c))
}

// Resolve computes the transitive closure of requested. Requested names are
// seeded with a count of 0; every later occurrence of a name as another
// member's dependency adds 1.
//
// If any requested name is missing from g, Resolve returns an
// *UnknownModuleError naming all of them and no closure.
func Resolve(ctx context.Context, g Graph, requested []string) (Closure, error) {
	logger := ctxlog.FromContext(ctx)

	var unknown []string
	for _, name := range requested {
		if !g.Has(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, &UnknownModuleError{Names: slices.Compact(unknown)}
	}

	closure := make(Closure, len(requested))
	stack := make([]string, 0, len(requested))
	for _, name := range requested {
		if _, seen := closure[name]; seen {
			continue
		}
		closure[name] = 0
		stack = append(stack, name)
	}

	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		deps, _ := g.DependenciesOf(name)
		for _, dep := range deps {
			if _, ok := closure[dep]; ok {
				closure[dep]++
				continue
			}
			closure[dep] = 1
			stack = append(stack, dep)
		}
	}

	logger.Debug("Closure resolved.", "requested", len(requested), "modules", len(closure))
	return closure, nil
}
