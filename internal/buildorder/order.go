package buildorder

import (
	"container/heap"
	"context"
	"slices"

	"github.com/specialistvlad/modbundle/internal/ctxlog"
)

// Order returns the members of closure arranged so that every module comes
// after all of its direct dependencies. The closure itself is not modified.
//
// g must be acyclic over the closure members.
func Order(ctx context.Context, g Graph, closure Closure) []string {
	logger := ctxlog.FromContext(ctx)

	counts := make(map[string]int, len(closure))
	queue := make(pendingQueue, 0, 2*len(closure))
	for name, count := range closure {
		counts[name] = count
		queue = append(queue, pending{count: count, name: name})
	}
	heap.Init(&queue)

	finalized := make(map[string]bool, len(closure))
	order := make([]string, 0, len(closure))

	for queue.Len() > 0 {
		entry := heap.Pop(&queue).(pending)
		if finalized[entry.name] {
			continue
		}

		order = append(order, entry.name)
		finalized[entry.name] = true
		logger.Debug("Module finalized.", "module", entry.name, "count", entry.count)

		deps, _ := g.DependenciesOf(entry.name)
		for _, dep := range deps {
			counts[dep]--
			heap.Push(&queue, pending{count: counts[dep], name: dep})
		}
	}

	slices.Reverse(order)
	return order
}

// Plan resolves requested against g and orders the resulting closure.
func Plan(ctx context.Context, g Graph, requested []string) ([]string, error) {
	closure, err := Resolve(ctx, g, requested)
	if err != nil {
		return nil, err
	}
	return Order(ctx, g, closure), nil
}
