// Package buildorder computes the order in which modules must be emitted so
// that every module follows all of the modules it depends on.
//
// The work happens in two steps:
//
//  1. Resolve walks the dependency graph from the requested names and
//     returns a Closure: every required module together with its
//     reference count, the number of closure members that directly
//     require it.
//  2. Order repeatedly finalizes the module with the lowest remaining
//     reference count (ties broken by name), decrementing the counts of
//     that module's dependencies as it goes. The finalization sequence
//     runs from dependents to dependencies, so the result is its reverse.
//
// Order uses a binary heap without an in-place decrease-key: when a count
// drops, a fresh entry is pushed and any older entry for the same module is
// skipped when popped after the module has been finalized.
//
// The graph must be acyclic. Order does not check this; internal/depgraph
// rejects cyclic tables when a Graph is built.
package buildorder
