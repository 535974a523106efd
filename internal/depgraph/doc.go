// Package depgraph holds the static dependency table that every bundle is
// resolved against.
//
// A Graph maps each module name to the ordered list of modules it directly
// requires. It is built once at startup, either from the compiled-in table
// returned by Default or from a manifest, and is never mutated afterwards.
// All lookups are therefore safe for concurrent use without locking.
//
// New validates the table before handing out a Graph:
//   - every dependency must itself be a key of the table
//   - a module may not list itself
//   - the table must be acyclic
//
// The ordering code in internal/buildorder relies on these guarantees and
// performs no validation of its own.
package depgraph
