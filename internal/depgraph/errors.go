package depgraph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownDependency = errors.New("unknown dependency")
	ErrSelfDependency    = errors.New("module depends on itself")
	ErrCycle             = errors.New("dependency cycle")
)

// TableError describes why a dependency table was rejected.
type TableError struct {
	Kind   error
	Module string
	Msg    string
}

func (e *TableError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("module %q: %s", e.Module, e.Kind)
	}
	return fmt.Sprintf("module %q: %s: %s", e.Module, e.Kind, e.Msg)
}

func (e *TableError) Unwrap() error { return e.Kind }

func cycleError(path []string) error {
	return &TableError{Kind: ErrCycle, Module: path[0], Msg: strings.Join(path, " -> ")}
}
