package buildorder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModule is matched by errors.Is for any *UnknownModuleError.
var ErrUnknownModule = errors.New("unknown module")

// UnknownModuleError lists every requested name missing from the graph.
type UnknownModuleError struct {
	Names []string
}

func (e *UnknownModuleError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("unknown module: %s", e.Names[0])
	}
	return fmt.Sprintf("unknown modules: %s", strings.Join(e.Names, ", "))
}

func (e *UnknownModuleError) Unwrap() error { return ErrUnknownModule }
