package assemble

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable is matched by errors.Is for any *SourceUnavailableError.
var ErrSourceUnavailable = errors.New("source unavailable")

// SourceUnavailableError reports a module whose source could not be opened.
type SourceUnavailableError struct {
	Module string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("%s for module %q: %v", ErrSourceUnavailable, e.Module, e.Err)
}

func (e *SourceUnavailableError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.Err}
}
