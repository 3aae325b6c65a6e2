package cli

import (
	"fmt"
)

// NotFoundError indicates a prize position does not exist.
type NotFoundError struct {
	Position int // 1-based position as shown by `pz list`
	Size     int // pool size at the time of the lookup
}

func (e *NotFoundError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("prize %d not found (pool is empty)", e.Position)
	}
	return fmt.Sprintf("prize %d not found (pool has %d)", e.Position, e.Size)
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// EmptyPoolError indicates a draw from a pool with no prizes.
type EmptyPoolError struct{}

func (e *EmptyPoolError) Error() string {
	return "prize pool is empty\nUse `pz add` or `pz import` to add prizes."
}

// ImportError indicates an import payload was rejected.
type ImportError struct {
	Source string // file name or "-" for stdin
	Err    error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("invalid JSON prize list in %s: %v", e.Source, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output, in red
// when colors are enabled.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return Red("error:") + " " + err.Error()
}
