package jsonmason

import (
	"errors"
	"fmt"
)

// Sentinel failure kinds. Errors returned by Apply and the shape
// validators unwrap to exactly one of these, so callers can classify
// failures with errors.Is while the message stays the human-readable
// reason recorded in an OperationError.
var (
	ErrRootDeletion     = errors.New("document root cannot be removed")
	ErrMissingParent    = errors.New("parent path does not exist")
	ErrInvalidIndex     = errors.New("invalid array index")
	ErrNotContainer     = errors.New("target is not a container")
	ErrNotAppendable    = errors.New("target is not an array or string")
	ErrTypeMismatch     = errors.New("value type mismatch")
	ErrNotArray         = errors.New("target is not an array")
	ErrNotString        = errors.New("target is not a string")
	ErrUnknownOperation = errors.New("unknown operation")
)

// opError carries the reason string verbatim: Error() must equal the
// reason a non-strict batch records, so no wrapping prefix is added.
type opError struct {
	reason string
	kind   error
}

func (e *opError) Error() string { return e.reason }
func (e *opError) Unwrap() error { return e.kind }

func failf(kind error, format string, args ...any) error {
	return &opError{reason: fmt.Sprintf(format, args...), kind: kind}
}
