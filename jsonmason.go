// Package jsonmason applies structured edit operations to JSON-like
// document trees.
//
// A document is an in-memory value graph of maps (map[string]any or
// goccy/go-yaml MapSlice for insertion-ordered fields), sequences ([]any),
// and scalars. Documents are immutable from the caller's perspective:
// every Apply returns a new document and the source is never modified.
package jsonmason

// Action identifies one of the four edit instruction variants.
type Action string

const (
	ActionWrite   Action = "write"
	ActionAppend  Action = "append"
	ActionPrepend Action = "prepend"
	ActionRemove  Action = "remove"
)

// Path locates a node inside a document. A string element selects a map
// field; an integer element selects a sequence index. The empty path is
// the document root. Paths are not validated up front: incompatible
// key/container pairings surface when an operation executes.
type Path []any

// Operation is a single edit instruction.
type Operation struct {
	Action Action `json:"action"`
	Path   Path   `json:"path"`
	Value  any    `json:"value,omitempty"`
}

// Write replaces the value at path, creating missing intermediate
// containers along the way. An empty path replaces the whole document.
func Write(path Path, value any) Operation {
	return Operation{Action: ActionWrite, Path: path, Value: value}
}

// Append inserts value at the end of the sequence at path, or concatenates
// when the target is a string (the value must then be a string too).
func Append(path Path, value any) Operation {
	return Operation{Action: ActionAppend, Path: path, Value: value}
}

// Prepend inserts value at the start of the sequence at path, or
// concatenates in front when the target is a string.
func Prepend(path Path, value any) Operation {
	return Operation{Action: ActionPrepend, Path: path, Value: value}
}

// Remove deletes the map field or sequence element at path. The document
// root may not be removed.
func Remove(path Path) Operation {
	return Operation{Action: ActionRemove, Path: path}
}

// OperationError records one failed step of a batch.
type OperationError struct {
	Index     int       `json:"index"`
	Operation Operation `json:"operation"`
	Reason    string    `json:"reason"`
}

type config struct {
	strict bool
}

// Option configures a single Apply call.
type Option func(*config)

// WithStrict toggles strict mode. In strict mode (the default) the first
// failing operation aborts the batch and is returned as an error. In
// non-strict mode the failure is recorded instead and the original source
// document is returned unchanged.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

// Editor replays batches of operations against documents. The zero value
// is ready to use. An Editor keeps the failure record of its most recent
// Apply call and is not safe for concurrent use.
type Editor struct {
	last []OperationError
}

// NewEditor returns a ready-to-use Editor.
func NewEditor() *Editor { return &Editor{} }

// Apply replays ops in order against a deep copy of source and returns the
// transformed document. source itself is never modified; an empty batch
// yields an independent structural copy.
//
// A batch either fully applies or has no effect. In strict mode the first
// failure is returned as an error and no document is. In non-strict mode
// the first failure is recorded (see LastErrors), the rest of the batch is
// abandoned, and source is returned as-is.
func (e *Editor) Apply(source any, ops []Operation, opts ...Option) (any, error) {
	cfg := config{strict: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	e.last = nil
	result := Clone(source)
	for i, op := range ops {
		next, err := applyOp(result, op)
		if err != nil {
			if cfg.strict {
				return nil, err
			}
			e.last = append(e.last, OperationError{Index: i, Operation: op, Reason: err.Error()})
			return source, nil
		}
		result = next
	}
	return result, nil
}

// LastErrors reports the failures recorded by the most recent Apply call
// on this Editor. It is empty after a fully successful batch.
func (e *Editor) LastErrors() []OperationError { return e.last }
