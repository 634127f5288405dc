package jsonmason

import (
	gyaml "github.com/goccy/go-yaml"
)

// applyOp executes a single operation against doc and returns the
// resulting document. doc is never modified.
func applyOp(doc any, op Operation) (any, error) {
	switch op.Action {
	case ActionWrite:
		return SetAt(doc, op.Path, op.Value), nil
	case ActionAppend:
		return applyConcat(doc, op, true)
	case ActionPrepend:
		return applyConcat(doc, op, false)
	case ActionRemove:
		return applyRemove(doc, op.Path)
	default:
		return nil, failf(ErrUnknownOperation, "Unknown operation action %q", string(op.Action))
	}
}

// AsArray returns v as a sequence, or a not-an-array failure naming path.
func AsArray(v any, path Path) ([]any, error) {
	if seq, ok := v.([]any); ok {
		return seq, nil
	}
	return nil, failf(ErrNotArray, "Target at path %s is not an array", path)
}

// AsString returns v as a string, or a not-a-string failure naming path.
func AsString(v any, path Path) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", failf(ErrNotString, "Target at path %s is not a string", path)
}

func applyConcat(doc any, op Operation, atEnd bool) (any, error) {
	current, ok := Get(doc, op.Path)
	if !ok {
		return nil, failf(ErrNotAppendable, "Target at path %s is not an array or string", op.Path)
	}
	switch target := current.(type) {
	case string:
		s, ok := op.Value.(string)
		if !ok {
			return nil, failf(ErrTypeMismatch, "Cannot concatenate non-string value to the string at path %s", op.Path)
		}
		joined := target + s
		if !atEnd {
			joined = s + target
		}
		return SetAt(doc, op.Path, joined), nil
	case []any:
		// Elements are cloned so the result shares no container below
		// the written path with the original document.
		seq := Clone(target).([]any)
		if atEnd {
			seq = append(seq, op.Value)
		} else {
			seq = append([]any{op.Value}, seq...)
		}
		return SetAt(doc, op.Path, seq), nil
	default:
		return nil, failf(ErrNotAppendable, "Target at path %s is not an array or string", op.Path)
	}
}

func applyRemove(doc any, path Path) (any, error) {
	if len(path) == 0 {
		return nil, failf(ErrRootDeletion, "Cannot remove the document root")
	}

	result := Clone(doc)
	parentPath, last := path[:len(path)-1], path[len(path)-1]
	parent := result
	if len(parentPath) > 0 {
		p, ok := Get(result, parentPath)
		if !ok {
			return nil, failf(ErrMissingParent, "No parent found at path %s", parentPath)
		}
		parent = p
	}

	switch node := parent.(type) {
	case []any:
		idx, ok := indexOf(last)
		if !ok || idx < 0 || idx >= len(node) {
			return nil, failf(ErrInvalidIndex, "Key %v at path %s is not a valid array index", last, parentPath)
		}
		shifted := append(node[:idx:idx], node[idx+1:]...)
		return setValue(result, parentPath, shifted), nil
	case map[string]any:
		delete(node, fieldOf(last)) // removing an absent field is a no-op
		return result, nil
	case gyaml.MapSlice:
		i := mapSliceIndex(node, fieldOf(last))
		if i < 0 {
			return result, nil
		}
		shorter := append(node[:i:i], node[i+1:]...)
		return setValue(result, parentPath, shorter), nil
	default:
		return nil, failf(ErrNotContainer, "Target at path %s is not a container", parentPath)
	}
}
