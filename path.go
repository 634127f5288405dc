package jsonmason

import (
	"fmt"
	"math"
	"strings"

	gyaml "github.com/goccy/go-yaml"
)

// String renders the path with dot-joined segments, e.g. "users.0.name".
// The empty path renders as the empty string.
func (p Path) String() string {
	segs := make([]string, len(p))
	for i, k := range p {
		if s, ok := k.(string); ok {
			segs[i] = s
		} else {
			segs[i] = fmt.Sprint(k)
		}
	}
	return strings.Join(segs, ".")
}

// indexOf normalizes the integer key flavors a caller or a JSON-decoded
// operation can produce.
func indexOf(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case float64:
		if k == math.Trunc(k) && !math.IsInf(k, 0) {
			return int(k), true
		}
	}
	return 0, false
}

// fieldOf coerces a non-integer key to a map field name.
func fieldOf(key any) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}

// keyEquals reports whether a MapSlice key matches the wanted field name.
func keyEquals(k any, want string) bool {
	switch v := k.(type) {
	case string:
		return v == want
	case fmt.Stringer:
		return v.String() == want
	default:
		return false
	}
}

func mapSliceIndex(ms gyaml.MapSlice, field string) int {
	for i := range ms {
		if keyEquals(ms[i].Key, field) {
			return i
		}
	}
	return -1
}

// Get walks path key by key and returns the value it reaches. The second
// result is false when the walk hits absence: a nil value, a missing
// field, an out-of-range or mistyped index, or a scalar where a container
// is needed. Get itself never fails; write-side shape mismatches are
// reported by the operations instead.
func Get(doc any, path Path) (any, bool) {
	cur := doc
	for _, key := range path {
		if cur == nil {
			return nil, false
		}
		if idx, ok := indexOf(key); ok {
			seq, ok := cur.([]any)
			if !ok || idx < 0 || idx >= len(seq) {
				return nil, false
			}
			cur = seq[idx]
			continue
		}
		field := fieldOf(key)
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[field]
			if !ok {
				return nil, false
			}
			cur = v
		case gyaml.MapSlice:
			i := mapSliceIndex(node, field)
			if i < 0 {
				return nil, false
			}
			cur = node[i].Value
		default:
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// SetAt returns a document with value assigned at path. The original doc
// is never modified: an empty path yields value itself; otherwise the
// document is cloned once and the clone is edited in place, materializing
// a sequence for each missing step whose key is an integer and a map
// otherwise. An existing scalar in the way of the walk is displaced by the
// materialized container.
func SetAt(doc any, path Path, value any) any {
	if len(path) == 0 {
		return value
	}
	return setValue(Clone(doc), path, value)
}

// setValue assigns value at path inside node, which must be private to the
// caller. It returns the container holding the assignment, which may
// differ from node when a sequence grows, a field is added to a MapSlice,
// or a scalar is displaced.
func setValue(node any, path Path, value any) any {
	if len(path) == 0 {
		return value
	}
	key, rest := path[0], path[1:]

	if idx, ok := indexOf(key); ok {
		if idx < 0 {
			return node
		}
		seq, ok := node.([]any)
		if !ok {
			seq = nil
		}
		for len(seq) <= idx {
			seq = append(seq, nil)
		}
		seq[idx] = setValue(seq[idx], rest, value)
		return seq
	}

	field := fieldOf(key)
	if ms, ok := node.(gyaml.MapSlice); ok {
		if i := mapSliceIndex(ms, field); i >= 0 {
			ms[i].Value = setValue(ms[i].Value, rest, value)
			return ms
		}
		return append(ms, gyaml.MapItem{Key: field, Value: setValue(nil, rest, value)})
	}
	m, ok := node.(map[string]any)
	if !ok {
		m = make(map[string]any)
	}
	m[field] = setValue(m[field], rest, value)
	return m
}
