package jsonmason

import (
	"math/big"

	gyaml "github.com/goccy/go-yaml"
)

// Clone returns a structural copy of v: equal to v, but sharing no map or
// sequence instance with it. MapSlice values are copied item by item,
// []byte and *big.Int by content; other scalars and opaque values pass
// through unchanged. Clone never fails. Cyclic values are not supported.
func Clone(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = Clone(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = Clone(e)
		}
		return out
	case gyaml.MapSlice:
		out := make(gyaml.MapSlice, len(v))
		for i, item := range v {
			out[i] = gyaml.MapItem{Key: item.Key, Value: Clone(item.Value)}
		}
		return out
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out
	case *big.Int:
		if v == nil {
			return v
		}
		return new(big.Int).Set(v)
	default:
		return v
	}
}
