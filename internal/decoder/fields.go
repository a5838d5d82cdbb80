package decoder

import (
	"encoding/json"
	"fmt"
	"math"
)

// lookup returns the value for key. A JSON null counts as absent.
func lookup(obj map[string]any, key string) (any, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func requireString(obj map[string]any, field string, index int) (string, error) {
	v, ok := lookup(obj, field)
	if !ok {
		return "", &MissingFieldError{Field: field, Index: index}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldTypeError{Field: field, Index: index, Want: "string", Got: jsonType(v)}
	}
	return s, nil
}

func optionalString(obj map[string]any, field string, index int) (string, error) {
	v, ok := lookup(obj, field)
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldTypeError{Field: field, Index: index, Want: "string", Got: jsonType(v)}
	}
	return s, nil
}

func requireInt(obj map[string]any, field string, index int) (int64, error) {
	v, ok := lookup(obj, field)
	if !ok {
		return 0, &MissingFieldError{Field: field, Index: index}
	}
	n, ok := toInt64(v)
	if !ok {
		return 0, &FieldTypeError{Field: field, Index: index, Want: "integer", Got: jsonType(v)}
	}
	return n, nil
}

// toInt64 accepts Go integer kinds, integral floats and json.Number.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	}
	return 0, false
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// jsonType names the JSON kind of a decoded value for error messages.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return "number"
	case []any, []string, []map[string]any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// cloneValue deep-copies the container types a JSON decoder produces so a
// Message never aliases its input.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
