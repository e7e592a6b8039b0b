package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alfredjeanlab/mediaconvert/opt"
)

// ErrUnknownField is the cause when a document holds a key the shape does not declare.
var ErrUnknownField = errors.New("unknown field")

// ErrWrongType is the cause when a document value has the wrong JSON kind.
var ErrWrongType = errors.New("wrong type")

// DecodeError reports the document path at which decoding failed.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decode: " + e.Err.Error()
	}
	return "decode " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// decoder walks one object of a generic document, as produced by
// encoding/json, yaml.v3 or BurntSushi/toml into map[string]any. It keeps
// the first failure and tracks which keys were consumed.
type decoder struct {
	path string
	obj  map[string]any
	used map[string]bool
	err  *error
}

func decodeRoot[T any](doc map[string]any, fn func(*decoder) T) (T, error) {
	var err error
	x := fn(&decoder{obj: doc, used: make(map[string]bool), err: &err})
	if err != nil {
		var zero T
		return zero, err
	}
	return x, nil
}

func (d *decoder) child(path string, obj map[string]any) *decoder {
	return &decoder{path: path, obj: obj, used: make(map[string]bool), err: d.err}
}

func (d *decoder) join(key string) string {
	if d.path == "" {
		return key
	}
	return d.path + "." + key
}

func (d *decoder) fail(path string, err error) {
	if *d.err == nil {
		*d.err = &DecodeError{Path: path, Err: err}
	}
}

// finish rejects keys no field consumed.
func (d *decoder) finish() {
	for _, k := range sortedKeys(d.obj) {
		if !d.used[k] {
			d.fail(d.join(k), ErrUnknownField)
			return
		}
	}
}

// conv converts one raw document value found at path.
type conv[T any] = func(d *decoder, path string, raw any) (T, bool)

// field decodes d.obj[key]. A missing key or an explicit null is absent.
func field[T any](d *decoder, key string, c conv[T]) opt.Optional[T] {
	d.used[key] = true
	raw, ok := d.obj[key]
	if !ok || raw == nil {
		return opt.None[T]()
	}
	v, ok := c(d, d.join(key), raw)
	if !ok {
		return opt.None[T]()
	}
	return opt.Some(v)
}

func wrongType(d *decoder, path, want string, raw any) {
	d.fail(path, fmt.Errorf("%w: expected %s, got %T", ErrWrongType, want, raw))
}

func asString(d *decoder, path string, raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		wrongType(d, path, "string", raw)
	}
	return s, ok
}

func asInt32(d *decoder, path string, raw any) (int32, bool) {
	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			wrongType(d, path, "integer", raw)
			return 0, false
		}
		if v < math.MinInt32 || v > math.MaxInt32 {
			d.fail(path, fmt.Errorf("%w: %v overflows int32", ErrWrongType, v))
			return 0, false
		}
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			wrongType(d, path, "integer", raw)
			return 0, false
		}
		n = i
	default:
		wrongType(d, path, "integer", raw)
		return 0, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		d.fail(path, fmt.Errorf("%w: %d overflows int32", ErrWrongType, n))
		return 0, false
	}
	return int32(n), true
}

func asFloat64(d *decoder, path string, raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			wrongType(d, path, "number", raw)
			return 0, false
		}
		return f, true
	}
	wrongType(d, path, "number", raw)
	return 0, false
}

// asTime accepts RFC 3339 strings, native timestamps, and epoch seconds.
func asTime(d *decoder, path string, raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			d.fail(path, fmt.Errorf("%w: %v", ErrWrongType, err))
			return time.Time{}, false
		}
		return t, true
	}
	secs, ok := asFloat64(d, path, raw)
	if !ok {
		return time.Time{}, false
	}
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC(), true
}

func asEnum[E ~string](parse func(string) (E, error)) conv[E] {
	return func(d *decoder, path string, raw any) (E, bool) {
		s, ok := asString(d, path, raw)
		if !ok {
			return "", false
		}
		e, err := parse(s)
		if err != nil {
			d.fail(path, err)
			return "", false
		}
		return e, true
	}
}

func asStruct[T any](fn func(*decoder) T) conv[T] {
	return func(d *decoder, path string, raw any) (T, bool) {
		obj, ok := raw.(map[string]any)
		if !ok {
			wrongType(d, path, "object", raw)
			var zero T
			return zero, false
		}
		return fn(d.child(path, obj)), true
	}
}

func asList[T any](elem conv[T]) conv[[]T] {
	return func(d *decoder, path string, raw any) ([]T, bool) {
		var items []any
		switch v := raw.(type) {
		case []any:
			items = v
		case []map[string]any:
			items = make([]any, len(v))
			for i := range v {
				items[i] = v[i]
			}
		default:
			wrongType(d, path, "array", raw)
			return nil, false
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			if x, ok := elem(d, fmt.Sprintf("%s[%d]", path, i), item); ok {
				out = append(out, x)
			}
		}
		return out, true
	}
}

func asMap[T any](elem conv[T]) conv[map[string]T] {
	return func(d *decoder, path string, raw any) (map[string]T, bool) {
		obj, ok := raw.(map[string]any)
		if !ok {
			wrongType(d, path, "object", raw)
			return nil, false
		}
		out := make(map[string]T, len(obj))
		for _, k := range sortedKeys(obj) {
			if x, ok := elem(d, fmt.Sprintf("%s[%s]", path, k), obj[k]); ok {
				out[k] = x
			}
		}
		return out, true
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
