package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alfredjeanlab/mediaconvert/opt"
)

// enc converts one field value to its document form. Documents hold only
// strings, int64, float64, []any and map[string]any, so they survive a
// trip through encoding/json, yaml.v3 or BurntSushi/toml.
type enc[T any] = func(T) any

// put stores o under key when it is present.
func put[T any](doc map[string]any, key string, o opt.Optional[T], e enc[T]) {
	if v, ok := o.Get(); ok {
		doc[key] = e(v)
	}
}

func fromString(v string) any { return v }

func fromInt32(v int32) any { return int64(v) }

func fromFloat64(v float64) any { return v }

// fromTime writes RFC 3339 with the nanoseconds asTime reads back.
func fromTime(v time.Time) any { return v.UTC().Format(time.RFC3339Nano) }

func fromEnum[E ~string](v E) any { return string(v) }

func fromStruct[T interface{ Document() map[string]any }](v T) any { return v.Document() }

func fromList[T any](e enc[T]) enc[[]T] {
	return func(v []T) any {
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = e(x)
		}
		return out
	}
}

func fromMap[T any](e enc[T]) enc[map[string]T] {
	return func(v map[string]T) any {
		out := make(map[string]any, len(v))
		for k, x := range v {
			out[k] = e(x)
		}
		return out
	}
}

// ErrNonFiniteNumber reports a NaN or infinite double, which JSON cannot
// encode. Validate flags such fields before encoding is attempted.
var ErrNonFiniteNumber = errors.New("non-finite number")

func marshalDocument(doc map[string]any) ([]byte, error) {
	if path, f, ok := findNonFinite("", doc); ok {
		return nil, fmt.Errorf("%s holds %v: %w", path, f, ErrNonFiniteNumber)
	}
	return json.Marshal(doc)
}

// findNonFinite returns the path of the first NaN or infinite float64 in a
// document, visiting map keys in sorted order.
func findNonFinite(path string, v any) (string, float64, bool) {
	switch v := v.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return path, v, true
		}
	case []any:
		for i, x := range v {
			if p, f, ok := findNonFinite(fmt.Sprintf("%s[%d]", path, i), x); ok {
				return p, f, true
			}
		}
	case map[string]any:
		for _, k := range sortedKeys(v) {
			p := k
			if path != "" {
				p = path + "." + k
			}
			if p, f, ok := findNonFinite(p, v[k]); ok {
				return p, f, true
			}
		}
	}
	return "", 0, false
}
