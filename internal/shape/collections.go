package shape

import (
	"errors"
	"fmt"

	"github.com/alfredjeanlab/mediaconvert/opt"
)

// ErrDuplicateKey is returned by AddEntry when the key is already present.
var ErrDuplicateKey = errors.New("duplicate key")

// CloneList copies a present slice. A present nil slice becomes empty.
func CloneList[T any](o opt.Optional[[]T]) opt.Optional[[]T] {
	s, ok := o.Get()
	if !ok {
		return o
	}
	c := make([]T, len(s))
	copy(c, s)
	return opt.Some(c)
}

// CloneMap copies a present map. A present nil map becomes empty.
func CloneMap[V any](o opt.Optional[map[string]V]) opt.Optional[map[string]V] {
	m, ok := o.Get()
	if !ok {
		return o
	}
	c := make(map[string]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return opt.Some(c)
}

// Append returns a new present slice holding the current elements followed
// by v. An absent sequence starts empty.
func Append[T any](o opt.Optional[[]T], v ...T) opt.Optional[[]T] {
	cur, _ := o.Get()
	s := make([]T, 0, len(cur)+len(v))
	s = append(s, cur...)
	s = append(s, v...)
	return opt.Some(s)
}

// AddEntry inserts key into the map held by o, creating it when absent.
// The map is modified in place; callers pass maps they own.
func AddEntry[V any](o opt.Optional[map[string]V], key string, value V) (opt.Optional[map[string]V], error) {
	m, _ := o.Get()
	if _, dup := m[key]; dup {
		return o, fmt.Errorf("%w: duplicated keys (%s) are provided", ErrDuplicateKey, key)
	}
	if m == nil {
		m = make(map[string]V)
	}
	m[key] = value
	return opt.Some(m), nil
}
