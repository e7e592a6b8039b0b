package shape

import (
	"math"
	"time"
	"unicode/utf16"

	"github.com/alfredjeanlab/mediaconvert/opt"
)

// Hash folds field hashes as h = 31*h + f, starting from 1.
type Hash struct {
	h int32
}

// NewHash returns an accumulator seeded with 1.
func NewHash() Hash {
	return Hash{h: 1}
}

// Add folds one field hash into the accumulator.
func (h *Hash) Add(v int32) {
	h.h = 31*h.h + v
}

// Sum returns the accumulated hash.
func (h Hash) Sum() int32 {
	return h.h
}

// HashOf applies f to the held value, or returns 0 when o is absent.
func HashOf[T any](o opt.Optional[T], f func(T) int32) int32 {
	v, ok := o.Get()
	if !ok {
		return 0
	}
	return f(v)
}

// String hashes s over its UTF-16 code units.
func String(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	return h
}

// Int32 is the identity hash.
func Int32(v int32) int32 {
	return v
}

const canonicalNaN = 0x7ff8000000000000

func float64Bits(v float64) uint64 {
	if math.IsNaN(v) {
		return canonicalNaN
	}
	return math.Float64bits(v)
}

// Float64 folds the canonical bit pattern of v into 32 bits.
func Float64(v float64) int32 {
	b := float64Bits(v)
	return int32(b ^ b>>32)
}

// Time hashes t by its Unix millisecond timestamp.
func Time(t time.Time) int32 {
	ms := t.UnixMilli()
	return int32(ms ^ ms>>32)
}

// Enum hashes an enumeration by its canonical string.
func Enum[E ~string](e E) int32 {
	return String(string(e))
}

// List returns an ordered sequence hash using f for each element.
func List[T any](f func(T) int32) func([]T) int32 {
	return func(s []T) int32 {
		h := int32(1)
		for _, e := range s {
			h = 31*h + f(e)
		}
		return h
	}
}

// Map returns an order-independent hash: the sum of key^value over entries.
func Map[V any](f func(V) int32) func(map[string]V) int32 {
	return func(m map[string]V) int32 {
		var h int32
		for k, v := range m {
			h += String(k) ^ f(v)
		}
		return h
	}
}
