package types

import (
	"errors"
	"fmt"

	"github.com/alfredjeanlab/mediaconvert/internal/shape"
)

// ErrDuplicateKey is returned when adding a map entry whose key is already
// present. The existing entry is kept.
var ErrDuplicateKey = shape.ErrDuplicateKey

// ErrUnrecognizedEnumValue matches every failed enumeration lookup.
// Use ErrEmptyEnumValue or ErrNoSuchEnumMember to tell the causes apart.
var ErrUnrecognizedEnumValue = errors.New("unrecognized enum value")

var (
	// ErrEmptyEnumValue is the cause when the raw value is empty.
	ErrEmptyEnumValue = errors.New("value cannot be empty")
	// ErrNoSuchEnumMember is the cause when a non-empty value matches no member.
	ErrNoSuchEnumMember = errors.New("no such member")
)

// EnumError describes a failed lookup of Value in the enumeration Enum.
type EnumError struct {
	Enum  string
	Value string
	Err   error
}

func (e *EnumError) Error() string {
	if errors.Is(e.Err, ErrEmptyEnumValue) {
		return fmt.Sprintf("%s: %v", e.Enum, e.Err)
	}
	return fmt.Sprintf("%s: cannot create enum from %q: %v", e.Enum, e.Value, e.Err)
}

func (e *EnumError) Unwrap() error { return e.Err }

// Is makes every EnumError match ErrUnrecognizedEnumValue.
func (e *EnumError) Is(target error) bool {
	return target == ErrUnrecognizedEnumValue
}
