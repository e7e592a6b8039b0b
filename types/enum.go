package types

import (
	"fmt"
	"sort"
)

// enumRegistry maps each enumeration name to its canonical strings. It is
// filled by the generated init in enum_registry.go.
var enumRegistry = make(map[string][]string)

func registerEnum[E ~string](name string, values []E) {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	enumRegistry[name] = s
}

func parseEnum[E ~string](name, raw string, values []E) (E, error) {
	if raw == "" {
		return "", &EnumError{Enum: name, Err: ErrEmptyEnumValue}
	}
	for _, v := range values {
		if string(v) == raw {
			return v, nil
		}
	}
	return "", &EnumError{Enum: name, Value: raw, Err: ErrNoSuchEnumMember}
}

// EnumNames returns the names of every enumeration in the model, sorted.
func EnumNames() []string {
	names := make([]string, 0, len(enumRegistry))
	for name := range enumRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnumValues returns the canonical strings of the named enumeration in
// declaration order.
func EnumValues(name string) ([]string, bool) {
	values, ok := enumRegistry[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}

// ParseEnumValue looks raw up in the named enumeration. It fails the same way
// the typed Parse functions do.
func ParseEnumValue(name, raw string) (string, error) {
	values, ok := enumRegistry[name]
	if !ok {
		return "", fmt.Errorf("unknown enumeration %q", name)
	}
	return parseEnum(name, raw, values)
}
