package types

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alfredjeanlab/mediaconvert/opt"
)

// ValidationError holds a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation failure on a field path such as
// "settings.outputGroups[0].name".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error formats the validation error as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors reports whether the validation error contains any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// validator collects FieldErrors under a path prefix. Children share the
// parent's error list.
type validator struct {
	path string
	ve   *ValidationError
}

func validateRoot(fn func(*validator)) error {
	var ve ValidationError
	fn(&validator{ve: &ve})
	if ve.HasErrors() {
		return &ve
	}
	return nil
}

func (v *validator) at(elem string) *validator {
	if v.path == "" {
		return &validator{path: elem, ve: v.ve}
	}
	return &validator{path: v.path + "." + elem, ve: v.ve}
}

func (v *validator) fail(field, format string, args ...any) {
	name := field
	if v.path != "" {
		name = v.path + "." + field
	}
	v.ve.Errors = append(v.ve.Errors, FieldError{Field: name, Message: fmt.Sprintf(format, args...)})
}

func validateRequired[T any](v *validator, field string, o opt.Optional[T]) {
	if !o.IsSet() {
		v.fail(field, "is required")
	}
}

func validateRange(v *validator, field string, o opt.Optional[int32], lo, hi int32) {
	n, ok := o.Get()
	if ok && (n < lo || n > hi) {
		v.fail(field, "must be between %d and %d, got %d", lo, hi, n)
	}
}

// validateFinite rejects NaN and the infinities, which JSON cannot encode.
func validateFinite(v *validator, field string, o opt.Optional[float64]) {
	f, ok := o.Get()
	if ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		v.fail(field, "must be a finite number, got %v", f)
	}
}

func validatePattern(v *validator, field string, o opt.Optional[string], re *regexp.Regexp) {
	s, ok := o.Get()
	if ok && !re.MatchString(s) {
		v.fail(field, "must match %s, got %q", re, s)
	}
}

func validateLength(v *validator, field string, o opt.Optional[string], lo, hi int) {
	s, ok := o.Get()
	if !ok {
		return
	}
	n := utf8.RuneCountInString(s)
	if n < lo {
		v.fail(field, "must be at least %d characters", lo)
	} else if hi > 0 && n > hi {
		v.fail(field, "must be %d characters or fewer", hi)
	}
}

type enumValue interface {
	~string
	IsValid() bool
}

func validateEnum[E enumValue](v *validator, field string, o opt.Optional[E]) {
	e, ok := o.Get()
	if ok && !e.IsValid() {
		v.fail(field, "invalid value %q", string(e))
	}
}

func validateEnumList[E enumValue](v *validator, field string, o opt.Optional[[]E]) {
	s, _ := o.Get()
	for i, e := range s {
		if !e.IsValid() {
			v.fail(fmt.Sprintf("%s[%d]", field, i), "invalid value %q", string(e))
		}
	}
}

func validateNested[T any](v *validator, field string, o opt.Optional[T], fn func(T, *validator)) {
	if x, ok := o.Get(); ok {
		fn(x, v.at(field))
	}
}

func validateList[T any](v *validator, field string, o opt.Optional[[]T], fn func(T, *validator)) {
	s, _ := o.Get()
	for i, x := range s {
		fn(x, v.at(fmt.Sprintf("%s[%d]", field, i)))
	}
}

func validateMap[T any](v *validator, field string, o opt.Optional[map[string]T], fn func(T, *validator)) {
	m, _ := o.Get()
	for _, k := range sortedKeys(m) {
		fn(m[k], v.at(fmt.Sprintf("%s[%s]", field, k)))
	}
}
