// Package codegen turns the JSON service model in api/ into the Go record and
// enumeration types of package types.
package codegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Member kinds.
const (
	KindString    = "string"
	KindInteger   = "integer"
	KindDouble    = "double"
	KindTimestamp = "timestamp"
	KindEnum      = "enum"
	KindStructure = "structure"
	KindList      = "list"
	KindMap       = "map"
)

// Model is the service model: every record shape and every enumeration.
type Model struct {
	Metadata Metadata `json:"metadata"`
	Shapes   []*Shape `json:"shapes"`
	Enums    []*Enum  `json:"enums"`
}

// Metadata identifies the service the model describes.
type Metadata struct {
	ServiceID  string `json:"serviceId"`
	APIVersion string `json:"apiVersion"`
	Package    string `json:"package"`
}

// Shape is one record type.
type Shape struct {
	Name    string    `json:"name"`
	Kind    string    `json:"kind"`
	Doc     string    `json:"doc"`
	Root    bool      `json:"root,omitempty"`
	Members []*Member `json:"members"`
}

// Member is one field of a shape, in declaration order.
type Member struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Type      string `json:"type"`
	Ref       string `json:"ref,omitempty"`
	Member    *Elem  `json:"member,omitempty"`
	Value     *Elem  `json:"value,omitempty"`
	Doc       string `json:"doc"`
	Required  bool   `json:"required,omitempty"`
	Min       *int64 `json:"min,omitempty"`
	Max       *int64 `json:"max,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
}

// Elem is the element type of a list or the value type of a map.
type Elem struct {
	Type string `json:"type"`
	Ref  string `json:"ref,omitempty"`
}

// Enum is one closed set of canonical strings.
type Enum struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Load reads and checks a model file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a model document. Unknown keys are rejected.
func Parse(data []byte) (*Model, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var m Model
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("codegen: parse model: %w", err)
	}
	if err := m.Check(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ModelError lists every problem found by Check.
type ModelError struct {
	Problems []string
}

func (e *ModelError) Error() string {
	return "codegen: invalid model: " + strings.Join(e.Problems, "; ")
}

var reservedMethods = map[string]bool{
	"Equal":     true,
	"HashCode":  true,
	"String":    true,
	"Validate":  true,
	"ToBuilder": true,
}

// Check verifies references, element kinds, Go name collisions, and that
// the structure graph is acyclic.
func (m *Model) Check() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	shapes := make(map[string]*Shape, len(m.Shapes))
	enums := make(map[string]*Enum, len(m.Enums))
	idents := make(map[string]string)
	claim := func(ident, owner string) {
		if prev, ok := idents[ident]; ok {
			add("identifier %s declared by both %s and %s", ident, prev, owner)
			return
		}
		idents[ident] = owner
	}

	for _, e := range m.Enums {
		if _, dup := enums[e.Name]; dup {
			add("duplicate enum %s", e.Name)
			continue
		}
		enums[e.Name] = e
		claim(e.Name, "enum "+e.Name)
		claim("Parse"+e.Name, "enum "+e.Name)
		if len(e.Values) == 0 {
			add("enum %s has no values", e.Name)
		}
		for _, v := range e.Values {
			claim(EnumConst(e.Name, v), "enum "+e.Name)
		}
	}
	for _, s := range m.Shapes {
		if _, dup := shapes[s.Name]; dup {
			add("duplicate shape %s", s.Name)
			continue
		}
		shapes[s.Name] = s
		claim(s.Name, "shape "+s.Name)
		claim(s.Name+"Builder", "shape "+s.Name)
		claim("New"+s.Name+"Builder", "shape "+s.Name)
		if s.Root {
			claim("Decode"+s.Name, "shape "+s.Name)
		}
	}

	checkRef := func(owner string, kind, ref string) {
		switch kind {
		case KindStructure:
			if shapes[ref] == nil {
				add("%s: unknown structure %q", owner, ref)
			}
		case KindEnum:
			if enums[ref] == nil {
				add("%s: unknown enum %q", owner, ref)
			}
		case KindString, KindInteger, KindDouble, KindTimestamp:
		default:
			add("%s: unsupported element kind %q", owner, kind)
		}
	}

	for _, s := range m.Shapes {
		seen := make(map[string]bool)
		for _, mem := range s.Members {
			owner := s.Name + "." + mem.Location
			if seen[mem.Name] {
				add("%s: duplicate member", owner)
			}
			seen[mem.Name] = true
			if reservedMethods[mem.Name] {
				add("%s: member name collides with a generated method", owner)
			}
			switch mem.Type {
			case KindList:
				if mem.Member == nil {
					add("%s: list without member", owner)
					continue
				}
				checkRef(owner, mem.Member.Type, mem.Member.Ref)
			case KindMap:
				if mem.Value == nil {
					add("%s: map without value", owner)
					continue
				}
				checkRef(owner, mem.Value.Type, mem.Value.Ref)
			default:
				checkRef(owner, mem.Type, mem.Ref)
			}
			if (mem.Min != nil || mem.Max != nil) && mem.Type != KindInteger {
				add("%s: range on non-integer member", owner)
			}
			if (mem.Pattern != "" || mem.MinLength != nil || mem.MaxLength != nil) && mem.Type != KindString {
				add("%s: pattern or length on non-string member", owner)
			}
		}
	}

	if len(problems) == 0 {
		if cycle := findCycle(m.Shapes, shapes); cycle != nil {
			add("structure cycle %s", strings.Join(cycle, " -> "))
		}
	}

	if len(problems) > 0 {
		return &ModelError{Problems: problems}
	}
	return nil
}

func structRefs(s *Shape) []string {
	var refs []string
	for _, mem := range s.Members {
		for _, e := range []Elem{{mem.Type, mem.Ref}, deref(mem.Member), deref(mem.Value)} {
			if e.Type == KindStructure {
				refs = append(refs, e.Ref)
			}
		}
	}
	return refs
}

func deref(e *Elem) Elem {
	if e == nil {
		return Elem{}
	}
	return *e
}

// findCycle returns one cycle of structure references, or nil.
func findCycle(order []*Shape, shapes map[string]*Shape) []string {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(shapes))
	var stack []string
	var visit func(name string) []string
	visit = func(name string) []string {
		switch state[name] {
		case visiting:
			for i, n := range stack {
				if n == name {
					return append(append([]string{}, stack[i:]...), name)
				}
			}
		case done:
			return nil
		}
		state[name] = visiting
		stack = append(stack, name)
		for _, ref := range structRefs(shapes[name]) {
			if c := visit(ref); c != nil {
				return c
			}
		}
		stack = stack[:len(stack)-1]
		state[name] = done
		return nil
	}
	for _, s := range order {
		if c := visit(s.Name); c != nil {
			return c
		}
	}
	return nil
}

// enumUsers maps each enum to the "Shape.Member" names that reference it,
// in model order.
func (m *Model) enumUsers() map[string][]string {
	users := make(map[string][]string)
	for _, s := range m.Shapes {
		for _, mem := range s.Members {
			for _, e := range []Elem{{mem.Type, mem.Ref}, deref(mem.Member), deref(mem.Value)} {
				if e.Type == KindEnum {
					users[e.Ref] = append(users[e.Ref], s.Name+"."+mem.Name)
				}
			}
		}
	}
	for _, u := range users {
		sort.Strings(u)
	}
	return users
}
