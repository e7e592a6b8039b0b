package codegen

import "text/template"

var recordTmpl = template.Must(template.New("record").Parse(`// Code generated by shapegen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

{{.Imports}}
{{if .Patterns}}{{.Patterns}}
{{end}}{{.Doc}}type {{.Name}} {{.Struct}}
{{range .Members}}
{{.GetterDoc}}func (x {{$.Name}}) {{.Name}}() opt.Optional[{{.GoType}}] {
	return {{.GetterExpr}}
}
{{end}}
// Equal reports whether x and o hold equal values in every field. An absent
// field equals only another absent field.
func (x {{.Name}}) Equal(o {{.Name}}) bool {
	return {{.Equal}}
}

// HashCode combines the field hashes in declaration order, counting absent
// fields as 0. Equal values have equal hash codes.
func (x {{.Name}}) HashCode() int32 {
	h := shape.NewHash()
{{range .Members}}	h.Add({{.Hash}})
{{end}}	return h.Sum()
}

// String renders the present fields for debugging.
func (x {{.Name}}) String() string {
	var p shape.Printer
{{range .Members}}	shape.Print(&p, "{{.Name}}", x.{{.Field}})
{{end}}	return p.String()
}

// Validate checks the documented constraints of x and of every nested
// record. It returns a *ValidationError, or nil when x satisfies them.
func (x {{.Name}}) Validate() error {
	return validateRoot(x.validate)
}

func (x {{.Name}}) validate(v *validator) {{if .Checks}}{
{{range .Checks}}	{{.}}
{{end}}}{{else}}{}{{end}}

func decode{{.Name}}(d *decoder) {{.Name}} {
	var x {{.Name}}
{{range .Members}}	x.{{.Field}} = field(d, "{{.Location}}", {{.Conv}})
{{end}}	d.finish()
	return x
}
{{if .Root}}
// Decode{{.Name}} builds a {{.Name}} from a generic document, such as JSON
// unmarshaled into map[string]any, keyed by wire names. Enumeration strings
// are parsed here. Unknown keys and malformed values fail with a *DecodeError.
func Decode{{.Name}}(doc map[string]any) ({{.Name}}, error) {
	return decodeRoot(doc, decode{{.Name}})
}
{{end}}
// Document returns the present fields of x keyed by wire names. Decoding
// the result yields a value equal to x.
func (x {{.Name}}) Document() map[string]any {
	doc := make(map[string]any)
{{range .Members}}	put(doc, "{{.Location}}", x.{{.Field}}, {{.Enc}})
{{end}}	return doc
}

// MarshalJSON encodes Document as JSON. A NaN or infinite double, which
// Validate rejects, fails with ErrNonFiniteNumber.
func (x {{.Name}}) MarshalJSON() ([]byte, error) {
	return marshalDocument(x.Document())
}

// {{.Name}}Builder accumulates fields for {{.Name}} values. Build returns
// an independent copy, so a builder stays usable afterwards.
type {{.Name}}Builder struct {
	v {{.Name}}
}

// New{{.Name}}Builder returns a builder with every field absent.
func New{{.Name}}Builder() *{{.Name}}Builder {
	return &{{.Name}}Builder{}
}

// ToBuilder returns a builder initialized with the fields of x.
func (x {{.Name}}) ToBuilder() *{{.Name}}Builder {
	return &{{.Name}}Builder{v: x.clone()}
}
{{range .Members}}{{.Setters}}{{end}}
// Build returns the accumulated {{.Name}}.
func (b *{{.Name}}Builder) Build() {{.Name}} {
	return b.v.clone()
}

func (x {{.Name}}) clone() {{.Name}} {
{{if .Clones}}	c := x
{{range .Clones}}	{{.}}
{{end}}	return c
{{else}}	return x
{{end}}}
`))

var enumsTmpl = template.Must(template.New("enums").Parse(`// Code generated by shapegen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "slices"
{{range .Enums}}
{{.Doc}}type {{.Name}} string

// Members of {{.Name}}.
const (
{{range .Consts}}	{{.}}
{{end}})

// Values returns every member in declaration order. The receiver is
// ignored, so the zero value can be used.
func ({{.Name}}) Values() []{{.Name}} {
	return []{{.Name}}{
{{range .Names}}		{{.}},
{{end}}	}
}

// String returns the canonical string.
func (e {{.Name}}) String() string {
	return string(e)
}

// IsValid reports whether e is one of the members.
func (e {{.Name}}) IsValid() bool {
	return slices.Contains(e.Values(), e)
}

// Parse{{.Name}} returns the member whose canonical string is raw.
// It fails with ErrEmptyEnumValue or ErrNoSuchEnumMember, both of which
// match ErrUnrecognizedEnumValue.
func Parse{{.Name}}(raw string) ({{.Name}}, error) {
	return parseEnum("{{.Name}}", raw, {{.Name}}("").Values())
}

// UnmarshalText parses text with Parse{{.Name}}.
func (e *{{.Name}}) UnmarshalText(text []byte) error {
	v, err := Parse{{.Name}}(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
{{end}}`))

var registryTmpl = template.Must(template.New("registry").Parse(`// Code generated by shapegen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

func init() {
{{range .Enums}}	registerEnum("{{.Name}}", {{.Name}}("").Values())
{{end}}}
`))
