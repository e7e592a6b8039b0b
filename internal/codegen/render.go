package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"
)

const modulePath = "github.com/alfredjeanlab/mediaconvert"

// Options controls rendering.
type Options struct {
	// Source names the model file in the generated header.
	Source string
}

// Generate renders every file of the types package, keyed by file name.
// Each file is run through go/format.
func Generate(m *Model, opts Options) (map[string][]byte, error) {
	files := make(map[string][]byte, len(m.Shapes)+2)
	for _, s := range m.Shapes {
		src, err := execute(recordTmpl, newRecordView(m, s, opts))
		if err != nil {
			return nil, fmt.Errorf("codegen: %s: %w", s.Name, err)
		}
		files[FileName(s.Name)] = src
	}

	src, err := execute(enumsTmpl, newEnumsView(m, opts))
	if err != nil {
		return nil, fmt.Errorf("codegen: enums: %w", err)
	}
	files["enums.go"] = src

	src, err = execute(registryTmpl, newEnumsView(m, opts))
	if err != nil {
		return nil, fmt.Errorf("codegen: enum registry: %w", err)
	}
	files["enum_registry.go"] = src
	return files, nil
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}

type recordView struct {
	Source   string
	Package  string
	Imports  string
	Patterns string
	Doc      string
	Name     string
	Struct   string
	Root     bool
	Members  []memberView
	Equal    string
	Checks   []string
	Clones   []string
}

type memberView struct {
	Name       string
	Location   string
	Field      string
	GoType     string
	GetterDoc  string
	GetterExpr string
	Hash       string
	Conv       string
	Enc        string
	Setters    string
}

func newRecordView(m *Model, s *Shape, opts Options) recordView {
	v := recordView{
		Source:  opts.Source,
		Package: m.Metadata.Package,
		Name:    s.Name,
		Root:    s.Root,
		Doc:     comment(fmt.Sprintf("%s represents the %s %s shape.", s.Name, m.Metadata.ServiceID, s.Name), sentence(s.Doc)),
	}

	var std []string
	var patterns, fields []string
	var equals []string
	width, patWidth := 0, 0
	for _, mem := range s.Members {
		if n := len(fieldIdent(mem.Location)); n > width {
			width = n
		}
		if mem.Pattern != "" {
			if n := len(patternVar(s, mem)); n > patWidth {
				patWidth = n
			}
		}
	}

	usesTime, usesRegexp := false, false
	for _, mem := range s.Members {
		f := fieldIdent(mem.Location)
		goType := goType(mem)
		if usesKind(mem, KindTimestamp) {
			usesTime = true
		}
		fields = append(fields, pad(f, width+1)+"opt.Optional["+goType+"]")
		if mem.Pattern != "" {
			usesRegexp = true
			patterns = append(patterns, pad(patternVar(s, mem), patWidth+1)+"= regexp.MustCompile(`"+mem.Pattern+"`)")
		}

		getter := "x." + f
		switch mem.Type {
		case KindList:
			getter = "shape.CloneList(x." + f + ")"
			v.Clones = append(v.Clones, "c."+f+" = shape.CloneList(x."+f+")")
		case KindMap:
			getter = "shape.CloneMap(x." + f + ")"
			v.Clones = append(v.Clones, "c."+f+" = shape.CloneMap(x."+f+")")
		}

		equals = append(equals, equalExpr(mem, f))
		v.Checks = append(v.Checks, checks(s, mem, f)...)
		v.Members = append(v.Members, memberView{
			Name:       mem.Name,
			Location:   mem.Location,
			Field:      f,
			GoType:     goType,
			GetterDoc:  comment(fmt.Sprintf("%s returns the %s field.", mem.Name, mem.Location), sentence(mem.Doc), constraints(mem)),
			GetterExpr: getter,
			Hash:       "shape.HashOf(x." + f + ", " + hashFunc(mem.Type, mem.Ref, mem.Member, mem.Value) + ")",
			Conv:       convFunc(mem.Type, mem.Ref, mem.Member, mem.Value),
			Enc:        encFunc(mem.Type, mem.Ref, mem.Member, mem.Value),
			Setters:    setters(s.Name, mem, f, goType),
		})
	}

	if usesRegexp {
		std = append(std, "regexp")
	}
	if usesTime {
		std = append(std, "time")
	}
	module := []string{modulePath + "/internal/shape"}
	if len(s.Members) > 0 {
		module = append(module, modulePath+"/opt")
	}
	v.Imports = importBlock(std, module)

	if len(patterns) > 0 {
		v.Patterns = "var (\n\t" + strings.Join(patterns, "\n\t") + "\n)\n"
	}
	if len(fields) > 0 {
		v.Struct = "struct {\n\t" + strings.Join(fields, "\n\t") + "\n}"
	} else {
		v.Struct = "struct{}"
	}
	if len(equals) > 0 {
		v.Equal = strings.Join(equals, " &&\n\t\t")
	} else {
		v.Equal = "true"
	}
	return v
}

func importBlock(std, module []string) string {
	var b strings.Builder
	b.WriteString("import (\n")
	for _, p := range std {
		b.WriteString("\t\"" + p + "\"\n")
	}
	if len(std) > 0 {
		b.WriteString("\n")
	}
	for _, p := range module {
		b.WriteString("\t\"" + p + "\"\n")
	}
	b.WriteString(")\n")
	return b.String()
}

func patternVar(s *Shape, mem *Member) string {
	return "pattern" + s.Name + mem.Name
}

func usesKind(mem *Member, kind string) bool {
	return mem.Type == kind || deref(mem.Member).Type == kind || deref(mem.Value).Type == kind
}

func scalarType(kind, ref string) string {
	switch kind {
	case KindString:
		return "string"
	case KindInteger:
		return "int32"
	case KindDouble:
		return "float64"
	case KindTimestamp:
		return "time.Time"
	}
	return ref
}

func goType(mem *Member) string {
	switch mem.Type {
	case KindList:
		return "[]" + scalarType(mem.Member.Type, mem.Member.Ref)
	case KindMap:
		return "map[string]" + scalarType(mem.Value.Type, mem.Value.Ref)
	}
	return scalarType(mem.Type, mem.Ref)
}

func elemHash(kind, ref string) string {
	switch kind {
	case KindString:
		return "shape.String"
	case KindInteger:
		return "shape.Int32"
	case KindDouble:
		return "shape.Float64"
	case KindTimestamp:
		return "shape.Time"
	case KindEnum:
		return "shape.Enum[" + ref + "]"
	}
	return ref + ".HashCode"
}

func hashFunc(kind, ref string, member, value *Elem) string {
	switch kind {
	case KindList:
		return "shape.List(" + elemHash(member.Type, member.Ref) + ")"
	case KindMap:
		return "shape.Map(" + elemHash(value.Type, value.Ref) + ")"
	}
	return elemHash(kind, ref)
}

func elemEqual(kind, ref string) string {
	switch kind {
	case KindDouble:
		return "shape.Float64Equal"
	case KindTimestamp:
		return "shape.TimeEqual"
	case KindStructure:
		return ref + ".Equal"
	}
	return "shape.Eq[" + scalarType(kind, ref) + "]"
}

func equalExpr(mem *Member, f string) string {
	switch mem.Type {
	case KindString, KindInteger, KindEnum:
		return "shape.Equal(x." + f + ", o." + f + ")"
	case KindList:
		return "shape.EqualFunc(x." + f + ", o." + f + ", shape.ListEqual(" + elemEqual(mem.Member.Type, mem.Member.Ref) + "))"
	case KindMap:
		return "shape.EqualFunc(x." + f + ", o." + f + ", shape.MapEqual(" + elemEqual(mem.Value.Type, mem.Value.Ref) + "))"
	}
	return "shape.EqualFunc(x." + f + ", o." + f + ", " + elemEqual(mem.Type, mem.Ref) + ")"
}

func elemConv(kind, ref string) string {
	switch kind {
	case KindString:
		return "asString"
	case KindInteger:
		return "asInt32"
	case KindDouble:
		return "asFloat64"
	case KindTimestamp:
		return "asTime"
	case KindEnum:
		return "asEnum(Parse" + ref + ")"
	}
	return "asStruct(decode" + ref + ")"
}

func convFunc(kind, ref string, member, value *Elem) string {
	switch kind {
	case KindList:
		return "asList(" + elemConv(member.Type, member.Ref) + ")"
	case KindMap:
		return "asMap(" + elemConv(value.Type, value.Ref) + ")"
	}
	return elemConv(kind, ref)
}

func elemEnc(kind, ref string) string {
	switch kind {
	case KindString:
		return "fromString"
	case KindInteger:
		return "fromInt32"
	case KindDouble:
		return "fromFloat64"
	case KindTimestamp:
		return "fromTime"
	case KindEnum:
		return "fromEnum[" + ref + "]"
	}
	return "fromStruct[" + ref + "]"
}

func encFunc(kind, ref string, member, value *Elem) string {
	switch kind {
	case KindList:
		return "fromList(" + elemEnc(member.Type, member.Ref) + ")"
	case KindMap:
		return "fromMap(" + elemEnc(value.Type, value.Ref) + ")"
	}
	return elemEnc(kind, ref)
}

const (
	minInt32 = -1 << 31
	maxInt32 = 1<<31 - 1
)

// hasRange reports whether the member's range constrains anything beyond int32.
func hasRange(mem *Member) bool {
	if mem.Min == nil || mem.Max == nil {
		return false
	}
	return *mem.Min > minInt32 || *mem.Max < maxInt32
}

func constraints(mem *Member) string {
	var parts []string
	if mem.Required {
		parts = append(parts, "Required.")
	}
	if hasRange(mem) {
		parts = append(parts, fmt.Sprintf("Range: %d to %d.", *mem.Min, *mem.Max))
	}
	if mem.Pattern != "" {
		parts = append(parts, "Pattern: `"+mem.Pattern+"`.")
	}
	switch {
	case mem.MinLength != nil && mem.MaxLength != nil:
		parts = append(parts, fmt.Sprintf("Length: %d to %d characters.", *mem.MinLength, *mem.MaxLength))
	case mem.MinLength != nil:
		parts = append(parts, fmt.Sprintf("Minimum length: %d characters.", *mem.MinLength))
	case mem.MaxLength != nil:
		parts = append(parts, fmt.Sprintf("Maximum length: %d characters.", *mem.MaxLength))
	}
	return strings.Join(parts, " ")
}

func checks(s *Shape, mem *Member, f string) []string {
	loc := fmt.Sprintf("%q", mem.Location)
	var out []string
	if mem.Required {
		out = append(out, "validateRequired(v, "+loc+", x."+f+")")
	}
	if hasRange(mem) {
		out = append(out, fmt.Sprintf("validateRange(v, %s, x.%s, %d, %d)", loc, f, *mem.Min, *mem.Max))
	}
	if mem.Pattern != "" {
		out = append(out, "validatePattern(v, "+loc+", x."+f+", "+patternVar(s, mem)+")")
	}
	if mem.MinLength != nil || mem.MaxLength != nil {
		lo, hi := 0, 0
		if mem.MinLength != nil {
			lo = *mem.MinLength
		}
		if mem.MaxLength != nil {
			hi = *mem.MaxLength
		}
		out = append(out, fmt.Sprintf("validateLength(v, %s, x.%s, %d, %d)", loc, f, lo, hi))
	}
	switch mem.Type {
	case KindDouble:
		out = append(out, "validateFinite(v, "+loc+", x."+f+")")
	case KindEnum:
		out = append(out, "validateEnum(v, "+loc+", x."+f+")")
	case KindStructure:
		out = append(out, "validateNested(v, "+loc+", x."+f+", "+mem.Ref+".validate)")
	case KindList:
		switch mem.Member.Type {
		case KindEnum:
			out = append(out, "validateEnumList(v, "+loc+", x."+f+")")
		case KindStructure:
			out = append(out, "validateList(v, "+loc+", x."+f+", "+mem.Member.Ref+".validate)")
		}
	case KindMap:
		if mem.Value.Type == KindStructure {
			out = append(out, "validateMap(v, "+loc+", x."+f+", "+mem.Value.Ref+".validate)")
		}
	}
	return out
}

func setters(shapeName string, mem *Member, f, goType string) string {
	b := shapeName + "Builder"
	n := mem.Name
	var sb strings.Builder
	w := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
	}
	switch mem.Type {
	case KindList:
		elem := strings.TrimPrefix(goType, "[]")
		w("\n// With%s appends v to %s, initializing it when absent.\n", n, n)
		w("func (b *%s) With%s(v ...%s) *%s {\n", b, n, elem, b)
		w("\tb.v.%s = shape.Append(b.v.%s, v...)\n\treturn b\n}\n", f, f)
		w("\n// Set%s replaces %s with a copy of o, clearing it when o is absent.\n", n, n)
		w("func (b *%s) Set%s(o opt.Optional[%s]) *%s {\n", b, n, goType, b)
		w("\tb.v.%s = shape.CloneList(o)\n\treturn b\n}\n", f)
	case KindMap:
		elem := strings.TrimPrefix(goType, "map[string]")
		w("\n// With%s replaces %s with a copy of v.\n", n, n)
		w("func (b *%s) With%s(v %s) *%s {\n", b, n, goType, b)
		w("\tb.v.%s = shape.CloneMap(opt.Some(v))\n\treturn b\n}\n", f)
		w("\n// Set%s replaces %s with a copy of o, clearing it when o is absent.\n", n, n)
		w("func (b *%s) Set%s(o opt.Optional[%s]) *%s {\n", b, n, goType, b)
		w("\tb.v.%s = shape.CloneMap(o)\n\treturn b\n}\n", f)
		w("\n// Add%sEntry adds key to %s, creating the map when absent. It returns\n", n, n)
		w("// ErrDuplicateKey and keeps the existing entry when key is already present.\n")
		w("func (b *%s) Add%sEntry(key string, value %s) error {\n", b, n, elem)
		w("\tm, err := shape.AddEntry(b.v.%s, key, value)\n\tif err != nil {\n\t\treturn err\n\t}\n", f)
		w("\tb.v.%s = m\n\treturn nil\n}\n", f)
		w("\n// Clear%sEntries resets %s to an empty map. The field stays present.\n", n, n)
		w("func (b *%s) Clear%sEntries() *%s {\n", b, n, b)
		w("\tb.v.%s = opt.Some(%s{})\n\treturn b\n}\n", f, goType)
	default:
		if mem.Type == KindEnum {
			w("\n// With%s sets %s. Parse%s converts raw strings.\n", n, n, mem.Ref)
		} else {
			w("\n// With%s sets %s.\n", n, n)
		}
		w("func (b *%s) With%s(v %s) *%s {\n", b, n, goType, b)
		w("\tb.v.%s = opt.Some(v)\n\treturn b\n}\n", f)
		w("\n// Set%s replaces %s, clearing it when o is absent.\n", n, n)
		w("func (b *%s) Set%s(o opt.Optional[%s]) *%s {\n", b, n, goType, b)
		w("\tb.v.%s = o\n\treturn b\n}\n", f)
	}
	return sb.String()
}

type enumView struct {
	Name   string
	Doc    string
	Consts []string
	Names  []string
}

type enumsView struct {
	Source  string
	Package string
	Enums   []enumView
}

func newEnumsView(m *Model, opts Options) enumsView {
	users := m.enumUsers()
	v := enumsView{Source: opts.Source, Package: m.Metadata.Package}
	enums := append([]*Enum(nil), m.Enums...)
	sort.Slice(enums, func(i, j int) bool { return enums[i].Name < enums[j].Name })
	for _, e := range enums {
		ev := enumView{Name: e.Name}
		var usedBy string
		if u := users[e.Name]; len(u) > 0 {
			usedBy = "Used by " + strings.Join(u, ", ") + "."
		}
		ev.Doc = comment(e.Name+" is a closed set of canonical "+m.Metadata.ServiceID+" strings.", usedBy)
		width := 0
		for _, val := range e.Values {
			c := EnumConst(e.Name, val)
			ev.Names = append(ev.Names, c)
			if len(c) > width {
				width = len(c)
			}
		}
		for i, val := range e.Values {
			ev.Consts = append(ev.Consts, pad(ev.Names[i], width+1)+e.Name+" = "+fmt.Sprintf("%q", val))
		}
		v.Enums = append(v.Enums, ev)
	}
	return v
}
