package codegen

import (
	"go/token"
	"strings"
	"unicode"
)

// EnumConst names the constant for one enum member: the enum name followed
// by the canonical value in CamelCase, e.g. H264CodecLevelLevel41.
func EnumConst(enum, value string) string {
	var b strings.Builder
	b.WriteString(enum)
	for _, part := range strings.Split(value, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

// fieldIdent is the unexported struct field for a member location.
func fieldIdent(location string) string {
	if token.IsKeyword(location) {
		if location == "type" {
			return "typ"
		}
		return location + "_"
	}
	return location
}

// FileName is the generated file for a shape, e.g. H264QvbrSettings ->
// h264_qvbr_settings.go.
func FileName(shape string) string {
	var b strings.Builder
	rs := []rune(shape)
	for i, r := range rs {
		if unicode.IsUpper(r) && i > 0 {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String() + ".go"
}

// commentWidth is the text width of wrapped doc comments, excluding "// ".
const commentWidth = 77

// sentence normalizes model documentation into one paragraph that gofmt
// leaves alone: whitespace collapsed, no leading list marker, and terminal
// punctuation so it is never taken for a heading.
func sentence(doc string) string {
	s := strings.Join(strings.Fields(doc), " ")
	s = strings.TrimLeft(s, "-*+ ")
	if s == "" {
		return ""
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
	default:
		s += "."
	}
	return s
}

// wrap fills words greedily into lines of at most width characters.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, w := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(w) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(w)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// comment renders paragraphs as a // comment block, blank // lines between
// paragraphs. Empty paragraphs are dropped.
func comment(paragraphs ...string) string {
	var b strings.Builder
	first := true
	for _, p := range paragraphs {
		lines := wrap(p, commentWidth)
		if len(lines) == 0 {
			continue
		}
		if !first {
			b.WriteString("//\n")
		}
		first = false
		for _, l := range lines {
			b.WriteString("// ")
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// pad right-pads s with spaces to width, the column alignment gofmt applies
// to struct fields, const specs and var specs.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
