package shape

import (
	"fmt"
	"strings"

	"github.com/alfredjeanlab/mediaconvert/opt"
)

// Printer renders "{Name: value, Name: value}" listing only present fields.
// The zero value is ready to use. Do not copy a Printer after first use.
type Printer struct {
	b strings.Builder
	n int
}

// Print appends name and the held value of o, skipping absent fields.
func Print[T any](p *Printer, name string, o opt.Optional[T]) {
	v, ok := o.Get()
	if !ok {
		return
	}
	if p.n > 0 {
		p.b.WriteString(", ")
	}
	p.b.WriteString(name)
	p.b.WriteString(": ")
	fmt.Fprint(&p.b, v)
	p.n++
}

func (p *Printer) String() string {
	return "{" + p.b.String() + "}"
}
