// Released under an MIT license. See LICENSE.

// Package fn provides lum's user-defined function type.
package fn

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
)

// Param describes a single function parameter.
type Param struct {
	Name     *sym.T
	Type     cell.Tag // Unused. Always cell.Unknown.
	Variadic bool     // Name ends in "...". Recorded but not applied.
}

// T (fn) is a function literal. It is created uncompiled, compiled once, and
// is never modified after that. Applying it only touches the caller's stacks.
type T struct {
	body     *cell.T
	compiled bool
	params   []Param
	reach    int
}

type fn = T

// New creates an uncompiled fn from the List params and the body chain.
func New(params, body *cell.T) (*fn, error) {
	if !params.Is(cell.List) {
		return nil, errs.MalformedForm.New("parameter list is not a list")
	}

	if body == nil {
		return nil, errs.MalformedForm.New("function has no body")
	}

	f := &fn{body: body}

	for p := params.Head(); p != nil; p = p.Next() {
		i := len(f.params)

		if !p.Is(cell.Symbol) {
			return nil, errs.MalformedForm.New(
				"function parameter #%d is not a symbol", i,
			)
		}

		s := sym.To(p)
		if s.Qualified() {
			return nil, errs.MalformedForm.New(
				"function parameter #%d is not an unqualified symbol", i,
			)
		}

		f.params = append(f.params, Param{
			Name:     s,
			Type:     cell.Unknown,
			Variadic: s.Variadic(),
		})
	}

	return f, nil
}

// Arity returns the number of parameters declared by f.
func (f *fn) Arity() int {
	return len(f.params)
}

// Body returns f's body chain. Before compilation this is the source body.
func (f *fn) Body() *cell.T {
	return f.body
}

// Compiled returns true once f has been compiled.
func (f *fn) Compiled() bool {
	return f.compiled
}

// Complete installs the compiled body. It may only be called once.
func (f *fn) Complete(body *cell.T) {
	if f.compiled {
		panic("function compiled twice")
	}

	f.body = body
	f.compiled = true
}

// Index returns the declared index of the parameter called name or -1.
func (f *fn) Index(name *sym.T) int {
	for i, p := range f.params {
		if p.Name == name {
			return i
		}
	}

	return -1
}

// Literal returns the literal representation of the fn f.
func (f *fn) Literal() string {
	var b strings.Builder

	b.WriteString("#<fn(")

	for i, p := range f.params {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(p.Name.Literal())

		if p.Type != cell.Unknown {
			b.WriteString(":" + p.Type.String())
		}
	}

	b.WriteString(")")

	if f.reach > 0 {
		b.WriteString(" reach=" + strconv.Itoa(f.reach))
	}

	b.WriteString(">")

	return b.String()
}

// NeedsClosure returns true if f refers to locals outside its own params.
func (f *fn) NeedsClosure() bool {
	return f.reach > 0
}

// Reach returns the number of enclosing locals, below its own parameters,
// that f's body refers to (directly or through nested literals).
func (f *fn) Reach() int {
	return f.reach
}

// Variadic returns true if any of f's parameters is variadic.
func (f *fn) Variadic() bool {
	for _, p := range f.params {
		if p.Variadic {
			return true
		}
	}

	return false
}

// Widen raises f's reach to at least n. It is only valid during compilation.
func (f *fn) Widen(n int) {
	if f.compiled {
		panic("function already compiled")
	}

	if n > f.reach {
		f.reach = n
	}
}
