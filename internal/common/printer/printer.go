// Released under an MIT license. See LICENSE.

// Package printer renders cells in lum's reader syntax.
package printer

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/lum/internal/common/interface/literal"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
)

const indent = "  "

// Literal returns the literal representation of the single cell c.
func Literal(c *cell.T) string {
	var b strings.Builder

	write(&b, c)

	return b.String()
}

// Chain returns the literal representations of c and its successors,
// separated by spaces.
func Chain(c *cell.T) string {
	var b strings.Builder

	chain(&b, c)

	return b.String()
}

// Width returns the literal representation of c, breaking lists that do
// not fit in width columns so that each child starts a new, indented line.
func Width(c *cell.T, width int) string {
	var b strings.Builder

	wrap(&b, c, 0, width)

	return b.String()
}

func chain(b *strings.Builder, c *cell.T) {
	for first := true; c != nil; c = c.Next() {
		if !first {
			b.WriteByte(' ')
		}

		write(b, c)

		first = false
	}
}

func float(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}

	return s + ".0"
}

func wrap(b *strings.Builder, c *cell.T, depth, width int) {
	s := Literal(c)
	if !c.Is(cell.List) || c.Head() == nil || len(indent)*depth+len(s) <= width {
		b.WriteString(s)

		return
	}

	b.WriteByte('(')
	write(b, c.Head())

	for e := c.Head().Next(); e != nil; e = e.Next() {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(indent, depth+1))
		wrap(b, e, depth+1, width)
	}

	b.WriteByte(')')
}

func write(b *strings.Builder, c *cell.T) {
	if c == nil {
		b.WriteString("()")

		return
	}

	switch c.Tag() {
	case cell.Bool:
		b.WriteString(strconv.FormatBool(c.Bool()))
	case cell.Int:
		b.WriteString(strconv.FormatInt(c.Int(), 10))
	case cell.Float:
		b.WriteString(float(c.Float()))
	case cell.Keyword:
		b.WriteString(":" + sym.To(c).Literal())
	case cell.Symbol:
		b.WriteString(sym.To(c).Literal())
	case cell.Local:
		b.WriteString("#<local " + strconv.Itoa(c.Offset()) + ">")
	case cell.Quote:
		b.WriteByte('\'')
		write(b, c.Quoted())
	case cell.List:
		b.WriteByte('(')
		chain(b, c.Head())
		b.WriteByte(')')
	case cell.Builtin, cell.Function, cell.Namespace, cell.Var:
		b.WriteString(literal.String(c.Ref()))
	default:
		b.WriteString("#<unknown>")
	}
}
