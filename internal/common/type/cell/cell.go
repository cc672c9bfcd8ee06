// Released under an MIT license. See LICENSE.

// Package cell provides lum's only node type.
//
// A cell is a tag, a payload, and a link to the next sibling. Lists are not
// built from pairs: a list is a single List cell whose payload is the first
// cell of its children, and the children are chained through their next
// links. Argument lists, function bodies and whole programs are all chains.
package cell

import (
	"math"
)

// Tag discriminates a cell's payload.
type Tag uint8

// Cell tags.
const (
	Unknown Tag = iota
	Bool
	Int
	Float
	Builtin
	Function
	Symbol
	Keyword
	Var
	Local
	Quote
	List
	Namespace
)

// String returns the name of the tag t.
func (t Tag) String() string {
	switch t {
	case Unknown:
		return "unknown"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Builtin:
		return "builtin"
	case Function:
		return "fn"
	case Symbol:
		return "symbol"
	case Keyword:
		return "keyword"
	case Var:
		return "var"
	case Local:
		return "local"
	case Quote:
		return "quote"
	case List:
		return "list"
	case Namespace:
		return "ns"
	}

	return "invalid"
}

// T (cell) is the universal node for lum code and data.
type T struct {
	tag  Tag
	word uint64      // Int, Float, Bool and Local payloads.
	ref  interface{} // Everything else.
	next *T
}

type cell = T

// New creates a cell with tag t and no payload.
func New(t Tag, next *cell) *cell {
	return &cell{tag: t, next: next}
}

// NewBool creates a Bool cell.
func NewBool(v bool, next *cell) *cell {
	c := New(Bool, next)
	c.SetBool(v)

	return c
}

// NewInt creates an Int cell.
func NewInt(v int64, next *cell) *cell {
	c := New(Int, next)
	c.SetInt(v)

	return c
}

// NewFloat creates a Float cell.
func NewFloat(v float64, next *cell) *cell {
	c := New(Float, next)
	c.SetFloat(v)

	return c
}

// NewLocal creates a Local cell referring to the local at offset from the top.
func NewLocal(offset int, next *cell) *cell {
	c := New(Local, next)
	c.SetInt(int64(offset))

	return c
}

// NewList creates a List cell with the chain starting at head as children.
func NewList(head, next *cell) *cell {
	c := New(List, next)
	c.ref = head

	return c
}

// NewQuote creates a Quote cell wrapping v.
func NewQuote(v, next *cell) *cell {
	c := New(Quote, next)
	c.ref = v

	return c
}

// NewRef creates a cell with tag t and the reference v as payload.
func NewRef(t Tag, v interface{}, next *cell) *cell {
	c := New(t, next)
	c.ref = v

	return c
}

// Copy creates a shallow copy of c with next as its next link.
// The copy shares c's payload but is owned separately.
func Copy(c, next *cell) *cell {
	d := *c
	d.next = next

	return &d
}

// Bool returns the boolean payload of c.
func (c *cell) Bool() bool {
	return c.word != 0
}

// Float returns the floating-point payload of c.
func (c *cell) Float() float64 {
	return math.Float64frombits(c.word)
}

// Head returns the first child of the List c.
func (c *cell) Head() *cell {
	h, _ := c.ref.(*cell)

	return h
}

// Int returns the integer payload of c.
func (c *cell) Int() int64 {
	return int64(c.word)
}

// Is returns true if c is not nil and has one of the tags ts.
func (c *cell) Is(ts ...Tag) bool {
	if c == nil {
		return false
	}

	for _, t := range ts {
		if c.tag == t {
			return true
		}
	}

	return false
}

// Next returns the cell following c in its chain.
func (c *cell) Next() *cell {
	return c.next
}

// Offset returns the stack offset stored in the Local c.
func (c *cell) Offset() int {
	return int(c.word)
}

// Quoted returns the child wrapped by the Quote c.
func (c *cell) Quoted() *cell {
	q, _ := c.ref.(*cell)

	return q
}

// Ref returns the reference payload of c.
func (c *cell) Ref() interface{} {
	return c.ref
}

// SetBool stores v as c's payload.
func (c *cell) SetBool(v bool) {
	c.word = 0
	if v {
		c.word = 1
	}
}

// SetFloat stores v as c's payload.
func (c *cell) SetFloat(v float64) {
	c.word = math.Float64bits(v)
}

// SetHead replaces the first child of the List c.
func (c *cell) SetHead(h *cell) {
	c.ref = h
}

// SetInt stores v as c's payload.
func (c *cell) SetInt(v int64) {
	c.word = uint64(v)
}

// SetNext replaces the cell following c.
func (c *cell) SetNext(n *cell) {
	c.next = n
}

// SetRef stores v as c's payload.
func (c *cell) SetRef(v interface{}) {
	c.ref = v
}

// Tag returns c's tag.
func (c *cell) Tag() Tag {
	return c.tag
}

// Same returns true if a and b have the same tag and payload.
// References are compared by identity.
func Same(a, b *cell) bool {
	return a.tag == b.tag && a.word == b.word && a.ref == b.ref
}

// Length returns the number of cells in the chain starting at c.
func Length(c *cell) int {
	n := 0
	for ; c != nil; c = c.next {
		n++
	}

	return n
}

// Chain links cs together and returns the first, or nil if cs is empty.
func Chain(cs ...*cell) *cell {
	var first, last *cell

	for _, c := range cs {
		if last == nil {
			first = c
		} else {
			last.next = c
		}

		last = c
	}

	if last != nil {
		last.next = nil
	}

	return first
}

// Numeric returns true if c is an Int or Float.
func (c *cell) Numeric() bool {
	return c.Is(Int, Float)
}
