// Released under an MIT license. See LICENSE.

package cell

import (
	"github.com/joomcode/errorx"

	"github.com/michaelmacinnis/lum/internal/common/errs"
)

// Heap hands out cells for transient values and takes them back.
// A heap belongs to a single execution context and is not locked.
type Heap struct {
	free  *cell // Released cells, chained through next.
	limit int   // Maximum live cells. Zero means unlimited.
	live  int   // Cells allocated and not yet released.
	total uint64
}

// NewHeap creates a heap that allows at most limit live cells.
func NewHeap(limit int) *Heap {
	return &Heap{limit: limit}
}

// Alloc returns an owned cell with tag t.
// Running out of cells is fatal: Alloc panics with an AllocationFailure.
func (h *Heap) Alloc(t Tag) *cell {
	if h.limit > 0 && h.live >= h.limit {
		errorx.Panic(errs.AllocationFailure.New(
			"cell limit of %d reached", h.limit,
		))
	}

	c := h.free
	if c != nil {
		h.free = c.next
		c.next = nil
	} else {
		c = &cell{}
	}

	c.tag = t
	h.live++
	h.total++

	return c
}

// Copy returns an owned shallow copy of c with next as its next link.
func (h *Heap) Copy(c, next *cell) *cell {
	d := h.Alloc(c.tag)
	d.word = c.word
	d.ref = c.ref
	d.next = next

	return d
}

// Float returns an owned Float cell.
func (h *Heap) Float(v float64) *cell {
	c := h.Alloc(Float)
	c.SetFloat(v)

	return c
}

// Int returns an owned Int cell.
func (h *Heap) Int(v int64) *cell {
	c := h.Alloc(Int)
	c.SetInt(v)

	return c
}

// Bool returns an owned Bool cell.
func (h *Heap) Bool(v bool) *cell {
	c := h.Alloc(Bool)
	c.SetBool(v)

	return c
}

// Ref returns an owned cell with tag t and reference v.
func (h *Heap) Ref(t Tag, v interface{}) *cell {
	c := h.Alloc(t)
	c.ref = v

	return c
}

// Live returns the number of cells allocated and not yet released.
func (h *Heap) Live() int {
	return h.live
}

// Total returns the number of allocations made by h.
func (h *Heap) Total() uint64 {
	return h.total
}

// Release returns c to the heap. The cell is cleared so that any remaining
// reference to it sees an Unknown cell rather than stale data.
func (h *Heap) Release(c *cell) {
	*c = cell{next: h.free}
	h.free = c
	h.live--
}
