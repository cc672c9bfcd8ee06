// Released under an MIT license. See LICENSE.

// Package slot provides lum's variable (Var) type.
package slot

import (
	"sync/atomic"

	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
)

// T (slot) binds a qualified symbol to a value. The identity of a slot never
// changes; its value is replaced with a single atomic exchange.
type T struct {
	symbol *sym.T
	value  atomic.Pointer[cell.T]
}

type slot = T

// New creates a new slot for the qualified symbol s holding c (nil: unbound).
func New(s *sym.T, c *cell.T) *slot {
	v := &slot{symbol: s}
	if c != nil {
		v.value.Store(c)
	}

	return v
}

// Bound returns true if the slot v holds a value.
func (v *slot) Bound() bool {
	return v.value.Load() != nil
}

// Get returns the cell in slot v or nil if v is unbound.
func (v *slot) Get() *cell.T {
	return v.value.Load()
}

// Literal returns the literal representation of the slot v.
func (v *slot) Literal() string {
	if !v.Bound() {
		return "#<unbound #'" + v.symbol.String() + ">"
	}

	return "#'" + v.symbol.String()
}

// Set replaces the cell in slot v with c and returns the previous cell.
func (v *slot) Set(c *cell.T) *cell.T {
	return v.value.Swap(c)
}

// Symbol returns the qualified symbol naming v.
func (v *slot) Symbol() *sym.T {
	return v.symbol
}
