// Released under an MIT license. See LICENSE.

package fn

import (
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
)

// Closure is a closure-needing fn produced inside an activation.
//
// In snapshot mode Env holds copies of the Reach() locals that were on top
// of the stack when the closure was produced, oldest first. In stack mode
// Env is nil and Serial/Depth identify the producing activation, which must
// still be live when the closure is applied.
type Closure struct {
	*T
	Env    []*cell.T
	Serial uint64
	Depth  int
}

// Literal returns the literal representation of the closure c.
func (c *Closure) Literal() string {
	l := c.T.Literal()

	return l[:len(l)-1] + " closure>"
}

// Snapshot returns true if c carries its own copy of the enclosing locals.
func (c *Closure) Snapshot() bool {
	return c.Env != nil
}

// Target returns the fn and closure (nil for plain fns) held by the cell c.
func Target(c *cell.T) (*T, *Closure) {
	switch v := c.Ref().(type) {
	case *T:
		return v, nil
	case *Closure:
		return v.T, v
	}

	return nil, nil
}
