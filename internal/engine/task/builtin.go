// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
)

// Builtin is a primitive operation. It receives its arguments unevaluated
// and decides for itself which to evaluate and when.
type Builtin struct {
	Name     string
	Params   int  // Minimum number of parameters. Informational.
	Variadic bool // Accepts more than Params arguments. Informational.

	// Raw is the number of leading arguments the compiler leaves as written.
	Raw int

	// Compiles is set for the builtin that creates functions. The compiler
	// compiles literals headed by it in place.
	Compiles bool

	// Impl must return a cell it owns: a fresh one or one it has taken.
	Impl func(t *T, args *cell.T) (*cell.T, error)
}

// Literal returns the literal representation of the builtin b.
func (b *Builtin) Literal() string {
	return "#<builtin " + b.Name + ">"
}

// ToBuiltin returns the builtin held by c, if any.
func ToBuiltin(c *cell.T) *Builtin {
	if !c.Is(cell.Builtin) {
		return nil
	}

	b, _ := c.Ref().(*Builtin)

	return b
}
