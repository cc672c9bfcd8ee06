// Released under an MIT license. See LICENSE.

package task

import (
	"log/slog"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/fn"
)

// Produce returns an owned Function cell for the compiled fn f.
//
// A closure-needing f is bound to the activation it is produced in. In
// snapshot mode the locals it reaches are copied now. In stack mode the
// activation is recorded and must still be on top when f is applied.
func (t *task) Produce(f *fn.T) (*cell.T, error) {
	if !f.Compiled() {
		return nil, errs.MalformedForm.New("%s is not compiled", f.Literal())
	}

	if !f.NeedsClosure() {
		return t.heap.Ref(cell.Function, f), nil
	}

	n := f.Reach()
	if t.locals.Len() < n {
		return nil, errs.StaleClosure.New(
			"%s needs %d enclosing locals, %d available",
			f.Literal(), n, t.locals.Len(),
		)
	}

	c := &fn.Closure{T: f}

	if t.mode == Snapshot {
		c.Env = make([]*cell.T, n)

		for i := range c.Env {
			v, _ := t.locals.Peek(n - i - 1)
			c.Env[i] = cell.Copy(v, nil)
		}

		t.trace("snapshot", nil, slog.String("fn", f.Literal()))
	} else {
		a, ok := t.activation()
		if !ok {
			return nil, errs.StaleClosure.New(
				"%s produced outside any activation", f.Literal(),
			)
		}

		c.Serial = a.serial
		c.Depth = t.locals.Len()
	}

	return t.heap.Ref(cell.Function, c), nil
}

// The activation method returns the innermost function application.
func (t *task) activation() (frame, bool) {
	for i := t.apply.Len() - 1; i >= 0; i-- {
		if a := t.apply.At(i); a.fn != nil {
			return a, true
		}
	}

	return frame{}, false
}

// The live method returns true if the activation that produced c is still
// in progress and its locals are the top of the locals stack.
func (t *task) live(c *fn.Closure) bool {
	if t.locals.Len() != c.Depth {
		return false
	}

	for i := t.apply.Len() - 1; i >= 0; i-- {
		if a := t.apply.At(i); a.fn != nil && a.serial == c.Serial {
			return true
		}
	}

	return false
}
