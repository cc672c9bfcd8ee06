// Released under an MIT license. See LICENSE.

package task

import (
	"log/slog"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/fn"
)

// Apply evaluates args in the caller's frame and applies f to them.
// The callable cell is recorded on the apply-trace stack for the duration.
// Closure is nil unless f was produced as a closure.
func (t *task) Apply(callable *cell.T, f *fn.T, c *fn.Closure, args *cell.T) (*cell.T, error) {
	if f.Variadic() {
		return nil, errs.Unsupported.New(
			"variadic parameters are not supported: %s", f.Literal(),
		)
	}

	if c != nil && !c.Snapshot() && !t.live(c) {
		return nil, errs.StaleClosure.New(
			"%s applied outside the activation that produced it",
			c.Literal(),
		)
	}

	// All arguments are evaluated before any is pushed so that locals in
	// later arguments still refer to the caller's frame.
	vs := make([]*cell.T, 0, f.Arity())

	for a := args; a != nil; a = a.Next() {
		v, err := t.Eval(a)
		if err != nil {
			return nil, err
		}

		t.trace("argument", v, slog.Int("index", len(vs)))

		vs = append(vs, v)
	}

	if len(vs) != f.Arity() {
		return nil, errs.ArityMismatch.New(
			"%s expected %d arguments, passed %d",
			f.Literal(), f.Arity(), len(vs),
		)
	}

	base := t.locals.Len()
	floor := t.floor

	t.serial++

	err := t.apply.Push(frame{
		callable: callable,
		fn:       f,
		serial:   t.serial,
		base:     base,
	})
	if err != nil {
		return nil, err
	}

	t.floor = t.results.Len()

	defer func() {
		t.floor = floor
		t.locals.Truncate(base)
		t.apply.Pop()
		t.trace("return", nil, slog.Int("base", base))
	}()

	if c != nil {
		for _, v := range c.Env {
			if err := t.local(v); err != nil {
				return nil, err
			}
		}
	}

	for _, v := range vs {
		if err := t.local(v); err != nil {
			return nil, err
		}
	}

	var r *cell.T

	for b := f.Body(); b != nil; b = b.Next() {
		r, err = t.Eval(b)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (t *task) local(v *cell.T) error {
	err := t.locals.Push(v)
	if err == nil {
		t.trace("local", v)
	}

	return err
}
