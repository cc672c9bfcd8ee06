// Released under an MIT license. See LICENSE.

package task

import (
	"log/slog"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/printer"
	"github.com/michaelmacinnis/lum/internal/common/struct/slot"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/fn"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
)

// Eval evaluates c. The result is either borrowed (a literal, a bound value,
// a local) or a transient result that t owns until it is taken or released.
func (t *task) Eval(c *cell.T) (*cell.T, error) {
	switch c.Tag() {
	case cell.Bool, cell.Int, cell.Float, cell.Builtin, cell.Function,
		cell.Keyword, cell.Namespace:
		return c, nil

	case cell.Symbol:
		s := sym.To(c)

		v := t.reg.Resolve(t.current, s)
		if v == nil {
			return nil, errs.Named(
				errs.UnresolvedSymbol, s.String(),
				"'%s' is not defined", s.Literal(),
			)
		}

		return t.value(v)

	case cell.Var:
		v, _ := c.Ref().(*slot.T)
		if v == nil {
			return nil, errs.MalformedForm.New("var cell has no var")
		}

		return t.value(v)

	case cell.Local:
		v, ok := t.locals.Peek(c.Offset())
		if !ok {
			return nil, errs.CapacityExceeded.New(
				"locals stack has no entry at offset %d", c.Offset(),
			)
		}

		return v, nil

	case cell.Quote:
		return c.Quoted(), nil

	case cell.List:
		if c.Head() == nil {
			return c, nil
		}

		return t.evalList(c)
	}

	return nil, errs.MalformedForm.New(
		"cannot evaluate %s cell", c.Tag(),
	)
}

func (t *task) evalList(c *cell.T) (*cell.T, error) {
	entry := t.results.Len()

	head, err := t.Eval(c.Head())
	if err != nil {
		return nil, t.fail(entry, err)
	}

	args := c.Head().Next()

	var r *cell.T

	switch head.Tag() {
	case cell.Builtin:
		b := ToBuiltin(head)
		if b == nil {
			return nil, t.fail(entry, errs.TypeMismatch.New(
				"builtin cell has no builtin",
			))
		}

		r, err = t.call(head, b, args)
		if err != nil {
			return nil, t.fail(entry, err)
		}

		// Builtins return owned cells. Push it so it can be taken.
		return t.keep(entry, r, true)

	case cell.Function:
		f, closure := fn.Target(head)
		if f == nil {
			return nil, t.fail(entry, errs.TypeMismatch.New(
				"function cell has no function",
			))
		}

		r, err = t.Apply(head, f, closure, args)
		if err != nil {
			return nil, t.fail(entry, err)
		}

		return t.keep(entry, r, false)
	}

	return nil, t.fail(entry, errs.TypeMismatch.New(
		"%s is not callable", printer.Literal(head),
	))
}

func (t *task) call(callable *cell.T, b *Builtin, args *cell.T) (*cell.T, error) {
	err := t.apply.Push(frame{callable: callable, base: t.locals.Len()})
	if err != nil {
		return nil, err
	}

	defer t.apply.Pop()

	t.trace("builtin", callable, slog.Int("args", cell.Length(args)))

	return b.Impl(t, args)
}

// The keep method releases every transient result above entry except r.
// If r was one of them, or owned is set, r is pushed as the new top.
func (t *task) keep(entry int, r *cell.T, owned bool) (*cell.T, error) {
	found := false

	for i := t.results.Len() - 1; i >= entry; i-- {
		c := t.results.At(i)
		if c == r && !found {
			found = true

			continue
		}

		t.release(c)
	}

	t.results.Truncate(entry)

	if !found && !owned {
		return r, nil
	}

	err := t.push(r)
	if err != nil {
		t.release(r)

		return nil, err
	}

	return r, nil
}

func (t *task) fail(entry int, err error) error {
	t.unwind(entry)

	return err
}

func (t *task) push(r *cell.T) error {
	err := t.results.Push(r)
	if err == nil {
		t.trace("push", r)
	}

	return err
}

func (t *task) release(c *cell.T) {
	t.trace("release", c)
	t.heap.Release(c)
}

// The unwind method releases every transient result above entry.
func (t *task) unwind(entry int) {
	for t.results.Len() > entry {
		t.release(t.results.Pop())
	}
}

func (t *task) value(v *slot.T) (*cell.T, error) {
	c := v.Get()
	if c == nil {
		s := v.Symbol()

		return nil, errs.Named(
			errs.UnboundVariable, s.String(),
			"'%s' is unbound", s.Literal(),
		)
	}

	return c, nil
}
