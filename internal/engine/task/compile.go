// Released under an MIT license. See LICENSE.

package task

import (
	"log/slog"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/struct/slot"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/fn"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
)

// Compile rewrites f's body so that every symbol is a local or a var.
//
// Parameters are numbered from the top of the locals stack: the last
// parameter is at offset 0. A symbol that names a parameter of a function
// enclosing f (one still on the compile-trace stack) becomes a local whose
// offset also skips the parameters of f and of every function in between.
// Such references widen f's reach. The program's cells are never modified;
// the compiled body is a new chain.
func (t *task) Compile(f *fn.T) error {
	if f.Compiled() {
		return nil
	}

	err := t.compile.Push(f)
	if err != nil {
		return err
	}

	body, err := t.compileChain(f, f.Body())

	t.compile.Pop()

	if err != nil {
		return err
	}

	f.Complete(body)

	t.trace("compiled", nil,
		slog.String("fn", f.Literal()),
		slog.Int("depth", t.compile.Len()),
	)

	return nil
}

func (t *task) compileCell(f *fn.T, c *cell.T) (*cell.T, error) {
	switch c.Tag() {
	case cell.Symbol:
		return t.resolve(f, sym.To(c))
	case cell.List:
		return t.compileList(f, c)
	}

	// Quoted children are shared. Everything else is a literal.
	return cell.Copy(c, nil), nil
}

func (t *task) compileChain(f *fn.T, c *cell.T) (*cell.T, error) {
	var cs []*cell.T

	for ; c != nil; c = c.Next() {
		d, err := t.compileCell(f, c)
		if err != nil {
			return nil, err
		}

		cs = append(cs, d)
	}

	return cell.Chain(cs...), nil
}

func (t *task) compileList(f *fn.T, c *cell.T) (*cell.T, error) {
	h := c.Head()
	if h == nil {
		return cell.Copy(c, nil), nil
	}

	head, err := t.compileCell(f, h)
	if err != nil {
		return nil, err
	}

	args := h.Next()

	b := t.builtin(head)
	if b != nil && b.Compiles {
		lit, err := t.nested(f, args)
		if err != nil {
			return nil, err
		}

		head.SetNext(lit)

		return cell.NewList(head, nil), nil
	}

	raw := 0
	if b != nil {
		raw = b.Raw
	}

	cs := []*cell.T{head}

	for ; args != nil && raw > 0; args = args.Next() {
		cs = append(cs, cell.Copy(args, nil))
		raw--
	}

	rest, err := t.compileChain(f, args)
	if err != nil {
		return nil, err
	}

	cell.Chain(cs...)
	cs[len(cs)-1].SetNext(rest)

	return cell.NewList(head, nil), nil
}

// The builtin method returns the builtin a compiled head refers to, if any.
func (t *task) builtin(head *cell.T) *Builtin {
	if !head.Is(cell.Var) {
		return nil
	}

	v, _ := head.Ref().(*slot.T)
	if v == nil {
		return nil
	}

	return ToBuiltin(v.Get())
}

// The nested method compiles a function literal that appears in f's body
// and returns a template cell that the fn builtin produces at run time.
func (t *task) nested(f *fn.T, args *cell.T) (*cell.T, error) {
	if args == nil {
		return nil, errs.MalformedForm.New("function literal has no parameters")
	}

	if args.Is(cell.Function) {
		return cell.Copy(args, nil), nil
	}

	g, err := fn.New(args, args.Next())
	if err != nil {
		return nil, err
	}

	err = t.Compile(g)
	if err != nil {
		return nil, err
	}

	// Whatever g needs beyond f's parameters, f needs from its enclosers.
	f.Widen(g.Reach() - f.Arity())

	return cell.NewRef(cell.Function, g, nil), nil
}

func (t *task) resolve(f *fn.T, s *sym.T) (*cell.T, error) {
	if !s.Qualified() {
		if i := f.Index(s); i >= 0 {
			return cell.NewLocal(f.Arity()-i-1, nil), nil
		}

		// The top of the compile-trace stack is f itself.
		skip := f.Arity()

		for n := 1; n < t.compile.Len(); n++ {
			e, _ := t.compile.Peek(n)

			if j := e.Index(s); j >= 0 {
				offset := e.Arity() - j - 1 + skip
				f.Widen(offset - f.Arity() + 1)

				t.trace("resolved", nil,
					slog.String("symbol", s.String()),
					slog.Int("offset", offset),
				)

				return cell.NewLocal(offset, nil), nil
			}

			skip += e.Arity()
		}
	}

	v := t.reg.Resolve(t.current, s)
	if v == nil {
		return nil, errs.Named(
			errs.UnresolvedSymbol, s.String(),
			"'%s' is not defined", s.Literal(),
		)
	}

	t.trace("resolved", nil,
		slog.String("symbol", s.String()),
		slog.String("var", v.Literal()),
	)

	return cell.NewRef(cell.Var, v, nil), nil
}
