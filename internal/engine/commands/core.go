// Released under an MIT license. See LICENSE.

package commands

import (
	"log/slog"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/printer"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/fn"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
	"github.com/michaelmacinnis/lum/internal/common/validate"
	"github.com/michaelmacinnis/lum/internal/engine/task"
)

func declare(t *task.T, args *cell.T) (*cell.T, error) {
	v, err := validate.Fixed("declare", args, 1, 1)
	if err != nil {
		return nil, err
	}

	s, err := unqualified("declare", v[0])
	if err != nil {
		return nil, err
	}

	return t.Heap().Ref(cell.Var, t.Namespace().Declare(s)), nil
}

func def(t *task.T, args *cell.T) (*cell.T, error) {
	v, err := validate.Fixed("def", args, 2, 2)
	if err != nil {
		return nil, err
	}

	s, err := unqualified("def", v[0])
	if err != nil {
		return nil, err
	}

	value, err := t.EvalTake(v[1])
	if err != nil {
		return nil, err
	}

	slot, prev := t.Namespace().Define(s, value)
	if prev != nil {
		t.Logger().Debug("rebinding",
			slog.String("var", slot.Literal()),
			slog.String("previous", printer.Literal(prev)),
		)
	}

	return t.Heap().Ref(cell.Var, slot), nil
}

// The fn builtin creates a function from a parameter list and a body.
// Inside a function body the compiler has already replaced the literal
// with a compiled template, which only needs to be produced.
func function(t *task.T, args *cell.T) (*cell.T, error) {
	if args == nil {
		return nil, errs.MalformedForm.New(
			"'fn' expected a parameter list and a body",
		)
	}

	if args.Is(cell.Function) {
		f, _ := fn.Target(args)

		return t.Produce(f)
	}

	f, err := fn.New(args, args.Next())
	if err != nil {
		return nil, err
	}

	err = t.Compile(f)
	if err != nil {
		return nil, err
	}

	return t.Produce(f)
}

// The if builtin treats false and the empty list as false.
func ifThenElse(t *task.T, args *cell.T) (*cell.T, error) {
	v, err := validate.Fixed("if", args, 2, 3)
	if err != nil {
		return nil, err
	}

	c, err := t.Eval(v[0])
	if err != nil {
		return nil, err
	}

	branch := 1
	if falsy(c) {
		branch = 2
	}

	if branch >= len(v) {
		return t.Heap().Alloc(cell.List), nil
	}

	return t.EvalTake(v[branch])
}

func inNs(t *task.T, args *cell.T) (*cell.T, error) {
	v, err := validate.Fixed("in-ns", args, 1, 1)
	if err != nil {
		return nil, err
	}

	s, err := unqualified("in-ns", v[0])
	if err != nil {
		return nil, err
	}

	n := t.Registry().Get(s.Name())

	t.SetNamespace(n)

	return t.Heap().Ref(cell.Namespace, n), nil
}

func falsy(c *cell.T) bool {
	switch c.Tag() {
	case cell.Bool:
		return !c.Bool()
	case cell.List:
		return c.Head() == nil
	}

	return false
}

func unqualified(name string, c *cell.T) (*sym.T, error) {
	if !c.Is(cell.Symbol) || sym.To(c).Qualified() {
		return nil, errs.MalformedForm.New(
			"'%s' expected an unqualified symbol, passed %s",
			name, printer.Literal(c),
		)
	}

	return sym.To(c), nil
}
