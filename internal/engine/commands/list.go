// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/printer"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/validate"
	"github.com/michaelmacinnis/lum/internal/engine/task"
)

// The cons builtin evaluates its second argument before its first so that
// the list it extends is still the top transient result and can be stolen.
func cons(t *task.T, args *cell.T) (*cell.T, error) {
	v, err := validate.Fixed("cons", args, 1, 2)
	if err != nil {
		return nil, err
	}

	var tail *cell.T

	if len(v) == 2 {
		tail, err = t.EvalTake(v[1])
		if err != nil {
			return nil, err
		}

		if !tail.Is(cell.List) {
			err = errs.TypeMismatch.New(
				"'cons' expected a list, passed %s", printer.Literal(tail),
			)
			t.Heap().Release(tail)

			return nil, err
		}
	} else {
		tail = t.Heap().Alloc(cell.List)
	}

	head, err := t.EvalTake(v[0])
	if err != nil {
		t.Heap().Release(tail)

		return nil, err
	}

	head.SetNext(tail.Head())
	tail.SetHead(head)

	return tail, nil
}

func first(t *task.T, args *cell.T) (*cell.T, error) {
	l, err := list1(t, "first", args)
	if err != nil {
		return nil, err
	}

	if l.Head() == nil {
		return t.Heap().Alloc(cell.List), nil
	}

	return t.Take(l.Head()), nil
}

func list(t *task.T, args *cell.T) (*cell.T, error) {
	var cs []*cell.T

	for a := args; a != nil; a = a.Next() {
		c, err := t.EvalTake(a)
		if err != nil {
			for _, c := range cs {
				t.Heap().Release(c)
			}

			return nil, err
		}

		cs = append(cs, c)
	}

	l := t.Heap().Alloc(cell.List)
	l.SetHead(cell.Chain(cs...))

	return l, nil
}

func rest(t *task.T, args *cell.T) (*cell.T, error) {
	l, err := list1(t, "rest", args)
	if err != nil {
		return nil, err
	}

	r := t.Heap().Alloc(cell.List)
	if h := l.Head(); h != nil {
		r.SetHead(h.Next())
	}

	return r, nil
}

func list1(t *task.T, name string, args *cell.T) (*cell.T, error) {
	v, err := validate.Fixed(name, args, 1, 1)
	if err != nil {
		return nil, err
	}

	l, err := t.Eval(v[0])
	if err != nil {
		return nil, err
	}

	if !l.Is(cell.List) {
		return nil, errs.TypeMismatch.New(
			"'%s' expected a list, passed %s", name, printer.Literal(l),
		)
	}

	return l, nil
}
