// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
	"github.com/michaelmacinnis/lum/internal/engine/task"
)

func eq(t *task.T, args *cell.T) (*cell.T, error) {
	if args == nil {
		return nil, errs.ArityMismatch.New(
			"'=' expected at least 1 argument, passed 0",
		)
	}

	first, err := t.Eval(args)
	if err != nil {
		return nil, err
	}

	for a := args.Next(); a != nil; a = a.Next() {
		v, err := t.Eval(a)
		if err != nil {
			return nil, err
		}

		if !equal(first, v) {
			return t.Heap().Bool(false), nil
		}
	}

	return t.Heap().Bool(true), nil
}

func equal(a, b *cell.T) bool {
	if a.Tag() != b.Tag() {
		return false
	}

	switch a.Tag() {
	case cell.Bool:
		return a.Bool() == b.Bool()
	case cell.Float:
		return a.Float() == b.Float()
	case cell.Int:
		return a.Int() == b.Int()
	case cell.Keyword, cell.Symbol:
		return sym.To(a).Equal(sym.To(b))
	}

	return cell.Same(a, b)
}
