// Released under an MIT license. See LICENSE.

package commands

import (
	"log/slog"
	"math"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/printer"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/engine/task"
)

// Largest magnitude at which every integer is exactly representable as a
// float64.
const exact = 1 << 53

type operator struct {
	name  string
	float func(a, b float64) (float64, error)
	int   func(a, b int64) (int64, error)
}

// The accumulator type is the left fold state of an arithmetic builtin.
type accumulator struct {
	float   float64
	int     int64
	isFloat bool
}

func arithmetic(op operator) func(*task.T, *cell.T) (*cell.T, error) {
	return func(t *task.T, args *cell.T) (*cell.T, error) {
		if args == nil {
			return nil, errs.ArityMismatch.New(
				"'%s' expected at least 1 argument, passed 0", op.name,
			)
		}

		n, err := number(t, op.name, args)
		if err != nil {
			return nil, err
		}

		acc := accumulator{}
		acc.set(t, n)

		for a := args.Next(); err == nil && a != nil; a = a.Next() {
			n, err = number(t, op.name, a)
			if err == nil {
				err = acc.combine(t, op, n)
			}
		}

		if err != nil {
			return nil, err
		}

		if acc.isFloat {
			return t.Heap().Float(acc.float), nil
		}

		return t.Heap().Int(acc.int), nil
	}
}

func (acc *accumulator) combine(t *task.T, op operator, n *cell.T) error {
	if !acc.isFloat && n.Is(cell.Float) {
		acc.promote(t)
	}

	var err error

	if acc.isFloat {
		acc.float, err = op.float(acc.float, toFloat(t, n))
	} else {
		acc.int, err = op.int(acc.int, n.Int())
	}

	return err
}

func (acc *accumulator) promote(t *task.T) {
	warn(t, acc.int)

	acc.float = float64(acc.int)
	acc.isFloat = true
}

func (acc *accumulator) set(t *task.T, n *cell.T) {
	if n.Is(cell.Float) {
		acc.float = n.Float()
		acc.isFloat = true

		return
	}

	acc.int = n.Int()
}

// The number function returns a as a number, evaluating it once if needed.
func number(t *task.T, name string, a *cell.T) (*cell.T, error) {
	if a.Numeric() {
		return a, nil
	}

	v, err := t.Eval(a)
	if err != nil {
		return nil, err
	}

	if !v.Numeric() {
		return nil, errs.TypeMismatch.New(
			"'%s' expected a number, passed %s", name, printer.Literal(v),
		)
	}

	return v, nil
}

func toFloat(t *task.T, n *cell.T) float64 {
	if n.Is(cell.Float) {
		return n.Float()
	}

	warn(t, n.Int())

	return float64(n.Int())
}

func warn(t *task.T, i int64) {
	if i > exact || i < -exact {
		t.Logger().Warn(
			"integer is not exactly representable as a float",
			slog.Int64("value", i),
		)
	}
}

//nolint:gochecknoglobals
var (
	addition = operator{
		name:  "+",
		float: func(a, b float64) (float64, error) { return a + b, nil },
		int:   func(a, b int64) (int64, error) { return a + b, nil },
	}

	division = operator{
		name:  "/",
		float: func(a, b float64) (float64, error) { return a / b, nil },
		int: func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errs.DivisionByZero.New("integer division by zero")
			}

			return a / b, nil
		},
	}

	multiplication = operator{
		name:  "*",
		float: func(a, b float64) (float64, error) { return a * b, nil },
		int:   func(a, b int64) (int64, error) { return a * b, nil },
	}

	remainder = operator{
		name:  "rem",
		float: func(a, b float64) (float64, error) { return math.Mod(a, b), nil },
		int: func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errs.DivisionByZero.New("integer remainder by zero")
			}

			return a % b, nil
		},
	}

	subtraction = operator{
		name:  "-",
		float: func(a, b float64) (float64, error) { return a - b, nil },
		int:   func(a, b int64) (int64, error) { return a - b, nil },
	}
)
