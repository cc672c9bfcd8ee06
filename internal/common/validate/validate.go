// Released under an MIT license. See LICENSE.

// Package validate checks the shape of unevaluated argument chains.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
)

// Variadic returns the first max cells of the chain actual and the rest of
// the chain. Fewer than min cells is an ArityMismatch.
func Variadic(name string, actual *cell.T, min, max int) ([]*cell.T, *cell.T, error) {
	expected := make([]*cell.T, 0, max)

	for i := 0; i < max; i++ {
		if actual == nil {
			if i < min {
				return nil, nil, mismatch(name, "at least", min, i)
			}

			break
		}

		expected = append(expected, actual)

		actual = actual.Next()
	}

	return expected, actual, nil
}

// Fixed returns the cells of the chain actual, which must have between min
// and max cells.
func Fixed(name string, actual *cell.T, min, max int) ([]*cell.T, error) {
	expected, rest, err := Variadic(name, actual, min, max)
	if err != nil {
		return nil, err
	}

	if rest != nil {
		q := "exactly"
		if min != max {
			q = "at most"
		}

		return nil, mismatch(name, q, max, cell.Length(actual))
	}

	return expected, nil
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func mismatch(name, q string, n, passed int) error {
	if q == "exactly" {
		q = ""
	} else {
		q += " "
	}

	return errs.ArityMismatch.New(
		"'%s' expected %s%s, passed %d",
		name, q, Count(n, "argument", "s"), passed,
	)
}
