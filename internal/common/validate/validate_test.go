// Released under an MIT license. See LICENSE.

package validate

import (
	"testing"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
)

func chain(n int) *cell.T {
	var c *cell.T

	for i := 0; i < n; i++ {
		c = cell.NewInt(int64(i), c)
	}

	return c
}

func TestFixed(t *testing.T) {
	v, err := Fixed("def", chain(2), 2, 2)
	if err != nil || len(v) != 2 {
		t.Fatalf("expected 2 cells, got %d (%v)", len(v), err)
	}

	_, err = Fixed("def", chain(3), 2, 2)
	if !errs.Is(err, errs.ArityMismatch) {
		t.Fatalf("expected ArityMismatch, got %v", err)
	}

	_, err = Fixed("def", chain(1), 2, 2)
	if !errs.Is(err, errs.ArityMismatch) {
		t.Fatalf("expected ArityMismatch, got %v", err)
	}
}

func TestVariadic(t *testing.T) {
	v, rest, err := Variadic("cons", chain(4), 1, 2)
	if err != nil || len(v) != 2 || cell.Length(rest) != 2 {
		t.Fatalf("expected 2 cells and a rest of 2, got %d and %d (%v)",
			len(v), cell.Length(rest), err)
	}

	v, rest, err = Variadic("cons", chain(1), 1, 2)
	if err != nil || len(v) != 1 || rest != nil {
		t.Fatalf("expected 1 cell and no rest, got %d (%v)", len(v), err)
	}
}

func TestCount(t *testing.T) {
	if s := Count(1, "argument", "s"); s != "1 argument" {
		t.Fatal(s)
	}

	if s := Count(3, "argument", "s"); s != "3 arguments" {
		t.Fatal(s)
	}
}
