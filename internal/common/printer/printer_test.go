// Released under an MIT license. See LICENSE.

package printer

import (
	"math"
	"testing"

	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
)

func symbol(s string) *cell.T {
	return cell.NewRef(cell.Symbol, sym.New(s), nil)
}

func TestLiteral(t *testing.T) {
	l := cell.NewList(cell.Chain(
		symbol("+"),
		cell.NewInt(1, nil),
		cell.NewFloat(2, nil),
		cell.NewQuote(cell.NewList(nil, nil), nil),
		cell.NewRef(cell.Keyword, sym.Intern("", "k"), nil),
		cell.NewBool(true, nil),
	), nil)

	expected := "(+ 1 2.0 '() :k true)"
	if actual := Literal(l); actual != expected {
		t.Fatalf("expected %s, got %s", expected, actual)
	}
}

func TestFloat(t *testing.T) {
	for f, expected := range map[float64]string{
		0.5:         "0.5",
		3:           "3.0",
		1e21:        "1e+21",
		math.Inf(1): "+Inf",
	} {
		if actual := Literal(cell.NewFloat(f, nil)); actual != expected {
			t.Errorf("expected %s, got %s", expected, actual)
		}
	}
}

func TestChain(t *testing.T) {
	c := cell.Chain(cell.NewInt(1, nil), symbol("a b"))

	expected := `1 $'a b'`
	if actual := Chain(c); actual != expected {
		t.Fatalf("expected %s, got %s", expected, actual)
	}

	if Literal(nil) != "()" {
		t.Fatal("nil should print as the empty list")
	}
}

func TestWidth(t *testing.T) {
	l := cell.NewList(cell.Chain(
		symbol("def"),
		symbol("name"),
		cell.NewList(cell.Chain(symbol("+"), cell.NewInt(1, nil)), nil),
	), nil)

	if actual := Width(l, 80); actual != "(def name (+ 1))" {
		t.Fatalf("short list should not be broken: %s", actual)
	}

	expected := "(def\n  name\n  (+ 1))"
	if actual := Width(l, 10); actual != expected {
		t.Fatalf("expected %q, got %q", expected, actual)
	}
}
