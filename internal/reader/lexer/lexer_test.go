// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/lum/internal/reader/token"
)

type harness struct {
	lexer *T
	t     *testing.T
}

type item struct {
	class token.Class
	value string
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		lexer: New(label),
		t:     t,
	}
}

func lit(r rune) item {
	return item{token.Class(r), string(r)}
}

func sym(s string) item {
	return item{token.Symbol, s}
}

func (h *harness) scan(s string, expected ...item) {
	h.t.Helper()

	h.lexer.Scan(s)

	for _, e := range expected {
		a := h.lexer.Token()

		switch {
		case a == nil:
			h.t.Fatalf("%q: expected %q, got nothing", s, e.value)
		case !a.Is(e.class) || a.Value() != e.value:
			h.t.Fatalf("%q: expected %q, got %v", s, e.value, a)
		}
	}

	if a := h.lexer.Token(); a != nil {
		h.t.Fatalf("%q: unexpected %v", s, a)
	}
}

func TestList(t *testing.T) {
	h := setup(t, "List")

	h.scan("(+ 1 -2.5)\n",
		lit('('), sym("+"), sym("1"), sym("-2.5"), lit(')'),
	)
	h.scan("((a)(b))\n",
		lit('('), lit('('), sym("a"), lit(')'),
		lit('('), sym("b"), lit(')'), lit(')'),
	)
}

func TestQuote(t *testing.T) {
	h := setup(t, "Quote")

	h.scan("'(a :b)\n", lit('\''), lit('('), sym("a"), sym(":b"), lit(')'))
	h.scan("''x\n", lit('\''), lit('\''), sym("x"))
	h.scan("a'b\n", sym("a"), lit('\''), sym("b"))
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("a ; (not a list\nb\n", sym("a"), sym("b"))
	h.scan(";; only a comment\n")
}

func TestDollarSingleQuoted(t *testing.T) {
	h := setup(t, "DollarSingleQuoted")

	h.scan(`$'a b\'c' x`+"\n",
		item{token.DollarSingleQuoted, `$'a b\'c'`},
		sym("x"),
	)
	h.scan("$x $\n", sym("$x"), sym("$"))
}

func TestDoubleQuote(t *testing.T) {
	h := setup(t, "DoubleQuote")

	h.scan("\"x\n", item{token.Error, "\""}, sym("x"))
}

func TestWhitespace(t *testing.T) {
	h := setup(t, "Whitespace")

	h.scan("\ta\r\n  b \n", sym("a"), sym("b"))
	h.scan("λ→x\n", sym("λ→x"))
}

func TestIncomplete(t *testing.T) {
	h := setup(t, "Incomplete")

	h.scan("(abc", lit('('))

	if !h.lexer.Pending() {
		t.Fatal("expected a token to be pending")
	}

	h.scan("def)\n", sym("abcdef"), lit(')'))

	if h.lexer.Pending() {
		t.Fatal("expected no pending token")
	}

	h.scan("$'ab")
	h.scan("c'\n", item{token.DollarSingleQuoted, "$'abc'"})
}

func TestLocation(t *testing.T) {
	l := New("Location")

	l.Scan("(a bc)\n  d\n")

	for _, expected := range []string{
		"Location:1:1",
		"Location:1:2",
		"Location:1:4",
		"Location:1:6",
		"Location:2:3",
	} {
		a := l.Token()
		if a == nil {
			t.Fatalf("expected a token at %s", expected)
		}

		if actual := a.Source().String(); actual != expected {
			t.Fatalf("%v: expected %s, got %s", a, expected, actual)
		}
	}
}
