// Released under an MIT license. See LICENSE.

package fn

import (
	"testing"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/sym"
)

func params(names ...string) *cell.T {
	cs := make([]*cell.T, len(names))
	for i, n := range names {
		cs[i] = cell.NewRef(cell.Symbol, sym.New(n), nil)
	}

	return cell.NewList(cell.Chain(cs...), nil)
}

func TestNew(t *testing.T) {
	body := cell.NewInt(1, nil)

	f, err := New(params("a", "b"), body)
	if err != nil {
		t.Fatal(err)
	}

	if f.Arity() != 2 || f.Compiled() || f.NeedsClosure() {
		t.Fatalf("unexpected fn %s", f.Literal())
	}

	if f.Index(sym.New("b")) != 1 || f.Index(sym.New("c")) != -1 {
		t.Fatal("parameter index")
	}

	if f.Literal() != "#<fn(a b)>" {
		t.Fatalf("unexpected literal %s", f.Literal())
	}
}

func TestNewMalformed(t *testing.T) {
	body := cell.NewInt(1, nil)

	for _, c := range []struct {
		name   string
		params *cell.T
		body   *cell.T
	}{
		{"not a list", cell.NewInt(1, nil), body},
		{"no body", params("a"), nil},
		{"qualified", params("user/a"), body},
		{"not a symbol", cell.NewList(cell.NewInt(1, nil), nil), body},
	} {
		_, err := New(c.params, c.body)
		if !errs.Is(err, errs.MalformedForm) {
			t.Errorf("%s: expected MalformedForm, got %v", c.name, err)
		}
	}
}

func TestWidenAndComplete(t *testing.T) {
	f, err := New(params("xs..."), cell.NewInt(1, nil))
	if err != nil {
		t.Fatal(err)
	}

	if !f.Variadic() {
		t.Fatal("xs... should make f variadic")
	}

	f.Widen(2)
	f.Widen(1)

	if f.Reach() != 2 || !f.NeedsClosure() {
		t.Fatalf("expected reach 2, got %d", f.Reach())
	}

	f.Complete(cell.NewInt(2, nil))

	if !f.Compiled() || f.Body().Int() != 2 {
		t.Fatal("complete should install the compiled body")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("completing twice should panic")
		}
	}()

	f.Complete(nil)
}

func TestTarget(t *testing.T) {
	f, _ := New(params(), cell.NewInt(1, nil))

	g, c := Target(cell.NewRef(cell.Function, f, nil))
	if g != f || c != nil {
		t.Fatal("plain fn target")
	}

	k := &Closure{T: f, Env: []*cell.T{}}

	g, c = Target(cell.NewRef(cell.Function, k, nil))
	if g != f || c != k || !c.Snapshot() {
		t.Fatal("closure target")
	}

	if k.Literal() != "#<fn() closure>" {
		t.Fatalf("unexpected literal %s", k.Literal())
	}
}
