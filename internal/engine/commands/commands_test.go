// Released under an MIT license. See LICENSE.

package commands

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/joomcode/errorx"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/printer"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/ns"
	"github.com/michaelmacinnis/lum/internal/engine/task"
	"github.com/michaelmacinnis/lum/internal/reader"
)

type harness struct {
	t    *testing.T
	task *task.T
}

func setup(t *testing.T) *harness {
	return configure(t, task.Options{})
}

func configure(t *testing.T, o task.Options) *harness {
	bs := Builtins()

	r := ns.NewRegistry(func(n *ns.T) {
		for _, b := range bs {
			n.Bind(b.Name, ns.Qualify(b.Name), cell.NewRef(cell.Builtin, b, nil))
		}

		n.Bind("false", ns.Qualify("false"), cell.NewBool(false, nil))
		n.Bind("true", ns.Qualify("true"), cell.NewBool(true, nil))
	})

	return &harness{t: t, task: task.New(r, r.Get("user"), o)}
}

func (h *harness) eval(src string) (*cell.T, error) {
	h.t.Helper()

	r := reader.New("test")

	forms, err := r.Scan(src + "\n")
	if err == nil {
		err = r.Close()
	}

	if err != nil || len(forms) != 1 {
		h.t.Fatalf("%s: expected one form, got %d (%v)", src, len(forms), err)
	}

	return h.task.Evaluate(forms[0])
}

func (h *harness) expect(pairs ...string) {
	h.t.Helper()

	for i := 0; i+1 < len(pairs); i += 2 {
		src, expected := pairs[i], pairs[i+1]

		c, err := h.eval(src)
		if err != nil {
			h.t.Fatalf("%s: %v", src, err)
		}

		if actual := printer.Literal(c); actual != expected {
			h.t.Errorf("%s: expected %s, got %s", src, expected, actual)
		}
	}
}

func (h *harness) fail(kind *errorx.Type, srcs ...string) {
	h.t.Helper()

	for _, src := range srcs {
		if _, err := h.eval(src); !errs.Is(err, kind) {
			h.t.Errorf("%s: expected %s, got %v", src, kind, err)
		}

		if d := h.task.Depth(); d != (task.Depth{}) {
			h.t.Fatalf("%s: stacks not restored: %+v", src, d)
		}
	}
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.expect(
		"(+ 1 2 3)", "6",
		"(+ 1 2.5)", "3.5",
		"(- 10 4 3)", "3",
		"(- 5)", "5",
		"(- 2.5)", "2.5",
		"(- 0 5)", "-5",
		"(* 2 3 4)", "24",
		"(/ 7 2)", "3",
		"(/ 7.0 2)", "3.5",
		"(/ 1.0 0)", "+Inf",
		"(rem 7 3)", "1",
		"(rem 7.5 2)", "1.5",
		"(+ (* 2 3) (- 10 4))", "12",
		"(+ 1)", "1",
	)

	h.fail(errs.DivisionByZero, "(/ 1 0)", "(rem 1 0)")
	h.fail(errs.TypeMismatch, "(+ 1 :a)", "(* '(1) 2)")
	h.fail(errs.ArityMismatch, "(+)", "(-)")
}

func TestInexactPromotion(t *testing.T) {
	var b bytes.Buffer

	h := configure(t, task.Options{
		Logger: slog.New(slog.NewTextHandler(&b, nil)),
	})

	const warning = "integer is not exactly representable as a float"

	for src, warns := range map[string]bool{
		"(+ 9007199254740993 1.0)":  true,
		"(+ 1.0 9007199254740993)":  true,
		"(- 1.0 -9007199254740993)": true,
		"(+ 9007199254740992 1.0)":  false,
		"(+ 1.0 -9007199254740992)": false,
		"(+ 9007199254740993 1)":    false,
	} {
		b.Reset()

		if _, err := h.eval(src); err != nil {
			t.Fatalf("%s: %v", src, err)
		}

		logged := strings.Contains(b.String(), warning)
		if logged != warns {
			t.Errorf("%s: expected warning %v, got %q", src, warns, b.String())
		}

		if warns && !strings.Contains(b.String(), "level=WARN") {
			t.Errorf("%s: expected a warning level record, got %q", src, b.String())
		}
	}
}

func TestEquality(t *testing.T) {
	h := setup(t)

	h.expect(
		"(= 1 1)", "true",
		"(= 1 2)", "false",
		"(= 1 1.0)", "false",
		"(= 1.5 1.5 1.5)", "true",
		"(= :a :a)", "true",
		"(= :a :b)", "false",
		"(= 'a 'a)", "true",
		"(= true true)", "true",
		"(= (+ 1 1) 2)", "true",
		"(= 1)", "true",
	)

	h.fail(errs.ArityMismatch, "(=)")
}

func TestLists(t *testing.T) {
	h := setup(t)

	h.expect(
		"(list)", "()",
		"(list 1 (+ 1 1) 3)", "(1 2 3)",
		"(first '(1 2))", "1",
		"(first '())", "()",
		"(rest '(1 2 3))", "(2 3)",
		"(rest '())", "()",
		"(cons 1 '(2 3))", "(1 2 3)",
		"(cons 1)", "(1)",
		"(cons (list 1) (list 2))", "((1) 2)",
		"(first (rest (list 1 2 3)))", "2",
	)

	h.fail(errs.TypeMismatch, "(cons 1 2)", "(first 1)", "(rest :a)")
	h.fail(errs.ArityMismatch, "(cons)", "(cons 1 '() 3)", "(first)")
}

func TestConsDoesNotModify(t *testing.T) {
	h := setup(t)

	h.expect(
		"(def xs '(2 3))", "#'user/xs",
		"(cons 1 xs)", "(1 2 3)",
		"(cons 0 (rest xs))", "(0 3)",
		"xs", "(2 3)",
	)
}

func TestIf(t *testing.T) {
	h := setup(t)

	h.expect(
		"(if true 1 2)", "1",
		"(if false 1 2)", "2",
		"(if '() 1 2)", "2",
		"(if 0 1 2)", "1",
		"(if false 1)", "()",
		"(if (= 1 1) (+ 1 1) (undefined))", "2",
	)

	h.fail(errs.ArityMismatch, "(if true)", "(if true 1 2 3)")
	h.fail(errs.UnresolvedSymbol, "(if false 1 (undefined))")
}

func TestDefinitions(t *testing.T) {
	h := setup(t)

	h.expect(
		"(def x 1)", "#'user/x",
		"(def x (+ x 1))", "#'user/x",
		"x", "2",
		"user/x", "2",
	)

	h.fail(errs.MalformedForm, "(def 1 2)", "(def user/y 1)", "(declare 1)")
	h.fail(errs.ArityMismatch, "(def z)")
}

func TestRecursion(t *testing.T) {
	h := setup(t)

	const fact = "(def fact (fn (n) (if (= n 0) 1 (* n (fact (- n 1))))))"

	h.fail(errs.UnresolvedSymbol, fact)

	h.expect(
		"(declare fact)", "#<unbound #'user/fact>",
		fact, "#'user/fact",
		"(fact 10)", "3628800",
	)
}

func TestForwardReference(t *testing.T) {
	h := setup(t)

	h.expect(
		"(declare later)", "#<unbound #'user/later>",
		"(def early (fn () (later)))", "#'user/early",
	)

	h.fail(errs.UnboundVariable, "(early)")

	h.expect(
		"(def later (fn () 5))", "#'user/later",
		"(early)", "5",
	)
}

func TestClosures(t *testing.T) {
	h := setup(t)

	h.expect(
		"(def adder (fn (n) (fn (x) (+ x n))))", "#'user/adder",
		"(def add5 (adder 5))", "#'user/add5",
		"(add5 10)", "15",
		"((adder 1) 1)", "2",
		"(((fn (a0 a1) (fn (b0) (fn (c0) (+ a0 a1 b0 c0)))) 4 5) 6)",
		"#<fn(c0) reach=3 closure>",
	)

	h.fail(errs.MalformedForm, "(fn)", "(fn x 1)", "(fn (x))", "(fn (a/b) 1)")
}

func TestNamespaces(t *testing.T) {
	h := setup(t)

	h.expect(
		"(def x 1)", "#'user/x",
		"(in-ns other)", "#<ns other>",
		"(def x 2)", "#'other/x",
		"(+ x user/x)", "3",
		"(in-ns user)", "#<ns user>",
		"x", "1",
		"other/x", "2",
	)

	h.fail(errs.UnresolvedSymbol, "missing/x")
	h.fail(errs.MalformedForm, "(in-ns a/b)")
}
