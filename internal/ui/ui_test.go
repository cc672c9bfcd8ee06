// Released under an MIT license. See LICENSE.

package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
)

type evaluator struct {
	seen []*cell.T
}

func (e *evaluator) Evaluate(c *cell.T) (*cell.T, error) {
	e.seen = append(e.seen, c)

	if c.Is(cell.Symbol) {
		return nil, errs.UnresolvedSymbol.New("no symbols")
	}

	return c, nil
}

func TestBatch(t *testing.T) {
	var out, e bytes.Buffer

	ev := &evaluator{}

	failed := Batch(ev, "test", "1 x (2 3) (4", true, &out, &e)
	if failed != 2 {
		t.Fatalf("expected 2 failures, got %d", failed)
	}

	if len(ev.seen) != 3 {
		t.Fatalf("expected 3 forms to be evaluated, got %d", len(ev.seen))
	}

	if out.String() != "1\n(2 3)\n" {
		t.Fatalf("unexpected output %q", out.String())
	}

	lines := strings.Split(strings.TrimSpace(e.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "error:") {
		t.Fatalf("unexpected errors %q", e.String())
	}
}

func TestBatchQuiet(t *testing.T) {
	var out, e bytes.Buffer

	if failed := Batch(&evaluator{}, "test", "1 2", false, &out, &e); failed != 0 {
		t.Fatalf("expected no failures, got %d", failed)
	}

	if out.Len() != 0 || e.Len() != 0 {
		t.Fatalf("expected no output, got %q %q", out.String(), e.String())
	}
}

func TestWrap(t *testing.T) {
	var out, e bytes.Buffer

	long := "(" + strings.Repeat("abcdefghij ", 10) + ")"

	Batch(&evaluator{}, "test", long, true, &out, &e)

	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if len(line) > columns {
			t.Fatalf("line wider than %d columns: %q", columns, line)
		}
	}
}
