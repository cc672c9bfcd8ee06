// Released under an MIT license. See LICENSE.

package cell

import (
	"testing"

	"github.com/joomcode/errorx"

	"github.com/michaelmacinnis/lum/internal/common/errs"
)

func TestHeapReuse(t *testing.T) {
	h := NewHeap(0)

	a := h.Int(7)
	if h.Live() != 1 {
		t.Fatalf("expected 1 live cell, got %d", h.Live())
	}

	h.Release(a)

	if a.Tag() != Unknown {
		t.Fatalf("released cell has tag %v", a.Tag())
	}

	b := h.Float(1.5)
	if a != b {
		t.Fatal("released cell was not reused")
	}

	if b.Next() != nil {
		t.Fatal("reused cell is still linked to the free list")
	}

	if h.Live() != 1 || h.Total() != 2 {
		t.Fatalf("expected 1 live and 2 total, got %d and %d", h.Live(), h.Total())
	}
}

func TestHeapCopy(t *testing.T) {
	h := NewHeap(0)

	tail := NewInt(2, nil)
	l := NewList(NewInt(1, tail), nil)

	c := h.Copy(l, nil)
	if c == l || c.Head() != l.Head() {
		t.Fatal("copy should be a new cell sharing the payload")
	}

	n := NewInt(9, nil)
	d := h.Copy(tail, n)

	if d.Next() != n || tail.Next() != nil {
		t.Fatal("copy should have its own next link")
	}
}

func TestHeapLimit(t *testing.T) {
	h := NewHeap(2)

	h.Bool(true)
	h.Bool(false)

	defer func() {
		r := recover()

		err, ok := errorx.ErrorFromPanic(r)
		if !ok {
			t.Fatalf("expected an error panic, got %v", r)
		}

		if !errs.Is(err, errs.AllocationFailure) {
			t.Fatalf("expected AllocationFailure, got %v", err)
		}
	}()

	h.Alloc(Int)

	t.Fatal("allocation past the limit should panic")
}
