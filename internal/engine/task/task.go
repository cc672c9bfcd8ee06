// Released under an MIT license. See LICENSE.

// Package task provides lum's execution context: the stacks a single
// goroutine uses to evaluate forms, and the evaluator and compiler that
// operate on them.
package task

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/michaelmacinnis/lum/internal/common/errs"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/fn"
	"github.com/michaelmacinnis/lum/internal/common/type/ns"
)

// Default stack capacities.
const (
	DefaultApply   = 256
	DefaultCompile = 64
	DefaultLocals  = 1024
	DefaultResults = 1024
)

// Mode determines how closure-needing functions see their enclosing locals.
type Mode uint8

// Closure modes.
const (
	// Snapshot copies the enclosing locals a closure needs when it is
	// produced and pushes them below the arguments when it is applied.
	Snapshot Mode = iota

	// Stack requires the activation a closure was produced in to still be
	// the top of the locals stack when the closure is applied.
	Stack
)

// ParseMode converts the configuration value s to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "snapshot":
		return Snapshot, nil
	case "stack":
		return Stack, nil
	}

	return Snapshot, errs.Unsupported.New("unknown closure mode %q", s)
}

// String returns the configuration name of m.
func (m Mode) String() string {
	if m == Stack {
		return "stack"
	}

	return "snapshot"
}

// Options configure a task.
type Options struct {
	Apply   int // Apply-trace stack capacity.
	Cells   int // Live heap cell limit. Zero means unlimited.
	Compile int // Compile-trace stack capacity.
	Locals  int // Locals stack capacity.
	Logger  *slog.Logger
	Mode    Mode
	Results int // Results stack capacity.
	Trace   bool
}

// Depth records the depth of each of a task's stacks.
type Depth struct {
	Apply   int
	Compile int
	Locals  int
	Results int
}

// The frame type records an application in progress.
type frame struct {
	callable *cell.T
	fn       *fn.T // Nil for builtins.
	serial   uint64
	base     int // Locals depth before arguments were pushed.
}

// T (task) is an execution context. It must only be used by one goroutine.
type T struct {
	ID uuid.UUID

	apply   stack[frame]
	compile stack[*fn.T]
	current *ns.T
	floor   int // Results at or below floor belong to an outer activation.
	heap    *cell.Heap
	locals  stack[*cell.T]
	log     *slog.Logger
	mode    Mode
	reg     *ns.Registry
	results stack[*cell.T]
	serial  uint64
	tracing bool
}

type task = T

// New creates a task that resolves symbols using r, starting in current.
func New(r *ns.Registry, current *ns.T, o Options) *task {
	o = defaults(o)

	id := uuid.New()

	return &task{
		ID:      id,
		apply:   newStack[frame]("apply", o.Apply),
		compile: newStack[*fn.T]("compile", o.Compile),
		current: current,
		heap:    cell.NewHeap(o.Cells),
		locals:  newStack[*cell.T]("locals", o.Locals),
		log:     o.Logger.With(slog.String("task", id.String())),
		mode:    o.Mode,
		reg:     r,
		results: newStack[*cell.T]("results", o.Results),
		tracing: o.Trace,
	}
}

// Depth returns the current depth of each of t's stacks.
func (t *task) Depth() Depth {
	return Depth{
		Apply:   t.apply.Len(),
		Compile: t.compile.Len(),
		Locals:  t.locals.Len(),
		Results: t.results.Len(),
	}
}

// Evaluate evaluates the top-level form c and returns an owned result.
// Whether it succeeds or fails every stack is returned to its entry depth
// and the transient results produced along the way are released.
func (t *task) Evaluate(c *cell.T) (*cell.T, error) {
	d := t.Depth()

	floor := t.floor
	t.floor = d.Results

	defer func() {
		t.floor = floor
		t.restore(d)
	}()

	r, err := t.Eval(c)
	if err != nil {
		t.unwind(d.Results)

		return nil, err
	}

	r = t.Take(r)

	t.unwind(d.Results)

	return r, nil
}

// EvalTake evaluates c and takes ownership of the result.
func (t *task) EvalTake(c *cell.T) (*cell.T, error) {
	r, err := t.Eval(c)
	if err != nil {
		return nil, err
	}

	return t.Take(r), nil
}

// Heap returns the heap t allocates transient cells from.
func (t *task) Heap() *cell.Heap {
	return t.heap
}

// Logger returns t's logger.
func (t *task) Logger() *slog.Logger {
	return t.log
}

// Mode returns t's closure mode.
func (t *task) Mode() Mode {
	return t.mode
}

// Namespace returns the active namespace.
func (t *task) Namespace() *ns.T {
	return t.current
}

// Registry returns the registry t resolves namespaces with.
func (t *task) Registry() *ns.Registry {
	return t.reg
}

// SetNamespace makes n the active namespace.
func (t *task) SetNamespace(n *ns.T) {
	t.current = n
}

// Take transfers ownership of c to the caller. If c is the most recently
// pushed transient result it is stolen, otherwise a copy is made. The
// returned cell may be linked into a new structure.
//
// Results pushed before the current function was applied are never stolen:
// they may be bound to its parameters.
func (t *task) Take(c *cell.T) *cell.T {
	top, ok := t.results.Top()
	if ok && top == c && t.results.Len() > t.floor {
		t.results.Pop()
		c.SetNext(nil)
		t.trace("steal", c)

		return c
	}

	d := t.heap.Copy(c, nil)
	t.trace("copy", d)

	return d
}

func defaults(o Options) Options {
	if o.Apply == 0 {
		o.Apply = DefaultApply
	}

	if o.Compile == 0 {
		o.Compile = DefaultCompile
	}

	if o.Locals == 0 {
		o.Locals = DefaultLocals
	}

	if o.Results == 0 {
		o.Results = DefaultResults
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

func (t *task) restore(d Depth) {
	t.apply.Truncate(d.Apply)
	t.compile.Truncate(d.Compile)
	t.locals.Truncate(d.Locals)
}
