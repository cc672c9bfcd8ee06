// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed lum code.
package engine

import (
	"log/slog"

	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/common/type/ns"
	"github.com/michaelmacinnis/lum/internal/engine/boot"
	"github.com/michaelmacinnis/lum/internal/engine/commands"
	"github.com/michaelmacinnis/lum/internal/engine/task"
	"github.com/michaelmacinnis/lum/internal/reader"
)

// User is the namespace tasks start in.
const User = "user"

// T (engine) is a facade in front of the machinery for evaluating lum code.
// An engine may be shared by many goroutines as long as each uses its own
// task.
type T struct {
	options  task.Options
	registry *ns.Registry
}

type engine = T

// New creates an engine, populates the core namespace and evaluates the
// boot script.
func New(o task.Options) (*engine, error) {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	builtins := commands.Builtins()

	e := &engine{options: o}

	e.registry = ns.NewRegistry(func(n *ns.T) {
		for _, b := range builtins {
			n.Bind(b.Name, ns.Qualify(b.Name), cell.NewRef(cell.Builtin, b, nil))
		}

		n.Bind("nil", ns.Qualify("nil"), cell.NewList(nil, nil))
		n.Bind("false", ns.Qualify("false"), cell.NewBool(false, nil))
		n.Bind("true", ns.Qualify("true"), cell.NewBool(true, nil))
	})

	e.registry.Get(ns.Core)

	t := e.Task()

	r := reader.New("boot")

	forms, err := r.Scan(boot.Script() + "\n")
	if err == nil {
		err = r.Close()
	}

	if err != nil {
		return nil, err
	}

	for _, c := range forms {
		_, err = t.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Registry returns the registry shared by e's tasks.
func (e *engine) Registry() *ns.Registry {
	return e.registry
}

// Task creates a new execution context in the user namespace.
func (e *engine) Task() *task.T {
	return task.New(e.registry, e.registry.Get(User), e.options)
}
