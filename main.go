// Released under an MIT license. See LICENSE.

/*
Lum is a small Lisp. Functions are compiled once, when they are created,
so that every variable reference in their body is either a position on the
evaluator's locals stack or a binding in a namespace:

    (def add (fn (a b) (+ a b)))
    (add 1 2)
    (def adder (fn (n) (fn (x) (+ x n))))
    ((adder 10) 5)
    (in-ns other)
    (user/add 3 4)

For more detail, see DESIGN.md.

Lum is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joomcode/errorx"

	"github.com/michaelmacinnis/lum/internal/engine"
	"github.com/michaelmacinnis/lum/internal/system/config"
	"github.com/michaelmacinnis/lum/internal/system/options"
	"github.com/michaelmacinnis/lum/internal/ui"
)

func main() {
	options.Parse()

	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) (status int) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err, ok := errorx.ErrorFromPanic(r)
		if !ok {
			panic(r)
		}

		fmt.Fprintln(stderr, "fatal:", err.Error())

		status = 2
	}()

	c, err := configure()
	if err != nil {
		ui.Report(stderr, err)

		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: c.LogLevel(),
	}))

	o, err := c.Options(logger)
	if err != nil {
		ui.Report(stderr, err)

		return 1
	}

	e, err := engine.New(o)
	if err != nil {
		ui.Report(stderr, err)

		return 1
	}

	t := e.Task()

	if options.Interactive() {
		err = ui.Run(t)
		if err != nil {
			ui.Report(stderr, err)

			return 1
		}

		return 0
	}

	name, text, echo := "", options.Command(), true

	switch {
	case options.Script() != "":
		name = options.Script()

		b, err := os.ReadFile(name)
		if err != nil {
			ui.Report(stderr, err)

			return 1
		}

		text, echo = string(b), false
	case text != "":
		name = "command"
	default:
		name = "stdin"

		b, err := io.ReadAll(stdin)
		if err != nil {
			ui.Report(stderr, err)

			return 1
		}

		text = string(b)
	}

	if ui.Batch(t, name, text, echo, stdout, stderr) > 0 {
		return 1
	}

	return 0
}

func configure() (*config.Config, error) {
	path, optional := options.Config(), false
	if path == "" {
		path, optional = config.Default(), true
	}

	c, err := config.Load(path, optional)
	if err != nil {
		return nil, err
	}

	if options.Trace() {
		c.Trace = true
	}

	if m := options.Closures(); m != "" {
		c.Closures = m
	}

	return c, nil
}
