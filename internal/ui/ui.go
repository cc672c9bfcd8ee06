// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the lum language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/lum/internal/common/printer"
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
	"github.com/michaelmacinnis/lum/internal/reader"
	"github.com/michaelmacinnis/lum/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Evaluate(c *cell.T) (*cell.T, error)
}

// Batch evaluates the forms in text. If echo is set the result of each form
// is written to w. Errors are reported to e and evaluation continues with
// the next form. Batch returns the number of forms that failed.
func Batch(ev Evaluator, name, text string, echo bool, w, e io.Writer) int {
	r := reader.New(name)

	forms, err := r.Scan(text + "\n")
	if err == nil {
		err = r.Close()
	}

	failed := Forms(ev, forms, echo, w, e)

	if err != nil {
		Report(e, err)

		failed++
	}

	return failed
}

// Forms evaluates forms in order and returns the number that failed.
func Forms(ev Evaluator, forms []*cell.T, echo bool, w, e io.Writer) int {
	failed := 0

	for _, c := range forms {
		v, err := ev.Evaluate(c)
		if err != nil {
			Report(e, err)

			failed++

			continue
		}

		if echo {
			fmt.Fprintln(w, printer.Width(v, width(w)))
		}
	}

	return failed
}

// Report writes err to w.
func Report(w io.Writer, err error) {
	fmt.Fprintln(w, "error:", err.Error())
}

// Run launches the REPL which sends forms to the Evaluator.
func Run(ev Evaluator) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli.SetCtrlCAborts(true)

	_ = history.Load(cli.ReadHistory)

	defer func() {
		_ = history.Save(cli.WriteHistory)
	}()

	r := reader.New("lum")

	for {
		prompt := "> "
		if r.Incomplete() {
			prompt = "  "
		}

		err = uncooked.ApplyMode()
		if err != nil {
			return err
		}

		line, err := cli.Prompt(prompt)

		if merr := cooked.ApplyMode(); merr != nil {
			return merr
		}

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			// Discard any partial form.
			_ = r.Close()
			r = reader.New("lum")

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stdout)

			return r.Close()
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		forms, err := r.Scan(line + "\n")

		Forms(ev, forms, true, os.Stdout, os.Stderr)

		if err != nil {
			Report(os.Stderr, err)

			r = reader.New("lum")
		}
	}
}
