// Released under an MIT license. See LICENSE.

// Package options parses lum's command-line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by lum -v.
const Version = "lum 0.1.0"

//nolint:gochecknoglobals
var (
	closures    string
	command     string
	config      string
	interactive bool
	script      string
	trace       bool
	usage       = `lum

Usage:
  lum [-t] [--closures=MODE] [--config=PATH] SCRIPT
  lum [-t] [--closures=MODE] [--config=PATH] -c FORMS
  lum [-it] [--closures=MODE] [--config=PATH]
  lum -h
  lum -v

Arguments:
  SCRIPT     Path to lum script.

Options:
  -c, --command=FORMS  Evaluate the specified forms.
  --closures=MODE      Closure mode: snapshot or stack.
  --config=PATH        Configuration file. Defaults to ~/.lumrc.yaml.
  -i, --interactive    Invert interactive mode.
  -t, --trace          Log evaluator events.
  -h, --help           Display this help.
  -v, --version        Print lum version.

If lum's stdin is a TTY, and lum was invoked with no script or forms,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Closures returns the closure mode requested on the command-line or "".
func Closures() string {
	return closures
}

// Command returns the forms passed with -c.
func Command() string {
	return command
}

// Config returns the configuration file path passed with --config or "".
func Config() string {
	return config
}

// Interactive returns true if lum should run its REPL.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args.
func Parse() {
	ParseArgs(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// ParseArgs parses argv. Terminal says whether stdin is a TTY.
func ParseArgs(argv []string, terminal bool) {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	closures, _ = opts.String("--closures")
	command, _ = opts.String("--command")
	config, _ = opts.String("--config")
	script, _ = opts.String("SCRIPT")
	trace, _ = opts.Bool("--trace")

	interactive = script == "" && command == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Script returns the path of the script to evaluate or "".
func Script() string {
	return script
}

// Trace returns true if -t was passed.
func Trace() bool {
	return trace
}
