// Released under an MIT license. See LICENSE.

// Package commands provides lum's builtins.
package commands

import (
	"github.com/michaelmacinnis/lum/internal/engine/task"
)

// Builtins returns lum's builtins.
func Builtins() []*task.Builtin {
	return []*task.Builtin{
		{Name: "*", Params: 1, Variadic: true, Impl: arithmetic(multiplication)},
		{Name: "+", Params: 1, Variadic: true, Impl: arithmetic(addition)},
		{Name: "-", Params: 1, Variadic: true, Impl: arithmetic(subtraction)},
		{Name: "/", Params: 1, Variadic: true, Impl: arithmetic(division)},
		{Name: "=", Params: 1, Variadic: true, Impl: eq},
		{Name: "cons", Params: 1, Variadic: true, Impl: cons},
		{Name: "declare", Params: 1, Raw: 1, Impl: declare},
		{Name: "def", Params: 2, Raw: 1, Impl: def},
		{Name: "first", Params: 1, Impl: first},
		{Name: "fn", Params: 2, Variadic: true, Compiles: true, Impl: function},
		{Name: "if", Params: 2, Variadic: true, Impl: ifThenElse},
		{Name: "in-ns", Params: 1, Raw: 1, Impl: inNs},
		{Name: "list", Variadic: true, Impl: list},
		{Name: "rem", Params: 1, Variadic: true, Impl: arithmetic(remainder)},
		{Name: "rest", Params: 1, Impl: rest},
	}
}
