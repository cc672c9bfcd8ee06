// Released under an MIT license. See LICENSE.

// Package errs defines the kinds of failure reported by lum.
package errs

import (
	"github.com/joomcode/errorx"
)

//nolint:gochecknoglobals
var (
	// Namespace groups every lum error type.
	Namespace = errorx.NewNamespace("lum")

	AllocationFailure = Namespace.NewType("allocation_failure")
	ArityMismatch     = Namespace.NewType("arity_mismatch")
	CapacityExceeded  = Namespace.NewType("capacity_exceeded")
	DivisionByZero    = Namespace.NewType("division_by_zero")
	MalformedForm     = Namespace.NewType("malformed_form")
	StaleClosure      = Namespace.NewType("stale_closure")
	Syntax            = Namespace.NewType("syntax")
	TypeMismatch      = Namespace.NewType("type_mismatch")
	UnboundVariable   = Namespace.NewType("unbound_variable")
	UnresolvedSymbol  = Namespace.NewType("unresolved_symbol")
	Unsupported       = Namespace.NewType("unsupported")

	// Symbol is attached to errors about a particular name.
	Symbol = errorx.RegisterPrintableProperty("symbol")
)

// Is returns true if err is of type t.
func Is(err error, t *errorx.Type) bool {
	return err != nil && errorx.IsOfType(err, t)
}

// Named returns an error of type t carrying the symbol name s.
func Named(t *errorx.Type, s string, format string, args ...interface{}) error {
	return t.New(format, args...).WithProperty(Symbol, s)
}

// Name extracts the symbol name attached to err, if any.
func Name(err error) (string, bool) {
	v, ok := errorx.ExtractProperty(err, Symbol)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}
