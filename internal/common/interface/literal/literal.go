// Released under an MIT license. See LICENSE.

// Package literal defines the interface for lum values that can be expressed as literals.
package literal

import (
	"fmt"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for v, if possible.
func String(v interface{}) string {
	l, ok := v.(I)
	if !ok {
		// Not every payload has a literal representation.
		return fmt.Sprintf("#<%T>", v)
	}

	return l.Literal()
}
