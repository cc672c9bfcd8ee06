// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/michaelmacinnis/lum/internal/common/type/cell"
)

// Is returns true if c is a Symbol or Keyword cell.
func Is(c *cell.T) bool {
	return c.Is(cell.Symbol, cell.Keyword)
}

// To returns the sym held by c or nil if c is not a Symbol or Keyword.
func To(c *cell.T) *sym {
	if !Is(c) {
		return nil
	}

	s, _ := c.Ref().(*sym)

	return s
}
