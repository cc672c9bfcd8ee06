// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping lum.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lum
var script string //nolint:gochecknoglobals

// Script returns the boot script for lum.
func Script() string {
	return script
}
