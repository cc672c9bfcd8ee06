// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package ui

import (
	"io"
)

const columns = 80

func width(_ io.Writer) int {
	return columns
}
