// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package ui

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

const columns = 80

// The width function returns the number of columns of the terminal w
// writes to, or a default if w is not a terminal.
func width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return columns
	}

	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return columns
	}

	return int(ws.Col)
}
