//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file contents to stable storage.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees: the
// artifact is renamed into place afterwards, so metadata timing does
// not matter.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
