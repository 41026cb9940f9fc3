//go:build darwin

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file contents to stable storage.
//
// macOS doesn't have fdatasync, use fsync.
func syncFile(f *os.File) error {
	return unix.Fsync(int(f.Fd()))
}
