//go:build windows

package writer

import (
	"os"

	"golang.org/x/sys/windows"
)

// syncFile flushes file contents to stable storage.
//
// On Windows, FlushFileBuffers ensures all file data and metadata is
// written to disk.
func syncFile(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
