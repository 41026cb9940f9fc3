// Package writer exposes sinks for forged artifacts.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives a fully forged artifact.
type Sink interface {
	WriteArtifact(buf []byte) error
}

// FileWriter writes artifact bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
}

var _ Sink = (*FileWriter)(nil)

// WriteArtifact writes buf to the configured path atomically via temp
// file + rename. The temp file lands in the destination directory so
// the rename never crosses filesystems.
func (w *FileWriter) WriteArtifact(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".dsforge-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if syncErr := syncFile(tmpFile); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
