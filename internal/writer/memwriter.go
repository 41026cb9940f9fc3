package writer

// MemWriter captures artifact bytes in memory.
type MemWriter struct {
	Buf []byte
}

var _ Sink = (*MemWriter)(nil)

// WriteArtifact stores a copy of the provided buffer.
func (w *MemWriter) WriteArtifact(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
