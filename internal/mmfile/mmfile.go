package mmfile

// File is a read-only view of one input file's full contents. Data stays
// valid until Close.
type File struct {
	// Data holds the file bytes, possibly as a shared mapping.
	Data []byte

	release func() error
}

// Close releases the mapping, if any. Close is idempotent.
func (f *File) Close() error {
	if f.release == nil {
		return nil
	}
	rel := f.release
	f.release = nil
	return rel()
}
