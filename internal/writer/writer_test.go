package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriterWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".DS_Store")

	w := &FileWriter{Path: path}
	want := []byte{0, 0, 0, 1, 'B', 'u', 'd', '1'}
	if err := w.WriteArtifact(want); err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("content mismatch: got %x want %x", got, want)
	}

	// No stray temp files once the rename lands.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the artifact in %s, found %d entries", dir, len(entries))
	}
}

func TestFileWriterOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	w := &FileWriter{Path: path}

	if err := w.WriteArtifact([]byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteArtifact([]byte("second")); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("got %q, want %q", got, "second")
	}
}

func TestFileWriterMissingDirectory(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "no", "such", "dir", "out")}
	if err := w.WriteArtifact([]byte("x")); err == nil {
		t.Fatal("expected error for missing destination directory")
	}
}

func TestMemWriterCopies(t *testing.T) {
	src := []byte("abc")
	var w MemWriter
	if err := w.WriteArtifact(src); err != nil {
		t.Fatal(err)
	}

	src[0] = 'z'
	if string(w.Buf) != "abc" {
		t.Fatalf("stored bytes alias the caller's slice: %q", w.Buf)
	}

	if err := w.WriteArtifact([]byte("replaced")); err != nil {
		t.Fatal(err)
	}
	if string(w.Buf) != "replaced" {
		t.Fatalf("got %q, want %q", w.Buf, "replaced")
	}
}
