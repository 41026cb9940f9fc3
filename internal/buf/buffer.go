// Package buf contains the big-endian cursor buffer that forged
// artifacts are assembled in.
package buf

import "encoding/binary"

// Buffer is a growable byte sequence with an explicit write cursor.
//
// All multi-byte writes are big-endian. Writing past the current end
// extends the sequence with zero bytes; seeking backwards and rewriting
// patches bytes in place without truncating anything after the cursor.
// Containers in this module are assembled exactly that way: length and
// offset fields are written as zero placeholders first and patched once
// their values are known.
type Buffer struct {
	data []byte
	pos  int
}

// New returns a Buffer pre-extended with n zero bytes and the cursor at 0.
func New(n int) *Buffer {
	return &Buffer{data: make([]byte, n)}
}

// WriteU8 writes one byte at the cursor.
func (b *Buffer) WriteU8(v uint8) {
	b.window(1)[0] = v
	b.pos++
}

// WriteU16 writes a big-endian uint16 at the cursor.
func (b *Buffer) WriteU16(v uint16) {
	binary.BigEndian.PutUint16(b.window(2), v)
	b.pos += 2
}

// WriteU32 writes a big-endian uint32 at the cursor.
func (b *Buffer) WriteU32(v uint32) {
	binary.BigEndian.PutUint32(b.window(4), v)
	b.pos += 4
}

// WriteBytes copies p at the cursor.
func (b *Buffer) WriteBytes(p []byte) {
	copy(b.window(len(p)), p)
	b.pos += len(p)
}

// WriteString copies the raw bytes of s at the cursor.
func (b *Buffer) WriteString(s string) {
	copy(b.window(len(s)), s)
	b.pos += len(s)
}

// Skip advances the cursor n bytes, extending with zeros when the move
// crosses the current end.
func (b *Buffer) Skip(n int) {
	if n < 0 {
		panic("buf: negative skip")
	}
	b.window(n)
	b.pos += n
}

// Seek moves the cursor to off, extending with zeros when off lies past
// the current end. Nothing is ever truncated.
func (b *Buffer) Seek(off int) {
	if off < 0 {
		panic("buf: negative seek")
	}
	b.pos = off
	b.window(0)
}

// Pos returns the cursor position.
func (b *Buffer) Pos() int {
	return b.pos
}

// Len returns the current length, which only ever grows.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the underlying byte sequence. The slice is owned by the
// Buffer and remains valid until the next write.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// window grows the buffer so n bytes fit at the cursor and returns that
// span.
func (b *Buffer) window(n int) []byte {
	end := b.pos + n
	if end > len(b.data) {
		if end > cap(b.data) {
			grown := make([]byte, end, max(end, 2*cap(b.data)))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}
	return b.data[b.pos:end]
}
