package format

import "encoding/binary"

// Binary encoding utilities for big-endian integers.
//
// Everything Finder reads here is big-endian; these helpers pair with the
// offset constants in this package so fixed-layout structures can be
// written field by field into a pre-sized buffer.

// PutU16 writes a uint16 value to the buffer at the specified offset in big-endian format.
func PutU16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:off+2], v)
}

// PutU32 writes a uint32 value to the buffer at the specified offset in big-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}

// ReadU16 reads a uint16 value from the buffer at the specified offset in big-endian format.
func ReadU16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off : off+2])
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in big-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}
