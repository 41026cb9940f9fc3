package buddy

import (
	"fmt"

	"github.com/dmgtools/dsforge/internal/buf"
)

// Block is one fixed-capacity allocation. Its backing buffer is created
// at the block's full power-of-two size and stays zero where nothing is
// written, so serialization is a straight concatenation of block bytes.
//
// Writes share the cursor semantics of buf.Buffer but are clamped to the
// block: anything that would cross the block's end panics.
type Block struct {
	addr uint32
	size uint32
	b    *buf.Buffer
}

func newBlock(addr, size uint32) *Block {
	return &Block{addr: addr, size: size, b: buf.New(int(size))}
}

// Addr returns the block's address within the container.
func (bl *Block) Addr() uint32 {
	return bl.addr
}

// Size returns the block's power-of-two capacity.
func (bl *Block) Size() uint32 {
	return bl.size
}

// WriteU8 writes one byte at the cursor.
func (bl *Block) WriteU8(v uint8) {
	bl.bounds(1)
	bl.b.WriteU8(v)
}

// WriteU32 writes a big-endian uint32 at the cursor.
func (bl *Block) WriteU32(v uint32) {
	bl.bounds(4)
	bl.b.WriteU32(v)
}

// WriteBytes copies p at the cursor.
func (bl *Block) WriteBytes(p []byte) {
	bl.bounds(len(p))
	bl.b.WriteBytes(p)
}

// WriteString copies the raw bytes of s at the cursor.
func (bl *Block) WriteString(s string) {
	bl.bounds(len(s))
	bl.b.WriteString(s)
}

// Seek moves the cursor to off, which must lie within the block.
func (bl *Block) Seek(off int) {
	if off < 0 || off > int(bl.size) {
		panic(fmt.Sprintf("buddy: seek to %d outside %d-byte block at %#x", off, bl.size, bl.addr))
	}
	bl.b.Seek(off)
}

// Bytes returns the block's full backing bytes, always exactly Size long.
func (bl *Block) Bytes() []byte {
	return bl.b.Bytes()
}

func (bl *Block) bounds(n int) {
	if bl.b.Pos()+n > int(bl.size) {
		panic(fmt.Sprintf("buddy: write past end of %d-byte block at %#x", bl.size, bl.addr))
	}
}
