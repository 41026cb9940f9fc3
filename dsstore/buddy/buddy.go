package buddy

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dmgtools/dsforge/internal/buf"
	"github.com/dmgtools/dsforge/internal/format"
)

// ID names one allocated block. Ids are block table indices: the
// bookkeeping block holds id 0 and caller allocations count up from 1.
// On-disk references, the directory entry and the master record's root
// pointer, store these ids directly.
type ID uint32

// Allocator carves a 32-bit address space into power-of-two blocks with a
// bump pointer. It is write-only: blocks are never freed, and the free
// lists readers expect are synthesized from the final bump address when
// Finalize runs.
type Allocator struct {
	// header is the 32-byte block at address 0. It lives outside the
	// block table and is written last, once the bookkeeping block's
	// placement is final.
	header *buf.Buffer

	// blocks is the table in id order, bookkeeping block first.
	blocks []*Block

	// next is the bump pointer, always a multiple of 32.
	next uint32

	finalized bool
}

// New returns an allocator with the header and bookkeeping blocks already
// placed. Both are filled in by Finalize; callers only allocate blocks
// for their own payloads.
func New() *Allocator {
	a := &Allocator{
		header: buf.New(format.HeaderBlockSize),
		next:   format.HeaderBlockSize,
	}
	a.blocks = append(a.blocks, newBlock(a.next, format.BookkeepingSize))
	a.next += format.BookkeepingSize
	return a
}

// Alloc hands out the next block. size rounds up to a power of two, 32
// bytes at minimum, and the block's bytes start out zero. The returned id
// is what on-disk references store.
func (a *Allocator) Alloc(size int) (ID, *Block) {
	if a.finalized {
		panic("buddy: allocate after finalize")
	}
	if size < 0 || size > 1<<31 {
		panic(fmt.Sprintf("buddy: invalid block size %d", size))
	}
	if len(a.blocks) >= format.BlockTableEntries {
		panic("buddy: block table full")
	}

	bsize := PowerOfTwoCeil(uint32(max(size, format.MinBlockSize)))
	end := uint64(a.next) + uint64(bsize)
	if end > 1<<32 || (a.next == 0 && len(a.blocks) > 1) {
		panic("buddy: address space exhausted")
	}

	bl := newBlock(a.next, bsize)
	a.blocks = append(a.blocks, bl)
	a.next = uint32(end)
	return ID(len(a.blocks) - 1), bl
}

// Get resolves an id handed out by Alloc. Unknown ids panic.
func (a *Allocator) Get(id ID) *Block {
	if int(id) >= len(a.blocks) {
		panic(fmt.Sprintf("buddy: no such block id %d", id))
	}
	return a.blocks[id]
}

// Finalize writes the bookkeeping and header blocks. root is the block id
// readers are directed to through the "DSDB" directory entry, in practice
// the master tree record. Finalize must be called exactly once, after the
// last allocation.
func (a *Allocator) Finalize(root ID) {
	if a.finalized {
		panic("buddy: already finalized")
	}
	if int(root) >= len(a.blocks) {
		panic(fmt.Sprintf("buddy: no such block id %d", root))
	}
	a.finalized = true

	book := a.blocks[0]
	book.WriteU32(uint32(len(a.blocks)))
	book.WriteU32(0)

	// Block table: one packed word per entry, zero for unused slots. The
	// 32-byte minimum block size keeps the low five bits of every address
	// clear for the size exponent.
	for i := 0; i < format.BlockTableEntries; i++ {
		if i < len(a.blocks) {
			bl := a.blocks[i]
			book.WriteU32(bl.addr | log2(bl.size))
		} else {
			book.WriteU32(0)
		}
	}

	// Directory: a single entry naming the master record.
	book.WriteU32(1)
	book.WriteU8(uint8(len(format.TreeDirectoryName)))
	book.WriteBytes(format.TreeDirectoryName)
	book.WriteU32(uint32(root))

	// Free lists. The untouched tail of the address space, next through
	// 1<<32, splits into one buddy per set bit of next, smallest first.
	// The running pointer cascades upward and wraps to exactly zero when
	// the top bucket is emitted.
	ptr := a.next
	for i := 0; i < format.FreeListBuckets; i++ {
		if ptr&(1<<i) != 0 {
			book.WriteU32(1)
			book.WriteU32(ptr)
			ptr += 1 << i
		} else {
			book.WriteU32(0)
		}
	}

	h := a.header
	h.WriteBytes(format.BuddySignature)
	h.WriteU32(book.addr)
	h.WriteU32(book.size)
	h.WriteU32(book.addr)
}

// WriteTo serializes the container: the big-endian file marker, the
// header block, then every block in address order with no gaps. The
// allocator must be finalized first.
func (a *Allocator) WriteTo(w io.Writer) (int64, error) {
	if !a.finalized {
		panic("buddy: serialize before finalize")
	}

	var total int64
	var marker [4]byte
	binary.BigEndian.PutUint32(marker[:], format.FileMarker)

	n, err := w.Write(marker[:])
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("buddy: write marker: %w", err)
	}

	n, err = w.Write(a.header.Bytes())
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("buddy: write header block: %w", err)
	}

	for i, bl := range a.blocks {
		n, err = w.Write(bl.Bytes())
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("buddy: write block %d: %w", i, err)
		}
	}
	return total, nil
}

var _ io.WriterTo = (*Allocator)(nil)
