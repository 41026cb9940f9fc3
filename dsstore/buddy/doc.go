// Package buddy implements the write-only buddy allocator that backs the
// "Bud1" container format.
//
// # Overview
//
// The container is a flat address space carved into power-of-two blocks.
// Every block is handed out by a bump pointer: sizes round up to the next
// power of two (32 bytes at minimum), addresses only ever grow, and
// nothing is ever freed. The free lists a real buddy allocator would
// maintain are synthesized once at the end, purely so readers find the
// structures they expect.
//
// # Address space
//
// Address 0 holds the 32-byte header block. It sits outside the block
// table and is never reachable through an id. The 2048-byte bookkeeping
// block follows at address 32 as table index 0, so the first caller
// allocation always gets id 1.
//
// # Usage
//
//	a := buddy.New()
//	id, blk := a.Alloc(2048)
//	blk.WriteU32(...)
//	a.Finalize(rootID)
//	a.WriteTo(f)
//
// Misuse, such as allocating after Finalize or writing past a block's
// end, panics: the package forges fixed artifacts in one pass and has no
// meaningful way to continue after a programming error.
//
// # Thread safety
//
// Allocator instances are not thread-safe.
package buddy
