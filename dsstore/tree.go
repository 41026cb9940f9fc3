package dsstore

import (
	"fmt"
	"sort"

	"github.com/dmgtools/dsforge/dsstore/buddy"
	"github.com/dmgtools/dsforge/internal/format"
)

// entryKey identifies one tree entry. A name can carry several records of
// different types, so both parts participate in ordering and identity.
type entryKey struct {
	name       string
	recordType string
}

// entry is one pending record: the name pre-encoded to UTF-16BE, the
// value kind fourcc, and the value bytes already in wire form.
type entry struct {
	nameUTF16 []byte
	kind      string
	value     []byte
}

// TreeBuilder accumulates (name, type) records and flushes them as the
// single-leaf entry tree readers expect: one leaf block holding every
// record in case-sensitive (name, type) order, and one master record
// describing the tree.
//
// Entries live in a map until Finish, so insertion order never matters
// and adding a (name, type) pair twice replaces the earlier value. The
// leaf block is allocated only at Finish, sized to the default 2048 bytes
// or the next power of two above the accumulated payload, whichever is
// larger.
type TreeBuilder struct {
	alloc    *buddy.Allocator
	entries  map[entryKey]entry
	finished bool
}

// NewTree returns a TreeBuilder allocating its blocks from a.
func NewTree(a *buddy.Allocator) *TreeBuilder {
	return &TreeBuilder{
		alloc:   a,
		entries: make(map[entryKey]entry),
	}
}

// AddBlob records data as a length-framed blob value.
func (t *TreeBuilder) AddBlob(name, recordType string, data []byte) error {
	value := make([]byte, 4+len(data))
	format.PutU32(value, 0, uint32(len(data)))
	copy(value[4:], data)
	return t.add(name, recordType, format.KindBlob, value)
}

// AddBool records a one-byte boolean value.
func (t *TreeBuilder) AddBool(name, recordType string, v bool) error {
	value := []byte{0}
	if v {
		value[0] = 1
	}
	return t.add(name, recordType, format.KindBool, value)
}

// AddShort records a "shor" value, which occupies four bytes on the wire
// despite its name.
func (t *TreeBuilder) AddShort(name, recordType string, v uint16) error {
	value := make([]byte, 4)
	format.PutU32(value, 0, uint32(v))
	return t.add(name, recordType, format.KindShort, value)
}

func (t *TreeBuilder) add(name, recordType, kind string, value []byte) error {
	if t.finished {
		panic("dsstore: add entry after finish")
	}
	if len(recordType) != 4 {
		return fmt.Errorf("record type %q: %w", recordType, format.ErrBadTypeTag)
	}
	nameUTF16, err := format.EncodeUTF16BE(name)
	if err != nil {
		return err
	}
	t.entries[entryKey{name: name, recordType: recordType}] = entry{
		nameUTF16: nameUTF16,
		kind:      kind,
		value:     value,
	}
	return nil
}

// Finish allocates and writes the leaf and master blocks, returning the
// master record's block id for the allocator's directory. It must be
// called exactly once; the builder accepts no entries afterwards.
func (t *TreeBuilder) Finish() buddy.ID {
	if t.finished {
		panic("dsstore: finish twice")
	}
	t.finished = true

	keys := make([]entryKey, 0, len(t.entries))
	payload := 0
	for k, e := range t.entries {
		keys = append(keys, k)
		payload += 4 + len(e.nameUTF16) + 4 + 4 + len(e.value)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].recordType < keys[j].recordType
	})

	total := format.LeafHeaderSize + payload
	if total > 1<<31 {
		panic("dsstore: entries exceed leaf capacity")
	}
	leafSize := max(format.DefaultLeafSize, int(buddy.PowerOfTwoCeil(uint32(total))))

	leafID, leaf := t.alloc.Alloc(leafSize)
	leaf.WriteU32(0) // leaf node, no children
	leaf.WriteU32(uint32(len(keys)))
	for _, k := range keys {
		e := t.entries[k]
		leaf.WriteU32(uint32(len(e.nameUTF16) / 2))
		leaf.WriteBytes(e.nameUTF16)
		leaf.WriteString(k.recordType)
		leaf.WriteString(e.kind)
		leaf.WriteBytes(e.value)
	}

	masterID, master := t.alloc.Alloc(format.MasterSize)
	master.WriteU32(uint32(leafID))
	master.WriteU32(0) // levels above the leaf
	master.WriteU32(uint32(len(keys)))
	master.WriteU32(1) // node count
	master.WriteU32(format.MasterPageSize)
	return masterID
}
