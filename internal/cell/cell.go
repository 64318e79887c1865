// Package cell implements the tagged three-way union that occupies every
// slot of a table block: a cell is either empty, a pointer into the string
// pool, or a pointer to a deeper table.
//
// A cell is the smallest unit of the on-disk format, and it is also the
// highest-traffic one: every step of every insert and every lookup reads or
// writes exactly one cell. The layout is packed on purpose (one tag byte,
// one 8-byte index, one 8-byte key, with no padding between them) so that
// the stride between cells in a table block is fixed and computable without
// reading anything — see format.CellSize.
package cell

import (
	"encoding/binary"
	"fmt"
)

// Tag identifies what a cell currently holds.
type Tag uint8

const (
	// Empty means the slot has never been written. This is the zero value
	// so that a freshly zero-initialized table block reads back as entirely
	// empty without any explicit initialization pass over its cells.
	Empty Tag = 0

	// StringPtr means the slot holds an offset into the string pool plus
	// the original 64-bit key that was inserted there.
	StringPtr Tag = 1

	// TablePtr means the slot holds a buffer-relative offset to a deeper
	// table block. Once a cell becomes a TablePtr it never changes again.
	TablePtr Tag = 2
)

// String implements fmt.Stringer for diagnostic output and panic messages.
func (t Tag) String() string {
	switch t {
	case Empty:
		return "empty"
	case StringPtr:
		return "string_ptr"
	case TablePtr:
		return "table_ptr"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Instance is the decoded view of a single cell. Index and StoredKey are
// only meaningful for the tags documented on Tag above; code that decodes a
// cell must always check Tag before trusting either field.
//
// Field order here follows the on-disk order (tag, index, key) rather than
// size-descending order, since Instance is a decoded scratch value, not
// something whose own memory layout matters — only the packed on-disk
// encoding below is alignment-sensitive.
type Instance struct {
	Tag       Tag
	Index     uint64
	StoredKey uint64
}

// Decode reads the cell occupying the first format.CellSize bytes of region.
func Decode(region []byte) Instance {
	tag := Tag(region[0])
	index := binary.LittleEndian.Uint64(region[1:9])
	key := binary.LittleEndian.Uint64(region[9:17])
	return Instance{Tag: tag, Index: index, StoredKey: key}
}

// EncodeStringPtr overwrites the cell occupying the first format.CellSize
// bytes of region to become a StringPtr pointing at the given pool-relative
// offset, caching the full original key for the final equality check a
// lookup must perform (see package lookup's Table.Get).
func EncodeStringPtr(region []byte, index uint64, key uint64) {
	region[0] = byte(StringPtr)
	binary.LittleEndian.PutUint64(region[1:9], index)
	binary.LittleEndian.PutUint64(region[9:17], key)
}

// EncodeTablePtr overwrites the cell occupying the first format.CellSize
// bytes of region to become a TablePtr to the given buffer-relative table
// offset. StoredKey is cleared to zero: it carries no meaning for a
// TablePtr, and leaving stale bytes behind would violate the invariant that
// non-StringPtr cells always read back with a zero StoredKey.
func EncodeTablePtr(region []byte, tableOffset uint64) {
	region[0] = byte(TablePtr)
	binary.LittleEndian.PutUint64(region[1:9], tableOffset)
	binary.LittleEndian.PutUint64(region[9:17], 0)
}
