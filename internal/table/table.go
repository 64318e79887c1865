// Package table overlays a typed view — table header plus cell array — onto
// a region of a buffer that already holds that structure, and provides the
// key-bit arithmetic used to walk from one table level to the next.
//
// A View never retains a direct slice into the buffer across a call that
// might grow it. The builder re-obtains a fresh View after every append:
// Go slices do not survive a reallocation of their backing array, so
// holding one across a growth step would silently observe stale memory.
package table

import (
	"github.com/iamNilotpal/seqmap/internal/cell"
	"github.com/iamNilotpal/seqmap/internal/format"
)

// View overlays a table block living at Offset inside Buf. It is a cheap,
// short-lived wrapper: construct one, use it, discard it before the next
// buffer mutation.
type View struct {
	Buf    []byte
	Offset uint64
}

// Overlay constructs a View over the table block at offset inside buf. The
// block must already have been initialized with format.WriteTableHeader.
func Overlay(buf []byte, offset uint64) View {
	return View{Buf: buf, Offset: offset}
}

// Bits returns this table's fanout.
func (v View) Bits() uint8 {
	return format.TableBits(v.Buf[v.Offset:])
}

// Slot returns the cell index selected by the low bits of key at this
// table's fanout.
func (v View) Slot(key uint64) uint64 {
	return format.SlotIndex(key, v.Bits())
}

// Advance shifts out the bits this table level consumes, producing the
// residual key for the next level down.
func (v View) Advance(key uint64) uint64 {
	return format.Advance(key, v.Bits())
}

// DecrementRemaining reduces a remaining-bit-width counter by this table's
// fanout, saturating at zero.
func (v View) DecrementRemaining(remaining uint64) uint64 {
	return format.DecrementRemaining(remaining, v.Bits())
}

// CellOffset returns the absolute buffer offset of the cell at slot.
func (v View) CellOffset(slot uint64) uint64 {
	return format.CellOffset(v.Offset, slot)
}

// Cell decodes the cell at slot.
func (v View) Cell(slot uint64) cell.Instance {
	off := v.CellOffset(slot)
	return cell.Decode(v.Buf[off : off+format.CellSize])
}

// CellRegion returns the mutable byte range backing the cell at slot, for
// use with cell.EncodeStringPtr / cell.EncodeTablePtr.
func (v View) CellRegion(slot uint64) []byte {
	off := v.CellOffset(slot)
	return v.Buf[off : off+format.CellSize]
}
