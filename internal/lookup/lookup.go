// Package lookup implements the read side of the bit-sliced trie: walking
// an already-built buffer from its root table down to either a matching
// string, an empty cell, or a key mismatch.
//
// Nothing here mutates the buffer, so unlike package builder there is no
// aliasing hazard: a single []byte is handed in at construction and every
// table.View overlaid on it stays valid for the buffer's whole lifetime.
package lookup

import (
	"github.com/iamNilotpal/seqmap/internal/cell"
	"github.com/iamNilotpal/seqmap/internal/format"
	"github.com/iamNilotpal/seqmap/internal/table"
	"github.com/iamNilotpal/seqmap/pkg/errors"
)

// Table performs Get against a finished buffer. It is deliberately tiny: all
// the addressing logic it needs already lives in package format and table.
type Table struct {
	buf []byte
}

// New validates that buf is at least large enough to hold a root header and
// that the header's type tag identifies it as one, then returns a Table
// ready for Get.
//
// A buffer too short to contain a root header is a caller mistake and
// yields a *errors.ConfigError. A buffer long enough to hold a header but
// carrying the wrong type tag is not a caller mistake in the same sense —
// it means the bytes did not come from this package's Builder — so it
// panics with a *errors.FormatError instead, matching the rest of this
// package's buffer-walk failures.
func New(buf []byte) (*Table, error) {
	if len(buf) < format.RootHeaderSize {
		return nil, errors.NewBufferTooShortError(len(buf))
	}
	if tag := format.RootTypeTag(buf); tag != format.TypeRoot {
		panic(errors.NewBadRootTagError(tag))
	}
	return &Table{buf: buf}, nil
}

// Get walks the trie from the root table for key, consuming bits-per-level
// as recorded in each table's own header. It returns the stored value and
// true on a match, or ("", false) on a miss.
//
// A structurally inconsistent buffer — an unknown cell tag, or an offset
// that falls outside buf — panics with a *errors.FormatError rather than
// returning an error, since by the time Get is walking a buffer there is no
// recoverable caller mistake left to report: the buffer itself is corrupt.
func (t *Table) Get(key uint64) (string, bool) {
	root := t.buf[:format.RootHeaderSize]
	tableOffset := format.RootTableOffset(root)
	if tableOffset == 0 {
		return "", false
	}
	stringOffset := format.RootStringOffset(root)

	remainingBits := uint64(64)
	runningKey := key

	for remainingBits > 0 {
		if tableOffset >= uint64(len(t.buf)) {
			panic(errors.NewOffsetOutOfRangeError(tableOffset, len(t.buf)))
		}
		view := table.Overlay(t.buf, tableOffset)
		slot := view.Slot(runningKey)
		current := view.Cell(slot)

		switch current.Tag {
		case cell.Empty:
			return "", false

		case cell.StringPtr:
			if current.StoredKey != key {
				return "", false
			}
			start := stringOffset + current.Index
			if start >= uint64(len(t.buf)) {
				panic(errors.NewOffsetOutOfRangeError(start, len(t.buf)))
			}
			return readCString(t.buf[start:]), true

		case cell.TablePtr:
			remainingBits = view.DecrementRemaining(remainingBits)
			runningKey = view.Advance(runningKey)
			tableOffset = current.Index

		default:
			panic(errors.NewUnknownCellTagError(view.CellOffset(slot), uint8(current.Tag)))
		}
	}

	return "", false
}

// readCString returns the UTF-8 content of the NUL-terminated sequence
// starting at the beginning of region.
func readCString(region []byte) string {
	for i, b := range region {
		if b == 0 {
			return string(region[:i])
		}
	}
	// A buffer produced by this package's Builder always NUL-terminates
	// every pool entry; reaching the end without one means the buffer
	// isn't one of ours.
	panic(errors.NewOffsetOutOfRangeError(uint64(len(region)), len(region)))
}
