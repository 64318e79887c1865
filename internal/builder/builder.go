// Package builder implements the write side of the bit-sliced trie: a
// Builder owns one growing index buffer and one string pool, and inserts
// lazily split a cell into a deeper table only when a second key collides
// with one already occupying that slot.
//
// The central subtlety this package has to get right is buffer aliasing.
// append(buf, ...) may reallocate buf's backing array, so any table.View
// obtained before a call that might grow the buffer is stale afterward and
// must be re-obtained — see the re-overlay calls scattered through Insert
// below.
package builder

import (
	"unicode/utf8"

	"github.com/iamNilotpal/seqmap/internal/cell"
	"github.com/iamNilotpal/seqmap/internal/format"
	"github.com/iamNilotpal/seqmap/internal/intern"
	"github.com/iamNilotpal/seqmap/internal/table"
	"github.com/iamNilotpal/seqmap/pkg/errors"
	"github.com/iamNilotpal/seqmap/pkg/options"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Builder accumulates key/value pairs into a single contiguous buffer. It
// is not safe for concurrent Insert calls: exactly one goroutine may own a
// Builder at a time.
type Builder struct {
	bits    uint8
	index   []byte
	pool    *intern.Pool
	log     *zap.SugaredLogger
	inserts int
}

// New constructs a Builder with the given table fanout, applying any
// supplied options. bits must fall within [options.MinBits, options.MaxBits];
// any other value is rejected with a *errors.ConfigError before any buffer
// is allocated.
func New(bits int, opts ...options.BuilderOption) (*Builder, error) {
	cfg := options.NewDefaultOptions()
	cfg.Bits = bits
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Bits < options.MinBits || cfg.Bits > options.MaxBits {
		return nil, errors.NewBitsOutOfRangeError(cfg.Bits)
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	b := &Builder{
		bits:  uint8(cfg.Bits),
		index: make([]byte, format.RootHeaderSize),
		pool:  intern.New(),
		log:   log,
	}
	format.WriteRootHeader(b.index)

	log.Infow("builder initialized", "bits", cfg.Bits)
	return b, nil
}

// appendTable grows the index buffer by one zero-initialized table block
// and returns its buffer offset. Every View obtained before this call is
// invalidated; callers must re-overlay afterward.
func (b *Builder) appendTable() uint64 {
	offset := uint64(len(b.index))
	b.index = append(b.index, make([]byte, format.TableBlockSize(b.bits))...)
	format.WriteTableHeader(b.index[offset:], b.bits)
	return offset
}

func (b *Builder) root() []byte {
	return b.index[:format.RootHeaderSize]
}

// Insert adds a key/value pair to the buffer being built. value must be
// valid UTF-8; any other input is rejected with a *errors.ConfigError and
// leaves the Builder unchanged.
//
// Inserting a key that already resolved to a string cell is a no-op: the
// first value inserted for a key wins, and the second call returns nil
// without touching the buffer.
func (b *Builder) Insert(key uint64, value string) error {
	if !utf8.ValidString(value) {
		return errors.NewInvalidUTF8Error(key)
	}

	if format.RootTableOffset(b.root()) == 0 {
		offset := b.appendTable()
		format.SetRootTableOffset(b.root(), offset)
	}

	tableOffset := format.RootTableOffset(b.root())
	remainingBits := uint64(64)
	runningKey := key

	for remainingBits > 0 {
		view := table.Overlay(b.index, tableOffset)
		slot := view.Slot(runningKey)
		current := view.Cell(slot)

		switch current.Tag {
		case cell.Empty:
			strOffset := b.pool.Add(value)
			// Re-overlay: pool.Add never touches b.index, but the cell region
			// handed to EncodeStringPtr must come from the live buffer, not a
			// view captured before this branch ran.
			region := table.Overlay(b.index, tableOffset).CellRegion(slot)
			cell.EncodeStringPtr(region, strOffset, key)
			remainingBits = 0

		case cell.StringPtr:
			if current.StoredKey == key {
				// Re-inserting a key that already resolved to a string in
				// this exact slot: the first value wins and this insert is
				// a no-op, rather than splitting a table to disambiguate a
				// key from itself.
				remainingBits = 0
				break
			}

			oldIndex, oldKey := current.Index, current.StoredKey
			consumed := 64 - remainingBits
			residualOldKey := oldKey >> consumed

			// appendTable grows b.index; every prior view is now stale.
			newTableOffset := b.appendTable()

			oldSlotRegion := table.Overlay(b.index, tableOffset).CellRegion(slot)
			cell.EncodeTablePtr(oldSlotRegion, newTableOffset)

			newView := table.Overlay(b.index, newTableOffset)
			advancedOldKey := newView.Advance(residualOldKey)
			newSlot := newView.Slot(advancedOldKey)
			newRegion := newView.CellRegion(newSlot)
			cell.EncodeStringPtr(newRegion, oldIndex, oldKey)

			b.log.Debugw("split cell on collision",
				"tableOffset", tableOffset, "slot", slot, "newTableOffset", newTableOffset)
			// Loop again: the slot we just collided on is now a TablePtr, so
			// the next iteration chases it and continues placing key/value.

		case cell.TablePtr:
			tableOffset = current.Index
			view := table.Overlay(b.index, tableOffset)
			runningKey = view.Advance(runningKey)
			remainingBits = view.DecrementRemaining(remainingBits)

		default:
			panic(errors.NewUnknownCellTagError(view.CellOffset(slot), uint8(current.Tag)))
		}
	}

	b.inserts++
	return nil
}

// InsertAll inserts every entry in entries, collecting every rejected
// key/value pair into a single combined error via multierr rather than
// stopping at the first one. The Builder retains whatever entries were
// successfully inserted before an error was encountered.
func (b *Builder) InsertAll(entries map[uint64]string) error {
	var combined error
	for key, value := range entries {
		if err := b.Insert(key, value); err != nil {
			combined = multierr.Append(combined, err)
		}
	}
	return combined
}

// Build finalizes the buffer: the string pool is concatenated after the
// index region and the root header's string offset is set to the boundary
// between them. The Builder must not be reused afterward.
//
// Calling Build on a Builder that received no Insert calls is legal: the
// result is just the zero-initialized root header, representing an empty
// map whose root_table_offset is zero.
func (b *Builder) Build() []byte {
	if b.inserts > 0 {
		format.SetRootStringOffset(b.root(), uint64(len(b.index)))
	}

	result := make([]byte, 0, len(b.index)+b.pool.Len())
	result = append(result, b.index...)
	result = append(result, b.pool.Bytes()...)

	b.log.Infow("build finalized", "inserts", b.inserts, "bufferSize", len(result))
	return result
}
