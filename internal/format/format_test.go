package format_test

import (
	"testing"

	"github.com/iamNilotpal/seqmap/internal/format"
	"github.com/stretchr/testify/assert"
)

func TestWriteRootHeaderZeroesOffsets(t *testing.T) {
	buf := make([]byte, format.RootHeaderSize)
	format.WriteRootHeader(buf)

	assert.Equal(t, uint32(format.TypeRoot), format.RootTypeTag(buf))
	assert.Equal(t, uint64(0), format.RootTableOffset(buf))
	assert.Equal(t, uint64(0), format.RootStringOffset(buf))
}

func TestRootHeaderOffsetSetters(t *testing.T) {
	buf := make([]byte, format.RootHeaderSize)
	format.WriteRootHeader(buf)

	format.SetRootTableOffset(buf, 24)
	format.SetRootStringOffset(buf, 108)

	assert.Equal(t, uint64(24), format.RootTableOffset(buf))
	assert.Equal(t, uint64(108), format.RootStringOffset(buf))
}

func TestTableBlockSize(t *testing.T) {
	assert.Equal(t, format.TableHeaderSize+4*format.CellSize, format.TableBlockSize(2))
	assert.Equal(t, format.TableHeaderSize+256*format.CellSize, format.TableBlockSize(8))
}

func TestSlotIndexConsumesLowBitsFirst(t *testing.T) {
	// 42 = 0b101010; low 2 bits = 0b10 = 2.
	assert.Equal(t, uint64(2), format.SlotIndex(42, 2))
	// 84 = 0b1010100; low 2 bits = 0b00 = 0.
	assert.Equal(t, uint64(0), format.SlotIndex(84, 2))
}

func TestAdvanceShiftsOutConsumedBits(t *testing.T) {
	assert.Equal(t, uint64(42>>2), format.Advance(42, 2))
}

func TestDecrementRemainingSaturatesAtZero(t *testing.T) {
	assert.Equal(t, uint64(0), format.DecrementRemaining(1, 4))
	assert.Equal(t, uint64(60), format.DecrementRemaining(64, 4))
}

func TestCellOffset(t *testing.T) {
	assert.Equal(t, uint64(24+format.TableHeaderSize), format.CellOffset(24, 0))
	assert.Equal(t, uint64(24+format.TableHeaderSize+format.CellSize), format.CellOffset(24, 1))
}
