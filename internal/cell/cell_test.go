package cell_test

import (
	"testing"

	"github.com/iamNilotpal/seqmap/internal/cell"
	"github.com/iamNilotpal/seqmap/internal/format"
	"github.com/stretchr/testify/assert"
)

func TestDecodeZeroedRegionIsEmpty(t *testing.T) {
	region := make([]byte, format.CellSize)
	got := cell.Decode(region)
	assert.Equal(t, cell.Empty, got.Tag)
	assert.Equal(t, uint64(0), got.Index)
	assert.Equal(t, uint64(0), got.StoredKey)
}

func TestEncodeStringPtrRoundTrips(t *testing.T) {
	region := make([]byte, format.CellSize)
	cell.EncodeStringPtr(region, 7, 84)

	got := cell.Decode(region)
	assert.Equal(t, cell.StringPtr, got.Tag)
	assert.Equal(t, uint64(7), got.Index)
	assert.Equal(t, uint64(84), got.StoredKey)
}

func TestEncodeTablePtrClearsStoredKey(t *testing.T) {
	region := make([]byte, format.CellSize)
	cell.EncodeStringPtr(region, 7, 84)
	cell.EncodeTablePtr(region, 128)

	got := cell.Decode(region)
	assert.Equal(t, cell.TablePtr, got.Tag)
	assert.Equal(t, uint64(128), got.Index)
	assert.Equal(t, uint64(0), got.StoredKey)
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "empty", cell.Empty.String())
	assert.Equal(t, "string_ptr", cell.StringPtr.String())
	assert.Equal(t, "table_ptr", cell.TablePtr.String())
	assert.Equal(t, "unknown(7)", cell.Tag(7).String())
}
