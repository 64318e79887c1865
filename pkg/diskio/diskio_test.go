package diskio_test

import (
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/seqmap/pkg/diskio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buffer.bin")
	want := []byte{1, 2, 3, 4, 5}

	require.NoError(t, diskio.WriteFile(path, want))

	got, err := diskio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buffer.bin")

	exists, err := diskio.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, diskio.WriteFile(path, []byte{0}))

	exists, err = diskio.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReadFileMissing(t *testing.T) {
	_, err := diskio.ReadFile(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}
