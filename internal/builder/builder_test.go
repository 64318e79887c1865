package builder_test

import (
	"testing"

	"github.com/iamNilotpal/seqmap/internal/builder"
	"github.com/iamNilotpal/seqmap/internal/lookup"
	"github.com/iamNilotpal/seqmap/pkg/errors"
	"github.com/iamNilotpal/seqmap/pkg/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsOutOfRangeBits(t *testing.T) {
	_, err := builder.New(1)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))

	_, err = builder.New(17)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestBuildWithNoInsertsIsAnEmptyMap(t *testing.T) {
	b, err := builder.New(2)
	require.NoError(t, err)

	buf := b.Build()

	table, err := lookup.New(buf)
	require.NoError(t, err)
	_, ok := table.Get(1)
	assert.False(t, ok)
}

func TestInsertThenBuildRoundTrips(t *testing.T) {
	b, err := builder.New(4)
	require.NoError(t, err)
	require.NoError(t, b.Insert(1, "one"))
	require.NoError(t, b.Insert(2, "two"))

	table, err := lookup.New(b.Build())
	require.NoError(t, err)

	value, ok := table.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", value)

	value, ok = table.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "two", value)
}

func TestInsertRejectsInvalidUTF8(t *testing.T) {
	b, err := builder.New(4)
	require.NoError(t, err)

	err = b.Insert(1, string([]byte{0xff, 0xfe, 0xfd}))
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestWithLoggerOptionIsAccepted(t *testing.T) {
	_, err := builder.New(4, options.WithLogger(nil))
	require.NoError(t, err)
}

func TestReinsertSameKeyIsNoOp(t *testing.T) {
	b, err := builder.New(4)
	require.NoError(t, err)
	require.NoError(t, b.Insert(7, "first"))
	require.NoError(t, b.Insert(7, "second"))

	table, err := lookup.New(b.Build())
	require.NoError(t, err)

	value, ok := table.Get(7)
	assert.True(t, ok)
	assert.Equal(t, "first", value)
}

func TestReinsertSameKeyAfterCollisionSplitIsNoOp(t *testing.T) {
	b, err := builder.New(2)
	require.NoError(t, err)
	require.NoError(t, b.Insert(1, "one"))
	require.NoError(t, b.Insert(5, "five"))
	require.NoError(t, b.Insert(5, "shadowed"))

	table, err := lookup.New(b.Build())
	require.NoError(t, err)

	value, ok := table.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", value)

	value, ok = table.Get(5)
	assert.True(t, ok)
	assert.Equal(t, "five", value)
}
