package seqmap_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/iamNilotpal/seqmap/pkg/seqmap"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentGet verifies that many goroutines can call Get against the
// same Map simultaneously: Get never mutates the underlying buffer, so this
// would deadlock or race only if that invariant were violated.
func TestConcurrentGet(t *testing.T) {
	b, err := seqmap.NewBuilder(6)
	require.NoError(t, err)

	entries := make(map[uint64]string, 200)
	for i := uint64(0); i < 200; i++ {
		entries[i] = fmt.Sprintf("value_%d", i)
	}
	require.NoError(t, b.InsertAll(entries))

	m, err := seqmap.NewMap(b.Build())
	require.NoError(t, err)

	wg, _ := errgroup.WithContext(context.Background())
	for key, want := range entries {
		key, want := key, want
		wg.Go(func() error {
			got, ok := m.Get(key)
			if !ok {
				return fmt.Errorf("key %d: not found", key)
			}
			if got != want {
				return fmt.Errorf("key %d: got %q, want %q", key, got, want)
			}
			return nil
		})
	}

	require.NoError(t, wg.Wait())
}
