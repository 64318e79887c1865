package seqmap

import (
	"fmt"

	"github.com/iamNilotpal/seqmap/internal/lookup"
)

// Map is a read-only view over a buffer produced by a Builder. Map is safe
// for concurrent use by multiple goroutines: Get never mutates the
// underlying buffer.
type Map struct {
	table *lookup.Table
}

// NewMap wraps buf for lookups. buf is typically the result of Builder.Build,
// bytes read back from disk via pkg/diskio, or a pkg/mmap.Region's Bytes().
//
// NewMap returns a *errors.ConfigError if buf is too short to possibly hold
// a root header. It panics with a *errors.FormatError if buf is long enough
// but does not begin with a valid root header, since that indicates buf was
// never produced by a Builder rather than that the caller passed a
// zero-length slice by mistake.
func NewMap(buf []byte) (*Map, error) {
	table, err := lookup.New(buf)
	if err != nil {
		return nil, err
	}
	return &Map{table: table}, nil
}

// Get returns the value stored for key, and whether one was found.
func (m *Map) Get(key uint64) (string, bool) {
	return m.table.Get(key)
}

// MustGet returns the value stored for key, panicking if key is absent.
// Intended for call sites working against a fixed, known-good table, such
// as an embedded lookup table built at compile time.
func (m *Map) MustGet(key uint64) string {
	value, ok := m.Get(key)
	if !ok {
		panic(fmt.Sprintf("seqmap: key %d not present in map", key))
	}
	return value
}
