package seqmap

import (
	"github.com/iamNilotpal/seqmap/internal/builder"
	"github.com/iamNilotpal/seqmap/pkg/options"
)

// Builder accumulates key/value pairs and produces a finished buffer. A
// Builder must not be used from more than one goroutine at a time.
type Builder struct {
	inner *builder.Builder
}

// NewBuilder constructs a Builder whose trie tables each consume bits bits
// of key per level. bits must fall within [2, 16]; any other value returns
// a *errors.ConfigError (see github.com/iamNilotpal/seqmap/pkg/errors).
func NewBuilder(bits int, opts ...options.BuilderOption) (*Builder, error) {
	inner, err := builder.New(bits, opts...)
	if err != nil {
		return nil, err
	}
	return &Builder{inner: inner}, nil
}

// Insert adds a key/value pair to the buffer under construction. value must
// be valid UTF-8. Inserting the same key twice does not overwrite the first
// value; callers that need last-write-wins semantics must deduplicate their
// input before calling Insert.
func (b *Builder) Insert(key uint64, value string) error {
	return b.inner.Insert(key, value)
}

// InsertAll inserts every key/value pair in entries, continuing past any
// individual rejection and returning every error it encountered joined
// together rather than stopping at the first one.
func (b *Builder) InsertAll(entries map[uint64]string) error {
	return b.inner.InsertAll(entries)
}

// Build finalizes the buffer and returns it. The Builder must not be used
// again afterward. Building a Builder that received no Insert calls is
// legal and yields a valid, empty map.
func (b *Builder) Build() []byte {
	return b.inner.Build()
}
