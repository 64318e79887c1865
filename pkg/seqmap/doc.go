// Package seqmap provides a write-once, read-many associative container
// mapping uint64 keys to UTF-8 string values, laid out as a single
// contiguous byte buffer that requires no decoding or pointer fixup after
// construction. The buffer can be written to a file, memory-mapped, or
// embedded directly in a binary; lookups operate on it as-is.
//
// A Builder accumulates key/value pairs and produces the buffer:
//
//	b, err := seqmap.NewBuilder(8)
//	if err != nil {
//	    // bits outside [2, 16]
//	}
//	b.Insert(42, "Hello!")
//	b.Insert(84, "World!")
//	buf := b.Build()
//
// A Map wraps a finished buffer for reads:
//
//	m, err := seqmap.NewMap(buf)
//	if err != nil {
//	    // buf too short to be a buffer at all
//	}
//	value, ok := m.Get(42)
//
// Persisting and reloading a buffer is ordinary file I/O or a memory map;
// see pkg/diskio and pkg/mmap.
package seqmap
