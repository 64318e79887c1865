// Package mmap maps a built buffer's backing file directly into the
// process's address space, letting a Map be opened against a multi-gigabyte
// buffer without reading it into the heap first.
package mmap

import (
	"os"

	"github.com/iamNilotpal/seqmap/pkg/errors"
	"golang.org/x/sys/unix"
)

// Region is a read-only memory-mapped view of a file's contents. The bytes
// it exposes are a valid buffer for Map.New for as long as the Region
// remains open.
type Region struct {
	data []byte
}

// Open maps the file at path into memory read-only. The caller must Close
// the returned Region once it is no longer in use.
func Open(path string) (*Region, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.ClassifyReadError(err, path)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, errors.ClassifyReadError(err, path)
	}

	size := info.Size()
	if size == 0 {
		return &Region{data: nil}, nil
	}

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.ClassifyReadError(err, path)
	}

	return &Region{data: data}, nil
}

// Bytes returns the mapped contents. The returned slice is only valid until
// Close is called.
func (r *Region) Bytes() []byte {
	return r.data
}

// Close unmaps the region. It is a no-op on a Region created from an empty
// file, and safe to call more than once.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	return unix.Munmap(data)
}
