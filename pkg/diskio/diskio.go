// Package diskio persists a built buffer to, and loads it back from, a
// plain file. It is deliberately thin: the binary format itself has no
// notion of a file, so this is wiring a caller can choose to use or skip
// entirely in favor of pkg/mmap or its own storage.
package diskio

import (
	"os"

	"github.com/iamNilotpal/seqmap/pkg/errors"
)

// filePermissions matches the permission bits ignite used for its own
// append-only segment files: owner read/write, group and other read-only.
const filePermissions = 0644

// WriteFile writes buf to path, creating it if necessary and truncating it
// if it already exists.
func WriteFile(path string, buf []byte) error {
	if err := os.WriteFile(path, buf, filePermissions); err != nil {
		return errors.ClassifyFileOpenError(err, path)
	}
	return nil
}

// ReadFile reads the complete contents of path into memory. The returned
// bytes are a buffer suitable for passing to Map.New; ReadFile does no
// validation of its own.
func ReadFile(path string) ([]byte, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ClassifyReadError(err, path)
	}
	return contents, nil
}

// Exists reports whether a file exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.ClassifyReadError(err, path)
}
