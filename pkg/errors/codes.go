package errors

// ErrorCode represents a standardized way to categorize different types of errors.
type ErrorCode string

// Base error codes represent the fundamental categories of failures that can
// occur across any software system.
const (
	// ErrorCodeIO represents failures in input/output operations, e.g. when
	// loading or persisting a built buffer via pkg/diskio or pkg/mmap.
	ErrorCodeIO ErrorCode = "IO_ERROR"

	// ErrorCodeInvalidInput represents caller-side errors where supplied data
	// doesn't meet the format's requirements or constraints.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeInternal represents unexpected failures that don't fit into
	// other categories.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Config-specific error codes cover caller-supplied values that violate a
// hard constraint of the binary format before any buffer is touched.
const (
	// ErrorCodeBitsOutOfRange indicates a fanout parameter outside [2, 16].
	ErrorCodeBitsOutOfRange ErrorCode = "BITS_OUT_OF_RANGE"

	// ErrorCodeInvalidUTF8 indicates a value passed to Insert is not valid
	// UTF-8 and therefore cannot be stored in the NUL-terminated string pool.
	ErrorCodeInvalidUTF8 ErrorCode = "INVALID_UTF8"

	// ErrorCodeBufferTooShort indicates a buffer passed to Map.New is
	// smaller than a root header, so it cannot possibly be a valid buffer.
	ErrorCodeBufferTooShort ErrorCode = "BUFFER_TOO_SHORT"
)

// Format-specific error codes cover structural faults discovered while
// walking an already-constructed buffer: the buffer is not a valid product
// of this package's Builder.
const (
	// ErrorCodeBadRootTag indicates the root header's type tag is not
	// format.TypeRoot.
	ErrorCodeBadRootTag ErrorCode = "BAD_ROOT_TAG"

	// ErrorCodeUnknownCellTag indicates a cell was read with a tag outside
	// {EMPTY, STRING_PTR, TABLE_PTR}.
	ErrorCodeUnknownCellTag ErrorCode = "UNKNOWN_CELL_TAG"

	// ErrorCodeOffsetOutOfRange indicates a table or string-pool offset
	// decoded from a cell points outside the buffer that contains it.
	ErrorCodeOffsetOutOfRange ErrorCode = "OFFSET_OUT_OF_RANGE"
)
