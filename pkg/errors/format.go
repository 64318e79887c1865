package errors

// FormatError signals that a buffer, once past construction-time
// validation, was found to be structurally inconsistent with this package's
// binary format while being walked: an offset pointing outside the buffer,
// or a cell tag that is none of EMPTY, STRING_PTR or TABLE_PTR.
//
// This plays the role ignite's StorageError/IndexError played for
// pinpointing exactly where a failure occurred (offset, segment id): here
// the location is a byte offset into the single buffer instead of a
// segment file and a byte offset within it.
//
// A FormatError is always fatal: it means the buffer is not a product of
// this package's Builder, or was corrupted after being built. Per the
// binary format's contract, code that discovers one panics with it rather
// than threading it through every cell dereference on the lookup hot path;
// internal/lookup and internal/builder raise that panic, and a caller can
// catch it with recover.
type FormatError struct {
	*baseError

	// offset is the byte position within the buffer where the
	// inconsistency was found.
	offset uint64

	// tag is the raw, offending cell tag byte, when applicable.
	tag uint8
}

// NewFormatError creates a new format-specific error with the given cause,
// code and message.
func NewFormatError(err error, code ErrorCode, msg string) *FormatError {
	return &FormatError{baseError: NewBaseError(err, code, msg)}
}

// WithOffset records the byte offset at which the inconsistency was found.
func (fe *FormatError) WithOffset(offset uint64) *FormatError {
	fe.offset = offset
	return fe
}

// WithTag records the offending raw cell tag byte.
func (fe *FormatError) WithTag(tag uint8) *FormatError {
	fe.tag = tag
	return fe
}

// WithDetail adds contextual information while preserving the FormatError type.
func (fe *FormatError) WithDetail(key string, value any) *FormatError {
	fe.baseError.WithDetail(key, value)
	return fe
}

// Offset returns the byte offset at which the inconsistency was found.
func (fe *FormatError) Offset() uint64 {
	return fe.offset
}

// CellTag returns the offending raw cell tag byte.
func (fe *FormatError) CellTag() uint8 {
	return fe.tag
}

// NewBadRootTagError builds the FormatError raised when a buffer's root
// header does not carry the ROOT type tag.
func NewBadRootTagError(gotTag uint32) *FormatError {
	return NewFormatError(nil, ErrorCodeBadRootTag, "buffer does not begin with a root header").
		WithDetail("gotTag", gotTag)
}

// NewUnknownCellTagError builds the FormatError raised when a cell is
// decoded with a tag outside {EMPTY, STRING_PTR, TABLE_PTR}.
func NewUnknownCellTagError(offset uint64, tag uint8) *FormatError {
	return NewFormatError(nil, ErrorCodeUnknownCellTag, "cell has an unknown tag").
		WithOffset(offset).
		WithTag(tag)
}

// NewOffsetOutOfRangeError builds the FormatError raised when a decoded
// table or string offset falls outside the buffer that contains it.
func NewOffsetOutOfRangeError(offset uint64, bufferLen int) *FormatError {
	return NewFormatError(nil, ErrorCodeOffsetOutOfRange, "decoded offset falls outside the buffer").
		WithOffset(offset).
		WithDetail("bufferLen", bufferLen)
}
