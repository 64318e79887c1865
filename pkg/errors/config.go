package errors

// ConfigError is returned for caller-supplied values that violate a hard
// constraint of the binary format before any buffer is touched: a bits
// fanout outside [2, 16], a non-UTF-8 value passed to Insert, or a buffer
// handed to Map.New that is too short to hold even a root header.
//
// It plays the role ignite's ValidationError played for request-shaped
// input validation, narrowed to the handful of constraints this format
// actually has.
type ConfigError struct {
	*baseError

	// field identifies which parameter or argument failed validation.
	field string

	// provided captures what was actually supplied.
	provided any
}

// NewConfigError creates a new config-specific error with the given cause,
// code and message.
func NewConfigError(err error, code ErrorCode, msg string) *ConfigError {
	return &ConfigError{baseError: NewBaseError(err, code, msg)}
}

// WithField records which parameter failed validation.
func (ce *ConfigError) WithField(field string) *ConfigError {
	ce.field = field
	return ce
}

// WithProvided records the value that was supplied and rejected.
func (ce *ConfigError) WithProvided(value any) *ConfigError {
	ce.provided = value
	return ce
}

// WithDetail adds contextual information while preserving the ConfigError type.
func (ce *ConfigError) WithDetail(key string, value any) *ConfigError {
	ce.baseError.WithDetail(key, value)
	return ce
}

// Field returns the parameter name that failed validation.
func (ce *ConfigError) Field() string {
	return ce.field
}

// Provided returns the value that was supplied and rejected.
func (ce *ConfigError) Provided() any {
	return ce.provided
}

// NewBitsOutOfRangeError builds the ConfigError returned when a Builder is
// constructed with a fanout outside [2, 16].
func NewBitsOutOfRangeError(bits int) *ConfigError {
	return NewConfigError(nil, ErrorCodeBitsOutOfRange, "bits must be in range [2, 16]").
		WithField("bits").
		WithProvided(bits).
		WithDetail("min", 2).
		WithDetail("max", 16)
}

// NewInvalidUTF8Error builds the ConfigError returned when Insert is called
// with a value that is not valid UTF-8.
func NewInvalidUTF8Error(key uint64) *ConfigError {
	return NewConfigError(nil, ErrorCodeInvalidUTF8, "value is not valid UTF-8").
		WithField("value").
		WithDetail("key", key)
}

// NewBufferTooShortError builds the ConfigError returned when Map.New is
// given a buffer too small to hold a root header.
func NewBufferTooShortError(length int) *ConfigError {
	return NewConfigError(nil, ErrorCodeBufferTooShort, "buffer is too short to contain a root header").
		WithField("buffer").
		WithProvided(length).
		WithDetail("required", 24)
}
