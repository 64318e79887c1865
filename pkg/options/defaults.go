package options

const (
	// DefaultBits is the fanout used when no WithBits option is supplied: an
	// 8-bit table indexes 256 cells per level, the same default the
	// reference implementation's own test suite builds against.
	DefaultBits = 8

	// MinBits is the smallest fanout a Builder will accept.
	MinBits = 2

	// MaxBits is the largest fanout a Builder will accept. The table header
	// records the fanout in a single byte; at 16 bits one table block already
	// holds 65,536 cells (just over 1 MiB).
	MaxBits = 16
)

// NewDefaultOptions returns the configuration a Builder starts from before
// any BuilderOption is applied.
func NewDefaultOptions() Options {
	return Options{Bits: DefaultBits}
}
