// Package options provides functional-options configuration for a Builder:
// the table fanout it builds with, and the logger it reports lifecycle
// events to.
package options

import (
	"go.uber.org/zap"
)

// Options holds the configuration a Builder is constructed with.
type Options struct {
	// Bits is the number of key bits each table level consumes, fixed for
	// the lifetime of a single build. Must fall within [MinBits, MaxBits].
	Bits int `json:"bits"`

	// Logger receives structured lifecycle events (table splits, final
	// buffer size) during a build. Defaults to a no-op logger when unset.
	Logger *zap.SugaredLogger `json:"-"`
}

// BuilderOption is a function that modifies a Builder's configuration.
type BuilderOption func(*Options)

// WithBits overrides the number of key bits each table level consumes. Bits
// outside [MinBits, MaxBits] are left for the Builder constructor to reject
// with a *errors.ConfigError rather than silently clamped here.
func WithBits(bits int) BuilderOption {
	return func(o *Options) {
		o.Bits = bits
	}
}

// WithLogger attaches a structured logger to a Builder. Passing nil leaves
// the previously configured logger, including the zero-value default,
// unchanged.
func WithLogger(logger *zap.SugaredLogger) BuilderOption {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
