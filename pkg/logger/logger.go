// Package logger builds the single structured logger shared across a
// Builder/Map's lifetime. Every other package accepts a *zap.SugaredLogger
// rather than constructing its own, so tests and embedding applications can
// supply whatever sink they want via options.WithLogger.
package logger

import (
	"go.uber.org/zap"
)

// New returns a production-configured, sampled zap logger scoped to service,
// sugared for the key/value call style used throughout this module.
func New(service string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"service": service}

	log, err := cfg.Build()
	if err != nil {
		// zap.NewProductionConfig().Build() only fails on a malformed config,
		// which a literal, static config here can never produce.
		panic(err)
	}

	return log.Sugar()
}

// Noop returns a logger that discards everything it is given. Useful as a
// default for tests and for callers that pass no options.WithLogger.
func Noop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
