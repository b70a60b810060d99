// Package logging builds the zap loggers used by the command-line tools.
package logging

import "go.uber.org/zap"

// NewLogger returns a zap logger. When debug is true it uses the development
// config (human-readable, debug level); otherwise the production config
// (JSON, info level).
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Must returns l, or a no-op logger when err is non-nil.
func Must(l *zap.Logger, err error) *zap.Logger {
	if err != nil || l == nil {
		return zap.NewNop()
	}
	return l
}
