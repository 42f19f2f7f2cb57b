package logger

import "io"

// NewNop returns a Logger that discards everything, handy in tests
func NewNop() Logger {
	return newWithWriter(io.Discard, "error", "json")
}
