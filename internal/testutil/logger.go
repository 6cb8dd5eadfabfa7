package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns an slog.Logger whose output goes nowhere, keeping
// test output free of log lines.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
