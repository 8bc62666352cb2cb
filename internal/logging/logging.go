// Package logging builds the zerolog logger used for zetta's debug trace.
//
// User-facing output never goes through the logger; it is reserved for
// tracing git invocations, editor launches and store mutations when
// --debug or ZETTA_DEBUG is set.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/gorewood/zetta/internal/output"
)

// New returns a console logger writing to w when debug is true, and a
// disabled logger otherwise.
func New(w io.Writer, debug bool) zerolog.Logger {
	if !debug || w == nil {
		return zerolog.Nop()
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    !output.IsTTY(w),
	}
	return zerolog.New(console).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}

// NewJSON returns a structured JSON logger at debug level, for --json runs
// where the trace must stay machine-readable.
func NewJSON(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.SyncWriter(w)).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
