// Package cli implements the platemap command-line interface.
//
// The commands are thin wrappers around the plate libraries: they read files
// and flags, call into pkg/plate, pkg/annotation, pkg/csvplate, pkg/xlsxplate
// and pkg/io, and print the results.
//
// # Commands
//
//   - info: plate geometry, row labels and edge wells
//   - label, index: convert between well indices and labels
//   - wells: well sets for rows, columns, the edge, or a range label
//   - parse: read a plate CSV or workbook into an annotation document
//   - export: write a document as a plate CSV, a per-well list, or a workbook
//   - randomize: shuffle annotated wells around the plate
//   - show: draw a plate in the terminal
//   - annotate: add a labeled group of wells to a document
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces the cells and rows skipped while parsing. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Parsed 2 annotations (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
