// Package cliutil provides the small pieces of CLI plumbing shared by cmd/astarpa: a
// context-carried logger and a progress helper for reporting how long the search took.
package cliutil

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w at the given level, with timestamps enabled.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine only.
type Progress struct {
	logger *log.Logger
	start  time.Time
}

// NewProgress starts a progress tracker that captures the current time.
func NewProgress(l *log.Logger) *Progress {
	return &Progress{logger: l, start: time.Now()}
}

// Done logs msg along with the elapsed time since the tracker was created.
func (p *Progress) Done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFromContext retrieves the logger attached to ctx, or log.Default() if none was attached.
func LoggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
