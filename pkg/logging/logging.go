// Package logging provides the single structured logger shared by
// pkg/scene, pkg/eval and pkg/engine. Logging is silent by default;
// callers that want output call SetLogger once at startup.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used across the module. Pass nil to
// restore the default silent behaviour.
//
// Log levels used:
//   - [slog.LevelDebug]: cache hits/misses, import resolution
//   - [slog.LevelInfo]: not currently used
//   - [slog.LevelWarn]: cancellation, evaluation timeouts
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
