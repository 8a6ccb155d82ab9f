package pixelgraft

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so disabled
// calls cost no formatting.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var (
	discard = slog.New(discardHandler{})
	current atomic.Pointer[slog.Logger]
)

func init() { current.Store(discard) }

// SetLogger routes log output of pixelgraft and its sub-packages to l.
// Nothing is logged by default; nil restores that. Safe for concurrent use.
//
// Levels:
//   - [slog.LevelDebug]: pixel counts and timings of fill, mask, blur,
//     match and image I/O
//   - [slog.LevelWarn]: rejected input such as degenerate polygons or a
//     negative blur radius
//
// Example:
//
//	pixelgraft.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// Component returns the current logger tagged with component=name.
// Sub-packages call it per operation so a later SetLogger takes effect.
func Component(name string) *slog.Logger {
	l := current.Load()
	if l == discard {
		return l
	}
	return l.With("component", name)
}
