package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ccm2020/home-assistant/internal/mcplogdlog"
)

// New returns a text logger writing to w at the given level. In dev builds
// records are also mirrored to mcplogd.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}
	if dev := mcplogdlog.Handler(level); dev != nil {
		handlers = append(handlers, dev)
	}
	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}
	return slog.New(fanout(handlers))
}

// fanout sends every record to all of its handlers.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanout, 0, len(f))
	for _, h := range f {
		next = append(next, h.WithAttrs(attrs))
	}
	return next
}

func (f fanout) WithGroup(name string) slog.Handler {
	next := make(fanout, 0, len(f))
	for _, h := range f {
		next = append(next, h.WithGroup(name))
	}
	return next
}
