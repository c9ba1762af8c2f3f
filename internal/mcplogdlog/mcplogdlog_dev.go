//go:build dev

package mcplogdlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"
)

const defaultSocket = "/tmp/mcplogd.sock"
const appName = "hass-search"

type entry struct {
	App       string         `json:"app"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Handler returns a slog handler that mirrors records to the local mcplogd socket.
func Handler(level slog.Leveler) slog.Handler {
	return &socketHandler{socket: defaultSocket, level: level}
}

type socketHandler struct {
	socket string
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
}

func (h *socketHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *socketHandler) Handle(_ context.Context, r slog.Record) error {
	metadata := h.metadata(r)

	conn, err := net.Dial("unix", h.socket)
	if err != nil {
		// mcplogd is optional; records are dropped when it is not running.
		return nil
	}
	defer conn.Close()

	e := entry{
		App:       appName,
		Level:     strings.ToLower(r.Level.String()),
		Message:   r.Message,
		Timestamp: r.Time.UTC().Format(time.RFC3339Nano),
		Metadata:  metadata,
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(conn, "%s\n", data)
	return err
}

// metadata flattens handler and record attrs. Handler attrs were qualified
// when they were added; record attrs take the current group.
func (h *socketHandler) metadata(r slog.Record) map[string]any {
	metadata := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		metadata[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		metadata[h.key(a.Key)] = a.Value.Any()
		return true
	})
	return metadata
}

func (h *socketHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: h.key(a.Key), Value: a.Value})
	}
	return &next
}

func (h *socketHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = h.key(name)
	return &next
}

func (h *socketHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}
