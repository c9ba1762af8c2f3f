//go:build !dev

package mcplogdlog

import "log/slog"

// Handler returns nil outside dev builds: there is no mcplogd sink to mirror to.
func Handler(slog.Leveler) slog.Handler {
	return nil
}
