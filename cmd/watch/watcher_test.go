package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRelevantChange(t *testing.T) {
	path := filepath.Join("/etc", "hass", "snapshot.yaml")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "write", event: fsnotify.Event{Name: path, Op: fsnotify.Write}, want: true},
		{name: "replaced by rename", event: fsnotify.Event{Name: path, Op: fsnotify.Create}, want: true},
		{name: "removed", event: fsnotify.Event{Name: path, Op: fsnotify.Remove}, want: true},
		{name: "chmod only", event: fsnotify.Event{Name: path, Op: fsnotify.Chmod}, want: false},
		{name: "sibling file", event: fsnotify.Event{Name: filepath.Join("/etc", "hass", "other.yaml"), Op: fsnotify.Write}, want: false},
		{name: "unclean path", event: fsnotify.Event{Name: "/etc/hass/./snapshot.yaml", Op: fsnotify.Write}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRelevantChange(tc.event, path))
		})
	}
}

func TestWatchAndRebuild_DebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("areas: []\n"), 0o644))

	rebuilt := make(chan struct{}, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchAndRebuild(ctx, path, 50*time.Millisecond, func() { rebuilt <- struct{}{} }, slog.New(slog.DiscardHandler))
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("areas: []\n"), 0o644))
	}

	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for rebuild")
	}

	select {
	case <-rebuilt:
		t.Fatal("burst of writes rebuilt more than once")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchAndRebuild_MissingDirectory(t *testing.T) {
	err := watchAndRebuild(context.Background(), filepath.Join(t.TempDir(), "gone", "snapshot.yaml"), time.Millisecond, func() {}, slog.New(slog.DiscardHandler))
	require.Error(t, err)
}
