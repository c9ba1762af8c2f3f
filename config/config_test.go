package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Snapshot: "snapshot.yaml",
		Log:      LogConfig{Level: "info"},
		Server:   ServerConfig{Addr: ":8123"},
		Watch:    WatchConfig{Port: 4900, Debounce: 300 * time.Millisecond},
	}, cfg)
}

func TestLoad_ConfigFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
snapshot: /etc/hass/snapshot.yaml
log:
  level: debug
watch:
  debounce: 1s
`), 0o644))

	t.Setenv("HASS_SEARCH_SERVER_ADDR", "127.0.0.1:9000")

	v, err := New(path)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/etc/hass/snapshot.yaml", cfg.Snapshot)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, time.Second, cfg.Watch.Debounce)
	assert.Equal(t, 4900, cfg.Watch.Port)
}

func TestNew_MissingExplicitConfigFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Snapshot: "s.yaml", Log: LogConfig{Level: "warn"}, Watch: WatchConfig{Port: 4900}}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing snapshot", mutate: func(c *Config) { c.Snapshot = "" }, wantErr: "snapshot path is required"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "invalid log level"},
		{name: "bad port", mutate: func(c *Config) { c.Watch.Port = 70000 }, wantErr: "invalid watch port"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)
}
