package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. HASS_SEARCH_SNAPSHOT.
const EnvPrefix = "HASS_SEARCH"

// Config holds all configuration for the CLI.
type Config struct {
	// Snapshot is the configuration snapshot the registries are loaded from.
	Snapshot string `mapstructure:"snapshot"`

	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Watch  WatchConfig  `mapstructure:"watch"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig holds configuration for the HTTP search endpoint.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// WatchConfig holds configuration for the live viewer.
type WatchConfig struct {
	Port     int           `mapstructure:"port"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// New returns a viper instance with defaults and environment binding applied.
// If configFile is set it is read; a missing default config file is not an error.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".hass-search")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("snapshot", "snapshot.yaml")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":8123")
	v.SetDefault("watch.port", 4900)
	v.SetDefault("watch.debounce", 300*time.Millisecond)
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be caught while decoding.
func (c *Config) Validate() error {
	if c.Snapshot == "" {
		return errors.New("snapshot path is required")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Watch.Port < 0 || c.Watch.Port > 65535 {
		return fmt.Errorf("invalid watch port %d", c.Watch.Port)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("invalid watch debounce %s", c.Watch.Debounce)
	}
	return nil
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (valid options: debug, info, warn, error)", name)
	}
	return level, nil
}
