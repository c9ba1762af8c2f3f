package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/ccm2020/home-assistant/config"
	"github.com/ccm2020/home-assistant/internal/logging"
	"github.com/ccm2020/home-assistant/registry"
	"github.com/ccm2020/home-assistant/search"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvironmentOptions are the flags shared by every command that reads a snapshot.
type EnvironmentOptions struct {
	ConfigFile string
	Snapshot   string
	LogLevel   string

	// extra maps config keys to command-specific flags.
	extra map[string]string
}

// Environment is what a command needs to run searches.
type Environment struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *registry.Registry
	Engine   *search.Engine
}

// AddFlags registers the shared flags on cmd.
func (o *EnvironmentOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.ConfigFile, "config", "", "Config file (default: ./.hass-search.yaml)")
	cmd.Flags().StringVarP(&o.Snapshot, "snapshot", "s", "", "Configuration snapshot to search (default: snapshot.yaml)")
	cmd.Flags().StringVar(&o.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// BindFlag makes the command flag name override the config key.
func (o *EnvironmentOptions) BindFlag(key, name string) {
	if o.extra == nil {
		o.extra = make(map[string]string)
	}
	o.extra[key] = name
}

// LoadConfig resolves the configuration from the config file, environment and flags.
func (o *EnvironmentOptions) LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.New(o.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := bindFlag(v, cmd, "snapshot", "snapshot"); err != nil {
		return nil, err
	}
	if err := bindFlag(v, cmd, "log.level", "log-level"); err != nil {
		return nil, err
	}
	for key, name := range o.extra {
		if err := bindFlag(v, cmd, key, name); err != nil {
			return nil, err
		}
	}
	return config.Load(v)
}

// Load resolves the configuration, loads the snapshot and builds a search engine on it.
func (o *EnvironmentOptions) Load(cmd *cobra.Command) (*Environment, error) {
	cfg, err := o.LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	reg, engine, err := OpenSnapshot(cfg.Snapshot, logger)
	if err != nil {
		return nil, err
	}

	return &Environment{
		Config:   cfg,
		Logger:   logger,
		Registry: reg,
		Engine:   engine,
	}, nil
}

// OpenSnapshot loads the snapshot at path and returns an engine backed by it.
func OpenSnapshot(path string, logger *slog.Logger) (*registry.Registry, *search.Engine, error) {
	reg, err := registry.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	stats := reg.Stats()
	logger.Debug("snapshot loaded",
		"path", path,
		"areas", stats.Areas,
		"config_entries", stats.ConfigEntries,
		"devices", stats.Devices,
		"entities", stats.Entities,
		"scenes", stats.Scenes,
		"groups", stats.Groups,
		"automations", stats.Automations,
		"scripts", stats.Scripts,
	)

	engine := search.NewEngine(search.SourcesFrom(reg), search.WithLogger(logger))
	return reg, engine, nil
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key, name string) error {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return nil
	}
	if err := v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind --%s: %w", name, err)
	}
	return nil
}
