package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dotcommander/ftype/internal/app"
)

// Config holds the complete application configuration.
type Config struct {
	Verbose      bool          `mapstructure:"verbose"`
	DryRun       bool          `mapstructure:"dry_run"`
	Debug        DebugConfig   `mapstructure:"debug"`
	History      HistoryConfig `mapstructure:"history"`
	Resolve      ResolveConfig `mapstructure:"resolve"`
	Associations []Association `mapstructure:"associations"`
}

// Association maps an extension to an open-command template. It is a list
// entry rather than a map key because viper splits keys on ".".
type Association struct {
	Extension string `mapstructure:"extension"`
	Command   string `mapstructure:"command"`
}

// DebugConfig holds development-time behavior.
type DebugConfig struct {
	// StrictPlaceholders turns an unsupported placeholder into a fatal diagnostic.
	StrictPlaceholders bool `mapstructure:"strict_placeholders"`
}

// HistoryConfig holds launch history settings.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ResolveConfig holds settings for multi-path resolution.
type ResolveConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// Load unmarshals viper config into struct
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals the given viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// SetDefaults sets default values
func SetDefaults() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("dry_run", false)
	v.SetDefault("debug.strict_placeholders", app.DebugBuild)

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(home, ".config", "ftype", "history.jsonl"))

	v.SetDefault("resolve.concurrency", 4)
}

// AssociationTable builds the configured association table.
func (c *Config) AssociationTable() *app.TableStore {
	entries := make(map[string]string, len(c.Associations))
	for _, a := range c.Associations {
		entries[a.Extension] = a.Command
	}
	return app.NewTableStore(entries)
}
