package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".pzconfig.yaml"

	// Default configuration values
	DefaultPrizeFile = "prizes.txt"
	DefaultDrawCount = 1
	DefaultLogLevel  = "warn"
	DefaultColor     = ColorAuto
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user configuration from .pzconfig.yaml.
// This file is user-managed and never written by pz.
type Config struct {
	// PrizeFile is the prize file name, relative to the storage root unless absolute.
	PrizeFile string `yaml:"prize_file"`

	// DrawCount is the default number of draws for `pz draw`.
	DrawCount int `yaml:"draw_count"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Color is one of auto, always, never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		PrizeFile: DefaultPrizeFile,
		DrawCount: DefaultDrawCount,
		LogLevel:  DefaultLogLevel,
		Color:     DefaultColor,
	}
}

// LoadConfig loads .pzconfig.yaml if it exists, otherwise returns defaults.
// Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	configPath := s.ConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.PrizeFile == "" {
		c.PrizeFile = DefaultPrizeFile
	}
	if c.DrawCount < 1 {
		return fmt.Errorf("draw_count must be at least 1, got %d", c.DrawCount)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color %q", c.Color)
	}
	return nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
