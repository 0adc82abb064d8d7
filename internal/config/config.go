package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const configFile = ".optsel/config.json"

// DefaultContainer is the CSS selector used to find widget host elements.
const DefaultContainer = "option-selector"

// Config holds CLI defaults. Flags override every field.
type Config struct {
	Container         string `json:"container,omitempty"`
	LogLevel          string `json:"log_level,omitempty"`
	DeferredMutations bool   `json:"deferred_mutations,omitempty"`
	EventLog          string `json:"event_log,omitempty"`
}

// Keys lists the settable config keys.
var Keys = []string{"container", "log_level", "deferred_mutations", "event_log"}

// ContainerSelector returns the configured selector or DefaultContainer.
func (c *Config) ContainerSelector() string {
	if strings.TrimSpace(c.Container) == "" {
		return DefaultContainer
	}
	return c.Container
}

// Level parses LogLevel, defaulting to warn.
func (c *Config) Level() slog.Level {
	level := slog.LevelWarn
	if c.LogLevel != "" {
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			return slog.LevelWarn
		}
	}
	return level
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Set updates a single key and saves the config
func Set(baseDir, key, value string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	switch key {
	case "container":
		cfg.Container = value
	case "log_level":
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err != nil {
			return fmt.Errorf("invalid log_level %q: %w", value, err)
		}
		cfg.LogLevel = strings.ToLower(value)
	case "deferred_mutations":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid deferred_mutations %q: %w", value, err)
		}
		cfg.DeferredMutations = b
	case "event_log":
		cfg.EventLog = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	return Save(baseDir, cfg)
}

// Get returns the string form of a single key
func Get(baseDir, key string) (string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}

	switch key {
	case "container":
		return cfg.ContainerSelector(), nil
	case "log_level":
		return strings.ToLower(cfg.Level().String()), nil
	case "deferred_mutations":
		return strconv.FormatBool(cfg.DeferredMutations), nil
	case "event_log":
		return cfg.EventLog, nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}
