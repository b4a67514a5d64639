// Package config loads fscreator project configuration.
//
// Configuration lives in an optional fscreator.yaml in the working
// directory and can be overridden with environment variables, including
// ones supplied through a .env file:
//   - FSCREATOR_DESTINATION: override the destination directory
//   - FSCREATOR_MANIFEST: override the manifest path
//   - FSCREATOR_LOG_LEVEL: override the log level
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the name of the project config file.
const ConfigFileName = "fscreator.yaml"

// Config holds project-level defaults for the CLI.
type Config struct {
	// Destination is the default destination directory.
	Destination string `yaml:"destination,omitempty"`

	// Manifest is the default manifest path.
	Manifest string `yaml:"manifest,omitempty"`

	// LogLevel is the default log level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level,omitempty"`
}

// Load reads fscreator.yaml from dir and applies environment overrides.
// A missing .env file is not an error; a missing config file is
// reported as ErrConfigNotFound after overrides were applied to the
// zero Config.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, ErrConfigNotFound
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FSCREATOR_DESTINATION"); v != "" {
		c.Destination = v
	}
	if v := os.Getenv("FSCREATOR_MANIFEST"); v != "" {
		c.Manifest = v
	}
	if v := os.Getenv("FSCREATOR_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
