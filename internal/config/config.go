// Package config loads and saves hallo's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/hallo/internal/model"
	"github.com/theirongolddev/hallo/internal/theme"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config holds all hallo configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Validation ValidationConfig `toml:"validation"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// DefaultsConfig seeds every new project.
type DefaultsConfig struct {
	ProjectName string `toml:"project_name" env:"HALLO_PROJECT_NAME"`
	ApproxValue uint32 `toml:"approx_value" env:"HALLO_APPROX_VALUE"`
	LeadWeeks   int    `toml:"lead_weeks"   env:"HALLO_LEAD_WEEKS"`
	LengthWeeks int    `toml:"length_weeks" env:"HALLO_LENGTH_WEEKS"`
}

// ValidationConfig controls whether date checks reject bad input.
type ValidationConfig struct {
	Strict bool `toml:"strict" env:"HALLO_STRICT"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"HALLO_THEME"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `toml:"level"  env:"HALLO_LOG_LEVEL"`
	Format string `toml:"format" env:"HALLO_LOG_FORMAT"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	d := model.StandardDefaults()
	return Config{
		Defaults: DefaultsConfig{
			ProjectName: d.Name,
			ApproxValue: d.Value,
			LeadWeeks:   int(d.Lead / model.Weeks(1)),
			LengthWeeks: int(d.Length / model.Weeks(1)),
		},
		Appearance: AppearanceConfig{
			Theme: theme.FlexokiDark.Name,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// ProjectDefaults converts the [defaults] table into builder defaults.
func (c Config) ProjectDefaults() model.Defaults {
	return model.Defaults{
		Name:   c.Defaults.ProjectName,
		Value:  c.Defaults.ApproxValue,
		Lead:   model.Weeks(c.Defaults.LeadWeeks),
		Length: model.Weeks(c.Defaults.LengthWeeks),
	}
}

// Validate checks values that cannot be represented sensibly.
func (c Config) Validate() error {
	var errs []error
	if c.Defaults.LeadWeeks < 0 {
		errs = append(errs, fmt.Errorf("defaults.lead_weeks must not be negative, got %d", c.Defaults.LeadWeeks))
	}
	if c.Defaults.LengthWeeks < 0 {
		errs = append(errs, fmt.Errorf("defaults.length_weeks must not be negative, got %d", c.Defaults.LengthWeeks))
	}
	if _, ok := theme.Lookup(c.Appearance.Theme); !ok {
		errs = append(errs, fmt.Errorf("appearance.theme %q is not one of %v", c.Appearance.Theme, theme.Names()))
	}
	return errors.Join(errs...)
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hallo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hallo")
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path, returning defaults if it doesn't exist.
// HALLO_* environment variables override values from the file.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the local user
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating its directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is chosen by the local user
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
