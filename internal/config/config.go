package config

import (
	"fmt"
	"strings"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Config struct {
	BasePath   string  `toml:"base_path"`
	Artist     string  `toml:"artist"`
	Theme      string  `toml:"theme"`
	MaxVersion int     `toml:"max_version"`
	Lock       Lock    `toml:"lock"`
	Logging    Logging `toml:"logging"`
}

// Lock controls the advisory lock held around version resolution.
type Lock struct {
	Enabled        bool   `toml:"enabled"`
	Dir            string `toml:"dir"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

func DefaultConfig() Config {
	return Config{
		BasePath:   "",
		Artist:     "",
		Theme:      ThemeDark,
		MaxVersion: 0,
		Lock: Lock{
			Enabled:        true,
			TimeoutSeconds: 10,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

func (cfg *Config) normalize() {
	cfg.BasePath = strings.TrimSpace(cfg.BasePath)
	cfg.Artist = strings.TrimSpace(cfg.Artist)
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if cfg.Theme == "" {
		cfg.Theme = ThemeDark
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

func (cfg *Config) Validate() error {
	switch cfg.Theme {
	case ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("theme: unsupported value %q (want dark or light)", cfg.Theme)
	}
	if cfg.MaxVersion < 0 {
		return fmt.Errorf("max_version: must be zero (unbounded) or positive, got %d", cfg.MaxVersion)
	}
	if cfg.Lock.TimeoutSeconds < 0 {
		return fmt.Errorf("lock.timeout_seconds: must not be negative, got %d", cfg.Lock.TimeoutSeconds)
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", cfg.Logging.Format)
	}
	switch cfg.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", cfg.Logging.Level)
	}
	return nil
}

// ToggleTheme flips between dark and light.
func ToggleTheme(theme string) string {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
