// Package config loads packlist settings.
//
// Settings come from a single YAML file named by the --config flag or the
// PACKLIST_CONFIG environment variable. There is no discovery: without either
// the built-in defaults apply. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/packlist/internal/packing"
)

// EnvPath names the config file when --config is not given.
const EnvPath = "PACKLIST_CONFIG"

// Config is the full set of user settings.
type Config struct {
	// Theme is one of classic, neon or mono.
	Theme string `yaml:"theme"`

	// Locale is a BCP 47 tag used to order item names.
	Locale string `yaml:"locale"`

	// Color disables styling when set to false.
	Color *bool `yaml:"color,omitempty"`

	Sort SortConfig `yaml:"sort"`
	Log  LogConfig  `yaml:"log"`
}

// SortConfig is the initial sort of a new session.
type SortConfig struct {
	By   string `yaml:"by"`
	Mode string `yaml:"mode"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// File receives log output. Empty means stderr for the shell and
	// nowhere for the interactive UI.
	File string `yaml:"file"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Theme:  "classic",
		Locale: "en",
		Sort:   SortConfig{By: "input", Mode: "ascending"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path falls back to
// PACKLIST_CONFIG, and if that is unset too the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvPath))
	}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s does not exist", path)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "", "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	if _, err := c.LocaleTag(); err != nil {
		return err
	}
	if _, err := c.SortKey(); err != nil {
		return err
	}
	if _, err := c.SortMode(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// ColorEnabled reports whether styling is on; it defaults to true.
func (c Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

func (c Config) LocaleTag() (language.Tag, error) {
	if c.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

func (c Config) SortKey() (packing.SortKey, error)   { return packing.ParseSortKey(c.Sort.By) }
func (c Config) SortMode() (packing.SortMode, error) { return packing.ParseSortMode(c.Sort.Mode) }

func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	name := c.Log.Level
	if name == "" {
		name = "info"
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
