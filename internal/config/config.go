package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is fuelcalc's runtime configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	Display DisplayConfig `toml:"display"`
	Export  ExportConfig  `toml:"export"`
}

// StorageConfig selects where inputs and the theme are persisted.
type StorageConfig struct {
	Backend string `toml:"backend" validate:"oneof=file sqlite memory"`
	// Path is empty for the backend's default location.
	Path string `toml:"path"`
}

// LogConfig controls the application log.
type LogConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	File  string `toml:"file" validate:"required"`
}

// DisplayConfig controls appearance and number formatting.
type DisplayConfig struct {
	Appearance     string `toml:"appearance" validate:"oneof=auto light dark"`
	Locale         string `toml:"locale" validate:"required"`
	CurrencySymbol string `toml:"currency_symbol" validate:"required"`
}

// ExportConfig controls report export.
type ExportConfig struct {
	Dir    string `toml:"dir" validate:"required"`
	Format string `toml:"format" validate:"oneof=txt yaml json"`
}

const (
	defaultConfigPath = "~/.config/fuelcalc/config.toml"
	defaultLogFile    = "~/.local/state/fuelcalc/fuelcalc.log"
	defaultExportDir  = "."
)

// Environment variables that override file values.
const (
	EnvStorageBackend = "FUELCALC_STORAGE_BACKEND"
	EnvStoragePath    = "FUELCALC_STORAGE_PATH"
	EnvLogLevel       = "FUELCALC_LOG_LEVEL"
	EnvLogFile        = "FUELCALC_LOG_FILE"
	EnvAppearance     = "FUELCALC_APPEARANCE"
	EnvLocale         = "FUELCALC_LOCALE"
	EnvExportDir      = "FUELCALC_EXPORT_DIR"
	EnvExportFormat   = "FUELCALC_EXPORT_FORMAT"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Storage: StorageConfig{Backend: "file"},
		Log:     LogConfig{Level: "info", File: defaultLogFile},
		Display: DisplayConfig{Appearance: "auto", Locale: "en-IN", CurrencySymbol: "₹"},
		Export:  ExportConfig{Dir: defaultExportDir, Format: "txt"},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Load reads the config at path (or the default location), applies
// environment overrides and validates the result. A missing file is not
// an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()

		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	applyEnv(&cfg)
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		key string
		dst *string
	}{
		{EnvStorageBackend, &cfg.Storage.Backend},
		{EnvStoragePath, &cfg.Storage.Path},
		{EnvLogLevel, &cfg.Log.Level},
		{EnvLogFile, &cfg.Log.File},
		{EnvAppearance, &cfg.Display.Appearance},
		{EnvLocale, &cfg.Display.Locale},
		{EnvExportDir, &cfg.Export.Dir},
		{EnvExportFormat, &cfg.Export.Format},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok && strings.TrimSpace(v) != "" {
			*o.dst = v
		}
	}
}

// normalize trims values, fills blanks with defaults and expands paths.
func (c *Config) normalize() {
	def := Default()

	c.Storage.Backend = lowerOr(c.Storage.Backend, def.Storage.Backend)
	c.Storage.Path = strings.TrimSpace(c.Storage.Path)
	if c.Storage.Path != "" {
		c.Storage.Path = mustExpand(c.Storage.Path)
	}

	c.Log.Level = lowerOr(c.Log.Level, def.Log.Level)
	c.Log.File = mustExpand(trimOr(c.Log.File, def.Log.File))

	c.Display.Appearance = lowerOr(c.Display.Appearance, def.Display.Appearance)
	c.Display.Locale = trimOr(c.Display.Locale, def.Display.Locale)
	c.Display.CurrencySymbol = trimOr(c.Display.CurrencySymbol, def.Display.CurrencySymbol)

	c.Export.Dir = mustExpand(trimOr(c.Export.Dir, def.Export.Dir))
	c.Export.Format = lowerOr(c.Export.Format, def.Export.Format)
	if c.Export.Format == "yml" {
		c.Export.Format = "yaml"
	}
}

func trimOr(v, fallback string) string {
	if t := strings.TrimSpace(v); t != "" {
		return t
	}
	return fallback
}

func lowerOr(v, fallback string) string {
	return strings.ToLower(trimOr(v, fallback))
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
