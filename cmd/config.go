package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/seaward/marina"
)

// Config holds the few knobs of the application. Values are layered:
// defaults, then the TOML config file, then environment variables, then
// flags (handled per command).
type Config struct {
	File     string `toml:"file"`     // default fleet data file
	Currency string `toml:"currency"` // display currency code
	Style    string `toml:"style"`    // glamour style: auto, dark, light, notty
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{Currency: "USD", Style: "auto"}
}

// DefaultConfigPath returns the default configuration file path,
// ~/.config/bms/config.toml, or "" if the home directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".config", "bms", "config.toml")
	}
	return ""
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (Config, error) {
	var fc Config
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyEnv overrides cfg fields from BMS_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("BMS_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("BMS_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("BMS_STYLE"); v != "" {
		cfg.Style = v
	}
}

var appConfig *Config

// App returns the application configuration, loading it on first use.
func App() Config {
	if appConfig == nil {
		cfg := loadConfig()
		appConfig = &cfg
	}
	return *appConfig
}

func loadConfig() Config {
	// A .env file in the working directory is honored, so the BMS_* variables
	// can live next to the data.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path := os.Getenv("BMS_CONFIG")
	if path == "" {
		path = DefaultConfigPath()
	}
	if path != "" {
		fc, err := LoadFileConfig(path)
		switch {
		case err == nil:
			if fc.File != "" {
				cfg.File = fc.File
			}
			if fc.Currency != "" {
				cfg.Currency = fc.Currency
			}
			if fc.Style != "" {
				cfg.Style = fc.Style
			}
		case !errors.Is(err, fs.ErrNotExist):
			logger.Warn().Err(err).Str("file", path).Msg("could not read config file")
		}
	}

	ApplyEnv(&cfg)
	marina.DefaultCurrency = cfg.Currency
	return cfg
}
