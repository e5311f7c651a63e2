package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Source settings
type SourceConfig struct {
	BaseURL string `toml:"base_url"`
}

// Reader settings
type ReaderConfig struct {
	VerticalPadding   int `toml:"vertical_padding"`
	HorizontalPadding int `toml:"horizontal_padding"`
}

// Store settings
type StoreConfig struct {
	Backend string `toml:"backend"` // file | sqlite | memory
	Path    string `toml:"path"`
}

type CatalogConfig struct {
	File string `toml:"file"`
}

type UIConfig struct {
	Language string `toml:"language"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Root config
type Config struct {
	Source  SourceConfig  `toml:"source"`
	Reader  ReaderConfig  `toml:"reader"`
	Store   StoreConfig   `toml:"store"`
	Catalog CatalogConfig `toml:"catalog"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

const (
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
	StoreBackendMemory = "memory"
)

// ConfigDir is ~/.config/novel_shelf.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "novel_shelf"), nil
}

// DefaultConfigPath is where LoadConfig looks when no path is given.
func DefaultConfigPath() string {
	dir, err := ConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "config.toml")
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{BaseURL: "http://localhost:8000"},
		Reader: ReaderConfig{VerticalPadding: 1, HorizontalPadding: 2},
		Store:  StoreConfig{Backend: StoreBackendFile},
		UI:     UIConfig{Language: "en"},
		Log:    LogConfig{Level: "info"},
	}
}

// expandPath replaces leading "~" with user home dir
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LoadConfig reads config.toml over the defaults, then applies .env and environment overrides.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(expandPath(path))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	_ = godotenv.Load()
	applyEnv(&cfg)

	cfg.Store.Path = expandPath(cfg.Store.Path)
	cfg.Catalog.File = expandPath(cfg.Catalog.File)
	cfg.Log.File = expandPath(cfg.Log.File)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NOVEL_SHELF_BASE_URL"); v != "" {
		cfg.Source.BaseURL = v
	}
	if v := os.Getenv("NOVEL_SHELF_STORE"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("NOVEL_SHELF_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// SaveConfig writes cfg to path as TOML.
func SaveConfig(cfg Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	path = expandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
