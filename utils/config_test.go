package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("NOVEL_SHELF_BASE_URL", "")
	t.Setenv("NOVEL_SHELF_STORE", "")
	t.Setenv("NOVEL_SHELF_LOG_LEVEL", "")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[source]
base_url = "http://example.test:9000"

[reader]
horizontal_padding = 4

[store]
backend = "sqlite"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NOVEL_SHELF_BASE_URL", "")
	t.Setenv("NOVEL_SHELF_STORE", "memory")
	t.Setenv("NOVEL_SHELF_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source.BaseURL != "http://example.test:9000" {
		t.Errorf("base url = %q", cfg.Source.BaseURL)
	}
	if cfg.Reader.HorizontalPadding != 4 || cfg.Reader.VerticalPadding != 1 {
		t.Errorf("reader = %+v", cfg.Reader)
	}
	if cfg.Store.Backend != StoreBackendMemory {
		t.Errorf("env override lost: backend = %q", cfg.Store.Backend)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[source\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("broken toml accepted")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv("NOVEL_SHELF_BASE_URL", "")
	t.Setenv("NOVEL_SHELF_STORE", "")
	t.Setenv("NOVEL_SHELF_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := DefaultConfig()
	cfg.UI.Language = "id"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.UI.Language != "id" {
		t.Fatalf("language = %q", got.UI.Language)
	}
}
