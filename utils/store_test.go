package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	if _, ok, err := s.Get("missing"); ok || err != nil {
		t.Fatalf("Get(missing) = %v, %v", ok, err)
	}
	if err := s.Set("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatal(err)
	}
	if v, ok, err := s.Get("k"); !ok || err != nil || v != "v2" {
		t.Fatalf("Get(k) = %q, %v, %v", v, ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	exerciseStore(t, NewFileStore(path))

	// a second store over the same file sees the data
	v, ok, err := NewFileStore(path).Get("k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("reopened Get = %q, %v, %v", v, ok, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	if _, _, err := s.Get("theme"); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}

	p := NewPreferences(s, WithPrefsLogger(quietLogger))
	if p.Theme() != ThemeLight {
		t.Fatal("corrupt store did not fall back")
	}
	if err := p.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme over corrupt file: %v", err)
	}
	if p.Theme() != ThemeDark {
		t.Fatal("theme not stored after replacing corrupt file")
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	exerciseStore(t, s)
}

func TestSQLiteStoreOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPreferences(s, WithPrefsLogger(quietLogger))
	if err := p.SetProgress("n1", 4, "Four"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = OpenSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, ok := NewPreferences(s, WithPrefsLogger(quietLogger)).Progress("n1")
	if !ok || got.ChapterIndex != 4 {
		t.Fatalf("progress after reopen = %+v, %v", got, ok)
	}
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		cfg  StoreConfig
		want string
	}{
		{StoreConfig{Backend: StoreBackendMemory}, "*utils.MemoryStore"},
		{StoreConfig{Backend: StoreBackendFile, Path: filepath.Join(dir, "p.json")}, "*utils.FileStore"},
		{StoreConfig{Backend: StoreBackendSQLite, Path: filepath.Join(dir, "p.db")}, "*utils.SQLiteStore"},
	}
	for _, tc := range cases {
		s, closeFn, err := OpenStore(tc.cfg)
		if err != nil {
			t.Fatalf("%s: %v", tc.cfg.Backend, err)
		}
		if got := typeName(s); got != tc.want {
			t.Errorf("%s: store = %s, want %s", tc.cfg.Backend, got, tc.want)
		}
		if err := closeFn(); err != nil {
			t.Errorf("%s: close: %v", tc.cfg.Backend, err)
		}
	}
	if _, _, err := OpenStore(StoreConfig{Backend: "redis", Path: "x"}); err == nil {
		t.Fatal("unknown backend accepted")
	}
}

func typeName(s Store) string {
	switch s.(type) {
	case *MemoryStore:
		return "*utils.MemoryStore"
	case *FileStore:
		return "*utils.FileStore"
	case *SQLiteStore:
		return "*utils.SQLiteStore"
	}
	return "unknown"
}
