package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3", c.Len())
	}
	for _, id := range []string{"genius_grandson", "lazy_sovereign", "nano_machine"} {
		n, ok := c.FindByID(id)
		if !ok {
			t.Fatalf("%s missing", id)
		}
		if n.DataPath != IndexPath(id) {
			t.Errorf("%s data path = %q", id, n.DataPath)
		}
		if n.Title == "" || n.CoverColor == "" {
			t.Errorf("%s incomplete: %+v", id, n)
		}
	}
	if _, ok := c.FindByID("doesnotexist"); ok {
		t.Fatal("found unknown id")
	}
	if _, err := c.Lookup("doesnotexist"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Lookup(doesnotexist) err = %v, want ErrNotFound", err)
	}
	if n, err := c.Lookup("nano_machine"); err != nil || n.ID != "nano_machine" {
		t.Fatalf("Lookup(nano_machine) = %+v, %v", n, err)
	}
}

func TestCatalogAllIsCopy(t *testing.T) {
	c, err := NewCatalog(NovelDescriptor{ID: "a", Title: "A"}, NovelDescriptor{ID: "b", Title: "B"})
	if err != nil {
		t.Fatal(err)
	}
	all := c.All()
	all[0].Title = "changed"
	if n, _ := c.FindByID("a"); n.Title != "A" {
		t.Fatalf("catalog mutated through All: %q", n.Title)
	}
	if all[1].ID != "b" {
		t.Fatalf("order = %+v", all)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	if _, err := NewCatalog(NovelDescriptor{ID: ""}); err == nil {
		t.Error("empty id accepted")
	}
	if _, err := NewCatalog(NovelDescriptor{ID: "x"}, NovelDescriptor{ID: "x"}); err == nil {
		t.Error("duplicate id accepted")
	}
	c, err := NewCatalog(NovelDescriptor{ID: "x"})
	if err != nil {
		t.Fatal(err)
	}
	n, _ := c.FindByID("x")
	if n.DataPath != "data/optimized/x/index.json" || n.CoverColor != DefaultCoverColor {
		t.Fatalf("defaults not applied: %+v", n)
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := "novels:\n  - id: ghost\n    title: Ghost\n    data_path: elsewhere/index.json\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	n, ok := c.FindByID("ghost")
	if !ok || n.DataPath != "elsewhere/index.json" {
		t.Fatalf("ghost = %+v, %v", n, ok)
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestInitial(t *testing.T) {
	cases := map[string]string{"nano": "N", "élan": "É", "": "?", "  ": "?"}
	for title, want := range cases {
		if got := (NovelDescriptor{Title: title}).Initial(); got != want {
			t.Errorf("Initial(%q) = %q, want %q", title, got, want)
		}
	}
}
