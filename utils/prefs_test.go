package utils

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestPreferenceDefaults(t *testing.T) {
	p := NewPreferences(NewMemoryStore(), WithPrefsLogger(quietLogger))
	if p.Theme() != ThemeLight {
		t.Errorf("theme = %q, want light", p.Theme())
	}
	if p.FontSize() != FontMedium {
		t.Errorf("font size = %q, want 18px", p.FontSize())
	}
	if _, ok := p.Progress("n1"); ok {
		t.Error("progress present in empty store")
	}
}

func TestThemeAndFontRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	p := NewPreferences(store, WithPrefsLogger(quietLogger))
	if err := p.SetTheme(ThemeDark); err != nil {
		t.Fatal(err)
	}
	if err := p.SetFontSize(FontLarge); err != nil {
		t.Fatal(err)
	}
	if p.Theme() != ThemeDark || p.FontSize() != FontLarge {
		t.Fatalf("got %q/%q", p.Theme(), p.FontSize())
	}
	if v, _, _ := store.Get(KeyFontSize); v != "22px" {
		t.Fatalf("stored font size = %q", v)
	}
}

func TestUnknownTokensFallBack(t *testing.T) {
	store := NewMemoryStore()
	store.Set(KeyTheme, "sepia")
	store.Set(KeyFontSize, "40px")
	p := NewPreferences(store, WithPrefsLogger(quietLogger))
	if p.Theme() != ThemeLight || p.FontSize() != FontMedium {
		t.Fatalf("got %q/%q, want defaults", p.Theme(), p.FontSize())
	}
}

func TestProgressRoundTrip(t *testing.T) {
	p := NewPreferences(NewMemoryStore(), WithClock(fixedClock(1700000000000)), WithPrefsLogger(quietLogger))
	if err := p.SetProgress("n2", 7, "Other"); err != nil {
		t.Fatal(err)
	}
	if err := p.SetProgress("n1", 3, "T"); err != nil {
		t.Fatal(err)
	}
	got, ok := p.Progress("n1")
	if !ok {
		t.Fatal("progress missing")
	}
	want := ReadingProgress{ChapterIndex: 3, ChapterTitle: "T", LastReadTimestamp: 1700000000000}
	if got != want {
		t.Fatalf("progress = %+v, want %+v", got, want)
	}
	if other, _ := p.Progress("n2"); other.ChapterIndex != 7 || other.ChapterTitle != "Other" {
		t.Fatalf("other novel changed: %+v", other)
	}
}

func TestProgressLastWriteWins(t *testing.T) {
	p := NewPreferences(NewMemoryStore(), WithPrefsLogger(quietLogger))
	p.SetProgress("n1", 3, "Three")
	p.SetProgress("n1", 1, "One")
	got, _ := p.Progress("n1")
	if got.ChapterIndex != 1 || got.ChapterTitle != "One" {
		t.Fatalf("progress = %+v", got)
	}
	if len(p.History()) != 1 {
		t.Fatalf("history = %+v", p.History())
	}
}

func TestCorruptHistoryIsAbsent(t *testing.T) {
	store := NewMemoryStore()
	store.Set(KeyHistory, "{not json")
	p := NewPreferences(store, WithPrefsLogger(quietLogger))

	if _, ok := p.Progress("n1"); ok {
		t.Fatal("progress read from corrupt blob")
	}
	if h := p.History(); len(h) != 0 {
		t.Fatalf("history = %+v", h)
	}
	if err := p.SetProgress("n1", 0, "Zero"); err != nil {
		t.Fatalf("SetProgress over corrupt blob: %v", err)
	}
	if got, ok := p.Progress("n1"); !ok || got.ChapterTitle != "Zero" {
		t.Fatalf("progress = %+v, %v", got, ok)
	}
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("unavailable") }
func (failingStore) Set(string, string) error         { return errors.New("unavailable") }

func TestUnavailableStoreFailsSoft(t *testing.T) {
	p := NewPreferences(failingStore{}, WithPrefsLogger(quietLogger))
	if p.Theme() != ThemeLight || p.FontSize() != FontMedium {
		t.Fatal("defaults not returned")
	}
	if _, ok := p.Progress("n1"); ok {
		t.Fatal("progress from unavailable store")
	}
	if err := p.SetTheme(ThemeDark); err == nil {
		t.Fatal("write error swallowed")
	}
}

func TestDecodeHistoryDropsInvalidEntries(t *testing.T) {
	h, err := decodeHistory(`{"a":{"chapterIndex":-1},"b":{"chapterIndex":2,"chapterTitle":"x","lastReadTimestamp":5}}`)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := h["a"]; ok {
		t.Error("negative chapter kept")
	}
	if h["b"].LastRead().UnixMilli() != 5 {
		t.Errorf("b = %+v", h["b"])
	}
	if _, err := decodeHistory("[]"); !errors.Is(err, ErrCorrupt) {
		t.Errorf("err = %v, want ErrCorrupt", err)
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeLight.Toggle() != ThemeDark || ThemeDark.Toggle().Toggle() != ThemeDark {
		t.Fatal("toggle")
	}
	for _, f := range FontSizes {
		if got, ok := ParseFontSize(string(f)); !ok || got != f {
			t.Errorf("ParseFontSize(%q) = %q, %v", f, got, ok)
		}
	}
}
