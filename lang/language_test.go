package lang

import (
	"errors"
	"strings"
	"testing"
)

func TestSetLocale(t *testing.T) {
	defer SetLocale(LocaleEnglish)

	if SetLocale("xx") {
		t.Fatal("SetLocale accepted an unknown locale")
	}
	if CurrentLocale() != LocaleEnglish {
		t.Fatalf("locale changed to %q after a rejected switch", CurrentLocale())
	}
	if !SetLocale(LocaleIndonesian) {
		t.Fatal("SetLocale rejected id")
	}
	if got := Active().Novel.NotFound; got != "Novel tidak ditemukan!" {
		t.Fatalf("NotFound = %q", got)
	}
}

func TestNextLocaleWraps(t *testing.T) {
	if got := NextLocale(LocaleEnglish); got != LocaleIndonesian {
		t.Fatalf("NextLocale(en) = %q", got)
	}
	if got := NextLocale(LocaleIndonesian); got != LocaleEnglish {
		t.Fatalf("NextLocale(id) = %q", got)
	}
	if got := NextLocale("xx"); got != LocaleEnglish {
		t.Fatalf("NextLocale(xx) = %q", got)
	}
}

func TestFormatters(t *testing.T) {
	SetLocale(LocaleEnglish)

	if got := ChapterTitle(0); got != "Chapter 1" {
		t.Errorf("ChapterTitle(0) = %q", got)
	}
	if got := ResumeLabel("The Gate"); got != "Continue reading: The Gate" {
		t.Errorf("ResumeLabel = %q", got)
	}
	if got := ReaderLoadFailed(errors.New("status 404")); !strings.HasSuffix(got, "status 404") {
		t.Errorf("ReaderLoadFailed = %q", got)
	}
	if got := FontSizeName("medium"); got != "Medium" {
		t.Errorf("FontSizeName(medium) = %q", got)
	}
	if got := FontSizeName("huge"); got != "huge" {
		t.Errorf("FontSizeName(huge) = %q", got)
	}
	if got := ThemeName("dark"); got != "Dark" {
		t.Errorf("ThemeName(dark) = %q", got)
	}
}
