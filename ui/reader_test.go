package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"novel_shelf/library"
	"novel_shelf/utils"
)

func longChapter(lines int) *library.ChapterDocument {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		b.WriteString("paragraph\n")
	}
	return &library.ChapterDocument{Title: "Long", Content: b.String()}
}

func newTestReader(t *testing.T, index int) ReaderModel {
	t.Helper()
	prefs := utils.NewPreferences(utils.NewMemoryStore(), utils.WithPrefsLogger(quietLogger))
	cfg := utils.DefaultConfig()
	return NewReaderModel(library.NovelDescriptor{ID: "n1", Title: "N"}, index, prefs, cfg.Reader, quietLogger, 80, 20)
}

func TestReaderScrollTop(t *testing.T) {
	m := newTestReader(t, 0)
	m.SetChapter(longChapter(200))
	if m.ScrollTopVisible() {
		t.Fatal("scroll-top visible at the top")
	}
	m.viewport.SetYOffset(50)
	if !m.ScrollTopVisible() {
		t.Fatal("scroll-top hidden past the threshold")
	}

	m, cmd := m.Update(key("g"))
	if cmd == nil {
		t.Fatal("no scroll started")
	}
	for i := 0; i < 100 && m.ScrollOffset() > 0; i++ {
		m, _ = m.Update(scrollStepMsg{novelID: "n1", index: 0})
	}
	if m.ScrollOffset() != 0 {
		t.Fatalf("offset = %d after scrolling", m.ScrollOffset())
	}
	if m.scrolling {
		t.Fatal("still scrolling at the top")
	}
}

func TestReaderScrollStepForOtherChapterIgnored(t *testing.T) {
	m := newTestReader(t, 0)
	m.SetChapter(longChapter(200))
	m.viewport.SetYOffset(50)
	m, _ = m.Update(key("g"))
	m, _ = m.Update(scrollStepMsg{novelID: "n1", index: 7})
	if m.ScrollOffset() != 50 {
		t.Fatalf("offset = %d", m.ScrollOffset())
	}
}

func TestReaderFontSpacing(t *testing.T) {
	m := newTestReader(t, 0)
	m.SetChapter(&library.ChapterDocument{Title: "t", Content: "a\nb"})
	m.SetFontSize(utils.FontSmall)
	if got := m.renderBody(); got != "a\nb" {
		t.Fatalf("small body = %q", got)
	}
	m.SetFontSize(utils.FontLarge)
	if got := m.renderBody(); got != "a\n\n\nb" {
		t.Fatalf("large body = %q", got)
	}
}

func TestReaderWindowResize(t *testing.T) {
	m := newTestReader(t, 0)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	if w := m.contentWidth(); w != 80 {
		t.Fatalf("content width = %d, want medium cap 80", w)
	}
}
