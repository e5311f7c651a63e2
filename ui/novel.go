package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"novel_shelf/lang"
	"novel_shelf/library"
	"novel_shelf/utils"
)

// indexLoadedMsg carries the result of an index fetch issued under generation gen.
type indexLoadedMsg struct {
	gen     int
	novelID string
	doc     *library.ChapterIndexDocument
	err     error
}

func fetchIndexCmd(ctx context.Context, f library.Fetcher, gen int, novel library.NovelDescriptor) tea.Cmd {
	return func() tea.Msg {
		doc, err := library.LoadIndex(ctx, f, novel)
		return indexLoadedMsg{gen: gen, novelID: novel.ID, doc: doc, err: err}
	}
}

// NovelModel is the novel detail screen: header, resume link and chapter list.
type NovelModel struct {
	novel      library.NovelDescriptor
	resume     *utils.ReadingProgress
	loading    bool
	err        error
	chapters   []library.ChapterSummary // as fetched
	descending bool
	toc        TOCModel
	width      int
	height     int
}

func NewNovelModel(novel library.NovelDescriptor, prefs *utils.Preferences, width, height int) NovelModel {
	m := NovelModel{
		novel:   novel,
		loading: true,
		width:   width,
		height:  height,
	}
	if p, ok := prefs.Progress(novel.ID); ok {
		m.resume = &p
	}
	m.rebuildList()
	return m
}

func (m NovelModel) Novel() library.NovelDescriptor { return m.novel }
func (m NovelModel) Loading() bool                  { return m.loading }
func (m NovelModel) Err() error                     { return m.err }
func (m NovelModel) Descending() bool               { return m.descending }

// SetIndex renders the fetched chapter list in ascending (document) order.
func (m *NovelModel) SetIndex(doc *library.ChapterIndexDocument) {
	m.loading = false
	m.err = nil
	m.chapters = nil
	if doc != nil && doc.Chapters != nil {
		m.chapters = append([]library.ChapterSummary(nil), doc.Chapters...)
	}
	m.rebuildList()
}

func (m *NovelModel) SetError(err error) {
	m.loading = false
	m.err = err
}

// Ordered returns the chapters in the current display order.
func (m NovelModel) Ordered() []library.ChapterSummary {
	if m.descending {
		return library.Reversed(m.chapters)
	}
	return append([]library.ChapterSummary(nil), m.chapters...)
}

// ToggleOrder flips between ascending and descending without refetching.
func (m *NovelModel) ToggleOrder() {
	m.descending = !m.descending
	m.rebuildList()
}

// ResumeLabel is the text of the resume link, empty when there is no saved progress.
func (m NovelModel) ResumeLabel() string {
	if m.resume == nil {
		return ""
	}
	title := strings.TrimSpace(m.resume.ChapterTitle)
	if title == "" {
		title = library.FallbackChapterTitle(m.resume.ChapterIndex)
	}
	return lang.ResumeLabel(title)
}

// ResumeLocation is where the resume link points.
func (m NovelModel) ResumeLocation() (string, bool) {
	if m.resume == nil {
		return "", false
	}
	return ChapterLocation(m.novel.ID, m.resume.ChapterIndex), true
}

func (m *NovelModel) rebuildList() {
	w, h := m.listSize()
	m.toc = NewTOCModel(m.Ordered(), w, h)
}

func (m NovelModel) listSize() (int, int) {
	w := m.width - 4
	if w > ListMaxWidth || w <= 0 {
		w = ListMaxWidth
	}
	h := m.height - m.headerHeight() - 3
	if h < 3 {
		h = 3
	}
	return w, h
}

func (m NovelModel) headerHeight() int {
	return strings.Count(m.header(), "\n") + 1
}

func (m *NovelModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.toc.SetSize(m.listSize())
}

func (m NovelModel) Update(msg tea.Msg) (NovelModel, tea.Cmd) {
	switch tm := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(tm.Width, tm.Height)
		return m, nil

	case tocSelectMsg:
		return m, Navigate(ChapterLocation(m.novel.ID, int(tm)))

	case tea.KeyMsg:
		if m.toc.Filtering() {
			break
		}
		switch tm.String() {
		case "esc", "backspace":
			if m.toc.IsFiltered() {
				m.toc.ResetFilter()
				return m, nil
			}
			return m, Navigate(HomeLocation())
		case "o":
			if !m.loading && m.err == nil {
				m.ToggleOrder()
			}
			return m, nil
		case "r":
			if loc, ok := m.ResumeLocation(); ok {
				return m, Navigate(loc)
			}
			return m, nil
		}
	}

	if m.loading || m.err != nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.toc, cmd = m.toc.Update(msg)
	return m, cmd
}

func (m NovelModel) header() string {
	width := m.width - 8
	if width <= 0 || width > ListMaxWidth {
		width = ListMaxWidth
	}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.novel.Title))
	b.WriteString("\n")
	b.WriteString(SubheaderStyle.Render(wordwrap.String(m.novel.Description, width)))
	if label := m.ResumeLabel(); label != "" {
		b.WriteString("\n")
		b.WriteString(ResumeStyle.Render("▶ " + label + "  [r]"))
	}
	return b.String()
}

func (m NovelModel) View() string {
	texts := lang.Active()
	var b strings.Builder
	b.WriteString(PageStyle.Render(m.header()))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(PageStyle.Render(StatusStyle.Render(texts.Novel.Loading)))
	case m.err != nil:
		width := m.width - 8
		if width <= 0 || width > ListMaxWidth {
			width = ListMaxWidth
		}
		b.WriteString(PageStyle.Render(ErrorStyle.Render(wordwrap.String(texts.Novel.LoadFailed, width))))
	case m.toc.Len() == 0:
		b.WriteString(PageStyle.Render(StatusMutedStyle.Render(texts.Novel.NoChapters)))
	default:
		order := texts.Novel.OrderAscending
		if m.descending {
			order = texts.Novel.OrderDescending
		}
		b.WriteString(PageStyle.Render(StatusMutedStyle.Render("⇅ " + order + "  [o]")))
		b.WriteString("\n")
		b.WriteString(m.toc.View())
	}

	b.WriteString("\n")
	b.WriteString(PageStyle.Render(HelpStyle.Render(texts.Help.Novel)))
	return b.String()
}
