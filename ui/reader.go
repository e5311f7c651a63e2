package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"novel_shelf/lang"
	"novel_shelf/library"
	"novel_shelf/utils"
)

const (
	// scrollTopThreshold is how far down the content must be before the top button shows.
	scrollTopThreshold = 10
	scrollStepInterval = 16 * time.Millisecond
	// reader chrome: title bar above, nav bar and help below
	readerHeaderRows = 2
	readerFooterRows = 3
)

// fontLayout maps a font size token to a terminal column layout.
type fontLayout struct {
	maxWidth int
	spacing  int // blank lines between paragraphs
}

var fontLayouts = map[utils.FontSize]fontLayout{
	utils.FontSmall:  {maxWidth: 100, spacing: 0},
	utils.FontMedium: {maxWidth: 80, spacing: 1},
	utils.FontLarge:  {maxWidth: 64, spacing: 2},
}

// chapterLoadedMsg carries the result of a chapter fetch issued under generation gen.
type chapterLoadedMsg struct {
	gen     int
	novelID string
	index   int
	doc     *library.ChapterDocument
	err     error
}

// scrollStepMsg advances the smooth scroll back to the top.
type scrollStepMsg struct {
	novelID string
	index   int
}

func fetchChapterCmd(ctx context.Context, f library.Fetcher, gen int, novelID string, index int) tea.Cmd {
	return func() tea.Msg {
		doc, err := library.LoadChapter(ctx, f, novelID, index)
		return chapterLoadedMsg{gen: gen, novelID: novelID, index: index, doc: doc, err: err}
	}
}

// ReaderModel shows one chapter in a scrollable viewport.
type ReaderModel struct {
	novel      library.NovelDescriptor
	index      int
	prefs      *utils.Preferences
	logger     *slog.Logger
	layout     utils.ReaderConfig
	loading    bool
	err        error
	title      string
	paragraphs []string
	fontSize   utils.FontSize
	settings   bool
	scrolling  bool
	viewport   viewport.Model
	width      int
	height     int
}

func NewReaderModel(novel library.NovelDescriptor, index int, prefs *utils.Preferences, layout utils.ReaderConfig, logger *slog.Logger, width, height int) ReaderModel {
	if logger == nil {
		logger = slog.Default()
	}
	m := ReaderModel{
		novel:    novel,
		index:    index,
		prefs:    prefs,
		logger:   logger,
		layout:   layout,
		loading:  true,
		fontSize: prefs.FontSize(),
		viewport: viewport.New(0, 0),
	}
	m.resize(width, height)
	return m
}

func (m ReaderModel) Novel() library.NovelDescriptor { return m.novel }
func (m ReaderModel) Index() int                     { return m.index }
func (m ReaderModel) Loading() bool                  { return m.loading }
func (m ReaderModel) Err() error                     { return m.err }
func (m ReaderModel) Title() string                  { return m.title }
func (m ReaderModel) FontSize() utils.FontSize       { return m.fontSize }
func (m ReaderModel) SettingsOpen() bool             { return m.settings }

// Paragraphs returns the rendered paragraph blocks in source order.
func (m ReaderModel) Paragraphs() []string {
	return append([]string(nil), m.paragraphs...)
}

// PrevLocation is the previous chapter, available only past the first chapter.
func (m ReaderModel) PrevLocation() (string, bool) {
	if m.loading || m.err != nil || m.index <= 0 {
		return "", false
	}
	return ChapterLocation(m.novel.ID, m.index-1), true
}

// NextLocation always points one chapter ahead once the chapter is shown.
// There is no chapter count here; reading past the end surfaces as a load error.
func (m ReaderModel) NextLocation() (string, bool) {
	if m.loading || m.err != nil {
		return "", false
	}
	return ChapterLocation(m.novel.ID, m.index+1), true
}

// ScrollTopVisible reports whether the back-to-top control is shown.
func (m ReaderModel) ScrollTopVisible() bool {
	return m.viewport.YOffset > scrollTopThreshold
}

func (m ReaderModel) ScrollOffset() int { return m.viewport.YOffset }

// SetChapter shows doc and records it as the novel's reading position.
func (m *ReaderModel) SetChapter(doc *library.ChapterDocument) {
	m.loading = false
	m.err = nil
	m.title = doc.Title
	m.paragraphs = library.Paragraphs(doc.Content)
	m.refreshContent()
	m.viewport.GotoTop()

	if err := m.prefs.SetProgress(m.novel.ID, m.index, doc.Title); err != nil {
		m.logger.Warn("could not save reading progress", "novel", m.novel.ID, "chapter", m.index, "err", err)
	}
}

func (m *ReaderModel) SetError(err error) {
	m.loading = false
	m.err = err
	m.paragraphs = nil
	m.refreshContent()
}

// SetFontSize applies f immediately and persists it.
func (m *ReaderModel) SetFontSize(f utils.FontSize) {
	if _, ok := fontLayouts[f]; !ok {
		return
	}
	m.fontSize = f
	if err := m.prefs.SetFontSize(f); err != nil {
		m.logger.Warn("could not save font size", "err", err)
	}
	m.refreshContent()
}

func (m *ReaderModel) stepFontSize(delta int) {
	pos := 0
	for i, f := range utils.FontSizes {
		if f == m.fontSize {
			pos = i
		}
	}
	pos += delta
	if pos < 0 || pos >= len(utils.FontSizes) {
		return
	}
	m.SetFontSize(utils.FontSizes[pos])
}

func (m ReaderModel) contentWidth() int {
	w := m.width - 2*m.layout.HorizontalPadding
	if l, ok := fontLayouts[m.fontSize]; ok && w > l.maxWidth {
		w = l.maxWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (m *ReaderModel) resize(width, height int) {
	m.width = width
	m.height = height
	h := height - readerHeaderRows - readerFooterRows - 2*m.layout.VerticalPadding
	if m.settings {
		h -= gloss.Height(m.settingsPanel())
	}
	if h < 1 {
		h = 1
	}
	m.viewport.Height = h
	m.refreshContent()
}

// renderBody wraps every paragraph to the column width and separates them by the
// font size's spacing.
func (m ReaderModel) renderBody() string {
	if len(m.paragraphs) == 0 {
		return ""
	}
	width := m.contentWidth()
	sep := "\n" + strings.Repeat("\n", fontLayouts[m.fontSize].spacing)
	blocks := make([]string, len(m.paragraphs))
	for i, p := range m.paragraphs {
		blocks[i] = wordwrap.String(p, width)
	}
	return strings.Join(blocks, sep)
}

func (m *ReaderModel) refreshContent() {
	m.viewport.Width = min(m.width, m.contentWidth()+2*m.layout.HorizontalPadding)
	body := m.renderBody()
	if body == "" {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(ReaderStyle(m.contentWidth()+2*m.layout.HorizontalPadding, m.layout.HorizontalPadding).Render(body))
}

func (m ReaderModel) scrollStep() tea.Cmd {
	id, idx := m.novel.ID, m.index
	return tea.Tick(scrollStepInterval, func(time.Time) tea.Msg {
		return scrollStepMsg{novelID: id, index: idx}
	})
}

func (m ReaderModel) Update(msg tea.Msg) (ReaderModel, tea.Cmd) {
	switch tm := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(tm.Width, tm.Height)
		return m, nil

	case scrollStepMsg:
		if !m.scrolling || tm.novelID != m.novel.ID || tm.index != m.index {
			return m, nil
		}
		offset := m.viewport.YOffset
		step := offset / 3
		if step < 1 {
			step = 1
		}
		m.viewport.SetYOffset(offset - step)
		if m.viewport.YOffset <= 0 {
			m.scrolling = false
			return m, nil
		}
		return m, m.scrollStep()

	case tea.KeyMsg:
		switch tm.String() {
		case "left", "h", "p":
			if loc, ok := m.PrevLocation(); ok {
				return m, Navigate(loc)
			}
			return m, nil
		case "right", "l", "n":
			if loc, ok := m.NextLocation(); ok {
				return m, Navigate(loc)
			}
			return m, nil
		case "esc", "backspace":
			return m, Navigate(NovelLocation(m.novel.ID))
		case "s":
			m.settings = !m.settings
			m.resize(m.width, m.height)
			return m, nil
		case "1", "2", "3":
			m.SetFontSize(utils.FontSizes[int(tm.String()[0]-'1')])
			return m, nil
		case "+", "=":
			m.stepFontSize(1)
			return m, nil
		case "-":
			m.stepFontSize(-1)
			return m, nil
		case "g", "home":
			if m.ScrollTopVisible() && !m.scrolling {
				m.scrolling = true
				return m, m.scrollStep()
			}
			return m, nil
		}
		// manual scrolling interrupts the smooth scroll
		m.scrolling = false
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m ReaderModel) navBar() string {
	texts := lang.Active().Reader
	prev := NavDisabledStyle.Render(texts.Previous)
	if _, ok := m.PrevLocation(); ok {
		prev = NavEnabledStyle.Render(texts.Previous)
	}
	next := NavDisabledStyle.Render(texts.Next)
	if _, ok := m.NextLocation(); ok {
		next = NavEnabledStyle.Render(texts.Next)
	}
	back := SubheaderStyle.Render(texts.BackToNovel + " [esc]")
	bar := prev + "   " + back + "   " + next
	if m.ScrollTopVisible() {
		bar += "   " + NoticeStyle.Render(texts.ScrollTop+" [g]")
	}
	return bar
}

func (m ReaderModel) settingsPanel() string {
	texts := lang.Active().Reader
	var sizes []string
	for i, f := range utils.FontSizes {
		label := string(rune('1'+i)) + " " + lang.FontSizeName(f.Name())
		if f == m.fontSize {
			sizes = append(sizes, PanelActiveStyle.Render(label))
		} else {
			sizes = append(sizes, label)
		}
	}
	theme := CurrentTheme()
	body := HeaderStyle.PaddingTop(0).Render(texts.Settings) + "\n" +
		texts.FontSize + ": " + strings.Join(sizes, "  ") + "\n" +
		texts.ThemeLabel + ": " + lang.ThemeName(string(theme)) + " [T]\n" +
		texts.Language + ": " + lang.LanguageName(lang.CurrentLocale()) + " [L]"
	return PanelStyle.Render(body)
}

func (m ReaderModel) View() string {
	texts := lang.Active()
	title := m.title
	if strings.TrimSpace(title) == "" {
		title = lang.ChapterTitle(m.index)
	}
	heading := runewidth.Truncate(m.novel.Title+" · "+title, max(m.width-4, 10), "…")

	var b strings.Builder
	b.WriteString(PageStyle.Render(HeaderStyle.PaddingTop(0).Render(heading)))
	b.WriteString("\n\n")
	if m.settings {
		b.WriteString(PageStyle.Render(m.settingsPanel()))
		b.WriteString("\n")
	}

	pad := strings.Repeat("\n", m.layout.VerticalPadding)
	switch {
	case m.loading:
		b.WriteString(ReaderLoadingStyle.Width(m.width).Render(texts.Reader.LoadingDefault))
	case m.err != nil:
		b.WriteString(PageStyle.Render(ErrorStyle.Render(wordwrap.String(lang.ReaderLoadFailed(m.err), m.contentWidth()))))
	default:
		b.WriteString(pad)
		b.WriteString(gloss.PlaceHorizontal(m.width, gloss.Center, m.viewport.View()))
		b.WriteString(pad)
	}

	b.WriteString("\n")
	b.WriteString(PageStyle.Render(m.navBar()))
	b.WriteString("\n")
	b.WriteString(PageStyle.Render(HelpStyle.Render(texts.Help.Reader)))
	return b.String()
}
