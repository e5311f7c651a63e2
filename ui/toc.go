package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"

	"novel_shelf/lang"
	"novel_shelf/library"
)

// TOCModel wraps a bubbles list to display a novel's chapters.
type TOCModel struct {
	list       list.Model
	jumpBuffer string // accumulate number keys
}

type TOCItem struct {
	title string
	index int // zero-based chapter index
}

func (i TOCItem) Title() string       { return i.title }
func (i TOCItem) Description() string { return "" }
func (i TOCItem) FilterValue() string { return i.title }
func (i TOCItem) Index() int          { return i.index }

// tocSelectMsg reports the chapter chosen with enter.
type tocSelectMsg int

// NewTOCModel builds the list in the order given.
func NewTOCModel(chapters []library.ChapterSummary, width, height int) TOCModel {
	items := make([]list.Item, len(chapters))
	for i, ch := range chapters {
		items[i] = TOCItem{title: ch.Title, index: ch.Index}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowTitle(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()

	applyTOCStrings(&l)
	applyTOCStyles(&l)

	if len(items) > 0 {
		l.Select(0)
	}
	return TOCModel{list: l}
}

func applyTOCStrings(l *list.Model) {
	texts := lang.Active()
	l.SetStatusBarItemName(texts.Novel.StatusSingular, texts.Novel.StatusPlural)
	l.FilterInput.Prompt = texts.Novel.FilterPrompt
}

// applyTOCStyles copies the current theme's styles into the list and its delegate.
func applyTOCStyles(l *list.Model) {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = SelectedTitleStyle
	delegate.Styles.NormalTitle = NormalTitleStyle
	delegate.ShowDescription = false
	l.SetDelegate(delegate)

	l.Styles.StatusBar = gloss.NewStyle().
		Foreground(NormalDescStyle.GetForeground()).
		PaddingBottom(1).
		PaddingLeft(2)
	l.FilterInput.PromptStyle = PromptStyle
	l.FilterInput.TextStyle = PromptTextStyle
	l.FilterInput.Cursor.Style = PromptStyle
}

func (m *TOCModel) ApplyLanguage() {
	applyTOCStrings(&m.list)
}

func (m *TOCModel) ApplyTheme() {
	applyTOCStyles(&m.list)
}

func (m *TOCModel) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Titles returns the rendered rows in order.
func (m TOCModel) Titles() []string {
	var out []string
	for _, it := range m.list.Items() {
		if t, ok := it.(TOCItem); ok {
			out = append(out, t.title)
		}
	}
	return out
}

func (m TOCModel) Len() int { return len(m.list.Items()) }

// Filtering reports whether the filter input has focus.
func (m TOCModel) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// IsFiltered reports whether a filter is applied or being typed.
func (m TOCModel) IsFiltered() bool {
	return m.list.FilterState() != list.Unfiltered
}

func (m *TOCModel) ResetFilter() { m.list.ResetFilter() }

func (m TOCModel) Update(msg tea.Msg) (TOCModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if m.Filtering() {
				break
			}
			if item, ok := m.list.SelectedItem().(TOCItem); ok {
				return m, func() tea.Msg { return tocSelectMsg(item.index) }
			}
			return m, nil
		}

		// Only intercept digits if we're NOT filtering
		if !m.Filtering() {
			switch keyMsg.String() {
			case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
				m.jumpBuffer += keyMsg.String()
				return m, nil
			case "g", "G":
				if m.jumpBuffer != "" {
					if n, err := strconv.Atoi(m.jumpBuffer); err == nil {
						m.selectChapter(n - 1)
					}
					m.jumpBuffer = ""
					return m, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *TOCModel) selectChapter(index int) {
	for i, it := range m.list.Items() {
		if t, ok := it.(TOCItem); ok && t.index == index {
			m.list.Select(i)
			return
		}
	}
}

func (m TOCModel) View() string {
	return gloss.NewStyle().
		PaddingLeft(2).
		Render(m.list.View())
}
