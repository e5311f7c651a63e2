package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"novel_shelf/lang"
	"novel_shelf/library"
	"novel_shelf/utils"
)

// NovelItem is one catalog card.
type NovelItem struct {
	Novel    library.NovelDescriptor
	Progress *utils.ReadingProgress
}

func (i NovelItem) Title() string { return i.Novel.Title }

func (i NovelItem) Description() string {
	if i.Progress == nil {
		return i.Novel.Description
	}
	title := i.Progress.ChapterTitle
	if strings.TrimSpace(title) == "" {
		title = library.FallbackChapterTitle(i.Progress.ChapterIndex)
	}
	return lang.ContinueLabel(title) + " | " + i.Novel.Description
}

func (i NovelItem) FilterValue() string { return i.Novel.Title + " " + i.Novel.ID }

// HomeModel lists the catalog. It does no I/O.
type HomeModel struct {
	list   list.Model
	notice string
	width  int
	height int
}

func NewHomeModel(catalog *library.Catalog, prefs *utils.Preferences, width, height int) HomeModel {
	history := prefs.History()
	novels := catalog.All()
	items := make([]list.Item, len(novels))
	for i, n := range novels {
		item := NovelItem{Novel: n}
		if p, ok := history[n.ID]; ok {
			p := p
			item.Progress = &p
		}
		items[i] = item
	}

	l := list.New(items, &NovelDelegate{}, 0, 0)
	listSettings(&l)
	filterStyle(&l)
	if len(items) > 0 {
		l.Select(0)
	}

	m := HomeModel{list: l}
	m.resize(width, height)
	return m
}

// Items returns the cards in display order.
func (m HomeModel) Items() []NovelItem {
	var out []NovelItem
	for _, it := range m.list.Items() {
		if n, ok := it.(NovelItem); ok {
			out = append(out, n)
		}
	}
	return out
}

func (m *HomeModel) SetNotice(notice string) { m.notice = notice }

func (m HomeModel) Notice() string { return m.notice }

func (m *HomeModel) resize(width, height int) {
	m.width = width
	m.height = height
	availWidth := width - 8
	if availWidth > ListMaxWidth || availWidth <= 0 {
		availWidth = ListMaxWidth
	}
	availHeight := height - 7
	if availHeight < 3 {
		availHeight = 3
	}
	m.list.SetSize(availWidth, availHeight)
}

func (m HomeModel) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch tm := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(tm.Width, tm.Height)
		return m, nil
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch tm.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(NovelItem); ok {
				m.notice = ""
				return m, Navigate(NovelLocation(item.Novel.ID))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m HomeModel) View() string {
	texts := lang.Active()
	var b strings.Builder
	b.WriteString(HeaderStyle.PaddingLeft(4).Render(texts.Home.Heading))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(NoticeStyle.PaddingLeft(4).Render(m.notice))
		b.WriteString("\n")
	}
	if len(m.list.Items()) == 0 {
		b.WriteString(StatusMutedStyle.PaddingLeft(4).Render(texts.Home.Empty))
	} else {
		b.WriteString(ListBlockStyle.Render(m.list.View()))
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.PaddingLeft(4).Render(texts.Help.Home))
	return b.String()
}

// ---------------- NovelDelegate ----------------
type NovelDelegate struct {
	list.DefaultDelegate
}

func (d *NovelDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	n, ok := item.(NovelItem)
	if !ok {
		return
	}
	label := n.Novel.Initial()
	if n.Novel.HasCoverImage() {
		label = "▣"
	}
	coverTop := RenderCover(n.Novel.CoverColor, label)
	coverBottom := RenderCover(n.Novel.CoverColor, "")
	avail := m.Width() - coverWidth - 6
	if avail < 10 {
		avail = 10
	}
	title := runewidth.Truncate(n.Title(), avail, "…")
	desc := runewidth.Truncate(n.Description(), avail, "…")
	if index == m.Index() {
		title = SelectedTitleStyle.Render(title)
		desc = SelectedDescStyle.Render(desc)
	} else {
		title = NormalTitleStyle.Render(title)
		desc = NormalDescStyle.Render(desc)
	}
	fmt.Fprintf(w, "%s %s\n%s %s", coverTop, title, coverBottom, desc)
}

func (d *NovelDelegate) Height() int  { return 2 }
func (d *NovelDelegate) Spacing() int { return 1 }
func (d *NovelDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// ---------------- List styling ----------------
func filterStyle(l *list.Model) {
	l.FilterInput.Prompt = lang.Active().Novel.FilterPrompt
	l.FilterInput.PromptStyle = PromptStyle
	l.FilterInput.TextStyle = PromptTextStyle
	l.FilterInput.Cursor.Style = PromptStyle
}

func listSettings(l *list.Model) {
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
}
