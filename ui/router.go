package ui

import (
	"net/url"
	"path"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

type PageKind int

const (
	PageHome PageKind = iota
	PageNovel
	PageChapter
)

func (k PageKind) String() string {
	switch k {
	case PageNovel:
		return "novel"
	case PageChapter:
		return "chapter"
	default:
		return "home"
	}
}

// Page is a classified location.
type Page struct {
	Kind     PageKind
	Location string
	Query    url.Values
}

const (
	homeFile    = "index.html"
	novelFile   = "novel.html"
	chapterFile = "chapter.html"
)

// Route classifies a location by the file name of its path. Anything unrecognised is home.
func Route(location string) Page {
	page := Page{Kind: PageHome, Location: location, Query: url.Values{}}
	u, err := url.Parse(location)
	if err != nil {
		return page
	}
	page.Query = u.Query()

	switch path.Base(u.Path) {
	case novelFile:
		page.Kind = PageNovel
	case chapterFile:
		page.Kind = PageChapter
	}
	return page
}

func HomeLocation() string { return homeFile }

func NovelLocation(novelID string) string {
	return novelFile + "?" + url.Values{"id": {novelID}}.Encode()
}

func ChapterLocation(novelID string, chapterIndex int) string {
	q := url.Values{"id": {novelID}, "chapter": {strconv.Itoa(chapterIndex)}}
	return chapterFile + "?" + q.Encode()
}

// navigateMsg asks the app to leave the current screen.
type navigateMsg struct {
	Location string
	Notice   string
}

// Navigate returns a command that switches to location.
func Navigate(location string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{Location: location} }
}

func navigateWithNotice(location, notice string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{Location: location, Notice: notice} }
}
