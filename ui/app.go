package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"novel_shelf/lang"
	"novel_shelf/library"
	"novel_shelf/utils"
)

type AppState int

const (
	StateHome AppState = iota
	StateNovel
	StateReader
)

func (s AppState) String() string {
	switch s {
	case StateNovel:
		return "novel"
	case StateReader:
		return "reader"
	default:
		return "home"
	}
}

// languageChangedMsg is sent after the UI locale switches.
type languageChangedMsg struct{}

// themeChangedMsg is sent after ApplyTheme so rendered content picks up the new palette.
type themeChangedMsg struct{}

// AppDeps are the collaborators every screen draws on.
type AppDeps struct {
	Catalog    *library.Catalog
	Prefs      *utils.Preferences
	Fetcher    library.Fetcher
	Config     utils.Config
	ConfigPath string // where language changes are saved; empty disables saving
	Logger     *slog.Logger
}

type AppModel struct {
	state    AppState
	location string
	home     HomeModel
	novel    NovelModel
	reader   ReaderModel

	deps   AppDeps
	logger *slog.Logger

	// gen increases on every navigation; results tagged with an older gen are dropped.
	gen    int
	cancel context.CancelFunc

	start  string
	width  int
	height int
}

// NewAppModel builds the shell. start is the first location to open, home when empty.
func NewAppModel(deps AppDeps, start string) AppModel {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Prefs == nil {
		deps.Prefs = utils.NewPreferences(nil)
	}
	if start == "" {
		start = HomeLocation()
	}
	ApplyTheme(deps.Prefs.Theme())
	m := AppModel{
		deps:   deps,
		logger: deps.Logger,
		start:  start,
		state:  StateHome,
	}
	m.home = NewHomeModel(deps.Catalog, deps.Prefs, 0, 0)
	return m
}

func (m AppModel) State() AppState     { return m.state }
func (m AppModel) Location() string    { return m.location }
func (m AppModel) Home() HomeModel     { return m.home }
func (m AppModel) Novel() NovelModel   { return m.novel }
func (m AppModel) Reader() ReaderModel { return m.reader }

func (m AppModel) Init() tea.Cmd {
	return Navigate(m.start)
}

// navigate leaves the current screen for location. Any fetch still running for the
// previous screen is cancelled and its result will be ignored.
func (m AppModel) navigate(location, notice string) (AppModel, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.gen++
	page := Route(location)
	m.logger.Debug("navigate", "location", location, "page", page.Kind, "gen", m.gen)

	switch page.Kind {
	case PageNovel:
		novel, err := m.deps.Catalog.Lookup(page.Query.Get("id"))
		if err != nil {
			m.logger.Info("novel page redirected", "err", err)
			return m.showHome(lang.Active().Novel.NotFound), nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		m.state = StateNovel
		m.location = location
		m.novel = NewNovelModel(novel, m.deps.Prefs, m.width, m.height)
		return m, fetchIndexCmd(ctx, m.deps.Fetcher, m.gen, novel)

	case PageChapter:
		novel, err := m.deps.Catalog.Lookup(page.Query.Get("id"))
		index, convErr := strconv.Atoi(page.Query.Get("chapter"))
		if err != nil || convErr != nil || index < 0 {
			m.logger.Info("invalid chapter location", "location", location, "err", errors.Join(err, convErr))
			return m.showHome(""), nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		m.state = StateReader
		m.location = location
		m.reader = NewReaderModel(novel, index, m.deps.Prefs, m.deps.Config.Reader, m.logger, m.width, m.height)
		return m, fetchChapterCmd(ctx, m.deps.Fetcher, m.gen, novel.ID, index)

	default:
		return m.showHome(notice), nil
	}
}

// showHome rebuilds the catalog so progress written on other screens shows up.
func (m AppModel) showHome(notice string) AppModel {
	m.state = StateHome
	m.location = HomeLocation()
	m.home = NewHomeModel(m.deps.Catalog, m.deps.Prefs, m.width, m.height)
	m.home.SetNotice(notice)
	return m
}

func (m AppModel) toggleTheme() (AppModel, tea.Cmd) {
	next := CurrentTheme().Toggle()
	if err := m.deps.Prefs.SetTheme(next); err != nil {
		m.logger.Warn("could not save theme", "err", err)
	}
	ApplyTheme(next)
	return m, func() tea.Msg { return themeChangedMsg{} }
}

// rebuildHome recreates the home list with the current strings and styles.
func (m AppModel) rebuildHome() AppModel {
	notice := m.home.Notice()
	m.home = NewHomeModel(m.deps.Catalog, m.deps.Prefs, m.width, m.height)
	m.home.SetNotice(notice)
	return m
}

func (m AppModel) switchLanguage() (AppModel, tea.Cmd) {
	next := lang.NextLocale(lang.CurrentLocale())
	lang.SetLocale(next)
	m.deps.Config.UI.Language = string(next)
	if m.deps.ConfigPath != "" {
		if err := utils.SaveConfig(m.deps.Config, m.deps.ConfigPath); err != nil {
			m.logger.Warn("could not save language", "err", err)
		}
	}
	return m, func() tea.Msg { return languageChangedMsg{} }
}

// typing reports whether a filter input currently owns the keyboard.
func (m AppModel) typing() bool {
	switch m.state {
	case StateHome:
		return m.home.Filtering()
	case StateNovel:
		return m.novel.toc.Filtering()
	}
	return false
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch tm := msg.(type) {
	case tea.KeyMsg:
		switch tm.String() {
		case "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case "T":
			if !m.typing() {
				return m.toggleTheme()
			}
		case "L":
			if !m.typing() {
				return m.switchLanguage()
			}
		}

	case tea.WindowSizeMsg:
		m.width = tm.Width
		m.height = tm.Height
		var cmd tea.Cmd
		m.home, _ = m.home.Update(tm)
		switch m.state {
		case StateNovel:
			m.novel, cmd = m.novel.Update(tm)
		case StateReader:
			m.reader, cmd = m.reader.Update(tm)
		}
		return m, cmd

	case navigateMsg:
		return m.navigate(tm.Location, tm.Notice)

	case languageChangedMsg:
		m = m.rebuildHome()
		if m.state == StateNovel {
			m.novel.toc.ApplyLanguage()
		}
		return m, nil

	case themeChangedMsg:
		m = m.rebuildHome()
		switch m.state {
		case StateNovel:
			m.novel.toc.ApplyTheme()
		case StateReader:
			m.reader.refreshContent()
		}
		return m, nil

	case indexLoadedMsg:
		if tm.gen != m.gen || m.state != StateNovel {
			m.logger.Debug("dropping stale index result", "novel", tm.novelID, "gen", tm.gen, "current", m.gen)
			return m, nil
		}
		if tm.err != nil {
			m.logger.Error("chapter index load failed", "novel", tm.novelID, "err", tm.err)
			m.novel.SetError(tm.err)
			return m, nil
		}
		m.novel.SetIndex(tm.doc)
		return m, nil

	case chapterLoadedMsg:
		if tm.gen != m.gen || m.state != StateReader {
			m.logger.Debug("dropping stale chapter result", "novel", tm.novelID, "chapter", tm.index, "gen", tm.gen, "current", m.gen)
			return m, nil
		}
		if tm.err != nil {
			m.logger.Error("chapter load failed", "novel", tm.novelID, "chapter", tm.index, "err", tm.err)
			m.reader.SetError(tm.err)
			return m, nil
		}
		m.reader.SetChapter(tm.doc)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHome:
		m.home, cmd = m.home.Update(msg)
	case StateNovel:
		m.novel, cmd = m.novel.Update(msg)
	case StateReader:
		m.reader, cmd = m.reader.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() string {
	switch m.state {
	case StateHome:
		return m.home.View()
	case StateNovel:
		return m.novel.View()
	case StateReader:
		return m.reader.View()
	default:
		return lang.Active().Common.UnknownState
	}
}

// RunApp opens start and blocks until the user quits.
func RunApp(deps AppDeps, start string) error {
	app := NewAppModel(deps, start)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
