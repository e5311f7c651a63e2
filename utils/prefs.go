package utils

import (
	"log/slog"
	"time"
)

// Persistent store keys.
const (
	KeyTheme    = "theme"
	KeyFontSize = "fontSize"
	KeyHistory  = "novel_history"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return ThemeLight, false
}

// FontSize is one of three fixed size tokens.
type FontSize string

const (
	FontSmall  FontSize = "16px"
	FontMedium FontSize = "18px"
	FontLarge  FontSize = "22px"
)

// FontSizes lists the selectable sizes, smallest first.
var FontSizes = []FontSize{FontSmall, FontMedium, FontLarge}

func ParseFontSize(s string) (FontSize, bool) {
	for _, f := range FontSizes {
		if string(f) == s {
			return f, true
		}
	}
	return FontMedium, false
}

// Name is the option label: small, medium or large.
func (f FontSize) Name() string {
	switch f {
	case FontSmall:
		return "small"
	case FontLarge:
		return "large"
	default:
		return "medium"
	}
}

// Preferences exposes typed accessors over a Store. Reads never fail: store errors
// and malformed values fall back to defaults and are only logged.
type Preferences struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

type PrefOption func(*Preferences)

// WithClock overrides the clock used for progress timestamps.
func WithClock(now func() time.Time) PrefOption {
	return func(p *Preferences) { p.now = now }
}

func WithPrefsLogger(logger *slog.Logger) PrefOption {
	return func(p *Preferences) { p.logger = logger }
}

func NewPreferences(store Store, opts ...PrefOption) *Preferences {
	p := &Preferences{store: store, now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.store == nil {
		p.store = NewMemoryStore()
	}
	return p
}

func (p *Preferences) get(key string) (string, bool) {
	v, ok, err := p.store.Get(key)
	if err != nil {
		p.logger.Warn("preference unavailable", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

func (p *Preferences) Theme() Theme {
	v, ok := p.get(KeyTheme)
	if !ok {
		return ThemeLight
	}
	t, valid := ParseTheme(v)
	if !valid {
		p.logger.Debug("ignoring unknown theme", "value", v)
	}
	return t
}

func (p *Preferences) SetTheme(t Theme) error {
	if _, ok := ParseTheme(string(t)); !ok {
		t = ThemeLight
	}
	return p.store.Set(KeyTheme, string(t))
}

func (p *Preferences) FontSize() FontSize {
	v, ok := p.get(KeyFontSize)
	if !ok {
		return FontMedium
	}
	f, valid := ParseFontSize(v)
	if !valid {
		p.logger.Debug("ignoring unknown font size", "value", v)
	}
	return f
}

func (p *Preferences) SetFontSize(f FontSize) error {
	if _, ok := ParseFontSize(string(f)); !ok {
		f = FontMedium
	}
	return p.store.Set(KeyFontSize, string(f))
}

// History returns every stored progress entry. A corrupted blob reads as empty.
func (p *Preferences) History() map[string]ReadingProgress {
	blob, _ := p.get(KeyHistory)
	history, err := decodeHistory(blob)
	if err != nil {
		p.logger.Warn("discarding reading history", "err", err)
	}
	return history
}

// Progress returns the saved position for novelID.
func (p *Preferences) Progress(novelID string) (ReadingProgress, bool) {
	if novelID == "" {
		return ReadingProgress{}, false
	}
	rp, ok := p.History()[novelID]
	return rp, ok
}

// SetProgress overwrites the entry for novelID (last write wins) and rewrites the whole map.
func (p *Preferences) SetProgress(novelID string, chapterIndex int, chapterTitle string) error {
	if novelID == "" {
		return nil
	}
	history := p.History()
	history[novelID] = ReadingProgress{
		ChapterIndex:      chapterIndex,
		ChapterTitle:      chapterTitle,
		LastReadTimestamp: p.now().UnixMilli(),
	}
	blob, err := encodeHistory(history)
	if err != nil {
		return err
	}
	return p.store.Set(KeyHistory, blob)
}
