package ui

import (
	gloss "github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"novel_shelf/library"
	"novel_shelf/utils"
)

// Palette is the set of colours a theme provides.
type Palette struct {
	Text   gloss.Color
	Muted  gloss.Color
	Accent gloss.Color
	Subtle gloss.Color
	Error  gloss.Color
	Notice gloss.Color
}

var palettes = map[utils.Theme]Palette{
	utils.ThemeDark: {
		Text:   gloss.Color("#cdd6f4"),
		Muted:  gloss.Color("#585b70"),
		Accent: gloss.Color("#89b4fa"),
		Subtle: gloss.Color("#363a4f"),
		Error:  gloss.Color("#f38ba8"),
		Notice: gloss.Color("#f9e2af"),
	},
	utils.ThemeLight: {
		Text:   gloss.Color("#4c4f69"),
		Muted:  gloss.Color("#9ca0b0"),
		Accent: gloss.Color("#1e66f5"),
		Subtle: gloss.Color("#ccd0da"),
		Error:  gloss.Color("#d20f39"),
		Notice: gloss.Color("#df8e1d"),
	},
}

const (
	ListMaxWidth = 72
	// coverShade is the colour a cover gradient fades into.
	coverShade = "#1f2937"
	coverWidth = 5
)

var activeTheme = utils.ThemeLight

// PageStyle indents every screen block.
var PageStyle = gloss.NewStyle().PaddingLeft(4)

// ListBlockStyle is the container around list views.
var ListBlockStyle = gloss.NewStyle().
	Align(gloss.Left).
	Padding(1, 4)

// Styles derived from the active palette. ApplyTheme rebuilds them.
var (
	HeaderStyle        gloss.Style
	SubheaderStyle     gloss.Style
	SelectedTitleStyle gloss.Style
	SelectedDescStyle  gloss.Style
	NormalTitleStyle   gloss.Style
	NormalDescStyle    gloss.Style
	StatusStyle        gloss.Style
	StatusMutedStyle   gloss.Style
	ErrorStyle         gloss.Style
	NoticeStyle        gloss.Style
	HelpStyle          gloss.Style
	NavEnabledStyle    gloss.Style
	NavDisabledStyle   gloss.Style
	PanelStyle         gloss.Style
	PanelActiveStyle   gloss.Style
	ReaderLoadingStyle gloss.Style
	PromptStyle        gloss.Style
	PromptTextStyle    gloss.Style
	ResumeStyle        gloss.Style
)

func init() {
	ApplyTheme(utils.ThemeLight)
}

// CurrentTheme returns the theme the styles were last built for.
func CurrentTheme() utils.Theme { return activeTheme }

// ApplyTheme swaps the palette every view renders with.
func ApplyTheme(t utils.Theme) {
	p, ok := palettes[t]
	if !ok {
		t = utils.ThemeLight
		p = palettes[t]
	}
	activeTheme = t

	HeaderStyle = gloss.NewStyle().
		Foreground(p.Accent).
		Bold(true).
		PaddingTop(1)

	SubheaderStyle = gloss.NewStyle().
		Foreground(p.Muted)

	SelectedTitleStyle = gloss.NewStyle().
		Foreground(p.Accent).
		BorderLeft(true).
		BorderStyle(gloss.NormalBorder()).
		BorderForeground(p.Accent).
		PaddingLeft(1).
		Bold(true)

	SelectedDescStyle = gloss.NewStyle().
		Foreground(p.Text).
		BorderLeft(true).
		BorderStyle(gloss.NormalBorder()).
		BorderForeground(p.Accent).
		PaddingLeft(1)

	NormalTitleStyle = gloss.NewStyle().
		Foreground(p.Text).
		PaddingLeft(2)

	NormalDescStyle = gloss.NewStyle().
		Foreground(p.Muted).
		PaddingLeft(2)

	StatusStyle = gloss.NewStyle().
		Foreground(p.Accent).
		PaddingTop(1)

	StatusMutedStyle = gloss.NewStyle().
		Foreground(p.Muted).
		PaddingTop(1)

	ErrorStyle = gloss.NewStyle().
		Foreground(p.Error).
		PaddingTop(1)

	NoticeStyle = gloss.NewStyle().
		Foreground(p.Notice).
		Bold(true)

	HelpStyle = gloss.NewStyle().
		Foreground(p.Muted).
		PaddingTop(1)

	NavEnabledStyle = gloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	NavDisabledStyle = gloss.NewStyle().
		Foreground(p.Subtle)

	PanelStyle = gloss.NewStyle().
		Border(gloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Foreground(p.Text).
		Padding(0, 1)

	PanelActiveStyle = gloss.NewStyle().
		Foreground(p.Accent).
		Bold(true).
		Underline(true)

	ReaderLoadingStyle = gloss.NewStyle().
		Foreground(p.Accent).
		Padding(2).
		Align(gloss.Center)

	PromptStyle = gloss.NewStyle().
		Foreground(p.Accent)

	PromptTextStyle = gloss.NewStyle().
		Foreground(p.Text)

	ResumeStyle = gloss.NewStyle().
		Foreground(p.Notice).
		PaddingTop(1)
}

// ReaderStyle is the content column style for the given width.
func ReaderStyle(width, padding int) gloss.Style {
	return gloss.NewStyle().
		Foreground(palettes[activeTheme].Text).
		Width(width).
		PaddingLeft(padding).
		PaddingRight(padding)
}

// RenderCover draws one row of a card cover: a colour block fading from the novel
// colour into a dark shade, with label in the middle cell.
func RenderCover(color, label string) string {
	from, err := colorful.Hex(color)
	if err != nil {
		from, _ = colorful.Hex(library.DefaultCoverColor)
	}
	to, _ := colorful.Hex(coverShade)

	if label == "" {
		label = " "
	}

	var out string
	for i := 0; i < coverWidth; i++ {
		t := float64(i) / float64(coverWidth-1)
		cell := " "
		if i == coverWidth/2 {
			cell = label
		}
		out += gloss.NewStyle().
			Background(gloss.Color(from.BlendLab(to, t).Hex())).
			Foreground(gloss.Color("#ffffff")).
			Bold(true).
			Render(cell)
	}
	return out
}
