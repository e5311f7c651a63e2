package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"novel_shelf/utils"
)

func TestRenderCoverWidth(t *testing.T) {
	for _, color := range []string{"#ef4444", "not-a-colour", ""} {
		if w := lipgloss.Width(RenderCover(color, "N")); w != coverWidth {
			t.Errorf("RenderCover(%q) width = %d, want %d", color, w, coverWidth)
		}
	}
}

func TestApplyThemeUnknownFallsBack(t *testing.T) {
	ApplyTheme(utils.Theme("sepia"))
	if CurrentTheme() != utils.ThemeLight {
		t.Fatalf("theme = %q", CurrentTheme())
	}
	ApplyTheme(utils.ThemeDark)
	if CurrentTheme() != utils.ThemeDark {
		t.Fatalf("theme = %q", CurrentTheme())
	}
	ApplyTheme(utils.ThemeLight)
}
