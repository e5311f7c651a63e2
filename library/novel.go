package library

import (
	"strings"
	"unicode/utf8"
)

// NovelDescriptor is one catalog entry. It is defined at start-up and never persisted.
type NovelDescriptor struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	DataPath    string `yaml:"data_path"`
	CoverColor  string `yaml:"cover_color"`
	CoverImage  string `yaml:"cover_image,omitempty"`
}

// Initial returns the upper-cased first letter of the title, used by the cover fallback.
func (n NovelDescriptor) Initial() string {
	title := strings.TrimSpace(n.Title)
	if title == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(title)
	return strings.ToUpper(string(r))
}

// HasCoverImage reports whether the descriptor points at a cover asset.
func (n NovelDescriptor) HasCoverImage() bool {
	return strings.TrimSpace(n.CoverImage) != ""
}
