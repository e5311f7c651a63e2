package library

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"novel_shelf/utils"
)

// ChapterSummary is one row of a novel's index document.
type ChapterSummary struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// ChapterIndexDocument is the per-novel manifest.
type ChapterIndexDocument struct {
	ID            string           `json:"id"`
	TotalChapters int              `json:"total_chapters"`
	Chapters      []ChapterSummary `json:"chapters"`
}

// ChapterDocument is the text of one chapter. Content paragraphs are newline separated.
type ChapterDocument struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// FallbackChapterTitle is the label used when a chapter carries no title.
func FallbackChapterTitle(index int) string {
	return fmt.Sprintf("Chapter %d", index+1)
}

// wire shapes: pointers distinguish "absent/null" from zero values.
type rawIndex struct {
	ID            *string           `json:"id"`
	TotalChapters *int              `json:"total_chapters"`
	Chapters      []rawChapterEntry `json:"chapters"`
}

type rawChapterEntry struct {
	Index *int    `json:"index"`
	Title *string `json:"title"`
}

type rawChapter struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func decodeStrict(raw []byte, v any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("expected a JSON object")
	}
	return json.Unmarshal(trimmed, v)
}

// DecodeIndex validates and decodes an index document fetched from path.
// A missing chapters array yields an empty list; wrong field types yield a LoadError.
func DecodeIndex(path string, raw []byte) (*ChapterIndexDocument, error) {
	var r rawIndex
	if err := decodeStrict(raw, &r); err != nil {
		return nil, &LoadError{Path: path, Cause: fmt.Errorf("invalid index document: %w", err)}
	}

	doc := &ChapterIndexDocument{Chapters: make([]ChapterSummary, 0, len(r.Chapters))}
	if r.ID != nil {
		doc.ID = *r.ID
	}
	for i, entry := range r.Chapters {
		if entry.Index == nil {
			return nil, &LoadError{Path: path, Cause: fmt.Errorf("chapter entry %d has no index", i)}
		}
		if *entry.Index < 0 {
			return nil, &LoadError{Path: path, Cause: fmt.Errorf("chapter entry %d has negative index %d", i, *entry.Index)}
		}
		title := ""
		if entry.Title != nil {
			title = strings.TrimSpace(*entry.Title)
		}
		if title == "" {
			title = FallbackChapterTitle(*entry.Index)
		}
		doc.Chapters = append(doc.Chapters, ChapterSummary{Index: *entry.Index, Title: title})
	}
	if r.TotalChapters != nil {
		doc.TotalChapters = *r.TotalChapters
	} else {
		doc.TotalChapters = len(doc.Chapters)
	}
	return doc, nil
}

// DecodeChapter validates and decodes the chapter document for chapterIndex.
func DecodeChapter(path string, chapterIndex int, raw []byte) (*ChapterDocument, error) {
	var r rawChapter
	if err := decodeStrict(raw, &r); err != nil {
		return nil, &LoadError{Path: path, Cause: fmt.Errorf("invalid chapter document: %w", err)}
	}
	if r.Content == nil {
		return nil, &LoadError{Path: path, Cause: fmt.Errorf("chapter document has no content")}
	}
	doc := &ChapterDocument{Content: *r.Content}
	if r.Title != nil {
		doc.Title = strings.TrimSpace(*r.Title)
	}
	if doc.Title == "" {
		doc.Title = FallbackChapterTitle(chapterIndex)
	}
	return doc, nil
}

// Paragraphs splits chapter content into paragraphs: one per non-blank line, source order kept.
func Paragraphs(content string) []string {
	lines := utils.SplitLines(content)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Reversed returns a new slice with the chapters in the opposite order.
func Reversed(chapters []ChapterSummary) []ChapterSummary {
	out := make([]ChapterSummary, len(chapters))
	for i, ch := range chapters {
		out[len(chapters)-1-i] = ch
	}
	return out
}
