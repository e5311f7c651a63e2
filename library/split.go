package library

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"novel_shelf/utils"
)

// RawChapter is one element of an unsplit novel file: a JSON array of chapters.
type RawChapter struct {
	ID            any     `json:"id"`
	Title         *string `json:"title"`
	OriginalTitle *string `json:"original_title"`
	Content       *string `json:"content"`
}

// SplitResult describes the output written for one novel.
type SplitResult struct {
	NovelID  string
	Dir      string
	Chapters int
}

type indexEntry struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	ID    any    `json:"id"`
}

type indexFile struct {
	ID            string       `json:"id"`
	TotalChapters int          `json:"total_chapters"`
	Chapters      []indexEntry `json:"chapters"`
}

type chapterFile struct {
	Index   int     `json:"index"`
	Title   *string `json:"title"`
	Content string  `json:"content"`
}

// SplitAll splits every input file into outDir. Missing inputs are logged and skipped.
func SplitAll(inputs []string, outDir string, logger *slog.Logger) ([]SplitResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var results []SplitResult
	for _, in := range inputs {
		if !utils.IsJSONFile(in) {
			logger.Warn("input not found, skipping", "path", in)
			continue
		}
		logger.Info("processing", "path", in)
		res, err := SplitNovel(in, outDir)
		if err != nil {
			return results, err
		}
		logger.Info("finished", "novel", res.NovelID, "chapters", res.Chapters)
		results = append(results, res)
	}
	return results, nil
}

// SplitNovel writes <outDir>/<id>/index.json and one chapters/<i>.json per raw chapter.
// The novel id is the input file name without extension. An existing output dir is replaced.
func SplitNovel(inputPath, outDir string) (SplitResult, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return SplitResult{}, fmt.Errorf("read %s: %w", inputPath, err)
	}
	text, err := utils.DecodeText(data)
	if err != nil {
		return SplitResult{}, fmt.Errorf("decode %s: %w", inputPath, err)
	}
	var raw []RawChapter
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return SplitResult{}, fmt.Errorf("parse %s: %w", inputPath, err)
	}

	novelID := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	novelDir := filepath.Join(outDir, novelID)
	chaptersDir := filepath.Join(novelDir, "chapters")
	if err := os.RemoveAll(novelDir); err != nil {
		return SplitResult{}, fmt.Errorf("clear %s: %w", novelDir, err)
	}
	if err := os.MkdirAll(chaptersDir, 0755); err != nil {
		return SplitResult{}, fmt.Errorf("create %s: %w", chaptersDir, err)
	}

	index := indexFile{
		ID:            novelID,
		TotalChapters: len(raw),
		Chapters:      make([]indexEntry, 0, len(raw)),
	}
	for i, ch := range raw {
		title := firstNonEmpty(ch.Title, ch.OriginalTitle)

		listTitle := FallbackChapterTitle(i)
		if title != nil {
			listTitle = *title
		}
		index.Chapters = append(index.Chapters, indexEntry{Index: i, Title: listTitle, ID: ch.ID})

		content := ""
		if ch.Content != nil {
			content = FlattenHTML(*ch.Content)
		}
		out := chapterFile{Index: i, Title: title, Content: content}
		if err := writeJSON(filepath.Join(chaptersDir, fmt.Sprintf("%d.json", i)), out); err != nil {
			return SplitResult{}, err
		}
	}

	if err := writeJSON(filepath.Join(novelDir, "index.json"), index); err != nil {
		return SplitResult{}, err
	}
	return SplitResult{NovelID: novelID, Dir: novelDir, Chapters: len(raw)}, nil
}

func firstNonEmpty(candidates ...*string) *string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return c
		}
	}
	return nil
}

// FlattenHTML turns markup into newline separated paragraphs. Plain text is returned unchanged.
func FlattenHTML(content string) string {
	lower := strings.ToLower(content)
	if !strings.Contains(lower, "<p") && !strings.Contains(lower, "<br") && !strings.Contains(lower, "<div") {
		return content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("script, style, img").Remove()

	var paragraphs []string
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(paragraphs, "\n")
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
