package library

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"novel_shelf/utils"
)

// DataRoot is the directory all optimized documents live under.
const DataRoot = "data/optimized"

// IndexPath is the conventional index document path of a novel.
func IndexPath(novelID string) string {
	return DataRoot + "/" + novelID + "/index.json"
}

// ChapterPath is the fixed, computed chapter document path. The index is not padded.
func ChapterPath(novelID string, chapterIndex int) string {
	return DataRoot + "/" + novelID + "/chapters/" + strconv.Itoa(chapterIndex) + ".json"
}

// LoadError reports a failed document fetch: transport, HTTP status, decode or shape.
type LoadError struct {
	Path   string
	Status int // HTTP status when the server answered, 0 otherwise
	Cause  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// Fetcher retrieves a JSON document by path.
type Fetcher interface {
	FetchJSON(ctx context.Context, path string) (json.RawMessage, error)
}

// Loader fetches documents over HTTP. Every call is a single fresh round trip:
// no retries and no cache.
type Loader struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

type LoaderOption func(*Loader)

// WithHTTPClient makes the loader reuse an existing *http.Client (tests, custom transports).
func WithHTTPClient(hc *http.Client) LoaderOption {
	return func(l *Loader) { l.client = resty.NewWithClient(hc) }
}

// WithLogger sets the logger used for failure traces.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a loader resolving relative paths against baseURL.
func NewLoader(baseURL string, opts ...LoaderOption) *Loader {
	l := &Loader{
		client:  resty.New(),
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.client.SetRetryCount(0).
		SetLogger(disableLogger{}).
		SetHeader("Accept", "application/json")
	if l.baseURL != "" {
		l.client.SetBaseURL(l.baseURL)
	}
	return l
}

// BaseURL returns the origin documents are fetched from.
func (l *Loader) BaseURL() string { return l.baseURL }

// FetchJSON issues one GET for path and returns the body once it is known to be well-formed JSON.
func (l *Loader) FetchJSON(ctx context.Context, path string) (json.RawMessage, error) {
	resp, err := l.client.R().SetContext(ctx).Get(path)
	if err != nil {
		l.logger.Debug("fetch failed", "path", path, "err", err)
		return nil, &LoadError{Path: path, Cause: err}
	}
	if !resp.IsSuccess() {
		l.logger.Debug("fetch rejected", "path", path, "status", resp.StatusCode())
		return nil, &LoadError{
			Path:   path,
			Status: resp.StatusCode(),
			Cause:  fmt.Errorf("unexpected status %d", resp.StatusCode()),
		}
	}

	text, err := utils.DecodeUnicode(resp.Body())
	if err != nil {
		return nil, &LoadError{Path: path, Status: resp.StatusCode(), Cause: err}
	}
	if !json.Valid([]byte(text)) {
		return nil, &LoadError{Path: path, Status: resp.StatusCode(), Cause: fmt.Errorf("response is not valid JSON")}
	}
	return json.RawMessage(text), nil
}

// LoadIndex fetches and validates the index document of a novel.
func LoadIndex(ctx context.Context, f Fetcher, novel NovelDescriptor) (*ChapterIndexDocument, error) {
	raw, err := f.FetchJSON(ctx, novel.DataPath)
	if err != nil {
		return nil, err
	}
	return DecodeIndex(novel.DataPath, raw)
}

// LoadChapter fetches and validates one chapter document.
func LoadChapter(ctx context.Context, f Fetcher, novelID string, chapterIndex int) (*ChapterDocument, error) {
	path := ChapterPath(novelID, chapterIndex)
	raw, err := f.FetchJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	return DecodeChapter(path, chapterIndex, raw)
}

type disableLogger struct{}

func (d disableLogger) Errorf(string, ...interface{}) {}
func (d disableLogger) Warnf(string, ...interface{})  {}
func (d disableLogger) Debugf(string, ...interface{}) {}
