package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrCorrupt marks stored data that could not be decoded.
var ErrCorrupt = errors.New("stored data is corrupted")

// ReadingProgress is the last chapter visited in one novel.
type ReadingProgress struct {
	ChapterIndex      int    `json:"chapterIndex"`
	ChapterTitle      string `json:"chapterTitle"`
	LastReadTimestamp int64  `json:"lastReadTimestamp"` // unix milliseconds
}

// LastRead returns the timestamp as a time.Time.
func (p ReadingProgress) LastRead() time.Time {
	return time.UnixMilli(p.LastReadTimestamp)
}

// decodeHistory parses the novel_history blob. Entries with a negative chapter are dropped.
func decodeHistory(blob string) (map[string]ReadingProgress, error) {
	history := make(map[string]ReadingProgress)
	if blob == "" {
		return history, nil
	}
	var raw map[string]ReadingProgress
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return history, fmt.Errorf("%w: novel_history: %v", ErrCorrupt, err)
	}
	for id, p := range raw {
		if id == "" || p.ChapterIndex < 0 {
			continue
		}
		history[id] = p
	}
	return history, nil
}

func encodeHistory(history map[string]ReadingProgress) (string, error) {
	data, err := json.Marshal(history)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
