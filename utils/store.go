package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a string key/value store persisted on the local machine.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ---------------- MemoryStore ----------------

// MemoryStore keeps values for the life of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// ---------------- FileStore ----------------

// FileStore persists all keys as one JSON object file. Every Set rewrites the file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by path. The file is created on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStorePath is prefs.json under the config dir.
func DefaultStorePath(backend string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if backend == StoreBackendSQLite {
		return filepath.Join(dir, "prefs.db"), nil
	}
	return filepath.Join(dir, "prefs.json"), nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, err
	}
	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return values, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set writes key. A corrupted file is replaced rather than blocking every later write.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		if !errors.Is(err, ErrCorrupt) {
			return err
		}
		values = make(map[string]string)
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// OpenStore opens the backend named in cfg.
func OpenStore(cfg StoreConfig) (Store, func() error, error) {
	noop := func() error { return nil }
	backend := cfg.Backend
	if backend == "" {
		backend = StoreBackendFile
	}
	if backend == StoreBackendMemory {
		return NewMemoryStore(), noop, nil
	}

	path := cfg.Path
	if path == "" {
		p, err := DefaultStorePath(backend)
		if err != nil {
			return nil, noop, err
		}
		path = p
	}

	switch backend {
	case StoreBackendFile:
		return NewFileStore(path), noop, nil
	case StoreBackendSQLite:
		s, err := OpenSQLiteStore(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", backend)
	}
}
