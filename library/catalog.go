package library

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// ErrNotFound is returned when a novel id is not part of the catalog.
var ErrNotFound = errors.New("novel not found")

// DefaultCoverColor is used when a catalog entry carries no colour.
const DefaultCoverColor = "#6b7280"

// Catalog is the immutable registry of supported novels, in display order.
type Catalog struct {
	novels []NovelDescriptor
	byID   map[string]int
}

type catalogFile struct {
	Novels []NovelDescriptor `yaml:"novels"`
}

// DefaultCatalog parses the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(builtinCatalog)
}

// LoadCatalog reads a YAML catalog from disk. An empty path yields the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewCatalog(f.Novels...)
}

// NewCatalog builds a catalog from descriptors. Ids must be unique and non-empty.
// A missing data path defaults to the optimized index convention.
func NewCatalog(novels ...NovelDescriptor) (*Catalog, error) {
	c := &Catalog{
		novels: make([]NovelDescriptor, 0, len(novels)),
		byID:   make(map[string]int, len(novels)),
	}
	for i, n := range novels {
		n.ID = strings.TrimSpace(n.ID)
		if n.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: empty id", i)
		}
		if _, dup := c.byID[n.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, n.ID)
		}
		if strings.TrimSpace(n.DataPath) == "" {
			n.DataPath = IndexPath(n.ID)
		}
		if strings.TrimSpace(n.CoverColor) == "" {
			n.CoverColor = DefaultCoverColor
		}
		c.byID[n.ID] = len(c.novels)
		c.novels = append(c.novels, n)
	}
	return c, nil
}

// FindByID looks a novel up by id.
func (c *Catalog) FindByID(id string) (NovelDescriptor, bool) {
	if c == nil {
		return NovelDescriptor{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return NovelDescriptor{}, false
	}
	return c.novels[i], true
}

// Lookup is FindByID with an ErrNotFound error for unknown ids.
func (c *Catalog) Lookup(id string) (NovelDescriptor, error) {
	n, ok := c.FindByID(id)
	if !ok {
		return NovelDescriptor{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return n, nil
}

// All returns a copy of the catalog entries in display order.
func (c *Catalog) All() []NovelDescriptor {
	if c == nil {
		return nil
	}
	out := make([]NovelDescriptor, len(c.novels))
	copy(out, c.novels)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.novels)
}
