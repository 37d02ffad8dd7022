package proptag

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tags.yaml
var catalogYAML []byte

// RawCatalog is the YAML form of a tag catalog.
type RawCatalog struct {
	Version int             `yaml:"version"`
	Tags    []RawCatalogTag `yaml:"tags"`
}

// RawCatalogTag is a single catalog entry as written in YAML.
type RawCatalogTag struct {
	Name        string `yaml:"name"`
	GoName      string `yaml:"go"`
	ID          uint16 `yaml:"id"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// CatalogEntry is a validated catalog entry.
type CatalogEntry struct {
	Name        string
	GoName      string
	Tag         PropTag
	Description string
}

// Catalog is an immutable set of named tags.
type Catalog struct {
	entries []CatalogEntry
	byName  map[string]PropTag
	byTag   map[PropTag]string
}

// ParseCatalog decodes and validates a YAML catalog. Every entry must have a
// unique name and tag and a type inside the taxonomy.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw RawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing tag catalog: %w", err)
	}

	c := &Catalog{
		byName: make(map[string]PropTag, len(raw.Tags)),
		byTag:  make(map[PropTag]string, len(raw.Tags)),
	}
	for i, rt := range raw.Tags {
		if rt.Name == "" {
			return nil, fmt.Errorf("tag catalog entry %d: missing name", i)
		}
		t, err := ParsePropertyType(rt.Type)
		if err != nil {
			return nil, fmt.Errorf("tag catalog entry %s: %w", rt.Name, err)
		}
		tag := FromParts(PropertyID(rt.ID), t)

		name := strings.ToUpper(rt.Name)
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("tag catalog entry %s: duplicate name", rt.Name)
		}
		if other, dup := c.byTag[tag]; dup {
			return nil, fmt.Errorf("tag catalog entry %s: tag %s already named %s", rt.Name, tag.Hex(), other)
		}
		c.byName[name] = tag
		c.byTag[tag] = rt.Name
		c.entries = append(c.entries, CatalogEntry{
			Name:        rt.Name,
			GoName:      rt.GoName,
			Tag:         tag,
			Description: rt.Description,
		})
	}

	sort.Slice(c.entries, func(i, j int) bool {
		return c.entries[i].Tag < c.entries[j].Tag
	})
	return c, nil
}

// Entries returns the entries ordered by tag value.
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup resolves a tag name. Names are matched case-insensitively.
func (c *Catalog) Lookup(name string) (PropTag, bool) {
	tag, ok := c.byName[strings.ToUpper(strings.TrimSpace(name))]
	return tag, ok
}

// NameOf returns the catalog name of a tag.
func (c *Catalog) NameOf(tag PropTag) (string, bool) {
	name, ok := c.byTag[tag]
	return name, ok
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
	defaultCatalogErr  error
)

// DefaultCatalog returns the embedded catalog, parsing it on first use.
func DefaultCatalog() (*Catalog, error) {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = ParseCatalog(catalogYAML)
	})
	return defaultCatalog, defaultCatalogErr
}

// Lookup resolves a name against the embedded catalog.
func Lookup(name string) (PropTag, bool) {
	c, err := DefaultCatalog()
	if err != nil {
		return 0, false
	}
	return c.Lookup(name)
}

// NameOf returns the embedded catalog name of a tag.
func NameOf(tag PropTag) (string, bool) {
	c, err := DefaultCatalog()
	if err != nil {
		return "", false
	}
	return c.NameOf(tag)
}
