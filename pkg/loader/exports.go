package loader

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed exports/*.yaml
var exportsFS embed.FS

// CurrentExportsVersion is the export manifest used by default.
const CurrentExportsVersion = "1"

// ExportManifest is a versioned list of entry points expected in the
// MAPI library.
type ExportManifest struct {
	Version     string   `yaml:"version"`
	Description string   `yaml:"description"`
	Exports     []Export `yaml:"exports"`
}

// Export describes one exported entry point.
type Export struct {
	Name     string `yaml:"name"`
	ArgBytes int    `yaml:"arg_bytes"`
	Required bool   `yaml:"required"`
}

// Symbol returns the name to look up, decorated when decorate is set.
func (e Export) Symbol(decorate bool) string {
	if decorate {
		return DecorateName(e.Name, e.ArgBytes)
	}
	return e.Name
}

// Required returns the names of all required exports in manifest order.
func (m *ExportManifest) Required() []string {
	var out []string
	for _, e := range m.Exports {
		if e.Required {
			out = append(out, e.Name)
		}
	}
	return out
}

// Lookup returns the export with the given name.
func (m *ExportManifest) Lookup(name string) (Export, bool) {
	for _, e := range m.Exports {
		if e.Name == name {
			return e, true
		}
	}
	return Export{}, false
}

func (m *ExportManifest) validate() error {
	if len(m.Exports) == 0 {
		return fmt.Errorf("manifest %q lists no exports", m.Version)
	}
	seen := make(map[string]bool, len(m.Exports))
	for i, e := range m.Exports {
		if e.Name == "" {
			return fmt.Errorf("export %d: missing name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("export %s: duplicate name", e.Name)
		}
		if e.ArgBytes < 0 || e.ArgBytes%4 != 0 {
			return fmt.Errorf("export %s: arg_bytes %d is not a multiple of 4", e.Name, e.ArgBytes)
		}
		seen[e.Name] = true
	}
	return nil
}

var (
	manifestMu    sync.RWMutex
	manifestCache = make(map[string]*ExportManifest)
)

// LoadExports loads the embedded export manifest for a version.
func LoadExports(ver string) (*ExportManifest, error) {
	manifestMu.RLock()
	if m, ok := manifestCache[ver]; ok {
		manifestMu.RUnlock()
		return m, nil
	}
	manifestMu.RUnlock()

	data, err := exportsFS.ReadFile("exports/" + ver + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExportsVersion, ver)
	}
	m, err := ParseExports(data)
	if err != nil {
		return nil, fmt.Errorf("exports %q: %w", ver, err)
	}

	manifestMu.Lock()
	manifestCache[ver] = m
	manifestMu.Unlock()

	return m, nil
}

// ParseExports decodes and validates a YAML export manifest.
func ParseExports(data []byte) (*ExportManifest, error) {
	var m ExportManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing export manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// AvailableExports returns the versions of all embedded export manifests.
func AvailableExports() ([]string, error) {
	entries, err := exportsFS.ReadDir("exports")
	if err != nil {
		return nil, fmt.Errorf("reading exports directory: %w", err)
	}

	var versions []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			versions = append(versions, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(versions)
	return versions, nil
}
