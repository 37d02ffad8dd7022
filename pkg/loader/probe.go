package loader

import (
	"errors"
	"fmt"
	"os"
)

// Installation providers.
const (
	ProviderPath    = "path"
	ProviderOutlook = "outlook"
	ProviderSystem  = "system"
)

// Installation identifies a located MAPI library.
type Installation struct {
	// Provider names the probe that found the library.
	Provider string

	// Path is the full path of the library to bind.
	Path string

	// Client is the registered mail client name, when known.
	Client string
}

// Probe locates a MAPI installation without loading any of its code.
// Any non-nil error means "not installed".
type Probe interface {
	Locate() (Installation, error)
}

// FuncProbe adapts an ordinary function to the Probe interface.
type FuncProbe func() (Installation, error)

// Locate calls f.
func (f FuncProbe) Locate() (Installation, error) { return f() }

// PathProbe reports an explicitly configured library path as installed
// when a regular file exists there.
type PathProbe struct {
	Path string
}

// Locate stats the configured path.
func (p PathProbe) Locate() (Installation, error) {
	if p.Path == "" {
		return Installation{}, fmt.Errorf("%w: empty library path", ErrNotInstalled)
	}
	if err := checkFile(p.Path); err != nil {
		return Installation{}, err
	}
	return Installation{Provider: ProviderPath, Path: p.Path}, nil
}

// ChainProbe tries each probe in order and returns the first installation found.
type ChainProbe []Probe

// Locate runs the chain. When every probe fails the returned error joins
// all of their causes.
func (c ChainProbe) Locate() (Installation, error) {
	if len(c) == 0 {
		return Installation{}, fmt.Errorf("%w: no probes configured", ErrNotInstalled)
	}
	var errs []error
	for _, p := range c {
		inst, err := p.Locate()
		if err == nil {
			return inst, nil
		}
		errs = append(errs, err)
	}
	return Installation{}, errors.Join(errs...)
}

// DefaultProbe builds the probe a Loader uses when Config.Probe is nil.
// An explicit LibraryPath replaces platform detection entirely.
func DefaultProbe(cfg Config) Probe {
	if cfg.LibraryPath != "" {
		return PathProbe{Path: cfg.LibraryPath}
	}
	return platformProbe(cfg.PreferOutlook)
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotInstalled, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotInstalled, path)
	}
	return nil
}
