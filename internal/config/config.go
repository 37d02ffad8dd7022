// Package config loads mapi-probe settings from a TOML file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/outlook-mapi/mapi-go/pkg/loader"
)

// Settings is everything mapi-probe can read from its config file.
type Settings struct {
	Loader   loader.Config
	LogLevel string
	JSON     bool
}

// fileConfig maps config.toml keys.
type fileConfig struct {
	LibraryPath    string `toml:"library_path"`
	PreferOutlook  bool   `toml:"prefer_outlook"`
	ExportsVersion string `toml:"exports_version"`
	TraceFile      string `toml:"trace_file"`
	LogLevel       string `toml:"log_level"`
	JSON           bool   `toml:"json"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Loader:   loader.DefaultConfig(),
		LogLevel: "warn",
	}
}

// LoadFile overlays the keys defined in a TOML file onto base.
// Keys absent from the file keep their base value. Values are not
// validated here since later layers may still override them.
func LoadFile(path string, base Settings) (Settings, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Settings{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	cfg := base
	if meta.IsDefined("library_path") {
		cfg.Loader.LibraryPath = strings.TrimSpace(raw.LibraryPath)
	}
	if meta.IsDefined("prefer_outlook") {
		cfg.Loader.PreferOutlook = raw.PreferOutlook
	}
	if meta.IsDefined("exports_version") {
		cfg.Loader.ExportsVersion = strings.TrimSpace(raw.ExportsVersion)
	}
	if meta.IsDefined("trace_file") {
		cfg.Loader.TraceFile = strings.TrimSpace(raw.TraceFile)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}
	if meta.IsDefined("json") {
		cfg.JSON = raw.JSON
	}

	return cfg, nil
}
