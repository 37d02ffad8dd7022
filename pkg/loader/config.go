package loader

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/caarlos0/env/v11"

	"github.com/outlook-mapi/mapi-go/pkg/log"
)

// Config configures a Loader.
type Config struct {
	// LibraryPath binds this library instead of running platform detection.
	LibraryPath string

	// PreferOutlook tries Outlook's own MAPI library before the system stub.
	PreferOutlook bool

	// ExportsVersion selects the embedded export manifest.
	ExportsVersion string

	// DecorateSymbols looks exports up by their stdcall-decorated names.
	// Defaults to true on 32-bit x86.
	DecorateSymbols bool

	// TraceFile, when set, appends loader events to a trace file.
	TraceFile string

	// Probe overrides the presence probe. If nil, DefaultProbe is used.
	Probe Probe

	// Binder overrides how the library is opened. If nil, SystemBinder is used.
	Binder Binder

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives structured loader events. If nil, events are dropped.
	EventLogger log.Logger
}

// envConfig holds the Config fields settable from the environment.
// Unset variables leave the prefilled value alone.
type envConfig struct {
	LibraryPath    string `env:"MAPI_LIBRARY_PATH"`
	PreferOutlook  bool   `env:"MAPI_PREFER_OUTLOOK"`
	ExportsVersion string `env:"MAPI_EXPORTS_VERSION"`
	TraceFile      string `env:"MAPI_TRACE_FILE"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PreferOutlook:   true,
		ExportsVersion:  CurrentExportsVersion,
		DecorateSymbols: runtime.GOARCH == "386",
	}
}

// ConfigFromEnv returns DefaultConfig overlaid with MAPI_* environment variables.
func ConfigFromEnv() (Config, error) {
	return ApplyEnv(DefaultConfig())
}

// ApplyEnv overlays the MAPI_* environment variables that are set onto cfg.
func ApplyEnv(cfg Config) (Config, error) {
	ec := envConfig{
		LibraryPath:    cfg.LibraryPath,
		PreferOutlook:  cfg.PreferOutlook,
		ExportsVersion: cfg.ExportsVersion,
		TraceFile:      cfg.TraceFile,
	}
	if err := env.Parse(&ec); err != nil {
		return cfg, fmt.Errorf("%w: parse env: %w", ErrInvalidConfig, err)
	}
	cfg.LibraryPath = ec.LibraryPath
	cfg.PreferOutlook = ec.PreferOutlook
	cfg.ExportsVersion = ec.ExportsVersion
	cfg.TraceFile = ec.TraceFile
	return cfg, nil
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if c.ExportsVersion == "" {
		return fmt.Errorf("%w: empty exports version", ErrInvalidConfig)
	}
	if _, err := LoadExports(c.ExportsVersion); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
