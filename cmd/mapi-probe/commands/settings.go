package commands

import (
	"github.com/outlook-mapi/mapi-go/internal/config"
	"github.com/outlook-mapi/mapi-go/pkg/loader"
)

// Options holds the command-line overrides. A nil field was not given.
type Options struct {
	ConfigPath     string
	LibraryPath    *string
	ExportsVersion *string
	TraceFile      *string
	PreferOutlook  *bool
	LogLevel       *string
	JSON           *bool
}

// Resolve layers settings as defaults, then the config file, then MAPI_*
// environment variables, then command-line flags.
func Resolve(opts Options) (config.Settings, error) {
	s := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if s, err = config.LoadFile(opts.ConfigPath, s); err != nil {
			return config.Settings{}, err
		}
	}

	cfg, err := loader.ApplyEnv(s.Loader)
	if err != nil {
		return config.Settings{}, err
	}
	s.Loader = cfg

	if opts.LibraryPath != nil {
		s.Loader.LibraryPath = *opts.LibraryPath
	}
	if opts.ExportsVersion != nil {
		s.Loader.ExportsVersion = *opts.ExportsVersion
	}
	if opts.TraceFile != nil {
		s.Loader.TraceFile = *opts.TraceFile
	}
	if opts.PreferOutlook != nil {
		s.Loader.PreferOutlook = *opts.PreferOutlook
	}
	if opts.LogLevel != nil {
		s.LogLevel = *opts.LogLevel
	}
	if opts.JSON != nil {
		s.JSON = *opts.JSON
	}

	if err := s.Loader.Validate(); err != nil {
		return config.Settings{}, err
	}
	if _, err := ParseLogLevel(s.LogLevel); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}
