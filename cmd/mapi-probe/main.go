// Command mapi-probe reports whether the MAPI subsystem is installed and
// whether its entry points bind.
//
// Settings are read from defaults, then an optional TOML file, then
// MAPI_* environment variables, then flags.
//
// Usage:
//
//	mapi-probe [flags]
//
// Examples:
//
//	# Probe with platform detection
//	mapi-probe
//
//	# Bind a specific library and keep a trace
//	mapi-probe -library "C:\Program Files\Microsoft Office\root\Office16\olmapi32.dll" -trace probe.mtrace
//
//	# Machine-readable report
//	mapi-probe -json
//
// Exit status is 0 when bound, 2 when not installed, 3 when the library
// failed to bind and 1 otherwise.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/outlook-mapi/mapi-go/cmd/mapi-probe/commands"
	"github.com/outlook-mapi/mapi-go/pkg/loader"
	"github.com/outlook-mapi/mapi-go/pkg/log"
)

func main() {
	fs := flag.NewFlagSet("mapi-probe", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML config file")
	library := fs.String("library", "", "Bind this library instead of detecting one")
	exports := fs.String("exports", "", "Export manifest version")
	trace := fs.String("trace", "", "Write loader events to this .mtrace file")
	preferOutlook := fs.Bool("prefer-outlook", true, "Try Outlook's MAPI library before the system stub")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	asJSON := fs.Bool("json", false, "Print the report as JSON")
	listExports := fs.Bool("list-exports", false, "Print the export manifest and exit")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "mapi-probe - MAPI Subsystem Probe\n\nUsage:\n  mapi-probe [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(commands.ExitOther)
	}

	opts := commands.Options{ConfigPath: *configPath}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "library":
			opts.LibraryPath = library
		case "exports":
			opts.ExportsVersion = exports
		case "trace":
			opts.TraceFile = trace
		case "prefer-outlook":
			opts.PreferOutlook = preferOutlook
		case "log-level":
			opts.LogLevel = logLevel
		case "json":
			opts.JSON = asJSON
		}
	})

	settings, err := commands.Resolve(opts)
	if err != nil {
		fail(err)
	}

	if *listExports {
		if err := commands.ListExports(os.Stdout, settings.Loader.ExportsVersion); err != nil {
			fail(err)
		}
		return
	}

	level, _ := commands.ParseLogLevel(settings.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	settings.Loader.Logger = logger
	if level <= slog.LevelDebug {
		settings.Loader.EventLogger = log.NewSlogAdapter(logger)
	}

	l, err := loader.New(settings.Loader)
	if err != nil {
		fail(err)
	}

	code, err := commands.Run(l, os.Stdout, settings.JSON)
	if cerr := l.Close(); cerr != nil {
		logger.Warn("closing trace file", "error", cerr)
	}
	if err != nil {
		fail(err)
	}
	os.Exit(code)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(commands.ExitOther)
}
