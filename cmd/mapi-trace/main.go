// Command mapi-trace views and analyzes MAPI loader trace files.
//
// Trace files are written by pkg/log.FileLogger, for example by running
// mapi-probe with -trace or any program with MAPI_TRACE_FILE set.
//
// Usage:
//
//	mapi-trace <command> [flags] <file.mtrace>
//
// Commands:
//
//	view     View trace in human-readable format
//	export   Export trace to JSON lines or CSV
//	filter   Filter trace and write to a new file
//	stats    Show statistics about the trace
//
// Examples:
//
//	# Show only unresolved exports
//	mapi-trace view -stage resolve load.mtrace
//
//	# Keep the events of one loader
//	mapi-trace filter -loader-id 3f2a9c1e-... -o one.mtrace load.mtrace
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/outlook-mapi/mapi-go/cmd/mapi-trace/commands"
)

const usage = `mapi-trace - MAPI Loader Trace Analyzer

Usage:
  mapi-trace <command> [flags] <file.mtrace>

Commands:
  view     View trace in human-readable format
  export   Export trace to JSON lines or CSV
  filter   Filter trace and write to a new file
  stats    Show statistics about the trace

Use "mapi-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func newFlagSet(name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "mapi-trace %s - %s\n\nUsage:\n  mapi-trace %s [flags] <file.mtrace>\n\nFlags:\n", name, synopsis, name)
		fs.PrintDefaults()
	}
	return fs
}

// tracePath parses args and returns the single positional trace path.
func tracePath(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := newFlagSet("view", "View trace in human-readable format")
	stage := fs.String("stage", "", "Filter by stage (lifecycle, probe, bind, resolve)")
	category := fs.String("category", "", "Filter by category (state, outcome, error)")
	export := fs.String("export", "", "Filter by export name")
	path := tracePath(fs, args)

	filter := commands.ViewFilter{Export: *export}
	if *stage != "" {
		s, err := commands.ParseStageFlag(*stage)
		if err != nil {
			fail(err)
		}
		filter.Stage = &s
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := newFlagSet("export", "Export trace to JSON lines or CSV")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path := tracePath(fs, args)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := newFlagSet("filter", "Filter trace and write to a new file")
	output := fs.String("o", "", "Output file (required)")
	loaderID := fs.String("loader-id", "", "Filter by loader ID")
	provider := fs.String("provider", "", "Filter by provider (outlook, system, path)")
	export := fs.String("export", "", "Filter by export name")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	stage := fs.String("stage", "", "Filter by stage (lifecycle, probe, bind, resolve)")
	category := fs.String("category", "", "Filter by category (state, outcome, error)")
	path := tracePath(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		LoaderID:  *loaderID,
		Provider:  *provider,
		Export:    *export,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Stage:     *stage,
		Category:  *category,
	}
	if err := commands.RunFilter(path, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := newFlagSet("stats", "Show statistics about the trace")
	path := tracePath(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
