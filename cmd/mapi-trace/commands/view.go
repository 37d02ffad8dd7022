// Package commands implements the mapi-trace CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/outlook-mapi/mapi-go/pkg/log"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Stage    *log.Stage
	Category *log.Category
	Export   string
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{Stage: f.Stage, Category: f.Category, Export: f.Export}
}

// RunView prints every matching event of a trace file in human-readable form.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [loader:%s] %-9s %s\n", ts, shortenID(event.LoaderID), event.Stage, eventLabel(event))

	if event.Provider != "" || event.Path != "" {
		fmt.Fprintf(w, "  Provider: %s  Path: %s\n", orDash(event.Provider), orDash(event.Path))
	}

	switch {
	case event.StateChange != nil:
		sc := event.StateChange
		if sc.OldState != "" {
			fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
		} else {
			fmt.Fprintf(w, "  -> %s\n", sc.NewState)
		}
		if sc.Reason != "" {
			fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
		}
	case event.Probe != nil:
		fmt.Fprintf(w, "  Installed: %v  Duration: %s\n", event.Probe.Installed, formatDuration(event.Probe.Duration))
	case event.Bind != nil:
		fmt.Fprintf(w, "  Exports: v%s  Resolved: %d  Duration: %s\n",
			event.Bind.ExportsVersion, event.Bind.Resolved, formatDuration(event.Bind.Duration))
		if len(event.Bind.Missing) > 0 {
			fmt.Fprintf(w, "  Missing: %s\n", strings.Join(event.Bind.Missing, ", "))
		}
	case event.Export != nil:
		e := event.Export
		status := "resolved"
		if !e.Resolved {
			status = "NOT FOUND"
		}
		fmt.Fprintf(w, "  %s", e.Name)
		if e.Symbol != "" && e.Symbol != e.Name {
			fmt.Fprintf(w, " (%s)", e.Symbol)
		}
		if e.Required {
			fmt.Fprint(w, " required")
		}
		fmt.Fprintf(w, ": %s\n", status)
	case event.Error != nil:
		fmt.Fprintf(w, "  Kind: %s\n", orDash(event.Error.Kind))
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	}

	fmt.Fprintln(w)
}

func eventLabel(event log.Event) string {
	switch {
	case event.StateChange != nil:
		return "State"
	case event.Probe != nil:
		return "Probe"
	case event.Bind != nil:
		return "Bind"
	case event.Export != nil:
		return "Export"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenID returns the first 8 characters of a loader ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseStageFlag parses a stage name (case-insensitive).
func ParseStageFlag(s string) (log.Stage, error) {
	switch strings.ToLower(s) {
	case "lifecycle":
		return log.StageLifecycle, nil
	case "probe":
		return log.StageProbe, nil
	case "bind":
		return log.StageBind, nil
	case "resolve":
		return log.StageResolve, nil
	default:
		return 0, fmt.Errorf("invalid stage: %s (must be lifecycle, probe, bind, or resolve)", s)
	}
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "state":
		return log.CategoryState, nil
	case "outcome":
		return log.CategoryOutcome, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be state, outcome, or error)", s)
	}
}
