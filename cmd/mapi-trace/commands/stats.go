package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/outlook-mapi/mapi-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsByStage    map[log.Stage]int
	EventsByCategory map[log.Category]int
	Loaders          map[string]*LoaderStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// LoaderStats holds statistics for a single loader instance.
type LoaderStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Provider   string
	Path       string
	FinalState string
	Resolved   int
	Unresolved []string
	FailKind   string
}

// CollectStats reads a trace file and aggregates its events.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByStage:    make(map[log.Stage]int),
		EventsByCategory: make(map[log.Category]int),
		Loaders:          make(map[string]*LoaderStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByStage[event.Stage]++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		ls, ok := stats.Loaders[event.LoaderID]
		if !ok {
			ls = &LoaderStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			stats.Loaders[event.LoaderID] = ls
		}
		ls.Events++
		if event.Timestamp.After(ls.LastSeen) {
			ls.LastSeen = event.Timestamp
		}
		if event.Provider != "" {
			ls.Provider = event.Provider
		}
		if event.Path != "" {
			ls.Path = event.Path
		}

		switch {
		case event.StateChange != nil:
			ls.FinalState = event.StateChange.NewState
		case event.Export != nil:
			if event.Export.Resolved {
				ls.Resolved++
			} else {
				ls.Unresolved = append(ls.Unresolved, event.Export.Name)
			}
		case event.Error != nil:
			stats.Errors++
			ls.FailKind = event.Error.Kind
		}
	}
	return stats, nil
}

// RunStats analyzes a trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== MAPI Loader Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Stage:")
	for _, stage := range []log.Stage{log.StageLifecycle, log.StageProbe, log.StageBind, log.StageResolve} {
		if count := stats.EventsByStage[stage]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", stage.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryState, log.CategoryOutcome, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Loaders: %d\n", len(stats.Loaders))
	if len(stats.Loaders) > 0 {
		type loaderInfo struct {
			id    string
			stats *LoaderStats
		}
		loaders := make([]loaderInfo, 0, len(stats.Loaders))
		for id, ls := range stats.Loaders {
			loaders = append(loaders, loaderInfo{id, ls})
		}
		sort.Slice(loaders, func(i, j int) bool {
			return loaders[i].stats.FirstSeen.Before(loaders[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, l := range loaders {
			duration := l.stats.LastSeen.Sub(l.stats.FirstSeen).Round(time.Microsecond)
			fmt.Fprintf(w, "  [%s] %d events, %s, state %s\n",
				shortenID(l.id), l.stats.Events, duration, orDash(l.stats.FinalState))
			if l.stats.Provider != "" {
				fmt.Fprintf(w, "           Provider: %s (%s)\n", l.stats.Provider, orDash(l.stats.Path))
			}
			if l.stats.Resolved > 0 || len(l.stats.Unresolved) > 0 {
				fmt.Fprintf(w, "           Exports: %d resolved, %d unresolved\n", l.stats.Resolved, len(l.stats.Unresolved))
			}
			for _, name := range l.stats.Unresolved {
				fmt.Fprintf(w, "             - %s\n", name)
			}
			if l.stats.FailKind != "" {
				fmt.Fprintf(w, "           Failure: %s\n", l.stats.FailKind)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
