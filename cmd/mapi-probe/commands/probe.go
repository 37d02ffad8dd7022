// Package commands implements the mapi-probe checks.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/outlook-mapi/mapi-go/pkg/loader"
)

// Exit codes returned by Run.
const (
	ExitBound        = 0
	ExitOther        = 1
	ExitNotInstalled = 2
	ExitBindError    = 3
)

// Report is the outcome of one probe run.
type Report struct {
	LoaderID       string       `json:"loader_id"`
	Installed      bool         `json:"installed"`
	State          string       `json:"state"`
	Provider       string       `json:"provider,omitempty"`
	Path           string       `json:"path,omitempty"`
	Client         string       `json:"client,omitempty"`
	ExportsVersion string       `json:"exports_version,omitempty"`
	EntryPoints    []EntryPoint `json:"entry_points,omitempty"`
	Missing        []string     `json:"missing,omitempty"`
	Failure        string       `json:"failure"`
	Message        string       `json:"message"`
	Error          string       `json:"error,omitempty"`
}

// EntryPoint is a resolved export as reported.
type EntryPoint struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Addr   string `json:"addr"`
}

// Probe checks for the subsystem and then loads it through l.
func Probe(l *loader.Loader) Report {
	r := Report{
		LoaderID:  l.ID(),
		Installed: l.IsInstalled(),
	}

	h, err := l.Load()
	r.State = l.State().String()
	kind := loader.Classify(err)
	r.Failure = kind.String()
	r.Message = kind.Message()
	if err != nil {
		r.Error = err.Error()
		return r
	}

	inst := h.Installation()
	r.Provider = inst.Provider
	r.Path = inst.Path
	r.Client = inst.Client
	r.ExportsVersion = h.ExportsVersion()
	for _, ep := range h.EntryPoints() {
		r.EntryPoints = append(r.EntryPoints, EntryPoint{
			Name:   ep.Name,
			Symbol: ep.Symbol,
			Addr:   fmt.Sprintf("0x%X", ep.Addr),
		})
	}
	r.Missing = h.Missing()
	return r
}

// ExitCode maps the report to a process exit code.
func (r Report) ExitCode() int {
	switch r.Failure {
	case loader.FailureNone.String():
		return ExitBound
	case loader.FailureNotInstalled.String():
		return ExitNotInstalled
	case loader.FailureBind.String():
		return ExitBindError
	default:
		return ExitOther
	}
}

// Run probes through l, writes the report to w and returns the exit code.
func Run(l *loader.Loader, w io.Writer, asJSON bool) (int, error) {
	r := Probe(l)
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return ExitOther, fmt.Errorf("encode report: %w", err)
		}
		return r.ExitCode(), nil
	}
	printReport(w, r)
	return r.ExitCode(), nil
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintln(w, "=== MAPI Subsystem Probe ===")
	fmt.Fprintf(w, "Loader:     %s\n", r.LoaderID)
	fmt.Fprintf(w, "Installed:  %s\n", yesNo(r.Installed))
	fmt.Fprintf(w, "State:      %s\n", r.State)

	if r.Failure != loader.FailureNone.String() {
		fmt.Fprintf(w, "Failure:    %s\n", r.Failure)
		fmt.Fprintf(w, "Error:      %s\n", r.Error)
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Message)
		return
	}

	fmt.Fprintf(w, "Provider:   %s\n", r.Provider)
	fmt.Fprintf(w, "Library:    %s\n", r.Path)
	if r.Client != "" {
		fmt.Fprintf(w, "Client:     %s\n", r.Client)
	}
	fmt.Fprintf(w, "Exports:    v%s\n", r.ExportsVersion)

	fmt.Fprintf(w, "\nEntry points (%d):\n", len(r.EntryPoints))
	for _, ep := range r.EntryPoints {
		fmt.Fprintf(w, "  %-24s %-28s %s\n", ep.Name, ep.Symbol, ep.Addr)
	}
	if len(r.Missing) > 0 {
		fmt.Fprintf(w, "\nMissing optional exports (%d):\n", len(r.Missing))
		for _, name := range r.Missing {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.Message)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ListExports prints the export manifest for version.
func ListExports(w io.Writer, version string) error {
	m, err := loader.LoadExports(version)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Export manifest v%s: %s\n\n", m.Version, m.Description)
	for _, e := range m.Exports {
		req := "optional"
		if e.Required {
			req = "required"
		}
		fmt.Fprintf(w, "  %-24s %-8s %s\n", e.Name, req, e.Symbol(true))
	}
	return nil
}

// ParseLogLevel parses debug, info, warn or error.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
