// Package log provides structured capture of subsystem loader events.
//
// This package defines the Logger interface and Event types for recording
// what a loader did while locating and binding the MAPI library: presence
// probes, library binding, per-export symbol resolution and state changes.
// It is separate from operational logging (slog) - trace capture provides a
// complete machine-readable record for diagnosing broken installations.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For support cases: write to a binary trace file
//	cfg.EventLogger, _ = log.NewFileLogger("mapi-load.mtrace")
//
//	// Both: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events are captured at each loader stage:
//   - Lifecycle: state machine transitions (StateChangeEvent)
//   - Probe: presence probe outcome (ProbeEvent)
//   - Bind: library open outcome (BindEvent)
//   - Resolve: per-export symbol lookup (ExportEvent)
//
// Failures at any stage carry an ErrorEventData.
//
// # File Format
//
// Trace files use CBOR encoding with integer keys and the .mtrace
// extension. The mapi-trace CLI tool provides viewing, filtering, statistics
// and export.
package log
