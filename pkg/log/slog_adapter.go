package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes loader events to an slog.Logger at Debug level, or
// Warn level for error events.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event as a single "loader" record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("loader_id", event.LoaderID),
		slog.String("stage", event.Stage.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Provider != "" {
		attrs = append(attrs, slog.String("provider", event.Provider))
	}
	if event.Path != "" {
		attrs = append(attrs, slog.String("path", event.Path))
	}

	level := slog.LevelDebug
	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Probe != nil:
		attrs = append(attrs,
			slog.Bool("installed", event.Probe.Installed),
			slog.Duration("duration", event.Probe.Duration),
		)
	case event.Bind != nil:
		attrs = append(attrs,
			slog.Int("resolved", event.Bind.Resolved),
			slog.Duration("duration", event.Bind.Duration),
		)
		if event.Bind.ExportsVersion != "" {
			attrs = append(attrs, slog.String("exports_version", event.Bind.ExportsVersion))
		}
		if len(event.Bind.Missing) > 0 {
			attrs = append(attrs, slog.Any("missing", event.Bind.Missing))
		}
	case event.Export != nil:
		attrs = append(attrs,
			slog.String("export", event.Export.Name),
			slog.Bool("resolved", event.Export.Resolved),
		)
		if event.Export.Symbol != "" && event.Export.Symbol != event.Export.Name {
			attrs = append(attrs, slog.String("symbol", event.Export.Symbol))
		}
		if event.Export.Required {
			attrs = append(attrs, slog.Bool("required", true))
		}
	case event.Error != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("error_stage", event.Error.Stage.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Kind != "" {
			attrs = append(attrs, slog.String("error_kind", event.Error.Kind))
		}
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "loader", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
