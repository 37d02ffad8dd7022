package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/outlook-mapi/mapi-go/pkg/log"
)

// Loader resolves the MAPI subsystem at most once.
type Loader struct {
	id       string
	probe    Probe
	binder   Binder
	exports  *ExportManifest
	decorate bool
	logger   *slog.Logger
	events   log.Logger
	trace    *log.FileLogger

	state  atomic.Uint32
	once   sync.Once
	handle *Handle
	err    error
}

// New creates a Loader. Nothing is probed until IsInstalled or Load is called.
func New(cfg Config) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	manifest, err := LoadExports(cfg.ExportsVersion)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		id:       uuid.NewString(),
		probe:    cfg.Probe,
		binder:   cfg.Binder,
		exports:  manifest,
		decorate: cfg.DecorateSymbols,
		logger:   cfg.Logger,
		events:   cfg.EventLogger,
	}
	if l.probe == nil {
		l.probe = DefaultProbe(cfg)
	}
	if l.binder == nil {
		l.binder = SystemBinder{}
	}
	if cfg.TraceFile != "" {
		trace, err := log.NewFileLogger(cfg.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("%w: trace file: %w", ErrInvalidConfig, err)
		}
		l.trace = trace
		l.events = log.NewMultiLogger(l.events, trace)
	}
	return l, nil
}

// ID returns the loader's unique identifier, used as LoaderID in events.
func (l *Loader) ID() string {
	return l.id
}

// State returns the current lifecycle state.
func (l *Loader) State() State {
	return State(l.state.Load())
}

// Exports returns the export manifest the loader binds against.
func (l *Loader) Exports() *ExportManifest {
	return l.exports
}

// IsInstalled runs the presence probe without loading library code or
// changing the loader state. Once bound it answers true without probing.
func (l *Loader) IsInstalled() bool {
	if l.State() == StateBound {
		return true
	}
	inst, err := l.locate()
	l.debugLog("loader: presence probe", "installed", err == nil, "provider", inst.Provider, "path", inst.Path)
	return err == nil
}

// Load binds the subsystem on first use. Concurrent callers wait for the
// first attempt and every caller gets the same result. A failed load is
// never retried.
func (l *Loader) Load() (*Handle, error) {
	l.once.Do(l.resolve)
	return l.handle, l.err
}

// Close closes the trace file opened for Config.TraceFile, if any.
// The bound library stays loaded.
func (l *Loader) Close() error {
	if l.trace == nil {
		return nil
	}
	return l.trace.Close()
}

func (l *Loader) resolve() {
	l.transition(StateUnresolved, StateProbing, "load requested")

	var inst Installation
	stage := log.StageProbe
	// A panicking Probe or Binder must still leave the loader terminal.
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cause := fmt.Errorf("panic: %v", r)
		if stage == log.StageProbe {
			l.fail(stage, inst, fmt.Errorf("%w: %w", ErrNotInstalled, cause), "presence probe")
			return
		}
		l.handle = nil
		l.fail(stage, inst, &BindError{Library: inst.Path, Err: cause}, "bind")
	}()

	inst, err := l.locate()
	if err != nil {
		if !errors.Is(err, ErrNotInstalled) {
			err = fmt.Errorf("%w: %w", ErrNotInstalled, err)
		}
		l.fail(log.StageProbe, inst, err, "presence probe")
		return
	}

	stage = log.StageBind
	h, err := l.bind(inst)
	if err != nil {
		l.fail(log.StageBind, inst, err, "bind")
		return
	}

	l.handle = h
	l.transition(StateProbing, StateBound, "bound "+inst.Path)
	l.debugLog("loader: bound", "provider", inst.Provider, "path", inst.Path,
		"resolved", len(h.procs), "missing", len(h.missing))
}

func (l *Loader) locate() (Installation, error) {
	start := time.Now()
	inst, err := l.probe.Locate()
	l.emit(log.Event{
		Stage:    log.StageProbe,
		Category: log.CategoryOutcome,
		Provider: inst.Provider,
		Path:     inst.Path,
		Probe:    &log.ProbeEvent{Installed: err == nil, Duration: time.Since(start)},
	})
	return inst, err
}

func (l *Loader) bind(inst Installation) (*Handle, error) {
	start := time.Now()
	lib, err := l.binder.Open(inst)
	if err != nil {
		return nil, &BindError{Library: inst.Path, Err: err}
	}

	h := &Handle{
		install: inst,
		version: l.exports.Version,
		procs:   make(map[string]*EntryPoint, len(l.exports.Exports)),
	}
	var bindErr error
	for _, exp := range l.exports.Exports {
		ep, err := l.resolveExport(lib, inst, exp)
		if err == nil {
			h.procs[exp.Name] = ep
			continue
		}
		if exp.Required {
			if bindErr == nil {
				bindErr = &BindError{Library: inst.Path, Export: exp.Name, Err: err}
			}
			continue
		}
		h.missing = append(h.missing, exp.Name)
	}
	if bindErr != nil {
		return nil, bindErr
	}

	l.emit(log.Event{
		Stage:    log.StageBind,
		Category: log.CategoryOutcome,
		Provider: inst.Provider,
		Path:     inst.Path,
		Bind: &log.BindEvent{
			ExportsVersion: l.exports.Version,
			Resolved:       len(h.procs),
			Missing:        h.Missing(),
			Duration:       time.Since(start),
		},
	})
	return h, nil
}

// resolveExport looks up the decorated symbol first and falls back to the
// plain name, which some builds export instead.
func (l *Loader) resolveExport(lib Library, inst Installation, exp Export) (*EntryPoint, error) {
	symbol := exp.Symbol(l.decorate)
	addr, err := lib.Lookup(symbol)
	if err != nil && symbol != exp.Name {
		if plain, perr := lib.Lookup(exp.Name); perr == nil {
			symbol, addr, err = exp.Name, plain, nil
		}
	}
	if err == nil && addr == 0 {
		err = fmt.Errorf("%s resolved to a nil address", symbol)
	}

	l.emit(log.Event{
		Stage:    log.StageResolve,
		Category: log.CategoryOutcome,
		Provider: inst.Provider,
		Path:     inst.Path,
		Export: &log.ExportEvent{
			Name:     exp.Name,
			Symbol:   symbol,
			Required: exp.Required,
			Resolved: err == nil,
		},
	})
	if err != nil {
		l.debugLog("loader: export not resolved", "export", exp.Name, "required", exp.Required, "error", err)
		return nil, err
	}
	return &EntryPoint{Name: exp.Name, Symbol: symbol, Addr: addr}, nil
}

func (l *Loader) fail(stage log.Stage, inst Installation, err error, context string) {
	l.err = err
	kind := Classify(err)
	l.emit(log.Event{
		Stage:    stage,
		Category: log.CategoryError,
		Provider: inst.Provider,
		Path:     inst.Path,
		Error: &log.ErrorEventData{
			Stage:   stage,
			Message: err.Error(),
			Kind:    kind.String(),
			Context: context,
		},
	})
	l.transition(StateProbing, StateAbsent, kind.String())
	if l.logger != nil {
		l.logger.Warn("loader: MAPI unavailable", "kind", kind.String(), "error", err)
	}
}

func (l *Loader) transition(from, to State, reason string) {
	if !l.state.CompareAndSwap(uint32(from), uint32(to)) {
		return
	}
	l.emit(log.Event{
		Stage:    log.StageLifecycle,
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	})
	l.debugLog("loader: state change", "from", from, "to", to, "reason", reason)
}

func (l *Loader) emit(event log.Event) {
	if l.events == nil {
		return
	}
	event.Timestamp = time.Now()
	event.LoaderID = l.id
	l.events.Log(event)
}

// debugLog logs a debug message if logging is enabled.
func (l *Loader) debugLog(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

var (
	defaultOnce   sync.Once
	defaultLoader *Loader
	defaultErr    error
)

// Default returns the process-wide Loader, built on first use from
// ConfigFromEnv.
func Default() (*Loader, error) {
	defaultOnce.Do(func() {
		cfg, err := ConfigFromEnv()
		if err != nil {
			defaultErr = err
			return
		}
		defaultLoader, defaultErr = New(cfg)
	})
	return defaultLoader, defaultErr
}

// IsInstalled reports whether the process-wide Loader finds MAPI.
func IsInstalled() bool {
	l, err := Default()
	if err != nil {
		return false
	}
	return l.IsInstalled()
}

// Load binds MAPI through the process-wide Loader. A loader that cannot be
// configured reports not installed, matching IsInstalled.
func Load() (*Handle, error) {
	l, err := Default()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotInstalled, err)
	}
	return l.Load()
}
