package log

import (
	"time"
)

// Event represents a loader event captured at any stage.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// LoaderID uniquely identifies the loader instance (UUID).
	LoaderID string `cbor:"2,keyasint"`

	// Stage where the event was captured.
	Stage Stage `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Provider names the installation that was probed or bound
	// (e.g. "outlook", "system", "path").
	Provider string `cbor:"5,keyasint,omitempty"`

	// Path is the library path involved, if known.
	Path string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent `cbor:"7,keyasint,omitempty"`  // Lifecycle
	Probe       *ProbeEvent       `cbor:"8,keyasint,omitempty"`  // Probe
	Bind        *BindEvent        `cbor:"9,keyasint,omitempty"`  // Bind
	Export      *ExportEvent      `cbor:"10,keyasint,omitempty"` // Resolve
	Error       *ErrorEventData   `cbor:"11,keyasint,omitempty"` // Failures at any stage
}

// Stage indicates which loader stage captured the event.
type Stage uint8

const (
	// StageLifecycle covers state machine transitions.
	StageLifecycle Stage = 0
	// StageProbe is the presence probe.
	StageProbe Stage = 1
	// StageBind is opening the library.
	StageBind Stage = 2
	// StageResolve is symbol lookup for a single export.
	StageResolve Stage = 3
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageLifecycle:
		return "LIFECYCLE"
	case StageProbe:
		return "PROBE"
	case StageBind:
		return "BIND"
	case StageResolve:
		return "RESOLVE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState indicates a state change.
	CategoryState Category = 0
	// CategoryOutcome indicates the successful result of a stage.
	CategoryOutcome Category = 1
	// CategoryError indicates a failure.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryOutcome:
		return "OUTCOME"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a loader state transition.
type StateChangeEvent struct {
	// OldState is the previous state.
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ProbeEvent captures the result of a presence probe.
type ProbeEvent struct {
	// Installed reports whether an installation was located.
	Installed bool `cbor:"1,keyasint"`

	// Duration of the probe. Stored as nanoseconds.
	Duration time.Duration `cbor:"2,keyasint,omitempty"`
}

// BindEvent captures the result of binding the library.
type BindEvent struct {
	// ExportsVersion is the export manifest version used.
	ExportsVersion string `cbor:"1,keyasint,omitempty"`

	// Resolved is the number of exports that resolved.
	Resolved int `cbor:"2,keyasint"`

	// Missing lists optional exports that did not resolve.
	Missing []string `cbor:"3,keyasint,omitempty"`

	// Duration of the bind including symbol resolution.
	Duration time.Duration `cbor:"4,keyasint,omitempty"`
}

// ExportEvent captures resolution of a single export.
type ExportEvent struct {
	// Name is the undecorated export name.
	Name string `cbor:"1,keyasint"`

	// Symbol is the name actually looked up (decorated on x86).
	Symbol string `cbor:"2,keyasint,omitempty"`

	// Required reports whether a missing export fails the bind.
	Required bool `cbor:"3,keyasint,omitempty"`

	// Resolved reports whether the symbol was found.
	Resolved bool `cbor:"4,keyasint"`
}

// ErrorEventData captures failures at any stage.
type ErrorEventData struct {
	// Stage where the error occurred.
	Stage Stage `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Kind is the failure classification (e.g. NOT_INSTALLED, BIND_ERROR).
	Kind string `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
