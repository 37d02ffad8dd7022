package loader

import (
	"errors"
	"fmt"
)

// Loader errors.
var (
	// ErrNotInstalled means the presence probe found no MAPI installation.
	ErrNotInstalled = errors.New("MAPI subsystem not installed")

	// ErrBind means an installation was found but could not be bound.
	ErrBind = errors.New("MAPI subsystem bind failed")

	// ErrUnsupportedPlatform means native binding is not available on this OS.
	ErrUnsupportedPlatform = errors.New("native MAPI binding not supported on this platform")

	// ErrInvalidConfig means the loader configuration is invalid.
	ErrInvalidConfig = errors.New("invalid loader config")

	// ErrUnknownExportsVersion means no export manifest exists for a version.
	ErrUnknownExportsVersion = errors.New("unknown exports version")

	// ErrUnknownExport means a Handle has no entry point with the given name.
	ErrUnknownExport = errors.New("unknown export")
)

// BindError describes a library that was found but could not be bound.
// Export is empty when opening the library itself failed.
type BindError struct {
	Library string
	Export  string
	Err     error
}

func (e *BindError) Error() string {
	if e.Export != "" {
		return fmt.Sprintf("bind %s: export %s: %v", e.Library, e.Export, e.Err)
	}
	return fmt.Sprintf("bind %s: %v", e.Library, e.Err)
}

// Unwrap returns the underlying cause.
func (e *BindError) Unwrap() error {
	return e.Err
}

// Is makes every BindError match ErrBind.
func (e *BindError) Is(target error) bool {
	return target == ErrBind
}

// FailureKind classifies a Load error for user-facing reporting.
type FailureKind uint8

const (
	// FailureNone means there was no error.
	FailureNone FailureKind = iota

	// FailureNotInstalled means MAPI is not installed.
	FailureNotInstalled

	// FailureBind means MAPI is installed but broken or incompatible.
	FailureBind

	// FailureOther covers configuration and unexpected errors.
	FailureOther
)

// String returns the failure kind name.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "NONE"
	case FailureNotInstalled:
		return "NOT_INSTALLED"
	case FailureBind:
		return "BIND_ERROR"
	case FailureOther:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// Message returns a sentence suitable for showing to an end user.
func (k FailureKind) Message() string {
	switch k {
	case FailureNone:
		return "MAPI is available."
	case FailureNotInstalled:
		return "MAPI is not installed. Install Microsoft Outlook to enable this feature."
	case FailureBind:
		return "MAPI is installed but could not be loaded. The installation may be damaged or an incompatible version."
	default:
		return "MAPI could not be loaded because of an unexpected error."
	}
}

// Classify maps a Load error to its FailureKind. Bind failures take
// precedence over not-installed when an error matches both.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrBind):
		return FailureBind
	case errors.Is(err, ErrNotInstalled):
		return FailureNotInstalled
	default:
		return FailureOther
	}
}
