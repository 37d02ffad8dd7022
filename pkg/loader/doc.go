// Package loader locates and binds the native MAPI subsystem.
//
// A Loader answers two questions. IsInstalled performs a cheap presence
// probe (registry markers, file existence) without mapping any library code
// into the process, so callers can fail fast with a friendly message. Load
// performs the probe once more, opens the library and resolves every export
// listed in the versioned export manifest. Load runs at most once per Loader:
// concurrent callers block until the first attempt reaches a terminal state
// and then all observe the same Handle or error.
//
// State machine:
//
//	UNRESOLVED --Load--> PROBING --ok--> BOUND
//	                        |
//	                        +--fail--> ABSENT
//
// BOUND and ABSENT are terminal. The library is never unloaded and a failed
// load is never retried.
//
// Failures are classified with Classify: ErrNotInstalled when the probe
// finds nothing, ErrBind (as *BindError) when the library exists but cannot
// be opened or lacks a required export.
//
// The probe and binder are pluggable. DefaultProbe builds the platform
// chain: on Windows the default mail client's DLLPathEx (Outlook's
// olmapi32.dll) followed by mapi32.dll in the system directory. On other
// platforms the default probe always reports ErrNotInstalled.
package loader
