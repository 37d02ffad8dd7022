package loader

import (
	"fmt"
	"sort"
)

// EntryPoint is a resolved export. Addr stays valid for the life of the
// process because the library is never unloaded.
type EntryPoint struct {
	// Name is the undecorated export name.
	Name string

	// Symbol is the name that resolved, decorated on 32-bit x86.
	Symbol string

	// Addr is the entry point address.
	Addr uintptr
}

// Handle is the bound MAPI subsystem. It is immutable and safe to share.
type Handle struct {
	install Installation
	version string
	procs   map[string]*EntryPoint
	missing []string
}

// Installation returns the installation the handle was bound from.
func (h *Handle) Installation() Installation {
	return h.install
}

// ExportsVersion returns the export manifest version used for the bind.
func (h *Handle) ExportsVersion() string {
	return h.version
}

// Proc returns the entry point for an export name.
func (h *Handle) Proc(name string) (*EntryPoint, bool) {
	ep, ok := h.procs[name]
	return ep, ok
}

// MustProc is like Proc but panics when the export did not resolve.
// Use it only for exports the manifest marks required.
func (h *Handle) MustProc(name string) *EntryPoint {
	ep, ok := h.procs[name]
	if !ok {
		panic(fmt.Sprintf("loader: %v: %s", ErrUnknownExport, name))
	}
	return ep
}

// EntryPoints returns all resolved entry points sorted by name.
func (h *Handle) EntryPoints() []EntryPoint {
	out := make([]EntryPoint, 0, len(h.procs))
	for _, ep := range h.procs {
		out = append(out, *ep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Missing returns the optional exports that did not resolve, in manifest order.
func (h *Handle) Missing() []string {
	return append([]string(nil), h.missing...)
}

// HRESULT is a COM/MAPI status code.
type HRESULT int32

// Failed reports whether the severity bit is set.
func (hr HRESULT) Failed() bool {
	return hr < 0
}

// Error implements error.
func (hr HRESULT) Error() string {
	return fmt.Sprintf("HRESULT 0x%08X", uint32(hr))
}

// CallHRESULT calls the entry point and converts a failing HRESULT to an error.
func (e *EntryPoint) CallHRESULT(args ...uintptr) error {
	r, err := e.Call(args...)
	if err != nil {
		return err
	}
	if hr := HRESULT(int32(uint32(r))); hr.Failed() {
		return fmt.Errorf("%s: %w", e.Name, hr)
	}
	return nil
}
