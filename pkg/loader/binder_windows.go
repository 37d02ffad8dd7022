//go:build windows

package loader

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// SystemBinder opens libraries with LoadLibraryEx so that dependencies
// next to the MAPI library resolve from its own directory.
type SystemBinder struct{}

// Open loads the installation's library into the process.
func (SystemBinder) Open(inst Installation) (Library, error) {
	h, err := windows.LoadLibraryEx(inst.Path, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	if err != nil {
		return nil, fmt.Errorf("LoadLibraryEx: %w", err)
	}
	return &dllLibrary{handle: h}, nil
}

type dllLibrary struct {
	handle windows.Handle
}

func (l *dllLibrary) Lookup(symbol string) (uintptr, error) {
	addr, err := windows.GetProcAddress(l.handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("GetProcAddress %s: %w", symbol, err)
	}
	return addr, nil
}
