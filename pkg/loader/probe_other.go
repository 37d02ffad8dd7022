//go:build !windows

package loader

import (
	"fmt"
	"runtime"
)

func platformProbe(bool) Probe {
	return FuncProbe(func() (Installation, error) {
		return Installation{}, fmt.Errorf("%w: no MAPI subsystem on %s", ErrNotInstalled, runtime.GOOS)
	})
}
