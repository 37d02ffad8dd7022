//go:build windows

package loader

import "syscall"

// Call invokes the entry point with the given arguments and returns its
// raw result, typically an HRESULT.
func (e *EntryPoint) Call(args ...uintptr) (uintptr, error) {
	r1, _, _ := syscall.SyscallN(e.Addr, args...)
	return r1, nil
}
