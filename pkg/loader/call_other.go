//go:build !windows

package loader

// Call fails with ErrUnsupportedPlatform.
func (e *EntryPoint) Call(...uintptr) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}
