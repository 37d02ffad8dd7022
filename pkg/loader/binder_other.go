//go:build !windows

package loader

// SystemBinder fails on platforms without native MAPI binding.
type SystemBinder struct{}

// Open always fails with ErrUnsupportedPlatform.
func (SystemBinder) Open(Installation) (Library, error) {
	return nil, ErrUnsupportedPlatform
}
