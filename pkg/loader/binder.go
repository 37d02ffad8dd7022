package loader

import "strconv"

// Library is an opened native library.
type Library interface {
	// Lookup returns the address of an exported symbol.
	Lookup(symbol string) (uintptr, error)
}

// Binder opens the library of a located installation.
type Binder interface {
	Open(inst Installation) (Library, error)
}

// DecorateName returns the stdcall-decorated export name used by 32-bit
// x86 builds of the MAPI libraries, e.g. "MAPILogonEx@20".
func DecorateName(name string, argBytes int) string {
	return name + "@" + strconv.Itoa(argBytes)
}
