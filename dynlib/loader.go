package dynlib

// Handle is an opaque reference to a loaded library image.
// Handle 0 is never a valid library.
type Handle uintptr

// Loader abstracts the platform dynamic loader.
type Loader interface {
	// Probe returns a handle to name only if it is already mapped into the
	// process. It never loads anything.
	Probe(name string) (Handle, error)

	// Open loads the library at path with lazy binding and local visibility.
	Open(path string) (Handle, error)

	// Lookup returns the address of symbol in the library behind h.
	Lookup(h Handle, symbol string) (uintptr, error)

	// Bind makes the func variable pointed to by fn call the C function at addr.
	Bind(fn any, addr uintptr) error
}

// SystemPaths returns the standard candidate list for an Android platform
// library: the 64-bit system directory, the 32-bit system directory, then the
// bare soname for the linker's own search path.
func SystemPaths(soname string) []string {
	return []string{
		"/system/lib64/" + soname,
		"/system/lib/" + soname,
		soname,
	}
}
