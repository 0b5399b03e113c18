// Package dynlib resolves a fixed table of C symbols from the first available
// shared library in a candidate path list, exactly once per process.
//
// # Main Types
//
//   - Library: a canonical library name, its candidate paths and a symbol table
//   - Symbol: a (name, slot) pair; the slot is a pointer to a typed Go func variable
//   - Loader: the platform loader (probe resident, open, lookup, bind)
//
// # Resolution Order
//
//  1. Resident probe of the canonical name (RTLD_NOLOAD)
//  2. Each candidate path in order (RTLD_LAZY|RTLD_LOCAL)
//  3. Permanent "no implementation" state if every attempt fails
//
// Once a library is resolved, each symbol is bound into its slot. Symbols that
// cannot be found leave their slot nil; callers check the slot and fall back to
// a stub. Nothing is retried and the handle is never closed.
//
// # Thread Safety
//
// Library.Ensure may be called from any number of goroutines. Exactly one of
// them runs resolution; the rest block until it finishes. Slots are written
// only during resolution and may be read without locking after Ensure returns.
//
// # Example
//
//	var fpWait func(fd, timeout int32) int32
//
//	lib := dynlib.New("libsync.so", dynlib.SystemPaths("libsync.so"), []dynlib.Symbol{
//	    {Name: "sync_wait", Fn: &fpWait},
//	})
//
//	lib.Ensure()
//	if fpWait != nil {
//	    rc := fpWait(fd, 100)
//	}
package dynlib
