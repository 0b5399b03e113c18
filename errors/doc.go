// Package errors provides structured error types for ndkshim.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the library, candidate path and symbol involved plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindLibraryNotFound).
//		Library("libsync.so").
//		Path("/system/lib64/libsync.so").
//		Detail("dlopen failed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LibraryNotFound("libsync.so", attempts)
//	err := errors.SymbolMissing("libsync.so", "sync_wait", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
