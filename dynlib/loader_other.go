//go:build !(darwin || linux)

package dynlib

import (
	"runtime"

	"github.com/wippyai/ndkshim/errors"
)

// noLoader reports every library as unavailable, so bindings run on stubs.
type noLoader struct{}

// DefaultLoader returns a loader that never loads anything on this platform.
func DefaultLoader() Loader {
	return noLoader{}
}

func (noLoader) Probe(name string) (Handle, error) {
	return 0, errors.Unsupported(errors.PhaseProbe, "dynamic loading on "+runtime.GOOS)
}

func (noLoader) Open(path string) (Handle, error) {
	return 0, errors.Unsupported(errors.PhaseLoad, "dynamic loading on "+runtime.GOOS)
}

func (noLoader) Lookup(Handle, string) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseResolve, "dynamic loading on "+runtime.GOOS)
}

func (noLoader) Bind(any, uintptr) error {
	return errors.Unsupported(errors.PhaseBind, "dynamic loading on "+runtime.GOOS)
}
