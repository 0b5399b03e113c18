//go:build darwin || linux

package dynlib

import (
	"fmt"

	"github.com/ebitengine/purego"

	"github.com/wippyai/ndkshim/errors"
)

// dlLoader is the purego-backed Loader used by default.
type dlLoader struct{}

// DefaultLoader returns the process loader built on dlopen/dlsym.
func DefaultLoader() Loader {
	return dlLoader{}
}

func (dlLoader) Probe(name string) (Handle, error) {
	h, err := purego.Dlopen(name, rtldNoload|purego.RTLD_LAZY|purego.RTLD_LOCAL)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, errors.New(errors.PhaseProbe, errors.KindLibraryNotFound).Path(name).Build()
	}
	return Handle(h), nil
}

func (dlLoader) Open(path string) (Handle, error) {
	h, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_LOCAL)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, errors.New(errors.PhaseLoad, errors.KindLibraryNotFound).Path(path).Build()
	}
	return Handle(h), nil
}

func (dlLoader) Lookup(h Handle, symbol string) (uintptr, error) {
	return purego.Dlsym(uintptr(h), symbol)
}

// Bind registers fn at addr. RegisterFunc panics on unsupported signatures,
// which is reported as an error so the slot stays nil.
func (dlLoader) Bind(fn any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(errors.PhaseBind, errors.KindUnsupported, fmt.Errorf("%v", r), "register func")
		}
	}()
	purego.RegisterFunc(fn, addr)
	return nil
}
