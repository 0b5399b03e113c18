// Package dynlibtest provides an in-memory dynlib.Loader for tests.
//
// Libraries are registered by path (or by canonical name for resident
// libraries) with a map from symbol name to a Go func of the exact type the
// binding expects. Bind assigns that func into the binding's slot, so tests
// can observe the arguments a binding forwards and control what it returns.
package dynlibtest

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wippyai/ndkshim/dynlib"
)

// Loader is a fake dynlib.Loader. It is safe for concurrent use.
type Loader struct {
	mu       sync.Mutex
	resident map[string]map[string]any
	files    map[string]map[string]any
	handles  []map[string]any
	impls    []any
	opened   []string

	// Delay is slept inside Probe to widen initialization races.
	Delay time.Duration

	probes  atomic.Int64
	opens   atomic.Int64
	lookups atomic.Int64
}

var _ dynlib.Loader = (*Loader)(nil)

// New creates an empty loader: every probe and open fails.
func New() *Loader {
	return &Loader{
		resident: make(map[string]map[string]any),
		files:    make(map[string]map[string]any),
	}
}

// AddLibrary makes path loadable with the given symbols.
func (l *Loader) AddLibrary(path string, symbols map[string]any) *Loader {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files[path] = symbols
	return l
}

// AddResident makes name report as already mapped with the given symbols.
func (l *Loader) AddResident(name string, symbols map[string]any) *Loader {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resident[name] = symbols
	return l
}

// Probes returns the number of Probe calls.
func (l *Loader) Probes() int { return int(l.probes.Load()) }

// Opens returns the number of Open calls.
func (l *Loader) Opens() int { return int(l.opens.Load()) }

// Lookups returns the number of Lookup calls.
func (l *Loader) Lookups() int { return int(l.lookups.Load()) }

// Opened returns the paths passed to Open, in call order.
func (l *Loader) Opened() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.opened...)
}

func (l *Loader) Probe(name string) (dynlib.Handle, error) {
	l.probes.Add(1)
	if l.Delay > 0 {
		time.Sleep(l.Delay)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	syms, ok := l.resident[name]
	if !ok {
		return 0, fmt.Errorf("%s: not loaded", name)
	}
	return l.handle(syms), nil
}

func (l *Loader) Open(path string) (dynlib.Handle, error) {
	l.opens.Add(1)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opened = append(l.opened, path)
	syms, ok := l.files[path]
	if !ok {
		return 0, fmt.Errorf("dlopen failed: library %q not found", path)
	}
	return l.handle(syms), nil
}

// handle must be called with mu held.
func (l *Loader) handle(syms map[string]any) dynlib.Handle {
	l.handles = append(l.handles, syms)
	return dynlib.Handle(len(l.handles))
}

func (l *Loader) Lookup(h dynlib.Handle, symbol string) (uintptr, error) {
	l.lookups.Add(1)
	l.mu.Lock()
	defer l.mu.Unlock()
	if h == 0 || int(h) > len(l.handles) {
		return 0, fmt.Errorf("invalid handle %d", h)
	}
	impl, ok := l.handles[h-1][symbol]
	if !ok || impl == nil {
		return 0, fmt.Errorf("undefined symbol: %s", symbol)
	}
	l.impls = append(l.impls, impl)
	return uintptr(len(l.impls)), nil
}

// Bind assigns the Go func registered for addr into the slot fn points to.
func (l *Loader) Bind(fn any, addr uintptr) error {
	l.mu.Lock()
	if addr == 0 || int(addr) > len(l.impls) {
		l.mu.Unlock()
		return fmt.Errorf("invalid address %#x", addr)
	}
	impl := l.impls[addr-1]
	l.mu.Unlock()

	slot := reflect.ValueOf(fn)
	if slot.Kind() != reflect.Pointer || slot.Elem().Kind() != reflect.Func {
		return fmt.Errorf("slot must be a pointer to a func, got %T", fn)
	}
	v := reflect.ValueOf(impl)
	if !v.Type().AssignableTo(slot.Elem().Type()) {
		return fmt.Errorf("implementation %s does not match slot %s", v.Type(), slot.Elem().Type())
	}
	slot.Elem().Set(v)
	return nil
}
