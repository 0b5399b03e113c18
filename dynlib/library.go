package dynlib

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/ndkshim/errors"
)

// State is the initialization state of a Library.
type State int32

const (
	NotStarted State = iota
	InProgress
	Done
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Symbol pairs a C symbol name with the Go variable it binds into.
// Fn is either a pointer to a func variable, which the loader binds so it
// calls the C function, or a *uintptr that receives the raw address. Raw
// addresses serve functions Go cannot call directly, such as those taking a
// va_list.
type Symbol struct {
	Fn   any
	Name string
}

// Library resolves a symbol table from the first available candidate path.
// The zero value is not usable; create libraries with New.
type Library struct {
	loader    Loader
	logger    *zap.Logger
	name      string
	component string
	paths     []string
	symbols   []Symbol
	noProbe   bool

	once  sync.Once
	state atomic.Int32

	// Written once inside initialize, read-only after state reaches Done.
	handle   Handle
	path     string
	resident bool
	bound    map[string]struct{}
	missing  []string
	err      error
}

// New creates a library description. name is the canonical soname probed for
// residency; paths are tried in order when it is not resident. Nothing is
// loaded until Ensure is called.
//
// The resident probe runs once, on name, before any path is opened. A library
// already mapped under any candidate path is mapped under its soname, so one
// probe covers every candidate. WithoutResidentProbe disables it.
func New(name string, paths []string, symbols []Symbol, opts ...Option) *Library {
	l := &Library{
		name:    name,
		paths:   append([]string(nil), paths...),
		symbols: append([]Symbol(nil), symbols...),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name returns the canonical library name.
func (l *Library) Name() string {
	return l.name
}

// Component returns the subsystem label, defaulting to the library name.
func (l *Library) Component() string {
	if l.component == "" {
		return l.name
	}
	return l.component
}

// Ensure runs resolution on first call and blocks concurrent callers until it
// has finished. Later calls return immediately. It never fails: the outcome is
// available through Loaded, Missing and Err.
func (l *Library) Ensure() {
	if State(l.state.Load()) == Done {
		return
	}
	l.once.Do(l.initialize)
}

// State reports the initialization state without triggering resolution.
func (l *Library) State() State {
	return State(l.state.Load())
}

func (l *Library) done() bool {
	return State(l.state.Load()) == Done
}

// Loaded reports whether a library image was obtained.
func (l *Library) Loaded() bool {
	return l.done() && l.handle != 0
}

// Handle returns the library handle, or 0 before resolution or after failure.
func (l *Library) Handle() Handle {
	if !l.done() {
		return 0
	}
	return l.handle
}

// Path returns the candidate that satisfied the load. For a resident library
// it is the canonical name.
func (l *Library) Path() string {
	if !l.done() {
		return ""
	}
	return l.path
}

// Resident reports whether the library was already mapped before resolution.
func (l *Library) Resident() bool {
	return l.done() && l.resident
}

// Has reports whether symbol was resolved and bound.
func (l *Library) Has(symbol string) bool {
	if !l.done() {
		return false
	}
	_, ok := l.bound[symbol]
	return ok
}

// Missing returns the symbols that could not be resolved. When the library
// itself failed to load every symbol is reported missing.
func (l *Library) Missing() []string {
	if !l.done() {
		return nil
	}
	return append([]string(nil), l.missing...)
}

// Err returns the resolution outcome: nil when every symbol bound, a
// library-not-found *errors.Error when nothing loaded, or an
// *errors.MissingSymbolsError for partial resolution.
func (l *Library) Err() error {
	if !l.done() {
		return errors.NotInitialized(l.name)
	}
	return l.err
}

// Logger returns the logger this library reports through, for bindings that
// log about their own calls.
func (l *Library) Logger() *zap.Logger {
	return l.log().With(zap.String("library", l.name), zap.String("component", l.Component()))
}

func (l *Library) log() *zap.Logger {
	if l.logger != nil {
		return l.logger
	}
	return Logger()
}

func (l *Library) initialize() {
	l.state.Store(int32(InProgress))
	defer l.state.Store(int32(Done))

	log := l.log().With(zap.String("library", l.name), zap.String("component", l.Component()))
	loader := l.loader
	if loader == nil {
		loader = DefaultLoader()
	}

	l.open(loader, log)
	if l.handle == 0 {
		for _, s := range l.symbols {
			l.missing = append(l.missing, s.Name)
		}
		log.Error("all library paths failed, using stub implementations",
			zap.Strings("paths", l.paths))
		return
	}

	l.resolve(loader, log)
}

func (l *Library) open(loader Loader, log *zap.Logger) {
	if !l.noProbe {
		if h, err := loader.Probe(l.name); err == nil && h != 0 {
			l.handle, l.path, l.resident = h, l.name, true
			log.Info("bound resident library")
			return
		}
	}

	attempts := make([]error, 0, len(l.paths))
	for _, path := range l.paths {
		h, err := loader.Open(path)
		if err == nil && h != 0 {
			l.handle, l.path = h, path
			log.Info("loaded library", zap.String("path", path))
			return
		}
		attempt := errors.LoadFailed(l.name, path, err)
		attempts = append(attempts, attempt)
		log.Warn("failed to load library", zap.String("path", path), zap.Error(err))
	}
	l.err = errors.LibraryNotFound(l.name, attempts)
}

func (l *Library) resolve(loader Loader, log *zap.Logger) {
	l.bound = make(map[string]struct{}, len(l.symbols))

	for _, s := range l.symbols {
		addr, err := loader.Lookup(l.handle, s.Name)
		if err == nil && addr != 0 {
			err = bind(loader, s.Fn, addr)
		} else if err == nil {
			err = errors.SymbolMissing(l.name, s.Name, nil)
		}
		if err != nil {
			l.missing = append(l.missing, s.Name)
			log.Debug("symbol unresolved", zap.String("symbol", s.Name), zap.Error(err))
			continue
		}
		l.bound[s.Name] = struct{}{}
	}

	if len(l.missing) > 0 {
		l.err = errors.NewMissingSymbolsError(l.name, l.missing)
		log.Warn("some functions failed to resolve, library may be incomplete",
			zap.Strings("missing", l.missing))
	}
}

func bind(loader Loader, fn any, addr uintptr) error {
	if p, ok := fn.(*uintptr); ok {
		*p = addr
		return nil
	}
	return loader.Bind(fn, addr)
}
