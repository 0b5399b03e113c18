package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the binding lifecycle the error occurred
type Phase string

const (
	PhaseProbe   Phase = "probe"   // resident library check
	PhaseLoad    Phase = "load"    // dlopen of a candidate path
	PhaseResolve Phase = "resolve" // dlsym of a symbol
	PhaseBind    Phase = "bind"    // binding an address to a Go func slot
	PhaseCall    Phase = "call"    // argument preparation for a forwarded call
)

// Kind categorizes the error
type Kind string

const (
	KindLibraryNotFound Kind = "library_not_found"
	KindSymbolMissing   Kind = "symbol_missing"
	KindUnsupported     Kind = "unsupported"
	KindInvalidInput    Kind = "invalid_input"
	KindNotInitialized  Kind = "not_initialized"
)

// Error is the structured error type used throughout ndkshim
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Library string
	Path    string
	Symbol  string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Library != "" {
		b.WriteString(" in ")
		b.WriteString(e.Library)
	}

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if e.Symbol != "" {
		b.WriteString(": symbol ")
		b.WriteString(e.Symbol)
	}

	if e.Detail != "" {
		if e.Symbol != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Library sets the canonical library name
func (b *Builder) Library(name string) *Builder {
	b.err.Library = name
	return b
}

// Path sets the candidate path that was tried
func (b *Builder) Path(path string) *Builder {
	b.err.Path = path
	return b
}

// Symbol sets the symbol name
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LoadFailed records a failed dlopen of a single candidate path
func LoadFailed(library, path string, cause error) *Error {
	return &Error{
		Phase:   PhaseLoad,
		Kind:    KindLibraryNotFound,
		Library: library,
		Path:    path,
		Cause:   cause,
	}
}

// LibraryNotFound creates the terminal error for a library none of whose
// candidate paths could be loaded. The last attempt is kept as the cause.
func LibraryNotFound(library string, attempts []error) *Error {
	var cause error
	if len(attempts) > 0 {
		cause = attempts[len(attempts)-1]
	}
	return &Error{
		Phase:   PhaseLoad,
		Kind:    KindLibraryNotFound,
		Library: library,
		Detail:  fmt.Sprintf("all %d candidate paths failed", len(attempts)),
		Cause:   cause,
	}
}

// SymbolMissing creates an unresolved symbol error
func SymbolMissing(library, symbol string, cause error) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindSymbolMissing,
		Library: library,
		Symbol:  symbol,
		Cause:   cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotInitialized creates a not-initialized error for a library whose
// resolution has not run yet
func NotInitialized(library string) *Error {
	return &Error{
		Phase:   PhaseLoad,
		Kind:    KindNotInitialized,
		Library: library,
		Detail:  fmt.Sprintf("%s not initialized", library),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingSymbolsError is reported when a library loaded but some of its
// expected symbols could not be resolved
type MissingSymbolsError struct {
	Library string
	Symbols []string
}

// NewMissingSymbolsError creates an error for the given unresolved symbols
func NewMissingSymbolsError(library string, symbols []string) *MissingSymbolsError {
	return &MissingSymbolsError{
		Library: library,
		Symbols: append([]string(nil), symbols...),
	}
}

func (e *MissingSymbolsError) Error() string {
	if len(e.Symbols) == 0 {
		return "[resolve] symbol_missing: no symbols specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "missing %d symbol(s) in %s:\n", len(e.Symbols), e.Library)
	for _, s := range e.Symbols {
		b.WriteString("\n  - ")
		b.WriteString(s)
	}
	return b.String()
}

// Is reports whether target matches this error type
func (e *MissingSymbolsError) Is(target error) bool {
	switch t := target.(type) {
	case *MissingSymbolsError:
		return true
	case *Error:
		return t.Phase == PhaseResolve && t.Kind == KindSymbolMissing
	}
	return false
}
