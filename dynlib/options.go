package dynlib

import "go.uber.org/zap"

// Option configures a Library.
type Option func(*Library)

// WithLoader replaces the platform loader.
func WithLoader(loader Loader) Option {
	return func(l *Library) {
		l.loader = loader
	}
}

// WithLogger sets the logger used for this library's diagnostics instead of
// the package logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Library) {
		l.logger = logger
	}
}

// WithPaths replaces the candidate path list.
func WithPaths(paths ...string) Option {
	return func(l *Library) {
		l.paths = append([]string(nil), paths...)
	}
}

// WithoutResidentProbe skips the RTLD_NOLOAD check and goes straight to the
// candidate paths, for loaders whose no-load probe takes a reference.
func WithoutResidentProbe() Option {
	return func(l *Library) {
		l.noProbe = true
	}
}

// WithComponent labels the library with the subsystem using it, which keeps
// diagnostics apart when two subsystems share one soname.
func WithComponent(name string) Option {
	return func(l *Library) {
		l.component = name
	}
}
