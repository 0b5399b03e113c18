package alog

import "github.com/wippyai/ndkshim/dynlib"

var std = newDefault()

func newDefault() *Binding {
	b := New()
	dynlib.Register(b.lib)
	return b
}

// Default returns the process-wide binding used by the package functions.
func Default() *Binding { return std }

// Write logs text through the default binding.
func Write(prio Priority, tag, text string) int32 { return std.Write(prio, tag, text) }

// Print formats and logs through the default binding.
func Print(prio Priority, tag, format string, args ...any) int32 {
	return std.Vprint(prio, tag, format, args)
}

// Vprint logs through the default binding.
func Vprint(prio Priority, tag, format string, args []any) int32 {
	return std.Vprint(prio, tag, format, args)
}

// IsLoggable consults the default binding.
func IsLoggable(prio Priority, tag string, def Priority) bool {
	return std.IsLoggable(prio, tag, def)
}
