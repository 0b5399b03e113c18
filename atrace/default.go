package atrace

import "github.com/wippyai/ndkshim/dynlib"

var std = newDefault()

func newDefault() *Binding {
	b := New()
	dynlib.Register(b.lib)
	return b
}

// Default returns the process-wide binding used by the package functions.
func Default() *Binding { return std }

func Init()                           { std.Init() }
func EnabledTags() uint64             { return std.EnabledTags() }
func Enabled(tag uint64) bool         { return std.Enabled(tag) }
func Begin(name string)               { std.Begin(name) }
func End()                            { std.End() }
func Section(name string) func()      { return std.Section(name) }
func AsyncBegin(name string, c int32) { std.AsyncBegin(name, c) }
func AsyncEnd(name string, c int32)   { std.AsyncEnd(name, c) }
func Int(name string, value int32)    { std.Int(name, value) }
func Int64(name string, value int64)  { std.Int64(name, value) }
