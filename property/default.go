package property

import "github.com/wippyai/ndkshim/dynlib"

var std = newDefault()

func newDefault() *Binding {
	b := New()
	dynlib.Register(b.lib)
	return b
}

// Default returns the process-wide binding used by the package functions.
func Default() *Binding { return std }

// Get reads key through the default binding.
func Get(key, def string) string { return std.Get(key, def) }

// GetInto reads key into value through the default binding.
func GetInto(key string, value []byte, def string) int { return std.GetInto(key, value, def) }

// Set writes key through the default binding.
func Set(key, value string) int32 { return std.Set(key, value) }

// List visits every property through the default binding.
func List(visit Visitor) int32 { return std.List(visit) }
