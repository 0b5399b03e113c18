package property

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/ndkshim/dynlib"
	"github.com/wippyai/ndkshim/internal/cstr"
)

const (
	// Library is the canonical soname the property API lives in.
	Library = "libcutils.so"

	// KeyMax is PROP_NAME_MAX.
	KeyMax = 32

	// ValueMax is PROPERTY_VALUE_MAX, including the terminating NUL.
	ValueMax = 92
)

// Binding is a lazily resolved view of the property API.
type Binding struct {
	lib *dynlib.Library

	get  func(key, value, def *byte) int32
	set  func(key, value *byte) int32
	list func(fn, cookie uintptr) int32

	// callback returns the C function pointer passed to property_list.
	callback func() uintptr
}

// New creates a binding. Resolution happens on the first call.
func New(opts ...dynlib.Option) *Binding {
	b := &Binding{callback: trampoline}
	opts = append([]dynlib.Option{dynlib.WithComponent("property")}, opts...)
	b.lib = dynlib.New(Library, dynlib.SystemPaths(Library), []dynlib.Symbol{
		{Name: "property_get", Fn: &b.get},
		{Name: "property_set", Fn: &b.set},
		{Name: "property_list", Fn: &b.list},
	}, opts...)
	return b
}

// Library returns the underlying library for status inspection.
func (b *Binding) Library() *dynlib.Library {
	return b.lib
}

// GetRaw is property_get. value must point at ValueMax bytes. Without an
// implementation the default is copied into value, truncated to fit, and the
// number of bytes copied is returned. With a nil value the full default
// length is returned.
func (b *Binding) GetRaw(key, value, def *byte) int32 {
	b.lib.Ensure()
	if b.get != nil {
		return b.get(key, value, def)
	}

	if def == nil {
		return 0
	}
	n := strlen(def)
	if value != nil {
		m := min(n, ValueMax-1)
		dst := unsafe.Slice(value, m+1)
		copy(dst, unsafe.Slice(def, m))
		dst[m] = 0
		return int32(m)
	}
	return int32(n)
}

// GetInto reads key into value, falling back to def, and returns the
// property_get result. value is NUL-terminated when it has room.
func (b *Binding) GetInto(key string, value []byte, def string) int {
	var buf [ValueMax]byte
	n := b.GetRaw(cstr.Ptr(key), &buf[0], cstr.Ptr(def))

	m := copy(value, buf[:clamp(int(n))])
	if m < len(value) {
		value[m] = 0
	}
	return int(n)
}

// Get returns the value of key, or def when it is unset or no implementation
// is available.
func (b *Binding) Get(key, def string) string {
	var buf [ValueMax]byte
	n := b.GetRaw(cstr.Ptr(key), &buf[0], cstr.Ptr(def))
	return string(buf[:clamp(int(n))])
}

// SetRaw is property_set.
func (b *Binding) SetRaw(key, value *byte) int32 {
	b.lib.Ensure()
	if b.set != nil {
		return b.set(key, value)
	}
	return 0
}

// Set writes key. The platform return code is passed through unchanged. A
// key or value containing NUL would be stored truncated, so it is rejected
// with -1 before reaching the platform.
func (b *Binding) Set(key, value string) int32 {
	k, err := cstr.Checked(key)
	if err == nil {
		var v *byte
		if v, err = cstr.Checked(value); err == nil {
			return b.SetRaw(k, v)
		}
	}
	b.lib.Logger().Warn("rejected property_set", zap.String("key", cstr.String(k)), zap.Error(err))
	return -1
}

// ListRaw is property_list. fn is a C function pointer of type
// void (*)(const char* key, const char* value, void* cookie).
func (b *Binding) ListRaw(fn, cookie uintptr) int32 {
	b.lib.Ensure()
	if b.list != nil {
		return b.list(fn, cookie)
	}
	return 0
}

func clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > ValueMax-1:
		return ValueMax - 1
	}
	return n
}

func strlen(p *byte) int {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}
