package atrace

import (
	"github.com/wippyai/ndkshim/dynlib"
	"github.com/wippyai/ndkshim/internal/cstr"
)

// Library is the canonical soname the trace API lives in.
const Library = "libcutils.so"

// Trace tags from cutils/trace.h.
const (
	TagNever           uint64 = 0
	TagAlways          uint64 = 1 << 0
	TagGraphics        uint64 = 1 << 1
	TagInput           uint64 = 1 << 2
	TagView            uint64 = 1 << 3
	TagWebView         uint64 = 1 << 4
	TagWindowManager   uint64 = 1 << 5
	TagActivityManager uint64 = 1 << 6
	TagSyncManager     uint64 = 1 << 7
	TagAudio           uint64 = 1 << 8
	TagVideo           uint64 = 1 << 9
	TagCamera          uint64 = 1 << 10
	TagHAL             uint64 = 1 << 11
	TagNotReady        uint64 = 1 << 63
)

// Binding is a lazily resolved view of the atrace API.
type Binding struct {
	lib *dynlib.Library

	init        func()
	enabledTags func() uint64
	begin       func(name *byte)
	end         func()
	asyncBegin  func(name *byte, cookie int32)
	asyncEnd    func(name *byte, cookie int32)
	counter     func(name *byte, value int32)
	counter64   func(name *byte, value int64)
}

// New creates a binding. Resolution happens on the first call.
func New(opts ...dynlib.Option) *Binding {
	b := &Binding{}
	opts = append([]dynlib.Option{dynlib.WithComponent("atrace")}, opts...)
	b.lib = dynlib.New(Library, dynlib.SystemPaths(Library), []dynlib.Symbol{
		{Name: "atrace_init", Fn: &b.init},
		{Name: "atrace_get_enabled_tags", Fn: &b.enabledTags},
		{Name: "atrace_begin_body", Fn: &b.begin},
		{Name: "atrace_end_body", Fn: &b.end},
		{Name: "atrace_async_begin_body", Fn: &b.asyncBegin},
		{Name: "atrace_async_end_body", Fn: &b.asyncEnd},
		{Name: "atrace_int_body", Fn: &b.counter},
		{Name: "atrace_int64_body", Fn: &b.counter64},
	}, opts...)
	return b
}

// Library returns the underlying library for status inspection.
func (b *Binding) Library() *dynlib.Library {
	return b.lib
}

// Init is atrace_init.
func (b *Binding) Init() {
	b.lib.Ensure()
	if b.init != nil {
		b.init()
	}
}

// EnabledTags is atrace_get_enabled_tags. It returns TagNotReady without an
// implementation.
func (b *Binding) EnabledTags() uint64 {
	b.lib.Ensure()
	if b.enabledTags != nil {
		return b.enabledTags()
	}
	return TagNotReady
}

// Enabled reports whether any bit of tag is enabled and tracing is ready.
func (b *Binding) Enabled(tag uint64) bool {
	tags := b.EnabledTags()
	return tags&TagNotReady == 0 && tags&tag != 0
}

// BeginRaw is atrace_begin_body.
func (b *Binding) BeginRaw(name *byte) {
	b.lib.Ensure()
	if b.begin != nil {
		b.begin(name)
	}
}

// Begin opens a synchronous section on the calling thread.
func (b *Binding) Begin(name string) {
	b.BeginRaw(cstr.Ptr(name))
}

// End is atrace_end_body.
func (b *Binding) End() {
	b.lib.Ensure()
	if b.end != nil {
		b.end()
	}
}

// Section opens a section and returns the func that closes it.
func (b *Binding) Section(name string) func() {
	b.Begin(name)
	return b.End
}

// AsyncBeginRaw is atrace_async_begin_body.
func (b *Binding) AsyncBeginRaw(name *byte, cookie int32) {
	b.lib.Ensure()
	if b.asyncBegin != nil {
		b.asyncBegin(name, cookie)
	}
}

// AsyncBegin opens an async section identified by name and cookie.
func (b *Binding) AsyncBegin(name string, cookie int32) {
	b.AsyncBeginRaw(cstr.Ptr(name), cookie)
}

// AsyncEndRaw is atrace_async_end_body.
func (b *Binding) AsyncEndRaw(name *byte, cookie int32) {
	b.lib.Ensure()
	if b.asyncEnd != nil {
		b.asyncEnd(name, cookie)
	}
}

// AsyncEnd closes the async section opened with the same name and cookie.
func (b *Binding) AsyncEnd(name string, cookie int32) {
	b.AsyncEndRaw(cstr.Ptr(name), cookie)
}

// IntRaw is atrace_int_body.
func (b *Binding) IntRaw(name *byte, value int32) {
	b.lib.Ensure()
	if b.counter != nil {
		b.counter(name, value)
	}
}

// Int records a counter value.
func (b *Binding) Int(name string, value int32) {
	b.IntRaw(cstr.Ptr(name), value)
}

// Int64Raw is atrace_int64_body.
func (b *Binding) Int64Raw(name *byte, value int64) {
	b.lib.Ensure()
	if b.counter64 != nil {
		b.counter64(name, value)
	}
}

// Int64 records a 64-bit counter value.
func (b *Binding) Int64(name string, value int64) {
	b.Int64Raw(cstr.Ptr(name), value)
}
