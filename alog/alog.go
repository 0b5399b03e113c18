package alog

import (
	"fmt"

	"go.uber.org/zap/buffer"

	"github.com/wippyai/ndkshim/dynlib"
	"github.com/wippyai/ndkshim/internal/cstr"
)

// Library is the canonical soname of the log API.
const Library = "liblog.so"

// LogBufSize is liblog's LOG_BUF_SIZE; formatted messages are cut to fit.
const LogBufSize = 1024

// Priority is an android_LogPriority.
type Priority int32

const (
	PriorityUnknown Priority = iota
	PriorityDefault
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityFatal
	PrioritySilent
)

func (p Priority) String() string {
	switch p {
	case PriorityVerbose:
		return "V"
	case PriorityDebug:
		return "D"
	case PriorityInfo:
		return "I"
	case PriorityWarn:
		return "W"
	case PriorityError:
		return "E"
	case PriorityFatal:
		return "F"
	case PrioritySilent:
		return "S"
	default:
		return "?"
	}
}

// Buffer is a log_id_t.
type Buffer int32

const (
	BufferMain   Buffer = 0
	BufferRadio  Buffer = 1
	BufferEvents Buffer = 2
	BufferSystem Buffer = 3
	BufferCrash  Buffer = 4
)

var pool = buffer.NewPool()

// percentS is the format handed to __android_log_print when it stands in for
// a missing __android_log_write.
var percentS = []byte("%s\x00")

// Binding is a lazily resolved view of liblog.
type Binding struct {
	lib *dynlib.Library

	write      func(prio int32, tag, text *byte) int32
	bufWrite   func(buf, prio int32, tag, text *byte) int32
	isLoggable func(prio int32, tag *byte, def int32) int32

	// print is variadic in C. It is only ever called with a "%s" format and
	// one string, which every Android ABI passes like a fixed argument.
	print func(prio int32, tag, format, text *byte) int32

	// vprint takes a va_list, which Go cannot build; its address is handed
	// to C callers through VprintAddr.
	vprint uintptr
}

// New creates a binding. Resolution happens on the first call.
func New(opts ...dynlib.Option) *Binding {
	b := &Binding{}
	opts = append([]dynlib.Option{dynlib.WithComponent("log")}, opts...)
	b.lib = dynlib.New(Library, dynlib.SystemPaths(Library), []dynlib.Symbol{
		{Name: "__android_log_write", Fn: &b.write},
		{Name: "__android_log_buf_write", Fn: &b.bufWrite},
		{Name: "__android_log_is_loggable", Fn: &b.isLoggable},
		{Name: "__android_log_print", Fn: &b.print},
		{Name: "__android_log_vprint", Fn: &b.vprint},
	}, opts...)
	return b
}

// Library returns the underlying library for status inspection.
func (b *Binding) Library() *dynlib.Library {
	return b.lib
}

// WriteRaw is __android_log_write. When liblog lacks it but exports
// __android_log_print, text is written through print.
func (b *Binding) WriteRaw(prio int32, tag, text *byte) int32 {
	b.lib.Ensure()
	return b.writeText(prio, tag, text)
}

func (b *Binding) writeText(prio int32, tag, text *byte) int32 {
	switch {
	case b.write != nil:
		return b.write(prio, tag, text)
	case b.print != nil:
		return b.print(prio, tag, &percentS[0], text)
	}
	return 0
}

// VprintAddr returns the address of liblog's __android_log_vprint, or 0 when
// it is not exported. C callers holding a va_list forward to it directly.
func (b *Binding) VprintAddr() uintptr {
	b.lib.Ensure()
	return b.vprint
}

// Write logs text under tag.
func (b *Binding) Write(prio Priority, tag, text string) int32 {
	return b.WriteRaw(int32(prio), cstr.Ptr(tag), cstr.Ptr(text))
}

// BufWriteRaw is __android_log_buf_write.
func (b *Binding) BufWriteRaw(buf, prio int32, tag, text *byte) int32 {
	b.lib.Ensure()
	if b.bufWrite != nil {
		return b.bufWrite(buf, prio, tag, text)
	}
	return 0
}

// BufWrite logs text into a specific log buffer.
func (b *Binding) BufWrite(buf Buffer, prio Priority, tag, text string) int32 {
	return b.BufWriteRaw(int32(buf), int32(prio), cstr.Ptr(tag), cstr.Ptr(text))
}

// IsLoggableRaw is __android_log_is_loggable.
func (b *Binding) IsLoggableRaw(prio int32, tag *byte, def int32) int32 {
	b.lib.Ensure()
	if b.isLoggable != nil {
		return b.isLoggable(prio, tag, def)
	}
	return 0
}

// IsLoggable reports whether prio passes the tag's configured level, using
// def when no level is configured.
func (b *Binding) IsLoggable(prio Priority, tag string, def Priority) bool {
	return b.IsLoggableRaw(int32(prio), cstr.Ptr(tag), int32(def)) != 0
}

// Print formats according to format and logs the result.
func (b *Binding) Print(prio Priority, tag, format string, args ...any) int32 {
	return b.Vprint(prio, tag, format, args)
}

// Vprint is Print with an explicit argument list. With no arguments format is
// written verbatim. The formatting buffer is pooled and released on every path.
func (b *Binding) Vprint(prio Priority, tag, format string, args []any) int32 {
	b.lib.Ensure()
	if b.write == nil && b.print == nil {
		return 0
	}

	buf := pool.Get()
	defer buf.Free()

	if len(args) == 0 {
		buf.AppendString(format)
	} else {
		fmt.Fprintf(buf, format, args...)
	}

	msg := buf.Bytes()
	if len(msg) > LogBufSize-1 {
		msg = msg[:LogBufSize-1]
	}
	msg = append(msg, 0)
	return b.writeText(int32(prio), cstr.Ptr(tag), &msg[0])
}
