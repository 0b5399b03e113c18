// Command ndkshim builds a shared library that exports the Android property,
// log, trace, sync and native window C functions. Each export forwards to the
// platform library when it can be loaded and otherwise returns a safe default,
// so drivers linked against the platform headers load on any device.
//
// Build with:
//
//	go build -buildmode=c-shared -o libndkshim.so ./cmd/ndkshim
package main

import "C"

import (
	"unsafe"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/ndkshim/alog"
	"github.com/wippyai/ndkshim/dynlib"
)

func init() {
	dynlib.SetLogger(alog.NewLogger("ndkshim", zapcore.InfoLevel))
}

func main() {}

func str(p *C.char) *byte {
	return (*byte)(unsafe.Pointer(p))
}

func ptr(u uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&u))
}
