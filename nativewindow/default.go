package nativewindow

import "github.com/wippyai/ndkshim/dynlib"

var std = newDefault()

func newDefault() *Binding {
	b := New()
	dynlib.Register(b.lib)
	return b
}

// Default returns the process-wide binding used by the package functions.
func Default() *Binding { return std }

func BufferHardwareBuffer(buf Buffer) HardwareBuffer { return std.BufferHardwareBuffer(buf) }
func AcquireHardwareBuffer(hb HardwareBuffer)        { std.AcquireHardwareBuffer(hb) }
func ReleaseHardwareBuffer(hb HardwareBuffer)        { std.ReleaseHardwareBuffer(hb) }

func DescribeHardwareBuffer(hb HardwareBuffer, desc *HardwareBufferDesc) {
	std.DescribeHardwareBuffer(hb, desc)
}

func AllocateHardwareBuffer(desc HardwareBufferDesc) (HardwareBuffer, int32) {
	return std.AllocateHardwareBuffer(desc)
}

func HardwareBufferNativeHandle(hb HardwareBuffer) NativeHandle {
	return std.HardwareBufferNativeHandle(hb)
}

func AcquireWindow(w Window)                          { std.AcquireWindow(w) }
func ReleaseWindow(w Window)                          { std.ReleaseWindow(w) }
func WindowFormat(w Window) int32                     { return std.Format(w) }
func Width(w Window) int32                            { return std.Width(w) }
func Height(w Window) int32                           { return std.Height(w) }
func SetSwapInterval(w Window, interval int32) int32  { return std.SetSwapInterval(w, interval) }
func QueryWindow(w Window, what Query) (int32, int32) { return std.Query(w, what) }
func DequeueBuffer(w Window) (Buffer, int32, int32)   { return std.DequeueBuffer(w) }

func QueueBuffer(w Window, buf Buffer, fenceFd int32) int32 {
	return std.QueueBuffer(w, buf, fenceFd)
}

func CancelBuffer(w Window, buf Buffer, fenceFd int32) int32 {
	return std.CancelBuffer(w, buf, fenceFd)
}

func SetUsage(w Window, usage Usage) int32            { return std.SetUsage(w, usage) }
func SetSharedBufferMode(w Window, shared bool) int32 { return std.SetSharedBufferMode(w, shared) }
