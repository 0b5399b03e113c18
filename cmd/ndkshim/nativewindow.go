package main

/*
#include <stdbool.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	nw "github.com/wippyai/ndkshim/nativewindow"
)

//export ANativeWindowBuffer_getHardwareBuffer
func ANativeWindowBuffer_getHardwareBuffer(buf unsafe.Pointer) unsafe.Pointer {
	return ptr(uintptr(nw.BufferHardwareBuffer(nw.Buffer(buf))))
}

//export AHardwareBuffer_acquire
func AHardwareBuffer_acquire(hb unsafe.Pointer) {
	nw.AcquireHardwareBuffer(nw.HardwareBuffer(hb))
}

//export AHardwareBuffer_release
func AHardwareBuffer_release(hb unsafe.Pointer) {
	nw.ReleaseHardwareBuffer(nw.HardwareBuffer(hb))
}

//export AHardwareBuffer_describe
func AHardwareBuffer_describe(hb, desc unsafe.Pointer) {
	nw.DescribeHardwareBuffer(nw.HardwareBuffer(hb), (*nw.HardwareBufferDesc)(desc))
}

//export AHardwareBuffer_allocate
func AHardwareBuffer_allocate(desc unsafe.Pointer, out *unsafe.Pointer) C.int {
	rc := nw.Default().AllocateHardwareBufferRaw((*nw.HardwareBufferDesc)(desc), (*nw.HardwareBuffer)(unsafe.Pointer(out)))
	return C.int(rc)
}

//export AHardwareBuffer_getNativeHandle
func AHardwareBuffer_getNativeHandle(hb unsafe.Pointer) unsafe.Pointer {
	return ptr(uintptr(nw.HardwareBufferNativeHandle(nw.HardwareBuffer(hb))))
}

//export ANativeWindow_acquire
func ANativeWindow_acquire(w unsafe.Pointer) {
	nw.AcquireWindow(nw.Window(w))
}

//export ANativeWindow_release
func ANativeWindow_release(w unsafe.Pointer) {
	nw.ReleaseWindow(nw.Window(w))
}

//export ANativeWindow_getFormat
func ANativeWindow_getFormat(w unsafe.Pointer) C.int32_t {
	return C.int32_t(nw.WindowFormat(nw.Window(w)))
}

//export ANativeWindow_getWidth
func ANativeWindow_getWidth(w unsafe.Pointer) C.int32_t {
	return C.int32_t(nw.Width(nw.Window(w)))
}

//export ANativeWindow_getHeight
func ANativeWindow_getHeight(w unsafe.Pointer) C.int32_t {
	return C.int32_t(nw.Height(nw.Window(w)))
}

//export ANativeWindow_setSwapInterval
func ANativeWindow_setSwapInterval(w unsafe.Pointer, interval C.int) C.int {
	return C.int(nw.SetSwapInterval(nw.Window(w), int32(interval)))
}

//export ANativeWindow_query
func ANativeWindow_query(w unsafe.Pointer, what C.int, value *C.int) C.int {
	return C.int(nw.Default().QueryRaw(nw.Window(w), int32(what), (*int32)(unsafe.Pointer(value))))
}

//export ANativeWindow_dequeueBuffer
func ANativeWindow_dequeueBuffer(w unsafe.Pointer, buf *unsafe.Pointer, fenceFd *C.int) C.int {
	rc := nw.Default().DequeueBufferRaw(nw.Window(w), (*nw.Buffer)(unsafe.Pointer(buf)), (*int32)(unsafe.Pointer(fenceFd)))
	return C.int(rc)
}

//export ANativeWindow_queueBuffer
func ANativeWindow_queueBuffer(w, buf unsafe.Pointer, fenceFd C.int) C.int {
	return C.int(nw.QueueBuffer(nw.Window(w), nw.Buffer(buf), int32(fenceFd)))
}

//export ANativeWindow_cancelBuffer
func ANativeWindow_cancelBuffer(w, buf unsafe.Pointer, fenceFd C.int) C.int {
	return C.int(nw.CancelBuffer(nw.Window(w), nw.Buffer(buf), int32(fenceFd)))
}

//export ANativeWindow_setUsage
func ANativeWindow_setUsage(w unsafe.Pointer, usage C.uint64_t) C.int {
	return C.int(nw.SetUsage(nw.Window(w), nw.Usage(usage)))
}

//export ANativeWindow_setSharedBufferMode
func ANativeWindow_setSharedBufferMode(w unsafe.Pointer, shared C.bool) C.int {
	return C.int(nw.SetSharedBufferMode(nw.Window(w), bool(shared)))
}
