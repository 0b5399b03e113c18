package nativewindow

import "github.com/wippyai/ndkshim/dynlib"

// Library is the canonical soname of the native window API.
const Library = "libnativewindow.so"

// Binding is a lazily resolved view of libnativewindow.
type Binding struct {
	lib *dynlib.Library

	getHardwareBuffer func(b Buffer) HardwareBuffer

	hbAcquire      func(hb HardwareBuffer)
	hbRelease      func(hb HardwareBuffer)
	hbDescribe     func(hb HardwareBuffer, desc *HardwareBufferDesc)
	hbAllocate     func(desc *HardwareBufferDesc, out *HardwareBuffer) int32
	hbNativeHandle func(hb HardwareBuffer) NativeHandle

	winAcquire          func(w Window)
	winRelease          func(w Window)
	getFormat           func(w Window) int32
	getWidth            func(w Window) int32
	getHeight           func(w Window) int32
	setSwapInterval     func(w Window, interval int32) int32
	query               func(w Window, what int32, value *int32) int32
	dequeueBuffer       func(w Window, buf *Buffer, fenceFd *int32) int32
	queueBuffer         func(w Window, buf Buffer, fenceFd int32) int32
	cancelBuffer        func(w Window, buf Buffer, fenceFd int32) int32
	setUsage            func(w Window, usage uint64) int32
	setSharedBufferMode func(w Window, shared bool) int32
}

// New creates a binding. Resolution happens on the first call.
func New(opts ...dynlib.Option) *Binding {
	b := &Binding{}
	opts = append([]dynlib.Option{dynlib.WithComponent("nativewindow")}, opts...)
	b.lib = dynlib.New(Library, dynlib.SystemPaths(Library), []dynlib.Symbol{
		{Name: "ANativeWindowBuffer_getHardwareBuffer", Fn: &b.getHardwareBuffer},
		{Name: "AHardwareBuffer_acquire", Fn: &b.hbAcquire},
		{Name: "AHardwareBuffer_release", Fn: &b.hbRelease},
		{Name: "AHardwareBuffer_describe", Fn: &b.hbDescribe},
		{Name: "AHardwareBuffer_allocate", Fn: &b.hbAllocate},
		{Name: "AHardwareBuffer_getNativeHandle", Fn: &b.hbNativeHandle},
		{Name: "ANativeWindow_acquire", Fn: &b.winAcquire},
		{Name: "ANativeWindow_release", Fn: &b.winRelease},
		{Name: "ANativeWindow_getFormat", Fn: &b.getFormat},
		{Name: "ANativeWindow_getWidth", Fn: &b.getWidth},
		{Name: "ANativeWindow_getHeight", Fn: &b.getHeight},
		{Name: "ANativeWindow_setSwapInterval", Fn: &b.setSwapInterval},
		{Name: "ANativeWindow_query", Fn: &b.query},
		{Name: "ANativeWindow_dequeueBuffer", Fn: &b.dequeueBuffer},
		{Name: "ANativeWindow_queueBuffer", Fn: &b.queueBuffer},
		{Name: "ANativeWindow_cancelBuffer", Fn: &b.cancelBuffer},
		{Name: "ANativeWindow_setUsage", Fn: &b.setUsage},
		{Name: "ANativeWindow_setSharedBufferMode", Fn: &b.setSharedBufferMode},
	}, opts...)
	return b
}

// Library returns the underlying library for status inspection.
func (b *Binding) Library() *dynlib.Library {
	return b.lib
}

// BufferHardwareBuffer returns the hardware buffer backing a window buffer.
func (b *Binding) BufferHardwareBuffer(buf Buffer) HardwareBuffer {
	b.lib.Ensure()
	if b.getHardwareBuffer != nil {
		return b.getHardwareBuffer(buf)
	}
	return 0
}

// AcquireHardwareBuffer takes a reference on hb.
func (b *Binding) AcquireHardwareBuffer(hb HardwareBuffer) {
	b.lib.Ensure()
	if b.hbAcquire != nil {
		b.hbAcquire(hb)
	}
}

// ReleaseHardwareBuffer drops a reference on hb.
func (b *Binding) ReleaseHardwareBuffer(hb HardwareBuffer) {
	b.lib.Ensure()
	if b.hbRelease != nil {
		b.hbRelease(hb)
	}
}

// DescribeHardwareBuffer fills desc with the properties of hb. The stub
// leaves desc untouched.
func (b *Binding) DescribeHardwareBuffer(hb HardwareBuffer, desc *HardwareBufferDesc) {
	b.lib.Ensure()
	if b.hbDescribe != nil {
		b.hbDescribe(hb, desc)
	}
}

// AllocateHardwareBufferRaw is AHardwareBuffer_allocate.
func (b *Binding) AllocateHardwareBufferRaw(desc *HardwareBufferDesc, out *HardwareBuffer) int32 {
	b.lib.Ensure()
	if b.hbAllocate != nil {
		return b.hbAllocate(desc, out)
	}
	if out != nil {
		*out = 0
	}
	return errNoSys
}

// AllocateHardwareBuffer allocates a buffer matching desc. The returned
// status is 0 on success or a negative errno.
func (b *Binding) AllocateHardwareBuffer(desc HardwareBufferDesc) (HardwareBuffer, int32) {
	var hb HardwareBuffer
	rc := b.AllocateHardwareBufferRaw(&desc, &hb)
	return hb, rc
}

// HardwareBufferNativeHandle returns the native handle of hb.
func (b *Binding) HardwareBufferNativeHandle(hb HardwareBuffer) NativeHandle {
	b.lib.Ensure()
	if b.hbNativeHandle != nil {
		return b.hbNativeHandle(hb)
	}
	return 0
}

// AcquireWindow takes a reference on w.
func (b *Binding) AcquireWindow(w Window) {
	b.lib.Ensure()
	if b.winAcquire != nil {
		b.winAcquire(w)
	}
}

// ReleaseWindow drops a reference on w.
func (b *Binding) ReleaseWindow(w Window) {
	b.lib.Ensure()
	if b.winRelease != nil {
		b.winRelease(w)
	}
}

func (b *Binding) Format(w Window) int32 {
	b.lib.Ensure()
	if b.getFormat != nil {
		return b.getFormat(w)
	}
	return 0
}

func (b *Binding) Width(w Window) int32 {
	b.lib.Ensure()
	if b.getWidth != nil {
		return b.getWidth(w)
	}
	return 0
}

func (b *Binding) Height(w Window) int32 {
	b.lib.Ensure()
	if b.getHeight != nil {
		return b.getHeight(w)
	}
	return 0
}

func (b *Binding) SetSwapInterval(w Window, interval int32) int32 {
	b.lib.Ensure()
	if b.setSwapInterval != nil {
		return b.setSwapInterval(w, interval)
	}
	return 0
}

// QueryRaw is ANativeWindow_query. The stub stores 0 in value.
func (b *Binding) QueryRaw(w Window, what int32, value *int32) int32 {
	b.lib.Ensure()
	if b.query != nil {
		return b.query(w, what, value)
	}
	if value != nil {
		*value = 0
	}
	return 0
}

// Query returns the value of a window attribute and the call status.
func (b *Binding) Query(w Window, what Query) (int32, int32) {
	var v int32
	rc := b.QueryRaw(w, int32(what), &v)
	return v, rc
}

// DequeueBufferRaw is ANativeWindow_dequeueBuffer. The stub reports no buffer
// and no fence.
func (b *Binding) DequeueBufferRaw(w Window, buf *Buffer, fenceFd *int32) int32 {
	b.lib.Ensure()
	if b.dequeueBuffer != nil {
		return b.dequeueBuffer(w, buf, fenceFd)
	}
	if buf != nil {
		*buf = 0
	}
	if fenceFd != nil {
		*fenceFd = -1
	}
	return errNoSys
}

// DequeueBuffer obtains the next buffer to render into along with the fence
// that must signal before writing to it.
func (b *Binding) DequeueBuffer(w Window) (Buffer, int32, int32) {
	var (
		buf Buffer
		fd  int32
	)
	rc := b.DequeueBufferRaw(w, &buf, &fd)
	return buf, fd, rc
}

func (b *Binding) QueueBuffer(w Window, buf Buffer, fenceFd int32) int32 {
	b.lib.Ensure()
	if b.queueBuffer != nil {
		return b.queueBuffer(w, buf, fenceFd)
	}
	return 0
}

func (b *Binding) CancelBuffer(w Window, buf Buffer, fenceFd int32) int32 {
	b.lib.Ensure()
	if b.cancelBuffer != nil {
		return b.cancelBuffer(w, buf, fenceFd)
	}
	return 0
}

func (b *Binding) SetUsage(w Window, usage Usage) int32 {
	b.lib.Ensure()
	if b.setUsage != nil {
		return b.setUsage(w, uint64(usage))
	}
	return 0
}

func (b *Binding) SetSharedBufferMode(w Window, shared bool) int32 {
	b.lib.Ensure()
	if b.setSharedBufferMode != nil {
		return b.setSharedBufferMode(w, shared)
	}
	return 0
}
