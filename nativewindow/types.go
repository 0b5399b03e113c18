package nativewindow

import "strconv"

// Opaque platform pointers. They are never dereferenced on the Go side.
type (
	// Window is an ANativeWindow*.
	Window uintptr
	// Buffer is an ANativeWindowBuffer*.
	Buffer uintptr
	// HardwareBuffer is an AHardwareBuffer*.
	HardwareBuffer uintptr
	// NativeHandle is a const native_handle_t*.
	NativeHandle uintptr
)

// Format is an AHardwareBuffer_Format.
type Format uint32

const (
	FormatR8G8B8A8Unorm     Format = 1
	FormatR8G8B8X8Unorm     Format = 2
	FormatR8G8B8Unorm       Format = 3
	FormatR5G6B5Unorm       Format = 4
	FormatB8G8R8A8Unorm     Format = 5
	FormatR16G16B16A16Float Format = 0x16
	FormatR10G10B10A2Unorm  Format = 0x2b
	FormatBlob              Format = 0x21
	FormatY8Cb8Cr8_420      Format = 0x23
	FormatD16Unorm          Format = 0x30
	FormatD24Unorm          Format = 0x31
	FormatD24UnormS8Uint    Format = 0x32
	FormatD32Float          Format = 0x33
	FormatD32FloatS8Uint    Format = 0x34
	FormatS8Uint            Format = 0x35
	FormatR8Unorm           Format = 0x38
)

// Usage is a mask of AHardwareBuffer_UsageFlags.
type Usage uint64

const (
	UsageCPUReadNever      Usage = 0
	UsageCPUReadRarely     Usage = 2
	UsageCPUReadOften      Usage = 3
	UsageCPUReadMask       Usage = 0xF
	UsageCPUWriteNever     Usage = 0
	UsageCPUWriteRarely    Usage = 2 << 4
	UsageCPUWriteOften     Usage = 3 << 4
	UsageCPUWriteMask      Usage = 0xF << 4
	UsageGPUSampledImage   Usage = 1 << 8
	UsageGPUFramebuffer    Usage = 1 << 9
	UsageComposerOverlay   Usage = 1 << 11
	UsageProtectedContent  Usage = 1 << 14
	UsageVideoEncode       Usage = 1 << 16
	UsageSensorDirectData  Usage = 1 << 23
	UsageGPUDataBuffer     Usage = 1 << 24
	UsageGPUCubeMap        Usage = 1 << 25
	UsageGPUMipmapComplete Usage = 1 << 26
	UsageGPUColorOutput    Usage = UsageGPUFramebuffer
	UsageFrontBuffer       Usage = 1 << 32
)

// Query is an ANativeWindowQuery.
type Query int32

const (
	QueryMinUndequeuedBuffers Query = 3
	QueryDefaultWidth         Query = 6
	QueryDefaultHeight        Query = 7
	QueryTransformHint        Query = 8
	QueryBufferAge            Query = 13
	QueryMinSwapInterval      Query = 0x10000
	QueryMaxSwapInterval      Query = 0x10001
	QueryXDPI                 Query = 0x10002
	QueryYDPI                 Query = 0x10003
)

// HardwareBufferDesc mirrors AHardwareBuffer_Desc.
type HardwareBufferDesc struct {
	Width  uint32
	Height uint32
	Layers uint32
	Format Format
	Usage  Usage
	Stride uint32
	_      uint32
	_      uint64
}

func (f Format) String() string {
	switch f {
	case FormatR8G8B8A8Unorm:
		return "R8G8B8A8_UNORM"
	case FormatR8G8B8X8Unorm:
		return "R8G8B8X8_UNORM"
	case FormatR8G8B8Unorm:
		return "R8G8B8_UNORM"
	case FormatR5G6B5Unorm:
		return "R5G6B5_UNORM"
	case FormatB8G8R8A8Unorm:
		return "B8G8R8A8_UNORM"
	case FormatR16G16B16A16Float:
		return "R16G16B16A16_FLOAT"
	case FormatR10G10B10A2Unorm:
		return "R10G10B10A2_UNORM"
	case FormatBlob:
		return "BLOB"
	case FormatY8Cb8Cr8_420:
		return "Y8Cb8Cr8_420"
	case FormatD16Unorm:
		return "D16_UNORM"
	case FormatD24Unorm:
		return "D24_UNORM"
	case FormatD24UnormS8Uint:
		return "D24_UNORM_S8_UINT"
	case FormatD32Float:
		return "D32_FLOAT"
	case FormatD32FloatS8Uint:
		return "D32_FLOAT_S8_UINT"
	case FormatS8Uint:
		return "S8_UINT"
	case FormatR8Unorm:
		return "R8_UNORM"
	default:
		return "FORMAT(0x" + strconv.FormatUint(uint64(f), 16) + ")"
	}
}
