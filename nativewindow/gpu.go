package nativewindow

import "github.com/gogpu/gputypes"

// TextureFormat returns the GPU texture format matching f, or
// TextureFormatUndefined when there is no direct equivalent.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatR8G8B8A8Unorm, FormatR8G8B8X8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatB8G8R8A8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatD24UnormS8Uint:
		return gputypes.TextureFormatDepth24PlusStencil8
	case FormatR8Unorm:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FormatFromTexture returns the hardware buffer format for a GPU texture
// format. ok is false when the platform has no matching format.
func FormatFromTexture(tf gputypes.TextureFormat) (Format, bool) {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatR8G8B8A8Unorm, true
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatB8G8R8A8Unorm, true
	case gputypes.TextureFormatDepth24PlusStencil8:
		return FormatD24UnormS8Uint, true
	case gputypes.TextureFormatR8Unorm:
		return FormatR8Unorm, true
	default:
		return 0, false
	}
}

// TextureUsage returns the GPU usages implied by u. CPU access bits map to
// copy usages since mapped buffers are staged through copies.
func (u Usage) TextureUsage() gputypes.TextureUsage {
	var tu gputypes.TextureUsage
	if u&UsageGPUSampledImage != 0 {
		tu |= gputypes.TextureUsageTextureBinding
	}
	if u&UsageGPUFramebuffer != 0 {
		tu |= gputypes.TextureUsageRenderAttachment
	}
	if u&UsageCPUReadMask != 0 {
		tu |= gputypes.TextureUsageCopySrc
	}
	if u&UsageCPUWriteMask != 0 {
		tu |= gputypes.TextureUsageCopyDst
	}
	return tu
}

// UsageFromTexture is the inverse of Usage.TextureUsage. Copy usages request
// CPU access that is expected to be frequent.
func UsageFromTexture(tu gputypes.TextureUsage) Usage {
	var u Usage
	if tu&gputypes.TextureUsageTextureBinding != 0 {
		u |= UsageGPUSampledImage
	}
	if tu&gputypes.TextureUsageRenderAttachment != 0 {
		u |= UsageGPUFramebuffer
	}
	if tu&gputypes.TextureUsageCopySrc != 0 {
		u |= UsageCPUReadOften
	}
	if tu&gputypes.TextureUsageCopyDst != 0 {
		u |= UsageCPUWriteOften
	}
	return u
}

// DescFor builds an allocation descriptor for a single-layer texture.
func DescFor(width, height uint32, tf gputypes.TextureFormat, tu gputypes.TextureUsage) (HardwareBufferDesc, bool) {
	f, ok := FormatFromTexture(tf)
	if !ok {
		return HardwareBufferDesc{}, false
	}
	return HardwareBufferDesc{
		Width:  width,
		Height: height,
		Layers: 1,
		Format: f,
		Usage:  UsageFromTexture(tu),
	}, true
}
