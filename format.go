// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// BufferFormat is the pixel format a producer declares for its buffer.
// The enumerant values match the Android hardware-buffer format values so
// that descriptors queried from a native bridge need no translation.
type BufferFormat uint32

const (
	// FormatRGBA8888 is 8-bit-per-channel RGBA.
	FormatRGBA8888 BufferFormat = 1

	// FormatRGBX8888 is 8-bit-per-channel RGB with an ignored alpha byte.
	FormatRGBX8888 BufferFormat = 2

	// FormatRGB888 is packed 8-bit-per-channel RGB.
	FormatRGB888 BufferFormat = 3

	// FormatRGB565 is 16-bit RGB.
	FormatRGB565 BufferFormat = 4

	// FormatRGBA16F is half-float RGBA.
	FormatRGBA16F BufferFormat = 0x16

	// FormatBlob is an untyped memory blob with no pixel layout.
	FormatBlob BufferFormat = 0x21

	// FormatY8Cb8Cr8_420 is planar 4:2:0 YUV, the common camera and video
	// decoder output format.
	FormatY8Cb8Cr8_420 BufferFormat = 0x23

	// FormatRGBA1010102 is 10-10-10-2 RGBA.
	FormatRGBA1010102 BufferFormat = 0x2b

	// Depth/stencil formats.
	FormatD16    BufferFormat = 0x30
	FormatD24    BufferFormat = 0x31
	FormatD24S8  BufferFormat = 0x32
	FormatD32F   BufferFormat = 0x33
	FormatD32FS8 BufferFormat = 0x34
	FormatS8     BufferFormat = 0x35
)

// String returns a human-readable name for the format.
func (f BufferFormat) String() string {
	switch f {
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatRGBX8888:
		return "RGBX8888"
	case FormatRGB888:
		return "RGB888"
	case FormatRGB565:
		return "RGB565"
	case FormatRGBA16F:
		return "RGBA16F"
	case FormatBlob:
		return "Blob"
	case FormatY8Cb8Cr8_420:
		return "Y8Cb8Cr8_420"
	case FormatRGBA1010102:
		return "RGBA1010102"
	case FormatD16:
		return "D16"
	case FormatD24:
		return "D24"
	case FormatD24S8:
		return "D24S8"
	case FormatD32F:
		return "D32F"
	case FormatD32FS8:
		return "D32FS8"
	case FormatS8:
		return "S8"
	default:
		return fmt.Sprintf("Unknown(0x%x)", uint32(f))
	}
}

// SamplingTarget selects the texture-sampling path an imported image must
// be bound through. It is a tag derived from the buffer format, not a
// resource of its own.
type SamplingTarget uint8

const (
	// TargetExternal samples through the opaque external-image path.
	// External samplers handle non-linear layouts (YUV, vendor-private,
	// compressed) and do not support mipmaps.
	TargetExternal SamplingTarget = iota

	// Target2D samples as an ordinary, directly addressable 2D texture.
	Target2D
)

// String returns a human-readable name for the target.
func (t SamplingTarget) String() string {
	switch t {
	case TargetExternal:
		return "External"
	case Target2D:
		return "2D"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Classify maps a buffer format to its sampling target.
//
// The RGB family and all depth/stencil formats are directly addressable and
// classify as [Target2D]. Every other format classifies as [TargetExternal]:
// producers hand out YUV formats that are not documented anywhere (vendor
// tilings, bandwidth-compressed variants), so any format this package does
// not positively recognize as linear is assumed non-linear and routed
// through the external sampler. Classification is total and never fails.
//
// Classify depends only on the format. Usage flags and runtime state play
// no part in the decision.
func Classify(f BufferFormat) SamplingTarget {
	switch f {
	case FormatRGBA8888,
		FormatRGBX8888,
		FormatRGB888,
		FormatRGB565,
		FormatRGBA16F,
		FormatRGBA1010102,
		FormatD16,
		FormatD24,
		FormatD24S8,
		FormatD32F,
		FormatD32FS8,
		FormatS8:
		return Target2D
	}
	return TargetExternal
}

// ToGPUFormat maps an addressable buffer format onto the gputypes texture
// format vocabulary, for hosts that mirror imported textures into a WebGPU
// style pipeline. Formats without a gputypes equivalent (the packed 16-bit
// and 24-bit RGB layouts) and all external-only formats map to
// [gputypes.TextureFormatUndefined].
func (f BufferFormat) ToGPUFormat() gputypes.TextureFormat {
	switch f {
	case FormatRGBA8888, FormatRGBX8888:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatRGBA16F:
		return gputypes.TextureFormatRGBA16Float
	case FormatRGBA1010102:
		return gputypes.TextureFormatRGB10A2Unorm
	case FormatD16:
		return gputypes.TextureFormatDepth16Unorm
	case FormatD24:
		return gputypes.TextureFormatDepth24Plus
	case FormatD24S8:
		return gputypes.TextureFormatDepth24PlusStencil8
	case FormatD32F:
		return gputypes.TextureFormatDepth32Float
	case FormatD32FS8:
		return gputypes.TextureFormatDepth32FloatStencil8
	case FormatS8:
		return gputypes.TextureFormatStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}
