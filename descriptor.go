// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import "fmt"

// Buffer is an opaque handle to a producer-owned graphics buffer.
// It is meaningful only to the [BufferBridge] that minted it.
type Buffer any

// ClientBuffer is the intermediate alias a [BufferBridge] produces from a
// Buffer, in a form the [ImageImporter] can import. A nil ClientBuffer
// means no alias is available for the buffer.
type ClientBuffer any

// ImportedImage is a GPU-context-scoped handle to a successfully imported
// buffer. It must be destroyed exactly once, under the display it was
// imported with; destroying it under any other display is undefined.
type ImportedImage any

// Display identifies the GPU display/context an image is imported under.
type Display any

// Surface identifies a presentable drawing surface of the context manager.
type Surface any

// Stream is an opaque handle to an external texture stream, owned by the
// [StreamManager] that acquired it.
type Stream any

// BufferUsage is the producer-declared usage bit-set of a buffer.
// The bit values match the Android hardware-buffer usage flags.
type BufferUsage uint64

const (
	// UsageCPUReadRarely marks buffers the CPU occasionally reads.
	UsageCPUReadRarely BufferUsage = 1 << 1

	// UsageCPUWriteRarely marks buffers the CPU occasionally writes.
	UsageCPUWriteRarely BufferUsage = 1 << 5

	// UsageGPUSampledImage marks buffers the GPU samples from.
	UsageGPUSampledImage BufferUsage = 1 << 8

	// UsageGPUFramebuffer marks buffers the GPU renders into.
	UsageGPUFramebuffer BufferUsage = 1 << 9

	// UsageProtectedContent marks buffers holding DRM-protected content.
	// Importing such a buffer requires the protected-content capability;
	// see [Capabilities].
	UsageProtectedContent BufferUsage = 1 << 14
)

// Protected reports whether the protected-content bit is set.
func (u BufferUsage) Protected() bool {
	return u&UsageProtectedContent != 0
}

// BufferDescriptor describes a producer buffer: its declared pixel format,
// geometry, and usage bits. Descriptors are obtained from
// [BufferBridge.Describe] and are immutable once queried; this package
// never constructs one ad hoc.
type BufferDescriptor struct {
	// Format is the declared pixel format.
	Format BufferFormat

	// Width and Height are the buffer dimensions in pixels.
	Width  uint32
	Height uint32

	// Layers is the layer count (1 for ordinary 2D buffers).
	Layers uint32

	// Usage is the producer-declared usage bit-set.
	Usage BufferUsage

	// SRGB marks the buffer as carrying sRGB-encoded content, requesting
	// a colorspace attribute at import time. Reserved for future use;
	// bridges currently leave it unset.
	SRGB bool
}

// String returns a compact description for logging.
func (d BufferDescriptor) String() string {
	return fmt.Sprintf("Buffer[%s %dx%dx%d usage=0x%x]",
		d.Format, d.Width, d.Height, d.Layers, uint64(d.Usage))
}
