// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import "strings"

// Extension names consulted when resolving capabilities.
const (
	extNativeClientBuffer = "EGL_ANDROID_get_native_client_buffer"
	extPresentationTime   = "EGL_ANDROID_presentation_time"
	extFrameTimestamps    = "EGL_ANDROID_get_frame_timestamps"
	extProtectedContent   = "EGL_EXT_protected_content"
	extGLColorSpace       = "EGL_KHR_gl_colorspace"
)

// protectedContentMinAPILevel is the first platform API level on which the
// protected-content import attribute is honored.
const protectedContentMinAPILevel = 26

// Capabilities is the process-scoped capability set of the running platform.
// It is resolved exactly once, at [New] time, before any concurrent caller
// may enter the package, and is immutable afterwards. Components query it
// explicitly instead of branching on version checks inline.
type Capabilities struct {
	// NativeClientBuffer reports whether the bridge can alias producer
	// buffers for import.
	NativeClientBuffer bool

	// ProtectedContent reports whether the protected-content import
	// attribute is honored. Requires both the driver extension and a new
	// enough platform; this depends on the OS the binary runs on, not the
	// one it was built against.
	ProtectedContent bool

	// PresentationTime reports whether presentation-time hints are honored.
	PresentationTime bool

	// FrameTimestamps reports whether frame-timestamp queries are honored.
	FrameTimestamps bool

	// SRGBColorSpace reports whether the sRGB colorspace import attribute
	// is honored.
	SRGBColorSpace bool

	// APILevel is the platform API level the capability set was resolved
	// against. Zero means unknown.
	APILevel int
}

// ResolveCapabilities builds the capability set from a space-separated
// driver extension string and the runtime platform API level.
//
// An unknown API level (zero; negative values are treated as zero) disables
// the version-gated capabilities regardless of what the driver advertises.
func ResolveCapabilities(extensions string, apiLevel int) Capabilities {
	if apiLevel < 0 {
		apiLevel = 0
	}
	exts := make(map[string]bool)
	for _, e := range strings.Fields(extensions) {
		exts[e] = true
	}
	return Capabilities{
		NativeClientBuffer: exts[extNativeClientBuffer],
		ProtectedContent:   exts[extProtectedContent] && apiLevel >= protectedContentMinAPILevel,
		PresentationTime:   exts[extPresentationTime],
		FrameTimestamps:    exts[extFrameTimestamps],
		SRGBColorSpace:     exts[extGLColorSpace],
		APILevel:           apiLevel,
	}
}
