// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import (
	"fmt"
	"sync/atomic"
)

// TextureID is a GPU texture object name. Zero is never a valid id.
type TextureID uint32

// Filter is a texture sampling filter.
type Filter uint8

const (
	// FilterLinear is bilinear filtering.
	FilterLinear Filter = iota

	// FilterLinearMipmapLinear is trilinear filtering across mip levels.
	FilterLinearMipmapLinear
)

// String returns a human-readable name for the filter.
func (f Filter) String() string {
	switch f {
	case FilterLinear:
		return "Linear"
	case FilterLinearMipmapLinear:
		return "LinearMipmapLinear"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// ExternalTexture is a GPU texture backed by an imported external buffer.
// It is created by [Platform.CreateExternalImageTexture] and exclusively
// owned by the caller from the moment it is returned.
//
// The caller must Close the texture exactly once. Close tears down both
// the texture object and its backing imported image explicitly; the
// package never relies on the driver releasing the backing import as a
// side effect of texture deletion.
type ExternalTexture struct {
	id     TextureID
	target SamplingTarget

	// Backing import, destroyed under the display it was created with.
	image   ImportedImage
	display Display

	platform *Platform
	released atomic.Bool
}

// ID returns the texture object id.
func (t *ExternalTexture) ID() TextureID { return t.id }

// Target returns the sampling target the texture is bound through.
func (t *ExternalTexture) Target() SamplingTarget { return t.target }

// Image returns the backing imported image. The texture retains ownership.
func (t *ExternalTexture) Image() ImportedImage { return t.image }

// IsReleased reports whether Close has been called.
func (t *ExternalTexture) IsReleased() bool { return t.released.Load() }

// Close releases the texture object and its backing imported image.
// Close is idempotent but must run on the context-owning goroutine; the
// backing image is context-affine.
func (t *ExternalTexture) Close() {
	if t.released.Swap(true) {
		return // already released
	}

	p := t.platform
	p.checkThread("ExternalTexture.Close")

	p.textures.DeleteTexture(t.id)
	p.stats.liveTextures.Add(-1)

	if err := p.importer.DestroyImage(t.display, t.image); err != nil {
		p.logger().Warn("extimage: destroy of backing image failed",
			"texture", uint32(t.id), "error", err)
	}
	p.stats.liveImages.Add(-1)

	t.image = nil
	t.display = nil
}

// String returns a string representation of the texture.
func (t *ExternalTexture) String() string {
	status := "active"
	if t.released.Load() {
		status = "released"
	}
	return fmt.Sprintf("ExternalTexture[%d %s %s]", t.id, t.target, status)
}
