// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import "fmt"

// CreateExternalImageTexture imports a producer buffer and binds it to a
// newly allocated texture object, sampleable through the target selected
// by [Classify].
//
// On success, ownership of the returned texture and its backing imported
// image passes to the caller, who must eventually Close it. On any
// failure, the error wraps one of the package sentinels, the failing step
// is logged, and zero live resources remain: no texture object, no
// imported image.
//
// Must be called on the goroutine owning the GPU context.
func (p *Platform) CreateExternalImageTexture(buf Buffer) (*ExternalTexture, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	p.checkThread("CreateExternalImageTexture")

	// Step 1: describe and classify. Unknown formats are assumed
	// non-linear and sample through the external path.
	desc := p.bridge.Describe(buf)
	target := Classify(desc.Format)
	log := p.logger()
	log.Debug("extimage: creating external image texture",
		"buffer", desc.String(), "target", target.String())

	// Step 2: alias the opaque buffer. Failing this is a hard fail with
	// nothing allocated.
	clientBuf := p.bridge.ClientBuffer(buf)
	if clientBuf == nil {
		p.stats.importFailures.Add(1)
		log.Error("extimage: no client-buffer alias", "format", desc.Format.String())
		return nil, fmt.Errorf("%w: format %s", ErrBufferAliasUnavailable, desc.Format)
	}

	// Step 3: attribute list. Protected content is capability-gated and
	// silently omitted when the platform cannot honor it.
	attrs := buildImportAttributes(desc, p.caps)

	display := p.importer.CurrentDisplay()
	if display == nil {
		p.stats.importFailures.Add(1)
		log.Error("extimage: no current display", "format", desc.Format.String())
		return nil, ErrNoDisplay
	}

	// Step 4: import. Terminal on failure; no texture object exists yet.
	img, err := p.importer.ImportImage(display, clientBuf, attrs)
	if err != nil {
		p.stats.importFailures.Add(1)
		log.Error("extimage: image import failed",
			"format", desc.Format.String(), "error", err)
		return nil, fmt.Errorf("%w: format %s: %w", ErrImageImportFailed, desc.Format, err)
	}
	p.stats.liveImages.Add(1)

	// Step 5: allocate and bind the texture object. A driver error here
	// rolls back everything.
	id := p.textures.GenTexture()
	p.stats.liveTextures.Add(1)
	p.textures.BindTexture(target, id)
	if bindErr := p.textures.Err(); bindErr != nil {
		log.Error("extimage: bind failed",
			"texture", uint32(id), "target", target.String(), "error", bindErr)
		p.textures.DeleteTexture(id)
		p.stats.liveTextures.Add(-1)
		if derr := p.importer.DestroyImage(display, img); derr != nil {
			log.Warn("extimage: rollback destroy failed", "error", derr)
		}
		p.stats.liveImages.Add(-1)
		p.stats.importFailures.Add(1)
		return nil, fmt.Errorf("%w: bind to %s: %w", ErrGPUBindingError, target, bindErr)
	}

	// Step 6: attach the import as the texture's backing store. The
	// buffer contents are owned elsewhere; a driver complaint here does
	// not invalidate the texture object, so it is logged and tolerated.
	p.textures.AttachImage(target, img)
	if attachErr := p.textures.Err(); attachErr != nil {
		log.Warn("extimage: attach reported error",
			"texture", uint32(id), "target", target.String(), "error", attachErr)
	}

	// Step 7: only directly addressable textures get a mip chain; the
	// external sampler does not support mipmaps.
	if target == Target2D {
		p.textures.SetFilter(Target2D, FilterLinearMipmapLinear, FilterLinear)
		p.textures.GenerateMipmap(Target2D)
		if mipErr := p.textures.Err(); mipErr != nil {
			log.Warn("extimage: mipmap generation reported error",
				"texture", uint32(id), "error", mipErr)
		}
	}

	log.Debug("extimage: external image texture created",
		"texture", uint32(id), "target", target.String())

	// Step 8: ownership of texture and backing image passes to the caller.
	return &ExternalTexture{
		id:       id,
		target:   target,
		image:    img,
		display:  display,
		platform: p,
	}, nil
}
