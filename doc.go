// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package extimage imports externally produced graphics buffers and makes
// them sampleable by a GPU rendering pipeline.
//
// # Overview
//
// A producer (camera pipeline, video decoder, compositor) owns an opaque
// block of graphics memory that the GPU cannot sample directly. extimage
// establishes a GPU-visible alias of that memory and governs when, and in
// what order, the alias and the producer's buffer are released.
//
// The package does not decode or transform pixel content, and it does not
// own a rendering driver, window system, or GPU context. Those live behind
// narrow collaborator interfaces ([BufferBridge], [ImageImporter],
// [TextureOps], ...) supplied by the host at [New] time.
//
// # Quick Start
//
//	import "github.com/gogpu/extimage"
//
//	p, err := extimage.New(bridge, importer, texops)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// One-shot: create a sampleable texture from a producer buffer.
//	tex, err := p.CreateExternalImageTexture(buf)
//	if err != nil {
//	    // nothing was allocated; the buffer is untouched
//	}
//	defer tex.Close()
//
//	// Streamed: wrap a per-frame acquisition so the producer is notified
//	// only after the GPU-side alias is torn down.
//	wrapped := p.WrapAcquiredImage(acquired)
//
// # Sampling paths
//
// Each buffer's declared pixel format selects one of two sampling paths
// (see [Classify]): directly addressable formats (the RGB family and
// depth/stencil formats) bind as ordinary 2D textures and receive a mip
// chain; everything else, including vendor-private formats this package
// has never heard of, goes through the opaque external-sampling path.
//
// # Ownership
//
// A successfully created [ExternalTexture] is owned by the caller, who must
// Close it exactly once. A successfully wrapped [AcquiredImage] carries a
// replacement callback that destroys the imported image before invoking the
// producer's original release callback. On every failure path the package
// guarantees zero live GPU resources and leaves the producer's buffer with
// its original owner.
//
// # Concurrency
//
// GPU-side operations are context-affine: they must run on the goroutine
// that owns the GPU context. The context is the mutual-exclusion boundary;
// nothing in this package takes locks around GPU calls. Producers that
// release buffers from other scheduling domains should configure
// [WithReleaseExecutor] to marshal teardown back onto the context owner.
package extimage

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
