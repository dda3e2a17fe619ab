// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import "sync/atomic"

// ReleaseCallback tells a buffer's owner that the consumer no longer needs
// it. The producer's contract is exactly one invocation per acquisition,
// with the image and userData the contract was created with.
type ReleaseCallback func(image, userData any)

// AcquiredImage is the release contract travelling with one streamed
// buffer acquisition: the image handle, the callback owed to its producer,
// the opaque userData for that callback, and the scheduling domain
// (Handler) the callback must eventually be invoked on. Handler is carried
// through wrapping unchanged and never interpreted here.
//
// The zero value is the empty contract; see [AcquiredImage.IsEmpty].
type AcquiredImage struct {
	Image    any
	Callback ReleaseCallback
	UserData any
	Handler  any
}

// IsEmpty reports whether the contract is the zero (failed/absent) value.
func (a AcquiredImage) IsEmpty() bool {
	return a.Image == nil && a.Callback == nil && a.UserData == nil
}

// Release chain states, per acquisition. Transitions never re-enter bound;
// each acquisition is single-use.
const (
	stateBound int32 = iota
	stateReleasing
	stateReleased
)

// releaseClosure is the one object holding the destroy-then-notify
// obligation for a wrapped acquisition. It is constructed together with
// the successful import, so no observable state exists where the import
// succeeded but nobody owns its teardown.
type releaseClosure struct {
	source  AcquiredImage
	display Display
	state   atomic.Int32
}

// WrapAcquiredImage converts a producer-owned buffer acquisition into a
// consumer-owned imported image, rewriting the release contract so the
// producer is only told "you may reclaim this buffer" after the GPU-side
// alias is fully torn down. Producers recycle memory the moment the
// callback fires; tearing down first keeps the GPU from sampling recycled
// memory.
//
// The returned contract carries the imported image, a trampoline callback
// that destroys the image under the display it was imported with and then
// invokes the original callback with the original buffer and userData, and
// the source's Handler unchanged.
//
// On failure (no alias, import failed) the empty contract is returned and
// the source contract is left untouched: this package takes no ownership
// and the caller disposes of the acquisition through its normal path. The
// trampoline invokes the original callback exactly once; a duplicate
// invocation is logged and ignored.
//
// Must be called on the goroutine owning the GPU context. The trampoline
// itself may be invoked elsewhere only when a [WithReleaseExecutor]
// executor marshals teardown back, or when the producer guarantees
// releases happen on the context-owning domain.
func (p *Platform) WrapAcquiredImage(source AcquiredImage) AcquiredImage {
	log := p.logger()
	if source.Image == nil || source.Callback == nil {
		log.Error("extimage: cannot wrap empty acquisition")
		return AcquiredImage{}
	}
	p.checkThread("WrapAcquiredImage")

	clientBuf := p.bridge.ClientBuffer(source.Image)
	if clientBuf == nil {
		p.stats.wrapFailures.Add(1)
		log.Error("extimage: no client-buffer alias for acquired image")
		return AcquiredImage{}
	}

	// The streamed path requests no preserved semantics; the only
	// attribute is protected content, and only when both the usage bit
	// and the runtime capability line up.
	attrs := &ImportAttributes{}
	if p.caps.ProtectedContent {
		if desc := p.bridge.Describe(source.Image); desc.Usage.Protected() {
			attrs.Set(AttrProtectedContent, AttrTrue)
		}
	}

	display := p.importer.CurrentDisplay()
	if display == nil {
		p.stats.wrapFailures.Add(1)
		log.Error("extimage: no current display for acquired image")
		return AcquiredImage{}
	}

	img, err := p.importer.ImportImage(display, clientBuf, attrs)
	if err != nil {
		p.stats.wrapFailures.Add(1)
		log.Error("extimage: acquired image import failed", "error", err)
		return AcquiredImage{}
	}
	p.stats.liveImages.Add(1)

	closure := &releaseClosure{source: source, display: display}

	patched := func(image, userData any) {
		c, ok := userData.(*releaseClosure)
		if !ok {
			log.Error("extimage: release invoked with foreign userData")
			return
		}
		if !c.state.CompareAndSwap(stateBound, stateReleasing) {
			log.Warn("extimage: duplicate release of acquired image ignored")
			return
		}
		run := func() {
			// Destroy the imported image before notifying the producer.
			if derr := p.importer.DestroyImage(c.display, image); derr != nil {
				log.Warn("extimage: destroy of acquired image failed", "error", derr)
			}
			p.stats.liveImages.Add(-1)
			c.source.Callback(c.source.Image, c.source.UserData)
			p.stats.releases.Add(1)
			c.state.Store(stateReleased)
		}
		if p.executor != nil {
			p.executor.Execute(run)
			return
		}
		p.checkThread("AcquiredImage release")
		run()
	}

	return AcquiredImage{
		Image:    img,
		Callback: patched,
		UserData: closure,
		Handler:  source.Handler,
	}
}
