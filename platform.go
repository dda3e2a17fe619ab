// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import (
	"errors"
	"log/slog"

	"github.com/gogpu/extimage/internal/ctxthread"
)

// BufferBridge is the native buffer subsystem: it queries producer buffers
// and produces client-buffer aliases suitable for import.
//
// Implementations wrap the platform's hardware-buffer API. Tests inject
// fakes.
type BufferBridge interface {
	// Describe queries the buffer's descriptor. The descriptor is
	// immutable once queried.
	Describe(buf Buffer) BufferDescriptor

	// ClientBuffer produces an importable alias of the buffer, or nil
	// when no alias is available.
	ClientBuffer(buf Buffer) ClientBuffer
}

// ImageImporter creates and destroys native imported images under a
// display. It wraps the platform's image-import extension entry points,
// which must be resolved before the Platform is constructed.
type ImageImporter interface {
	// CurrentDisplay returns the display of the calling context, or nil
	// when there is none.
	CurrentDisplay() Display

	// Extensions returns the space-separated driver extension string.
	// Queried once, at Platform construction.
	Extensions() string

	// ImportImage imports a client-buffer alias under the display with
	// the given attributes. A non-nil error means nothing was created.
	ImportImage(d Display, buf ClientBuffer, attrs *ImportAttributes) (ImportedImage, error)

	// DestroyImage destroys an imported image. The display must be the
	// one the image was imported under; anything else is undefined.
	DestroyImage(d Display, img ImportedImage) error
}

// TextureOps is the slice of the GPU driver the import binder needs:
// texture allocation, binding, sampling parameters, mip generation, and
// the driver's sticky error query.
type TextureOps interface {
	// GenTexture allocates a new texture object id.
	GenTexture() TextureID

	// DeleteTexture releases a texture object id.
	DeleteTexture(id TextureID)

	// BindTexture binds id to the sampling target on the active unit.
	BindTexture(target SamplingTarget, id TextureID)

	// AttachImage attaches an imported image as the backing store of the
	// texture currently bound to target.
	AttachImage(target SamplingTarget, img ImportedImage)

	// SetFilter sets minification/magnification filtering for the
	// texture currently bound to target.
	SetFilter(target SamplingTarget, min, mag Filter)

	// GenerateMipmap generates the mip chain for the texture currently
	// bound to target. Only valid for Target2D.
	GenerateMipmap(target SamplingTarget)

	// Err returns the driver's pending error, or nil. Reading clears it.
	Err() error
}

// StreamManager owns external texture streams. Stream-texture update
// mechanics live entirely behind this interface; the Platform only
// delegates.
type StreamManager interface {
	// Acquire takes ownership of a producer-side stream source.
	Acquire(source any) Stream

	// Release releases a stream acquired with Acquire.
	Release(s Stream)

	// Attach connects the stream to a texture object.
	Attach(s Stream, id TextureID)

	// Detach disconnects the stream from its texture object.
	Detach(s Stream)

	// UpdateImage latches the stream's most recent frame and returns its
	// timestamp in nanoseconds.
	UpdateImage(s Stream) (timestampNs int64, err error)
}

// Presenter exposes the frame-pacing hooks of the context manager.
type Presenter interface {
	// CurrentDrawSurface returns the surface currently bound for
	// drawing, or nil when there is none.
	CurrentDrawSurface() Surface

	// SetPresentationTime hints the compositor when the next frame on s
	// should be presented.
	SetPresentationTime(d Display, s Surface, whenNs int64) error
}

// Executor runs a function on the scheduling domain that owns the GPU
// context. Configure one with [WithReleaseExecutor] when producers release
// buffers from other domains; imported-image destruction is context-affine
// and must not run elsewhere.
type Executor interface {
	Execute(fn func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(fn func())

// Execute calls f(fn).
func (f ExecutorFunc) Execute(fn func()) { f(fn) }

// Platform imports external graphics buffers for one GPU context. It holds
// the injected collaborators, the capability set resolved at construction,
// and live-resource accounting.
//
// All GPU-side operations (import, bind, mip generation, destruction) must
// run on the goroutine owning the GPU context; the context itself is the
// mutual-exclusion boundary. The Platform adds no locking around them.
type Platform struct {
	bridge    BufferBridge
	importer  ImageImporter
	textures  TextureOps
	streams   StreamManager
	presenter Presenter
	executor  Executor

	caps Capabilities
	log  *slog.Logger

	// owningTID is the OS thread the Platform was constructed on.
	// Diagnostic only; see internal/ctxthread.
	owningTID int

	stats platformStats
}

// New creates a Platform over the given collaborators.
//
// New must be called on the goroutine that owns the GPU context, before
// any concurrent caller uses the Platform: the capability set (extension
// entry points, platform API level) is resolved here exactly once and is
// immutable afterwards.
func New(bridge BufferBridge, importer ImageImporter, textures TextureOps, opts ...Option) (*Platform, error) {
	if bridge == nil {
		return nil, errors.New("extimage: bridge is nil")
	}
	if importer == nil {
		return nil, errors.New("extimage: importer is nil")
	}
	if textures == nil {
		return nil, errors.New("extimage: textures is nil")
	}

	o := defaultPlatformOptions()
	for _, opt := range opts {
		opt(&o)
	}

	apiLevel := o.apiLevel
	if apiLevel <= 0 {
		apiLevel = o.versionProbe()
	}

	p := &Platform{
		bridge:    bridge,
		importer:  importer,
		textures:  textures,
		streams:   o.streams,
		presenter: o.presenter,
		executor:  o.executor,
		caps:      ResolveCapabilities(importer.Extensions(), apiLevel),
		log:       o.logger,
		owningTID: ctxthread.ID(),
	}

	p.logger().Info("extimage: platform capabilities resolved",
		"apiLevel", p.caps.APILevel,
		"nativeClientBuffer", p.caps.NativeClientBuffer,
		"protectedContent", p.caps.ProtectedContent,
		"presentationTime", p.caps.PresentationTime,
		"frameTimestamps", p.caps.FrameTimestamps,
		"srgbColorSpace", p.caps.SRGBColorSpace)

	return p, nil
}

// logger returns the per-platform logger, falling back to the package one.
func (p *Platform) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return Logger()
}

// Capabilities returns the capability set resolved at construction.
func (p *Platform) Capabilities() Capabilities { return p.caps }

// APILevel returns the platform API level the Platform was resolved
// against. Zero means unknown.
func (p *Platform) APILevel() int { return p.caps.APILevel }

// Stats returns a snapshot of live-resource and failure counters.
func (p *Platform) Stats() Stats { return p.stats.snapshot() }

// CreateStream acquires an external texture stream from a producer-side
// source via the configured stream manager.
func (p *Platform) CreateStream(source any) (Stream, error) {
	if p.streams == nil {
		return nil, ErrNoStreamManager
	}
	return p.streams.Acquire(source), nil
}

// DestroyStream releases a stream created with CreateStream.
func (p *Platform) DestroyStream(s Stream) error {
	if p.streams == nil {
		return ErrNoStreamManager
	}
	p.streams.Release(s)
	return nil
}

// AttachStream connects a stream to a texture object.
func (p *Platform) AttachStream(s Stream, id TextureID) error {
	if p.streams == nil {
		return ErrNoStreamManager
	}
	p.streams.Attach(s, id)
	return nil
}

// DetachStream disconnects a stream from its texture object.
func (p *Platform) DetachStream(s Stream) error {
	if p.streams == nil {
		return ErrNoStreamManager
	}
	p.streams.Detach(s)
	return nil
}

// UpdateStreamImage latches the stream's most recent frame and returns its
// timestamp in nanoseconds.
func (p *Platform) UpdateStreamImage(s Stream) (int64, error) {
	if p.streams == nil {
		return 0, ErrNoStreamManager
	}
	return p.streams.UpdateImage(s)
}

// SetPresentationTime hints the compositor when the next frame should be
// presented. It is a no-op when no presenter is configured, when the
// driver lacks the presentation-time capability, or when no draw surface
// is current.
func (p *Platform) SetPresentationTime(whenNs int64) {
	if p.presenter == nil || !p.caps.PresentationTime {
		return
	}
	s := p.presenter.CurrentDrawSurface()
	if s == nil {
		return
	}
	if err := p.presenter.SetPresentationTime(p.importer.CurrentDisplay(), s, whenNs); err != nil {
		p.logger().Warn("extimage: presentation time hint failed", "error", err)
	}
}

// checkThread logs when a context-affine operation arrives on a thread
// other than the one the Platform was constructed on and no executor is
// configured. Thread ids are only meaningful while the context goroutine
// is locked to its OS thread, so this stays a diagnostic, not a gate.
func (p *Platform) checkThread(op string) {
	if p.executor != nil || p.owningTID == 0 {
		return
	}
	if tid := ctxthread.ID(); tid != p.owningTID {
		p.logger().Warn("extimage: context-affine operation off the owning thread",
			"op", op, "tid", tid, "owningTID", p.owningTID)
	}
}
