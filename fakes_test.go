// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import "testing"

// testExtensions advertises every extension this package knows about.
// Individual tests trim it down to probe the capability gates.
const testExtensions = "EGL_ANDROID_get_native_client_buffer " +
	"EGL_ANDROID_presentation_time " +
	"EGL_ANDROID_get_frame_timestamps " +
	"EGL_EXT_protected_content " +
	"EGL_KHR_gl_colorspace"

// fakeBuffer is a producer buffer handle.
type fakeBuffer struct {
	desc    BufferDescriptor
	noAlias bool
}

// fakeClientBuffer is the alias a fakeBridge mints for a fakeBuffer.
type fakeClientBuffer struct {
	src *fakeBuffer
}

type fakeBridge struct {
	describeCalls int
}

func (b *fakeBridge) Describe(buf Buffer) BufferDescriptor {
	b.describeCalls++
	if fb, ok := buf.(*fakeBuffer); ok {
		return fb.desc
	}
	return BufferDescriptor{}
}

func (b *fakeBridge) ClientBuffer(buf Buffer) ClientBuffer {
	fb, ok := buf.(*fakeBuffer)
	if !ok || fb.noAlias {
		return nil
	}
	return &fakeClientBuffer{src: fb}
}

// fakeImage is an imported-image handle.
type fakeImage struct {
	seq int
}

type fakeImporter struct {
	t *testing.T

	extensions string
	display    Display
	importErr  error

	imports   int
	destroys  int
	live      int
	lastAttrs *ImportAttributes

	// trace records import/destroy ordering; tests append their own
	// markers (callback invocations) to the same slice.
	trace *[]string
}

func (f *fakeImporter) CurrentDisplay() Display { return f.display }

func (f *fakeImporter) Extensions() string { return f.extensions }

func (f *fakeImporter) ImportImage(d Display, buf ClientBuffer, attrs *ImportAttributes) (ImportedImage, error) {
	if f.importErr != nil {
		return nil, f.importErr
	}
	if buf == nil {
		f.t.Error("ImportImage called with nil client buffer")
	}
	f.imports++
	f.live++
	f.lastAttrs = attrs
	if f.trace != nil {
		*f.trace = append(*f.trace, "import")
	}
	return &fakeImage{seq: f.imports}, nil
}

func (f *fakeImporter) DestroyImage(d Display, img ImportedImage) error {
	if d != f.display {
		f.t.Errorf("DestroyImage under display %v, want %v", d, f.display)
	}
	if img == nil {
		f.t.Error("DestroyImage called with nil image")
	}
	f.destroys++
	f.live--
	if f.trace != nil {
		*f.trace = append(*f.trace, "destroy")
	}
	return nil
}

type filterCall struct {
	target   SamplingTarget
	min, mag Filter
}

type fakeTexOps struct {
	nextID TextureID
	live   map[TextureID]bool

	binds    []TextureID
	targets  []SamplingTarget
	attached []ImportedImage
	filters  []filterCall
	mipGens  []SamplingTarget

	// errQueue is drained one error per Err() call, mirroring the
	// driver's sticky-error query.
	errQueue []error
}

func newFakeTexOps() *fakeTexOps {
	return &fakeTexOps{live: make(map[TextureID]bool)}
}

func (f *fakeTexOps) GenTexture() TextureID {
	f.nextID++
	f.live[f.nextID] = true
	return f.nextID
}

func (f *fakeTexOps) DeleteTexture(id TextureID) {
	delete(f.live, id)
}

func (f *fakeTexOps) BindTexture(target SamplingTarget, id TextureID) {
	f.binds = append(f.binds, id)
	f.targets = append(f.targets, target)
}

func (f *fakeTexOps) AttachImage(target SamplingTarget, img ImportedImage) {
	f.attached = append(f.attached, img)
}

func (f *fakeTexOps) SetFilter(target SamplingTarget, min, mag Filter) {
	f.filters = append(f.filters, filterCall{target: target, min: min, mag: mag})
}

func (f *fakeTexOps) GenerateMipmap(target SamplingTarget) {
	f.mipGens = append(f.mipGens, target)
}

func (f *fakeTexOps) Err() error {
	if len(f.errQueue) == 0 {
		return nil
	}
	err := f.errQueue[0]
	f.errQueue = f.errQueue[1:]
	return err
}

func (f *fakeTexOps) liveCount() int { return len(f.live) }

// harness wires a Platform over fakes for all collaborators.
type harness struct {
	t        *testing.T
	bridge   *fakeBridge
	importer *fakeImporter
	tex      *fakeTexOps
	platform *Platform
	trace    []string
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{t: t}
	h.bridge = &fakeBridge{}
	h.importer = &fakeImporter{
		t:          t,
		extensions: testExtensions,
		display:    "display-0",
		trace:      &h.trace,
	}
	h.tex = newFakeTexOps()

	opts = append([]Option{WithAPILevel(34)}, opts...)
	p, err := New(h.bridge, h.importer, h.tex, opts...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	h.platform = p
	return h
}

func rgbaBuffer() *fakeBuffer {
	return &fakeBuffer{desc: BufferDescriptor{
		Format: FormatRGBA8888,
		Width:  1920, Height: 1080, Layers: 1,
		Usage: UsageGPUSampledImage,
	}}
}

func yuvBuffer() *fakeBuffer {
	return &fakeBuffer{desc: BufferDescriptor{
		Format: FormatY8Cb8Cr8_420,
		Width:  1280, Height: 720, Layers: 1,
		Usage: UsageGPUSampledImage,
	}}
}
