// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import (
	"errors"
	"testing"
)

type fakeStreamManager struct {
	acquired int
	released int
	attached map[Stream]TextureID
	updates  int
	nextTs   int64
}

func newFakeStreamManager() *fakeStreamManager {
	return &fakeStreamManager{attached: make(map[Stream]TextureID)}
}

func (m *fakeStreamManager) Acquire(source any) Stream {
	m.acquired++
	return source
}

func (m *fakeStreamManager) Release(s Stream) { m.released++ }

func (m *fakeStreamManager) Attach(s Stream, id TextureID) { m.attached[s] = id }

func (m *fakeStreamManager) Detach(s Stream) { delete(m.attached, s) }

func (m *fakeStreamManager) UpdateImage(s Stream) (int64, error) {
	m.updates++
	m.nextTs += 16_666_667
	return m.nextTs, nil
}

type fakePresenter struct {
	surface Surface
	hints   []int64
	hintErr error
}

func (p *fakePresenter) CurrentDrawSurface() Surface { return p.surface }

func (p *fakePresenter) SetPresentationTime(d Display, s Surface, whenNs int64) error {
	p.hints = append(p.hints, whenNs)
	return p.hintErr
}

func TestNewValidation(t *testing.T) {
	bridge := &fakeBridge{}
	importer := &fakeImporter{extensions: testExtensions, display: "d"}
	tex := newFakeTexOps()

	tests := []struct {
		name     string
		bridge   BufferBridge
		importer ImageImporter
		tex      TextureOps
	}{
		{"nil bridge", nil, importer, tex},
		{"nil importer", bridge, nil, tex},
		{"nil textures", bridge, importer, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.bridge, tt.importer, tt.tex); err == nil {
				t.Error("New() should reject nil collaborators")
			}
		})
	}

	if _, err := New(bridge, importer, tex, WithAPILevel(34)); err != nil {
		t.Errorf("New() with all collaborators = %v", err)
	}
}

func TestStreamDelegation(t *testing.T) {
	streams := newFakeStreamManager()
	h := newHarness(t, WithStreamManager(streams))
	p := h.platform

	s, err := p.CreateStream("surface-texture")
	if err != nil {
		t.Fatalf("CreateStream() = %v", err)
	}
	if streams.acquired != 1 {
		t.Error("Acquire not delegated")
	}

	if err := p.AttachStream(s, 7); err != nil {
		t.Fatalf("AttachStream() = %v", err)
	}
	if streams.attached[s] != 7 {
		t.Error("Attach not delegated")
	}

	ts, err := p.UpdateStreamImage(s)
	if err != nil {
		t.Fatalf("UpdateStreamImage() = %v", err)
	}
	if ts <= 0 {
		t.Errorf("timestamp = %d, want positive", ts)
	}

	if err := p.DetachStream(s); err != nil {
		t.Fatalf("DetachStream() = %v", err)
	}
	if _, ok := streams.attached[s]; ok {
		t.Error("Detach not delegated")
	}

	if err := p.DestroyStream(s); err != nil {
		t.Fatalf("DestroyStream() = %v", err)
	}
	if streams.released != 1 {
		t.Error("Release not delegated")
	}
}

func TestStreamOperationsWithoutManager(t *testing.T) {
	h := newHarness(t)
	p := h.platform

	if _, err := p.CreateStream("x"); !errors.Is(err, ErrNoStreamManager) {
		t.Errorf("CreateStream err = %v, want ErrNoStreamManager", err)
	}
	if err := p.DestroyStream("x"); !errors.Is(err, ErrNoStreamManager) {
		t.Errorf("DestroyStream err = %v, want ErrNoStreamManager", err)
	}
	if err := p.AttachStream("x", 1); !errors.Is(err, ErrNoStreamManager) {
		t.Errorf("AttachStream err = %v, want ErrNoStreamManager", err)
	}
	if err := p.DetachStream("x"); !errors.Is(err, ErrNoStreamManager) {
		t.Errorf("DetachStream err = %v, want ErrNoStreamManager", err)
	}
	if _, err := p.UpdateStreamImage("x"); !errors.Is(err, ErrNoStreamManager) {
		t.Errorf("UpdateStreamImage err = %v, want ErrNoStreamManager", err)
	}
}

func TestSetPresentationTime(t *testing.T) {
	t.Run("delegated when surface current", func(t *testing.T) {
		pr := &fakePresenter{surface: "window-surface"}
		h := newHarness(t, WithPresenter(pr))

		h.platform.SetPresentationTime(123_456)
		if len(pr.hints) != 1 || pr.hints[0] != 123_456 {
			t.Errorf("hints = %v, want [123456]", pr.hints)
		}
	})

	t.Run("no-op without current surface", func(t *testing.T) {
		pr := &fakePresenter{}
		h := newHarness(t, WithPresenter(pr))

		h.platform.SetPresentationTime(123_456)
		if len(pr.hints) != 0 {
			t.Errorf("hints = %v, want none", pr.hints)
		}
	})

	t.Run("no-op without capability", func(t *testing.T) {
		pr := &fakePresenter{surface: "window-surface"}
		h := &harness{t: t}
		h.bridge = &fakeBridge{}
		h.importer = &fakeImporter{t: t, extensions: "", display: "d"}
		h.tex = newFakeTexOps()
		p, err := New(h.bridge, h.importer, h.tex, WithAPILevel(34), WithPresenter(pr))
		if err != nil {
			t.Fatalf("New() = %v", err)
		}

		p.SetPresentationTime(123_456)
		if len(pr.hints) != 0 {
			t.Errorf("hints = %v, want none without the extension", pr.hints)
		}
	})

	t.Run("no-op without presenter", func(t *testing.T) {
		h := newHarness(t)
		h.platform.SetPresentationTime(123_456) // must not panic
	})
}

func TestStatsString(t *testing.T) {
	s := Stats{LiveTextures: 2, LiveImages: 3, ImportFailures: 1, WrapFailures: 4, Releases: 5}
	want := "Stats[2 textures, 3 images, 1 import failures, 4 wrap failures, 5 releases]"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
