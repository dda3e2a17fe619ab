// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import (
	"log/slog"

	"github.com/gogpu/extimage/internal/sysver"
)

// Option configures a Platform during creation.
// Use functional options to customize Platform behavior.
//
// Example:
//
//	// Defaults: probed API level, package logger, no streams.
//	p, err := extimage.New(bridge, importer, texops)
//
//	// Injected collaborators:
//	p, err := extimage.New(bridge, importer, texops,
//	    extimage.WithStreamManager(streams),
//	    extimage.WithAPILevel(34))
type Option func(*platformOptions)

// platformOptions holds optional configuration for Platform creation.
type platformOptions struct {
	logger       *slog.Logger
	apiLevel     int
	versionProbe func() int
	streams      StreamManager
	presenter    Presenter
	executor     Executor
}

// defaultPlatformOptions returns the default platform options.
func defaultPlatformOptions() platformOptions {
	return platformOptions{
		versionProbe: sysver.APILevel,
	}
}

// WithLogger sets a per-platform logger, overriding the package-level
// logger configured with [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *platformOptions) {
		o.logger = l
	}
}

// WithAPILevel fixes the platform API level instead of probing it.
// Hosts that already know the level of the OS they run on should pass it
// here; version-gated capabilities depend on it.
func WithAPILevel(level int) Option {
	return func(o *platformOptions) {
		o.apiLevel = level
	}
}

// WithVersionProber replaces the default API-level probe used when no
// explicit level is given. Mainly for tests and exotic embedders.
func WithVersionProber(probe func() int) Option {
	return func(o *platformOptions) {
		if probe != nil {
			o.versionProbe = probe
		}
	}
}

// WithStreamManager wires an external stream manager. Without one, the
// stream operations on Platform return [ErrNoStreamManager].
func WithStreamManager(m StreamManager) Option {
	return func(o *platformOptions) {
		o.streams = m
	}
}

// WithPresenter wires the frame-pacing hooks of the context manager.
// Without one, [Platform.SetPresentationTime] is a no-op.
func WithPresenter(pr Presenter) Option {
	return func(o *platformOptions) {
		o.presenter = pr
	}
}

// WithReleaseExecutor routes imported-image teardown through exec.
//
// The replacement release callback produced by [Platform.WrapAcquiredImage]
// may be invoked by the producer on any scheduling domain, but destroying
// the imported image is context-affine. With an executor configured, the
// destroy-then-notify sequence is submitted to exec as one unit, preserving
// its ordering. Without one, the producer must guarantee (by contract) that
// releases happen on the context-owning domain.
func WithReleaseExecutor(exec Executor) Option {
	return func(o *platformOptions) {
		o.executor = exec
	}
}
