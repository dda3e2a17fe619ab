// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import "errors"

// Error taxonomy. Every failure this package reports wraps one of these
// sentinels, so callers can classify with errors.Is. None of them are
// retried internally and none crash the process; a failed call leaves zero
// live GPU resources behind.
var (
	// ErrBufferAliasUnavailable is returned when the native bridge cannot
	// produce a client-buffer alias for the producer's buffer.
	ErrBufferAliasUnavailable = errors.New("extimage: client-buffer alias unavailable")

	// ErrImageImportFailed is returned when the importer cannot create a
	// native image from a client-buffer alias.
	ErrImageImportFailed = errors.New("extimage: image import failed")

	// ErrGPUBindingError is returned when the driver reports an error
	// while binding the imported image to a texture object.
	ErrGPUBindingError = errors.New("extimage: GPU binding error")

	// ErrNilBuffer is returned when a nil producer buffer is passed in.
	ErrNilBuffer = errors.New("extimage: buffer is nil")

	// ErrNoDisplay is returned when the importer has no current display.
	ErrNoDisplay = errors.New("extimage: no current display")

	// ErrNoStreamManager is returned by stream operations on a Platform
	// constructed without a stream manager.
	ErrNoStreamManager = errors.New("extimage: no stream manager configured")
)
