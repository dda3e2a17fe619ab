// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ctxthread identifies the OS thread a GPU context is bound to.
//
// GL-style contexts are thread-affine, and hosts pin the context goroutine
// with runtime.LockOSThread. Recording the thread id at construction lets
// the importing layer detect context-affine operations arriving on the
// wrong thread and say so, instead of handing undefined behavior to the
// driver silently. The id is diagnostic only; it is meaningful only while
// the context goroutine stays locked to its thread.
package ctxthread

// ID returns the calling OS thread id, or 0 when the platform offers none.
func ID() int { return id() }
