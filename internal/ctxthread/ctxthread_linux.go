// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package ctxthread

import "golang.org/x/sys/unix"

func id() int { return unix.Gettid() }
