// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sysver probes the platform API level the process is running on.
//
// The API level gates runtime capabilities (protected-content imports need
// level 26 or newer), so it must reflect the OS the binary runs on, not the
// one it was built against. Hosts that know their level should pass it in
// explicitly; this package is the fallback used when they do not.
package sysver

import (
	"os"
	"strconv"
)

// EnvAPILevel overrides the probed API level when set to a positive integer.
// Test harnesses and embedders without a native property service use this.
const EnvAPILevel = "EXTIMAGE_API_LEVEL"

// APILevel returns the platform API level, or 0 when it cannot be
// determined. The environment override is consulted first, then the
// OS-specific probe.
func APILevel() int {
	if v := os.Getenv(EnvAPILevel); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return probe()
}
