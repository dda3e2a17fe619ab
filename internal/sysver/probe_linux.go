// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package sysver

import (
	"bytes"
	"os/exec"
	"strconv"
)

// probe asks the Android property service for ro.build.version.sdk.
// On non-Android Linux there is no getprop binary and the probe reports
// unknown, which disables the version-gated capabilities.
func probe() int {
	out, err := exec.Command("/system/bin/getprop", "ro.build.version.sdk").Output()
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(string(bytes.TrimSpace(out)))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
