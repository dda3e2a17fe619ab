// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sysver

import "testing"

func TestAPILevelEnvOverride(t *testing.T) {
	t.Setenv(EnvAPILevel, "33")
	if got := APILevel(); got != 33 {
		t.Errorf("APILevel() = %d, want 33", got)
	}
}

func TestAPILevelEnvInvalid(t *testing.T) {
	// Non-numeric and non-positive overrides fall through to the probe,
	// which reports unknown on machines without a property service.
	for _, v := range []string{"abc", "-5", "0", ""} {
		t.Setenv(EnvAPILevel, v)
		if got := APILevel(); got < 0 {
			t.Errorf("APILevel() with override %q = %d, want >= 0", v, got)
		}
	}
}
