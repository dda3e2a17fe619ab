// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package extimage

import (
	"fmt"
	"sync/atomic"
)

// Stats is a snapshot of a Platform's live-resource and failure counters.
//
// The live counters are the package's leak ledger: after any failed call
// they read exactly what they read before it, and after every owner has
// released what it owns they read zero.
type Stats struct {
	// LiveTextures is the number of texture objects currently alive.
	LiveTextures int64

	// LiveImages is the number of imported images currently alive.
	LiveImages int64

	// ImportFailures counts failed one-shot texture creations.
	ImportFailures uint64

	// WrapFailures counts failed acquired-image wraps.
	WrapFailures uint64

	// Releases counts completed release chains (original producer
	// callbacks invoked).
	Releases uint64
}

// String returns a human-readable string of the counters.
func (s Stats) String() string {
	return fmt.Sprintf("Stats[%d textures, %d images, %d import failures, %d wrap failures, %d releases]",
		s.LiveTextures, s.LiveImages, s.ImportFailures, s.WrapFailures, s.Releases)
}

// platformStats holds the counters behind Stats. All fields are atomics;
// the GPU context serializes the operations that move them, but releases
// may complete on producer domains.
type platformStats struct {
	liveTextures   atomic.Int64
	liveImages     atomic.Int64
	importFailures atomic.Uint64
	wrapFailures   atomic.Uint64
	releases       atomic.Uint64
}

func (st *platformStats) snapshot() Stats {
	return Stats{
		LiveTextures:   st.liveTextures.Load(),
		LiveImages:     st.liveImages.Load(),
		ImportFailures: st.importFailures.Load(),
		WrapFailures:   st.wrapFailures.Load(),
		Releases:       st.releases.Load(),
	}
}
