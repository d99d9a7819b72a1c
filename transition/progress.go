// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import "cogentcore.org/core/math32"

// Progress returns the normalized transition progress for a frame with
// the given presentation timestamp. pts is in stream time-base units,
// with timeBaseDen units per second. offset delays the visible start of
// the transition and duration is its length, both in seconds.
//
// The result is always in [0, 1]: timestamps before the offset clamp
// to 0 and timestamps past the end clamp to 1, so progress is
// monotonically non-decreasing in pts. A zero or negative duration is
// treated as an already-complete transition rather than dividing by
// zero.
func Progress(pts int64, timeBaseDen int, offset, duration float64) float32 {
	if duration <= 0 {
		return 1
	}
	if timeBaseDen <= 0 { // pts already in seconds
		timeBaseDen = 1
	}
	elapsed := float64(pts)/float64(timeBaseDen) - offset
	return math32.Clamp(float32(elapsed/duration), 0, 1)
}
