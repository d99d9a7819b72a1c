// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// DrawTriangles issues a draw of n vertices starting at start from the
// currently bound vertex array, as independent triangles. The active
// program and vertex array determine everything else.
func DrawTriangles(start, n int) {
	gl.DrawArrays(gl.TRIANGLES, int32(start), int32(n))
}

// Clear clears the current render target to the given color.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
