// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transition renders a GPU fragment-shader transition onto
// video frames. The transition function is pluggable: an external GLSL
// file defining
//
//	vec4 transition(vec2 uv)
//
// is merged into a fixed fragment shader template and compiled at
// configuration time. The function may reference the uniforms declared
// by the template: the current frame sampler (to), the normalized
// transition progress in [0,1] (progress), and the output dimensions
// (resolution). Without an external file, a built-in passthrough
// transition samples the frame unchanged.
//
// Progress is derived from each frame's presentation timestamp and the
// configured offset and duration, so the transition advances in stream
// time, not wall time.
package transition
