// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"fmt"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
)

// VertexSource is the fixed vertex shader: it passes the full-screen
// quad through in normalized device coordinates and derives the UV
// coordinate handed to the transition function.
const VertexSource = `#version 330 core
in vec2 position;
out vec2 _uv;
void main(void) {
  gl_Position = vec4(position, 0, 1);
  _uv = position * 0.5 + 0.5;
}
`

// fragmentPre declares everything a transition function may reference,
// preceding its body in the composed source. The texture2D define keeps
// classic gl-transition sources compiling under the core profile.
const fragmentPre = `#version 330 core
uniform sampler2D to;
uniform float progress;
uniform vec2 resolution;
in vec2 _uv;
out vec4 fragColor;
#define texture2D texture
`

// fragmentPost is the fixed entry point invoking the transition.
const fragmentPost = `void main() {
  fragColor = transition(_uv);
}
`

// DefaultTransition is the built-in transition body used when no source
// file is given: it samples the incoming frame unchanged, ignoring
// progress.
const DefaultTransition = `vec4 transition (vec2 uv) {
  return texture2D(to, uv);
}
`

// ComposeSource merges the given transition function body into the
// fixed fragment shader template, producing the complete compilable
// source. It is a pure function: the same body always yields
// byte-identical output. The body must define vec4 transition(vec2 uv);
// if it does not, compilation of the composed source fails with the
// driver's diagnostics.
func ComposeSource(body string) string {
	var b strings.Builder
	b.Grow(len(fragmentPre) + len(body) + len(fragmentPost) + 2)
	b.WriteString(fragmentPre)
	b.WriteString("\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(fragmentPost)
	return b.String()
}

// ReadSource reads an entire transition source file into memory.
// A missing or unreadable file is an error at configuration time.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Log(fmt.Errorf("transition: failed to read source file %q: %w", path, err))
	}
	return string(b), nil
}
