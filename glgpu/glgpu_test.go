// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertex = `#version 330 core
in vec2 position;
void main(void) {
  gl_Position = vec4(position, 0, 1);
}
`

const testFragment = `#version 330 core
out vec4 fragColor;
void main() {
  fragColor = vec4(1, 0, 0, 1);
}
`

func TestProgramLifecycle(t *testing.T) {
	t.Skip("Need GPU on CI")
	runtime.LockOSThread()
	require.NoError(t, Init())
	defer Terminate()

	ctx, err := NewContext(image.Point{16, 16})
	require.NoError(t, err)
	defer ctx.Release()

	pr := NewProgram("test")
	_, err = pr.AddShader(VertexShader, "v", testVertex)
	require.NoError(t, err)
	_, err = pr.AddShader(FragmentShader, "f", testFragment)
	require.NoError(t, err)
	require.NoError(t, pr.Link())
	defer pr.Release()

	pos, err := pr.AttribLocation("position")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), pos)
	// not referenced by any shader: inactive, not an error
	assert.Equal(t, int32(-1), pr.UniformLocation("nonexistent"))
}

func TestCompileErrorDiagnostics(t *testing.T) {
	t.Skip("Need GPU on CI")
	runtime.LockOSThread()
	require.NoError(t, Init())
	defer Terminate()

	ctx, err := NewContext(image.Point{16, 16})
	require.NoError(t, err)
	defer ctx.Release()

	pr := NewProgram("bad")
	defer pr.Release()
	_, err = pr.AddShader(FragmentShader, "f", "this is not glsl")
	require.Error(t, err)
	// the driver's diagnostic text is carried on the error
	assert.Contains(t, err.Error(), "failed to compile")
}

func TestCString(t *testing.T) {
	assert.Equal(t, "abc\x00", CString("abc"))
	assert.Equal(t, "abc\x00", CString("abc\x00"))
	assert.Equal(t, "abc", GoString("abc\x00\x00"))
	assert.Equal(t, "abc", GoString("abc"))
}

func TestShaderTypesString(t *testing.T) {
	assert.Equal(t, "VertexShader", VertexShader.String())
	assert.Equal(t, "FragmentShader", FragmentShader.String())
}
