// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transition

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDeclarations(t *testing.T) {
	src := ComposeSource(DefaultTransition)
	for _, decl := range []string{
		"uniform sampler2D to;",
		"uniform float progress;",
		"uniform vec2 resolution;",
		"in vec2 _uv;",
	} {
		assert.Contains(t, src, decl)
	}
	assert.Contains(t, src, "fragColor = transition(_uv);")
}

func TestComposeSingleBody(t *testing.T) {
	body := "vec4 transition (vec2 uv) { return vec4(progress); } // marker-xyzzy"
	src := ComposeSource(body)
	assert.Equal(t, 1, strings.Count(src, body))
	// body lands between the declarations and the entry point
	assert.Less(t, strings.Index(src, "uniform float progress;"), strings.Index(src, body))
	assert.Less(t, strings.Index(src, body), strings.Index(src, "void main()"))
}

func TestComposeDeterministic(t *testing.T) {
	assert.Equal(t, ComposeSource(DefaultTransition), ComposeSource(DefaultTransition))

	fp := filepath.Join(t.TempDir(), "wipe.glsl")
	body := "vec4 transition (vec2 uv) {\n  return mix(vec4(0), texture2D(to, uv), step(uv.x, progress));\n}\n"
	require.NoError(t, os.WriteFile(fp, []byte(body), 0666))

	b1, err := ReadSource(fp)
	require.NoError(t, err)
	b2, err := ReadSource(fp)
	require.NoError(t, err)
	assert.Equal(t, ComposeSource(b1), ComposeSource(b2))
	assert.Equal(t, 1, strings.Count(ComposeSource(b1), body))
}

func TestReadSourceMissing(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "no-such-file.glsl"))
	assert.Error(t, err)
}

func TestComposeTestdata(t *testing.T) {
	b, err := ReadSource(filepath.Join("testdata", "fade.glsl"))
	require.NoError(t, err)
	src := ComposeSource(b)
	assert.Contains(t, src, "vec4 transition")
	assert.Equal(t, 1, strings.Count(src, b))
}
