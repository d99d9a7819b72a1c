// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderTypes is a list of GPU shader stage types.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "VertexShader"
	case FragmentShader:
		return "FragmentShader"
	}
	return "ShaderTypesInvalid"
}

var glShaderTypes = map[ShaderTypes]uint32{
	VertexShader:   gl.VERTEX_SHADER,
	FragmentShader: gl.FRAGMENT_SHADER,
}

// CString returns a null-terminated version of the given string,
// as required by the GL string APIs. If it is already terminated,
// it is returned unchanged.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// GoString returns the given string without any null termination,
// for display purposes.
func GoString(s string) string {
	return strings.TrimRight(s, "\x00")
}
