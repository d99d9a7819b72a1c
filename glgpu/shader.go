// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader manages a single shader stage: vertex or fragment.
type Shader struct {
	init   bool
	handle uint32
	name   string
	typ    ShaderTypes
	src    string
}

// NewShader returns a new shader of the given unique name and type.
func NewShader(name string, typ ShaderTypes) *Shader {
	return &Shader{name: name, typ: typ}
}

// Name returns the unique name of this shader.
func (sh *Shader) Name() string {
	return sh.name
}

// Type returns the stage type of the shader.
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// Compile compiles the given GLSL source for this shader stage.
// Context must be current. On failure, the returned error carries the
// driver's diagnostic info log along with the offending source, rather
// than a bare pass/fail flag.
func (sh *Shader) Compile(src string) error {
	handle := gl.CreateShader(glShaderTypes[sh.typ])
	if handle == 0 {
		return errors.Log(fmt.Errorf("glgpu Shader %s: driver rejected creation of %v object", sh.name, sh.typ))
	}

	sh.src = src
	csrc, free := gl.Strs(CString(src))
	gl.ShaderSource(handle, 1, csrc, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		lg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(lg))
		gl.DeleteShader(handle)
		return errors.Log(fmt.Errorf("glgpu Shader %s: failed to compile:\n%s\nsource:\n%s", sh.name, GoString(lg), src))
	}

	sh.handle = handle
	sh.init = true
	return nil
}

// Handle returns the GPU handle for this shader -- only valid after a
// successful Compile.
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Source returns the source code last submitted for compilation.
func (sh *Shader) Source() string {
	return GoString(sh.src)
}

// Release deletes the shader object, if it was successfully compiled.
func (sh *Shader) Release() {
	if !sh.init {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}
