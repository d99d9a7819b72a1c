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

// Program manages a vertex and fragment shader pair linked into one
// executable GPU program. Add both shaders, then Link, which happens
// exactly once per program.
type Program struct {
	init    bool
	handle  uint32
	name    string
	shaders map[ShaderTypes]*Shader
}

// NewProgram returns a new program with the given unique name.
func NewProgram(name string) *Program {
	return &Program{name: name}
}

// Name returns the name of the program.
func (pr *Program) Name() string {
	return pr.name
}

// AddShader adds a shader of the given type and name, compiling the
// given source for it. Only one shader of each type can be added.
// A compiled shader that is never linked (because a later step fails)
// is still released by Release.
func (pr *Program) AddShader(typ ShaderTypes, name, src string) (*Shader, error) {
	if pr.shaders == nil {
		pr.shaders = make(map[ShaderTypes]*Shader)
	}
	if _, has := pr.shaders[typ]; has {
		return nil, errors.Log(fmt.Errorf("glgpu Program %s AddShader: shader of type: %v already added", pr.name, typ))
	}
	sh := NewShader(name, typ)
	if err := sh.Compile(src); err != nil {
		return nil, err
	}
	pr.shaders[typ] = sh
	return sh, nil
}

// ShaderByType returns the shader of the given type, or nil if not added.
func (pr *Program) ShaderByType(typ ShaderTypes) *Shader {
	return pr.shaders[typ]
}

// Link attaches all added shaders to a newly created program object and
// links it. The shaders are detached and released after linking: the
// linked program no longer needs them. On failure, the returned error
// carries the driver's link info log.
func (pr *Program) Link() error {
	handle := gl.CreateProgram()
	if handle == 0 {
		return errors.Log(fmt.Errorf("glgpu Program %s: driver rejected program creation", pr.name))
	}
	for _, sh := range pr.shaders {
		gl.AttachShader(handle, sh.handle)
	}
	gl.LinkProgram(handle)
	for _, sh := range pr.shaders {
		gl.DetachShader(handle, sh.handle)
		sh.Release()
	}
	pr.shaders = nil

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		lg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)
		return errors.Log(fmt.Errorf("glgpu Program %s: failed to link: %s", pr.name, GoString(lg)))
	}

	pr.handle = handle
	pr.init = true
	return nil
}

// UniformLocation returns the location of the given uniform variable in
// the linked program, or -1 if the uniform is not active (e.g., declared
// but never referenced by the shader code, so the compiler stripped it).
// GL silently ignores writes to location -1, so setting a uniform the
// current shader does not use is not an error.
func (pr *Program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(pr.handle, gl.Str(CString(name)))
}

// AttribLocation returns the location of the given vertex attribute in
// the linked program, logging and returning an error if it is not found.
func (pr *Program) AttribLocation(name string) (uint32, error) {
	loc := gl.GetAttribLocation(pr.handle, gl.Str(CString(name)))
	if loc < 0 {
		return 0, errors.Log(fmt.Errorf("glgpu Program %s: attribute named: %s not found", pr.name, name))
	}
	return uint32(loc), nil
}

// SetUniform1i sets an int uniform at the given location.
// Program must be active.
func (pr *Program) SetUniform1i(loc int32, val int32) {
	gl.Uniform1i(loc, val)
}

// SetUniform1f sets a float uniform at the given location.
// Program must be active.
func (pr *Program) SetUniform1f(loc int32, val float32) {
	gl.Uniform1f(loc, val)
}

// SetUniform2f sets a vec2 uniform at the given location.
// Program must be active.
func (pr *Program) SetUniform2f(loc int32, x, y float32) {
	gl.Uniform2f(loc, x, y)
}

// Handle returns the handle for the program -- only valid after a
// successful Link.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Activate sets this as the active program. Must have been Linked.
func (pr *Program) Activate() {
	if !pr.init {
		return
	}
	gl.UseProgram(pr.handle)
}

// Release deletes the program if it was linked, along with any compiled
// shaders that were not consumed by a Link (i.e., when a later setup
// step failed after AddShader succeeded).
func (pr *Program) Release() {
	for _, sh := range pr.shaders {
		sh.Release()
	}
	pr.shaders = nil
	if !pr.init {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
}
