// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes the GLFW library, which owns all window and GL
// context state. It must be called once, on the main thread, before
// any other call in this package.
func Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Log(fmt.Errorf("glgpu.Init: failed to initialize glfw: %w", err))
	}
	return nil
}

// Terminate shuts down the GLFW library. Call as the last thing before
// exiting, on the main thread, after all Contexts have been released.
func Terminate() {
	glfw.Terminate()
}

// ErrCheck checks the GL error state, returning and logging an error
// naming the given calling context if it is not clear. A GL error
// leaves rendering state undefined, so callers should treat any
// non-nil return as fatal to the owning instance.
func ErrCheck(ctxt string) error {
	err := gl.GetError()
	if err == gl.NO_ERROR {
		return nil
	}
	return errors.Log(fmt.Errorf("glgpu ErrCheck: %s: GL error: %#x", ctxt, err))
}
