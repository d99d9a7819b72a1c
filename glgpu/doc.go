// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu provides explicitly owned wrappers around the OpenGL
// objects needed for offscreen, full-quad fragment shader rendering:
// a hidden GLFW window context, shaders and programs with captured
// driver diagnostics, vertex buffers, fixed-size RGB textures, and a
// framebuffer that reads rendered pixels back into CPU memory.
//
// Each wrapper owns exactly one GPU resource: it is created on first
// Activate (or an explicit constructor), and Release frees it exactly
// once, doing nothing if the resource was never created. This makes
// teardown of partially initialized state safe on every error path.
//
// There is no ambient GPU state management: the Context must be made
// current, via Activate, on the calling OS thread before any other call
// in this package, including before every render pass. The calling
// goroutine must be locked to that thread (runtime.LockOSThread).
package glgpu
