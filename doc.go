/*
Package gfx manages GPU shaders and shader programs: compilation, linking,
sharing of compiled shaders by asset name, hot reload when a shader asset
changes, and uniform upload guarded by the currently bound program.

# Overview

A Graphics value ties together the GPU Driver, the AssetStore shader sources
come from, the ShaderRegistry of named shaders and the program most recently
bound. All of it belongs to the thread that owns the GPU context.

	g := gfx.New(opengl.NewDriver(), store)

	sprite := gfx.NewShaderProgram(g)
	sprite.LoadFromAssets("shaders/sprite.vert", "shaders/sprite.frag")

	for !window.ShouldClose() {
	    g.RunPending() // apply queued hot reloads

	    sprite.Bind()
	    sprite.SetUniform1f(sprite.UniformLocation("u_time"), t)
	    // draw ...
	}

# Shared shaders

LoadFromAssets looks each shader name up in the registry before compiling, so
programs that name the same source share one compiled shader. The registry
never owns a shader: programs hold the references, and when the last program
using a shader is deleted the shader is torn down and leaves the registry.

# Hot reload

Named shaders subscribe to their asset. A change notification, which may
arrive on any goroutine, queues a reload with Graphics.Post; the reload runs
during the next RunPending. Further changes before then fold into the same
reload. The recompiled shader gets a new generation, and every program using
it re-links on its next Bind, even if the driver handed back the old handle.

A reload that fails to compile leaves the shader without a handle. Programs
using it stay unlinked (binding them is logged, not fatal) until a later
reload succeeds.

# Contract violations

Loading a compiled shader, linking a linked program, registering a name twice,
setting a uniform on a program that is not bound, or passing a vector uniform
whose length is not a multiple of its component count all panic.
*/
package gfx
