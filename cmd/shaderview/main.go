// Command shaderview draws a textured quad with a shader program and reloads
// the program's shaders whenever their source files change.
//
// Usage:
//
//	go run ./cmd/shaderview -assets ./shaders -manifest ./shaders/programs.yaml -program sprite
//
// Without -manifest the built-in default shader is used. Press F5 to force a
// reload of every shader and Escape to quit.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/assets"
	"github.com/go-theft-auto/gfx/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "shaderview"
)

func init() {
	// GLFW and every GL call must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	assetDir := flag.String("assets", ".", "directory shader asset names are resolved against")
	manifestPath := flag.String("manifest", "", "YAML program manifest (optional)")
	programName := flag.String("program", "", "manifest program to draw with (default: built-in shader)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	gfx.SetVerbose(*verbose)

	store, err := assets.NewDirStore(*assetDir, nil)
	if err != nil {
		return err
	}

	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  windowWidth,
		Height: windowHeight,
		Title:  windowTitle,
		VSync:  true,
	})
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	g := gfx.New(opengl.NewDriver(), store)
	opengl.NewReloadKeyAdapter(window, store)

	program, cleanup, err := selectProgram(g, *manifestPath, *programName)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := store.Watch(ctx); err != nil {
		return err
	}

	vbo := createQuad()
	defer gl.DeleteBuffers(1, &vbo)
	tex := createCheckerTexture()
	defer gl.DeleteTextures(1, &tex)

	start := time.Now()

	for !window.ShouldClose() {
		glfw.PollEvents()

		// Shader reloads queued by the watcher run here, on the GL thread.
		g.RunPending()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

		program.SetMVP(gfx.Identity())
		program.Bind()
		setFrameUniforms(program, float32(time.Since(start).Seconds()), float32(w), float32(h))

		gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)

		window.SwapBuffers()
	}

	return nil
}

// selectProgram returns the program to draw with and a function releasing
// whatever was built for it.
func selectProgram(g *gfx.Graphics, manifestPath, name string) (*gfx.ShaderProgram, func(), error) {
	if manifestPath == "" {
		def := g.DefaultShader()
		return def.ShaderProgram, def.Delete, nil
	}

	manifest, err := gfx.LoadManifest(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	programs, err := manifest.Build(g)
	if err != nil {
		// Broken programs stay inert until a reload fixes their sources.
		fmt.Fprintln(os.Stderr, err)
	}
	cleanup := func() {
		for _, p := range programs {
			p.Delete()
		}
	}

	if name == "" {
		def := g.DefaultShader()
		return def.ShaderProgram, func() { cleanup(); def.Delete() }, nil
	}

	p, ok := programs[name]
	if !ok {
		cleanup()
		return nil, nil, fmt.Errorf("program %q not in %s", name, manifestPath)
	}
	return p, cleanup, nil
}

// setFrameUniforms pushes the uniforms shaderview provides to manifest
// programs. Uniforms a program does not declare are skipped.
func setFrameUniforms(p *gfx.ShaderProgram, seconds, width, height float32) {
	if loc := p.UniformLocation("u_mvp"); loc != -1 {
		p.SetUniformMatrix4f(loc, false, p.MVP())
	}
	if loc := p.UniformLocation("u_texture"); loc != -1 {
		p.SetUniform1i(loc, 0)
	}
	if loc := p.UniformLocation("u_time"); loc != -1 {
		p.SetUniform1f(loc, seconds)
	}
	if loc := p.UniformLocation("u_resolution"); loc != -1 {
		p.SetUniform2f(loc, width, height)
	}
}

// createQuad uploads a full-screen quad in VertexPosColorTex layout.
func createQuad() uint32 {
	const white = 0xFFFFFFFF
	quad := []gfx.VertexPosColorTex{
		{X: -0.8, Y: -0.8, ABGR: white, U: 0, V: 1},
		{X: 0.8, Y: -0.8, ABGR: white, U: 1, V: 1},
		{X: 0.8, Y: 0.8, ABGR: white, U: 1, V: 0},
		{X: -0.8, Y: 0.8, ABGR: white, U: 0, V: 0},
	}

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*int(unsafe.Sizeof(gfx.VertexPosColorTex{})), gl.Ptr(quad), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vbo
}

// createCheckerTexture creates an 8x8 RGBA checkerboard.
func createCheckerTexture() uint32 {
	const size = 8
	data := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := byte(80)
			if (x+y)%2 == 0 {
				v = 220
			}
			i := (y*size + x) * 4
			data[i], data[i+1], data[i+2], data[i+3] = v, v, v, 255
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
