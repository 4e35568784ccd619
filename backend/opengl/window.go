package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig describes the window and GL context to open.
type WindowConfig struct {
	Width, Height int
	Title         string
	Hidden        bool
	VSync         bool
}

// OpenWindow initialises GLFW, creates a window with a GL 2.1 context, makes
// the context current and loads the GL entry points. The calling goroutine
// must be locked to the main OS thread and becomes the graphics thread.
//
// The caller owns the window and must call glfw.Terminate when done.
func OpenWindow(cfg WindowConfig) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return window, nil
}

// Reloader forces every watched asset to be treated as changed.
type Reloader interface {
	TouchAll()
}

// ReloadKeyAdapter triggers a full shader reload when F5 is pressed and
// closes the window on Escape.
type ReloadKeyAdapter struct {
	window   *glfw.Window
	reloader Reloader
	presses  int
}

// NewReloadKeyAdapter installs the key callback on window.
func NewReloadKeyAdapter(window *glfw.Window, reloader Reloader) *ReloadKeyAdapter {
	adapter := &ReloadKeyAdapter{
		window:   window,
		reloader: reloader,
	}

	window.SetKeyCallback(adapter.keyCallback)

	return adapter
}

// Reloads returns how many times a reload was requested from the keyboard.
func (a *ReloadKeyAdapter) Reloads() int {
	return a.presses
}

func (a *ReloadKeyAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyF5:
		a.presses++
		a.reloader.TouchAll()
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	}
}
