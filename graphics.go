package gfx

import (
	"log/slog"
	"sync"
)

// Graphics is the process-scoped graphics state shared by every shader and
// program: the GPU driver, the asset store, the shader cache, the currently
// bound program and the graphics-thread task queue.
//
// Everything except Post must be called on the goroutine that owns the GPU
// context.
type Graphics struct {
	driver  Driver
	assets  AssetStore
	shaders *ShaderRegistry
	logger  *slog.Logger

	bound         *ShaderProgram
	defaultShader *DefaultShader

	mu    sync.Mutex
	tasks []func()
}

// Option configures a Graphics instance.
type Option func(*Graphics)

// WithLogger sets the logger used for shader lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graphics) { g.logger = logger }
}

// New creates a new Graphics instance.
func New(driver Driver, assets AssetStore, opts ...Option) *Graphics {
	g := &Graphics{
		driver:  driver,
		assets:  assets,
		shaders: NewShaderRegistry(),
		logger:  shaderLogger,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Driver returns the GPU driver.
func (g *Graphics) Driver() Driver {
	return g.driver
}

// Assets returns the asset store shaders load their source from.
func (g *Graphics) Assets() AssetStore {
	return g.assets
}

// Shaders returns the named shader cache.
func (g *Graphics) Shaders() *ShaderRegistry {
	return g.shaders
}

// Bound returns the program passed to the most recent Bind call, or nil.
func (g *Graphics) Bound() *ShaderProgram {
	return g.bound
}

// DefaultShader returns the built-in program, creating it on first use.
func (g *Graphics) DefaultShader() *DefaultShader {
	if g.defaultShader == nil {
		g.defaultShader = NewDefaultShader(g)
	}
	return g.defaultShader
}

// Post queues task to run on the graphics thread during the next RunPending.
// It is safe to call from any goroutine, including the graphics thread
// itself, and never blocks.
func (g *Graphics) Post(task func()) {
	g.mu.Lock()
	g.tasks = append(g.tasks, task)
	g.mu.Unlock()
}

// RunPending runs the tasks queued so far, in order, and returns how many ran.
// Tasks posted while they run wait for the next call.
// Call this once per frame from the graphics thread, before drawing.
func (g *Graphics) RunPending() int {
	g.mu.Lock()
	tasks := g.tasks
	g.tasks = nil
	g.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}
