package gfx

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
)

// noInfo is logged when the driver reports a failure without an info log.
const noInfo = "No additional information provided."

// Shader is a single compiled vertex or fragment shader.
//
// A named Shader loads its source from the asset store, recompiles itself when
// that asset changes and is shared between programs through the ShaderRegistry.
// An anonymous Shader (empty name) is compiled from text with Load and is never
// registered.
//
// Shaders are reference counted. The creator holds the first reference;
// Retain and Release adjust the count and the final Release tears the shader
// down.
type Shader struct {
	g    *Graphics
	name string
	kind ShaderKind
	id   uint32
	refs int
	sub  SubscriptionID

	// generation counts Load attempts. GL may hand a recompiled shader the
	// name its previous object had, so programs compare this as well as id.
	generation uint64

	// reloadPending is set while a reload is queued on the graphics thread.
	reloadPending atomic.Bool
}

// NewShader creates a shader of the given kind. If name is non-empty the
// source is fetched from the asset store, compiled, and the shader subscribes
// to changes of that asset. Otherwise the shader starts uncompiled and the
// caller must call Load.
func NewShader(g *Graphics, name string, kind ShaderKind) *Shader {
	s := &Shader{
		g:    g,
		name: name,
		kind: kind,
		refs: 1,
	}

	g.logger.Debug("creating shader", "shader", s.label(), "kind", kind)

	if name != "" {
		source, ok := s.sourceFromAsset()
		s.sub = g.assets.Subscribe(name, s.onAssetChanged)
		if ok {
			s.Load(source)
		}
	}

	return s
}

// ID returns the compiled shader handle, or 0 if the shader is not compiled.
func (s *Shader) ID() uint32 {
	return s.id
}

// Generation returns how many times the shader has been loaded. It changes
// on every Load and Reload even when the driver reuses the old handle.
func (s *Shader) Generation() uint64 {
	return s.generation
}

// Kind returns the pipeline stage the shader targets.
func (s *Shader) Kind() ShaderKind {
	return s.kind
}

// Name returns the asset name, or the decimal handle for anonymous shaders.
func (s *Shader) Name() string {
	if s.name == "" {
		return strconv.FormatUint(uint64(s.id), 10)
	}
	return s.name
}

// Alive reports whether the shader still has at least one owner.
func (s *Shader) Alive() bool {
	return s.refs > 0
}

// Retain adds an owner.
func (s *Shader) Retain() {
	if s.refs <= 0 {
		panic(fmt.Sprintf("gfx: retain of released shader %s", s.label()))
	}
	s.refs++
}

// Release drops an owner. Dropping the last owner deletes the GPU object,
// unsubscribes from asset changes and removes the shader from the registry.
func (s *Shader) Release() {
	if s.refs <= 0 {
		panic(fmt.Sprintf("gfx: release of released shader %s", s.label()))
	}
	s.refs--
	if s.refs == 0 {
		s.teardown()
	}
}

// Load compiles source. Loading a shader that is already compiled panics;
// delete it first. On compile failure the GPU object is deleted, the handle
// is reset to 0 and false is returned.
func (s *Shader) Load(source string) bool {
	if s.id != 0 {
		panic(fmt.Sprintf("gfx: shader %s already loaded, clean up first", s.label()))
	}

	s.generation++

	d := s.g.driver
	s.id = d.CreateShader(s.kind)
	d.ShaderSource(s.id, source)
	d.CompileShader(s.id)

	if !s.validate() {
		d.DeleteShader(s.id)
		s.id = 0
		return false
	}

	return true
}

// Reload deletes the compiled object and recompiles from the asset store.
// There is no rollback: if the new source fails to compile the shader stays
// uncompiled until the next successful reload.
func (s *Shader) Reload() {
	if !s.Alive() {
		return
	}

	s.g.logger.Info("reloading shader", "shader", s.label())

	if s.id != 0 {
		s.g.driver.DeleteShader(s.id)
		s.id = 0
		s.generation++
	}

	if source, ok := s.sourceFromAsset(); ok {
		s.Load(source)
	}
}

func (s *Shader) validate() bool {
	ok, info := s.g.driver.ShaderStatus(s.id)
	return logValidation(s.g.logger, "shader", s.Name(), ok, info)
}

// onAssetChanged runs on whatever goroutine the asset store notifies from.
// The reload itself touches GPU state, so it is handed to the graphics thread.
// Changes arriving while a reload is already queued fold into that reload.
func (s *Shader) onAssetChanged(string) {
	if s.reloadPending.CompareAndSwap(false, true) {
		s.g.Post(s.queuedReload)
	}
}

func (s *Shader) queuedReload() {
	s.reloadPending.Store(false)
	s.Reload()
}

func (s *Shader) sourceFromAsset() (string, bool) {
	data, ok := s.g.assets.Lock(s.name, AssetText)
	if !ok {
		s.g.logger.Warn("unable to lock the asset for shader", "shader", s.name)
		return "", false
	}
	source := string(data)
	s.g.assets.Unlock(s.name)
	return source, true
}

func (s *Shader) teardown() {
	s.g.logger.Debug("deleting shader", "shader", s.label())

	if s.id != 0 {
		s.g.driver.DeleteShader(s.id)
		s.id = 0
	}

	if s.name != "" {
		s.g.assets.Unsubscribe(s.name, s.sub)
		s.g.shaders.Remove(s.name)
	}
}

func (s *Shader) label() string {
	if s.name == "" {
		return "<inline>"
	}
	return s.name
}

// logValidation reports the outcome of a compile or link. Shaders and programs
// share the contract; only the driver query behind ok and info differs.
func logValidation(logger *slog.Logger, what, name string, ok bool, info string) bool {
	if ok {
		if info != "" {
			logger.Info("OpenGL "+what+" info", what, name, "info", info)
		} else {
			logger.Info("OpenGL "+what+" build successful", what, name)
		}
		return true
	}

	if info == "" {
		info = noInfo
	}
	logger.Error("OpenGL "+what+" error", what, name, "info", info)
	return false
}
