package gfx

import "fmt"

// BindHook is implemented by specialised programs that push their own
// uniforms every time the program is bound. OnBind runs after the program is
// active and its vertex attributes are configured, so uniform setters may be
// used from it.
type BindHook interface {
	OnBind(p *ShaderProgram)
}

// ShaderProgram is a linked vertex+fragment shader pair.
//
// The program shares ownership of its shaders. When a shader is hot-reloaded
// its handle changes; the next Bind notices and re-links before use, so callers
// never have to rebuild programs by hand.
type ShaderProgram struct {
	g  *Graphics
	id uint32

	vertex   *Shader
	fragment *Shader

	// Shader handles and generations the current program was linked against.
	vertexID   uint32
	fragmentID uint32
	vertexGen  uint64
	fragGen    uint64

	posLoc      int32
	colorLoc    int32
	texCoordLoc int32

	mvp       Matrix
	textureID uint32

	hook BindHook
}

// NewShaderProgram creates an empty, unlinked program.
func NewShaderProgram(g *Graphics) *ShaderProgram {
	return &ShaderProgram{
		g:           g,
		posLoc:      -1,
		colorLoc:    -1,
		texCoordLoc: -1,
		mvp:         Identity(),
	}
}

// ProgramID returns the linked program handle, or 0 if unlinked.
func (p *ShaderProgram) ProgramID() uint32 {
	return p.id
}

// VertexShader returns the attached vertex shader, or nil.
func (p *ShaderProgram) VertexShader() *Shader {
	return p.vertex
}

// FragmentShader returns the attached fragment shader, or nil.
func (p *ShaderProgram) FragmentShader() *Shader {
	return p.fragment
}

// Load compiles two inline shaders from source text and links them.
// Inline shaders bypass the registry.
func (p *ShaderProgram) Load(vertexSource, fragmentSource string) bool {
	vs := NewShader(p.g, "", VertexShader)
	vs.Load(vertexSource)

	fs := NewShader(p.g, "", FragmentShader)
	fs.Load(fragmentSource)

	p.setShaders(vs, fs)
	return p.Link()
}

// LoadFromAssets resolves both shaders by asset name and links them. A shader
// already compiled for the same name by another program is reused.
func (p *ShaderProgram) LoadFromAssets(vertexName, fragmentName string) bool {
	vs := p.sharedShader(vertexName, VertexShader)
	fs := p.sharedShader(fragmentName, FragmentShader)

	p.setShaders(vs, fs)
	return p.Link()
}

func (p *ShaderProgram) sharedShader(name string, kind ShaderKind) *Shader {
	if s, ok := p.g.shaders.Get(name); ok {
		s.Retain()
		return s
	}

	s := NewShader(p.g, name, kind)
	p.g.shaders.Add(name, s)
	return s
}

// setShaders takes ownership of vs and fs, releasing any previous pair.
func (p *ShaderProgram) setShaders(vs, fs *Shader) {
	if p.vertex != nil {
		p.vertex.Release()
	}
	if p.fragment != nil {
		p.fragment.Release()
	}
	p.vertex, p.fragment = vs, fs
}

// Link links the attached shaders. Linking an already linked program panics.
// On failure the program object is deleted and false is returned.
func (p *ShaderProgram) Link() bool {
	if p.id != 0 {
		panic("gfx: shader program already linked, clean up first")
	}
	if p.vertex == nil || p.fragment == nil {
		panic("gfx: shader program has no shaders to link")
	}

	p.posLoc, p.colorLoc, p.texCoordLoc = -1, -1, -1
	p.vertexID = p.vertex.ID()
	p.fragmentID = p.fragment.ID()
	p.vertexGen = p.vertex.Generation()
	p.fragGen = p.fragment.Generation()

	if p.vertexID == 0 || p.fragmentID == 0 {
		p.g.logger.Error("OpenGL program error", "program", p.label(), "info", "shader not compiled")
		return false
	}

	d := p.g.driver
	p.id = d.CreateProgram()
	d.AttachShader(p.id, p.fragmentID)
	d.AttachShader(p.id, p.vertexID)
	d.LinkProgram(p.id)

	if !p.validate() {
		d.DeleteProgram(p.id)
		p.id = 0
		return false
	}

	p.posLoc = d.GetAttribLocation(p.id, attribPosition)
	p.colorLoc = d.GetAttribLocation(p.id, attribColor)
	p.texCoordLoc = d.GetAttribLocation(p.id, attribTexCoord)

	return true
}

func (p *ShaderProgram) validate() bool {
	ok, info := p.g.driver.ProgramStatus(p.id)
	return logValidation(p.g.logger, "program", p.label(), ok, info)
}

// stale reports whether either shader was recompiled since the last link.
// Handles alone are not enough: a recompiled shader may get its old name back.
func (p *ShaderProgram) stale() bool {
	if p.vertex == nil || p.fragment == nil {
		return false
	}
	return p.vertexID != p.vertex.ID() || p.fragmentID != p.fragment.ID() ||
		p.vertexGen != p.vertex.Generation() || p.fragGen != p.fragment.Generation()
}

// Bind makes p the active program. A stale program is re-linked first.
// Binding an unlinked program is logged but still activates handle 0.
func (p *ShaderProgram) Bind() {
	p.g.bound = p

	d := p.g.driver

	if p.stale() {
		p.g.logger.Debug("relinking program after shader reload", "program", p.label())
		if p.id != 0 {
			d.DetachShader(p.id, p.fragmentID)
			d.DetachShader(p.id, p.vertexID)
			d.DeleteProgram(p.id)
			p.id = 0
		}
		p.Link()
	}

	if p.id == 0 {
		p.g.logger.Error("binding an uninitialized shader program", "program", p.label())
	}

	d.UseProgram(p.id)

	for _, a := range []struct {
		loc    int32
		attrib vertexAttrib
	}{
		{p.posLoc, positionAttrib},
		{p.colorLoc, colorAttrib},
		{p.texCoordLoc, texCoordAttrib},
	} {
		if a.loc == -1 {
			continue
		}
		d.EnableVertexAttribArray(uint32(a.loc))
		d.VertexAttribPointer(uint32(a.loc), a.attrib.size, a.attrib.typ, a.attrib.normalized, vertexStride, a.attrib.offset)
	}

	if p.hook != nil {
		p.hook.OnBind(p)
	}
}

// SetBindHook installs hook to run at the end of every Bind.
func (p *ShaderProgram) SetBindHook(hook BindHook) {
	p.hook = hook
}

// Delete releases the program and its shader references. A program that was
// never linked needs no GPU work.
func (p *ShaderProgram) Delete() {
	if p.id != 0 {
		d := p.g.driver
		d.DetachShader(p.id, p.vertexID)
		d.DetachShader(p.id, p.fragmentID)
		d.DeleteProgram(p.id)
		p.id = 0
	}

	p.setShaders(nil, nil)

	if p.g.bound == p {
		p.g.bound = nil
	}
}

// Equal reports whether p and other refer to the same linked program.
// Two unlinked programs both have handle 0 and therefore compare equal.
func (p *ShaderProgram) Equal(other *ShaderProgram) bool {
	return p.id == other.id
}

// MVP returns the model-view-projection matrix pushed by bind hooks.
func (p *ShaderProgram) MVP() Matrix {
	return p.mvp
}

// SetMVP sets the model-view-projection matrix.
func (p *ShaderProgram) SetMVP(m Matrix) {
	p.mvp = m
}

// TextureID returns the texture unit pushed by bind hooks.
func (p *ShaderProgram) TextureID() uint32 {
	return p.textureID
}

// SetTextureID sets the texture unit pushed by bind hooks.
func (p *ShaderProgram) SetTextureID(id uint32) {
	p.textureID = id
}

// UniformLocation returns the location of the named uniform, or -1.
func (p *ShaderProgram) UniformLocation(name string) int32 {
	return p.g.driver.GetUniformLocation(p.id, name)
}

func (p *ShaderProgram) label() string {
	vs, fs := "<none>", "<none>"
	if p.vertex != nil {
		vs = p.vertex.Name()
	}
	if p.fragment != nil {
		fs = p.fragment.Name()
	}
	return fmt.Sprintf("%s & %s", vs, fs)
}
