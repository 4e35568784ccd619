package gfx

const defaultVertexShader = `
attribute vec4 a_position;
attribute vec4 a_color0;
attribute vec2 a_texcoord0;
varying vec2 v_texcoord0;
varying vec4 v_color0;
uniform mat4 u_mvp;
void main()
{
    gl_Position = u_mvp * a_position;
    v_color0 = a_color0;
    v_texcoord0 = a_texcoord0;
}
`

const defaultFragmentShader = `
uniform sampler2D u_texture;
varying vec2 v_texcoord0;
varying vec4 v_color0;
void main()
{
    gl_FragColor = v_color0 * texture2D(u_texture, v_texcoord0);
}
`

// DefaultShader is the built-in textured, vertex-colored program.
// Every Bind pushes the program's MVP matrix and texture unit.
type DefaultShader struct {
	*ShaderProgram

	uTexture int32
	uMVP     int32
}

// NewDefaultShader compiles and links the built-in sources.
func NewDefaultShader(g *Graphics) *DefaultShader {
	s := &DefaultShader{ShaderProgram: NewShaderProgram(g)}
	s.Load(defaultVertexShader, defaultFragmentShader)

	s.uTexture = s.UniformLocation("u_texture")
	s.uMVP = s.UniformLocation("u_mvp")

	s.SetBindHook(s)
	return s
}

// OnBind implements BindHook.
func (s *DefaultShader) OnBind(p *ShaderProgram) {
	p.SetUniformMatrix4f(s.uMVP, false, p.MVP())
	p.SetUniform1i(s.uTexture, int32(p.TextureID()))
}
