package gfx

import "unsafe"

// VertexPosColorTex is the vertex layout every ShaderProgram binds:
// position, packed ABGR color, texture coordinate.
type VertexPosColorTex struct {
	X, Y, Z float32
	ABGR    uint32
	U, V    float32
}

// Attribute names looked up after a successful link.
const (
	attribPosition = "a_position"
	attribColor    = "a_color0"
	attribTexCoord = "a_texcoord0"
)

// vertexAttrib describes how one attribute is read out of VertexPosColorTex.
type vertexAttrib struct {
	size       int32
	typ        AttribType
	normalized bool
	offset     uintptr
}

var (
	vertexStride = int32(unsafe.Sizeof(VertexPosColorTex{}))

	positionAttrib = vertexAttrib{3, AttribFloat, false, unsafe.Offsetof(VertexPosColorTex{}.X)}
	colorAttrib    = vertexAttrib{4, AttribUnsignedByte, true, unsafe.Offsetof(VertexPosColorTex{}.ABGR)}
	texCoordAttrib = vertexAttrib{2, AttribFloat, false, unsafe.Offsetof(VertexPosColorTex{}.U)}
)
