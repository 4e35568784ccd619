package gfx

// Matrix is a 2D affine transform:
//
//	| A  C  TX |
//	| B  D  TY |
//	| 0  0  1  |
type Matrix struct {
	A, B, C, D float32
	TX, TY     float32
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Ortho returns a transform mapping the rectangle (0,0)-(width,height) with
// y pointing down onto clip space.
func Ortho(width, height float32) Matrix {
	return Matrix{
		A:  2 / width,
		D:  -2 / height,
		TX: -1,
		TY: 1,
	}
}

// Concat returns m followed by n.
func (m Matrix) Concat(n Matrix) Matrix {
	return Matrix{
		A:  m.A*n.A + m.B*n.C,
		B:  m.A*n.B + m.B*n.D,
		C:  m.C*n.A + m.D*n.C,
		D:  m.C*n.B + m.D*n.D,
		TX: m.TX*n.A + m.TY*n.C + n.TX,
		TY: m.TX*n.B + m.TY*n.D + n.TY,
	}
}

// CopyToMatrix3f writes m as 9 floats into dst.
func (m Matrix) CopyToMatrix3f(dst []float32) {
	_ = dst[8]
	dst[0], dst[1], dst[2] = m.A, m.B, 0
	dst[3], dst[4], dst[5] = m.C, m.D, 0
	dst[6], dst[7], dst[8] = m.TX, m.TY, 1
}

// CopyToMatrix4f writes m as 16 floats into dst.
func (m Matrix) CopyToMatrix4f(dst []float32) {
	_ = dst[15]
	dst[0], dst[1], dst[2], dst[3] = m.A, m.B, 0, 0
	dst[4], dst[5], dst[6], dst[7] = m.C, m.D, 0, 0
	dst[8], dst[9], dst[10], dst[11] = 0, 0, 1, 0
	dst[12], dst[13], dst[14], dst[15] = m.TX, m.TY, 0, 1
}
