package sprite

import "math"

// Mat4 is a 4x4 matrix of float32 stored in column-major order, the layout
// WGSL's mat4x4<f32> consumes without reshuffling:
//
//	| m[0] m[4] m[8]  m[12] |
//	| m[1] m[5] m[9]  m[13] |
//	| m[2] m[6] m[10] m[14] |
//	| m[3] m[7] m[11] m[15] |
//
// Element (row r, column c) lives at index c*4+r. Translation occupies
// indices 12, 13, 14.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation returns a matrix that translates by (x, y, z).
func Mat4Translation(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Mat4Scaling returns a matrix that scales by (sx, sy, sz).
func Mat4Scaling(sx, sy, sz float32) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationZ returns a matrix that rotates by angle radians around the
// Z axis.
func Mat4RotationZ(angle float32) Mat4 {
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Ortho2D returns an orthographic projection mapping pixel coordinates
// ([0,width] right, [0,height] down) onto clip space ([-1,1] with Y up).
// Z passes through unchanged.
func Mat4Ortho2D(width, height float32) Mat4 {
	return Mat4{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 1, 0,
		-1, 1, 0, 1,
	}
}

// Mul returns the matrix product m * n. Applied to a column vector v,
// the result transforms by n first and m second: (m*n)v = m(nv).
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float32 {
	return m[col*4+row]
}

// Set assigns the element at (row, col).
func (m *Mat4) Set(row, col int, v float32) {
	m[col*4+row] = v
}

// TransformPoint applies the matrix to the point (x, y, z, 1) and returns
// the transformed x, y, z. Sprite transforms are affine, so no perspective
// divide is performed.
func (m Mat4) TransformPoint(x, y, z float32) (tx, ty, tz float32) {
	tx = m[0]*x + m[4]*y + m[8]*z + m[12]
	ty = m[1]*x + m[5]*y + m[9]*z + m[13]
	tz = m[2]*x + m[6]*y + m[10]*z + m[14]
	return tx, ty, tz
}

// IsIdentity reports whether the matrix is exactly the identity.
func (m Mat4) IsIdentity() bool {
	return m == Mat4Identity()
}
