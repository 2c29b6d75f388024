package sprite

import "math"

// transformKind tags the active shape of a Transform.
type transformKind uint8

const (
	// transformComponents keeps position, rotation, scale, and offset
	// independently addressable for animation-style mutation.
	transformComponents transformKind = iota

	// transformMatrix holds a pre-baked 4x4 matrix. Mutators left-multiply
	// elementary matrices onto it; the individual pose fields are gone.
	transformMatrix
)

// Transform describes a sprite's pose. It has two shapes:
//
//   - Components: position, rotation (radians), non-uniform scale, and a
//     pivot offset, kept as separate fields. This is the default shape and
//     the one animation code mutates.
//   - Matrix: an opaque 4x4 affine matrix, for callers that computed their
//     pose elsewhere.
//
// Matrix() converts either shape to a Mat4 and is the only conversion path;
// nothing else in the library inspects the fields. Mutators preserve the
// shape: on Components they update the corresponding field, on Matrix they
// left-multiply an equivalent elementary matrix.
//
// Inputs are unconstrained: NaN and Inf propagate into the produced matrix
// without validation.
type Transform struct {
	kind transformKind

	// Components shape.
	pos      Vec3
	rotation float32
	scale    Vec3
	offset   Vec3

	// Matrix shape.
	matrix Mat4
}

// Identity returns a Components-shape transform with zero position,
// rotation, and offset, and unit scale.
func Identity() Transform {
	return Transform{
		kind:  transformComponents,
		scale: Vec3{X: 1, Y: 1, Z: 1},
	}
}

// FromMatrix returns a Matrix-shape transform wrapping m.
func FromMatrix(m Mat4) Transform {
	return Transform{kind: transformMatrix, matrix: m}
}

// IsMatrix reports whether the transform is in the Matrix shape.
func (t Transform) IsMatrix() bool {
	return t.kind == transformMatrix
}

// Matrix returns the transform as a 4x4 column-major matrix.
//
// For the Components shape the composition is scale, then rotate about the
// offset point, then translate to position, collapsed into one matrix:
//
//	| cos(r)*sx  -sin(r)*sy  0  ox*(1-m00) - oy*m01 + px |
//	| sin(r)*sx   cos(r)*sy  0  oy*(1-m11) - ox*m10 + py |
//	| 0           0          1  0                        |
//	| 0           0          0  1                        |
//
// The Z position is not folded in; sprite placement is planar and layering
// is the renderer's concern. For the Matrix shape the stored matrix is
// returned as is.
func (t Transform) Matrix() Mat4 {
	switch t.kind {
	case transformMatrix:
		return t.matrix
	case transformComponents:
		sin, cos := math.Sincos(float64(t.rotation))
		sinr, cosr := float32(sin), float32(cos)

		m00 := cosr * t.scale.X
		m01 := -sinr * t.scale.Y
		m10 := sinr * t.scale.X
		m11 := cosr * t.scale.Y
		m03 := t.offset.X*(1-m00) - t.offset.Y*m01 + t.pos.X
		m13 := t.offset.Y*(1-m11) - t.offset.X*m10 + t.pos.Y

		return Mat4{
			m00, m10, 0, 0,
			m01, m11, 0, 0,
			0, 0, 1, 0,
			m03, m13, 0, 1,
		}
	default:
		return Mat4Identity()
	}
}

// Translate moves the transform by (dx, dy, dz). Repeated calls accumulate.
func (t *Transform) Translate(dx, dy, dz float32) {
	switch t.kind {
	case transformComponents:
		t.pos = t.pos.Add(Vec3{X: dx, Y: dy, Z: dz})
	case transformMatrix:
		t.matrix = Mat4Translation(dx, dy, dz).Mul(t.matrix)
	}
}

// MoveTo places the transform at (x, y, z), discarding the previous
// position. On the Matrix shape the translation entries are overwritten;
// the linear part is untouched.
func (t *Transform) MoveTo(x, y, z float32) {
	switch t.kind {
	case transformComponents:
		t.pos = Vec3{X: x, Y: y, Z: z}
	case transformMatrix:
		t.matrix[12] = x
		t.matrix[13] = y
		t.matrix[14] = z
	}
}

// Rotate turns the transform by angle radians. Repeated calls accumulate.
func (t *Transform) Rotate(angle float32) {
	switch t.kind {
	case transformComponents:
		t.rotation += angle
	case transformMatrix:
		t.matrix = Mat4RotationZ(angle).Mul(t.matrix)
	}
}

// SetRotation sets the absolute rotation to angle radians, discarding the
// previous rotation. A Matrix-shape transform cannot be re-decomposed into
// pose fields, so SetRotation leaves it unchanged and logs at debug level.
func (t *Transform) SetRotation(angle float32) {
	switch t.kind {
	case transformComponents:
		t.rotation = angle
	case transformMatrix:
		Logger().Debug("sprite: SetRotation ignored on matrix-shape transform")
	}
}

// ScaleBy sets a non-uniform scale. On Components the scale factors are
// overwritten; on Matrix an elementary scale matrix is left-multiplied.
func (t *Transform) ScaleBy(sx, sy, sz float32) {
	switch t.kind {
	case transformComponents:
		t.scale = Vec3{X: sx, Y: sy, Z: sz}
	case transformMatrix:
		t.matrix = Mat4Scaling(sx, sy, sz).Mul(t.matrix)
	}
}

// SetOffset sets the pivot point that rotation and scale act about,
// in the sprite's local coordinates. A Matrix-shape transform has no
// pivot to adjust, so SetOffset leaves it unchanged and logs at debug
// level.
func (t *Transform) SetOffset(x, y, z float32) {
	switch t.kind {
	case transformComponents:
		t.offset = Vec3{X: x, Y: y, Z: z}
	case transformMatrix:
		Logger().Debug("sprite: SetOffset ignored on matrix-shape transform")
	}
}

// Position returns the transform's translation. For the Matrix shape this
// is the matrix translation column.
func (t Transform) Position() Vec3 {
	if t.kind == transformMatrix {
		return Vec3{X: t.matrix[12], Y: t.matrix[13], Z: t.matrix[14]}
	}
	return t.pos
}

// Rotation returns the stored rotation in radians. Matrix-shape transforms
// do not retain a rotation angle and report zero.
func (t Transform) Rotation() float32 {
	if t.kind == transformMatrix {
		return 0
	}
	return t.rotation
}
