package sprite

// DrawInfo carries everything one sprite instance needs: the source region
// of the batch texture to sample, a tint color, and a transform placing the
// unit quad on screen.
//
// The zero value is not useful; NewDrawInfo returns the defaults (full
// texture, opaque white, identity transform). Mutators update the instance
// in place and return it for chaining:
//
//	info := sprite.NewDrawInfo().Translate(64, 32, 0).Rotate(0.5)
//	batch.Insert(*info)
//
// A DrawInfo is plain data: inserting it into a batch copies it, and only
// Instance() evaluates the transform matrix.
type DrawInfo struct {
	Source    Rect
	Color     Color
	Transform Transform
}

// NewDrawInfo creates a DrawInfo with the full unit source rectangle,
// opaque white tint, and identity transform.
func NewDrawInfo() *DrawInfo {
	return &DrawInfo{
		Source:    UnitRect(),
		Color:     White,
		Transform: Identity(),
	}
}

// Reset restores the defaults: full source rectangle, opaque white tint,
// identity transform.
func (d *DrawInfo) Reset() *DrawInfo {
	d.Source = UnitRect()
	d.Color = White
	d.Transform = Identity()
	return d
}

// WithSource sets the source rectangle.
func (d *DrawInfo) WithSource(r Rect) *DrawInfo {
	d.Source = r
	return d
}

// WithColor sets the tint color.
func (d *DrawInfo) WithColor(c Color) *DrawInfo {
	d.Color = c
	return d
}

// WithTransform replaces the transform.
func (d *DrawInfo) WithTransform(t Transform) *DrawInfo {
	d.Transform = t
	return d
}

// Translate moves the sprite by (dx, dy, dz). Repeated calls accumulate.
func (d *DrawInfo) Translate(dx, dy, dz float32) *DrawInfo {
	d.Transform.Translate(dx, dy, dz)
	return d
}

// MoveTo places the sprite at (x, y, z), discarding the previous position.
func (d *DrawInfo) MoveTo(x, y, z float32) *DrawInfo {
	d.Transform.MoveTo(x, y, z)
	return d
}

// Rotate turns the sprite by angle radians. Repeated calls accumulate.
func (d *DrawInfo) Rotate(angle float32) *DrawInfo {
	d.Transform.Rotate(angle)
	return d
}

// SetRotation sets the sprite's absolute rotation in radians.
func (d *DrawInfo) SetRotation(angle float32) *DrawInfo {
	d.Transform.SetRotation(angle)
	return d
}

// Scale sets a uniform scale factor.
func (d *DrawInfo) Scale(s float32) *DrawInfo {
	d.Transform.ScaleBy(s, s, s)
	return d
}

// ScaleBy sets a non-uniform scale.
func (d *DrawInfo) ScaleBy(sx, sy, sz float32) *DrawInfo {
	d.Transform.ScaleBy(sx, sy, sz)
	return d
}

// Instance packs the DrawInfo into per-instance GPU data. This is the only
// place the transform's matrix is evaluated, so batching cost is one matrix
// evaluation per instance per frame, not per mutation.
func (d *DrawInfo) Instance() InstanceData {
	return InstanceData{
		Src:       d.Source.Array(),
		Color:     d.Color.Array(),
		Transform: d.Transform.Matrix(),
	}
}
