package sprite

// Rect is an axis-aligned rectangle in normalized texture space: X,Y is
// the top-left corner and W,H the extent, all in [0,1] for a full texture.
// Values outside [0,1] are not validated; samplers clamp or wrap them.
type Rect struct {
	X, Y, W, H float32
}

// NewRect creates a rectangle from position and extent.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// UnitRect returns the full unit rectangle {0, 0, 1, 1}, the region
// covering an entire texture. This is the rectangle DrawInfo defaults to.
func UnitRect() Rect {
	return Rect{X: 0, Y: 0, W: 1, H: 1}
}

// Array returns the rectangle as a 4-element array (x, y, w, h), the shape
// instance data is packed from.
func (r Rect) Array() [4]float32 {
	return [4]float32{r.X, r.Y, r.W, r.H}
}
