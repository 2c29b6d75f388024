package sprite

import (
	"image/color"
	"math"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is nominally in [0, 1], but nothing enforces the range:
// out-of-range values pass through untouched and only Bytes saturates.
type Color struct {
	R, G, B, A float32
}

// NewColor creates a color from normalized components.
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromBytes creates a color from 8-bit components.
func ColorFromBytes(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Common colors
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	Grey        = Color{R: 0.25, G: 0.25, B: 0.25, A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Red         = Color{R: 1, G: 0.05, B: 0.05, A: 1}
	Transparent = Color{R: 0, G: 0, B: 0, A: 0}
)

// Array returns the color as a 4-element array in RGBA order, the shape
// instance data and clear values are packed from.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Bytes returns the color as 8-bit components by saturating truncation:
// each component is scaled by 255, truncated toward zero, and clamped to
// [0, 255]. NaN maps to 0.
func (c Color) Bytes() [4]uint8 {
	return [4]uint8{
		saturateByte(c.R),
		saturateByte(c.G),
		saturateByte(c.B),
		saturateByte(c.A),
	}
}

// NRGBA returns the color as a non-premultiplied image/color value,
// using the same saturating truncation as Bytes.
func (c Color) NRGBA() color.NRGBA {
	b := c.Bytes()
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// saturateByte scales a normalized component by 255 and truncates to an
// 8-bit value, saturating at the bounds.
func saturateByte(v float32) uint8 {
	x := v * 255
	if math.IsNaN(float64(x)) || x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}
