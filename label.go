package sprite

import (
	"errors"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyLabel is returned when a label is created from an empty string.
var ErrEmptyLabel = errors.New("sprite: empty label text")

// labelFace is the built-in bitmap face labels render with. 7x13 is small
// but ships with no font file dependency, which keeps debug overlays and
// score counters working everywhere.
var labelFace = basicfont.Face7x13

// MeasureLabel returns the pixel dimensions NewLabelTexture would produce
// for text: the string's horizontal advance and the face's line height.
func MeasureLabel(text string) (width, height int) {
	return font.MeasureString(labelFace, text).Ceil(), labelFace.Metrics().Height.Ceil()
}

// NewLabelTexture renders a single line of text into a texture with the
// built-in bitmap face. The glyphs are drawn in fg over a transparent
// background, so the texture composites over any scene with the Alpha
// blend mode. Size the resulting sprite with a transform scale equal to
// the texture dimensions to render at native pixel size.
func NewLabelTexture(text string, fg Color) (*Texture, error) {
	if text == "" {
		return nil, ErrEmptyLabel
	}

	width, height := MeasureLabel(text)
	ascent := labelFace.Metrics().Ascent.Ceil()

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg.NRGBA()),
		Face: labelFace,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	return NewTextureFromImage(dst)
}
