package sprite

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding

	xdraw "golang.org/x/image/draw"
)

// Texture errors.
var (
	// ErrNilImage is returned when a texture is created from a nil image.
	ErrNilImage = errors.New("sprite: nil image")

	// ErrTextureSize is returned when texture dimensions are not positive.
	ErrTextureSize = errors.New("sprite: texture dimensions must be positive")

	// ErrTextureData is returned when pixel data length does not match the
	// declared dimensions.
	ErrTextureData = errors.New("sprite: pixel data length does not match dimensions")
)

// Texture holds decoded, non-premultiplied RGBA pixels on the CPU side.
// It is immutable after creation and safe to share: any number of batches
// may reference the same texture, and the render executor uploads it to
// the GPU once, on first draw.
type Texture struct {
	width  int
	height int
	pix    []byte
}

// NewTextureFromPixels creates a texture from raw non-premultiplied RGBA
// pixels with a tight stride of width*4 bytes. The data is copied.
func NewTextureFromPixels(pix []byte, width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTextureSize, width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrTextureData, len(pix), width*height*4)
	}
	data := make([]byte, len(pix))
	copy(data, pix)
	return &Texture{width: width, height: height, pix: data}, nil
}

// NewTextureFromImage creates a texture from any image.Image, converting
// to non-premultiplied RGBA.
func NewTextureFromImage(img image.Image) (*Texture, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTextureSize, width, height)
	}

	// Fast path when the source already has NRGBA pixels with a tight stride.
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == width*4 && bounds.Min == (image.Point{}) {
		data := make([]byte, len(nrgba.Pix))
		copy(data, nrgba.Pix)
		return &Texture{width: width, height: height, pix: data}, nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return &Texture{width: width, height: height, pix: dst.Pix}, nil
}

// LoadTexture loads a texture from an image file, auto-detecting the
// format. PNG and JPEG are supported out of the box; other formats work
// if their decoder is registered with image.RegisterFormat.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("sprite: open texture file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeTexture(f)
}

// DecodeTexture decodes an image from the given reader into a texture,
// auto-detecting the format.
func DecodeTexture(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode texture: %w", err)
	}
	return NewTextureFromImage(img)
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Pixels returns the texture's non-premultiplied RGBA pixel data with a
// tight stride of Width()*4 bytes. The returned slice is the texture's
// backing store and must not be modified.
func (t *Texture) Pixels() []byte {
	return t.pix
}
