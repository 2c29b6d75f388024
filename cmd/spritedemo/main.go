//go:build !nogpu

// Command spritedemo renders a sprite batch offscreen and saves the
// result as a PNG. It needs a Vulkan-capable GPU.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/render"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "sprites.png", "output file")
	)
	flag.Parse()

	exec, err := render.NewStandaloneExecutor(render.ExecutorConfig{
		TargetWidth:  uint32(*width),
		TargetHeight: uint32(*height),
	})
	if err != nil {
		log.Fatalf("Failed to create executor: %v", err)
	}
	defer exec.Close()

	// Square pixels regardless of the output aspect ratio.
	aspect := float32(*width) / float32(*height)
	exec.SetProjection(sprite.Mat4Ortho2D(2*aspect, 2))

	tex, err := discTexture()
	if err != nil {
		log.Fatalf("Failed to build texture: %v", err)
	}

	// A ring of sprites around the view center. Ortho2D(2*aspect, 2)
	// puts the center at (aspect, 1), y-down.
	cx, cy := aspect, float32(1)
	batch := sprite.NewSpriteBatch(tex)
	const count = 12
	for i := 0; i < count; i++ {
		angle := float64(i) * 2 * math.Pi / count
		x := cx + float32(math.Cos(angle))*0.9 - 0.15
		y := cy + float32(math.Sin(angle))*0.6 - 0.15
		hue := float32(i) / count
		batch.Insert(*sprite.NewDrawInfo().
			Scale(0.3).
			Translate(x, y, 0).
			WithColor(sprite.NewColor(1-hue, 0.4, hue, 1)))
	}

	label, err := sprite.NewLabelTexture("spritedemo", sprite.White)
	if err != nil {
		log.Fatalf("Failed to build label: %v", err)
	}
	labels := sprite.NewSpriteBatch(label)
	labels.Insert(*sprite.NewDrawInfo().ScaleBy(0.8, 0.12, 1).MoveTo(cx-0.4, cy-0.06, 0))

	if err := exec.BeginFrame(sprite.Grey); err != nil {
		log.Fatalf("Begin frame: %v", err)
	}
	if err := exec.Draw(batch, *sprite.NewDrawInfo()); err != nil {
		log.Fatalf("Draw: %v", err)
	}
	if err := exec.Draw(labels, *sprite.NewDrawInfo()); err != nil {
		log.Fatalf("Draw label: %v", err)
	}
	if err := exec.Present(); err != nil {
		log.Fatalf("Present: %v", err)
	}

	pixels, err := exec.ReadPixels()
	if err != nil {
		log.Fatalf("Read pixels: %v", err)
	}
	if err := writePNG(*output, pixels, *width, *height); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// discTexture builds a soft two-tone disc with transparent corners.
func discTexture() (*sprite.Texture, error) {
	const size = 64
	pix := make([]byte, size*size*4)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy > r*r {
				continue
			}
			i := (y*size + x) * 4
			if dy < 0 {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xFF, 0xFF, 0xFF, 0xFF
			} else {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xC8, 0xC8, 0xC8, 0xFF
			}
		}
	}
	return sprite.NewTextureFromPixels(pix, size, size)
}

// writePNG saves tightly packed RGBA pixels.
func writePNG(path string, pixels []byte, width, height int) error {
	img := &image.NRGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
