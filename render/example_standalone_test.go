// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package render_test

import (
	"fmt"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/render"
)

// ExampleNewStandaloneExecutor demonstrates headless rendering on a machine
// with a Vulkan-capable GPU: the executor boots its own device, draws a
// batch offscreen, and reads the pixels back.
func ExampleNewStandaloneExecutor() {
	exec, err := render.NewStandaloneExecutor(render.ExecutorConfig{
		TargetWidth:  256,
		TargetHeight: 256,
	})
	if err != nil {
		fmt.Println("no GPU available:", err)
		return
	}
	defer exec.Close()

	// A text label rendered into a texture makes an easy test sprite.
	tex, err := sprite.NewLabelTexture("hello", sprite.White)
	if err != nil {
		fmt.Println("failed to build texture:", err)
		return
	}

	batch := sprite.NewSpriteBatch(tex)
	batch.Insert(*sprite.NewDrawInfo())

	if err := exec.BeginFrame(sprite.Black); err != nil {
		fmt.Println("begin frame:", err)
		return
	}
	if err := exec.Draw(batch, *sprite.NewDrawInfo()); err != nil {
		fmt.Println("draw:", err)
		return
	}
	if err := exec.Present(); err != nil {
		fmt.Println("present:", err)
		return
	}

	pixels, err := exec.ReadPixels()
	if err != nil {
		fmt.Println("read pixels:", err)
		return
	}
	fmt.Printf("read %d bytes of RGBA\n", len(pixels))
}
