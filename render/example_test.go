// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"fmt"

	"github.com/gogpu/sprite/render"
)

// ExampleNewDrawExecutorFromProvider demonstrates creating an executor from
// a host-provided device.
//
// In real usage, the DeviceHandle would come from the host application
// (e.g., gogpu.App.GPUContextProvider()). NullDeviceHandle carries no HAL
// access, so construction fails cleanly without a GPU.
func ExampleNewDrawExecutorFromProvider() {
	_, err := render.NewDrawExecutorFromProvider(render.NullDeviceHandle{}, render.DefaultExecutorConfig())
	if err != nil {
		fmt.Println("failed to create executor:", err)
		return
	}
	// Output: failed to create executor: render: provider does not expose HAL types
}

// ExampleDefaultExecutorConfig demonstrates the executor defaults. Zero
// fields in a partial ExecutorConfig are filled from these values.
func ExampleDefaultExecutorConfig() {
	cfg := render.DefaultExecutorConfig()

	fmt.Printf("target: %dx%d\n", cfg.TargetWidth, cfg.TargetHeight)
	fmt.Printf("instances: %d initial, %d max\n",
		cfg.InitialInstanceCapacity, cfg.MaxInstanceCapacity)
	// Output:
	// target: 800x600
	// instances: 256 initial, 16384 max
}

// ExampleDefaultShaderConfig demonstrates the built-in sprite shader
// configuration used when no custom shader is registered.
func ExampleDefaultShaderConfig() {
	cfg := render.DefaultShaderConfig()

	fmt.Printf("label: %s\n", cfg.Label)
	fmt.Printf("blend: %s\n", cfg.InitialMode)
	// Output:
	// label: sprite
	// blend: Alpha
}

// ExampleNullDeviceHandle demonstrates the null device for testing.
func ExampleNullDeviceHandle() {
	handle := render.NullDeviceHandle{}

	// NullDeviceHandle returns nil for all GPU resources
	fmt.Printf("device: %v\n", handle.Device())
	fmt.Printf("queue: %v\n", handle.Queue())
	fmt.Printf("adapter: %v\n", handle.Adapter())
	// Output:
	// device: <nil>
	// queue: <nil>
	// adapter: <nil>
}
