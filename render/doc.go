// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render executes sprite draw commands on the GPU via gogpu/wgpu.
//
// This package is the GPU-facing half of the sprite library. The root
// package produces flattened draw data (vertices, instances, textures);
// render owns the pipelines, buffers, and frame protocol that turn that
// data into instanced draw calls.
//
// # Key Principle
//
// The executor RECEIVES a GPU device from the host application, it does NOT
// create its own. Host frameworks (like gogpu.App) own the device and
// surface; the executor is injected with them, so sprite rendering shares
// GPU resources with everything else the host draws. NewStandaloneExecutor
// exists for headless use and tests; it is the only path that creates a
// device, and the executor then owns and destroys it.
//
// # Frame Protocol
//
// A frame is strictly sequential:
//
//	BeginFrame(clear) → Draw(...)* → Present()
//
// BeginFrame opens a render pass that clears the target. Each Draw flattens
// one drawable into a single instanced draw call. Present submits the
// recorded commands, waits for the GPU, and releases per-frame resources.
// A device fault during Draw aborts the remaining draws of that frame;
// Present stays callable and reports the fault.
//
// # Usage
//
// Integration with gogpu:
//
//	app := gogpu.NewApp(gogpu.DefaultConfig())
//	var exec *render.DrawExecutor
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if exec == nil {
//	        exec, _ = render.NewDrawExecutorFromProvider(
//	            app.GPUContextProvider(), render.DefaultExecutorConfig())
//	    }
//	    w, h := dc.SurfaceSize()
//	    exec.SetSurfaceTarget(dc.SurfaceView(), w, h)
//
//	    exec.BeginFrame(sprite.Black)
//	    exec.Draw(batch, *sprite.NewDrawInfo())
//	    exec.Present()
//	})
//
// Headless rendering:
//
//	exec, err := render.NewStandaloneExecutor(render.DefaultExecutorConfig())
//	if err != nil { ... }
//	defer exec.Close()
//
//	exec.BeginFrame(sprite.Black)
//	exec.Draw(batch, *sprite.NewDrawInfo())
//	exec.Present()
//	pixels, err := exec.ReadPixels()
//
// # Architecture
//
//	              SpriteBatch (root package)
//	                       │ Flatten()
//	                       ▼
//	                 DrawExecutor
//	      ┌────────────────┼────────────────┐
//	      │                │                │
//	      ▼                ▼                ▼
//	ShaderProgram   frame resources    texture cache
//	(one pipeline   (per-draw buffers, (lazy GPU upload,
//	 per BlendMode)  bind groups)       one per Texture)
//	      │                │                │
//	      └────────────────┼────────────────┘
//	                       │
//	                       ▼
//	                  wgpu/hal
//
// # Thread Safety
//
// The executor is NOT thread-safe: the frame protocol is single-threaded by
// contract. The only internal synchronization is in PipelineObjectSet, so
// Warmup may pre-build pipelines from another goroutine between frames.
package render
