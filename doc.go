// Package sprite provides 2D sprite batching primitives for Go.
//
// # Overview
//
// sprite is a Pure Go sprite rendering library for the GoGPU ecosystem.
// It provides the CPU-side building blocks of a sprite renderer: transforms,
// colors, source rectangles, per-draw parameters, and instance batching.
// The GPU-facing half (pipelines, shaders, frame execution) lives in the
// render sub-package and runs on gogpu/wgpu.
//
// # Quick Start
//
//	import "github.com/gogpu/sprite"
//
//	tex, _ := sprite.LoadTexture("player.png")
//	batch := sprite.NewSpriteBatch(tex)
//
//	info := sprite.NewDrawInfo()
//	info.Translate(100, 50, 0)
//	batch.Insert(*info)
//
//	verts, instances := batch.Flatten()
//	// hand verts/instances to a render.DrawExecutor
//
// # Architecture
//
// The library is organized into:
//   - Public API: Transform, Color, Rect, DrawInfo, SpriteBatch, Texture
//   - render: ShaderProgram, PipelineObjectSet, DrawExecutor (wgpu/hal)
//   - input: keyboard and mouse state tracking over gpucontext events
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Sprites are unit quads: a sprite's geometry always spans [0,1]x[0,1] and
// its Transform scales it to pixel size. A 32x48 sprite at (100,50) is a
// Transform with scale (32,48,1) and position (100,50,0).
//
// # Batching Model
//
// A SpriteBatch holds one texture and any number of DrawInfo entries.
// Flatten produces the shared unit-quad vertices plus one InstanceData per
// entry; the whole batch renders as a single instanced draw call. Batches
// are reusable across frames: Insert accumulates, Clear empties, and the
// caller decides when either happens.
package sprite

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
