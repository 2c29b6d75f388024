// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// ExecutorConfig holds configuration for a DrawExecutor.
type ExecutorConfig struct {
	// InitialInstanceCapacity sizes the instance packing scratch buffer,
	// in instances. The scratch grows by doubling when a batch exceeds it.
	// Default: 256
	InitialInstanceCapacity int

	// MaxInstanceCapacity is the maximum number of instances per draw call.
	// Draw fails with ErrTooManyInstances above this.
	// Default: 16384
	MaxInstanceCapacity int

	// TargetFormat is the color format of render targets. Surface views
	// passed to SetSurfaceTarget must use the same format.
	// Default: BGRA8Unorm
	TargetFormat gputypes.TextureFormat

	// TargetWidth and TargetHeight size the default offscreen target.
	// Default: 800x600
	TargetWidth  uint32
	TargetHeight uint32

	// SampleCount is the MSAA sample count of the render target.
	// Default: 1 (no multisampling)
	SampleCount uint32
}

// DefaultExecutorConfig returns default configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		InitialInstanceCapacity: 256,
		MaxInstanceCapacity:     16384,
		TargetFormat:            gputypes.TextureFormatBGRA8Unorm,
		TargetWidth:             800,
		TargetHeight:            600,
		SampleCount:             1,
	}
}

// withDefaults fills zero-valued fields from DefaultExecutorConfig so a
// partially populated config stays usable.
func (c ExecutorConfig) withDefaults() ExecutorConfig {
	def := DefaultExecutorConfig()
	if c.InitialInstanceCapacity <= 0 {
		c.InitialInstanceCapacity = def.InitialInstanceCapacity
	}
	if c.MaxInstanceCapacity <= 0 {
		c.MaxInstanceCapacity = def.MaxInstanceCapacity
	}
	if c.TargetFormat == gputypes.TextureFormatUndefined {
		c.TargetFormat = def.TargetFormat
	}
	if c.TargetWidth == 0 {
		c.TargetWidth = def.TargetWidth
	}
	if c.TargetHeight == 0 {
		c.TargetHeight = def.TargetHeight
	}
	if c.SampleCount == 0 {
		c.SampleCount = def.SampleCount
	}
	return c
}
