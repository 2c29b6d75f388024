// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// frameUniformSize is the byte size of the FrameUniforms block:
// view matrix (64) + tint (16) + source rect (16).
const frameUniformSize = 96

// FrameResources bundles the GPU objects one draw call binds: the group 0
// bind group (uniform, texture, sampler) and the two vertex slots. The
// executor assembles one per Draw and releases the underlying buffers when
// the frame ends.
type FrameResources struct {
	// BindGroup binds FrameUniforms, the sprite texture view, and the
	// sampler at group 0.
	BindGroup hal.BindGroup

	// VertexBuffer is vertex slot 0: the drawable's vertices.
	VertexBuffer hal.Buffer

	// InstanceBuffer is vertex slot 1: per-sprite instance data.
	InstanceBuffer hal.Buffer

	// VertexCount is the number of vertices per instance.
	VertexCount uint32

	// InstanceCount is the number of instances to draw. Zero binds
	// everything and skips the draw.
	InstanceCount uint32
}

// putFloat32 writes one little-endian float32 and returns the advanced
// offset.
func putFloat32(buf []byte, off int, v float32) int {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
	return off + 4
}

// packVertices serializes vertices into raw bytes for GPU upload,
// quadVertexStride bytes each.
func packVertices(verts []sprite.Vertex, buf []byte) []byte {
	buf = growScratch(buf, len(verts)*quadVertexStride)
	off := 0
	for i := range verts {
		v := &verts[i]
		off = putFloat32(buf, off, v.Pos[0])
		off = putFloat32(buf, off, v.Pos[1])
		off = putFloat32(buf, off, v.Pos[2])
		off = putFloat32(buf, off, v.UV[0])
		off = putFloat32(buf, off, v.UV[1])
		off = putFloat32(buf, off, v.Color[0])
		off = putFloat32(buf, off, v.Color[1])
		off = putFloat32(buf, off, v.Color[2])
		off = putFloat32(buf, off, v.Color[3])
	}
	return buf
}

// packInstances serializes instance data into raw bytes for GPU upload,
// instanceStride bytes each. The transform's column-major float order is
// preserved, which is the order the shader rebuilds its mat4x4 from.
func packInstances(instances []sprite.InstanceData, buf []byte) []byte {
	buf = growScratch(buf, len(instances)*instanceStride)
	off := 0
	for i := range instances {
		inst := &instances[i]
		for _, v := range inst.Src {
			off = putFloat32(buf, off, v)
		}
		for _, v := range inst.Color {
			off = putFloat32(buf, off, v)
		}
		for _, v := range inst.Transform {
			off = putFloat32(buf, off, v)
		}
	}
	return buf
}

// makeFrameUniform creates the frameUniformSize-byte FrameUniforms block
// for one draw: the draw-level view matrix, tint, and source rect.
func makeFrameUniform(view sprite.Mat4, tint sprite.Color, src sprite.Rect) []byte {
	buf := make([]byte, frameUniformSize)
	off := 0
	for _, v := range view {
		off = putFloat32(buf, off, v)
	}
	for _, v := range tint.Array() {
		off = putFloat32(buf, off, v)
	}
	for _, v := range src.Array() {
		off = putFloat32(buf, off, v)
	}
	return buf
}

// growScratch returns buf resized to size, reallocating by doubling when
// capacity is short. The contents are overwritten by the caller.
func growScratch(buf []byte, size int) []byte {
	if cap(buf) >= size {
		return buf[:size]
	}
	newCap := cap(buf) * 2
	if newCap < size {
		newCap = size
	}
	return make([]byte, size, newCap)
}

// textureGPU is the GPU residency of one sprite.Texture: the uploaded
// texture and its sampled view. Created lazily on first draw and cached by
// texture pointer until the executor closes.
type textureGPU struct {
	tex  hal.Texture
	view hal.TextureView
}

// destroy releases the texture resources.
func (g *textureGPU) destroy(device hal.Device) {
	if g.view != nil {
		device.DestroyTextureView(g.view)
		g.view = nil
	}
	if g.tex != nil {
		device.DestroyTexture(g.tex)
		g.tex = nil
	}
}
