// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sprite"
	"github.com/gogpu/wgpu/hal"
)

// Executor-specific errors.
var (
	// ErrNilDevice is returned when constructing against a nil HAL device.
	ErrNilDevice = errors.New("render: nil HAL device")

	// ErrNilQueue is returned when constructing against a nil HAL queue.
	ErrNilQueue = errors.New("render: nil HAL queue")

	// ErrExecutorClosed is returned when operating on a closed executor.
	ErrExecutorClosed = errors.New("render: executor closed")

	// ErrFrameActive is returned when an operation requires no frame to be
	// in progress but one is.
	ErrFrameActive = errors.New("render: frame already in progress")

	// ErrNoFrame is returned when Draw or Present is called outside a
	// BeginFrame/Present pair.
	ErrNoFrame = errors.New("render: no frame in progress")

	// ErrShaderNotFound is returned when a ShaderID does not name a
	// registered shader program.
	ErrShaderNotFound = errors.New("render: shader not registered")

	// ErrNilTexture is returned when a drawable carries no texture.
	ErrNilTexture = errors.New("render: drawable has no texture")

	// ErrTooManyInstances is returned when a single draw exceeds the
	// configured instance maximum.
	ErrTooManyInstances = errors.New("render: instance count exceeds configured maximum")
)

const (
	// presentWaitTimeout bounds the fence wait after submission.
	presentWaitTimeout = 5 * time.Second

	// copyPitchAlignment is the BytesPerRow alignment WebGPU and DX12
	// require for texture-to-buffer copies.
	copyPitchAlignment = 256
)

// Drawable is anything the executor can render: it flattens to quad
// vertices plus per-sprite instances and names the texture they sample.
// SpriteBatch is the canonical implementation.
type Drawable interface {
	Flatten() ([]sprite.Vertex, []sprite.InstanceData)
	Texture() *sprite.Texture
}

var _ Drawable = (*sprite.SpriteBatch)(nil)

// ShaderID identifies a shader program registered with an executor.
// IDs are stable for the executor's lifetime.
type ShaderID int

// DefaultShader is the built-in sprite shader every executor registers
// during construction.
const DefaultShader ShaderID = 0

// frameState holds everything that lives exactly one BeginFrame/Present
// pair: the open encoder and pass, the per-draw GPU resources to release
// at frame end, and the first fault if a draw failed.
type frameState struct {
	encoder hal.CommandEncoder
	pass    hal.RenderPassEncoder
	buffers []hal.Buffer
	groups  []hal.BindGroup
	faulted error
	draws   int
}

// DrawExecutor turns flattened sprite batches into instanced GPU draw
// calls. It owns the sampler, the offscreen render target, the registered
// shader programs, and the lazily uploaded texture cache; the HAL device
// and queue are received (or, for standalone executors, owned).
//
// The frame protocol is BeginFrame, any number of Draw calls, Present.
// See the package documentation for the full contract.
//
// A DrawExecutor is not safe for concurrent use.
type DrawExecutor struct {
	device hal.Device
	queue  hal.Queue
	cfg    ExecutorConfig

	// ownsDevice marks executors created by NewStandaloneExecutor, which
	// destroy the device and instance on Close.
	ownsDevice bool
	instance   hal.Instance

	shaders []*ShaderProgram
	current ShaderID

	sampler hal.Sampler

	// Offscreen render target. BeginFrame falls back to it when no
	// surface view is set; ReadPixels always reads it.
	targetTex  hal.Texture
	targetView hal.TextureView
	targetW    uint32
	targetH    uint32

	// Surface target, set per frame by windowed callers. Takes priority
	// over the offscreen target while set.
	surfaceView hal.TextureView
	surfaceW    uint32
	surfaceH    uint32

	frame    *frameState
	textures map[*sprite.Texture]*textureGPU
	scratch  []byte

	projection sprite.Mat4
	closed     bool
}

// NewDrawExecutor creates an executor on a received device and queue.
// Zero-valued config fields are filled from DefaultExecutorConfig. The
// construction registers the built-in sprite shader as DefaultShader and
// creates the shared sampler and the offscreen render target.
//
// The executor does not own the device: Close releases everything the
// executor created but leaves the device and queue alive.
func NewDrawExecutor(device hal.Device, queue hal.Queue, cfg ExecutorConfig) (*DrawExecutor, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	cfg = cfg.withDefaults()

	e := &DrawExecutor{
		device:     device,
		queue:      queue,
		cfg:        cfg,
		textures:   make(map[*sprite.Texture]*textureGPU),
		scratch:    make([]byte, 0, cfg.InitialInstanceCapacity*instanceStride),
		projection: sprite.Mat4Identity(),
	}

	sampler, err := device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "sprite_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}
	e.sampler = sampler

	if err := e.createTarget(cfg.TargetWidth, cfg.TargetHeight); err != nil {
		e.Close()
		return nil, err
	}

	if _, err := e.RegisterShader(DefaultShaderConfig()); err != nil {
		e.Close()
		return nil, fmt.Errorf("register default shader: %w", err)
	}
	return e, nil
}

// createTarget creates the offscreen color target (CopySrc for ReadPixels).
func (e *DrawExecutor) createTarget(w, h uint32) error {
	tex, err := e.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "sprite_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   e.cfg.SampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        e.cfg.TargetFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}

	view, err := e.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "sprite_target_view",
		Format:        e.cfg.TargetFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		e.device.DestroyTexture(tex)
		return fmt.Errorf("create target view: %w", err)
	}

	e.targetTex = tex
	e.targetView = view
	e.targetW = w
	e.targetH = h
	return nil
}

// BeginFrame opens a frame: it creates a command encoder and begins a
// render pass that clears the current target to clear. Exactly one frame
// may be open at a time.
func (e *DrawExecutor) BeginFrame(clear sprite.Color) error {
	if e.closed {
		return ErrExecutorClosed
	}
	if e.frame != nil {
		return ErrFrameActive
	}

	encoder, err := e.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "sprite_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sprite_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	view := e.surfaceView
	if view == nil {
		view = e.targetView
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "sprite_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    view,
			LoadOp:  gputypes.LoadOpClear,
			StoreOp: gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: float64(clear.R),
				G: float64(clear.G),
				B: float64(clear.B),
				A: float64(clear.A),
			},
		}},
	})

	e.frame = &frameState{encoder: encoder, pass: rp}
	return nil
}

// Draw records one instanced draw for drawable into the open frame. The
// DrawInfo is the draw-level modifier: its transform composes with the
// executor projection into the view matrix, and its color and source
// rectangle multiply every instance's.
//
// Caller errors (no texture, instance count over the configured maximum)
// reject only this draw; the frame stays usable. Device errors fault the
// frame: subsequent Draws return the same error and Present reports it
// after discarding the frame's encoding.
func (e *DrawExecutor) Draw(drawable Drawable, info sprite.DrawInfo) error {
	if e.closed {
		return ErrExecutorClosed
	}
	if e.frame == nil {
		return ErrNoFrame
	}
	if e.frame.faulted != nil {
		return e.frame.faulted
	}

	tex := drawable.Texture()
	if tex == nil {
		return ErrNilTexture
	}

	verts, instances := drawable.Flatten()
	if len(instances) > e.cfg.MaxInstanceCapacity {
		return fmt.Errorf("%w: %d > %d", ErrTooManyInstances, len(instances), e.cfg.MaxInstanceCapacity)
	}

	shader := e.shaders[e.current]
	if err := shader.Register(shader.BlendMode()); err != nil {
		return e.fault(fmt.Errorf("register pipeline: %w", err))
	}

	gpuTex, err := e.ensureTexture(tex)
	if err != nil {
		return e.fault(fmt.Errorf("upload texture: %w", err))
	}

	e.scratch = packVertices(verts, e.scratch)
	vertexBuf, err := e.createFrameBuffer("sprite_verts", e.scratch,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return e.fault(err)
	}

	// WriteBuffer copies synchronously, so the scratch slice is free for
	// reuse as soon as createFrameBuffer returns.
	var instanceData []byte
	if len(instances) == 0 {
		// Zero-size buffers are invalid on Vulkan. Bind one zeroed
		// instance slot; the draw itself is skipped downstream.
		instanceData = make([]byte, instanceStride)
	} else {
		e.scratch = packInstances(instances, e.scratch)
		instanceData = e.scratch
	}
	instanceBuf, err := e.createFrameBuffer("sprite_instances", instanceData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return e.fault(err)
	}

	uniform := makeFrameUniform(e.projection.Mul(info.Transform.Matrix()), info.Color, info.Source)
	uniformBuf, err := e.createFrameBuffer("sprite_uniform", uniform,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return e.fault(err)
	}

	group, err := e.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "sprite_draw_bind",
		Layout: shader.BindGroupLayout(),
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: frameUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: gputypes.TextureViewHandle(gpuTex.view.NativeHandle()),
			}},
			{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: gputypes.SamplerHandle(e.sampler.NativeHandle()),
			}},
		},
	})
	if err != nil {
		return e.fault(fmt.Errorf("create bind group: %w", err))
	}
	e.frame.groups = append(e.frame.groups, group)

	res := &FrameResources{
		BindGroup:      group,
		VertexBuffer:   vertexBuf,
		InstanceBuffer: instanceBuf,
		VertexCount:    uint32(len(verts)),
		InstanceCount:  uint32(len(instances)),
	}
	if err := shader.Draw(e.frame.pass, res); err != nil {
		return e.fault(err)
	}
	e.frame.draws++
	return nil
}

// DrawWith draws with an explicit shader program instead of the selected
// one. The selection is restored before DrawWith returns, so a failed
// draw never leaks the shader switch.
func (e *DrawExecutor) DrawWith(drawable Drawable, info sprite.DrawInfo, id ShaderID) error {
	if e.closed {
		return ErrExecutorClosed
	}
	if id < 0 || int(id) >= len(e.shaders) {
		return fmt.Errorf("%w: id %d", ErrShaderNotFound, id)
	}
	prev := e.current
	e.current = id
	defer func() { e.current = prev }()
	return e.Draw(drawable, info)
}

// Present closes the frame: it ends the render pass, submits the encoded
// commands, and blocks until the GPU signals completion. All per-draw
// buffers and bind groups are released whether or not submission succeeds.
//
// If a draw faulted the frame, Present discards the encoding and returns
// that fault instead of submitting partial work.
func (e *DrawExecutor) Present() error {
	if e.closed {
		return ErrExecutorClosed
	}
	if e.frame == nil {
		return ErrNoFrame
	}
	frame := e.frame
	defer func() {
		e.releaseFrame(frame)
		e.frame = nil
	}()

	if frame.faulted != nil {
		frame.pass.End()
		frame.encoder.DiscardEncoding()
		return frame.faulted
	}

	frame.pass.End()
	cmdBuf, err := frame.encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer e.device.FreeCommandBuffer(cmdBuf)

	fence, err := e.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer e.device.DestroyFence(fence)

	if err := e.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := e.device.Wait(fence, 1, presentWaitTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

// fault records the frame's first device error and returns it. Later
// Draws short-circuit on it; Present reports it.
func (e *DrawExecutor) fault(err error) error {
	if e.frame != nil && e.frame.faulted == nil {
		e.frame.faulted = err
	}
	return err
}

// createFrameBuffer creates a buffer, uploads data, and schedules the
// buffer for release at frame end.
func (e *DrawExecutor) createFrameBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	e.queue.WriteBuffer(buf, 0, data)
	e.frame.buffers = append(e.frame.buffers, buf)
	return buf, nil
}

// ensureTexture returns the GPU residency for tex, uploading the pixels
// on first use. Residency is keyed by texture identity and lives until
// Close; sprite textures are immutable, so one upload suffices.
func (e *DrawExecutor) ensureTexture(tex *sprite.Texture) (*textureGPU, error) {
	if gpuTex, ok := e.textures[tex]; ok {
		return gpuTex, nil
	}

	w := uint32(tex.Width())
	h := uint32(tex.Height())
	halTex, err := e.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "sprite_texture",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	view, err := e.device.CreateTextureView(halTex, &hal.TextureViewDescriptor{
		Label:         "sprite_texture_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		e.device.DestroyTexture(halTex)
		return nil, fmt.Errorf("create texture view: %w", err)
	}

	e.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: halTex, MipLevel: 0},
		tex.Pixels(),
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)

	gpuTex := &textureGPU{tex: halTex, view: view}
	e.textures[tex] = gpuTex
	sprite.Logger().Debug("render: texture uploaded", "width", w, "height", h)
	return gpuTex, nil
}

// releaseFrame destroys the per-draw resources the frame accumulated.
func (e *DrawExecutor) releaseFrame(frame *frameState) {
	for _, group := range frame.groups {
		e.device.DestroyBindGroup(group)
	}
	for _, buf := range frame.buffers {
		e.device.DestroyBuffer(buf)
	}
	frame.groups = nil
	frame.buffers = nil
}

// ReadPixels copies the offscreen target back to the CPU and returns
// tightly packed RGBA bytes (width*height*4, rows top to bottom). It may
// only be called between frames; the offscreen target holds the last
// frame presented while no surface target was set.
func (e *DrawExecutor) ReadPixels() ([]byte, error) {
	if e.closed {
		return nil, ErrExecutorClosed
	}
	if e.frame != nil {
		return nil, ErrFrameActive
	}

	w, h := e.targetW, e.targetH
	encoder, err := e.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "sprite_readback_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sprite_readback"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	// CopyTextureToBuffer requires the texture in CopySrc state; the last
	// render pass left it in RenderAttachment. Explicit barrier both ways
	// (no-op on backends without layout tracking).
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: e.targetTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	// WebGPU (and DX12) requires BytesPerRow aligned to 256 bytes.
	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := e.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sprite_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer e.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(e.targetTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: e.targetTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: e.targetTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer e.device.FreeCommandBuffer(cmdBuf)

	fence, err := e.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer e.device.DestroyFence(fence)

	if err := e.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := e.device.Wait(fence, 1, presentWaitTimeout)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingSize)
	if err := e.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	// Strip row padding (if any), then swizzle BGRA targets to RGBA.
	pixels := make([]byte, uint64(bytesPerRow)*uint64(h))
	if alignedBytesPerRow == bytesPerRow {
		copy(pixels, readback)
	} else {
		for row := uint32(0); row < h; row++ {
			srcOff := int(row) * int(alignedBytesPerRow)
			dstOff := int(row) * int(bytesPerRow)
			copy(pixels[dstOff:dstOff+int(bytesPerRow)], readback[srcOff:srcOff+int(bytesPerRow)])
		}
	}
	if e.cfg.TargetFormat == gputypes.TextureFormatBGRA8Unorm {
		convertBGRAToRGBA(pixels, pixels, int(w)*int(h))
	}
	return pixels, nil
}

// convertBGRAToRGBA swaps the R and B channels of count pixels from src
// into dst. src and dst may alias.
func convertBGRAToRGBA(src, dst []byte, count int) {
	for i := 0; i < count; i++ {
		off := i * 4
		b, g, r, a := src[off], src[off+1], src[off+2], src[off+3]
		dst[off], dst[off+1], dst[off+2], dst[off+3] = r, g, b, a
	}
}

// SetSurfaceTarget points frame rendering at a window surface view. The
// executor borrows the view; the caller keeps ownership and must call
// SetSurfaceTarget again when the surface is reacquired or resized.
// Takes effect at the next BeginFrame.
func (e *DrawExecutor) SetSurfaceTarget(view hal.TextureView, width, height uint32) {
	e.surfaceView = view
	e.surfaceW = width
	e.surfaceH = height
}

// ClearSurfaceTarget reverts frame rendering to the offscreen target, from
// the next BeginFrame on.
func (e *DrawExecutor) ClearSurfaceTarget() {
	e.surfaceView = nil
	e.surfaceW = 0
	e.surfaceH = 0
}

// SetProjection replaces the projection matrix composed into every draw's
// view matrix. The default is identity, which leaves sprite coordinates
// in clip space; Mat4Ortho2D gives pixel coordinates.
func (e *DrawExecutor) SetProjection(m sprite.Mat4) {
	e.projection = m
}

// Projection returns the current projection matrix.
func (e *DrawExecutor) Projection() sprite.Mat4 {
	return e.projection
}

// SetBlendMode switches the selected shader's blend mode. The pipeline
// for the mode is built lazily on the next Draw if it does not exist yet.
func (e *DrawExecutor) SetBlendMode(mode sprite.BlendMode) {
	e.shaders[e.current].SetBlendMode(mode)
}

// BlendMode returns the selected shader's blend mode.
func (e *DrawExecutor) BlendMode() sprite.BlendMode {
	return e.shaders[e.current].BlendMode()
}

// RegisterShader builds a shader program from cfg and registers it. A
// zero Format or SampleCount inherits the executor's target settings, so
// custom shaders match the render pass by default.
func (e *DrawExecutor) RegisterShader(cfg ShaderConfig) (ShaderID, error) {
	if e.closed {
		return 0, ErrExecutorClosed
	}
	if cfg.Format == gputypes.TextureFormatUndefined {
		cfg.Format = e.cfg.TargetFormat
	}
	if cfg.SampleCount == 0 {
		cfg.SampleCount = e.cfg.SampleCount
	}
	program, err := NewShaderProgram(e.device, cfg)
	if err != nil {
		return 0, err
	}
	e.shaders = append(e.shaders, program)
	return ShaderID(len(e.shaders) - 1), nil
}

// Shader returns the program registered under id.
func (e *DrawExecutor) Shader(id ShaderID) (*ShaderProgram, error) {
	if id < 0 || int(id) >= len(e.shaders) {
		return nil, fmt.Errorf("%w: id %d", ErrShaderNotFound, id)
	}
	return e.shaders[id], nil
}

// CurrentShader returns the selected program.
func (e *DrawExecutor) CurrentShader() *ShaderProgram {
	return e.shaders[e.current]
}

// SelectShader makes id the program Draw uses.
func (e *DrawExecutor) SelectShader(id ShaderID) error {
	if id < 0 || int(id) >= len(e.shaders) {
		return fmt.Errorf("%w: id %d", ErrShaderNotFound, id)
	}
	e.current = id
	return nil
}

// Close releases everything the executor created: an open frame's
// encoding and resources, the texture cache, all shader programs, the
// offscreen target, and the sampler. Standalone executors also destroy
// their device and instance. Close is idempotent.
func (e *DrawExecutor) Close() {
	if e.closed {
		return
	}
	e.closed = true

	if e.frame != nil {
		e.frame.pass.End()
		e.frame.encoder.DiscardEncoding()
		e.releaseFrame(e.frame)
		e.frame = nil
	}

	for _, gpuTex := range e.textures {
		gpuTex.destroy(e.device)
	}
	e.textures = nil

	for _, program := range e.shaders {
		program.Destroy()
	}
	e.shaders = nil

	if e.targetView != nil {
		e.device.DestroyTextureView(e.targetView)
		e.targetView = nil
	}
	if e.targetTex != nil {
		e.device.DestroyTexture(e.targetTex)
		e.targetTex = nil
	}
	if e.sampler != nil {
		e.device.DestroySampler(e.sampler)
		e.sampler = nil
	}

	if e.ownsDevice {
		if e.device != nil {
			e.device.Destroy()
		}
		if e.instance != nil {
			e.instance.Destroy()
		}
	}
}
