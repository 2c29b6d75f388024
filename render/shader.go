// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// Embedded WGSL shader sources.

//go:embed shaders/sprite.wgsl
var spriteShaderSource string

// Byte strides of the two vertex slots. Slot 0 is sprite.Vertex
// (position + uv + color, 9 float32s), slot 1 is sprite.InstanceData
// (source rect + tint + 4 matrix columns, 24 float32s).
const (
	quadVertexStride = 36
	instanceStride   = 96
)

// spriteVertexLayouts describes the two vertex slots every sprite shader
// consumes: the shared quad per vertex and the instance block per sprite.
func spriteVertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: quadVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // uv
				{Format: gputypes.VertexFormatFloat32x4, Offset: 20, ShaderLocation: 2}, // color
			},
		},
		{
			ArrayStride: instanceStride,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 3},  // source rect
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 4}, // tint
				{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 5}, // transform col 0
				{Format: gputypes.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 6}, // transform col 1
				{Format: gputypes.VertexFormatFloat32x4, Offset: 64, ShaderLocation: 7}, // transform col 2
				{Format: gputypes.VertexFormatFloat32x4, Offset: 80, ShaderLocation: 8}, // transform col 3
			},
		},
	}
}

// ShaderConfig describes a shader program to register with an executor.
type ShaderConfig struct {
	// Label names the shader in debug labels and error messages.
	// Default: "sprite"
	Label string

	// Source is the WGSL source. Entry points must be named vs_main and
	// fs_main and the vertex stage must consume the sprite vertex layouts.
	// Empty selects the built-in sprite shader.
	Source string

	// Topology assembles the vertex stream into primitives. The zero value
	// is TriangleStrip, which the sprite quad uses.
	Topology VertexTopology

	// InitialMode is the blend mode compiled at registration. Further
	// modes compile lazily on first draw, or eagerly via Warmup.
	InitialMode sprite.BlendMode

	// Format is the color target format.
	// Zero means the executor's target format (BGRA8Unorm standalone).
	Format gputypes.TextureFormat

	// SampleCount is the MSAA sample count.
	// Zero means the executor's sample count (1 standalone).
	SampleCount uint32
}

// DefaultShaderConfig returns the built-in sprite shader configuration:
// unit-quad triangle strip with alpha blending.
func DefaultShaderConfig() ShaderConfig {
	return ShaderConfig{
		Label:       "sprite",
		Topology:    TopologyTriangleStrip,
		InitialMode: sprite.BlendAlpha,
	}
}

// ShaderProgram owns one compiled shader module and a set of render
// pipelines, one per blend mode it has been asked to draw with. Changing
// the blend mode is a map lookup at draw time, never a pipeline build.
//
// The current blend mode is program state: SetBlendMode only switches the
// selection, and resolving an unregistered mode fails with
// ErrPipelineNotFound. Register (or the executor's lazy registration on
// draw) is what builds pipelines.
type ShaderProgram struct {
	device      hal.Device
	label       string
	source      string
	topology    gputypes.PrimitiveTopology
	format      gputypes.TextureFormat
	sampleCount uint32

	module     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipelines  *PipelineObjectSet

	mode sprite.BlendMode
}

// NewShaderProgram compiles cfg.Source and builds the pipeline for
// cfg.InitialMode. The returned program's current blend mode is
// cfg.InitialMode.
func NewShaderProgram(device hal.Device, cfg ShaderConfig) (*ShaderProgram, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if cfg.Label == "" {
		cfg.Label = "sprite"
	}
	if cfg.Source == "" {
		cfg.Source = spriteShaderSource
	}
	if cfg.Format == gputypes.TextureFormatUndefined {
		cfg.Format = gputypes.TextureFormatBGRA8Unorm
	}
	if cfg.SampleCount == 0 {
		cfg.SampleCount = 1
	}

	topology, err := cfg.Topology.primitive()
	if err != nil {
		return nil, err
	}

	p := &ShaderProgram{
		device:      device,
		label:       cfg.Label,
		source:      cfg.Source,
		topology:    topology,
		format:      cfg.Format,
		sampleCount: cfg.SampleCount,
		pipelines:   NewPipelineObjectSet(),
		mode:        cfg.InitialMode,
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  cfg.Label + "_shader",
		Source: hal.ShaderSource{WGSL: cfg.Source},
	})
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", cfg.Label, err)
	}
	p.module = module

	// Bind group layout:
	//   Binding 0: FrameUniforms (uniform buffer, vertex+fragment)
	//   Binding 1: sprite texture (texture_2d, fragment)
	//   Binding 2: sampler (fragment)
	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: cfg.Label + "_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		p.Destroy()
		return nil, fmt.Errorf("create %s bind group layout: %w", cfg.Label, err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            cfg.Label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		p.Destroy()
		return nil, fmt.Errorf("create %s pipeline layout: %w", cfg.Label, err)
	}
	p.pipeLayout = pipeLayout

	if err := p.Register(cfg.InitialMode); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

// Label returns the shader's debug label.
func (p *ShaderProgram) Label() string { return p.label }

// BlendMode returns the current blend mode.
func (p *ShaderProgram) BlendMode() sprite.BlendMode { return p.mode }

// SetBlendMode switches the current blend mode. It never builds a
// pipeline: drawing afterwards either finds a registered pipeline for the
// mode or registers one lazily.
func (p *ShaderProgram) SetBlendMode(mode sprite.BlendMode) { p.mode = mode }

// Pipeline resolves the pipeline for the current blend mode.
// An unregistered mode fails with ErrPipelineNotFound.
func (p *ShaderProgram) Pipeline() (hal.RenderPipeline, error) {
	return p.pipelines.Get(p.mode)
}

// Layout returns the pipeline layout, subject to the same precondition as
// Pipeline: the current blend mode must be registered.
func (p *ShaderProgram) Layout() (hal.PipelineLayout, error) {
	if !p.pipelines.Contains(p.mode) {
		return nil, fmt.Errorf("%w: %s", ErrPipelineNotFound, p.mode)
	}
	return p.pipeLayout, nil
}

// BindGroupLayout returns the layout bind groups for this shader are
// created with (group 0: uniform, texture, sampler).
func (p *ShaderProgram) BindGroupLayout() hal.BindGroupLayout { return p.bindLayout }

// Pipelines returns the underlying pipeline set.
func (p *ShaderProgram) Pipelines() *PipelineObjectSet { return p.pipelines }

// Register builds the pipeline for mode if it is not registered yet.
// Pipelines build once and are never replaced or evicted.
func (p *ShaderProgram) Register(mode sprite.BlendMode) error {
	if p.pipelines.Contains(mode) {
		return nil
	}
	pipeline, err := p.buildPipeline(mode)
	if err != nil {
		return err
	}
	if !p.pipelines.Insert(mode, pipeline) {
		// Lost a registration race; first insert wins.
		p.device.DestroyRenderPipeline(pipeline)
		return nil
	}
	sprite.Logger().Debug("render: pipeline built",
		"shader", p.label, "mode", mode.String())
	return nil
}

// Warmup pre-builds pipelines for the given modes, avoiding first-draw
// hitches. With no arguments it builds every blend mode.
func (p *ShaderProgram) Warmup(modes ...sprite.BlendMode) error {
	if len(modes) == 0 {
		modes = sprite.AllBlendModes()
	}
	for _, mode := range modes {
		if err := p.Register(mode); err != nil {
			return err
		}
	}
	return nil
}

// Draw records one instanced draw call: pipeline for the current blend
// mode, bind group 0, both vertex slots, then a single draw. Zero
// instances binds everything and skips the draw without error.
func (p *ShaderProgram) Draw(rp hal.RenderPassEncoder, res *FrameResources) error {
	pipeline, err := p.Pipeline()
	if err != nil {
		return err
	}
	rp.SetPipeline(pipeline)
	rp.SetBindGroup(0, res.BindGroup, nil)
	rp.SetVertexBuffer(0, res.VertexBuffer, 0)
	rp.SetVertexBuffer(1, res.InstanceBuffer, 0)
	if res.InstanceCount == 0 {
		return nil
	}
	rp.Draw(res.VertexCount, res.InstanceCount, 0, 0)
	return nil
}

// Destroy releases all GPU resources held by the program, in reverse
// creation order. Safe to call multiple times or on a partially
// constructed program.
func (p *ShaderProgram) Destroy() {
	p.pipelines.Destroy(p.device)
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.module != nil {
		p.device.DestroyShaderModule(p.module)
		p.module = nil
	}
}

// buildPipeline compiles the fixed-function state for one blend mode.
func (p *ShaderProgram) buildPipeline(mode sprite.BlendMode) (hal.RenderPipeline, error) {
	blend := blendStateFor(mode)
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("%s_pipeline_%s", p.label, mode),
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.module,
			EntryPoint: "vs_main",
			Buffers:    spriteVertexLayouts(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.module,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: p.topology,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: p.sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s pipeline for %s: %w", p.label, mode, err)
	}
	return pipeline, nil
}
