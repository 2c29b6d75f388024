// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sprite"
)

// mockContextDevice implements gpucontext.Device for testing.
type mockContextDevice struct{}

func (m *mockContextDevice) Poll(wait bool) {}
func (m *mockContextDevice) Destroy()       {}

// mockProvider implements DeviceHandle plus the HalDevice/HalQueue
// accessors gogpu's GPUContextProvider exposes.
type mockProvider struct {
	halDevice any
	halQueue  any
	format    gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return &mockContextDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return nil }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }
func (m *mockProvider) HalDevice() any                        { return m.halDevice }
func (m *mockProvider) HalQueue() any                         { return m.halQueue }

func TestNewDrawExecutorFromProviderNil(t *testing.T) {
	_, err := NewDrawExecutorFromProvider(nil, ExecutorConfig{})
	if !errors.Is(err, ErrNilProvider) {
		t.Errorf("expected ErrNilProvider, got %v", err)
	}
}

func TestNewDrawExecutorFromProviderNoHALAccess(t *testing.T) {
	// NullDeviceHandle satisfies DeviceHandle but exposes no HAL handles.
	_, err := NewDrawExecutorFromProvider(NullDeviceHandle{}, ExecutorConfig{})
	if !errors.Is(err, ErrNoHALAccess) {
		t.Errorf("expected ErrNoHALAccess, got %v", err)
	}
}

func TestNewDrawExecutorFromProviderBadDevice(t *testing.T) {
	provider := &mockProvider{
		halDevice: "not a device",
		halQueue:  "not a queue",
		format:    gputypes.TextureFormatBGRA8Unorm,
	}
	_, err := NewDrawExecutorFromProvider(provider, ExecutorConfig{})
	if !errors.Is(err, ErrNoHALAccess) {
		t.Errorf("expected ErrNoHALAccess, got %v", err)
	}
}

func TestNewDrawExecutorFromProviderNilHALHandles(t *testing.T) {
	provider := &mockProvider{format: gputypes.TextureFormatBGRA8Unorm}
	_, err := NewDrawExecutorFromProvider(provider, ExecutorConfig{})
	if !errors.Is(err, ErrNoHALAccess) {
		t.Errorf("expected ErrNoHALAccess, got %v", err)
	}
}

func TestNewDrawExecutorFromProviderBadQueue(t *testing.T) {
	device, _, cleanup := createNoopDevice(t)
	defer cleanup()

	provider := &mockProvider{
		halDevice: device,
		halQueue:  42,
		format:    gputypes.TextureFormatBGRA8Unorm,
	}
	_, err := NewDrawExecutorFromProvider(provider, ExecutorConfig{})
	if !errors.Is(err, ErrNoHALAccess) {
		t.Errorf("expected ErrNoHALAccess, got %v", err)
	}
}

func TestNewDrawExecutorFromProvider(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	provider := &mockProvider{
		halDevice: device,
		halQueue:  queue,
		format:    gputypes.TextureFormatBGRA8Unorm,
	}
	exec, err := NewDrawExecutorFromProvider(provider, ExecutorConfig{
		TargetWidth:  64,
		TargetHeight: 64,
	})
	if err != nil {
		t.Fatalf("NewDrawExecutorFromProvider failed: %v", err)
	}
	defer exec.Close()

	// The provider-built executor runs the full frame protocol.
	if err := exec.BeginFrame(sprite.Black); err != nil {
		t.Fatalf("BeginFrame failed: %v", err)
	}
	if err := exec.Draw(testBatch(t, 2), *sprite.NewDrawInfo()); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if err := exec.Present(); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
}

func TestNewDrawExecutorFromProviderInheritsSurfaceFormat(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	provider := &mockProvider{
		halDevice: device,
		halQueue:  queue,
		format:    gputypes.TextureFormatRGBA8Unorm,
	}

	exec, err := NewDrawExecutorFromProvider(provider, ExecutorConfig{
		TargetWidth:  64,
		TargetHeight: 64,
	})
	if err != nil {
		t.Fatalf("NewDrawExecutorFromProvider failed: %v", err)
	}
	defer exec.Close()

	if exec.cfg.TargetFormat != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("expected surface format inherited, got %v", exec.cfg.TargetFormat)
	}
}

func TestNewDrawExecutorFromProviderExplicitFormatWins(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	provider := &mockProvider{
		halDevice: device,
		halQueue:  queue,
		format:    gputypes.TextureFormatRGBA8Unorm,
	}

	exec, err := NewDrawExecutorFromProvider(provider, ExecutorConfig{
		TargetWidth:  64,
		TargetHeight: 64,
		TargetFormat: gputypes.TextureFormatBGRA8Unorm,
	})
	if err != nil {
		t.Fatalf("NewDrawExecutorFromProvider failed: %v", err)
	}
	defer exec.Close()

	if exec.cfg.TargetFormat != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("expected explicit format kept, got %v", exec.cfg.TargetFormat)
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var handle NullDeviceHandle

	if handle.Device() != nil {
		t.Error("expected nil device")
	}
	if handle.Queue() != nil {
		t.Error("expected nil queue")
	}
	if handle.Adapter() != nil {
		t.Error("expected nil adapter")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Errorf("expected undefined surface format, got %v", handle.SurfaceFormat())
	}
}
