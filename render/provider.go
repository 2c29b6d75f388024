// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Provider errors.
var (
	// ErrNilProvider is returned when a nil DeviceHandle is passed.
	ErrNilProvider = errors.New("render: nil device provider")

	// ErrNoHALAccess is returned when a provider does not expose the raw
	// HAL device and queue.
	ErrNoHALAccess = errors.New("render: provider does not expose HAL types")
)

// DeviceHandle provides GPU device access from the host application.
//
// This is the integration point between sprite and GPU frameworks like
// gogpu: the host implements DeviceHandle (gogpu.App does, via
// GPUContextProvider) and hands it to NewDrawExecutorFromProvider, so
// sprite rendering shares the host's device instead of creating its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, giving the
// interface a sprite-local name while staying compatible with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NewDrawExecutorFromProvider creates an executor on a host-provided
// device. The provider must additionally expose the raw HAL handles via
// HalDevice() any and HalQueue() any, as gogpu's GPUContextProvider does;
// providers without HAL access (NullDeviceHandle included) are rejected
// with ErrNoHALAccess.
//
// A zero cfg.TargetFormat inherits the provider's surface format, so
// pipelines match the window surface without extra configuration.
func NewDrawExecutorFromProvider(p DeviceHandle, cfg ExecutorConfig) (*DrawExecutor, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := p.(halProvider)
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALAccess)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALAccess)
	}

	if cfg.TargetFormat == gputypes.TextureFormatUndefined {
		cfg.TargetFormat = p.SurfaceFormat()
	}
	return NewDrawExecutor(device, queue, cfg)
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Useful as a placeholder where no GPU is available; executors cannot be
// built from it.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
