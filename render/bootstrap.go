// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sprite"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Standalone bootstrap errors.
var (
	// ErrNoBackend is returned when the Vulkan backend is not compiled in
	// or fails to register.
	ErrNoBackend = errors.New("render: vulkan backend not available")

	// ErrNoAdapter is returned when the instance exposes no GPU adapters.
	ErrNoAdapter = errors.New("render: no GPU adapters found")
)

// NewStandaloneExecutor creates a Vulkan device of its own and builds an
// executor on it. This is the headless path for tools and tests that run
// without a host application; windowed callers should share the host's
// device via NewDrawExecutorFromProvider instead.
//
// Adapter selection prefers discrete over integrated GPUs and falls back
// to the first adapter enumerated. The executor owns the device and
// instance; Close destroys them.
func NewStandaloneExecutor(cfg ExecutorConfig) (*DrawExecutor, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	exec, err := NewDrawExecutor(openDev.Device, openDev.Queue, cfg)
	if err != nil {
		openDev.Device.Destroy()
		instance.Destroy()
		return nil, err
	}
	exec.ownsDevice = true
	exec.instance = instance

	sprite.Logger().Info("render: GPU initialized (standalone)", "adapter", selected.Info.Name)
	return exec, nil
}
