// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// ErrPipelineNotFound is returned when the current blend mode has no
// registered pipeline. Selecting a mode never builds anything, so drawing
// with an unregistered mode is a precondition violation, not a device
// fault.
var ErrPipelineNotFound = errors.New("render: no pipeline registered for blend mode")

// initialPipelineCapacity sizes the mode map up front. Four built-in blend
// modes exist today; the headroom is for shader variants registered at
// runtime.
const initialPipelineCapacity = 16

// PipelineObjectSet stores one compiled render pipeline per blend mode.
//
// Pipelines are registered once and never replaced: the first Insert for a
// mode wins and later inserts for the same mode are rejected. There is no
// eviction; Destroy releases everything when the owning shader is torn
// down.
//
// The set is safe for concurrent use. Lookups take a read lock and the
// hit/miss counters are atomic; the frame protocol itself is
// single-threaded, but Warmup may race registration from another goroutine.
type PipelineObjectSet struct {
	// mu protects the pipelines map.
	mu sync.RWMutex

	// pipelines maps blend mode to its compiled pipeline.
	pipelines map[sprite.BlendMode]hal.RenderPipeline

	// hits counts successful lookups (atomic for lock-free reads).
	hits uint64

	// misses counts failed lookups (atomic for lock-free reads).
	misses uint64
}

// NewPipelineObjectSet creates an empty pipeline set.
func NewPipelineObjectSet() *PipelineObjectSet {
	return &PipelineObjectSet{
		pipelines: make(map[sprite.BlendMode]hal.RenderPipeline, initialPipelineCapacity),
	}
}

// Insert registers a pipeline for mode. The first insert for a mode wins;
// Insert reports whether the pipeline was stored. On false the caller
// still owns (and should destroy) the rejected pipeline.
func (s *PipelineObjectSet) Insert(mode sprite.BlendMode, pipeline hal.RenderPipeline) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pipelines[mode]; ok {
		return false
	}
	s.pipelines[mode] = pipeline
	return true
}

// Get returns the pipeline registered for mode.
// A miss fails with ErrPipelineNotFound wrapped with the mode name.
func (s *PipelineObjectSet) Get(mode sprite.BlendMode) (hal.RenderPipeline, error) {
	s.mu.RLock()
	pipeline, ok := s.pipelines[mode]
	s.mu.RUnlock()

	if !ok {
		atomic.AddUint64(&s.misses, 1)
		return nil, fmt.Errorf("%w: %s", ErrPipelineNotFound, mode)
	}
	atomic.AddUint64(&s.hits, 1)
	return pipeline, nil
}

// Contains reports whether mode has a registered pipeline. Unlike Get it
// does not touch the hit/miss counters.
func (s *PipelineObjectSet) Contains(mode sprite.BlendMode) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pipelines[mode]
	return ok
}

// Len returns the number of registered pipelines.
func (s *PipelineObjectSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pipelines)
}

// Stats returns lookup statistics.
// These values are read atomically and may not be perfectly synchronized.
func (s *PipelineObjectSet) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&s.hits), atomic.LoadUint64(&s.misses)
}

// Destroy releases every registered pipeline on device and empties the set.
// Safe to call multiple times.
func (s *PipelineObjectSet) Destroy(device hal.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for mode, pipeline := range s.pipelines {
		if pipeline != nil {
			device.DestroyRenderPipeline(pipeline)
		}
		delete(s.pipelines, mode)
	}
}
