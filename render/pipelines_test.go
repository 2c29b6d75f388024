// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// =============================================================================
// Test Helpers
// =============================================================================

// fakePipeline stands in for a compiled pipeline. The embedded interface
// satisfies hal.RenderPipeline; only instance identity matters in set tests.
type fakePipeline struct {
	hal.RenderPipeline
	id int
}

// pipelineCountingDevice counts DestroyRenderPipeline calls. The embedded
// interface satisfies hal.Device; Destroy never reaches any other method.
type pipelineCountingDevice struct {
	hal.Device
	destroyed int32
}

func (d *pipelineCountingDevice) DestroyRenderPipeline(_ hal.RenderPipeline) {
	atomic.AddInt32(&d.destroyed, 1)
}

// =============================================================================
// PipelineObjectSet Tests
// =============================================================================

func TestNewPipelineObjectSet(t *testing.T) {
	set := NewPipelineObjectSet()

	if set == nil {
		t.Fatal("expected non-nil set")
	}
	if set.Len() != 0 {
		t.Errorf("expected empty set, got len %d", set.Len())
	}

	hits, misses := set.Stats()
	if hits != 0 || misses != 0 {
		t.Errorf("expected zero stats, got hits=%d, misses=%d", hits, misses)
	}
}

func TestPipelineObjectSet_Insert(t *testing.T) {
	set := NewPipelineObjectSet()
	p := &fakePipeline{id: 1}

	if !set.Insert(sprite.BlendAlpha, p) {
		t.Fatal("expected first insert to succeed")
	}
	if !set.Contains(sprite.BlendAlpha) {
		t.Error("expected set to contain inserted mode")
	}
	if set.Len() != 1 {
		t.Errorf("expected len 1, got %d", set.Len())
	}
}

func TestPipelineObjectSet_InsertFirstWins(t *testing.T) {
	set := NewPipelineObjectSet()
	first := &fakePipeline{id: 1}
	second := &fakePipeline{id: 2}

	if !set.Insert(sprite.BlendAlpha, first) {
		t.Fatal("expected first insert to succeed")
	}
	if set.Insert(sprite.BlendAlpha, second) {
		t.Error("expected second insert for same mode to be rejected")
	}

	got, err := set.Get(sprite.BlendAlpha)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != first {
		t.Error("expected Get to return the first inserted pipeline")
	}
	if set.Len() != 1 {
		t.Errorf("expected len 1, got %d", set.Len())
	}
}

func TestPipelineObjectSet_Get(t *testing.T) {
	set := NewPipelineObjectSet()
	p := &fakePipeline{id: 7}
	set.Insert(sprite.BlendAdd, p)

	got, err := set.Get(sprite.BlendAdd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p {
		t.Error("expected same pipeline instance")
	}

	hits, misses := set.Stats()
	if hits != 1 {
		t.Errorf("expected 1 hit, got %d", hits)
	}
	if misses != 0 {
		t.Errorf("expected 0 misses, got %d", misses)
	}
}

func TestPipelineObjectSet_GetMiss(t *testing.T) {
	set := NewPipelineObjectSet()

	got, err := set.Get(sprite.BlendInvert)
	if !errors.Is(err, ErrPipelineNotFound) {
		t.Errorf("expected ErrPipelineNotFound, got %v", err)
	}
	if got != nil {
		t.Error("expected nil pipeline on miss")
	}
	if !strings.Contains(err.Error(), sprite.BlendInvert.String()) {
		t.Errorf("expected error to name the mode, got %q", err.Error())
	}

	hits, misses := set.Stats()
	if hits != 0 {
		t.Errorf("expected 0 hits, got %d", hits)
	}
	if misses != 1 {
		t.Errorf("expected 1 miss, got %d", misses)
	}
}

func TestPipelineObjectSet_ContainsSkipsStats(t *testing.T) {
	set := NewPipelineObjectSet()
	set.Insert(sprite.BlendAlpha, &fakePipeline{id: 1})

	if !set.Contains(sprite.BlendAlpha) {
		t.Error("expected Contains to report registered mode")
	}
	if set.Contains(sprite.BlendSubtract) {
		t.Error("expected Contains to report missing mode")
	}

	hits, misses := set.Stats()
	if hits != 0 || misses != 0 {
		t.Errorf("expected Contains to leave stats untouched, got hits=%d, misses=%d", hits, misses)
	}
}

func TestPipelineObjectSet_Len(t *testing.T) {
	set := NewPipelineObjectSet()
	for i, mode := range sprite.AllBlendModes() {
		set.Insert(mode, &fakePipeline{id: i})
	}
	if want := len(sprite.AllBlendModes()); set.Len() != want {
		t.Errorf("expected len %d, got %d", want, set.Len())
	}
}

func TestPipelineObjectSet_Destroy(t *testing.T) {
	set := NewPipelineObjectSet()
	set.Insert(sprite.BlendAlpha, &fakePipeline{id: 1})
	set.Insert(sprite.BlendAdd, &fakePipeline{id: 2})

	device := &pipelineCountingDevice{}
	set.Destroy(device)

	if got := atomic.LoadInt32(&device.destroyed); got != 2 {
		t.Errorf("expected 2 pipelines destroyed, got %d", got)
	}
	if set.Len() != 0 {
		t.Errorf("expected empty set after destroy, got len %d", set.Len())
	}
	if _, err := set.Get(sprite.BlendAlpha); !errors.Is(err, ErrPipelineNotFound) {
		t.Errorf("expected miss after destroy, got %v", err)
	}

	// Second destroy is a no-op.
	set.Destroy(device)
	if got := atomic.LoadInt32(&device.destroyed); got != 2 {
		t.Errorf("expected destroy count to stay at 2, got %d", got)
	}
}

func TestPipelineObjectSet_DestroyEmpty(t *testing.T) {
	set := NewPipelineObjectSet()
	device := &pipelineCountingDevice{}

	set.Destroy(device)

	if got := atomic.LoadInt32(&device.destroyed); got != 0 {
		t.Errorf("expected no destroy calls, got %d", got)
	}
}

// =============================================================================
// Concurrent Access Tests
// =============================================================================

func TestPipelineObjectSet_ConcurrentGet(t *testing.T) {
	set := NewPipelineObjectSet()
	set.Insert(sprite.BlendAlpha, &fakePipeline{id: 1})

	const goroutines = 100
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				pipeline, err := set.Get(sprite.BlendAlpha)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if pipeline == nil {
					t.Error("expected non-nil pipeline")
					return
				}
			}
		}()
	}

	wg.Wait()

	hits, misses := set.Stats()
	if want := uint64(goroutines * iterations); hits != want {
		t.Errorf("expected %d hits, got %d", want, hits)
	}
	if misses != 0 {
		t.Errorf("expected 0 misses, got %d", misses)
	}
	if set.Len() != 1 {
		t.Errorf("expected 1 pipeline, got %d", set.Len())
	}
}

func TestPipelineObjectSet_ConcurrentInsert(t *testing.T) {
	set := NewPipelineObjectSet()

	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)

	var stored int32
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			if set.Insert(sprite.BlendAlpha, &fakePipeline{id: i}) {
				atomic.AddInt32(&stored, 1)
			}
		}()
	}

	wg.Wait()

	// Exactly one goroutine wins the slot.
	if got := atomic.LoadInt32(&stored); got != 1 {
		t.Errorf("expected exactly 1 successful insert, got %d", got)
	}
	if set.Len() != 1 {
		t.Errorf("expected 1 pipeline, got %d", set.Len())
	}
}
