// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestVertexTopologyString(t *testing.T) {
	tests := []struct {
		topology VertexTopology
		want     string
	}{
		{TopologyTriangleStrip, "TriangleStrip"},
		{TopologyTriangleList, "TriangleList"},
		{TopologyPointList, "PointList"},
		{TopologyTriangleFan, "TriangleFan"},
		{VertexTopology(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.topology.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestVertexTopologyPrimitive(t *testing.T) {
	tests := []struct {
		topology VertexTopology
		want     gputypes.PrimitiveTopology
	}{
		{TopologyTriangleStrip, gputypes.PrimitiveTopologyTriangleStrip},
		{TopologyTriangleList, gputypes.PrimitiveTopologyTriangleList},
		{TopologyPointList, gputypes.PrimitiveTopologyPointList},
	}

	for _, tt := range tests {
		got, err := tt.topology.primitive()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.topology, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: primitive() = %v, want %v", tt.topology, got, tt.want)
		}
	}
}

func TestVertexTopologyPrimitiveFanUnsupported(t *testing.T) {
	_, err := TopologyTriangleFan.primitive()
	if !errors.Is(err, ErrUnsupportedTopology) {
		t.Errorf("expected ErrUnsupportedTopology, got %v", err)
	}
}

func TestVertexTopologyZeroValueIsStrip(t *testing.T) {
	// The quad renderer relies on the zero value being a strip.
	var topology VertexTopology
	if topology != TopologyTriangleStrip {
		t.Errorf("zero topology = %v, want TriangleStrip", topology)
	}
}
