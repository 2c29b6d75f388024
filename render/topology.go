// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrUnsupportedTopology is returned when a shader is registered with a
// topology the GPU API cannot express.
var ErrUnsupportedTopology = errors.New("render: unsupported vertex topology")

// VertexTopology selects how a shader's vertex stream is assembled into
// primitives.
type VertexTopology uint8

const (
	// TopologyTriangleStrip draws connected triangles sharing an edge.
	// The sprite quad uses this: 4 vertices, 2 triangles.
	TopologyTriangleStrip VertexTopology = iota

	// TopologyTriangleList draws one triangle per 3 vertices.
	TopologyTriangleList

	// TopologyPointList draws one point per vertex.
	TopologyPointList

	// TopologyTriangleFan draws triangles sharing the first vertex.
	// Fans were dropped from WebGPU-class APIs; registering a shader
	// with this topology fails with ErrUnsupportedTopology.
	TopologyTriangleFan
)

// String returns the topology name.
func (t VertexTopology) String() string {
	switch t {
	case TopologyTriangleStrip:
		return "TriangleStrip"
	case TopologyTriangleList:
		return "TriangleList"
	case TopologyPointList:
		return "PointList"
	case TopologyTriangleFan:
		return "TriangleFan"
	default:
		return "Unknown"
	}
}

// primitive maps the topology onto the wgpu primitive topology enum.
func (t VertexTopology) primitive() (gputypes.PrimitiveTopology, error) {
	switch t {
	case TopologyTriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, nil
	case TopologyTriangleList:
		return gputypes.PrimitiveTopologyTriangleList, nil
	case TopologyPointList:
		return gputypes.PrimitiveTopologyPointList, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedTopology, t)
	}
}
