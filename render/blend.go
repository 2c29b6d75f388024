// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sprite"
)

// blendStateFor maps a sprite blend mode onto the fixed-function blend unit.
// Color and alpha channels use the same component in every mode:
//
//	Add       out = src + dst
//	Subtract  out = src - dst
//	Alpha     out = src*srcA + dst*(1-srcA)
//	Invert    out = src*(1-dst)
//
// Invert approximates a bitwise NOT of the destination: with a source of
// 1.0 on unorm targets, src*(1-dst) is exactly 1-dst per channel. Logic
// ops do not exist in the wgpu pipeline state, so this is the blend-unit
// rendition of the same effect.
func blendStateFor(mode sprite.BlendMode) gputypes.BlendState {
	var comp gputypes.BlendComponent
	switch mode {
	case sprite.BlendAdd:
		comp = gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		}
	case sprite.BlendSubtract:
		comp = gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationSubtract,
		}
	case sprite.BlendInvert:
		comp = gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOneMinusDst,
			DstFactor: gputypes.BlendFactorZero,
			Operation: gputypes.BlendOperationAdd,
		}
	case sprite.BlendAlpha:
		fallthrough
	default:
		comp = gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		}
	}
	return gputypes.BlendState{Color: comp, Alpha: comp}
}
