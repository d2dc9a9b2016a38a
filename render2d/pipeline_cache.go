// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d

import (
	"fmt"

	"github.com/novagfx/gfx/gfx"
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// pipelineKey is the per-draw cache key from §4.7: "(blend mode, vertex
// shader id, fragment shader id, primitive type, attachment format)".
type pipelineKey struct {
	blend     BlendMode
	vs        VertexShaderID
	fs        FragmentShaderID
	primitive types.PrimitiveType
	format    types.TextureFormat
}

// PipelineCache returns an existing graphics pipeline for a draw's key or
// constructs one (§4.7 "pipeline selection"), keyed in a map by
// pipelineKey. The back-end itself keeps no pipeline cache; each miss
// here builds a new native pipeline.
type PipelineCache struct {
	device  *gfx.Device
	shaders *shaderSet
	entries map[pipelineKey]*gfx.GraphicsPipeline
}

func newPipelineCache(d *gfx.Device, shaders *shaderSet) *PipelineCache {
	return &PipelineCache{device: d, shaders: shaders, entries: make(map[pipelineKey]*gfx.GraphicsPipeline)}
}

// Len reports the number of distinct pipelines built so far (S2: "expected
// the pipeline-cache size grows by exactly one").
func (c *PipelineCache) Len() int { return len(c.entries) }

func (c *PipelineCache) get(key pipelineKey) (*gfx.GraphicsPipeline, error) {
	if p, ok := c.entries[key]; ok {
		return p, nil
	}

	vs := c.shaders.vertex[key.vs]
	fs := c.shaders.fragment[key.fs]

	desc := &types.GraphicsPipelineDescriptor{
		Label:       fmt.Sprintf("render2d-pipeline-%d", len(c.entries)),
		VertexInput: vertexInputFor(key.vs),
		Rasterizer: types.RasterizerState{
			FillMode:  types.FillModeFill,
			CullMode:  types.CullModeNone,
			FrontFace: types.FrontFaceCCW,
		},
		PrimitiveType: key.primitive,
		SampleCount:   types.SampleCount1,
		ColorTargets:  []types.ColorTargetBlendState{blendState(key.blend, key.format)},
		BlendConstants: types.Color{R: 1, G: 1, B: 1, A: 1},
	}

	p, err := c.device.CreateGraphicsPipeline(desc, vs, fs)
	if err != nil {
		return nil, fmt.Errorf("render2d: build pipeline for %+v: %w", key, err)
	}
	c.entries[key] = p
	hal.Logger().Debug("render2d: pipeline cache miss, built new pipeline",
		"blend", key.blend, "primitive", key.primitive, "format", key.format, "cache_size", len(c.entries))
	return p, nil
}

func (c *PipelineCache) release() {
	for _, p := range c.entries {
		c.device.ReleaseGraphicsPipeline(p)
	}
	c.entries = nil
}

// blendState translates a BlendMode preset into the fixed-function blend
// configuration for one color target (§4.4 "Graphics PSO assembly"). The
// factor choices mirror the SDL_gpu blend-mode conventions this renderer's
// BlendMode enum is named after: NONE disables blending; BLEND is
// straight alpha-over; ADD is additive; MOD modulates the destination by
// the source color.
func blendState(mode BlendMode, format types.TextureFormat) types.ColorTargetBlendState {
	s := types.ColorTargetBlendState{
		WriteMask: types.ColorWriteMaskAll,
		Format:    format,
	}
	switch mode {
	case BlendNone:
		s.BlendEnable = false
	case BlendBlend:
		s.BlendEnable = true
		s.SrcColorBlendFactor = types.BlendFactorSrcAlpha
		s.DstColorBlendFactor = types.BlendFactorOneMinusSrcAlpha
		s.ColorBlendOp = types.BlendOpAdd
		s.SrcAlphaBlendFactor = types.BlendFactorOne
		s.DstAlphaBlendFactor = types.BlendFactorOneMinusSrcAlpha
		s.AlphaBlendOp = types.BlendOpAdd
	case BlendAdd:
		s.BlendEnable = true
		s.SrcColorBlendFactor = types.BlendFactorSrcAlpha
		s.DstColorBlendFactor = types.BlendFactorOne
		s.ColorBlendOp = types.BlendOpAdd
		s.SrcAlphaBlendFactor = types.BlendFactorZero
		s.DstAlphaBlendFactor = types.BlendFactorOne
		s.AlphaBlendOp = types.BlendOpAdd
	case BlendMod:
		s.BlendEnable = true
		s.SrcColorBlendFactor = types.BlendFactorDstColor
		s.DstColorBlendFactor = types.BlendFactorZero
		s.ColorBlendOp = types.BlendOpAdd
		s.SrcAlphaBlendFactor = types.BlendFactorZero
		s.DstAlphaBlendFactor = types.BlendFactorOne
		s.AlphaBlendOp = types.BlendOpAdd
	}
	return s
}
