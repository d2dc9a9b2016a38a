// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// GraphicsPipeline is a typed, opaque handle to a compiled graphics
// pipeline (§4.4 "Graphics PSO assembly").
//
// The per-stage resource counts are copied from the vertex and fragment
// shader descriptors used to build it (testable property 3): a render pass
// validating a bind call can check against these without reaching into the
// back-end.
type GraphicsPipeline struct {
	device                 *Device
	native                 hal.GraphicsPipeline
	label                  string
	primitiveType          types.PrimitiveType
	blendConstants         types.Color
	stencilReference       uint8
	vertexUniformBuffers   uint32
	vertexSamplers         uint32
	vertexStorageTextures  uint32
	vertexStorageBuffers   uint32
	fragmentUniformBuffers uint32
	fragmentSamplers       uint32
	fragmentStorageTextures uint32
	fragmentStorageBuffers uint32
	released               bool
}

// CreateGraphicsPipeline assembles a graphics pipeline from vs and fs
// (§4.4). Both shaders must already have been created with
// ShaderStageVertex / ShaderStageFragment respectively.
func (d *Device) CreateGraphicsPipeline(desc *types.GraphicsPipelineDescriptor, vs, fs *Shader) (*GraphicsPipeline, error) {
	if verr := requireNonNil(desc == nil, "graphics pipeline descriptor"); verr != nil {
		return nil, verr
	}
	if verr := requireNonNil(vs == nil, "vertex shader"); verr != nil {
		return nil, verr
	}
	if verr := requireNonNil(fs == nil, "fragment shader"); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(vs.desc.Stage == types.ShaderStageVertex, true, "graphics pipeline %q: vs is not a vertex shader", desc.Label); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(fs.desc.Stage == types.ShaderStageFragment, true, "graphics pipeline %q: fs is not a fragment shader", desc.Label); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(len(desc.ColorTargets) <= types.MaxColorTargetBindings, false, "graphics pipeline %q: too many color targets", desc.Label); verr != nil {
		return nil, verr
	}
	native, err := d.hal.CreateGraphicsPipeline(desc, vs.native, fs.native)
	if err != nil {
		return nil, err
	}
	return &GraphicsPipeline{
		device:                  d,
		native:                  native,
		label:                   desc.Label,
		primitiveType:           desc.PrimitiveType,
		blendConstants:          desc.BlendConstants,
		stencilReference:        desc.StencilReference,
		vertexUniformBuffers:    vs.desc.UniformBufferCount,
		vertexSamplers:          vs.desc.SamplerCount,
		vertexStorageTextures:   vs.desc.StorageTextureCount,
		vertexStorageBuffers:    vs.desc.StorageBufferCount,
		fragmentUniformBuffers:  fs.desc.UniformBufferCount,
		fragmentSamplers:        fs.desc.SamplerCount,
		fragmentStorageTextures: fs.desc.StorageTextureCount,
		fragmentStorageBuffers:  fs.desc.StorageBufferCount,
	}, nil
}

// ReleaseGraphicsPipeline releases p. Calling it more than once is a no-op.
func (d *Device) ReleaseGraphicsPipeline(p *GraphicsPipeline) {
	if p == nil || p.released {
		return
	}
	p.released = true
	d.hal.ReleaseGraphicsPipeline(p.native)
}

// ComputePipeline is a typed, opaque handle to a compiled compute pipeline.
type ComputePipeline struct {
	device                   *Device
	native                   hal.ComputePipeline
	label                    string
	uniformBuffers           uint32
	readOnlyStorageTextures  uint32
	readOnlyStorageBuffers   uint32
	readWriteStorageTextures uint32
	readWriteStorageBuffers  uint32
	released                 bool
}

// CreateComputePipeline assembles a compute pipeline from cs.
func (d *Device) CreateComputePipeline(desc *types.ComputePipelineDescriptor, cs *Shader) (*ComputePipeline, error) {
	if verr := requireNonNil(desc == nil, "compute pipeline descriptor"); verr != nil {
		return nil, verr
	}
	if verr := requireNonNil(cs == nil, "compute shader"); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(cs.desc.Stage == types.ShaderStageCompute, true, "compute pipeline %q: cs is not a compute shader", desc.Label); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(desc.ReadWriteStorageTextures <= types.MaxComputeWriteTextures, false, "compute pipeline %q: too many read-write storage textures", desc.Label); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(desc.ReadWriteStorageBuffers <= types.MaxComputeWriteBuffers, false, "compute pipeline %q: too many read-write storage buffers", desc.Label); verr != nil {
		return nil, verr
	}
	native, err := d.hal.CreateComputePipeline(desc, cs.native)
	if err != nil {
		return nil, err
	}
	return &ComputePipeline{
		device:                   d,
		native:                   native,
		label:                    desc.Label,
		uniformBuffers:           desc.UniformBuffers,
		readOnlyStorageTextures:  desc.ReadOnlyStorageTextures,
		readOnlyStorageBuffers:   desc.ReadOnlyStorageBuffers,
		readWriteStorageTextures: desc.ReadWriteStorageTextures,
		readWriteStorageBuffers:  desc.ReadWriteStorageBuffers,
	}, nil
}

// ReleaseComputePipeline releases p. Calling it more than once is a no-op.
func (d *Device) ReleaseComputePipeline(p *ComputePipeline) {
	if p == nil || p.released {
		return
	}
	p.released = true
	d.hal.ReleaseComputePipeline(p.native)
}
