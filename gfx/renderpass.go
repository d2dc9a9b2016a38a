// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// Viewport and Rect2D carry no opaque handle fields, so they mirror the
// hal-layer shapes directly instead of duplicating them.
type Viewport = hal.Viewport
type Rect2D = hal.Rect2D

// ColorAttachment binds one render-pass color target (§4.5).
type ColorAttachment struct {
	Texture    *Texture
	MipLevel   uint32
	Layer      uint32
	LoadOp     types.LoadOp
	StoreOp    types.StoreOp
	ClearColor types.Color
}

// DepthStencilAttachment binds the render-pass depth/stencil target.
type DepthStencilAttachment struct {
	Texture        *Texture
	LoadOp         types.LoadOp
	StoreOp        types.StoreOp
	StencilLoadOp  types.LoadOp
	StencilStoreOp types.StoreOp
	ClearDepth     float32
	ClearStencil   uint8
}

// BufferBinding pairs a vertex or index buffer with a byte offset.
type BufferBinding struct {
	Buffer *Buffer
	Offset uint32
}

// BeginRenderPass opens a render pass (§4.3, §4.5). It is permitted only
// from Recording with no other pass active.
func (cb *CommandBuffer) BeginRenderPass(color []ColorAttachment, depthStencil *DepthStencilAttachment) error {
	if verr := requireNonNil(len(color) == 0 && depthStencil == nil, "color attachments (or a depth-stencil attachment)"); verr != nil {
		return verr
	}
	if verr := cb.invariant(cb.state == cbRecording, true, "BeginRenderPass: command buffer is %s, must be recording with no pass active", cb.state); verr != nil {
		return verr
	}
	for i := range color {
		if verr := cb.invariant(color[i].Texture.desc.Usage.Has(types.TextureUsageColorTarget), true, "BeginRenderPass: attachment %d was not created with TextureUsageColorTarget", i); verr != nil {
			return verr
		}
	}
	halColor := make([]hal.ColorAttachment, len(color))
	for i, a := range color {
		halColor[i] = hal.ColorAttachment{
			Texture:    a.Texture.native,
			MipLevel:   a.MipLevel,
			Layer:      a.Layer,
			LoadOp:     a.LoadOp,
			StoreOp:    a.StoreOp,
			ClearColor: a.ClearColor,
		}
	}
	var halDepth *hal.DepthStencilAttachment
	if depthStencil != nil {
		if verr := cb.invariant(depthStencil.Texture.desc.Usage.Has(types.TextureUsageDepthStencilTarget), true, "BeginRenderPass: depth-stencil attachment was not created with TextureUsageDepthStencilTarget"); verr != nil {
			return verr
		}
		halDepth = &hal.DepthStencilAttachment{
			Texture:        depthStencil.Texture.native,
			LoadOp:         depthStencil.LoadOp,
			StoreOp:        depthStencil.StoreOp,
			StencilLoadOp:  depthStencil.StencilLoadOp,
			StencilStoreOp: depthStencil.StencilStoreOp,
			ClearDepth:     depthStencil.ClearDepth,
			ClearStencil:   depthStencil.ClearStencil,
		}
	}
	if err := cb.device.hal.BeginRenderPass(cb.native, halColor, halDepth); err != nil {
		return err
	}
	cb.state = cbRenderPassActive
	cb.graphicsBound = false
	return nil
}

// EndRenderPass closes the active render pass (§4.3, §4.5: each color
// attachment transitions back to its resting state).
func (cb *CommandBuffer) EndRenderPass() error {
	if verr := cb.invariant(cb.state == cbRenderPassActive, true, "EndRenderPass: command buffer is %s, no render pass is active", cb.state); verr != nil {
		return verr
	}
	cb.device.hal.EndRenderPass(cb.native)
	cb.state = cbRecording
	cb.graphicsBound = false
	return nil
}

// SetViewport sets the active render pass's viewport.
func (cb *CommandBuffer) SetViewport(vp Viewport) {
	if verr := cb.invariant(cb.state == cbRenderPassActive, true, "SetViewport: no render pass active"); verr != nil {
		return
	}
	cb.device.hal.SetViewport(cb.native, vp)
}

// SetScissor sets the active render pass's scissor rectangle.
func (cb *CommandBuffer) SetScissor(rect Rect2D) {
	if verr := cb.invariant(cb.state == cbRenderPassActive, true, "SetScissor: no render pass active"); verr != nil {
		return
	}
	cb.device.hal.SetScissor(cb.native, rect)
}

// BindGraphicsPipeline binds p for subsequent draws in the active render
// pass.
func (cb *CommandBuffer) BindGraphicsPipeline(p *GraphicsPipeline) {
	if verr := cb.invariant(cb.state == cbRenderPassActive, true, "BindGraphicsPipeline: no render pass active"); verr != nil {
		return
	}
	if verr := requireNonNil(p == nil, "graphics pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindGraphicsPipeline(cb.native, p.native)
	cb.graphicsBound = true
}

// BindVertexBuffers binds bindings starting at firstSlot.
func (cb *CommandBuffer) BindVertexBuffers(firstSlot uint32, bindings []BufferBinding) {
	if verr := cb.invariant(cb.state == cbRenderPassActive, true, "BindVertexBuffers: no render pass active"); verr != nil {
		return
	}
	cb.device.hal.BindVertexBuffers(cb.native, firstSlot, toHALBufferBindings(bindings))
}

// BindIndexBuffer binds the index buffer used by indexed draws.
func (cb *CommandBuffer) BindIndexBuffer(binding BufferBinding, elementSize types.IndexElementSize) {
	if verr := cb.invariant(cb.state == cbRenderPassActive, true, "BindIndexBuffer: no render pass active"); verr != nil {
		return
	}
	cb.device.hal.BindIndexBuffer(cb.native, hal.BufferBinding{Buffer: binding.Buffer.native, Offset: binding.Offset}, elementSize)
}

// BindVertexSamplers binds sampler/texture pairs for the vertex stage.
func (cb *CommandBuffer) BindVertexSamplers(first uint32, samplers []*Sampler, textures []*Texture) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "BindVertexSamplers: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindVertexSamplers(cb.native, first, toHALSamplers(samplers), toHALTextures(textures))
}

// BindFragmentSamplers binds sampler/texture pairs for the fragment stage.
func (cb *CommandBuffer) BindFragmentSamplers(first uint32, samplers []*Sampler, textures []*Texture) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "BindFragmentSamplers: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindFragmentSamplers(cb.native, first, toHALSamplers(samplers), toHALTextures(textures))
}

// BindVertexStorageTextures binds read-only storage textures for the
// vertex stage.
func (cb *CommandBuffer) BindVertexStorageTextures(first uint32, textures []*Texture) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "BindVertexStorageTextures: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindVertexStorageTextures(cb.native, first, toHALTextures(textures))
}

// BindFragmentStorageTextures binds read-only storage textures for the
// fragment stage.
func (cb *CommandBuffer) BindFragmentStorageTextures(first uint32, textures []*Texture) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "BindFragmentStorageTextures: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindFragmentStorageTextures(cb.native, first, toHALTextures(textures))
}

// BindVertexStorageBuffers binds read-only storage buffers for the vertex
// stage.
func (cb *CommandBuffer) BindVertexStorageBuffers(first uint32, buffers []*Buffer) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "BindVertexStorageBuffers: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindVertexStorageBuffers(cb.native, first, toHALBuffers(buffers))
}

// BindFragmentStorageBuffers binds read-only storage buffers for the
// fragment stage.
func (cb *CommandBuffer) BindFragmentStorageBuffers(first uint32, buffers []*Buffer) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "BindFragmentStorageBuffers: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindFragmentStorageBuffers(cb.native, first, toHALBuffers(buffers))
}

// PushVertexUniformData uploads inline uniform data to slot for the bound
// vertex shader.
func (cb *CommandBuffer) PushVertexUniformData(slot uint32, data []byte) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "PushVertexUniformData: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.PushVertexUniformData(cb.native, slot, data)
}

// PushFragmentUniformData uploads inline uniform data to slot for the
// bound fragment shader.
func (cb *CommandBuffer) PushFragmentUniformData(slot uint32, data []byte) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "PushFragmentUniformData: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.PushFragmentUniformData(cb.native, slot, data)
}

// DrawPrimitives issues a non-indexed draw (§4.5 "Draw flush").
func (cb *CommandBuffer) DrawPrimitives(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "DrawPrimitives: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.DrawPrimitives(cb.native, vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndexedPrimitives issues an indexed draw.
func (cb *CommandBuffer) DrawIndexedPrimitives(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "DrawIndexedPrimitives: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.DrawIndexedPrimitives(cb.native, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

// DrawPrimitivesIndirect issues drawCount non-indexed draws read from buf
// at offset.
func (cb *CommandBuffer) DrawPrimitivesIndirect(buf *Buffer, offset uint32, drawCount uint32) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "DrawPrimitivesIndirect: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.DrawPrimitivesIndirect(cb.native, buf.native, offset, drawCount)
}

// DrawIndexedPrimitivesIndirect issues drawCount indexed draws read from
// buf at offset.
func (cb *CommandBuffer) DrawIndexedPrimitivesIndirect(buf *Buffer, offset uint32, drawCount uint32) {
	if verr := cb.invariant(cb.state == cbRenderPassActive && cb.graphicsBound, true, "DrawIndexedPrimitivesIndirect: no render pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.DrawIndexedPrimitivesIndirect(cb.native, buf.native, offset, drawCount)
}

func toHALBufferBindings(bindings []BufferBinding) []hal.BufferBinding {
	if bindings == nil {
		return nil
	}
	out := make([]hal.BufferBinding, len(bindings))
	for i, b := range bindings {
		out[i] = hal.BufferBinding{Buffer: b.Buffer.native, Offset: b.Offset}
	}
	return out
}

func toHALSamplers(samplers []*Sampler) []hal.Sampler {
	if samplers == nil {
		return nil
	}
	out := make([]hal.Sampler, len(samplers))
	for i, s := range samplers {
		out[i] = s.native
	}
	return out
}

func toHALTextures(textures []*Texture) []hal.Texture {
	if textures == nil {
		return nil
	}
	out := make([]hal.Texture, len(textures))
	for i, t := range textures {
		out[i] = t.native
	}
	return out
}

func toHALBuffers(buffers []*Buffer) []hal.Buffer {
	if buffers == nil {
		return nil
	}
	out := make([]hal.Buffer, len(buffers))
	for i, b := range buffers {
		out[i] = b.native
	}
	return out
}
