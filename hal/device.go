// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "github.com/novagfx/gfx/types"

// Texture, Buffer, TransferBuffer, Sampler, Shader, GraphicsPipeline,
// ComputePipeline, CommandList, and Window are opaque handles owned by a
// Device implementation — each back-end returns its own concrete pointer
// type. The front-end (package gfx) never inspects their contents; it only
// threads them back through the Device interface, so these are named empty
// interfaces rather than structs with a shared header (design note 9.1).
type (
	Texture          interface{}
	Buffer           interface{}
	TransferBuffer   interface{}
	Sampler          interface{}
	Shader           interface{}
	GraphicsPipeline interface{}
	ComputePipeline  interface{}
	Fence            interface{}
	CommandList      interface{}
	Window           interface{}
)

// TextureRegion addresses a sub-region of a texture for copy/upload
// operations.
type TextureRegion struct {
	Texture    Texture
	MipLevel   uint32
	Layer      uint32
	X, Y, Z    uint32
	Width      uint32
	Height     uint32
	Depth      uint32
}

// BufferRegion addresses a byte range of a buffer for copy/upload
// operations.
type BufferRegion struct {
	Buffer Buffer
	Offset uint32
	Size   uint32
}

// ColorAttachment binds one render-pass color target (§4.5).
type ColorAttachment struct {
	Texture    Texture
	MipLevel   uint32
	Layer      uint32
	LoadOp     types.LoadOp
	StoreOp    types.StoreOp
	ClearColor types.Color
}

// DepthStencilAttachment binds the render-pass depth/stencil target.
type DepthStencilAttachment struct {
	Texture        Texture
	LoadOp         types.LoadOp
	StoreOp        types.StoreOp
	StencilLoadOp  types.LoadOp
	StencilStoreOp types.StoreOp
	ClearDepth     float32
	ClearStencil   uint8
}

// Viewport is a portable render-pass viewport.
type Viewport struct {
	X, Y, Width, Height float32
	MinDepth, MaxDepth  float32
}

// Rect2D is a portable render-pass scissor rectangle.
type Rect2D struct {
	X, Y, Width, Height int32
}

// BufferBinding pairs a vertex or index buffer with a byte offset.
type BufferBinding struct {
	Buffer Buffer
	Offset uint32
}

// DrawIndirectArgs and DrawIndexedIndirectArgs mirror the native indirect
// argument buffer layouts consumed by draw_*_indirect.
type DrawIndirectArgs struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

type DrawIndexedIndirectArgs struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	VertexOffset  int32
	FirstInstance uint32
}

// DispatchIndirectArgs mirrors the native indirect dispatch argument
// buffer layout.
type DispatchIndirectArgs struct {
	GroupCountX, GroupCountY, GroupCountZ uint32
}

// Device is the capability trait every native back-end implements (design
// note 9.2). It is the "device vtable" of §4.2: the front-end performs all
// argument-shape and invariant validation before calling into it, so a
// Device implementation may assume its inputs already satisfy §3.
//
// Device, and every value it returns, is used from a single goroutine at a
// time (§5) — there is no internal locking.
type Device interface {
	// Identification and capability queries (§6 Device).

	Backend() types.Backend
	SupportsTextureFormat(format types.TextureFormat, usage types.TextureUsage) bool
	SupportsPresentMode(window Window, mode types.PresentMode) bool
	SupportsSwapchainComposition(window Window, composition types.SwapchainComposition) bool
	BestSampleCount(format types.TextureFormat, desired types.SampleCount) types.SampleCount

	// Resource creation / release (§6 Resource).

	CreateShader(desc *types.ShaderDescriptor) (Shader, error)
	ReleaseShader(Shader)
	CreateGraphicsPipeline(desc *types.GraphicsPipelineDescriptor, vs, fs Shader) (GraphicsPipeline, error)
	ReleaseGraphicsPipeline(GraphicsPipeline)
	CreateComputePipeline(desc *types.ComputePipelineDescriptor, cs Shader) (ComputePipeline, error)
	ReleaseComputePipeline(ComputePipeline)
	CreateSampler(desc *types.SamplerDescriptor) (Sampler, error)
	ReleaseSampler(Sampler)
	CreateTexture(desc *types.TextureDescriptor) (Texture, error)
	ReleaseTexture(Texture)
	CreateBuffer(desc *types.BufferDescriptor) (Buffer, error)
	ReleaseBuffer(Buffer)
	CreateTransferBuffer(desc *types.TransferBufferDescriptor) (TransferBuffer, error)
	ReleaseTransferBuffer(TransferBuffer)
	SetBufferName(Buffer, string)
	SetTextureName(Texture, string)

	// Transfer buffer mapping (backs MapTransferBuffer/UnmapTransferBuffer).

	MapTransferBuffer(buf TransferBuffer, cycle bool) ([]byte, error)
	UnmapTransferBuffer(buf TransferBuffer)

	// Command buffer lifecycle (§6 Command buffer, §4.3).

	AcquireCommandList() (CommandList, error)
	Submit(cl CommandList) error
	SubmitAndAcquireFence(cl CommandList) (Fence, error)
	InsertDebugLabel(cl CommandList, label string)
	PushDebugGroup(cl CommandList, label string)
	PopDebugGroup(cl CommandList)

	// Render pass (§4.5, §6).

	BeginRenderPass(cl CommandList, color []ColorAttachment, depthStencil *DepthStencilAttachment) error
	EndRenderPass(cl CommandList)
	SetViewport(cl CommandList, vp Viewport)
	SetScissor(cl CommandList, rect Rect2D)
	BindGraphicsPipeline(cl CommandList, pipeline GraphicsPipeline)
	BindVertexBuffers(cl CommandList, firstSlot uint32, bindings []BufferBinding)
	BindIndexBuffer(cl CommandList, binding BufferBinding, elementSize types.IndexElementSize)
	BindVertexSamplers(cl CommandList, first uint32, samplers []Sampler, textures []Texture)
	BindFragmentSamplers(cl CommandList, first uint32, samplers []Sampler, textures []Texture)
	BindVertexStorageTextures(cl CommandList, first uint32, textures []Texture)
	BindFragmentStorageTextures(cl CommandList, first uint32, textures []Texture)
	BindVertexStorageBuffers(cl CommandList, first uint32, buffers []Buffer)
	BindFragmentStorageBuffers(cl CommandList, first uint32, buffers []Buffer)
	PushVertexUniformData(cl CommandList, slot uint32, data []byte)
	PushFragmentUniformData(cl CommandList, slot uint32, data []byte)
	DrawPrimitives(cl CommandList, vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexedPrimitives(cl CommandList, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	DrawPrimitivesIndirect(cl CommandList, buf Buffer, offset uint32, drawCount uint32)
	DrawIndexedPrimitivesIndirect(cl CommandList, buf Buffer, offset uint32, drawCount uint32)

	// Compute pass (§6 Compute pass).

	BeginComputePass(cl CommandList, writeTextures []Texture, writeBuffers []Buffer) error
	EndComputePass(cl CommandList)
	BindComputePipeline(cl CommandList, pipeline ComputePipeline)
	BindComputeStorageTextures(cl CommandList, first uint32, textures []Texture)
	BindComputeStorageBuffers(cl CommandList, first uint32, buffers []Buffer)
	PushComputeUniformData(cl CommandList, slot uint32, data []byte)
	DispatchCompute(cl CommandList, groupsX, groupsY, groupsZ uint32)
	DispatchComputeIndirect(cl CommandList, buf Buffer, offset uint32)

	// Copy pass (§6 Copy pass).

	BeginCopyPass(cl CommandList) error
	EndCopyPass(cl CommandList)
	UploadToBuffer(cl CommandList, src TransferBuffer, srcOffset uint32, dst BufferRegion)
	UploadToTexture(cl CommandList, src TransferBuffer, srcOffset uint32, dst TextureRegion, srcPitch, srcLayerPitch uint32)
	DownloadFromBuffer(cl CommandList, src BufferRegion, dst TransferBuffer, dstOffset uint32)
	DownloadFromTexture(cl CommandList, src TextureRegion, dst TransferBuffer, dstOffset, dstPitch, dstLayerPitch uint32)
	CopyBufferToBuffer(cl CommandList, src BufferRegion, dst BufferRegion)
	CopyTextureToTexture(cl CommandList, src TextureRegion, dst TextureRegion)
	GenerateMipmaps(cl CommandList, texture Texture)
	Blit(cl CommandList, src TextureRegion, dst TextureRegion, filter types.Filter)

	// Synchronization (§6 Synchronization).

	Wait() error
	WaitForFences(fences []Fence, waitAll bool) error
	QueryFence(f Fence) bool
	ReleaseFence(f Fence)

	// Swapchain / windows (§4.6, §6 Swapchain).

	ClaimWindow(handle uintptr, composition types.SwapchainComposition, presentMode types.PresentMode) (Window, error)
	UnclaimWindow(w Window)
	SetSwapchainParameters(w Window, composition types.SwapchainComposition, presentMode types.PresentMode) error
	SwapchainTextureFormat(w Window) types.TextureFormat
	AcquireSwapchainTexture(cl CommandList, w Window) (Texture, error)

	// Destroy tears the device down. Every resource created from it must
	// already be released (§3 Device invariant).
	Destroy()
}
