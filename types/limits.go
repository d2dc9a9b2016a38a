// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

// Fixed limits from §6 "Fixed limits". These are invariant across back-ends
// and are enforced by front-end validation (package gfx) independent of
// which back-end is selected.
const (
	// MaxRootSignatureParameters bounds the number of descriptor-table root
	// parameters a D3D12 root signature may declare (§4.4).
	MaxRootSignatureParameters = 64

	// MaxUniformBuffersPerStage bounds uniform buffers bound to one shader
	// stage.
	MaxUniformBuffersPerStage = 14
	// MaxSamplersPerStage bounds samplers bound to one shader stage.
	MaxSamplersPerStage = 16
	// MaxStorageTexturesPerStage bounds storage textures bound to one stage.
	MaxStorageTexturesPerStage = 8
	// MaxStorageBuffersPerStage bounds storage buffers bound to one stage.
	MaxStorageBuffersPerStage = 8

	// MaxCombinedResources bounds the combined resource count
	// (samplers + storage + uniform) addressable from one pipeline, per §6:
	// "combined resource count ≤ 128+14+8".
	MaxCombinedResources = 128 + 14 + 8

	// MaxComputeWriteTextures bounds read-write storage textures bound to a
	// compute pass.
	MaxComputeWriteTextures = 8
	// MaxComputeWriteBuffers bounds read-write storage buffers bound to a
	// compute pass.
	MaxComputeWriteBuffers = 8

	// MaxColorTargetBindings bounds simultaneously-bound color attachments.
	// Implementation-defined per spec; honored uniformly at 8 (one per
	// MRT slot the D3D12 back-end's PSO table supports).
	MaxColorTargetBindings = 8

	// MaxTextureDimension2D bounds width/height of a 2D or cube texture.
	MaxTextureDimension2D = 16384
	// MaxTextureDimension3D bounds each axis of a 3D texture.
	MaxTextureDimension3D = 2048

	// CubeTextureLayerCount is the required layerCount for cube textures.
	CubeTextureLayerCount = 6

	// SwapchainBufferCount is the number of back buffers a claimed window's
	// swapchain allocates (§4.6).
	SwapchainBufferCount = 2

	// UniformBufferSize is the size in bytes of one uniform-ring-pool
	// allocation unit (§4.5 "Uniform ring").
	UniformBufferSize = 32 * 1024
)
