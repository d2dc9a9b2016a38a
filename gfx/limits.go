// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import "github.com/novagfx/gfx/types"

// Fixed limits from §6, re-exported at the front-end so callers validating
// their own inputs (e.g. a render2d batch sizing a vertex buffer) do not
// need to import package types just for a constant.
const (
	MaxRootSignatureParameters = types.MaxRootSignatureParameters
	MaxUniformBuffersPerStage  = types.MaxUniformBuffersPerStage
	MaxSamplersPerStage        = types.MaxSamplersPerStage
	MaxStorageTexturesPerStage = types.MaxStorageTexturesPerStage
	MaxStorageBuffersPerStage  = types.MaxStorageBuffersPerStage
	MaxCombinedResources       = types.MaxCombinedResources
	MaxComputeWriteTextures    = types.MaxComputeWriteTextures
	MaxComputeWriteBuffers     = types.MaxComputeWriteBuffers
	MaxColorTargetBindings     = types.MaxColorTargetBindings
	MaxTextureDimension2D      = types.MaxTextureDimension2D
	MaxTextureDimension3D      = types.MaxTextureDimension3D
	CubeTextureLayerCount      = types.CubeTextureLayerCount
	SwapchainBufferCount       = types.SwapchainBufferCount
	UniformBufferSize          = types.UniformBufferSize
)
