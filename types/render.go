// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

// BlendFactor is the portable blend-factor enumerant. Values named after a
// color channel (e.g. SrcColor) are remapped to their alpha-channel
// equivalent when used in the alpha blend slot — see §4.4 "Alpha
// blend-factor remapping table", preserved verbatim from the source this
// spec was distilled from.
type BlendFactor uint8

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorConstantColor
	BlendFactorOneMinusConstantColor
	BlendFactorSrcAlphaSaturate
)

// BlendOp is the portable blend-equation enumerant.
type BlendOp uint8

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// ColorWriteMask is a bitset of color channels a blend state writes.
type ColorWriteMask uint8

const (
	ColorWriteMaskRed ColorWriteMask = 1 << iota
	ColorWriteMaskGreen
	ColorWriteMaskBlue
	ColorWriteMaskAlpha
	ColorWriteMaskAll = ColorWriteMaskRed | ColorWriteMaskGreen | ColorWriteMaskBlue | ColorWriteMaskAlpha
)

// ColorTargetBlendState is the per-attachment blend configuration (§4.4).
type ColorTargetBlendState struct {
	BlendEnable         bool
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	WriteMask           ColorWriteMask
	Format              TextureFormat
}

// StencilOpState is the portable per-face stencil operation set.
type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
}

// StencilOp is the portable stencil-update operation.
type StencilOp uint8

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementClamp
	StencilOpDecrementClamp
	StencilOpInvert
	StencilOpIncrementWrap
	StencilOpDecrementWrap
)

// DepthStencilState is the portable fixed-function depth/stencil
// configuration.
type DepthStencilState struct {
	DepthTestEnable       bool
	DepthWriteEnable      bool
	DepthCompareOp        CompareOp
	StencilTestEnable     bool
	StencilReadMask       uint8
	StencilWriteMask      uint8
	Front                 StencilOpState
	Back                  StencilOpState
	Format                TextureFormat
}

// GraphicsPipelineDescriptor is the portable create-info for a graphics
// pipeline (§3, §4.4): the compiled intersection of vertex/fragment
// shaders, fixed-function state, and the render target formats it is
// compatible with.
type GraphicsPipelineDescriptor struct {
	Label             string
	VertexShader      *ShaderDescriptor
	FragmentShader    *ShaderDescriptor
	VertexInput       VertexInputState
	Rasterizer        RasterizerState
	DepthStencil      DepthStencilState
	PrimitiveType     PrimitiveType
	SampleCount       SampleCount
	ColorTargets      []ColorTargetBlendState
	HasDepthStencil   bool
	BlendConstants    Color
	StencilReference  uint8
}

// ComputePipelineDescriptor is the portable create-info for a compute
// pipeline.
type ComputePipelineDescriptor struct {
	Label                    string
	ComputeShader            *ShaderDescriptor
	ReadOnlyStorageTextures  uint32
	ReadOnlyStorageBuffers   uint32
	ReadWriteStorageTextures uint32
	ReadWriteStorageBuffers  uint32
	UniformBuffers           uint32
}
