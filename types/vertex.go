// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

// VertexElementFormat is the portable per-attribute data format.
type VertexElementFormat uint8

const (
	VertexElementFormatFloat VertexElementFormat = iota
	VertexElementFormatFloat2
	VertexElementFormatFloat3
	VertexElementFormatFloat4
	VertexElementFormatByte4Norm
	VertexElementFormatUByte4Norm
	VertexElementFormatShort2Norm
	VertexElementFormatUShort4Norm
	VertexElementFormatInt
	VertexElementFormatInt2
	VertexElementFormatUInt
	VertexElementFormatUInt4
)

// ComponentCount returns the number of scalar components the format packs.
func (f VertexElementFormat) ComponentCount() int {
	switch f {
	case VertexElementFormatFloat, VertexElementFormatInt, VertexElementFormatUInt:
		return 1
	case VertexElementFormatFloat2, VertexElementFormatShort2Norm, VertexElementFormatInt2:
		return 2
	case VertexElementFormatFloat3:
		return 3
	case VertexElementFormatFloat4, VertexElementFormatByte4Norm, VertexElementFormatUByte4Norm,
		VertexElementFormatUShort4Norm, VertexElementFormatUInt4:
		return 4
	default:
		return 0
	}
}

// VertexInputRate classifies a vertex buffer binding as advancing per
// vertex or per instance.
type VertexInputRate uint8

const (
	VertexInputRateVertex VertexInputRate = iota
	VertexInputRateInstance
)

// VertexBufferDescription describes one bound vertex buffer slot.
type VertexBufferDescription struct {
	Slot      uint32
	Pitch     uint32
	InputRate VertexInputRate
	StepRate  uint32 // only meaningful when InputRate == VertexInputRateInstance
}

// VertexAttribute describes one shader input, always surfaced to HLSL as
// TEXCOORD<Location> per the fixed toolchain convention (§9 "HLSL semantic
// convention").
type VertexAttribute struct {
	Location       uint32
	BufferSlot     uint32
	Format         VertexElementFormat
	Offset         uint32
}

// VertexInputState bundles the buffer slot layout with the attributes that
// read from them.
type VertexInputState struct {
	Buffers    []VertexBufferDescription
	Attributes []VertexAttribute
}

// PrimitiveType is the portable primitive topology family.
type PrimitiveType uint8

const (
	PrimitiveTypeTriangleList PrimitiveType = iota
	PrimitiveTypeTriangleStrip
	PrimitiveTypeLineList
	PrimitiveTypeLineStrip
	PrimitiveTypePointList
)

// FillMode selects solid or wireframe rasterization.
type FillMode uint8

const (
	FillModeFill FillMode = iota
	FillModeLine
)

// CullMode selects which triangle winding is culled.
type CullMode uint8

const (
	CullModeNone CullMode = iota
	CullModeFront
	CullModeBack
)

// FrontFace selects which vertex winding order is considered front-facing.
type FrontFace uint8

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

// RasterizerState is the portable fixed-function rasterizer configuration.
type RasterizerState struct {
	FillMode                FillMode
	CullMode                CullMode
	FrontFace               FrontFace
	DepthBiasEnable         bool
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
}
