// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"testing"

	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/types"
)

func TestTextureFormatToDXGI(t *testing.T) {
	tests := []struct {
		name   string
		format types.TextureFormat
		expect d3d12.DXGI_FORMAT
	}{
		{"R8Unorm", types.TextureFormatR8Unorm, d3d12.DXGI_FORMAT_R8_UNORM},
		{"R8Uint", types.TextureFormatR8Uint, d3d12.DXGI_FORMAT_R8_UINT},
		{"R8Sint", types.TextureFormatR8Sint, d3d12.DXGI_FORMAT_R8_SINT},
		{"R16Float", types.TextureFormatR16Float, d3d12.DXGI_FORMAT_R16_FLOAT},
		{"RG8Unorm", types.TextureFormatRG8Unorm, d3d12.DXGI_FORMAT_R8G8_UNORM},
		{"R32Float", types.TextureFormatR32Float, d3d12.DXGI_FORMAT_R32_FLOAT},
		{"RGBA8Unorm", types.TextureFormatRGBA8Unorm, d3d12.DXGI_FORMAT_R8G8B8A8_UNORM},
		{"RGBA8UnormSrgb", types.TextureFormatRGBA8UnormSrgb, d3d12.DXGI_FORMAT_R8G8B8A8_UNORM_SRGB},
		{"BGRA8Unorm", types.TextureFormatBGRA8Unorm, d3d12.DXGI_FORMAT_B8G8R8A8_UNORM},
		{"RGB10A2Unorm", types.TextureFormatRGB10A2Unorm, d3d12.DXGI_FORMAT_R10G10B10A2_UNORM},
		{"RG11B10Ufloat", types.TextureFormatRG11B10Ufloat, d3d12.DXGI_FORMAT_R11G11B10_FLOAT},
		{"RGBA16Float", types.TextureFormatRGBA16Float, d3d12.DXGI_FORMAT_R16G16B16A16_FLOAT},
		{"RGBA32Float", types.TextureFormatRGBA32Float, d3d12.DXGI_FORMAT_R32G32B32A32_FLOAT},
		{"Depth16Unorm", types.TextureFormatDepth16Unorm, d3d12.DXGI_FORMAT_D16_UNORM},
		{"Depth24PlusStencil8", types.TextureFormatDepth24PlusStencil8, d3d12.DXGI_FORMAT_D24_UNORM_S8_UINT},
		{"Depth32Float", types.TextureFormatDepth32Float, d3d12.DXGI_FORMAT_D32_FLOAT},
		{"Stencil8", types.TextureFormatStencil8, d3d12.DXGI_FORMAT_D24_UNORM_S8_UINT},
		{"BC1RGBAUnorm", types.TextureFormatBC1RGBAUnorm, d3d12.DXGI_FORMAT_BC1_UNORM},
		{"BC3RGBAUnorm", types.TextureFormatBC3RGBAUnorm, d3d12.DXGI_FORMAT_BC3_UNORM},
		{"BC7RGBAUnorm", types.TextureFormatBC7RGBAUnorm, d3d12.DXGI_FORMAT_BC7_UNORM},
		{"Unknown", types.TextureFormat(65535), d3d12.DXGI_FORMAT_UNKNOWN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textureFormatToDXGI(tt.format); got != tt.expect {
				t.Errorf("textureFormatToDXGI(%v) = %v, want %v", tt.format, got, tt.expect)
			}
		})
	}
}

func TestSwapchainFormat(t *testing.T) {
	tests := []struct {
		name          string
		composition   types.SwapchainComposition
		expectDXGI    d3d12.DXGI_FORMAT
		expectPortable types.TextureFormat
	}{
		{"SDR", types.SwapchainCompositionSDR, d3d12.DXGI_FORMAT_B8G8R8A8_UNORM, types.TextureFormatBGRA8Unorm},
		{"SDRSrgb", types.SwapchainCompositionSDRSrgb, d3d12.DXGI_FORMAT_B8G8R8A8_UNORM, types.TextureFormatBGRA8UnormSrgb},
		{"HDR", types.SwapchainCompositionHDR, d3d12.DXGI_FORMAT_R16G16B16A16_FLOAT, types.TextureFormatRGBA16Float},
		{"HDRAdvanced", types.SwapchainCompositionHDRAdvanced, d3d12.DXGI_FORMAT_R10G10B10A2_UNORM, types.TextureFormatRGB10A2Unorm},
		{"Unknown defaults to SDR", types.SwapchainComposition(99), d3d12.DXGI_FORMAT_B8G8R8A8_UNORM, types.TextureFormatBGRA8Unorm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDXGI, gotPortable := swapchainFormat(tt.composition)
			if gotDXGI != tt.expectDXGI {
				t.Errorf("swapchainFormat(%v) dxgi = %v, want %v", tt.composition, gotDXGI, tt.expectDXGI)
			}
			if gotPortable != tt.expectPortable {
				t.Errorf("swapchainFormat(%v) portable = %v, want %v", tt.composition, gotPortable, tt.expectPortable)
			}
		})
	}
}

func TestVertexElementFormatToDXGI(t *testing.T) {
	tests := []struct {
		name   string
		format types.VertexElementFormat
		expect d3d12.DXGI_FORMAT
	}{
		{"Float", types.VertexElementFormatFloat, d3d12.DXGI_FORMAT_R32_FLOAT},
		{"Float2", types.VertexElementFormatFloat2, d3d12.DXGI_FORMAT_R32G32_FLOAT},
		{"Float4", types.VertexElementFormatFloat4, d3d12.DXGI_FORMAT_R32G32B32A32_FLOAT},
		{"UByte4Norm", types.VertexElementFormatUByte4Norm, d3d12.DXGI_FORMAT_R8G8B8A8_UNORM},
		{"Int", types.VertexElementFormatInt, d3d12.DXGI_FORMAT_R32_SINT},
		{"UInt", types.VertexElementFormatUInt, d3d12.DXGI_FORMAT_R32_UINT},
		{"Unknown", types.VertexElementFormat(255), d3d12.DXGI_FORMAT_UNKNOWN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vertexElementFormatToDXGI(tt.format); got != tt.expect {
				t.Errorf("vertexElementFormatToDXGI(%v) = %v, want %v", tt.format, got, tt.expect)
			}
		})
	}
}

func TestPrimitiveTypeToD3D12(t *testing.T) {
	tests := []struct {
		name           string
		primitive      types.PrimitiveType
		expectTopology d3d12.D3D_PRIMITIVE_TOPOLOGY
		expectType     d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE
	}{
		{"TriangleList", types.PrimitiveTypeTriangleList, d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE},
		{"TriangleStrip", types.PrimitiveTypeTriangleStrip, d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLESTRIP, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE},
		{"LineList", types.PrimitiveTypeLineList, d3d12.D3D_PRIMITIVE_TOPOLOGY_LINELIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE},
		{"LineStrip", types.PrimitiveTypeLineStrip, d3d12.D3D_PRIMITIVE_TOPOLOGY_LINESTRIP, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE},
		{"PointList", types.PrimitiveTypePointList, d3d12.D3D_PRIMITIVE_TOPOLOGY_POINTLIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_POINT},
		{"Unknown defaults to TriangleList", types.PrimitiveType(99), d3d12.D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST, d3d12.D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTopology, gotType := primitiveTypeToD3D12(tt.primitive)
			if gotTopology != tt.expectTopology || gotType != tt.expectType {
				t.Errorf("primitiveTypeToD3D12(%v) = (%v, %v), want (%v, %v)", tt.primitive, gotTopology, gotType, tt.expectTopology, tt.expectType)
			}
		})
	}
}

func TestFillModeToD3D12(t *testing.T) {
	if got := fillModeToD3D12(types.FillModeLine); got != d3d12.D3D12_FILL_MODE_WIREFRAME {
		t.Errorf("fillModeToD3D12(Line) = %v, want WIREFRAME", got)
	}
	if got := fillModeToD3D12(types.FillModeFill); got != d3d12.D3D12_FILL_MODE_SOLID {
		t.Errorf("fillModeToD3D12(Fill) = %v, want SOLID", got)
	}
}

func TestCullModeToD3D12(t *testing.T) {
	tests := []struct {
		name   string
		mode   types.CullMode
		expect d3d12.D3D12_CULL_MODE
	}{
		{"None", types.CullModeNone, d3d12.D3D12_CULL_MODE_NONE},
		{"Front", types.CullModeFront, d3d12.D3D12_CULL_MODE_FRONT},
		{"Back", types.CullModeBack, d3d12.D3D12_CULL_MODE_BACK},
		{"Unknown defaults to None", types.CullMode(99), d3d12.D3D12_CULL_MODE_NONE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cullModeToD3D12(tt.mode); got != tt.expect {
				t.Errorf("cullModeToD3D12(%v) = %v, want %v", tt.mode, got, tt.expect)
			}
		})
	}
}

func TestCompareOpToD3D12(t *testing.T) {
	tests := []struct {
		name   string
		op     types.CompareOp
		expect d3d12.D3D12_COMPARISON_FUNC
	}{
		{"Never", types.CompareOpNever, d3d12.D3D12_COMPARISON_FUNC_NEVER},
		{"Less", types.CompareOpLess, d3d12.D3D12_COMPARISON_FUNC_LESS},
		{"Equal", types.CompareOpEqual, d3d12.D3D12_COMPARISON_FUNC_EQUAL},
		{"LessEqual", types.CompareOpLessEqual, d3d12.D3D12_COMPARISON_FUNC_LESS_EQUAL},
		{"Greater", types.CompareOpGreater, d3d12.D3D12_COMPARISON_FUNC_GREATER},
		{"NotEqual", types.CompareOpNotEqual, d3d12.D3D12_COMPARISON_FUNC_NOT_EQUAL},
		{"GreaterEqual", types.CompareOpGreaterEqual, d3d12.D3D12_COMPARISON_FUNC_GREATER_EQUAL},
		{"Unknown defaults to Always", types.CompareOp(99), d3d12.D3D12_COMPARISON_FUNC_ALWAYS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareOpToD3D12(tt.op); got != tt.expect {
				t.Errorf("compareOpToD3D12(%v) = %v, want %v", tt.op, got, tt.expect)
			}
		})
	}
}

func TestStencilOpToD3D12(t *testing.T) {
	tests := []struct {
		name   string
		op     types.StencilOp
		expect d3d12.D3D12_STENCIL_OP
	}{
		{"Zero", types.StencilOpZero, d3d12.D3D12_STENCIL_OP_ZERO},
		{"Replace", types.StencilOpReplace, d3d12.D3D12_STENCIL_OP_REPLACE},
		{"IncrementClamp", types.StencilOpIncrementClamp, d3d12.D3D12_STENCIL_OP_INCR_SAT},
		{"DecrementClamp", types.StencilOpDecrementClamp, d3d12.D3D12_STENCIL_OP_DECR_SAT},
		{"Invert", types.StencilOpInvert, d3d12.D3D12_STENCIL_OP_INVERT},
		{"IncrementWrap", types.StencilOpIncrementWrap, d3d12.D3D12_STENCIL_OP_INCR},
		{"DecrementWrap", types.StencilOpDecrementWrap, d3d12.D3D12_STENCIL_OP_DECR},
		{"Unknown defaults to Keep", types.StencilOp(99), d3d12.D3D12_STENCIL_OP_KEEP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stencilOpToD3D12(tt.op); got != tt.expect {
				t.Errorf("stencilOpToD3D12(%v) = %v, want %v", tt.op, got, tt.expect)
			}
		})
	}
}

// TestBlendFactorAlphaRemapping pins the alpha-channel remapping table: a
// color-named factor has no meaning in a one-component alpha blend, so the
// alpha slot substitutes the equivalent SRC_ALPHA/DST_ALPHA factor.
func TestBlendFactorAlphaRemapping(t *testing.T) {
	tests := []struct {
		name   string
		factor types.BlendFactor
		expect d3d12.D3D12_BLEND
	}{
		{"SrcColor remaps to SrcAlpha", types.BlendFactorSrcColor, d3d12.D3D12_BLEND_SRC_ALPHA},
		{"OneMinusSrcColor remaps to InvSrcAlpha", types.BlendFactorOneMinusSrcColor, d3d12.D3D12_BLEND_INV_SRC_ALPHA},
		{"DstColor remaps to DstAlpha", types.BlendFactorDstColor, d3d12.D3D12_BLEND_DEST_ALPHA},
		{"OneMinusDstColor remaps to InvDstAlpha", types.BlendFactorOneMinusDstColor, d3d12.D3D12_BLEND_INV_DEST_ALPHA},
		{"SrcAlpha passes through", types.BlendFactorSrcAlpha, d3d12.D3D12_BLEND_SRC_ALPHA},
		{"One passes through", types.BlendFactorOne, d3d12.D3D12_BLEND_ONE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendFactorToD3D12Alpha(tt.factor); got != tt.expect {
				t.Errorf("blendFactorToD3D12Alpha(%v) = %v, want %v", tt.factor, got, tt.expect)
			}
		})
	}
}

func TestBlendFactorToD3D12Color(t *testing.T) {
	tests := []struct {
		name   string
		factor types.BlendFactor
		expect d3d12.D3D12_BLEND
	}{
		{"One", types.BlendFactorOne, d3d12.D3D12_BLEND_ONE},
		{"SrcColor", types.BlendFactorSrcColor, d3d12.D3D12_BLEND_SRC_COLOR},
		{"OneMinusSrcColor", types.BlendFactorOneMinusSrcColor, d3d12.D3D12_BLEND_INV_SRC_COLOR},
		{"DstColor", types.BlendFactorDstColor, d3d12.D3D12_BLEND_DEST_COLOR},
		{"SrcAlphaSaturate", types.BlendFactorSrcAlphaSaturate, d3d12.D3D12_BLEND_SRC_ALPHA_SAT},
		{"Unknown defaults to Zero", types.BlendFactor(99), d3d12.D3D12_BLEND_ZERO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendFactorToD3D12Color(tt.factor); got != tt.expect {
				t.Errorf("blendFactorToD3D12Color(%v) = %v, want %v", tt.factor, got, tt.expect)
			}
		})
	}
}

func TestBlendOpToD3D12(t *testing.T) {
	tests := []struct {
		name   string
		op     types.BlendOp
		expect d3d12.D3D12_BLEND_OP
	}{
		{"Add", types.BlendOpAdd, d3d12.D3D12_BLEND_OP_ADD},
		{"Subtract", types.BlendOpSubtract, d3d12.D3D12_BLEND_OP_SUBTRACT},
		{"ReverseSubtract", types.BlendOpReverseSubtract, d3d12.D3D12_BLEND_OP_REV_SUBTRACT},
		{"Min", types.BlendOpMin, d3d12.D3D12_BLEND_OP_MIN},
		{"Max", types.BlendOpMax, d3d12.D3D12_BLEND_OP_MAX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendOpToD3D12(tt.op); got != tt.expect {
				t.Errorf("blendOpToD3D12(%v) = %v, want %v", tt.op, got, tt.expect)
			}
		})
	}
}

func TestFilterToD3D12(t *testing.T) {
	tests := []struct {
		name        string
		min, mag    types.Filter
		mip         types.MipmapMode
		anisotropic bool
		expect      d3d12.D3D12_FILTER
	}{
		{"AllNearest", types.FilterNearest, types.FilterNearest, types.MipmapModeNearest, false, d3d12.D3D12_FILTER_MIN_MAG_MIP_POINT},
		{"AllLinear", types.FilterLinear, types.FilterLinear, types.MipmapModeLinear, false, d3d12.D3D12_FILTER_MIN_MAG_MIP_LINEAR},
		{"PartiallyLinear falls back to point", types.FilterLinear, types.FilterNearest, types.MipmapModeNearest, false, d3d12.D3D12_FILTER_MIN_MAG_MIP_POINT},
		{"Anisotropic overrides everything", types.FilterNearest, types.FilterNearest, types.MipmapModeNearest, true, d3d12.D3D12_FILTER_ANISOTROPIC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filterToD3D12(tt.min, tt.mag, tt.mip, tt.anisotropic); got != tt.expect {
				t.Errorf("filterToD3D12() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestAddressModeToD3D12(t *testing.T) {
	tests := []struct {
		name   string
		mode   types.AddressMode
		expect d3d12.D3D12_TEXTURE_ADDRESS_MODE
	}{
		{"Repeat", types.AddressModeRepeat, d3d12.D3D12_TEXTURE_ADDRESS_MODE_WRAP},
		{"MirroredRepeat", types.AddressModeMirroredRepeat, d3d12.D3D12_TEXTURE_ADDRESS_MODE_MIRROR},
		{"ClampToEdge", types.AddressModeClampToEdge, d3d12.D3D12_TEXTURE_ADDRESS_MODE_CLAMP},
		{"Unknown defaults to Wrap", types.AddressMode(99), d3d12.D3D12_TEXTURE_ADDRESS_MODE_WRAP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addressModeToD3D12(tt.mode); got != tt.expect {
				t.Errorf("addressModeToD3D12(%v) = %v, want %v", tt.mode, got, tt.expect)
			}
		})
	}
}
