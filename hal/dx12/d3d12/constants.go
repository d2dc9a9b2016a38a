// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

// The enum types below back struct fields declared throughout types.go
// (D3D12_RESOURCE_DESC, D3D12_GRAPHICS_PIPELINE_STATE_DESC, …) but, like
// DXGI_FORMAT and D3D_FEATURE_LEVEL, were never declared in the retrieved
// sources. Declared here with their real Win32 numeric values, limited to
// the constants this module's dx12 back-end actually uses.

type D3D12_HEAP_TYPE uint32

const (
	D3D12_HEAP_TYPE_DEFAULT  D3D12_HEAP_TYPE = 1
	D3D12_HEAP_TYPE_UPLOAD   D3D12_HEAP_TYPE = 2
	D3D12_HEAP_TYPE_READBACK D3D12_HEAP_TYPE = 3
)

type D3D12_CPU_PAGE_PROPERTY uint32

const D3D12_CPU_PAGE_PROPERTY_UNKNOWN D3D12_CPU_PAGE_PROPERTY = 0

type D3D12_MEMORY_POOL uint32

const D3D12_MEMORY_POOL_UNKNOWN D3D12_MEMORY_POOL = 0

type D3D12_HEAP_FLAGS uint32

const D3D12_HEAP_FLAG_NONE D3D12_HEAP_FLAGS = 0

type D3D12_RESOURCE_DIMENSION uint32

const (
	D3D12_RESOURCE_DIMENSION_UNKNOWN   D3D12_RESOURCE_DIMENSION = 0
	D3D12_RESOURCE_DIMENSION_BUFFER    D3D12_RESOURCE_DIMENSION = 1
	D3D12_RESOURCE_DIMENSION_TEXTURE1D D3D12_RESOURCE_DIMENSION = 2
	D3D12_RESOURCE_DIMENSION_TEXTURE2D D3D12_RESOURCE_DIMENSION = 3
	D3D12_RESOURCE_DIMENSION_TEXTURE3D D3D12_RESOURCE_DIMENSION = 4
)

type D3D12_TEXTURE_LAYOUT uint32

const (
	D3D12_TEXTURE_LAYOUT_UNKNOWN   D3D12_TEXTURE_LAYOUT = 0
	D3D12_TEXTURE_LAYOUT_ROW_MAJOR D3D12_TEXTURE_LAYOUT = 1
)

type D3D12_RESOURCE_FLAGS uint32

const (
	D3D12_RESOURCE_FLAG_NONE                     D3D12_RESOURCE_FLAGS = 0
	D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET      D3D12_RESOURCE_FLAGS = 0x1
	D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL      D3D12_RESOURCE_FLAGS = 0x2
	D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS   D3D12_RESOURCE_FLAGS = 0x4
	D3D12_RESOURCE_FLAG_DENY_SHADER_RESOURCE     D3D12_RESOURCE_FLAGS = 0x10
)

type D3D12_RESOURCE_STATES uint32

const (
	D3D12_RESOURCE_STATE_COMMON                     D3D12_RESOURCE_STATES = 0
	D3D12_RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER D3D12_RESOURCE_STATES = 0x1
	D3D12_RESOURCE_STATE_INDEX_BUFFER               D3D12_RESOURCE_STATES = 0x2
	D3D12_RESOURCE_STATE_RENDER_TARGET              D3D12_RESOURCE_STATES = 0x4
	D3D12_RESOURCE_STATE_UNORDERED_ACCESS           D3D12_RESOURCE_STATES = 0x8
	D3D12_RESOURCE_STATE_DEPTH_WRITE                D3D12_RESOURCE_STATES = 0x10
	D3D12_RESOURCE_STATE_DEPTH_READ                 D3D12_RESOURCE_STATES = 0x20
	D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE  D3D12_RESOURCE_STATES = 0x40
	D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE      D3D12_RESOURCE_STATES = 0x80
	D3D12_RESOURCE_STATE_COPY_DEST                  D3D12_RESOURCE_STATES = 0x400
	D3D12_RESOURCE_STATE_COPY_SOURCE                D3D12_RESOURCE_STATES = 0x800
	D3D12_RESOURCE_STATE_GENERIC_READ                = D3D12_RESOURCE_STATE_VERTEX_AND_CONSTANT_BUFFER |
		D3D12_RESOURCE_STATE_INDEX_BUFFER |
		D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE |
		D3D12_RESOURCE_STATE_PIXEL_SHADER_RESOURCE |
		D3D12_RESOURCE_STATE_COPY_SOURCE
	D3D12_RESOURCE_STATE_PRESENT D3D12_RESOURCE_STATES = 0
)

type D3D12_DESCRIPTOR_HEAP_TYPE uint32

const (
	D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV D3D12_DESCRIPTOR_HEAP_TYPE = 0
	D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER     D3D12_DESCRIPTOR_HEAP_TYPE = 1
	D3D12_DESCRIPTOR_HEAP_TYPE_RTV         D3D12_DESCRIPTOR_HEAP_TYPE = 2
	D3D12_DESCRIPTOR_HEAP_TYPE_DSV         D3D12_DESCRIPTOR_HEAP_TYPE = 3
)

type D3D12_DESCRIPTOR_HEAP_FLAGS uint32

const (
	D3D12_DESCRIPTOR_HEAP_FLAG_NONE           D3D12_DESCRIPTOR_HEAP_FLAGS = 0
	D3D12_DESCRIPTOR_HEAP_FLAG_SHADER_VISIBLE D3D12_DESCRIPTOR_HEAP_FLAGS = 0x1
)

type D3D12_COMMAND_LIST_TYPE uint32

const (
	D3D12_COMMAND_LIST_TYPE_DIRECT  D3D12_COMMAND_LIST_TYPE = 0
	D3D12_COMMAND_LIST_TYPE_COMPUTE D3D12_COMMAND_LIST_TYPE = 2
	D3D12_COMMAND_LIST_TYPE_COPY    D3D12_COMMAND_LIST_TYPE = 3
)

type D3D12_COMMAND_QUEUE_FLAGS uint32

const D3D12_COMMAND_QUEUE_FLAG_NONE D3D12_COMMAND_QUEUE_FLAGS = 0

type D3D12_FENCE_FLAGS uint32

const D3D12_FENCE_FLAG_NONE D3D12_FENCE_FLAGS = 0

type D3D12_CLEAR_FLAGS uint32

const (
	D3D12_CLEAR_FLAG_DEPTH   D3D12_CLEAR_FLAGS = 0x1
	D3D12_CLEAR_FLAG_STENCIL D3D12_CLEAR_FLAGS = 0x2
)

type D3D12_RESOURCE_BARRIER_TYPE uint32

const (
	D3D12_RESOURCE_BARRIER_TYPE_TRANSITION D3D12_RESOURCE_BARRIER_TYPE = 0
	D3D12_RESOURCE_BARRIER_TYPE_ALIASING   D3D12_RESOURCE_BARRIER_TYPE = 1
	D3D12_RESOURCE_BARRIER_TYPE_UAV        D3D12_RESOURCE_BARRIER_TYPE = 2
)

type D3D12_RESOURCE_BARRIER_FLAGS uint32

const D3D12_RESOURCE_BARRIER_FLAG_NONE D3D12_RESOURCE_BARRIER_FLAGS = 0

type D3D12_ROOT_PARAMETER_TYPE uint32

const (
	D3D12_ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE D3D12_ROOT_PARAMETER_TYPE = 0
	D3D12_ROOT_PARAMETER_TYPE_32BIT_CONSTANTS  D3D12_ROOT_PARAMETER_TYPE = 1
	D3D12_ROOT_PARAMETER_TYPE_CBV              D3D12_ROOT_PARAMETER_TYPE = 2
	D3D12_ROOT_PARAMETER_TYPE_SRV              D3D12_ROOT_PARAMETER_TYPE = 3
	D3D12_ROOT_PARAMETER_TYPE_UAV              D3D12_ROOT_PARAMETER_TYPE = 4
)

type D3D12_DESCRIPTOR_RANGE_TYPE uint32

const (
	D3D12_DESCRIPTOR_RANGE_TYPE_SRV     D3D12_DESCRIPTOR_RANGE_TYPE = 0
	D3D12_DESCRIPTOR_RANGE_TYPE_UAV     D3D12_DESCRIPTOR_RANGE_TYPE = 1
	D3D12_DESCRIPTOR_RANGE_TYPE_CBV     D3D12_DESCRIPTOR_RANGE_TYPE = 2
	D3D12_DESCRIPTOR_RANGE_TYPE_SAMPLER D3D12_DESCRIPTOR_RANGE_TYPE = 3
)

type D3D12_ROOT_SIGNATURE_FLAGS uint32

const (
	D3D12_ROOT_SIGNATURE_FLAG_NONE                                    D3D12_ROOT_SIGNATURE_FLAGS = 0
	D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT      D3D12_ROOT_SIGNATURE_FLAGS = 0x1
	D3D12_ROOT_SIGNATURE_FLAG_DENY_HULL_SHADER_ROOT_ACCESS            D3D12_ROOT_SIGNATURE_FLAGS = 0x4
	D3D12_ROOT_SIGNATURE_FLAG_DENY_DOMAIN_SHADER_ROOT_ACCESS          D3D12_ROOT_SIGNATURE_FLAGS = 0x8
	D3D12_ROOT_SIGNATURE_FLAG_DENY_GEOMETRY_SHADER_ROOT_ACCESS        D3D12_ROOT_SIGNATURE_FLAGS = 0x10
)

type D3D12_FEATURE uint32

const (
	D3D12_FEATURE_D3D12_OPTIONS  D3D12_FEATURE = 0
	D3D12_FEATURE_FEATURE_LEVELS D3D12_FEATURE = 7
	D3D12_FEATURE_SHADER_MODEL   D3D12_FEATURE = 9
)

type D3D12_SHADER_VISIBILITY uint32

const (
	D3D12_SHADER_VISIBILITY_ALL    D3D12_SHADER_VISIBILITY = 0
	D3D12_SHADER_VISIBILITY_VERTEX D3D12_SHADER_VISIBILITY = 1
	D3D12_SHADER_VISIBILITY_PIXEL  D3D12_SHADER_VISIBILITY = 5
)

type D3D12_BLEND uint32

const (
	D3D12_BLEND_ZERO             D3D12_BLEND = 1
	D3D12_BLEND_ONE              D3D12_BLEND = 2
	D3D12_BLEND_SRC_COLOR        D3D12_BLEND = 3
	D3D12_BLEND_INV_SRC_COLOR    D3D12_BLEND = 4
	D3D12_BLEND_SRC_ALPHA        D3D12_BLEND = 5
	D3D12_BLEND_INV_SRC_ALPHA    D3D12_BLEND = 6
	D3D12_BLEND_DEST_ALPHA       D3D12_BLEND = 7
	D3D12_BLEND_INV_DEST_ALPHA   D3D12_BLEND = 8
	D3D12_BLEND_DEST_COLOR       D3D12_BLEND = 9
	D3D12_BLEND_INV_DEST_COLOR   D3D12_BLEND = 10
	D3D12_BLEND_SRC_ALPHA_SAT    D3D12_BLEND = 11
	D3D12_BLEND_BLEND_FACTOR     D3D12_BLEND = 14
	D3D12_BLEND_INV_BLEND_FACTOR D3D12_BLEND = 15
)

type D3D12_BLEND_OP uint32

const (
	D3D12_BLEND_OP_ADD          D3D12_BLEND_OP = 1
	D3D12_BLEND_OP_SUBTRACT     D3D12_BLEND_OP = 2
	D3D12_BLEND_OP_REV_SUBTRACT D3D12_BLEND_OP = 3
	D3D12_BLEND_OP_MIN          D3D12_BLEND_OP = 4
	D3D12_BLEND_OP_MAX          D3D12_BLEND_OP = 5
)

type D3D12_LOGIC_OP uint32

const D3D12_LOGIC_OP_NOOP D3D12_LOGIC_OP = 0

type D3D12_COMPARISON_FUNC uint32

const (
	D3D12_COMPARISON_FUNC_NEVER         D3D12_COMPARISON_FUNC = 1
	D3D12_COMPARISON_FUNC_LESS          D3D12_COMPARISON_FUNC = 2
	D3D12_COMPARISON_FUNC_EQUAL         D3D12_COMPARISON_FUNC = 3
	D3D12_COMPARISON_FUNC_LESS_EQUAL    D3D12_COMPARISON_FUNC = 4
	D3D12_COMPARISON_FUNC_GREATER       D3D12_COMPARISON_FUNC = 5
	D3D12_COMPARISON_FUNC_NOT_EQUAL     D3D12_COMPARISON_FUNC = 6
	D3D12_COMPARISON_FUNC_GREATER_EQUAL D3D12_COMPARISON_FUNC = 7
	D3D12_COMPARISON_FUNC_ALWAYS        D3D12_COMPARISON_FUNC = 8
)

type D3D12_CULL_MODE uint32

const (
	D3D12_CULL_MODE_NONE  D3D12_CULL_MODE = 1
	D3D12_CULL_MODE_FRONT D3D12_CULL_MODE = 2
	D3D12_CULL_MODE_BACK  D3D12_CULL_MODE = 3
)

type D3D12_FILL_MODE uint32

const (
	D3D12_FILL_MODE_WIREFRAME D3D12_FILL_MODE = 2
	D3D12_FILL_MODE_SOLID     D3D12_FILL_MODE = 3
)

type D3D12_CONSERVATIVE_RASTERIZATION_MODE uint32

const D3D12_CONSERVATIVE_RASTERIZATION_MODE_OFF D3D12_CONSERVATIVE_RASTERIZATION_MODE = 0

type D3D12_FILTER uint32

const (
	D3D12_FILTER_MIN_MAG_MIP_POINT        D3D12_FILTER = 0x00
	D3D12_FILTER_MIN_MAG_POINT_MIP_LINEAR D3D12_FILTER = 0x01
	D3D12_FILTER_MIN_MAG_MIP_LINEAR       D3D12_FILTER = 0x15
	D3D12_FILTER_ANISOTROPIC              D3D12_FILTER = 0x55
	D3D12_FILTER_COMPARISON_MIN_MAG_MIP_LINEAR D3D12_FILTER = 0x95
)

type D3D12_TEXTURE_ADDRESS_MODE uint32

const (
	D3D12_TEXTURE_ADDRESS_MODE_WRAP        D3D12_TEXTURE_ADDRESS_MODE = 1
	D3D12_TEXTURE_ADDRESS_MODE_MIRROR      D3D12_TEXTURE_ADDRESS_MODE = 2
	D3D12_TEXTURE_ADDRESS_MODE_CLAMP       D3D12_TEXTURE_ADDRESS_MODE = 3
	D3D12_TEXTURE_ADDRESS_MODE_BORDER      D3D12_TEXTURE_ADDRESS_MODE = 4
	D3D12_TEXTURE_ADDRESS_MODE_MIRROR_ONCE D3D12_TEXTURE_ADDRESS_MODE = 5
)

type D3D12_STATIC_BORDER_COLOR uint32

const (
	D3D12_STATIC_BORDER_COLOR_TRANSPARENT_BLACK D3D12_STATIC_BORDER_COLOR = 0
	D3D12_STATIC_BORDER_COLOR_OPAQUE_BLACK       D3D12_STATIC_BORDER_COLOR = 1
	D3D12_STATIC_BORDER_COLOR_OPAQUE_WHITE       D3D12_STATIC_BORDER_COLOR = 2
)

type D3D12_INPUT_CLASSIFICATION uint32

const (
	D3D12_INPUT_CLASSIFICATION_PER_VERTEX_DATA   D3D12_INPUT_CLASSIFICATION = 0
	D3D12_INPUT_CLASSIFICATION_PER_INSTANCE_DATA D3D12_INPUT_CLASSIFICATION = 1
)

type D3D12_PRIMITIVE_TOPOLOGY_TYPE uint32

const (
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_POINT    D3D12_PRIMITIVE_TOPOLOGY_TYPE = 1
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_LINE     D3D12_PRIMITIVE_TOPOLOGY_TYPE = 2
	D3D12_PRIMITIVE_TOPOLOGY_TYPE_TRIANGLE D3D12_PRIMITIVE_TOPOLOGY_TYPE = 3
)

type D3D12_STENCIL_OP uint32

const (
	D3D12_STENCIL_OP_KEEP     D3D12_STENCIL_OP = 1
	D3D12_STENCIL_OP_ZERO     D3D12_STENCIL_OP = 2
	D3D12_STENCIL_OP_REPLACE  D3D12_STENCIL_OP = 3
	D3D12_STENCIL_OP_INCR_SAT D3D12_STENCIL_OP = 4
	D3D12_STENCIL_OP_DECR_SAT D3D12_STENCIL_OP = 5
	D3D12_STENCIL_OP_INVERT   D3D12_STENCIL_OP = 6
	D3D12_STENCIL_OP_INCR     D3D12_STENCIL_OP = 7
	D3D12_STENCIL_OP_DECR     D3D12_STENCIL_OP = 8
)

type D3D12_DEPTH_WRITE_MASK uint32

const (
	D3D12_DEPTH_WRITE_MASK_ZERO D3D12_DEPTH_WRITE_MASK = 0
	D3D12_DEPTH_WRITE_MASK_ALL  D3D12_DEPTH_WRITE_MASK = 1
)

type D3D12_PIPELINE_STATE_FLAGS uint32

const D3D12_PIPELINE_STATE_FLAG_NONE D3D12_PIPELINE_STATE_FLAGS = 0

type D3D12_INDEX_BUFFER_STRIP_CUT_VALUE uint32

const D3D12_INDEX_BUFFER_STRIP_CUT_VALUE_DISABLED D3D12_INDEX_BUFFER_STRIP_CUT_VALUE = 0

type D3D12_SRV_DIMENSION uint32

const (
	D3D12_SRV_DIMENSION_TEXTURE1D      D3D12_SRV_DIMENSION = 2
	D3D12_SRV_DIMENSION_TEXTURE2D      D3D12_SRV_DIMENSION = 4
	D3D12_SRV_DIMENSION_TEXTURE2DARRAY D3D12_SRV_DIMENSION = 5
	D3D12_SRV_DIMENSION_TEXTURE3D      D3D12_SRV_DIMENSION = 8
	D3D12_SRV_DIMENSION_TEXTURECUBE    D3D12_SRV_DIMENSION = 9
	D3D12_SRV_DIMENSION_TEXTURECUBEARRAY D3D12_SRV_DIMENSION = 10
)

type D3D12_UAV_DIMENSION uint32

const (
	D3D12_UAV_DIMENSION_BUFFER    D3D12_UAV_DIMENSION = 1
	D3D12_UAV_DIMENSION_TEXTURE2D D3D12_UAV_DIMENSION = 4
)

type D3D12_RTV_DIMENSION uint32

const (
	D3D12_RTV_DIMENSION_TEXTURE1D      D3D12_RTV_DIMENSION = 2
	D3D12_RTV_DIMENSION_TEXTURE2D      D3D12_RTV_DIMENSION = 4
	D3D12_RTV_DIMENSION_TEXTURE2DARRAY D3D12_RTV_DIMENSION = 5
	D3D12_RTV_DIMENSION_TEXTURE3D      D3D12_RTV_DIMENSION = 8
)

type D3D12_DSV_DIMENSION uint32

const (
	D3D12_DSV_DIMENSION_TEXTURE1D      D3D12_DSV_DIMENSION = 1
	D3D12_DSV_DIMENSION_TEXTURE2D      D3D12_DSV_DIMENSION = 3
	D3D12_DSV_DIMENSION_TEXTURE2DARRAY D3D12_DSV_DIMENSION = 4
)

type D3D12_DSV_FLAGS uint32

const D3D12_DSV_FLAG_NONE D3D12_DSV_FLAGS = 0

type D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE uint32

const (
	D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE_DISCARD D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE = 0
	D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE_PRESERVE D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE = 1
	D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE_CLEAR    D3D12_RENDER_PASS_BEGINNING_ACCESS_TYPE = 2
)

type D3D12_RENDER_PASS_ENDING_ACCESS_TYPE uint32

const (
	D3D12_RENDER_PASS_ENDING_ACCESS_TYPE_DISCARD  D3D12_RENDER_PASS_ENDING_ACCESS_TYPE = 0
	D3D12_RENDER_PASS_ENDING_ACCESS_TYPE_PRESERVE D3D12_RENDER_PASS_ENDING_ACCESS_TYPE = 1
)

type D3D12_INDIRECT_ARGUMENT_TYPE uint32

const (
	D3D12_INDIRECT_ARGUMENT_TYPE_DRAW          D3D12_INDIRECT_ARGUMENT_TYPE = 0
	D3D12_INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED  D3D12_INDIRECT_ARGUMENT_TYPE = 1
	D3D12_INDIRECT_ARGUMENT_TYPE_DISPATCH      D3D12_INDIRECT_ARGUMENT_TYPE = 2
)

type D3D12_QUERY_HEAP_TYPE uint32

const D3D12_QUERY_HEAP_TYPE_OCCLUSION D3D12_QUERY_HEAP_TYPE = 0
