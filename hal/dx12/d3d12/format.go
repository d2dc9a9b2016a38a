// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

// DXGI_FORMAT numbers resource and view formats. Its values are shared ABI
// with package dxgi's DXGI_FORMAT — both name the same Win32 enum, kept as
// separate Go types because D3D12_RESOURCE_DESC and swapchain descriptors
// live in different packages; convert between them with a numeric cast.
type DXGI_FORMAT uint32

const (
	DXGI_FORMAT_UNKNOWN                DXGI_FORMAT = 0
	DXGI_FORMAT_R32G32B32A32_FLOAT     DXGI_FORMAT = 2
	DXGI_FORMAT_R32G32B32A32_UINT      DXGI_FORMAT = 3
	DXGI_FORMAT_R32G32B32A32_SINT      DXGI_FORMAT = 4
	DXGI_FORMAT_R16G16B16A16_FLOAT     DXGI_FORMAT = 10
	DXGI_FORMAT_R16G16B16A16_UNORM     DXGI_FORMAT = 11
	DXGI_FORMAT_R16G16B16A16_UINT      DXGI_FORMAT = 12
	DXGI_FORMAT_R16G16B16A16_SINT      DXGI_FORMAT = 14
	DXGI_FORMAT_R32G32_FLOAT           DXGI_FORMAT = 16
	DXGI_FORMAT_R32G32_UINT            DXGI_FORMAT = 17
	DXGI_FORMAT_R32G32_SINT            DXGI_FORMAT = 18
	DXGI_FORMAT_D32_FLOAT_S8X24_UINT   DXGI_FORMAT = 20
	DXGI_FORMAT_R10G10B10A2_UNORM      DXGI_FORMAT = 24
	DXGI_FORMAT_R10G10B10A2_UINT       DXGI_FORMAT = 25
	DXGI_FORMAT_R11G11B10_FLOAT        DXGI_FORMAT = 26
	DXGI_FORMAT_R8G8B8A8_UNORM         DXGI_FORMAT = 28
	DXGI_FORMAT_R8G8B8A8_UNORM_SRGB    DXGI_FORMAT = 29
	DXGI_FORMAT_R8G8B8A8_UINT          DXGI_FORMAT = 30
	DXGI_FORMAT_R8G8B8A8_SINT          DXGI_FORMAT = 32
	DXGI_FORMAT_R16G16_FLOAT           DXGI_FORMAT = 34
	DXGI_FORMAT_R16G16_UINT            DXGI_FORMAT = 36
	DXGI_FORMAT_R16G16_SINT            DXGI_FORMAT = 38
	DXGI_FORMAT_D32_FLOAT              DXGI_FORMAT = 40
	DXGI_FORMAT_R32_FLOAT              DXGI_FORMAT = 41
	DXGI_FORMAT_R32_UINT               DXGI_FORMAT = 42
	DXGI_FORMAT_R32_SINT               DXGI_FORMAT = 43
	DXGI_FORMAT_D24_UNORM_S8_UINT      DXGI_FORMAT = 45
	DXGI_FORMAT_R8G8_UNORM             DXGI_FORMAT = 49
	DXGI_FORMAT_R8G8_UINT              DXGI_FORMAT = 50
	DXGI_FORMAT_R8G8_SINT              DXGI_FORMAT = 52
	DXGI_FORMAT_R16_FLOAT              DXGI_FORMAT = 54
	DXGI_FORMAT_D16_UNORM              DXGI_FORMAT = 55
	DXGI_FORMAT_R16_UINT               DXGI_FORMAT = 57
	DXGI_FORMAT_R16_SINT               DXGI_FORMAT = 59
	DXGI_FORMAT_R8_UNORM               DXGI_FORMAT = 61
	DXGI_FORMAT_R8_UINT                DXGI_FORMAT = 62
	DXGI_FORMAT_R8_SINT                DXGI_FORMAT = 64
	DXGI_FORMAT_BC1_UNORM              DXGI_FORMAT = 71
	DXGI_FORMAT_BC1_UNORM_SRGB         DXGI_FORMAT = 72
	DXGI_FORMAT_BC3_UNORM              DXGI_FORMAT = 77
	DXGI_FORMAT_BC3_UNORM_SRGB         DXGI_FORMAT = 78
	DXGI_FORMAT_BC7_UNORM              DXGI_FORMAT = 98
	DXGI_FORMAT_BC7_UNORM_SRGB         DXGI_FORMAT = 99
	DXGI_FORMAT_B8G8R8A8_UNORM         DXGI_FORMAT = 87
	DXGI_FORMAT_B8G8R8A8_UNORM_SRGB    DXGI_FORMAT = 91
)
