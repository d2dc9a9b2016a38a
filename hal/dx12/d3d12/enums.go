// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

// D3D_FEATURE_LEVEL, D3D_PRIMITIVE_TOPOLOGY, D3D_SHADER_MODEL, and
// D3D12_ROOT_SIGNATURE_VERSION are referenced by types.go and loader.go but
// were never declared in the retrieved sources. Declared here with their
// real Win32 numeric values.

type D3D_FEATURE_LEVEL uint32

const (
	D3D_FEATURE_LEVEL_11_0 D3D_FEATURE_LEVEL = 0xb000
	D3D_FEATURE_LEVEL_11_1 D3D_FEATURE_LEVEL = 0xb100
	D3D_FEATURE_LEVEL_12_0 D3D_FEATURE_LEVEL = 0xc000
	D3D_FEATURE_LEVEL_12_1 D3D_FEATURE_LEVEL = 0xc100
	D3D_FEATURE_LEVEL_12_2 D3D_FEATURE_LEVEL = 0xc200
)

type D3D_PRIMITIVE_TOPOLOGY uint32

const (
	D3D_PRIMITIVE_TOPOLOGY_UNDEFINED     D3D_PRIMITIVE_TOPOLOGY = 0
	D3D_PRIMITIVE_TOPOLOGY_POINTLIST     D3D_PRIMITIVE_TOPOLOGY = 1
	D3D_PRIMITIVE_TOPOLOGY_LINELIST      D3D_PRIMITIVE_TOPOLOGY = 2
	D3D_PRIMITIVE_TOPOLOGY_LINESTRIP     D3D_PRIMITIVE_TOPOLOGY = 3
	D3D_PRIMITIVE_TOPOLOGY_TRIANGLELIST  D3D_PRIMITIVE_TOPOLOGY = 4
	D3D_PRIMITIVE_TOPOLOGY_TRIANGLESTRIP D3D_PRIMITIVE_TOPOLOGY = 5
)

type D3D_SHADER_MODEL uint32

const (
	D3D_SHADER_MODEL_5_1 D3D_SHADER_MODEL = 0x51
	D3D_SHADER_MODEL_6_0 D3D_SHADER_MODEL = 0x60
)

type D3D12_ROOT_SIGNATURE_VERSION uint32

const (
	D3D_ROOT_SIGNATURE_VERSION_1_0 D3D12_ROOT_SIGNATURE_VERSION = 0x1
	D3D_ROOT_SIGNATURE_VERSION_1_1 D3D12_ROOT_SIGNATURE_VERSION = 0x2
)
