// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

// ShaderStage identifies the pipeline stage a shader targets.
type ShaderStage uint8

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
	ShaderStageCompute
)

// ShaderFormat is a bitset of accepted shader source/bytecode formats (§6
// "Configuration with recognized options" and the shader bundle contract).
type ShaderFormat uint32

const (
	// ShaderFormatSecret accepts an opaque, back-end-defined blob.
	ShaderFormatSecret ShaderFormat = 1 << iota
	// ShaderFormatSPIRV accepts SPIR-V bytecode.
	ShaderFormatSPIRV
	// ShaderFormatDXBC accepts DirectX bytecode (SM5.0/5.1).
	ShaderFormatDXBC
	// ShaderFormatDXIL accepts DirectX intermediate language (SM6+).
	ShaderFormatDXIL
	// ShaderFormatMSL accepts Metal Shading Language source.
	ShaderFormatMSL
	// ShaderFormatMetalLib accepts a pre-compiled Metal library.
	ShaderFormatMetalLib
	// ShaderFormatHLSL accepts HLSL source text, compiled on ingest.
	ShaderFormatHLSL
)

// Contains reports whether the bitset contains format.
func (s ShaderFormat) Contains(format ShaderFormat) bool { return s&format != 0 }

// ShaderDescriptor is the portable create-info for a shader (§3, §6). Code
// holds either HLSL source text (Format == ShaderFormatHLSL) or a
// pre-compiled blob in one of the other formats; the D3D12 back-end
// compiles HLSL on ingest and copies pre-compiled DXBC/DXIL verbatim (§4.4).
type ShaderDescriptor struct {
	Label               string
	Code                []byte
	EntryPoint          string
	Format              ShaderFormat
	Stage               ShaderStage
	SamplerCount        uint32
	StorageTextureCount uint32
	StorageBufferCount  uint32
	UniformBufferCount  uint32
}
