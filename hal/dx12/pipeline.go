// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"unsafe"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/hal/dx12/d3dcompile"
	"github.com/novagfx/gfx/types"
)

// rootSignatureLayout records the per-category table slot each bound
// pipeline needs, synthesized in the fixed order CBV, SRV, UAV-buffer,
// UAV-texture, SAMPLER (§4.4) — one descriptor table root parameter per
// non-empty category rather than one table per individual resource.
//
// The SRV table holds two contiguous regions: sampled textures (bound by
// BindVertexSamplers/BindFragmentSamplers, read together with a sampler
// object) at [0, srvSampledCount), followed by read-only storage textures
// (bound by BindVertexStorageTextures/BindFragmentStorageTextures) at
// [srvSampledCount, srvCount). srvSampledCount records that boundary.
type rootSignatureLayout struct {
	sig *d3d12.ID3D12RootSignature

	// Root-parameter index for each category's descriptor table, or -1 if
	// the pipeline's shaders declare no resources of that category.
	cbvTableIndex int
	srvTableIndex int
	uavBufIndex   int
	uavTexIndex   int
	samplerIndex  int

	cbvCount      uint32
	srvCount      uint32
	srvSampledCount uint32
	uavBufCount   uint32
	uavTexCount   uint32
	samplerCount  uint32
}

// rootSignatureCounts is the per-category resource count a pipeline's
// root signature is synthesized from (§4.4).
type rootSignatureCounts struct {
	Uniform      uint32 // CBV table
	SampledTex   uint32 // SRV table (paired 1:1 with Sampler)
	StorageTexRO uint32 // SRV table, after SampledTex
	StorageBuf   uint32 // UAV-buffer table (read-write storage buffers)
	StorageTexRW uint32 // UAV-texture table (read-write storage textures)
	Sampler      uint32 // SAMPLER table
}

// GraphicsPipeline wraps a compiled PSO plus the root-signature layout its
// bind calls address.
type GraphicsPipeline struct {
	pso       *d3d12.ID3D12PipelineState
	layout    *rootSignatureLayout
	topology  d3d12.D3D_PRIMITIVE_TOPOLOGY
	colorCount int
}

// ComputePipeline wraps a compiled compute PSO plus its root-signature
// layout.
type ComputePipeline struct {
	pso    *d3d12.ID3D12PipelineState
	layout *rootSignatureLayout
}

func buildRootSignatureLayout(dev *Device, counts rootSignatureCounts) (*rootSignatureLayout, error) {
	srvCount := counts.SampledTex + counts.StorageTexRO
	if counts.Uniform == 0 && srvCount == 0 && counts.StorageTexRW == 0 && counts.StorageBuf == 0 && counts.Sampler == 0 {
		sig, err := dev.getOrCreateEmptyRootSignature()
		if err != nil {
			return nil, err
		}
		return &rootSignatureLayout{sig: sig}, nil
	}

	var ranges []d3d12.D3D12_DESCRIPTOR_RANGE
	var params []d3d12.D3D12_ROOT_PARAMETER
	layout := &rootSignatureLayout{cbvTableIndex: -1, srvTableIndex: -1, uavBufIndex: -1, uavTexIndex: -1, samplerIndex: -1}

	addTable := func(rangeType d3d12.D3D12_DESCRIPTOR_RANGE_TYPE, count uint32) int {
		ranges = append(ranges, d3d12.D3D12_DESCRIPTOR_RANGE{
			RangeType:                         rangeType,
			NumDescriptors:                    count,
			BaseShaderRegister:                0,
			RegisterSpace:                     0,
			OffsetInDescriptorsFromTableStart: 0xffffffff, // D3D12_DESCRIPTOR_RANGE_OFFSET_APPEND
		})
		idx := len(params)
		var param d3d12.D3D12_ROOT_PARAMETER
		param.ParameterType = d3d12.D3D12_ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE
		param.ShaderVisibility = d3d12.D3D12_SHADER_VISIBILITY_ALL
		params = append(params, param)
		return idx
	}

	if counts.Uniform > 0 {
		layout.cbvTableIndex = addTable(d3d12.D3D12_DESCRIPTOR_RANGE_TYPE_CBV, counts.Uniform)
		layout.cbvCount = counts.Uniform
	}
	if srvCount > 0 {
		layout.srvTableIndex = addTable(d3d12.D3D12_DESCRIPTOR_RANGE_TYPE_SRV, srvCount)
		layout.srvCount = srvCount
		layout.srvSampledCount = counts.SampledTex
	}
	if counts.StorageBuf > 0 {
		layout.uavBufIndex = addTable(d3d12.D3D12_DESCRIPTOR_RANGE_TYPE_UAV, counts.StorageBuf)
		layout.uavBufCount = counts.StorageBuf
	}
	if counts.StorageTexRW > 0 {
		layout.uavTexIndex = addTable(d3d12.D3D12_DESCRIPTOR_RANGE_TYPE_UAV, counts.StorageTexRW)
		layout.uavTexCount = counts.StorageTexRW
	}
	if counts.Sampler > 0 {
		layout.samplerIndex = addTable(d3d12.D3D12_DESCRIPTOR_RANGE_TYPE_SAMPLER, counts.Sampler)
		layout.samplerCount = counts.Sampler
	}

	// Wire each root parameter's descriptor-table union to its matching
	// range entry now that the ranges slice has its final backing array.
	for i := range params {
		setRootParameterDescriptorTable(&params[i], &ranges[i])
	}

	desc := d3d12.D3D12_ROOT_SIGNATURE_DESC{
		NumParameters: uint32(len(params)),
		Flags:         d3d12.D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT,
	}
	if len(params) > 0 {
		desc.Parameters = &params[0]
	}

	blob, errBlob, err := dev.d3d12Lib.SerializeRootSignature(&desc, d3d12.D3D_ROOT_SIGNATURE_VERSION_1_0)
	if err != nil {
		if errBlob != nil {
			errBlob.Release()
		}
		return nil, fmt.Errorf("dx12: SerializeRootSignature: %w", err)
	}
	defer blob.Release()

	sig, err := dev.dev.CreateRootSignature(0, blob.GetBufferPointer(), blob.GetBufferSize())
	if err != nil {
		return nil, fmt.Errorf("dx12: CreateRootSignature: %w", err)
	}
	layout.sig = sig
	return layout, nil
}

// CreateShader implements hal.Device. Pre-compiled bytecode (DXBC/DXIL)
// passes through unchanged; HLSL source is compiled via d3dcompiler_47.dll
// (§4.2's back-end owns ingestion of whichever formats it advertises).
func (d *Device) CreateShader(desc *types.ShaderDescriptor) (hal.Shader, error) {
	code := desc.Code
	if desc.Format.Contains(types.ShaderFormatHLSL) {
		target := d3dcompile.TargetVS51
		switch desc.Stage {
		case types.ShaderStageFragment:
			target = d3dcompile.TargetPS51
		case types.ShaderStageCompute:
			target = d3dcompile.TargetCS51
		}
		lib, err := d3dcompile.Load()
		if err != nil {
			return nil, fmt.Errorf("dx12: %w", err)
		}
		compiled, err := lib.Compile(string(code), desc.EntryPoint, target)
		if err != nil {
			return nil, fmt.Errorf("dx12: HLSL compile: %w", err)
		}
		code = compiled
	}
	return &Shader{desc: *desc, bytecode: code}, nil
}

// ReleaseShader implements hal.Device. Shader bytecode has no native
// handle once a pipeline is built from it; releasing is a no-op on the
// wrapper's garbage-collected slice.
func (d *Device) ReleaseShader(hal.Shader) {}

func vertexAttributesToInputLayout(input types.VertexInputState) ([]d3d12.D3D12_INPUT_ELEMENT_DESC, []*byte) {
	elements := make([]d3d12.D3D12_INPUT_ELEMENT_DESC, 0, len(input.Attributes))
	semantics := make([]*byte, 0, len(input.Attributes))
	for _, attr := range input.Attributes {
		var buf types.VertexBufferDescription
		for _, b := range input.Buffers {
			if b.Slot == attr.BufferSlot {
				buf = b
				break
			}
		}
		class := d3d12.D3D12_INPUT_CLASSIFICATION_PER_VERTEX_DATA
		stepRate := uint32(0)
		if buf.InputRate == types.VertexInputRateInstance {
			class = d3d12.D3D12_INPUT_CLASSIFICATION_PER_INSTANCE_DATA
			stepRate = buf.StepRate
			if stepRate == 0 {
				stepRate = 1
			}
		}
		// Every attribute is surfaced to HLSL as TEXCOORD<Location> (§3
		// VertexAttribute), so the semantic name is fixed and shared.
		name := []byte("TEXCOORD\x00")
		namePtr := &name[0]
		semantics = append(semantics, namePtr)
		elements = append(elements, d3d12.D3D12_INPUT_ELEMENT_DESC{
			SemanticName:         namePtr,
			SemanticIndex:        attr.Location,
			Format:               vertexElementFormatToDXGI(attr.Format),
			InputSlot:            attr.BufferSlot,
			AlignedByteOffset:    attr.Offset,
			InputSlotClass:       class,
			InstanceDataStepRate: stepRate,
		})
	}
	return elements, semantics
}

// CreateGraphicsPipeline implements hal.Device.
func (d *Device) CreateGraphicsPipeline(desc *types.GraphicsPipelineDescriptor, vs, fs hal.Shader) (hal.GraphicsPipeline, error) {
	vsw, ok := vs.(*Shader)
	if !ok {
		return nil, fmt.Errorf("dx12: CreateGraphicsPipeline: wrong vertex shader handle type")
	}
	fsw, ok := fs.(*Shader)
	if !ok {
		return nil, fmt.Errorf("dx12: CreateGraphicsPipeline: wrong fragment shader handle type")
	}

	// §4.4: "Graphics pipelines use the element-wise maximum of vertex and
	// fragment counts when synthesizing a shared signature" — both stages
	// bind through the same tables, so the table is sized to whichever
	// stage needs more, not the sum of both.
	sampledTexCount := maxU32(vsw.desc.SamplerCount, fsw.desc.SamplerCount)
	storageTexROCount := maxU32(vsw.desc.StorageTextureCount, fsw.desc.StorageTextureCount)
	storageBufCount := maxU32(vsw.desc.StorageBufferCount, fsw.desc.StorageBufferCount)
	uniformCount := maxU32(vsw.desc.UniformBufferCount, fsw.desc.UniformBufferCount)

	layout, err := buildRootSignatureLayout(d, rootSignatureCounts{
		Uniform:      uniformCount,
		SampledTex:   sampledTexCount,
		StorageTexRO: storageTexROCount,
		StorageBuf:   storageBufCount,
		// A sampled texture's SRV is always read together with a sampler
		// object (§3 VertexAttribute/Sampler pairing), so the SAMPLER table
		// is sized the same as the sampled-texture region of the SRV table.
		Sampler: sampledTexCount,
	})
	if err != nil {
		return nil, err
	}

	elements, _ := vertexAttributesToInputLayout(desc.VertexInput)

	var rtvFormats [8]d3d12.DXGI_FORMAT
	var blendState d3d12.D3D12_BLEND_DESC
	for i, ct := range desc.ColorTargets {
		if i >= 8 {
			break
		}
		rtvFormats[i] = textureFormatToDXGI(ct.Format)
		rt := &blendState.RenderTarget[i]
		rt.BlendEnable = boolToI32(ct.BlendEnable)
		rt.SrcBlend = blendFactorToD3D12Color(ct.SrcColorBlendFactor)
		rt.DestBlend = blendFactorToD3D12Color(ct.DstColorBlendFactor)
		rt.BlendOp = blendOpToD3D12(ct.ColorBlendOp)
		rt.SrcBlendAlpha = blendFactorToD3D12Alpha(ct.SrcAlphaBlendFactor)
		rt.DestBlendAlpha = blendFactorToD3D12Alpha(ct.DstAlphaBlendFactor)
		rt.BlendOpAlpha = blendOpToD3D12(ct.AlphaBlendOp)
		rt.RenderTargetWriteMask = uint8(ct.WriteMask)
	}

	depthStencil := d3d12.D3D12_DEPTH_STENCIL_DESC{
		DepthEnable:      boolToI32(desc.DepthStencil.DepthTestEnable),
		DepthWriteMask:   depthWriteMask(desc.DepthStencil.DepthWriteEnable),
		DepthFunc:        compareOpToD3D12(desc.DepthStencil.DepthCompareOp),
		StencilEnable:    boolToI32(desc.DepthStencil.StencilTestEnable),
		StencilReadMask:  uint8(desc.DepthStencil.StencilReadMask),
		StencilWriteMask: uint8(desc.DepthStencil.StencilWriteMask),
		FrontFace: d3d12.D3D12_DEPTH_STENCILOP_DESC{
			StencilFailOp:      stencilOpToD3D12(desc.DepthStencil.Front.FailOp),
			StencilDepthFailOp: stencilOpToD3D12(desc.DepthStencil.Front.DepthFailOp),
			StencilPassOp:      stencilOpToD3D12(desc.DepthStencil.Front.PassOp),
			StencilFunc:        compareOpToD3D12(desc.DepthStencil.Front.CompareOp),
		},
		BackFace: d3d12.D3D12_DEPTH_STENCILOP_DESC{
			StencilFailOp:      stencilOpToD3D12(desc.DepthStencil.Back.FailOp),
			StencilDepthFailOp: stencilOpToD3D12(desc.DepthStencil.Back.DepthFailOp),
			StencilPassOp:      stencilOpToD3D12(desc.DepthStencil.Back.PassOp),
			StencilFunc:        compareOpToD3D12(desc.DepthStencil.Back.CompareOp),
		},
	}

	topology, topologyType := primitiveTypeToD3D12(desc.PrimitiveType)

	psoDesc := d3d12.D3D12_GRAPHICS_PIPELINE_STATE_DESC{
		RootSignature: layout.sig,
		VS:            d3d12.D3D12_SHADER_BYTECODE{ShaderBytecode: bytesPointer(vsw.bytecode), BytecodeLength: uintptr(len(vsw.bytecode))},
		PS:            d3d12.D3D12_SHADER_BYTECODE{ShaderBytecode: bytesPointer(fsw.bytecode), BytecodeLength: uintptr(len(fsw.bytecode))},
		BlendState:    blendState,
		SampleMask:    0xffffffff,
		RasterizerState: d3d12.D3D12_RASTERIZER_DESC{
			FillMode:        fillModeToD3D12(desc.Rasterizer.FillMode),
			CullMode:        cullModeToD3D12(desc.Rasterizer.CullMode),
			FrontCounterClockwise: boolToI32(desc.Rasterizer.FrontFace == types.FrontFaceCCW),
			DepthBias:       int32(desc.Rasterizer.DepthBiasConstantFactor),
			DepthBiasClamp:  desc.Rasterizer.DepthBiasClamp,
			SlopeScaledDepthBias: desc.Rasterizer.DepthBiasSlopeFactor,
			DepthClipEnable: 1,
		},
		DepthStencilState: depthStencil,
		PrimitiveTopologyType: topologyType,
		NumRenderTargets:      uint32(len(desc.ColorTargets)),
		RTVFormats:            rtvFormats,
		SampleDesc:            d3d12.DXGI_SAMPLE_DESC{Count: uint32(desc.SampleCount), Quality: 0},
		IBStripCutValue:       d3d12.D3D12_INDEX_BUFFER_STRIP_CUT_VALUE_DISABLED,
	}
	if psoDesc.SampleDesc.Count == 0 {
		psoDesc.SampleDesc.Count = 1
	}
	if len(elements) > 0 {
		psoDesc.InputLayout = d3d12.D3D12_INPUT_LAYOUT_DESC{InputElementDescs: &elements[0], NumElements: uint32(len(elements))}
	}
	if desc.HasDepthStencil {
		psoDesc.DSVFormat = textureFormatToDXGI(desc.DepthStencil.Format)
	}

	pso, err := d.dev.CreateGraphicsPipelineState(&psoDesc)
	if err != nil {
		if layout.sig != d.emptyRootSignature {
			layout.sig.Release()
		}
		return nil, fmt.Errorf("dx12: CreateGraphicsPipelineState: %w", err)
	}

	return &GraphicsPipeline{pso: pso, layout: layout, topology: topology, colorCount: len(desc.ColorTargets)}, nil
}

// ReleaseGraphicsPipeline implements hal.Device.
func (d *Device) ReleaseGraphicsPipeline(gp hal.GraphicsPipeline) {
	p, ok := gp.(*GraphicsPipeline)
	if !ok {
		return
	}
	p.pso.Release()
	if p.layout.sig != d.emptyRootSignature {
		p.layout.sig.Release()
	}
}

// CreateComputePipeline implements hal.Device.
func (d *Device) CreateComputePipeline(desc *types.ComputePipelineDescriptor, cs hal.Shader) (hal.ComputePipeline, error) {
	csw, ok := cs.(*Shader)
	if !ok {
		return nil, fmt.Errorf("dx12: CreateComputePipeline: wrong compute shader handle type")
	}

	// Compute pipelines have no sampled textures or SAMPLER table (no
	// BindComputeSamplers exists, §4.5); read-only storage textures are
	// real SRVs, read-write ones are real UAVs (§4.4/§6).
	layout, err := buildRootSignatureLayout(d, rootSignatureCounts{
		Uniform:      desc.UniformBuffers,
		StorageTexRO: desc.ReadOnlyStorageTextures,
		StorageTexRW: desc.ReadWriteStorageTextures,
		StorageBuf:   desc.ReadOnlyStorageBuffers + desc.ReadWriteStorageBuffers,
	})
	if err != nil {
		return nil, err
	}

	psoDesc := d3d12.D3D12_COMPUTE_PIPELINE_STATE_DESC{
		RootSignature: layout.sig,
		CS:            d3d12.D3D12_SHADER_BYTECODE{ShaderBytecode: bytesPointer(csw.bytecode), BytecodeLength: uintptr(len(csw.bytecode))},
	}
	pso, err := d.dev.CreateComputePipelineState(&psoDesc)
	if err != nil {
		if layout.sig != d.emptyRootSignature {
			layout.sig.Release()
		}
		return nil, fmt.Errorf("dx12: CreateComputePipelineState: %w", err)
	}
	return &ComputePipeline{pso: pso, layout: layout}, nil
}

// ReleaseComputePipeline implements hal.Device.
func (d *Device) ReleaseComputePipeline(cp hal.ComputePipeline) {
	p, ok := cp.(*ComputePipeline)
	if !ok {
		return
	}
	p.pso.Release()
	if p.layout.sig != d.emptyRootSignature {
		p.layout.sig.Release()
	}
}

func boolToI32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func depthWriteMask(enable bool) d3d12.D3D12_DEPTH_WRITE_MASK {
	if enable {
		return d3d12.D3D12_DEPTH_WRITE_MASK_ALL
	}
	return d3d12.D3D12_DEPTH_WRITE_MASK_ZERO
}

// setRootParameterDescriptorTable writes a D3D12_ROOT_DESCRIPTOR_TABLE into
// a root parameter's union field. The retrieved D3D12_ROOT_PARAMETER type
// models the union as a raw byte array (matching the native C union
// layout), so there is no typed setter to call — this mirrors the pattern
// view_helpers.go already uses for the SRV/RTV/DSV/clear-value unions.
func setRootParameterDescriptorTable(param *d3d12.D3D12_ROOT_PARAMETER, firstRange *d3d12.D3D12_DESCRIPTOR_RANGE) {
	table := (*d3d12.D3D12_ROOT_DESCRIPTOR_TABLE)(unsafe.Pointer(&param.Union[0]))
	table.NumDescriptorRanges = 1
	table.DescriptorRanges = firstRange
}

func bytesPointer(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
