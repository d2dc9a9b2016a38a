// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/types"
)

// descriptorHeap is a bump allocator over one D3D12 descriptor heap,
// grounded on the deleted teacher device.go's DescriptorHeap type. This
// back-end never frees individual descriptor slots within a heap's
// lifetime — resources live for the device's lifetime in the tested
// scenarios, matching the source's own allocator.
type descriptorHeap struct {
	heap          *d3d12.ID3D12DescriptorHeap
	heapType      d3d12.D3D12_DESCRIPTOR_HEAP_TYPE
	incrementSize uint32
	capacity      uint32
	next          atomic.Uint32
	cpuStart      d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	gpuStart      d3d12.D3D12_GPU_DESCRIPTOR_HANDLE
	shaderVisible bool
}

func newDescriptorHeap(dev *d3d12.ID3D12Device, heapType d3d12.D3D12_DESCRIPTOR_HEAP_TYPE, capacity uint32, shaderVisible bool) (*descriptorHeap, error) {
	flags := d3d12.D3D12_DESCRIPTOR_HEAP_FLAG_NONE
	if shaderVisible {
		flags = d3d12.D3D12_DESCRIPTOR_HEAP_FLAG_SHADER_VISIBLE
	}
	h, err := dev.CreateDescriptorHeap(&d3d12.D3D12_DESCRIPTOR_HEAP_DESC{
		Type:           heapType,
		NumDescriptors: capacity,
		Flags:          flags,
	})
	if err != nil {
		return nil, fmt.Errorf("dx12: CreateDescriptorHeap(%d): %w", heapType, err)
	}
	dh := &descriptorHeap{
		heap:          h,
		heapType:      heapType,
		incrementSize: dev.GetDescriptorHandleIncrementSize(heapType),
		capacity:      capacity,
		cpuStart:      h.GetCPUDescriptorHandleForHeapStart(),
		shaderVisible: shaderVisible,
	}
	if shaderVisible {
		dh.gpuStart = h.GetGPUDescriptorHandleForHeapStart()
	}
	return dh, nil
}

// allocate reserves the next free descriptor slot. Returns an error once
// the heap's fixed capacity is exhausted rather than growing it, matching
// the source's bump allocator.
func (h *descriptorHeap) allocate() (d3d12.D3D12_CPU_DESCRIPTOR_HANDLE, d3d12.D3D12_GPU_DESCRIPTOR_HANDLE, error) {
	idx := h.next.Add(1) - 1
	if idx >= h.capacity {
		return d3d12.D3D12_CPU_DESCRIPTOR_HANDLE{}, d3d12.D3D12_GPU_DESCRIPTOR_HANDLE{}, fmt.Errorf("dx12: descriptor heap type %d exhausted (capacity %d)", h.heapType, h.capacity)
	}
	cpu := h.cpuStart.Offset(int(idx), h.incrementSize)
	var gpu d3d12.D3D12_GPU_DESCRIPTOR_HANDLE
	if h.shaderVisible {
		gpu = h.gpuStart.Offset(int(idx), h.incrementSize)
	}
	return cpu, gpu, nil
}

// allocateRange reserves count contiguous descriptor slots, returning the
// base CPU/GPU handles a caller strides through with Offset. Used at
// pipeline-bind time to reserve one table region per root-signature
// category (§4.4) instead of one slot per resource.
func (h *descriptorHeap) allocateRange(count uint32) (d3d12.D3D12_CPU_DESCRIPTOR_HANDLE, d3d12.D3D12_GPU_DESCRIPTOR_HANDLE, error) {
	idx := h.next.Add(count) - count
	if idx+count > h.capacity {
		return d3d12.D3D12_CPU_DESCRIPTOR_HANDLE{}, d3d12.D3D12_GPU_DESCRIPTOR_HANDLE{}, fmt.Errorf("dx12: descriptor heap type %d exhausted (capacity %d)", h.heapType, h.capacity)
	}
	cpu := h.cpuStart.Offset(int(idx), h.incrementSize)
	var gpu d3d12.D3D12_GPU_DESCRIPTOR_HANDLE
	if h.shaderVisible {
		gpu = h.gpuStart.Offset(int(idx), h.incrementSize)
	}
	return cpu, gpu, nil
}

func (h *descriptorHeap) release() {
	if h.heap != nil {
		h.heap.Release()
	}
}

// Buffer wraps a committed D3D12 resource backing a vertex/index/uniform/
// storage/indirect buffer (§3 Buffer).
type Buffer struct {
	resource *d3d12.ID3D12Resource
	size     uint32
	usage    types.BufferUsage
	state    d3d12.D3D12_RESOURCE_STATES
	released bool
}

// TransferBuffer wraps a committed upload- or readback-heap resource used
// to stage host<->device copies (§3 Transfer buffer).
type TransferBuffer struct {
	resource  *d3d12.ID3D12Resource
	size      uint32
	direction types.TransferBufferDirection
	mapMu     sync.Mutex
	mapped    []byte
	released  bool
}

// Texture wraps a committed D3D12 resource plus the descriptor-heap
// allocations a back-end needs to bind it as a render target, depth
// target, or shader resource (§3 Texture).
type Texture struct {
	resource *d3d12.ID3D12Resource
	desc     types.TextureDescriptor
	state    d3d12.D3D12_RESOURCE_STATES
	rtv      *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	dsv      *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	srv      *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	srvGPU   d3d12.D3D12_GPU_DESCRIPTOR_HANDLE
	uav      *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	uavGPU   d3d12.D3D12_GPU_DESCRIPTOR_HANDLE
	// owned is false for swapchain back buffers, whose resource is owned
	// by the IDXGISwapChain and released by ResizeBuffers/swapchain
	// teardown instead of ReleaseTexture (design note 9.5).
	owned    bool
	released bool
}

// Sampler wraps a static description plus its allocated sampler-heap slot.
type Sampler struct {
	desc d3d12.D3D12_SAMPLER_DESC
	cpu  d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	gpu  d3d12.D3D12_GPU_DESCRIPTOR_HANDLE
}

// Shader holds compiled bytecode plus the resource-binding counts its
// owning pipeline needs for root-signature synthesis (§4.4).
type Shader struct {
	desc     types.ShaderDescriptor
	bytecode []byte
}

func bufferUsageToHeapType(usage types.BufferUsage) d3d12.D3D12_HEAP_TYPE {
	return d3d12.D3D12_HEAP_TYPE_DEFAULT
}

func bufferResourceFlags(usage types.BufferUsage) d3d12.D3D12_RESOURCE_FLAGS {
	flags := d3d12.D3D12_RESOURCE_FLAG_NONE
	if usage.Has(types.BufferUsageComputeStorageWrite) {
		flags |= d3d12.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS
	}
	return flags
}

func bufferResourceDesc(size uint32, flags d3d12.D3D12_RESOURCE_FLAGS) d3d12.D3D12_RESOURCE_DESC {
	return d3d12.D3D12_RESOURCE_DESC{
		Dimension:        d3d12.D3D12_RESOURCE_DIMENSION_BUFFER,
		Alignment:        0,
		Width:            uint64(size),
		Height:           1,
		DepthOrArraySize: 1,
		MipLevels:        1,
		Format:           d3d12.DXGI_FORMAT_UNKNOWN,
		SampleDesc:       d3d12.DXGI_SAMPLE_DESC{Count: 1, Quality: 0},
		Layout:           d3d12.D3D12_TEXTURE_LAYOUT_ROW_MAJOR,
		Flags:            flags,
	}
}

func heapProperties(heapType d3d12.D3D12_HEAP_TYPE) *d3d12.D3D12_HEAP_PROPERTIES {
	return &d3d12.D3D12_HEAP_PROPERTIES{
		Type:                 heapType,
		CPUPageProperty:      d3d12.D3D12_CPU_PAGE_PROPERTY_UNKNOWN,
		MemoryPoolPreference: d3d12.D3D12_MEMORY_POOL_UNKNOWN,
	}
}

// CreateBuffer implements hal.Device.
func (d *Device) CreateBuffer(desc *types.BufferDescriptor) (hal.Buffer, error) {
	flags := bufferResourceFlags(desc.Usage)
	rd := bufferResourceDesc(desc.Size, flags)
	state := d3d12.D3D12_RESOURCE_STATE_COMMON
	if desc.Usage.Has(types.BufferUsageVertex) || desc.Usage.Has(types.BufferUsageIndex) ||
		desc.Usage.Has(types.BufferUsageUniform) || desc.Usage.Has(types.BufferUsageIndirect) {
		state = d3d12.D3D12_RESOURCE_STATE_GENERIC_READ
	}
	res, err := d.dev.CreateCommittedResource(heapProperties(d3d12.D3D12_HEAP_TYPE_DEFAULT), d3d12.D3D12_HEAP_FLAG_NONE, &rd, state, nil)
	if err != nil {
		return nil, fmt.Errorf("dx12: CreateBuffer: %w", err)
	}
	return &Buffer{resource: res, size: desc.Size, usage: desc.Usage, state: state}, nil
}

// ReleaseBuffer implements hal.Device.
func (d *Device) ReleaseBuffer(b hal.Buffer) {
	buf, ok := b.(*Buffer)
	if !ok || buf.released {
		return
	}
	buf.released = true
	buf.resource.Release()
}

// CreateTransferBuffer implements hal.Device.
func (d *Device) CreateTransferBuffer(desc *types.TransferBufferDescriptor) (hal.TransferBuffer, error) {
	heapType := d3d12.D3D12_HEAP_TYPE_UPLOAD
	state := d3d12.D3D12_RESOURCE_STATE_GENERIC_READ
	if desc.Direction == types.TransferBufferDownload {
		heapType = d3d12.D3D12_HEAP_TYPE_READBACK
		state = d3d12.D3D12_RESOURCE_STATE_COPY_DEST
	}
	rd := bufferResourceDesc(desc.Size, d3d12.D3D12_RESOURCE_FLAG_NONE)
	res, err := d.dev.CreateCommittedResource(heapProperties(heapType), d3d12.D3D12_HEAP_FLAG_NONE, &rd, state, nil)
	if err != nil {
		return nil, fmt.Errorf("dx12: CreateTransferBuffer: %w", err)
	}
	return &TransferBuffer{resource: res, size: desc.Size, direction: desc.Direction}, nil
}

// ReleaseTransferBuffer implements hal.Device.
func (d *Device) ReleaseTransferBuffer(t hal.TransferBuffer) {
	tb, ok := t.(*TransferBuffer)
	if !ok || tb.released {
		return
	}
	tb.released = true
	tb.resource.Release()
}

// MapTransferBuffer implements hal.Device. cycle is accepted for interface
// symmetry with the ring-buffer front-end contract but has no effect here:
// this back-end allocates one fixed resource per transfer buffer rather
// than cycling between generations (§9.4 covers the analogous uniform-pool
// cycling, which this type does not need).
func (d *Device) MapTransferBuffer(t hal.TransferBuffer, cycle bool) ([]byte, error) {
	tb, ok := t.(*TransferBuffer)
	if !ok {
		return nil, fmt.Errorf("dx12: MapTransferBuffer: wrong handle type")
	}
	tb.mapMu.Lock()
	defer tb.mapMu.Unlock()
	if tb.mapped != nil {
		return tb.mapped, nil
	}
	ptr, err := tb.resource.Map(0, &d3d12.D3D12_RANGE{Begin: 0, End: 0})
	if err != nil {
		return nil, fmt.Errorf("dx12: Map: %w", err)
	}
	tb.mapped = unsafe.Slice((*byte)(ptr), int(tb.size))
	return tb.mapped, nil
}

// UnmapTransferBuffer implements hal.Device.
func (d *Device) UnmapTransferBuffer(t hal.TransferBuffer) {
	tb, ok := t.(*TransferBuffer)
	if !ok {
		return
	}
	tb.mapMu.Lock()
	defer tb.mapMu.Unlock()
	if tb.mapped == nil {
		return
	}
	var writtenRange *d3d12.D3D12_RANGE
	if tb.direction == types.TransferBufferUpload {
		writtenRange = &d3d12.D3D12_RANGE{Begin: 0, End: 0}
	}
	tb.resource.Unmap(0, writtenRange)
	tb.mapped = nil
}

func textureResourceFlags(usage types.TextureUsage) d3d12.D3D12_RESOURCE_FLAGS {
	flags := d3d12.D3D12_RESOURCE_FLAG_NONE
	if usage.Has(types.TextureUsageColorTarget) {
		flags |= d3d12.D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET
	}
	if usage.Has(types.TextureUsageDepthStencilTarget) {
		flags |= d3d12.D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL
	}
	if usage.Has(types.TextureUsageComputeStorageWrite) {
		flags |= d3d12.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS
	}
	return flags
}

// CreateTexture implements hal.Device.
func (d *Device) CreateTexture(desc *types.TextureDescriptor) (hal.Texture, error) {
	format := textureFormatToDXGI(desc.Format)
	flags := textureResourceFlags(desc.Usage)
	depthOrArray := uint16(desc.LayerCount)
	if desc.Type == types.TextureType3D {
		depthOrArray = uint16(desc.Depth)
	}
	if depthOrArray == 0 {
		depthOrArray = 1
	}
	dimension := d3d12.D3D12_RESOURCE_DIMENSION_TEXTURE2D
	if desc.Type == types.TextureType3D {
		dimension = d3d12.D3D12_RESOURCE_DIMENSION_TEXTURE3D
	}
	rd := d3d12.D3D12_RESOURCE_DESC{
		Dimension:        dimension,
		Width:            uint64(desc.Width),
		Height:           desc.Height,
		DepthOrArraySize: depthOrArray,
		MipLevels:        uint16(desc.LevelCount),
		Format:           format,
		SampleDesc:       d3d12.DXGI_SAMPLE_DESC{Count: uint32(desc.SampleCount), Quality: 0},
		Layout:           d3d12.D3D12_TEXTURE_LAYOUT_UNKNOWN,
		Flags:            flags,
	}
	if rd.MipLevels == 0 {
		rd.MipLevels = 1
	}
	if rd.SampleDesc.Count == 0 {
		rd.SampleDesc.Count = 1
	}

	state := d3d12.D3D12_RESOURCE_STATE_COMMON
	var clear *d3d12.D3D12_CLEAR_VALUE
	if desc.Usage.Has(types.TextureUsageColorTarget) {
		clear = &d3d12.D3D12_CLEAR_VALUE{Format: format}
		state = d3d12.D3D12_RESOURCE_STATE_RENDER_TARGET
	} else if desc.Usage.Has(types.TextureUsageDepthStencilTarget) {
		clear = &d3d12.D3D12_CLEAR_VALUE{Format: format}
		clear.SetDepthStencil(1.0, 0)
		state = d3d12.D3D12_RESOURCE_STATE_DEPTH_WRITE
	}

	res, err := d.dev.CreateCommittedResource(heapProperties(d3d12.D3D12_HEAP_TYPE_DEFAULT), d3d12.D3D12_HEAP_FLAG_NONE, &rd, state, clear)
	if err != nil {
		return nil, fmt.Errorf("dx12: CreateTexture: %w", err)
	}

	tex := &Texture{resource: res, desc: *desc, state: state, owned: true}
	if err := d.createTextureViews(tex); err != nil {
		res.Release()
		return nil, err
	}
	return tex, nil
}

// createTextureViews allocates the render-target, depth-stencil, and
// shader-resource descriptors a texture's declared usage requires.
func (d *Device) createTextureViews(tex *Texture) error {
	format := textureFormatToDXGI(tex.desc.Format)
	if tex.desc.Usage.Has(types.TextureUsageColorTarget) {
		cpu, _, err := d.rtvHeap.allocate()
		if err != nil {
			return err
		}
		var rtvDesc d3d12.D3D12_RENDER_TARGET_VIEW_DESC
		rtvDesc.Format = format
		rtvDesc.SetTexture2D(0, 0)
		d.dev.CreateRenderTargetView(tex.resource, &rtvDesc, cpu)
		tex.rtv = &cpu
	}
	if tex.desc.Usage.Has(types.TextureUsageDepthStencilTarget) {
		cpu, _, err := d.dsvHeap.allocate()
		if err != nil {
			return err
		}
		var dsvDesc d3d12.D3D12_DEPTH_STENCIL_VIEW_DESC
		dsvDesc.Format = format
		dsvDesc.SetTexture2D(0)
		d.dev.CreateDepthStencilView(tex.resource, &dsvDesc, cpu)
		tex.dsv = &cpu
	}
	if tex.desc.Usage.Has(types.TextureUsageSampler) || tex.desc.Usage.Has(types.TextureUsageGraphicsStorageRead) {
		cpu, gpu, err := d.viewHeap.allocate()
		if err != nil {
			return err
		}
		var srvDesc d3d12.D3D12_SHADER_RESOURCE_VIEW_DESC
		srvDesc.Format = format
		srvDesc.Shader4ComponentMapping = d3d12.D3D12_DEFAULT_SHADER_4_COMPONENT_MAPPING
		srvDesc.SetTexture2D(0, tex.desc.LevelCount, 0, 0)
		d.dev.CreateShaderResourceView(tex.resource, &srvDesc, cpu)
		tex.srv = &cpu
		tex.srvGPU = gpu
	}
	if tex.desc.Usage.Has(types.TextureUsageComputeStorageWrite) {
		cpu, gpu, err := d.viewHeap.allocate()
		if err != nil {
			return err
		}
		var uavDesc d3d12.D3D12_UNORDERED_ACCESS_VIEW_DESC
		uavDesc.Format = format
		uavDesc.SetTexture2D(0, 0)
		d.dev.CreateUnorderedAccessView(tex.resource, nil, &uavDesc, cpu)
		tex.uav = &cpu
		tex.uavGPU = gpu
	}
	return nil
}

// ReleaseTexture implements hal.Device.
func (d *Device) ReleaseTexture(t hal.Texture) {
	tex, ok := t.(*Texture)
	if !ok || tex.released {
		return
	}
	tex.released = true
	if tex.owned {
		tex.resource.Release()
	}
}

// CreateSampler implements hal.Device.
func (d *Device) CreateSampler(desc *types.SamplerDescriptor) (hal.Sampler, error) {
	cpu, gpu, err := d.samplerHeap.allocate()
	if err != nil {
		return nil, err
	}
	sd := d3d12.D3D12_SAMPLER_DESC{
		Filter:        filterToD3D12(desc.MinFilter, desc.MagFilter, desc.MipmapMode, desc.MaxAnisotropy > 1),
		AddressU:      addressModeToD3D12(desc.AddressModeU),
		AddressV:      addressModeToD3D12(desc.AddressModeV),
		AddressW:      addressModeToD3D12(desc.AddressModeW),
		MipLODBias:    desc.MipLodBias,
		MaxAnisotropy: uint32(desc.MaxAnisotropy),
		MinLOD:        desc.MinLod,
		MaxLOD:        desc.MaxLod,
	}
	if desc.CompareEnable {
		sd.ComparisonFunc = compareOpToD3D12(desc.CompareOp)
	} else {
		sd.ComparisonFunc = d3d12.D3D12_COMPARISON_FUNC_ALWAYS
	}
	d.dev.CreateSampler(&sd, cpu)
	return &Sampler{desc: sd, cpu: cpu, gpu: gpu}, nil
}

// ReleaseSampler implements hal.Device. Sampler descriptor slots are never
// individually reclaimed, matching descriptorHeap's bump-allocator design.
func (d *Device) ReleaseSampler(hal.Sampler) {}

// SetBufferName and SetTextureName are debug-only no-ops: the retained
// d3d12 bindings do not expose ID3D12Object.SetName, and no SPEC_FULL.md
// component reads a resource's debug name back.
func (d *Device) SetBufferName(hal.Buffer, string)   {}
func (d *Device) SetTextureName(hal.Texture, string) {}
