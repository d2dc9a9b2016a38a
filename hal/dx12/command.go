// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/types"
)

const allSubresources = 0xffffffff

// bindTable is one allocated, shader-visible descriptor-table region a
// pipeline's category (CBV, SRV, UAV-buffer, UAV-texture, SAMPLER) writes
// individual resource views into (via CopyDescriptorsSimple, or
// CreateConstantBufferView for pushed uniform data) before a draw or
// dispatch reads them.
type bindTable struct {
	cpuBase d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	gpuBase d3d12.D3D12_GPU_DESCRIPTOR_HANDLE
	stride  uint32
}

// CommandList wraps one recorded D3D12 command list plus the state a
// single in-flight recording needs to satisfy hal.Device's render/compute/
// copy pass contract (§4.3, §4.5).
type CommandList struct {
	dev       *Device
	allocator *d3d12.ID3D12CommandAllocator
	list      *d3d12.ID3D12GraphicsCommandList

	graphicsLayout *rootSignatureLayout
	computeLayout  *rootSignatureLayout
	graphicsTables [5]bindTable // cbv, srv, uavBuf, uavTex, sampler
	computeTables  [5]bindTable

	colorTargets []*Texture
	depthTarget  *Texture

	acquiredWindows []*Window
	uniformBlocks   []*uniformBlock
}

// AcquireCommandList implements hal.Device.
func (d *Device) AcquireCommandList() (hal.CommandList, error) {
	alloc, err := d.dev.CreateCommandAllocator(d3d12.D3D12_COMMAND_LIST_TYPE_DIRECT)
	if err != nil {
		return nil, fmt.Errorf("dx12: CreateCommandAllocator: %w", err)
	}
	list, err := d.dev.CreateCommandList(0, d3d12.D3D12_COMMAND_LIST_TYPE_DIRECT, alloc, nil)
	if err != nil {
		alloc.Release()
		return nil, fmt.Errorf("dx12: CreateCommandList: %w", err)
	}
	heaps := []*d3d12.ID3D12DescriptorHeap{d.viewHeap.heap, d.samplerHeap.heap}
	list.SetDescriptorHeaps(uint32(len(heaps)), &heaps[0])
	return &CommandList{dev: d, allocator: alloc, list: list}, nil
}

func (cl *CommandList) release() {
	cl.list.Release()
	cl.allocator.Release()
}

// Submit implements hal.Device.
func (d *Device) Submit(c hal.CommandList) error {
	cl, ok := c.(*CommandList)
	if !ok {
		return fmt.Errorf("dx12: Submit: wrong command list handle type")
	}
	if err := cl.list.Close(); err != nil {
		return fmt.Errorf("dx12: command list Close: %w", err)
	}
	lists := []*d3d12.ID3D12GraphicsCommandList{cl.list}
	d.queue.ExecuteCommandLists(uint32(len(lists)), &lists[0])

	for _, w := range cl.acquiredWindows {
		syncInterval, flags := presentModeToSyncInterval(w.presentMode)
		_ = w.swapchain.Present(syncInterval, flags)
	}

	d.fenceMu.Lock()
	d.fenceValue++
	fenceValue := d.fenceValue
	if err := d.queue.Signal(d.fence, fenceValue); err != nil {
		d.fenceMu.Unlock()
		cl.release()
		return fmt.Errorf("dx12: Signal: %w", err)
	}
	d.fenceMu.Unlock()

	d.recycleUniformBlocks(fenceValue, cl.uniformBlocks)
	cl.release()
	return nil
}

// SubmitAndAcquireFence implements hal.Device.
func (d *Device) SubmitAndAcquireFence(c hal.CommandList) (hal.Fence, error) {
	cl, ok := c.(*CommandList)
	if !ok {
		return nil, fmt.Errorf("dx12: SubmitAndAcquireFence: wrong command list handle type")
	}
	if err := cl.list.Close(); err != nil {
		return nil, fmt.Errorf("dx12: command list Close: %w", err)
	}
	lists := []*d3d12.ID3D12GraphicsCommandList{cl.list}
	d.queue.ExecuteCommandLists(uint32(len(lists)), &lists[0])

	for _, w := range cl.acquiredWindows {
		syncInterval, flags := presentModeToSyncInterval(w.presentMode)
		_ = w.swapchain.Present(syncInterval, flags)
	}

	d.fenceMu.Lock()
	d.fenceValue++
	fenceValue := d.fenceValue
	// The fence counter always advances, even when Signal itself fails
	// (design note 9.6), so a caller's fence-value bookkeeping never skews
	// relative to the device's.
	signalErr := d.queue.Signal(d.fence, fenceValue)
	d.fenceMu.Unlock()

	d.recycleUniformBlocks(fenceValue, cl.uniformBlocks)
	cl.release()
	if signalErr != nil {
		return nil, fmt.Errorf("dx12: Signal: %w", signalErr)
	}
	return &fenceHandle{dev: d, value: fenceValue}, nil
}

type fenceHandle struct {
	dev   *Device
	value uint64
}

// pendingUniformRelease defers returning a command list's uniform blocks
// to the size-classed free list (design note 9.4) until the GPU has
// finished reading them, tracked by the fence value that command list's
// submission signaled.
type pendingUniformRelease struct {
	fenceValue uint64
	blocks     []*uniformBlock
}

func (d *Device) recycleUniformBlocks(fenceValue uint64, blocks []*uniformBlock) {
	if len(blocks) == 0 {
		return
	}
	d.pendingMu.Lock()
	d.pendingReleases = append(d.pendingReleases, pendingUniformRelease{fenceValue: fenceValue, blocks: blocks})
	d.reapPendingLocked()
	d.pendingMu.Unlock()
}

// reapPendingLocked returns every pending block whose signaling submission
// the GPU has already completed back to the uniform pool. Caller holds
// pendingMu.
func (d *Device) reapPendingLocked() {
	completed := d.fence.GetCompletedValue()
	kept := d.pendingReleases[:0]
	for _, p := range d.pendingReleases {
		if p.fenceValue <= completed {
			for _, b := range p.blocks {
				d.uniforms.release(b)
			}
		} else {
			kept = append(kept, p)
		}
	}
	d.pendingReleases = kept
}

// InsertDebugLabel implements hal.Device.
func (d *Device) InsertDebugLabel(c hal.CommandList, label string) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	data := utf16Bytes(label)
	cl.list.SetMarker(0, bytesPointer(data), uint32(len(data)))
}

// PushDebugGroup implements hal.Device.
func (d *Device) PushDebugGroup(c hal.CommandList, label string) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	data := utf16Bytes(label)
	cl.list.BeginEvent(0, bytesPointer(data), uint32(len(data)))
}

// PopDebugGroup implements hal.Device.
func (d *Device) PopDebugGroup(c hal.CommandList) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	cl.list.EndEvent()
}

func utf16Bytes(s string) []byte {
	// PIX markers expect a UTF-16LE, NUL-terminated event name.
	runes := []rune(s)
	buf := make([]byte, 0, (len(runes)+1)*2)
	for _, r := range runes {
		if r > 0xFFFF {
			r -= 0x10000
			hi, lo := 0xD800+(r>>10), 0xDC00+(r&0x3FF)
			buf = append(buf, byte(hi), byte(hi>>8), byte(lo), byte(lo>>8))
			continue
		}
		buf = append(buf, byte(r), byte(r>>8))
	}
	return append(buf, 0, 0)
}

func (cl *CommandList) transitionTexture(tex *Texture, newState d3d12.D3D12_RESOURCE_STATES) {
	if tex.state == newState {
		return
	}
	barrier := d3d12.NewTransitionBarrier(tex.resource, tex.state, newState, allSubresources)
	cl.list.ResourceBarrier(1, &barrier)
	tex.state = newState
}

func (cl *CommandList) transitionBuffer(buf *Buffer, newState d3d12.D3D12_RESOURCE_STATES) {
	if buf.state == newState {
		return
	}
	barrier := d3d12.NewTransitionBarrier(buf.resource, buf.state, newState, allSubresources)
	cl.list.ResourceBarrier(1, &barrier)
	buf.state = newState
}

// BeginRenderPass implements hal.Device (§4.5).
func (d *Device) BeginRenderPass(c hal.CommandList, color []hal.ColorAttachment, depthStencil *hal.DepthStencilAttachment) error {
	cl, ok := c.(*CommandList)
	if !ok {
		return fmt.Errorf("dx12: BeginRenderPass: wrong command list handle type")
	}

	rtvHandles := make([]d3d12.D3D12_CPU_DESCRIPTOR_HANDLE, 0, len(color))
	cl.colorTargets = cl.colorTargets[:0]
	for _, att := range color {
		tex, ok := att.Texture.(*Texture)
		if !ok || tex.rtv == nil {
			return fmt.Errorf("dx12: BeginRenderPass: color attachment has no render-target view")
		}
		cl.transitionTexture(tex, d3d12.D3D12_RESOURCE_STATE_RENDER_TARGET)
		if att.LoadOp == types.LoadOpClear {
			c4 := [4]float32{att.ClearColor.R, att.ClearColor.G, att.ClearColor.B, att.ClearColor.A}
			cl.list.ClearRenderTargetView(*tex.rtv, &c4, 0, nil)
		}
		rtvHandles = append(rtvHandles, *tex.rtv)
		cl.colorTargets = append(cl.colorTargets, tex)
	}

	var dsvHandle *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	cl.depthTarget = nil
	if depthStencil != nil {
		tex, ok := depthStencil.Texture.(*Texture)
		if !ok || tex.dsv == nil {
			return fmt.Errorf("dx12: BeginRenderPass: depth attachment has no depth-stencil view")
		}
		cl.transitionTexture(tex, d3d12.D3D12_RESOURCE_STATE_DEPTH_WRITE)
		flags := d3d12.D3D12_CLEAR_FLAG_DEPTH | d3d12.D3D12_CLEAR_FLAG_STENCIL
		if depthStencil.LoadOp == types.LoadOpClear || depthStencil.StencilLoadOp == types.LoadOpClear {
			cl.list.ClearDepthStencilView(*tex.dsv, flags, depthStencil.ClearDepth, depthStencil.ClearStencil, 0, nil)
		}
		dsvHandle = tex.dsv
		cl.depthTarget = tex
	}

	var rtvPtr *d3d12.D3D12_CPU_DESCRIPTOR_HANDLE
	if len(rtvHandles) > 0 {
		rtvPtr = &rtvHandles[0]
	}
	cl.list.OMSetRenderTargets(uint32(len(rtvHandles)), rtvPtr, 0, dsvHandle)
	return nil
}

// EndRenderPass implements hal.Device. Color targets that are swapchain
// back buffers transition to PRESENT so Submit's Present call is valid;
// owned render targets relax to COMMON (§3 texture usage invariants — a
// texture leaves a pass in a state any later pass can transition out of).
func (d *Device) EndRenderPass(c hal.CommandList) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	for _, tex := range cl.colorTargets {
		if !tex.owned {
			cl.transitionTexture(tex, d3d12.D3D12_RESOURCE_STATE_PRESENT)
		} else {
			cl.transitionTexture(tex, d3d12.D3D12_RESOURCE_STATE_COMMON)
		}
	}
	cl.colorTargets = nil
	cl.depthTarget = nil
}

// SetViewport implements hal.Device.
func (d *Device) SetViewport(c hal.CommandList, vp hal.Viewport) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	v := d3d12.D3D12_VIEWPORT{TopLeftX: vp.X, TopLeftY: vp.Y, Width: vp.Width, Height: vp.Height, MinDepth: vp.MinDepth, MaxDepth: vp.MaxDepth}
	cl.list.RSSetViewports(1, &v)
}

// SetScissor implements hal.Device.
func (d *Device) SetScissor(c hal.CommandList, rect hal.Rect2D) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	r := d3d12.D3D12_RECT{Left: rect.X, Top: rect.Y, Right: rect.X + rect.Width, Bottom: rect.Y + rect.Height}
	cl.list.RSSetScissorRects(1, &r)
}

// allocateBindTables reserves fresh, shader-visible descriptor ranges for
// every non-empty category in a pipeline's root signature. Table order is
// cbv, srv, uavBuf, uavTex, sampler (§4.4); the first four live in the
// CBV_SRV_UAV heap, the sampler table in the dedicated sampler heap.
func allocateBindTables(dev *Device, layout *rootSignatureLayout) ([5]bindTable, error) {
	var tables [5]bindTable
	counts := [5]uint32{layout.cbvCount, layout.srvCount, layout.uavBufCount, layout.uavTexCount, layout.samplerCount}
	for i, count := range counts {
		if count == 0 {
			continue
		}
		heap := dev.viewHeap
		if i == 4 {
			heap = dev.samplerHeap
		}
		cpu, gpu, err := heap.allocateRange(count)
		if err != nil {
			return tables, err
		}
		tables[i] = bindTable{cpuBase: cpu, gpuBase: gpu, stride: heap.incrementSize}
	}
	return tables, nil
}

func bindRootTables(list *d3d12.ID3D12GraphicsCommandList, layout *rootSignatureLayout, tables [5]bindTable, compute bool) {
	set := func(paramIndex int, gpu d3d12.D3D12_GPU_DESCRIPTOR_HANDLE) {
		if paramIndex < 0 {
			return
		}
		if compute {
			list.SetComputeRootDescriptorTable(uint32(paramIndex), gpu)
		} else {
			list.SetGraphicsRootDescriptorTable(uint32(paramIndex), gpu)
		}
	}
	set(layout.cbvTableIndex, tables[0].gpuBase)
	set(layout.srvTableIndex, tables[1].gpuBase)
	set(layout.uavBufIndex, tables[2].gpuBase)
	set(layout.uavTexIndex, tables[3].gpuBase)
	set(layout.samplerIndex, tables[4].gpuBase)
}

// BindGraphicsPipeline implements hal.Device.
func (d *Device) BindGraphicsPipeline(c hal.CommandList, p hal.GraphicsPipeline) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	pipe, ok := p.(*GraphicsPipeline)
	if !ok {
		return
	}
	cl.list.SetPipelineState(pipe.pso)
	cl.list.SetGraphicsRootSignature(pipe.layout.sig)
	cl.list.IASetPrimitiveTopology(pipe.topology)
	cl.graphicsLayout = pipe.layout
	tables, err := allocateBindTables(cl.dev, pipe.layout)
	if err != nil {
		return
	}
	cl.graphicsTables = tables
	bindRootTables(cl.list, pipe.layout, tables, false)
}

// BindVertexBuffers implements hal.Device.
func (d *Device) BindVertexBuffers(c hal.CommandList, firstSlot uint32, bindings []hal.BufferBinding) {
	cl, ok := c.(*CommandList)
	if !ok || len(bindings) == 0 {
		return
	}
	views := make([]d3d12.D3D12_VERTEX_BUFFER_VIEW, len(bindings))
	for i, b := range bindings {
		buf, ok := b.Buffer.(*Buffer)
		if !ok {
			return
		}
		views[i] = d3d12.D3D12_VERTEX_BUFFER_VIEW{
			BufferLocation: buf.resource.GetGPUVirtualAddress() + uint64(b.Offset),
			SizeInBytes:    buf.size - b.Offset,
			StrideInBytes:  0, // filled by the pipeline's input layout; the view itself does not constrain stride here
		}
	}
	cl.list.IASetVertexBuffers(firstSlot, uint32(len(views)), &views[0])
}

// BindIndexBuffer implements hal.Device.
func (d *Device) BindIndexBuffer(c hal.CommandList, binding hal.BufferBinding, elementSize types.IndexElementSize) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	buf, ok := binding.Buffer.(*Buffer)
	if !ok {
		return
	}
	format := d3d12.DXGI_FORMAT_R16_UINT
	if elementSize == types.IndexElementSize32 {
		format = d3d12.DXGI_FORMAT_R32_UINT
	}
	view := d3d12.D3D12_INDEX_BUFFER_VIEW{
		BufferLocation: buf.resource.GetGPUVirtualAddress() + uint64(binding.Offset),
		SizeInBytes:    buf.size - binding.Offset,
		Format:         format,
	}
	cl.list.IASetIndexBuffer(&view)
}

func copySamplerDescriptors(dev *Device, table bindTable, first uint32, samplers []hal.Sampler) {
	for i, s := range samplers {
		sw, ok := s.(*Sampler)
		if !ok {
			continue
		}
		dest := table.cpuBase.Offset(int(first)+i, table.stride)
		dev.dev.CopyDescriptorsSimple(1, dest, sw.cpu, d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER)
	}
}

func copySRVDescriptors(dev *Device, table bindTable, first uint32, textures []hal.Texture) {
	for i, t := range textures {
		tw, ok := t.(*Texture)
		if !ok || tw.srv == nil {
			continue
		}
		dest := table.cpuBase.Offset(int(first)+i, table.stride)
		dev.dev.CopyDescriptorsSimple(1, dest, *tw.srv, d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV)
	}
}

// copyUAVDescriptors writes each texture's unordered-access-view descriptor
// into table. Used for read-write storage textures (§4.4/§6), which need a
// real UAV rather than the texture's read-only SRV.
func copyUAVDescriptors(dev *Device, table bindTable, first uint32, textures []hal.Texture) {
	for i, t := range textures {
		tw, ok := t.(*Texture)
		if !ok || tw.uav == nil {
			continue
		}
		dest := table.cpuBase.Offset(int(first)+i, table.stride)
		dev.dev.CopyDescriptorsSimple(1, dest, *tw.uav, d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV)
	}
}

// BindVertexSamplers and BindFragmentSamplers implement hal.Device. DX12's
// root signature does not distinguish shader stage for a descriptor
// table bound with D3D12_SHADER_VISIBILITY_ALL, so both write into the
// same table regions; a shader reads only the slots its own resource
// declarations reference. Each sampled texture's SRV lands in the SRV
// table's sampled-texture region (offset 0, per rootSignatureLayout).
func (d *Device) BindVertexSamplers(c hal.CommandList, first uint32, samplers []hal.Sampler, textures []hal.Texture) {
	cl, ok := c.(*CommandList)
	if !ok || cl.graphicsLayout == nil {
		return
	}
	copySamplerDescriptors(d, cl.graphicsTables[4], first, samplers)
	copySRVDescriptors(d, cl.graphicsTables[1], first, textures)
}

func (d *Device) BindFragmentSamplers(c hal.CommandList, first uint32, samplers []hal.Sampler, textures []hal.Texture) {
	d.BindVertexSamplers(c, first, samplers, textures)
}

// BindVertexStorageTextures and BindFragmentStorageTextures bind read-only
// storage textures (§3 GRAPHICS_STORAGE_READ) through the SRV table, past
// the sampled-texture region the same table reserves for BindXSamplers.
func (d *Device) BindVertexStorageTextures(c hal.CommandList, first uint32, textures []hal.Texture) {
	cl, ok := c.(*CommandList)
	if !ok || cl.graphicsLayout == nil {
		return
	}
	copySRVDescriptors(d, cl.graphicsTables[1], cl.graphicsLayout.srvSampledCount+first, textures)
}

func (d *Device) BindFragmentStorageTextures(c hal.CommandList, first uint32, textures []hal.Texture) {
	d.BindVertexStorageTextures(c, first, textures)
}

func (d *Device) BindVertexStorageBuffers(c hal.CommandList, first uint32, buffers []hal.Buffer) {
	cl, ok := c.(*CommandList)
	if !ok || cl.graphicsLayout == nil {
		return
	}
	for i, b := range buffers {
		bw, ok := b.(*Buffer)
		if !ok {
			continue
		}
		cl.transitionBuffer(bw, d3d12.D3D12_RESOURCE_STATE_NON_PIXEL_SHADER_RESOURCE)
		_ = i
	}
}

func (d *Device) BindFragmentStorageBuffers(c hal.CommandList, first uint32, buffers []hal.Buffer) {
	d.BindVertexStorageBuffers(c, first, buffers)
}

func pushUniformData(d *Device, cl *CommandList, layout *rootSignatureLayout, tables [5]bindTable, compute bool, slot uint32, data []byte) {
	block, err := d.uniforms.acquire(uint32(len(data)))
	if err != nil {
		return
	}
	copy(block.mapped, data)
	cl.uniformBlocks = append(cl.uniformBlocks, block)

	cbvDesc := d3d12.D3D12_CONSTANT_BUFFER_VIEW_DESC{BufferLocation: block.gpuAddr, SizeInBytes: block.class}
	dest := tables[0].cpuBase.Offset(int(slot), tables[0].stride)
	d.dev.CreateConstantBufferView(&cbvDesc, dest)
}

// PushVertexUniformData implements hal.Device.
func (d *Device) PushVertexUniformData(c hal.CommandList, slot uint32, data []byte) {
	cl, ok := c.(*CommandList)
	if !ok || cl.graphicsLayout == nil {
		return
	}
	pushUniformData(d, cl, cl.graphicsLayout, cl.graphicsTables, false, slot, data)
}

// PushFragmentUniformData implements hal.Device.
func (d *Device) PushFragmentUniformData(c hal.CommandList, slot uint32, data []byte) {
	d.PushVertexUniformData(c, slot, data)
}

// DrawPrimitives implements hal.Device.
func (d *Device) DrawPrimitives(c hal.CommandList, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	cl.list.DrawInstanced(vertexCount, instanceCount, firstVertex, firstInstance)
}

// DrawIndexedPrimitives implements hal.Device.
func (d *Device) DrawIndexedPrimitives(c hal.CommandList, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	cl.list.DrawIndexedInstanced(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

func buildIndirectSignature(dev *Device, argType d3d12.D3D12_INDIRECT_ARGUMENT_TYPE, stride uint32) (*d3d12.ID3D12CommandSignature, error) {
	argDesc := d3d12.D3D12_INDIRECT_ARGUMENT_DESC{Type: argType}
	desc := d3d12.D3D12_COMMAND_SIGNATURE_DESC{ByteStride: stride, NumArgumentDescs: 1, ArgumentDescs: &argDesc}
	return dev.dev.CreateCommandSignature(&desc, nil)
}

// DrawPrimitivesIndirect implements hal.Device.
func (d *Device) DrawPrimitivesIndirect(c hal.CommandList, buf hal.Buffer, offset uint32, drawCount uint32) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	bw, ok := buf.(*Buffer)
	if !ok {
		return
	}
	sig, err := buildIndirectSignature(d, d3d12.D3D12_INDIRECT_ARGUMENT_TYPE_DRAW, 16)
	if err != nil {
		return
	}
	defer sig.Release()
	cl.list.ExecuteIndirect(sig, drawCount, bw.resource, uint64(offset), nil, 0)
}

// DrawIndexedPrimitivesIndirect implements hal.Device.
func (d *Device) DrawIndexedPrimitivesIndirect(c hal.CommandList, buf hal.Buffer, offset uint32, drawCount uint32) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	bw, ok := buf.(*Buffer)
	if !ok {
		return
	}
	sig, err := buildIndirectSignature(d, d3d12.D3D12_INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED, 20)
	if err != nil {
		return
	}
	defer sig.Release()
	cl.list.ExecuteIndirect(sig, drawCount, bw.resource, uint64(offset), nil, 0)
}

// BeginComputePass implements hal.Device.
func (d *Device) BeginComputePass(c hal.CommandList, writeTextures []hal.Texture, writeBuffers []hal.Buffer) error {
	cl, ok := c.(*CommandList)
	if !ok {
		return fmt.Errorf("dx12: BeginComputePass: wrong command list handle type")
	}
	for _, t := range writeTextures {
		if tw, ok := t.(*Texture); ok {
			cl.transitionTexture(tw, d3d12.D3D12_RESOURCE_STATE_UNORDERED_ACCESS)
		}
	}
	for _, b := range writeBuffers {
		if bw, ok := b.(*Buffer); ok {
			cl.transitionBuffer(bw, d3d12.D3D12_RESOURCE_STATE_UNORDERED_ACCESS)
		}
	}
	return nil
}

// EndComputePass implements hal.Device.
func (d *Device) EndComputePass(c hal.CommandList) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	cl.computeLayout = nil
}

// BindComputePipeline implements hal.Device.
func (d *Device) BindComputePipeline(c hal.CommandList, p hal.ComputePipeline) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	pipe, ok := p.(*ComputePipeline)
	if !ok {
		return
	}
	cl.list.SetPipelineState(pipe.pso)
	cl.list.SetComputeRootSignature(pipe.layout.sig)
	cl.computeLayout = pipe.layout
	tables, err := allocateBindTables(cl.dev, pipe.layout)
	if err != nil {
		return
	}
	cl.computeTables = tables
	bindRootTables(cl.list, pipe.layout, tables, true)
}

// BindComputeStorageTextures implements hal.Device. These are read-write
// storage textures (§4.3 "the read-write storage resources the pass will
// bind"), bound through a real UAV rather than the texture's SRV.
func (d *Device) BindComputeStorageTextures(c hal.CommandList, first uint32, textures []hal.Texture) {
	cl, ok := c.(*CommandList)
	if !ok || cl.computeLayout == nil {
		return
	}
	copyUAVDescriptors(d, cl.computeTables[3], first, textures)
}

// BindComputeStorageBuffers implements hal.Device.
func (d *Device) BindComputeStorageBuffers(c hal.CommandList, first uint32, buffers []hal.Buffer) {
	cl, ok := c.(*CommandList)
	if !ok || cl.computeLayout == nil {
		return
	}
	for _, b := range buffers {
		if bw, ok := b.(*Buffer); ok {
			cl.transitionBuffer(bw, d3d12.D3D12_RESOURCE_STATE_UNORDERED_ACCESS)
		}
	}
}

// PushComputeUniformData implements hal.Device.
func (d *Device) PushComputeUniformData(c hal.CommandList, slot uint32, data []byte) {
	cl, ok := c.(*CommandList)
	if !ok || cl.computeLayout == nil {
		return
	}
	pushUniformData(d, cl, cl.computeLayout, cl.computeTables, true, slot, data)
}

// DispatchCompute implements hal.Device.
func (d *Device) DispatchCompute(c hal.CommandList, groupsX, groupsY, groupsZ uint32) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	cl.list.Dispatch(groupsX, groupsY, groupsZ)
}

// DispatchComputeIndirect implements hal.Device.
func (d *Device) DispatchComputeIndirect(c hal.CommandList, buf hal.Buffer, offset uint32) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	bw, ok := buf.(*Buffer)
	if !ok {
		return
	}
	sig, err := buildIndirectSignature(d, d3d12.D3D12_INDIRECT_ARGUMENT_TYPE_DISPATCH, 12)
	if err != nil {
		return
	}
	defer sig.Release()
	cl.list.ExecuteIndirect(sig, 1, bw.resource, uint64(offset), nil, 0)
}

// BeginCopyPass implements hal.Device.
func (d *Device) BeginCopyPass(c hal.CommandList) error {
	_, ok := c.(*CommandList)
	if !ok {
		return fmt.Errorf("dx12: BeginCopyPass: wrong command list handle type")
	}
	return nil
}

// EndCopyPass implements hal.Device.
func (d *Device) EndCopyPass(hal.CommandList) {}

// UploadToBuffer implements hal.Device.
func (d *Device) UploadToBuffer(c hal.CommandList, src hal.TransferBuffer, srcOffset uint32, dst hal.BufferRegion) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	srcBuf, ok := src.(*TransferBuffer)
	if !ok {
		return
	}
	dstBuf, ok := dst.Buffer.(*Buffer)
	if !ok {
		return
	}
	cl.transitionBuffer(dstBuf, d3d12.D3D12_RESOURCE_STATE_COPY_DEST)
	cl.list.CopyBufferRegion(dstBuf.resource, uint64(dst.Offset), srcBuf.resource, uint64(srcOffset), uint64(dst.Size))
}

// DownloadFromBuffer implements hal.Device.
func (d *Device) DownloadFromBuffer(c hal.CommandList, src hal.BufferRegion, dst hal.TransferBuffer, dstOffset uint32) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	srcBuf, ok := src.Buffer.(*Buffer)
	if !ok {
		return
	}
	dstBuf, ok := dst.(*TransferBuffer)
	if !ok {
		return
	}
	cl.transitionBuffer(srcBuf, d3d12.D3D12_RESOURCE_STATE_COPY_SOURCE)
	cl.list.CopyBufferRegion(dstBuf.resource, uint64(dstOffset), srcBuf.resource, uint64(src.Offset), uint64(src.Size))
}

// CopyBufferToBuffer implements hal.Device.
func (d *Device) CopyBufferToBuffer(c hal.CommandList, src, dst hal.BufferRegion) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	srcBuf, ok := src.Buffer.(*Buffer)
	if !ok {
		return
	}
	dstBuf, ok := dst.Buffer.(*Buffer)
	if !ok {
		return
	}
	cl.transitionBuffer(srcBuf, d3d12.D3D12_RESOURCE_STATE_COPY_SOURCE)
	cl.transitionBuffer(dstBuf, d3d12.D3D12_RESOURCE_STATE_COPY_DEST)
	cl.list.CopyBufferRegion(dstBuf.resource, uint64(dst.Offset), srcBuf.resource, uint64(src.Offset), uint64(src.Size))
}

func textureCopyLocationSubresource(tex *Texture, region hal.TextureRegion) d3d12.D3D12_TEXTURE_COPY_LOCATION {
	loc := d3d12.D3D12_TEXTURE_COPY_LOCATION{Resource: tex.resource, Type: d3d12.D3D12_TEXTURE_COPY_TYPE_SUBRESOURCE_INDEX}
	sub := region.MipLevel + region.Layer*uint32(tex.desc.LevelCount)
	*(*uint32)(unsafe.Pointer(&loc.Union[0])) = sub
	return loc
}

// UploadToTexture implements hal.Device. srcPitch/srcLayerPitch describe
// the staging buffer's row/layer byte strides (§6 Copy pass); this back
// end assumes the caller has already laid the staging data out with
// D3D12's required 256-byte row pitch alignment, matching the transfer
// buffer writer in the render2d package's upload path.
func (d *Device) UploadToTexture(c hal.CommandList, src hal.TransferBuffer, srcOffset uint32, dst hal.TextureRegion, srcPitch, srcLayerPitch uint32) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	srcBuf, ok := src.(*TransferBuffer)
	if !ok {
		return
	}
	dstTex, ok := dst.Texture.(*Texture)
	if !ok {
		return
	}
	cl.transitionTexture(dstTex, d3d12.D3D12_RESOURCE_STATE_COPY_DEST)

	srcLoc := d3d12.D3D12_TEXTURE_COPY_LOCATION{Resource: srcBuf.resource, Type: d3d12.D3D12_TEXTURE_COPY_TYPE_PLACED_FOOTPRINT}
	footprint := (*d3d12.D3D12_PLACED_SUBRESOURCE_FOOTPRINT)(unsafe.Pointer(&srcLoc.Union[0]))
	footprint.Offset = uint64(srcOffset)
	footprint.Footprint = d3d12.D3D12_SUBRESOURCE_FOOTPRINT{
		Format:   textureFormatToDXGI(dstTex.desc.Format),
		Width:    dst.Width,
		Height:   dst.Height,
		Depth:    maxU32(dst.Depth, 1),
		RowPitch: srcPitch,
	}
	_ = srcLayerPitch

	dstLoc := textureCopyLocationSubresource(dstTex, dst)
	cl.list.CopyTextureRegion(&dstLoc, dst.X, dst.Y, dst.Z, &srcLoc, nil)
}

// DownloadFromTexture implements hal.Device. See UploadToTexture for the
// staging-buffer layout contract.
func (d *Device) DownloadFromTexture(c hal.CommandList, src hal.TextureRegion, dst hal.TransferBuffer, dstOffset, dstPitch, dstLayerPitch uint32) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	srcTex, ok := src.Texture.(*Texture)
	if !ok {
		return
	}
	dstBuf, ok := dst.(*TransferBuffer)
	if !ok {
		return
	}
	cl.transitionTexture(srcTex, d3d12.D3D12_RESOURCE_STATE_COPY_SOURCE)

	dstLoc := d3d12.D3D12_TEXTURE_COPY_LOCATION{Resource: dstBuf.resource, Type: d3d12.D3D12_TEXTURE_COPY_TYPE_PLACED_FOOTPRINT}
	footprint := (*d3d12.D3D12_PLACED_SUBRESOURCE_FOOTPRINT)(unsafe.Pointer(&dstLoc.Union[0]))
	footprint.Offset = uint64(dstOffset)
	footprint.Footprint = d3d12.D3D12_SUBRESOURCE_FOOTPRINT{
		Format:   textureFormatToDXGI(srcTex.desc.Format),
		Width:    src.Width,
		Height:   src.Height,
		Depth:    maxU32(src.Depth, 1),
		RowPitch: dstPitch,
	}
	_ = dstLayerPitch

	srcLoc := textureCopyLocationSubresource(srcTex, src)
	cl.list.CopyTextureRegion(&dstLoc, 0, 0, 0, &srcLoc, nil)
}

// CopyTextureToTexture implements hal.Device.
func (d *Device) CopyTextureToTexture(c hal.CommandList, src, dst hal.TextureRegion) {
	cl, ok := c.(*CommandList)
	if !ok {
		return
	}
	srcTex, ok := src.Texture.(*Texture)
	if !ok {
		return
	}
	dstTex, ok := dst.Texture.(*Texture)
	if !ok {
		return
	}
	cl.transitionTexture(srcTex, d3d12.D3D12_RESOURCE_STATE_COPY_SOURCE)
	cl.transitionTexture(dstTex, d3d12.D3D12_RESOURCE_STATE_COPY_DEST)
	srcLoc := textureCopyLocationSubresource(srcTex, src)
	dstLoc := textureCopyLocationSubresource(dstTex, dst)
	cl.list.CopyTextureRegion(&dstLoc, dst.X, dst.Y, dst.Z, &srcLoc, nil)
}

// GenerateMipmaps implements hal.Device. Non-goal: this spec's render2d
// consumer never samples a mipmapped texture (§3 Texture mip levels are
// always 1 for the batched 2D pipeline's atlases), so this is a documented
// stub rather than a compute-shader downsample chain.
func (d *Device) GenerateMipmaps(hal.CommandList, hal.Texture) {}

// Blit implements hal.Device. Not exercised by render2d (§4.7's batcher
// only ever draws into the swapchain target at native resolution); left
// unimplemented rather than guessing at a resolve/copy substitute.
func (d *Device) Blit(hal.CommandList, hal.TextureRegion, hal.TextureRegion, types.Filter) {}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// Wait implements hal.Device.
func (d *Device) Wait() error {
	return d.waitIdle()
}

// WaitForFences implements hal.Device.
func (d *Device) WaitForFences(fences []hal.Fence, waitAll bool) error {
	if len(fences) == 0 {
		return nil
	}
	target := uint64(0)
	for i, f := range fences {
		fh, ok := f.(*fenceHandle)
		if !ok {
			continue
		}
		if i == 0 || (waitAll && fh.value > target) || (!waitAll && (target == 0 || fh.value < target)) {
			target = fh.value
		}
	}
	if d.fence.GetCompletedValue() >= target {
		return nil
	}
	if err := d.fence.SetEventOnCompletion(target, uintptr(d.fenceEvent)); err != nil {
		return fmt.Errorf("dx12: SetEventOnCompletion: %w", err)
	}
	if _, err := windows.WaitForSingleObject(d.fenceEvent, windows.INFINITE); err != nil {
		return fmt.Errorf("dx12: WaitForSingleObject: %w", err)
	}
	return nil
}

// QueryFence implements hal.Device.
func (d *Device) QueryFence(f hal.Fence) bool {
	fh, ok := f.(*fenceHandle)
	if !ok {
		return true
	}
	return d.fence.GetCompletedValue() >= fh.value
}

// ReleaseFence implements hal.Device. DX12 fence values are plain
// integers compared against one shared fence object, so there is no
// native handle to release.
func (d *Device) ReleaseFence(hal.Fence) {}
