// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/hal/dx12/dxgi"
	"github.com/novagfx/gfx/types"
)

// view and sampler heap capacities are sized for the renderer this spec
// targets (§4.7's batched 2D renderer), not for bindless workloads — far
// smaller than the teacher's 1M-descriptor bindless view heap, since
// nothing in this implementation's scope allocates descriptors that densely.
const (
	viewHeapCapacity    = 4096
	samplerHeapCapacity = 256
	rtvHeapCapacity      = 256
	dsvHeapCapacity      = 64
)

// Device implements hal.Device for DirectX 12 (§4.2 "the core").
type Device struct {
	dev *d3d12.ID3D12Device

	d3d12Lib *d3d12.D3D12Lib
	dxgiLib  *dxgi.DXGILib
	factory  *dxgi.IDXGIFactory4
	adapter  *dxgi.IDXGIAdapter1

	queue *d3d12.ID3D12CommandQueue

	viewHeap    *descriptorHeap
	samplerHeap *descriptorHeap
	rtvHeap     *descriptorHeap
	dsvHeap     *descriptorHeap

	fenceMu    sync.Mutex
	fence      *d3d12.ID3D12Fence
	fenceValue uint64
	fenceEvent windows.Handle

	featureLevel d3d12.D3D_FEATURE_LEVEL

	// emptyRootSignature backs pipelines with no resource bindings: DX12
	// requires a valid root signature for every PSO even when the shader
	// declares zero CBVs/SRVs/UAVs/samplers.
	rootSigMu          sync.Mutex
	emptyRootSignature *d3d12.ID3D12RootSignature

	windowsMu sync.Mutex
	windows   []*Window

	uniforms *uniformPool

	// pendingReleases holds uniform-pool blocks a submitted command list
	// used, kept alive until the GPU has passed the fence value that
	// submission signaled (design note 9.4 — recycling must not race the
	// GPU's in-flight reads).
	pendingMu       sync.Mutex
	pendingReleases []pendingUniformRelease
}

func newDevice(d3d12Lib *d3d12.D3D12Lib, dxgiLib *dxgi.DXGILib, factory *dxgi.IDXGIFactory4, adapter *dxgi.IDXGIAdapter1, opts hal.DeviceOptions) (*Device, error) {
	raw, err := d3d12Lib.CreateDevice(nil, d3d12.D3D_FEATURE_LEVEL_11_0)
	if err != nil {
		adapter.Release()
		factory.Release()
		return nil, fmt.Errorf("dx12: D3D12CreateDevice: %w", err)
	}

	d := &Device{
		dev:          raw,
		d3d12Lib:     d3d12Lib,
		dxgiLib:      dxgiLib,
		factory:      factory,
		adapter:      adapter,
		featureLevel: d3d12.D3D_FEATURE_LEVEL_11_0,
	}

	if err := d.init(); err != nil {
		d.Destroy()
		return nil, err
	}
	d.uniforms = newUniformPool(d)
	return d, nil
}

func (d *Device) init() error {
	queue, err := d.dev.CreateCommandQueue(&d3d12.D3D12_COMMAND_QUEUE_DESC{
		Type:  d3d12.D3D12_COMMAND_LIST_TYPE_DIRECT,
		Flags: d3d12.D3D12_COMMAND_QUEUE_FLAG_NONE,
	})
	if err != nil {
		return fmt.Errorf("dx12: CreateCommandQueue: %w", err)
	}
	d.queue = queue

	var heapErr error
	d.viewHeap, heapErr = newDescriptorHeap(d.dev, d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_CBV_SRV_UAV, viewHeapCapacity, true)
	if heapErr != nil {
		return heapErr
	}
	d.samplerHeap, heapErr = newDescriptorHeap(d.dev, d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_SAMPLER, samplerHeapCapacity, true)
	if heapErr != nil {
		return heapErr
	}
	d.rtvHeap, heapErr = newDescriptorHeap(d.dev, d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_RTV, rtvHeapCapacity, false)
	if heapErr != nil {
		return heapErr
	}
	d.dsvHeap, heapErr = newDescriptorHeap(d.dev, d3d12.D3D12_DESCRIPTOR_HEAP_TYPE_DSV, dsvHeapCapacity, false)
	if heapErr != nil {
		return heapErr
	}

	fence, err := d.dev.CreateFence(0, d3d12.D3D12_FENCE_FLAG_NONE)
	if err != nil {
		return fmt.Errorf("dx12: CreateFence: %w", err)
	}
	event, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		fence.Release()
		return fmt.Errorf("dx12: CreateEvent: %w", err)
	}
	d.fence = fence
	d.fenceEvent = event
	return nil
}

// getOrCreateEmptyRootSignature returns the shared zero-parameter root
// signature used by pipelines whose shaders declare no resource bindings.
func (d *Device) getOrCreateEmptyRootSignature() (*d3d12.ID3D12RootSignature, error) {
	d.rootSigMu.Lock()
	defer d.rootSigMu.Unlock()
	if d.emptyRootSignature != nil {
		return d.emptyRootSignature, nil
	}
	desc := d3d12.D3D12_ROOT_SIGNATURE_DESC{
		Flags: d3d12.D3D12_ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT,
	}
	blob, errBlob, err := d.d3d12Lib.SerializeRootSignature(&desc, d3d12.D3D_ROOT_SIGNATURE_VERSION_1_0)
	if err != nil {
		if errBlob != nil {
			errBlob.Release()
		}
		return nil, fmt.Errorf("dx12: SerializeRootSignature: %w", err)
	}
	defer blob.Release()
	rootSig, err := d.dev.CreateRootSignature(0, blob.GetBufferPointer(), blob.GetBufferSize())
	if err != nil {
		return nil, fmt.Errorf("dx12: CreateRootSignature: %w", err)
	}
	d.emptyRootSignature = rootSig
	return rootSig, nil
}

// waitIdle blocks the calling goroutine until every submitted command list
// has finished executing on the GPU (backs Wait and device teardown).
func (d *Device) waitIdle() error {
	d.fenceMu.Lock()
	defer d.fenceMu.Unlock()
	d.fenceValue++
	target := d.fenceValue
	if err := d.queue.Signal(d.fence, target); err != nil {
		return fmt.Errorf("dx12: Signal: %w", err)
	}
	if d.fence.GetCompletedValue() < target {
		if err := d.fence.SetEventOnCompletion(target, uintptr(d.fenceEvent)); err != nil {
			return fmt.Errorf("dx12: SetEventOnCompletion: %w", err)
		}
		if _, err := windows.WaitForSingleObject(d.fenceEvent, windows.INFINITE); err != nil {
			return fmt.Errorf("dx12: WaitForSingleObject: %w", err)
		}
	}
	return nil
}

// Backend implements hal.Device.
func (d *Device) Backend() types.Backend { return types.BackendDX12 }

// SupportsTextureFormat implements hal.Device. D3D12 guarantees render
// target, depth-stencil, and shader-sample capability for every format in
// its core feature-level-11 format set, which textureFormatToDXGI draws
// from exclusively — so a format this back-end can even name is supported
// for any usage combination, with two exceptions checked explicitly since
// the hardware would otherwise reject them at resource-creation time: the
// compressed BC1/BC3/BC7 formats never permit ColorTarget/DepthStencilTarget
// usage, and depth-stencil formats never permit Sampler or
// GraphicsStorageRead usage.
func (d *Device) SupportsTextureFormat(format types.TextureFormat, usage types.TextureUsage) bool {
	if textureFormatToDXGI(format) == d3d12.DXGI_FORMAT_UNKNOWN {
		return false
	}
	if format.BlockSize() > 1 && (usage.Has(types.TextureUsageColorTarget) || usage.Has(types.TextureUsageDepthStencilTarget)) {
		return false
	}
	if format.IsDepthStencil() && (usage.Has(types.TextureUsageSampler) || usage.Has(types.TextureUsageGraphicsStorageRead)) {
		return false
	}
	return true
}

// SupportsPresentMode implements hal.Device. Every present mode this
// spec's types.PresentMode enumerates maps onto a DXGI swap-effect and sync
// interval combination (§4.6), so all three are unconditionally supported.
func (d *Device) SupportsPresentMode(hal.Window, types.PresentMode) bool { return true }

// SupportsSwapchainComposition implements hal.Device. All four
// compositions have a DXGI format mapping (§4.6's table); HDR support
// additionally depends on the output's color space, which this
// conservative check does not probe.
func (d *Device) SupportsSwapchainComposition(hal.Window, types.SwapchainComposition) bool { return true }

// BestSampleCount implements hal.Device. Every feature-level-11 D3D12
// device guarantees standard MSAA quality levels up through 4x for the
// color and depth formats this back-end exposes; 8x is common but not
// guaranteed, so a request for 8x is capped down to 4x rather than
// claiming support this conservative check cannot confirm without a
// CheckFeatureSupport round trip this implementation does not make.
func (d *Device) BestSampleCount(format types.TextureFormat, desired types.SampleCount) types.SampleCount {
	if desired > types.SampleCount4 {
		return types.SampleCount4
	}
	if desired < types.SampleCount1 {
		return types.SampleCount1
	}
	return desired
}

// Destroy implements hal.Device.
func (d *Device) Destroy() {
	d.windowsMu.Lock()
	claimedWindows := d.windows
	d.windows = nil
	d.windowsMu.Unlock()
	for _, w := range claimedWindows {
		w.release()
	}

	if d.fence != nil {
		d.waitIdle()
	}

	d.pendingMu.Lock()
	d.reapPendingLocked()
	d.pendingMu.Unlock()

	if d.uniforms != nil {
		d.uniforms.destroy()
		d.uniforms = nil
	}

	if d.emptyRootSignature != nil {
		d.emptyRootSignature.Release()
		d.emptyRootSignature = nil
	}
	if d.fenceEvent != 0 {
		windowsCloseHandle(d.fenceEvent)
		d.fenceEvent = 0
	}
	if d.fence != nil {
		d.fence.Release()
		d.fence = nil
	}
	if d.viewHeap != nil {
		d.viewHeap.release()
	}
	if d.samplerHeap != nil {
		d.samplerHeap.release()
	}
	if d.rtvHeap != nil {
		d.rtvHeap.release()
	}
	if d.dsvHeap != nil {
		d.dsvHeap.release()
	}
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.dev != nil {
		d.dev.Release()
		d.dev = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.factory != nil {
		d.factory.Release()
		d.factory = nil
	}
}

func windowsCloseHandle(h windows.Handle) { _ = windows.CloseHandle(h) }
