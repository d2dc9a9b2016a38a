// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"unsafe"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/hal/dx12/dxgi"
	"github.com/novagfx/gfx/types"
)

// Window owns one claimed swapchain (§4.6, design note 9.5). Its back
// buffers are exposed as borrowed Texture views: callers must not call
// ReleaseTexture on a value returned from AcquireSwapchainTexture.
type Window struct {
	dev         *Device
	hwnd        uintptr
	swapchain   *dxgi.IDXGISwapChain1
	swapchain4  *dxgi.IDXGISwapChain4
	composition types.SwapchainComposition
	presentMode types.PresentMode
	format      types.TextureFormat
	dxgiFormat  dxgi.DXGI_FORMAT

	backBuffers []*Texture
	released    bool
}

func presentModeToSyncInterval(mode types.PresentMode) (uint32, uint32) {
	switch mode {
	case types.PresentModeImmediate:
		return 0, dxgi.DXGI_PRESENT_ALLOW_TEARING
	case types.PresentModeMailbox:
		return 0, 0
	default: // PresentModeVSync
		return 1, 0
	}
}

func swapEffectFor(mode types.PresentMode) dxgi.DXGI_SWAP_EFFECT {
	return dxgi.DXGI_SWAP_EFFECT_FLIP_DISCARD
}

var dxgiIIDResource = *(*dxgi.GUID)(unsafe.Pointer(&d3d12.IID_ID3D12Resource))

// ClaimWindow implements hal.Device.
func (d *Device) ClaimWindow(handle uintptr, composition types.SwapchainComposition, presentMode types.PresentMode) (hal.Window, error) {
	dxgiFormat, format := swapchainFormat(composition)

	syncInterval, flags := presentModeToSyncInterval(presentMode)
	_ = syncInterval

	desc := dxgi.DXGI_SWAP_CHAIN_DESC1{
		Width:       0,
		Height:      0,
		Format:      dxgiFormat,
		SampleDesc:  dxgi.DXGI_SAMPLE_DESC{Count: 1, Quality: 0},
		BufferUsage: dxgi.DXGI_USAGE_RENDER_TARGET_OUTPUT,
		BufferCount: uint32(types.SwapchainBufferCount),
		Scaling:     dxgi.DXGI_SCALING_STRETCH,
		SwapEffect:  swapEffectFor(presentMode),
		AlphaMode:   dxgi.DXGI_ALPHA_MODE_IGNORE,
		Flags:       flags & dxgi.DXGI_SWAP_CHAIN_FLAG_ALLOW_TEARING,
	}

	sc1, err := d.factory.CreateSwapChainForHwnd(unsafe.Pointer(d.queue), handle, &desc, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("dx12: CreateSwapChainForHwnd: %w", err)
	}
	sc4, err := sc1.QueryInterface()
	if err != nil {
		sc1.Release()
		return nil, fmt.Errorf("dx12: swapchain QueryInterface(IDXGISwapChain4): %w", err)
	}

	w := &Window{
		dev:         d,
		hwnd:        handle,
		swapchain:   sc1,
		swapchain4:  sc4,
		composition: composition,
		presentMode: presentMode,
		format:      format,
		dxgiFormat:  dxgiFormat,
	}
	if err := w.acquireBackBuffers(); err != nil {
		w.release()
		return nil, err
	}

	d.windowsMu.Lock()
	d.windows = append(d.windows, w)
	d.windowsMu.Unlock()
	return w, nil
}

func (w *Window) acquireBackBuffers() error {
	w.backBuffers = make([]*Texture, types.SwapchainBufferCount)
	for i := uint32(0); i < uint32(types.SwapchainBufferCount); i++ {
		ptr, err := w.swapchain4.GetBuffer(i, &dxgiIIDResource)
		if err != nil {
			return fmt.Errorf("dx12: swapchain GetBuffer(%d): %w", i, err)
		}
		res := (*d3d12.ID3D12Resource)(ptr)
		tex := &Texture{
			resource: res,
			desc: types.TextureDescriptor{
				Format:     w.format,
				Type:       types.TextureType2D,
				LayerCount: 1,
				LevelCount: 1,
				Usage:      types.TextureUsageColorTarget,
			},
			state: d3d12.D3D12_RESOURCE_STATE_PRESENT,
			owned: false,
		}
		if err := w.dev.createTextureViews(tex); err != nil {
			return err
		}
		w.backBuffers[i] = tex
	}
	return nil
}

func (w *Window) releaseBackBuffers() {
	for _, tex := range w.backBuffers {
		if tex != nil {
			tex.resource.Release()
		}
	}
	w.backBuffers = nil
}

func (w *Window) release() {
	if w.released {
		return
	}
	w.released = true
	w.releaseBackBuffers()
	if w.swapchain4 != nil {
		w.swapchain4.Release()
	}
	if w.swapchain != nil {
		w.swapchain.Release()
	}
}

// UnclaimWindow implements hal.Device.
func (d *Device) UnclaimWindow(win hal.Window) {
	w, ok := win.(*Window)
	if !ok {
		return
	}
	w.release()
	d.windowsMu.Lock()
	for i, cand := range d.windows {
		if cand == w {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			break
		}
	}
	d.windowsMu.Unlock()
}

// SetSwapchainParameters implements hal.Device. Recreating the swapchain
// on a composition or present-mode change discards in-flight back buffers,
// so callers must not hold a texture acquired before this call.
func (d *Device) SetSwapchainParameters(win hal.Window, composition types.SwapchainComposition, presentMode types.PresentMode) error {
	w, ok := win.(*Window)
	if !ok {
		return fmt.Errorf("dx12: SetSwapchainParameters: wrong handle type")
	}
	if w.composition == composition && w.presentMode == presentMode {
		return nil
	}
	w.releaseBackBuffers()

	dxgiFormat, format := swapchainFormat(composition)
	_, flags := presentModeToSyncInterval(presentMode)
	if err := w.swapchain.ResizeBuffers(uint32(types.SwapchainBufferCount), 0, 0, dxgiFormat, flags&dxgi.DXGI_SWAP_CHAIN_FLAG_ALLOW_TEARING); err != nil {
		return fmt.Errorf("dx12: ResizeBuffers: %w", err)
	}
	w.composition = composition
	w.presentMode = presentMode
	w.format = format
	w.dxgiFormat = dxgiFormat
	return w.acquireBackBuffers()
}

// SwapchainTextureFormat implements hal.Device.
func (d *Device) SwapchainTextureFormat(win hal.Window) types.TextureFormat {
	w, ok := win.(*Window)
	if !ok {
		return types.TextureFormatInvalid
	}
	return w.format
}

// AcquireSwapchainTexture implements hal.Device. The returned Texture is a
// borrowed view of the current back buffer valid until the command list
// submits (design note 9.5); Present is issued as part of Submit for any
// command list that acquired a swapchain texture (§4.3).
func (d *Device) AcquireSwapchainTexture(cl hal.CommandList, win hal.Window) (hal.Texture, error) {
	w, ok := win.(*Window)
	if !ok {
		return nil, fmt.Errorf("dx12: AcquireSwapchainTexture: wrong window handle type")
	}
	list, ok := cl.(*CommandList)
	if !ok {
		return nil, fmt.Errorf("dx12: AcquireSwapchainTexture: wrong command list handle type")
	}
	idx := w.swapchain4.GetCurrentBackBufferIndex()
	tex := w.backBuffers[idx]
	list.acquiredWindows = append(list.acquiredWindows, w)
	return tex, nil
}
