// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package noop

import (
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// windowHandle tracks the composition/present mode a window was claimed
// with, mirroring the bookkeeping a real back-end keeps per swapchain.
type windowHandle struct {
	id          uint64
	handle      uintptr
	composition types.SwapchainComposition
	presentMode types.PresentMode
}

func swapchainFormat(composition types.SwapchainComposition) types.TextureFormat {
	switch composition {
	case types.SwapchainCompositionSDR, types.SwapchainCompositionSDRSrgb:
		return types.TextureFormatBGRA8Unorm
	case types.SwapchainCompositionHDR:
		return types.TextureFormatRGBA16Float
	case types.SwapchainCompositionHDRAdvanced:
		return types.TextureFormatRGB10A2Unorm
	default:
		return types.TextureFormatBGRA8Unorm
	}
}

func (d *Device) ClaimWindow(handle uintptr, composition types.SwapchainComposition, presentMode types.PresentMode) (hal.Window, error) {
	return &windowHandle{id: d.id(), handle: handle, composition: composition, presentMode: presentMode}, nil
}

func (d *Device) UnclaimWindow(hal.Window) {}

func (d *Device) SetSwapchainParameters(w hal.Window, composition types.SwapchainComposition, presentMode types.PresentMode) error {
	wh, ok := w.(*windowHandle)
	if !ok {
		return nil
	}
	wh.composition = composition
	wh.presentMode = presentMode
	return nil
}

func (d *Device) SwapchainTextureFormat(w hal.Window) types.TextureFormat {
	wh, ok := w.(*windowHandle)
	if !ok {
		return types.TextureFormatBGRA8Unorm
	}
	return swapchainFormat(wh.composition)
}

func (d *Device) AcquireSwapchainTexture(_ hal.CommandList, w hal.Window) (hal.Texture, error) {
	wh, ok := w.(*windowHandle)
	if !ok {
		return nil, nil
	}
	return &textureHandle{id: d.id(), desc: types.TextureDescriptor{
		Format: swapchainFormat(wh.composition),
		Width:  1,
		Height: 1,
	}}, nil
}
