// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"fmt"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// Window is a typed handle to a claimed swapchain (§4.6, §4.8 "Window
// swapchain: Unclaimed -> Claimed{Composition, PresentMode} -> Unclaimed").
type Window struct {
	device      *Device
	native      hal.Window
	composition types.SwapchainComposition
	presentMode types.PresentMode
	claimed     bool
}

func (w *Window) Composition() types.SwapchainComposition { return w.composition }
func (w *Window) PresentMode() types.PresentMode           { return w.presentMode }

// ClaimWindow constructs a swapchain over the native window handle (§4.6
// "Claim window").
func (d *Device) ClaimWindow(handle uintptr, composition types.SwapchainComposition, presentMode types.PresentMode) (*Window, error) {
	native, err := d.hal.ClaimWindow(handle, composition, presentMode)
	if err != nil {
		return nil, fmt.Errorf("gfx: claim window: %w", err)
	}
	return &Window{device: d, native: native, composition: composition, presentMode: presentMode, claimed: true}, nil
}

// UnclaimWindow releases w's swapchain resources, returning it to the
// Unclaimed state.
func (d *Device) UnclaimWindow(w *Window) {
	if w == nil || !w.claimed {
		return
	}
	w.claimed = false
	d.hal.UnclaimWindow(w.native)
}

// SetSwapchainParameters reclaims w's swapchain with a new composition
// and/or present mode.
func (d *Device) SetSwapchainParameters(w *Window, composition types.SwapchainComposition, presentMode types.PresentMode) error {
	if verr := requireNonNil(w == nil, "window"); verr != nil {
		return verr
	}
	if err := d.hal.SetSwapchainParameters(w.native, composition, presentMode); err != nil {
		return err
	}
	w.composition = composition
	w.presentMode = presentMode
	return nil
}

// SwapchainTextureFormat returns the portable format of w's back buffers.
func (d *Device) SwapchainTextureFormat(w *Window) types.TextureFormat {
	return d.hal.SwapchainTextureFormat(w.native)
}

// SupportsPresentMode reports whether w's swapchain can use mode.
func (d *Device) SupportsPresentMode(w *Window, mode types.PresentMode) bool {
	return d.hal.SupportsPresentMode(w.native, mode)
}

// SupportsSwapchainComposition reports whether w's swapchain can use
// composition.
func (d *Device) SupportsSwapchainComposition(w *Window, composition types.SwapchainComposition) bool {
	return d.hal.SupportsSwapchainComposition(w.native, composition)
}

// AcquireSwapchainTexture returns w's current back buffer for use as a
// render-pass color attachment this frame (§4.6 "Acquire swapchain
// texture"). The returned Texture is a borrowed view (design note 9.5):
// it is owned by w, valid only until the next acquire or until w is
// unclaimed, and ReleaseTexture on it is a no-op.
func (cb *CommandBuffer) AcquireSwapchainTexture(w *Window) (*Texture, error) {
	if verr := requireNonNil(w == nil, "window"); verr != nil {
		return nil, verr
	}
	if verr := cb.invariant(cb.state != cbSubmitted, true, "AcquireSwapchainTexture: command buffer already submitted"); verr != nil {
		return nil, verr
	}
	if !cb.usedWindowSet[w] {
		cb.usedWindowSet[w] = true
		cb.activeWindows = append(cb.activeWindows, w)
	}
	native, err := cb.device.hal.AcquireSwapchainTexture(cb.native, w.native)
	if err != nil {
		return nil, fmt.Errorf("gfx: acquire swapchain texture: %w", err)
	}
	format := cb.device.hal.SwapchainTextureFormat(w.native)
	return &Texture{
		device: cb.device,
		native: native,
		desc: types.TextureDescriptor{
			Label:  "swapchain",
			Format: format,
			Type:   types.TextureType2D,
			Usage:  types.TextureUsageColorTarget,
		},
		borrowed: true,
	}, nil
}
