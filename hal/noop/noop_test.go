// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package noop

import (
	"testing"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

var (
	_ hal.Backend = backendImpl{}
	_ hal.Device  = (*Device)(nil)
)

func TestBackendVariant(t *testing.T) {
	b := Backend()
	if b.Variant() != types.BackendNoop {
		t.Fatalf("Variant() = %v, want BackendNoop", b.Variant())
	}
	if !b.Implemented() {
		t.Fatalf("Implemented() = false, want true")
	}
	if !b.Prepare(nil) {
		t.Fatalf("Prepare() = false, want true")
	}
}

func TestCreateDeviceResources(t *testing.T) {
	b := Backend()
	dev, err := b.CreateDevice(hal.DeviceOptions{})
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	defer dev.Destroy()

	buf, err := dev.CreateBuffer(&types.BufferDescriptor{Size: 1024, Usage: types.BufferUsageVertex})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	dev.SetBufferName(buf, "vertices")
	dev.ReleaseBuffer(buf)

	tb, err := dev.CreateTransferBuffer(&types.TransferBufferDescriptor{
		Size:      256,
		Direction: types.TransferBufferUpload,
	})
	if err != nil {
		t.Fatalf("CreateTransferBuffer: %v", err)
	}
	mapped, err := dev.MapTransferBuffer(tb, false)
	if err != nil {
		t.Fatalf("MapTransferBuffer: %v", err)
	}
	if len(mapped) != 256 {
		t.Fatalf("len(mapped) = %d, want 256", len(mapped))
	}
	dev.UnmapTransferBuffer(tb)
	dev.ReleaseTransferBuffer(tb)
}

func TestCommandBufferRoundTrip(t *testing.T) {
	b := Backend()
	dev, err := b.CreateDevice(hal.DeviceOptions{})
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	defer dev.Destroy()

	cl, err := dev.AcquireCommandList()
	if err != nil {
		t.Fatalf("AcquireCommandList: %v", err)
	}
	if err := dev.BeginRenderPass(cl, nil, nil); err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}
	dev.SetViewport(cl, hal.Viewport{Width: 1920, Height: 1080, MaxDepth: 1})
	dev.DrawPrimitives(cl, 3, 1, 0, 0)
	dev.EndRenderPass(cl)

	fence, err := dev.SubmitAndAcquireFence(cl)
	if err != nil {
		t.Fatalf("SubmitAndAcquireFence: %v", err)
	}
	if !dev.QueryFence(fence) {
		t.Fatalf("QueryFence = false, want true")
	}
	if err := dev.WaitForFences([]hal.Fence{fence}, true); err != nil {
		t.Fatalf("WaitForFences: %v", err)
	}
	dev.ReleaseFence(fence)
}

func TestSwapchainClaim(t *testing.T) {
	b := Backend()
	dev, err := b.CreateDevice(hal.DeviceOptions{})
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	defer dev.Destroy()

	win, err := dev.ClaimWindow(1, types.SwapchainCompositionSDR, types.PresentModeVSync)
	if err != nil {
		t.Fatalf("ClaimWindow: %v", err)
	}
	if got := dev.SwapchainTextureFormat(win); got != types.TextureFormatBGRA8Unorm {
		t.Fatalf("SwapchainTextureFormat = %v, want BGRA8Unorm", got)
	}

	if err := dev.SetSwapchainParameters(win, types.SwapchainCompositionHDR, types.PresentModeMailbox); err != nil {
		t.Fatalf("SetSwapchainParameters: %v", err)
	}
	if got := dev.SwapchainTextureFormat(win); got != types.TextureFormatRGBA16Float {
		t.Fatalf("SwapchainTextureFormat after HDR switch = %v, want RGBA16Float", got)
	}

	cl, err := dev.AcquireCommandList()
	if err != nil {
		t.Fatalf("AcquireCommandList: %v", err)
	}
	tex, err := dev.AcquireSwapchainTexture(cl, win)
	if err != nil {
		t.Fatalf("AcquireSwapchainTexture: %v", err)
	}
	if tex == nil {
		t.Fatalf("AcquireSwapchainTexture returned nil texture")
	}
	dev.UnclaimWindow(win)
}
