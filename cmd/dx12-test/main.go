// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

// Command dx12-test is an integration smoke test for the DX12 back-end: it
// creates a device and drives one clear-only frame (scenario S1) against an
// offscreen color target through the portable command-buffer state
// machine. It deliberately avoids swapchain/window plumbing so it can run
// headless.
package main

import (
	"fmt"
	"os"

	"github.com/novagfx/gfx/gfx"
	_ "github.com/novagfx/gfx/hal/dx12"
	"github.com/novagfx/gfx/types"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("SUCCESS: DX12 backend works!")
}

func run() error {
	fmt.Println("=== DX12 Backend Integration Test ===")
	fmt.Println()

	fmt.Print("1. Creating device... ")
	device, err := gfx.CreateDevice(nil, gfx.DeviceOptions{
		ShaderFormats: types.ShaderFormatHLSL,
		DebugMode:     true,
		Name:          "direct3d12",
	})
	if err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	defer device.Destroy()
	fmt.Printf("OK (%s)\n", device.Driver())

	fmt.Print("2. Creating offscreen color target... ")
	target, err := device.CreateTexture(&types.TextureDescriptor{
		Label:       "dx12-test-target",
		Format:      types.TextureFormatRGBA8Unorm,
		Type:        types.TextureType2D,
		Width:       256,
		Height:      256,
		Depth:       1,
		LayerCount:  1,
		LevelCount:  1,
		SampleCount: types.SampleCount1,
		Usage:       types.TextureUsageColorTarget,
	})
	if err != nil {
		return fmt.Errorf("create color target: %w", err)
	}
	defer device.ReleaseTexture(target)
	fmt.Println("OK")

	fmt.Print("3. Driving a clear-only frame... ")
	if err := clearOnlyFrame(device, target); err != nil {
		return fmt.Errorf("clear-only frame: %w", err)
	}
	fmt.Println("OK")

	fmt.Println()
	fmt.Println("=== DX12 Backend Test PASSED ===")
	return nil
}

// clearOnlyFrame is scenario S1: clear the target in a single-attachment
// render pass and submit.
func clearOnlyFrame(device *gfx.Device, target *gfx.Texture) error {
	cb, err := device.AcquireCommandBuffer()
	if err != nil {
		return fmt.Errorf("acquire command buffer: %w", err)
	}

	if err := cb.BeginRenderPass([]gfx.ColorAttachment{{
		Texture:    target,
		LoadOp:     types.LoadOpClear,
		StoreOp:    types.StoreOpStore,
		ClearColor: types.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
	}}, nil); err != nil {
		return fmt.Errorf("begin render pass: %w", err)
	}
	if err := cb.EndRenderPass(); err != nil {
		return fmt.Errorf("end render pass: %w", err)
	}

	return cb.Submit()
}
