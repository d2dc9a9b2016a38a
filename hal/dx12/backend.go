// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/hal/dx12/dxgi"
	"github.com/novagfx/gfx/types"
)

type backendImpl struct{}

func (backendImpl) Variant() types.Backend { return types.BackendDX12 }

func (backendImpl) SupportedShaderFormats() types.ShaderFormat {
	return types.ShaderFormatDXBC | types.ShaderFormatDXIL | types.ShaderFormatHLSL
}

// Implemented is true: this back-end's translation layer (root-signature
// synthesis, PSO assembly, swapchain composition mapping) is complete
// enough to be picked by automatic selection (design note 9.7).
func (backendImpl) Implemented() bool { return true }

// Prepare loads d3d12.dll and dxgi.dll and creates a throwaway DXGI factory
// to confirm the runtime has a usable D3D12 stack, without creating a
// device (§4.1).
func (backendImpl) Prepare(hal.VideoHost) bool {
	if _, err := d3d12.LoadD3D12(); err != nil {
		return false
	}
	dxgiLib, err := dxgi.LoadDXGI()
	if err != nil {
		return false
	}
	factory, err := dxgiLib.CreateFactory1()
	if err != nil {
		return false
	}
	factory.Release()
	return true
}

func (backendImpl) CreateDevice(opts hal.DeviceOptions) (hal.Device, error) {
	d3d12Lib, err := d3d12.LoadD3D12()
	if err != nil {
		return nil, fmt.Errorf("dx12: %w", err)
	}
	dxgiLib, err := dxgi.LoadDXGI()
	if err != nil {
		return nil, fmt.Errorf("dx12: %w", err)
	}

	factory, err := dxgiLib.CreateFactory4(0)
	if err != nil {
		return nil, fmt.Errorf("dx12: CreateFactory4: %w", err)
	}

	adapter, err := selectAdapter(factory, opts.PreferLowPower)
	if err != nil {
		factory.Release()
		return nil, err
	}

	if opts.DebugMode {
		if debug, err := d3d12Lib.GetDebugInterface(); err == nil {
			debug.EnableDebugLayer()
			debug.Release()
		}
	}

	return newDevice(d3d12Lib, dxgiLib, factory, adapter, opts)
}
