// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"

	"github.com/novagfx/gfx/hal/dx12/dxgi"
)

// selectAdapter walks the factory's adapter list and picks the best match
// for the caller's power preference, skipping the software rasterizer
// adapter (§4.1 back-end selection operates one level up; this is the
// DX12-internal physical-adapter choice underneath it).
func selectAdapter(factory *dxgi.IDXGIFactory4, preferLowPower bool) (*dxgi.IDXGIAdapter1, error) {
	var best *dxgi.IDXGIAdapter1
	var bestDesc dxgi.DXGI_ADAPTER_DESC1
	var bestScore uint64
	haveBest := false

	for i := uint32(0); ; i++ {
		adapter, err := factory.EnumAdapters1(i)
		if err != nil {
			break
		}
		desc, err := adapter.GetDesc1()
		if err != nil {
			adapter.Release()
			continue
		}
		if desc.Flags&dxgi.DXGI_ADAPTER_FLAG_SOFTWARE != 0 {
			adapter.Release()
			continue
		}

		score := desc.DedicatedVideoMemory
		if preferLowPower {
			// Invert: the smallest dedicated-memory discrete adapter is
			// assumed to be the integrated GPU on a hybrid system.
			score = ^desc.DedicatedVideoMemory
		}

		if !haveBest || score > bestScore {
			if best != nil {
				best.Release()
			}
			best = adapter
			bestDesc = desc
			bestScore = score
			haveBest = true
		} else {
			adapter.Release()
		}
	}

	if !haveBest {
		return nil, fmt.Errorf("dx12: no hardware adapter found")
	}
	_ = bestDesc
	return best, nil
}
