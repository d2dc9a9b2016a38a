// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package noop

import (
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// Backend returns the noop hal.Backend singleton.
func Backend() hal.Backend { return backendImpl{} }

type backendImpl struct{}

func (backendImpl) Variant() types.Backend { return types.BackendNoop }

func (backendImpl) SupportedShaderFormats() types.ShaderFormat {
	return types.ShaderFormatSecret | types.ShaderFormatSPIRV | types.ShaderFormatDXBC |
		types.ShaderFormatDXIL | types.ShaderFormatMSL | types.ShaderFormatMetalLib | types.ShaderFormatHLSL
}

// Implemented is true: the noop back-end has nothing left to implement, it
// simply never selects itself implicitly ahead of a real back-end because
// the registry tries BackendVulkan and BackendDX12 first (hal/registry.go
// priority list).
func (backendImpl) Implemented() bool { return true }

func (backendImpl) Prepare(hal.VideoHost) bool { return true }

func (backendImpl) CreateDevice(opts hal.DeviceOptions) (hal.Device, error) {
	return newDevice(opts), nil
}
