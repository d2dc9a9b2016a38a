// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import "github.com/novagfx/gfx/hal"

var (
	_ hal.Backend = backendImpl{}
	_ hal.Device  = (*Device)(nil)
)

func init() {
	hal.RegisterBackend(backendImpl{})
}
