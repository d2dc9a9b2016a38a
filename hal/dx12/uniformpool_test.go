// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"testing"

	"github.com/novagfx/gfx/types"
)

func TestUniformSizeClass(t *testing.T) {
	tests := []struct {
		name   string
		size   uint32
		expect uint32
	}{
		{"zero rounds to the minimum class", 0, 256},
		{"under the minimum class", 64, 256},
		{"exact power of two stays put", 256, 256},
		{"one over a class rounds up", 257, 512},
		{"96 bytes draws a 256-byte class, not a 32KiB block", 96, 256},
		{"large push caps at UniformBufferSize", types.UniformBufferSize + 1, types.UniformBufferSize},
		{"exactly UniformBufferSize stays at the cap", types.UniformBufferSize, types.UniformBufferSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uniformSizeClass(tt.size); got != tt.expect {
				t.Errorf("uniformSizeClass(%d) = %d, want %d", tt.size, got, tt.expect)
			}
		})
	}
}
