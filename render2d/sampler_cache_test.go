// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d_test

import (
	"testing"

	"github.com/novagfx/gfx/gfx"
	_ "github.com/novagfx/gfx/hal/noop"
	"github.com/novagfx/gfx/render2d"
	"github.com/novagfx/gfx/types"
)

func newTestDevice(t *testing.T) *gfx.Device {
	t.Helper()
	d, err := gfx.CreateDevice(nil, gfx.DeviceOptions{
		ShaderFormats: types.ShaderFormatHLSL,
		DebugMode:     true,
		Name:          "noop",
	})
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	return d
}

func newTestRenderer(t *testing.T) (*gfx.Device, *render2d.Renderer) {
	t.Helper()
	d := newTestDevice(t)
	win, err := d.ClaimWindow(1, types.SwapchainCompositionSDR, types.PresentModeVSync)
	if err != nil {
		t.Fatalf("ClaimWindow: %v", err)
	}
	r, err := render2d.New(d, win, false)
	if err != nil {
		t.Fatalf("render2d.New: %v", err)
	}
	return d, r
}

// Testable property 6: the sampler table's pointers are stable across
// repeated lookups of the same (scale, address mode) pair.
func TestSamplerCachePointerStability(t *testing.T) {
	_, r := newTestRenderer(t)
	samplers := r.Samplers()

	first := samplers.Get(render2d.ScaleLinear, types.AddressModeClampToEdge)
	if first == nil {
		t.Fatal("Get returned nil sampler")
	}
	for i := 0; i < 5; i++ {
		got := samplers.Get(render2d.ScaleLinear, types.AddressModeClampToEdge)
		if got != first {
			t.Fatalf("iteration %d: sampler pointer changed: got %p, want %p", i, got, first)
		}
	}
}

// Every entry in the 3x2 table is a distinct, non-nil sampler.
func TestSamplerCacheTableDistinctEntries(t *testing.T) {
	_, r := newTestRenderer(t)
	samplers := r.Samplers()

	scales := []render2d.ScaleMode{render2d.ScaleNearest, render2d.ScaleLinear}
	addrs := []types.AddressMode{
		types.AddressModeRepeat,
		types.AddressModeMirroredRepeat,
		types.AddressModeClampToEdge,
	}

	seen := make(map[*gfx.Sampler]bool)
	for _, scale := range scales {
		for _, addr := range addrs {
			s := samplers.Get(scale, addr)
			if s == nil {
				t.Fatalf("Get(%v, %v) returned nil", scale, addr)
			}
			if seen[s] {
				t.Fatalf("Get(%v, %v) returned a sampler already seen for a different key", scale, addr)
			}
			seen[s] = true
		}
	}
	if len(seen) != 6 {
		t.Fatalf("distinct sampler count = %d, want 6", len(seen))
	}
}
