// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d

import (
	"fmt"

	"github.com/novagfx/gfx/gfx"
	"github.com/novagfx/gfx/types"
)

// ScaleMode is the renderer's texture-scaling quality mode, one axis of
// the sampler table (§4.7 "a 3x2 table (scale modes x address modes)").
type ScaleMode uint8

const (
	ScaleNearest ScaleMode = iota
	ScaleLinear
)

// addressModes enumerates the sampler table's other axis, in table order.
var addressModes = [3]types.AddressMode{
	types.AddressModeRepeat,
	types.AddressModeMirroredRepeat,
	types.AddressModeClampToEdge,
}

// SamplerCache is the pre-allocated 3x2 scale-mode x address-mode sampler
// table (§4.7 "Samplers"): built once at renderer construction and
// indexed per draw, never created or released mid-frame.
type SamplerCache struct {
	device *gfx.Device
	table  [2][3]*gfx.Sampler
}

func newSamplerCache(d *gfx.Device) (*SamplerCache, error) {
	sc := &SamplerCache{device: d}
	filters := [2]types.Filter{types.FilterNearest, types.FilterLinear}
	mipmapModes := [2]types.MipmapMode{types.MipmapModeNearest, types.MipmapModeLinear}

	for scale := range filters {
		for addr := range addressModes {
			s, err := d.CreateSampler(&types.SamplerDescriptor{
				Label:         fmt.Sprintf("render2d-sampler-%d-%d", scale, addr),
				MinFilter:     filters[scale],
				MagFilter:     filters[scale],
				MipmapMode:    mipmapModes[scale],
				AddressModeU:  addressModes[addr],
				AddressModeV:  addressModes[addr],
				AddressModeW:  addressModes[addr],
				MinLod:        0,
				MaxLod:        1000,
			})
			if err != nil {
				sc.release()
				return nil, fmt.Errorf("render2d: build sampler table: %w", err)
			}
			sc.table[scale][addr] = s
		}
	}
	return sc, nil
}

// Get returns the table entry for (scale, addr). The returned pointer is
// stable for the renderer's lifetime (testable property 6).
func (sc *SamplerCache) Get(scale ScaleMode, addr types.AddressMode) *gfx.Sampler {
	for i, a := range addressModes {
		if a == addr {
			return sc.table[scale][i]
		}
	}
	return sc.table[scale][0]
}

func (sc *SamplerCache) release() {
	for _, row := range sc.table {
		for _, s := range row {
			if s != nil {
				sc.device.ReleaseSampler(s)
			}
		}
	}
	sc.table = [2][3]*gfx.Sampler{}
}
