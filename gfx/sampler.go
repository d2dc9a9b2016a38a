// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// Sampler is a typed, opaque handle to a sampler object.
type Sampler struct {
	device   *Device
	native   hal.Sampler
	desc     types.SamplerDescriptor
	released bool
}

func (s *Sampler) Label() string { return s.desc.Label }

// CreateSampler creates a sampler (§6 Resource).
func (d *Device) CreateSampler(desc *types.SamplerDescriptor) (*Sampler, error) {
	if verr := requireNonNil(desc == nil, "sampler descriptor"); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(desc.MaxLod >= desc.MinLod, false, "sampler %q: maxLod must be >= minLod", desc.Label); verr != nil {
		return nil, verr
	}
	native, err := d.hal.CreateSampler(desc)
	if err != nil {
		return nil, err
	}
	return &Sampler{device: d, native: native, desc: *desc}, nil
}

// ReleaseSampler releases s. Calling it more than once is a no-op.
func (d *Device) ReleaseSampler(s *Sampler) {
	if s == nil || s.released {
		return
	}
	s.released = true
	d.hal.ReleaseSampler(s.native)
}
