// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// Texture is a typed, opaque handle to a device texture (design note 9.1).
//
// A texture returned by CommandBuffer.AcquireSwapchainTexture is a borrowed view
// owned by the window (design note 9.5): it is valid only between that
// acquire and the command buffer's next submission, must not be released
// through ReleaseTexture, and Device.ReleaseTexture is a no-op on it.
type Texture struct {
	device   *Device
	native   hal.Texture
	desc     types.TextureDescriptor
	borrowed bool
	released bool
}

func (t *Texture) Format() types.TextureFormat { return t.desc.Format }
func (t *Texture) Width() uint32               { return t.desc.Width }
func (t *Texture) Height() uint32              { return t.desc.Height }
func (t *Texture) Depth() uint32               { return t.desc.Depth }
func (t *Texture) LayerCount() uint32          { return t.desc.LayerCount }
func (t *Texture) LevelCount() uint32          { return t.desc.LevelCount }
func (t *Texture) SampleCount() types.SampleCount { return t.desc.SampleCount }
func (t *Texture) Usage() types.TextureUsage   { return t.desc.Usage }
func (t *Texture) Label() string               { return t.desc.Label }

// CreateTexture creates a device texture (§6 Resource, §3 invariants).
func (d *Device) CreateTexture(desc *types.TextureDescriptor) (*Texture, error) {
	if verr := requireNonNil(desc == nil, "texture descriptor"); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(desc.Width > 0 && desc.Height > 0, false, "texture %q: width and height must be nonzero", desc.Label); verr != nil {
		return nil, verr
	}
	if desc.Type == types.TextureTypeCube {
		if verr := d.invariant(desc.Width == desc.Height, false, "width and height must be identical"); verr != nil {
			return nil, verr
		}
		if verr := d.invariant(desc.LayerCount == types.CubeTextureLayerCount, false, "cube texture %q: layerCount must be %d", desc.Label, types.CubeTextureLayerCount); verr != nil {
			return nil, verr
		}
		if verr := d.invariant(desc.SampleCount == types.SampleCount1, false, "cube texture %q: sampleCount must be 1", desc.Label); verr != nil {
			return nil, verr
		}
		if verr := d.invariant(desc.Depth == 1, false, "cube texture %q: depth must be 1", desc.Label); verr != nil {
			return nil, verr
		}
	}
	if desc.Type == types.TextureType3D {
		if verr := d.invariant(!desc.Usage.Has(types.TextureUsageDepthStencilTarget), false, "3D texture %q: must not be a depth-stencil target", desc.Label); verr != nil {
			return nil, verr
		}
		if verr := d.invariant(desc.SampleCount == types.SampleCount1, false, "3D texture %q: must not be multisampled", desc.Label); verr != nil {
			return nil, verr
		}
	}
	if desc.SampleCount != types.SampleCount1 {
		if verr := d.invariant(desc.LevelCount <= 1, false, "multisampled texture %q: levelCount must be 1", desc.Label); verr != nil {
			return nil, verr
		}
	}
	if desc.Type == types.TextureType2D || desc.Type == types.TextureType2DArray || desc.Type == types.TextureTypeCube {
		if verr := d.invariant(desc.Width <= types.MaxTextureDimension2D && desc.Height <= types.MaxTextureDimension2D, false, "texture %q: exceeds MaxTextureDimension2D", desc.Label); verr != nil {
			return nil, verr
		}
	} else {
		if verr := d.invariant(desc.Width <= types.MaxTextureDimension3D && desc.Height <= types.MaxTextureDimension3D && desc.Depth <= types.MaxTextureDimension3D, false, "texture %q: exceeds MaxTextureDimension3D", desc.Label); verr != nil {
			return nil, verr
		}
	}
	if verr := d.invariant(!desc.Usage.Has(types.TextureUsageSampler) || !desc.Format.IsInteger(), false, "integer-format texture %q: cannot expose SAMPLER usage", desc.Label); verr != nil {
		return nil, verr
	}
	native, err := d.hal.CreateTexture(desc)
	if err != nil {
		return nil, err
	}
	return &Texture{device: d, native: native, desc: *desc}, nil
}

// ReleaseTexture releases t. Releasing a borrowed swapchain texture
// (design note 9.5) or a nil/already-released texture is a no-op.
func (d *Device) ReleaseTexture(t *Texture) {
	if t == nil || t.released || t.borrowed {
		return
	}
	t.released = true
	d.hal.ReleaseTexture(t.native)
}

// SetTextureName updates t's debug label.
func (d *Device) SetTextureName(t *Texture, name string) {
	if verr := d.invariant(t != nil && !t.released, true, "SetTextureName: texture is nil or already released"); verr != nil {
		return
	}
	t.desc.Label = name
	d.hal.SetTextureName(t.native, name)
}

// SupportsTextureFormat reports whether format can be used with usage on
// this device (§6 Device "supports_*").
func (d *Device) SupportsTextureFormat(format types.TextureFormat, usage types.TextureUsage) bool {
	return d.hal.SupportsTextureFormat(format, usage)
}

// BestSampleCount returns the highest sample count at or below desired that
// format actually supports (§6 Device).
func (d *Device) BestSampleCount(format types.TextureFormat, desired types.SampleCount) types.SampleCount {
	return d.hal.BestSampleCount(format, desired)
}

// TexelBlockSize returns the size in bytes of one texel of format (§6
// Device "texel_block_size").
func (d *Device) TexelBlockSize(format types.TextureFormat) uint32 {
	return format.BlockSize()
}
