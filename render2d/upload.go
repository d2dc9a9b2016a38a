// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d

import (
	"fmt"

	"github.com/novagfx/gfx/gfx"
	"github.com/novagfx/gfx/types"
)

// Texture wraps a gfx.Texture with the bookkeeping a 2D renderer needs: a
// known bytes-per-pixel for upload sizing, and — for streaming textures —
// a host-side shadow copy that backs Lock/Unlock (§4.7 "Textured
// upload").
type Texture struct {
	native     *gfx.Texture
	width      uint32
	height     uint32
	bpp        uint32
	streaming  bool
	shadow     []byte
	lockX      uint32
	lockY      uint32
	lockWidth  uint32
	lockHeight uint32
	locked     bool
}

// Native returns the underlying gfx.Texture for binding to a draw.
func (t *Texture) Native() *gfx.Texture { return t.native }

// CreateTexture creates a sampled 2D texture. Streaming textures
// additionally allocate a host-side shadow buffer for Lock/Unlock.
func (r *Renderer) CreateTexture(width, height uint32, format types.TextureFormat, streaming bool) (*Texture, error) {
	native, err := r.device.CreateTexture(&types.TextureDescriptor{
		Label:       "render2d-texture",
		Format:      format,
		Type:        types.TextureType2D,
		Width:       width,
		Height:      height,
		Depth:       1,
		LayerCount:  1,
		LevelCount:  1,
		SampleCount: types.SampleCount1,
		Usage:       types.TextureUsageSampler,
	})
	if err != nil {
		return nil, err
	}
	bpp := format.BlockSize()
	t := &Texture{native: native, width: width, height: height, bpp: bpp, streaming: streaming}
	if streaming {
		t.shadow = make([]byte, uint64(width)*uint64(height)*uint64(bpp))
	}
	return t, nil
}

// ReleaseTexture releases the underlying device texture.
func (r *Renderer) ReleaseTexture(t *Texture) {
	if t == nil {
		return
	}
	r.device.ReleaseTexture(t.native)
}

// UpdateTexture uploads pixels into the region (x, y, w, h) of t (§4.7
// "Textured upload"): a single-use upload transfer buffer of exactly
// w*h*bpp bytes is allocated, pixels are copied respecting the caller's
// pitch, and one copy pass transfers them to the destination region. cb
// must be in the Recording state with no pass active.
func (r *Renderer) UpdateTexture(cb *gfx.CommandBuffer, t *Texture, x, y, w, h uint32, pixels []byte, pitch uint32) error {
	dstPitch := w * t.bpp
	size := dstPitch * h

	tb, err := r.device.CreateTransferBuffer(&types.TransferBufferDescriptor{
		Label:     "render2d-texture-upload",
		Direction: types.TransferBufferUpload,
		Size:      size,
	})
	if err != nil {
		return fmt.Errorf("render2d: texture upload transfer buffer: %w", err)
	}
	defer r.device.ReleaseTransferBuffer(tb)

	mapped, err := r.device.MapTransferBuffer(tb, true)
	if err != nil {
		return fmt.Errorf("render2d: map texture upload buffer: %w", err)
	}
	for row := uint32(0); row < h; row++ {
		src := pixels[row*pitch : row*pitch+dstPitch]
		copy(mapped[row*dstPitch:(row+1)*dstPitch], src)
	}
	r.device.UnmapTransferBuffer(tb)

	if err := cb.BeginCopyPass(); err != nil {
		return err
	}
	cb.UploadToTexture(tb, 0, gfx.TextureRegion{
		Texture: t.native,
		X:       x, Y: y,
		Width:  w,
		Height: h,
		Depth:  1,
	}, dstPitch, dstPitch*h)
	if err := cb.EndCopyPass(); err != nil {
		return err
	}

	if t.streaming {
		for row := uint32(0); row < h; row++ {
			shadowOffset := ((y+row)*t.width + x) * t.bpp
			copy(t.shadow[shadowOffset:shadowOffset+dstPitch], mapped[row*dstPitch:(row+1)*dstPitch])
		}
	}
	return nil
}

// Lock returns a writable view into a streaming texture's host-side
// shadow for the region (x, y, w, h); the caller writes pixels directly
// into it and calls Unlock to push the region to the GPU (§4.7 "Streaming
// textures additionally keep a host-side shadow for Lock/Unlock").
func (t *Texture) Lock(x, y, w, h uint32) []byte {
	t.lockX, t.lockY, t.lockWidth, t.lockHeight = x, y, w, h
	t.locked = true
	view := make([]byte, w*h*t.bpp)
	rowBytes := w * t.bpp
	for row := uint32(0); row < h; row++ {
		shadowOffset := ((y+row)*t.width + x) * t.bpp
		copy(view[row*rowBytes:(row+1)*rowBytes], t.shadow[shadowOffset:shadowOffset+rowBytes])
	}
	return view
}

// Unlock uploads the region written into by the matching Lock call to the
// GPU texture and updates the shadow to match.
func (r *Renderer) Unlock(cb *gfx.CommandBuffer, t *Texture, pixels []byte) error {
	if !t.locked {
		return fmt.Errorf("render2d: Unlock without a matching Lock")
	}
	t.locked = false
	return r.UpdateTexture(cb, t, t.lockX, t.lockY, t.lockWidth, t.lockHeight, pixels, t.lockWidth*t.bpp)
}
