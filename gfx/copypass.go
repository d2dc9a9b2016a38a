// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// TextureRegion addresses a sub-region of a texture for copy/upload
// operations.
type TextureRegion struct {
	Texture  *Texture
	MipLevel uint32
	Layer    uint32
	X, Y, Z  uint32
	Width    uint32
	Height   uint32
	Depth    uint32
}

// BufferRegion addresses a byte range of a buffer for copy/upload
// operations.
type BufferRegion struct {
	Buffer *Buffer
	Offset uint32
	Size   uint32
}

func (r TextureRegion) toHAL() hal.TextureRegion {
	return hal.TextureRegion{
		Texture:  r.Texture.native,
		MipLevel: r.MipLevel,
		Layer:    r.Layer,
		X:        r.X, Y: r.Y, Z: r.Z,
		Width:  r.Width,
		Height: r.Height,
		Depth:  r.Depth,
	}
}

func (r BufferRegion) toHAL() hal.BufferRegion {
	return hal.BufferRegion{Buffer: r.Buffer.native, Offset: r.Offset, Size: r.Size}
}

// BeginCopyPass opens a copy pass (§4.3).
func (cb *CommandBuffer) BeginCopyPass() error {
	if verr := cb.invariant(cb.state == cbRecording, true, "BeginCopyPass: command buffer is %s, must be recording with no pass active", cb.state); verr != nil {
		return verr
	}
	if err := cb.device.hal.BeginCopyPass(cb.native); err != nil {
		return err
	}
	cb.state = cbCopyPassActive
	return nil
}

// EndCopyPass closes the active copy pass.
func (cb *CommandBuffer) EndCopyPass() error {
	if verr := cb.invariant(cb.state == cbCopyPassActive, true, "EndCopyPass: command buffer is %s, no copy pass is active", cb.state); verr != nil {
		return verr
	}
	cb.device.hal.EndCopyPass(cb.native)
	cb.state = cbRecording
	return nil
}

// UploadToBuffer copies from a mapped transfer buffer region to a device
// buffer region.
func (cb *CommandBuffer) UploadToBuffer(src *TransferBuffer, srcOffset uint32, dst BufferRegion) {
	if verr := cb.invariant(cb.state == cbCopyPassActive, true, "UploadToBuffer: no copy pass active"); verr != nil {
		return
	}
	cb.device.hal.UploadToBuffer(cb.native, src.native, srcOffset, dst.toHAL())
}

// UploadToTexture copies from a mapped transfer buffer region to a device
// texture region, respecting srcPitch/srcLayerPitch for rows that aren't
// tightly packed.
func (cb *CommandBuffer) UploadToTexture(src *TransferBuffer, srcOffset uint32, dst TextureRegion, srcPitch, srcLayerPitch uint32) {
	if verr := cb.invariant(cb.state == cbCopyPassActive, true, "UploadToTexture: no copy pass active"); verr != nil {
		return
	}
	cb.device.hal.UploadToTexture(cb.native, src.native, srcOffset, dst.toHAL(), srcPitch, srcLayerPitch)
}

// DownloadFromBuffer copies from a device buffer region to a mapped
// transfer buffer region.
func (cb *CommandBuffer) DownloadFromBuffer(src BufferRegion, dst *TransferBuffer, dstOffset uint32) {
	if verr := cb.invariant(cb.state == cbCopyPassActive, true, "DownloadFromBuffer: no copy pass active"); verr != nil {
		return
	}
	cb.device.hal.DownloadFromBuffer(cb.native, src.toHAL(), dst.native, dstOffset)
}

// DownloadFromTexture copies from a device texture region to a mapped
// transfer buffer region.
func (cb *CommandBuffer) DownloadFromTexture(src TextureRegion, dst *TransferBuffer, dstOffset, dstPitch, dstLayerPitch uint32) {
	if verr := cb.invariant(cb.state == cbCopyPassActive, true, "DownloadFromTexture: no copy pass active"); verr != nil {
		return
	}
	cb.device.hal.DownloadFromTexture(cb.native, src.toHAL(), dst.native, dstOffset, dstPitch, dstLayerPitch)
}

// CopyBufferToBuffer copies device-local buffer data without staging
// through a transfer buffer.
func (cb *CommandBuffer) CopyBufferToBuffer(src, dst BufferRegion) {
	if verr := cb.invariant(cb.state == cbCopyPassActive, true, "CopyBufferToBuffer: no copy pass active"); verr != nil {
		return
	}
	cb.device.hal.CopyBufferToBuffer(cb.native, src.toHAL(), dst.toHAL())
}

// CopyTextureToTexture copies device-local texture data without staging
// through a transfer buffer.
func (cb *CommandBuffer) CopyTextureToTexture(src, dst TextureRegion) {
	if verr := cb.invariant(cb.state == cbCopyPassActive, true, "CopyTextureToTexture: no copy pass active"); verr != nil {
		return
	}
	cb.device.hal.CopyTextureToTexture(cb.native, src.toHAL(), dst.toHAL())
}

// GenerateMipmaps populates every level beyond the base from texture's
// base level. The hal/dx12 back-end records nothing for this call and
// leaves the other levels unchanged.
func (cb *CommandBuffer) GenerateMipmaps(texture *Texture) {
	if verr := cb.invariant(cb.state == cbCopyPassActive, true, "GenerateMipmaps: no copy pass active"); verr != nil {
		return
	}
	cb.device.hal.GenerateMipmaps(cb.native, texture.native)
}

// Blit copies src to dst, resampling with filter if their extents differ.
// The hal/dx12 back-end records nothing for this call; dst is left
// unchanged.
func (cb *CommandBuffer) Blit(src, dst TextureRegion, filter types.Filter) {
	if verr := cb.invariant(cb.state == cbCopyPassActive, true, "Blit: no copy pass active"); verr != nil {
		return
	}
	cb.device.hal.Blit(cb.native, src.toHAL(), dst.toHAL(), filter)
}
