// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package noop

import (
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// commandListHandle records nothing; it only exists so tests can assert on
// call counts if they choose to wrap Device.
type commandListHandle struct{ id uint64 }

func (d *Device) AcquireCommandList() (hal.CommandList, error) {
	return &commandListHandle{id: d.id()}, nil
}

func (d *Device) Submit(hal.CommandList) error { return nil }

type fenceHandle struct{ value uint64 }

func (d *Device) SubmitAndAcquireFence(hal.CommandList) (hal.Fence, error) {
	v := d.fenceVal.Add(1)
	return &fenceHandle{value: v}, nil
}

func (d *Device) InsertDebugLabel(hal.CommandList, string) {}
func (d *Device) PushDebugGroup(hal.CommandList, string)   {}
func (d *Device) PopDebugGroup(hal.CommandList)            {}

func (d *Device) BeginRenderPass(hal.CommandList, []hal.ColorAttachment, *hal.DepthStencilAttachment) error {
	return nil
}
func (d *Device) EndRenderPass(hal.CommandList) {}

func (d *Device) SetViewport(hal.CommandList, hal.Viewport) {}
func (d *Device) SetScissor(hal.CommandList, hal.Rect2D)    {}

func (d *Device) BindGraphicsPipeline(hal.CommandList, hal.GraphicsPipeline) {}
func (d *Device) BindVertexBuffers(hal.CommandList, uint32, []hal.BufferBinding)       {}
func (d *Device) BindIndexBuffer(hal.CommandList, hal.BufferBinding, types.IndexElementSize) {
}
func (d *Device) BindVertexSamplers(hal.CommandList, uint32, []hal.Sampler, []hal.Texture)   {}
func (d *Device) BindFragmentSamplers(hal.CommandList, uint32, []hal.Sampler, []hal.Texture) {}
func (d *Device) BindVertexStorageTextures(hal.CommandList, uint32, []hal.Texture)           {}
func (d *Device) BindFragmentStorageTextures(hal.CommandList, uint32, []hal.Texture)         {}
func (d *Device) BindVertexStorageBuffers(hal.CommandList, uint32, []hal.Buffer)             {}
func (d *Device) BindFragmentStorageBuffers(hal.CommandList, uint32, []hal.Buffer)           {}
func (d *Device) PushVertexUniformData(hal.CommandList, uint32, []byte)                      {}
func (d *Device) PushFragmentUniformData(hal.CommandList, uint32, []byte)                    {}

func (d *Device) DrawPrimitives(hal.CommandList, uint32, uint32, uint32, uint32) {}
func (d *Device) DrawIndexedPrimitives(hal.CommandList, uint32, uint32, uint32, int32, uint32) {
}
func (d *Device) DrawPrimitivesIndirect(hal.CommandList, hal.Buffer, uint32, uint32)        {}
func (d *Device) DrawIndexedPrimitivesIndirect(hal.CommandList, hal.Buffer, uint32, uint32) {}

func (d *Device) BeginComputePass(hal.CommandList, []hal.Texture, []hal.Buffer) error { return nil }
func (d *Device) EndComputePass(hal.CommandList)                                      {}
func (d *Device) BindComputePipeline(hal.CommandList, hal.ComputePipeline)            {}
func (d *Device) BindComputeStorageTextures(hal.CommandList, uint32, []hal.Texture)   {}
func (d *Device) BindComputeStorageBuffers(hal.CommandList, uint32, []hal.Buffer)     {}
func (d *Device) PushComputeUniformData(hal.CommandList, uint32, []byte)              {}
func (d *Device) DispatchCompute(hal.CommandList, uint32, uint32, uint32)             {}
func (d *Device) DispatchComputeIndirect(hal.CommandList, hal.Buffer, uint32)         {}

func (d *Device) BeginCopyPass(hal.CommandList) error { return nil }
func (d *Device) EndCopyPass(hal.CommandList)         {}
func (d *Device) UploadToBuffer(cl hal.CommandList, src hal.TransferBuffer, srcOffset uint32, dst hal.BufferRegion) {
	tb, ok := src.(*transferBufferHandle)
	if !ok {
		return
	}
	bh, ok := dst.Buffer.(*bufferHandle)
	if !ok {
		return
	}
	_ = tb
	_ = bh
}
func (d *Device) UploadToTexture(hal.CommandList, hal.TransferBuffer, uint32, hal.TextureRegion, uint32, uint32) {
}
func (d *Device) DownloadFromBuffer(hal.CommandList, hal.BufferRegion, hal.TransferBuffer, uint32) {
}
func (d *Device) DownloadFromTexture(hal.CommandList, hal.TextureRegion, hal.TransferBuffer, uint32, uint32, uint32) {
}
func (d *Device) CopyBufferToBuffer(hal.CommandList, hal.BufferRegion, hal.BufferRegion)    {}
func (d *Device) CopyTextureToTexture(hal.CommandList, hal.TextureRegion, hal.TextureRegion) {}
func (d *Device) GenerateMipmaps(hal.CommandList, hal.Texture)                               {}
func (d *Device) Blit(hal.CommandList, hal.TextureRegion, hal.TextureRegion, types.Filter)    {}

func (d *Device) Wait() error { return nil }
func (d *Device) WaitForFences(fences []hal.Fence, waitAll bool) error {
	return nil
}
func (d *Device) QueryFence(f hal.Fence) bool {
	_, ok := f.(*fenceHandle)
	return ok
}
func (d *Device) ReleaseFence(hal.Fence) {}
