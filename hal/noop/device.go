// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package noop

import (
	"fmt"
	"sync/atomic"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// Device is the in-memory hal.Device implementation.
type Device struct {
	opts     hal.DeviceOptions
	nextID   atomic.Uint64
	fenceVal atomic.Uint64
}

func newDevice(opts hal.DeviceOptions) *Device {
	return &Device{opts: opts}
}

func (d *Device) id() uint64 { return d.nextID.Add(1) }

func (d *Device) Backend() types.Backend { return types.BackendNoop }

func (d *Device) SupportsTextureFormat(types.TextureFormat, types.TextureUsage) bool { return true }
func (d *Device) SupportsPresentMode(hal.Window, types.PresentMode) bool             { return true }
func (d *Device) SupportsSwapchainComposition(hal.Window, types.SwapchainComposition) bool {
	return true
}
func (d *Device) BestSampleCount(_ types.TextureFormat, desired types.SampleCount) types.SampleCount {
	return desired
}

// --- resources ---

type shaderHandle struct {
	id    uint64
	desc  types.ShaderDescriptor
}

func (d *Device) CreateShader(desc *types.ShaderDescriptor) (hal.Shader, error) {
	if desc == nil {
		return nil, fmt.Errorf("noop: nil shader descriptor")
	}
	return &shaderHandle{id: d.id(), desc: *desc}, nil
}
func (d *Device) ReleaseShader(hal.Shader) {}

type graphicsPipelineHandle struct {
	id   uint64
	desc types.GraphicsPipelineDescriptor
}

func (d *Device) CreateGraphicsPipeline(desc *types.GraphicsPipelineDescriptor, _, _ hal.Shader) (hal.GraphicsPipeline, error) {
	if desc == nil {
		return nil, fmt.Errorf("noop: nil graphics pipeline descriptor")
	}
	return &graphicsPipelineHandle{id: d.id(), desc: *desc}, nil
}
func (d *Device) ReleaseGraphicsPipeline(hal.GraphicsPipeline) {}

type computePipelineHandle struct{ id uint64 }

func (d *Device) CreateComputePipeline(desc *types.ComputePipelineDescriptor, _ hal.Shader) (hal.ComputePipeline, error) {
	if desc == nil {
		return nil, fmt.Errorf("noop: nil compute pipeline descriptor")
	}
	return &computePipelineHandle{id: d.id()}, nil
}
func (d *Device) ReleaseComputePipeline(hal.ComputePipeline) {}

type samplerHandle struct{ id uint64 }

func (d *Device) CreateSampler(desc *types.SamplerDescriptor) (hal.Sampler, error) {
	if desc == nil {
		return nil, fmt.Errorf("noop: nil sampler descriptor")
	}
	return &samplerHandle{id: d.id()}, nil
}
func (d *Device) ReleaseSampler(hal.Sampler) {}

type textureHandle struct {
	id   uint64
	desc types.TextureDescriptor
	name string
}

func (d *Device) CreateTexture(desc *types.TextureDescriptor) (hal.Texture, error) {
	if desc == nil {
		return nil, fmt.Errorf("noop: nil texture descriptor")
	}
	return &textureHandle{id: d.id(), desc: *desc}, nil
}
func (d *Device) ReleaseTexture(hal.Texture) {}

type bufferHandle struct {
	id   uint64
	desc types.BufferDescriptor
	name string
}

func (d *Device) CreateBuffer(desc *types.BufferDescriptor) (hal.Buffer, error) {
	if desc == nil {
		return nil, fmt.Errorf("noop: nil buffer descriptor")
	}
	return &bufferHandle{id: d.id(), desc: *desc}, nil
}
func (d *Device) ReleaseBuffer(hal.Buffer) {}

type transferBufferHandle struct {
	id    uint64
	desc  types.TransferBufferDescriptor
	bytes []byte
}

func (d *Device) CreateTransferBuffer(desc *types.TransferBufferDescriptor) (hal.TransferBuffer, error) {
	if desc == nil {
		return nil, fmt.Errorf("noop: nil transfer buffer descriptor")
	}
	return &transferBufferHandle{id: d.id(), desc: *desc, bytes: make([]byte, desc.Size)}, nil
}
func (d *Device) ReleaseTransferBuffer(hal.TransferBuffer) {}

func (d *Device) SetBufferName(b hal.Buffer, name string) {
	if bh, ok := b.(*bufferHandle); ok {
		bh.name = name
	}
}
func (d *Device) SetTextureName(t hal.Texture, name string) {
	if th, ok := t.(*textureHandle); ok {
		th.name = name
	}
}

func (d *Device) MapTransferBuffer(buf hal.TransferBuffer, _ bool) ([]byte, error) {
	tb, ok := buf.(*transferBufferHandle)
	if !ok {
		return nil, fmt.Errorf("noop: invalid transfer buffer")
	}
	return tb.bytes, nil
}
func (d *Device) UnmapTransferBuffer(hal.TransferBuffer) {}

func (d *Device) Destroy() {}
