// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"testing"

	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/types"
)

func TestBufferResourceFlags(t *testing.T) {
	tests := []struct {
		name   string
		usage  types.BufferUsage
		expect d3d12.D3D12_RESOURCE_FLAGS
	}{
		{"Vertex only", types.BufferUsageVertex, d3d12.D3D12_RESOURCE_FLAG_NONE},
		{"ComputeStorageWrite sets UAV flag", types.BufferUsageComputeStorageWrite, d3d12.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS},
		{
			"ComputeStorageWrite combined with Vertex still sets UAV flag",
			types.BufferUsageVertex | types.BufferUsageComputeStorageWrite,
			d3d12.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bufferResourceFlags(tt.usage); got != tt.expect {
				t.Errorf("bufferResourceFlags(%v) = %v, want %v", tt.usage, got, tt.expect)
			}
		})
	}
}

func TestBufferResourceDesc(t *testing.T) {
	desc := bufferResourceDesc(4096, d3d12.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS)
	if desc.Dimension != d3d12.D3D12_RESOURCE_DIMENSION_BUFFER {
		t.Errorf("Dimension = %v, want BUFFER", desc.Dimension)
	}
	if desc.Width != 4096 {
		t.Errorf("Width = %d, want 4096", desc.Width)
	}
	if desc.Height != 1 || desc.DepthOrArraySize != 1 || desc.MipLevels != 1 {
		t.Errorf("buffer resource desc must describe a 1x1x1 linear extent, got Height=%d DepthOrArraySize=%d MipLevels=%d", desc.Height, desc.DepthOrArraySize, desc.MipLevels)
	}
	if desc.SampleDesc.Count != 1 {
		t.Errorf("SampleDesc.Count = %d, want 1 (buffers are never multisampled)", desc.SampleDesc.Count)
	}
	if desc.Flags != d3d12.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS {
		t.Errorf("Flags = %v, want passthrough of caller's flags", desc.Flags)
	}
}

func TestTextureResourceFlags(t *testing.T) {
	tests := []struct {
		name   string
		usage  types.TextureUsage
		expect d3d12.D3D12_RESOURCE_FLAGS
	}{
		{"Sampler only", types.TextureUsageSampler, d3d12.D3D12_RESOURCE_FLAG_NONE},
		{"ColorTarget", types.TextureUsageColorTarget, d3d12.D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET},
		{"DepthStencilTarget", types.TextureUsageDepthStencilTarget, d3d12.D3D12_RESOURCE_FLAG_ALLOW_DEPTH_STENCIL},
		{"ComputeStorageWrite", types.TextureUsageComputeStorageWrite, d3d12.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS},
		{
			"ColorTarget and ComputeStorageWrite combine",
			types.TextureUsageColorTarget | types.TextureUsageComputeStorageWrite,
			d3d12.D3D12_RESOURCE_FLAG_ALLOW_RENDER_TARGET | d3d12.D3D12_RESOURCE_FLAG_ALLOW_UNORDERED_ACCESS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textureResourceFlags(tt.usage); got != tt.expect {
				t.Errorf("textureResourceFlags(%v) = %v, want %v", tt.usage, got, tt.expect)
			}
		})
	}
}

func TestHeapProperties(t *testing.T) {
	hp := heapProperties(d3d12.D3D12_HEAP_TYPE_UPLOAD)
	if hp.Type != d3d12.D3D12_HEAP_TYPE_UPLOAD {
		t.Errorf("Type = %v, want UPLOAD", hp.Type)
	}
	if hp.CPUPageProperty != d3d12.D3D12_CPU_PAGE_PROPERTY_UNKNOWN {
		t.Errorf("CPUPageProperty = %v, want UNKNOWN (deferred to the heap type)", hp.CPUPageProperty)
	}
}
