// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package d3d12

import (
	"syscall"
	"unsafe"
)

// CopyTextureRegion, SetMarker, BeginEvent/EndEvent, and ExecuteIndirect
// have vtable slots in id3d12GraphicsCommandListVtbl but no Go wrapper in
// the retrieved sources — the same retrieval gap documented for
// constants.go, just method wrappers instead of enum declarations.

// CopyTextureRegion copies a region between two texture subresources (or
// between a texture and a buffer, via a placed-footprint source/dest).
func (c *ID3D12GraphicsCommandList) CopyTextureRegion(dst *D3D12_TEXTURE_COPY_LOCATION, dstX, dstY, dstZ uint32, src *D3D12_TEXTURE_COPY_LOCATION, srcBox *D3D12_BOX) {
	_, _, _ = syscall.Syscall9(
		c.vtbl.CopyTextureRegion,
		7,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(dstX),
		uintptr(dstY),
		uintptr(dstZ),
		uintptr(unsafe.Pointer(src)),
		uintptr(unsafe.Pointer(srcBox)),
		0, 0,
	)
}

// ExecuteIndirect issues an indirect draw or dispatch described by the
// command signature's argument layout, reading argument data from a
// buffer the CPU previously wrote or the GPU previously produced.
func (c *ID3D12GraphicsCommandList) ExecuteIndirect(commandSignature *ID3D12CommandSignature, maxCommandCount uint32, argumentBuffer *ID3D12Resource, argumentBufferOffset uint64, countBuffer *ID3D12Resource, countBufferOffset uint64) {
	_, _, _ = syscall.Syscall9(
		c.vtbl.ExecuteIndirect,
		7,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(commandSignature)),
		uintptr(maxCommandCount),
		uintptr(unsafe.Pointer(argumentBuffer)),
		uintptr(argumentBufferOffset),
		uintptr(unsafe.Pointer(countBuffer)),
		uintptr(countBufferOffset),
		0, 0,
	)
}

// SetMarker inserts a PIX/debug-layer marker, the native backing for
// InsertDebugLabel.
func (c *ID3D12GraphicsCommandList) SetMarker(metadata uint32, data unsafe.Pointer, size uint32) {
	_, _, _ = syscall.Syscall6(
		c.vtbl.SetMarker,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(metadata),
		uintptr(data),
		uintptr(size),
		0, 0,
	)
}

// BeginEvent and EndEvent bracket a named range of commands, the native
// backing for PushDebugGroup/PopDebugGroup.
func (c *ID3D12GraphicsCommandList) BeginEvent(metadata uint32, data unsafe.Pointer, size uint32) {
	_, _, _ = syscall.Syscall6(
		c.vtbl.BeginEvent,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(metadata),
		uintptr(data),
		uintptr(size),
		0, 0,
	)
}

func (c *ID3D12GraphicsCommandList) EndEvent() {
	_, _, _ = syscall.Syscall(
		c.vtbl.EndEvent,
		1,
		uintptr(unsafe.Pointer(c)),
		0, 0,
	)
}

// CopyDescriptorsSimple copies a contiguous run of same-type descriptors
// from a CPU-visible staging location into a shader-visible heap range —
// how a bind call assembles a root-parameter descriptor table from
// individually-created resource views.
func (d *ID3D12Device) CopyDescriptorsSimple(numDescriptors uint32, destStart, srcStart D3D12_CPU_DESCRIPTOR_HANDLE, descriptorHeapsType D3D12_DESCRIPTOR_HEAP_TYPE) {
	_, _, _ = syscall.Syscall6(
		d.vtbl.CopyDescriptorsSimple,
		5,
		uintptr(unsafe.Pointer(d)),
		uintptr(numDescriptors),
		destStart.Ptr,
		srcStart.Ptr,
		uintptr(descriptorHeapsType),
		0,
	)
}
