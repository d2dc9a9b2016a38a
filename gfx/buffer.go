// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// Buffer is a typed, opaque handle to a device buffer (design note 9.1). It
// carries a released flag rather than a generational index: the
// single-threaded, single-device recording model (§5) makes
// use-after-release detectable from that flag alone.
type Buffer struct {
	device   *Device
	native   hal.Buffer
	usage    types.BufferUsage
	size     uint32
	label    string
	released bool
}

func (b *Buffer) Size() uint32            { return b.size }
func (b *Buffer) Usage() types.BufferUsage { return b.usage }
func (b *Buffer) Label() string           { return b.label }

// TransferBuffer is a typed handle to a host-visible staging buffer.
type TransferBuffer struct {
	device    *Device
	native    hal.TransferBuffer
	direction types.TransferBufferDirection
	size      uint32
	label     string
	released  bool
}

func (t *TransferBuffer) Size() uint32 { return t.size }
func (t *TransferBuffer) Direction() types.TransferBufferDirection { return t.direction }

// CreateBuffer creates a device buffer (§6 Resource).
func (d *Device) CreateBuffer(desc *types.BufferDescriptor) (*Buffer, error) {
	if verr := requireNonNil(desc == nil, "buffer descriptor"); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(desc.Size > 0, false, "buffer %q: size must be nonzero", desc.Label); verr != nil {
		return nil, verr
	}
	native, err := d.hal.CreateBuffer(desc)
	if err != nil {
		return nil, err
	}
	return &Buffer{device: d, native: native, usage: desc.Usage, size: desc.Size, label: desc.Label}, nil
}

// ReleaseBuffer releases b. Calling it more than once is a no-op.
func (d *Device) ReleaseBuffer(b *Buffer) {
	if b == nil || b.released {
		return
	}
	b.released = true
	d.hal.ReleaseBuffer(b.native)
}

// SetBufferName updates b's debug label.
func (d *Device) SetBufferName(b *Buffer, name string) {
	if verr := d.invariant(b != nil && !b.released, true, "SetBufferName: buffer is nil or already released"); verr != nil {
		return
	}
	b.label = name
	d.hal.SetBufferName(b.native, name)
}

// CreateTransferBuffer creates a host-visible staging buffer (§6 Resource).
func (d *Device) CreateTransferBuffer(desc *types.TransferBufferDescriptor) (*TransferBuffer, error) {
	if verr := requireNonNil(desc == nil, "transfer buffer descriptor"); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(desc.Size > 0, false, "transfer buffer %q: size must be nonzero", desc.Label); verr != nil {
		return nil, verr
	}
	native, err := d.hal.CreateTransferBuffer(desc)
	if err != nil {
		return nil, err
	}
	return &TransferBuffer{device: d, native: native, direction: desc.Direction, size: desc.Size, label: desc.Label}, nil
}

// ReleaseTransferBuffer releases t. Calling it more than once is a no-op.
func (d *Device) ReleaseTransferBuffer(t *TransferBuffer) {
	if t == nil || t.released {
		return
	}
	t.released = true
	d.hal.ReleaseTransferBuffer(t.native)
}

// MapTransferBuffer maps t's memory for host access. cycle requests a fresh
// backing allocation when the previous one may still be in flight on the
// GPU (matches the back-end's cycling contract).
func (d *Device) MapTransferBuffer(t *TransferBuffer, cycle bool) ([]byte, error) {
	if verr := requireNonNil(t == nil, "transfer buffer"); verr != nil {
		return nil, verr
	}
	return d.hal.MapTransferBuffer(t.native, cycle)
}

// UnmapTransferBuffer ends host access to t's memory.
func (d *Device) UnmapTransferBuffer(t *TransferBuffer) {
	if t == nil {
		return
	}
	d.hal.UnmapTransferBuffer(t.native)
}
