// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import "github.com/novagfx/gfx/hal"

// Fence is a typed handle to a GPU-completion signal (§6 Synchronization).
type Fence struct {
	device   *Device
	native   hal.Fence
	released bool
}

// Wait blocks until all GPU work submitted so far completes.
func (d *Device) Wait() error {
	return d.hal.Wait()
}

// WaitForFences blocks until the named fences are signaled. waitAll
// requires every fence; otherwise it returns once any one is signaled.
func (d *Device) WaitForFences(fences []*Fence, waitAll bool) error {
	halFences := make([]hal.Fence, len(fences))
	for i, f := range fences {
		halFences[i] = f.native
	}
	return d.hal.WaitForFences(halFences, waitAll)
}

// QueryFence is a non-blocking poll of f's completion state.
func (d *Device) QueryFence(f *Fence) bool {
	if f == nil {
		return false
	}
	return d.hal.QueryFence(f.native)
}

// ReleaseFence releases f. Calling it more than once is a no-op.
func (d *Device) ReleaseFence(f *Fence) {
	if f == nil || f.released {
		return
	}
	f.released = true
	d.hal.ReleaseFence(f.native)
}
