// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"fmt"

	"github.com/novagfx/gfx/hal"
)

// cbState is one state of the per-command-buffer state machine (§4.3,
// §4.8): Recording -> PassActive{Render|Compute|Copy} -> Recording -> ... ->
// Submitted (terminal).
type cbState uint8

const (
	cbRecording cbState = iota
	cbRenderPassActive
	cbComputePassActive
	cbCopyPassActive
	cbSubmitted
)

func (s cbState) String() string {
	switch s {
	case cbRecording:
		return "recording"
	case cbRenderPassActive:
		return "render pass active"
	case cbComputePassActive:
		return "compute pass active"
	case cbCopyPassActive:
		return "copy pass active"
	case cbSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// CommandBuffer records GPU work for later submission (§4.3). It wraps one
// hal.CommandList; there is no separate encoder/finish split (unlike the
// teacher this front-end generalizes from) because the underlying Device
// interface threads a single CommandList handle through every recording
// call rather than producing a distinct finished-buffer object.
//
// A CommandBuffer is not safe for concurrent use (§5).
type CommandBuffer struct {
	device           *Device
	native           hal.CommandList
	state            cbState
	graphicsBound    bool
	computeBound     bool
	activeWindows    []*Window // design note 9.3: plain slice, not an intrusive chain
	usedWindowSet    map[*Window]bool
}

// AcquireCommandBuffer begins recording a new command buffer (§4.3
// "AcquireCommandBuffer -> Recording").
func (d *Device) AcquireCommandBuffer() (*CommandBuffer, error) {
	native, err := d.hal.AcquireCommandList()
	if err != nil {
		return nil, fmt.Errorf("gfx: acquire command buffer: %w", err)
	}
	return &CommandBuffer{
		device:        d,
		native:        native,
		state:         cbRecording,
		usedWindowSet: make(map[*Window]bool),
	}, nil
}

// InsertDebugLabel inserts a single marker into the command stream.
func (cb *CommandBuffer) InsertDebugLabel(label string) {
	if verr := cb.invariant(cb.state != cbSubmitted, true, "InsertDebugLabel: command buffer already submitted"); verr != nil {
		return
	}
	cb.device.hal.InsertDebugLabel(cb.native, label)
}

// PushDebugGroup opens a named debug group.
func (cb *CommandBuffer) PushDebugGroup(label string) {
	if verr := cb.invariant(cb.state != cbSubmitted, true, "PushDebugGroup: command buffer already submitted"); verr != nil {
		return
	}
	cb.device.hal.PushDebugGroup(cb.native, label)
}

// PopDebugGroup closes the most recently opened debug group.
func (cb *CommandBuffer) PopDebugGroup() {
	if verr := cb.invariant(cb.state != cbSubmitted, true, "PopDebugGroup: command buffer already submitted"); verr != nil {
		return
	}
	cb.device.hal.PopDebugGroup(cb.native)
}

// Submit closes recording and submits the buffer for execution (§4.3
// "Submit ... permitted only from Recording with no pass active; sets
// Submitted. After submission the buffer is inert."
func (cb *CommandBuffer) Submit() error {
	if verr := cb.invariant(cb.state == cbRecording, true, "Submit: command buffer is %s, must be recording with no pass active", cb.state); verr != nil {
		return verr
	}
	err := cb.device.hal.Submit(cb.native)
	cb.state = cbSubmitted
	cb.activeWindows = nil
	if err != nil {
		return fmt.Errorf("gfx: submit: %w", err)
	}
	return nil
}

// SubmitAndAcquireFence is Submit, additionally returning a Fence the
// caller can poll or wait on.
func (cb *CommandBuffer) SubmitAndAcquireFence() (*Fence, error) {
	if verr := cb.invariant(cb.state == cbRecording, true, "SubmitAndAcquireFence: command buffer is %s, must be recording with no pass active", cb.state); verr != nil {
		return nil, verr
	}
	native, err := cb.device.hal.SubmitAndAcquireFence(cb.native)
	cb.state = cbSubmitted
	cb.activeWindows = nil
	if err != nil {
		return nil, fmt.Errorf("gfx: submit and acquire fence: %w", err)
	}
	return &Fence{device: cb.device, native: native}, nil
}
