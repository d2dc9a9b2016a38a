// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import "github.com/novagfx/gfx/hal"

// Sentinel errors re-exported from the back-end layer so callers never need
// to import package hal directly to compare against them (§7).
var (
	ErrDeviceOutOfMemory      = hal.ErrDeviceOutOfMemory
	ErrDeviceLost             = hal.ErrDeviceLost
	ErrSwapchainLost          = hal.ErrSwapchainLost
	ErrTimeout                = hal.ErrTimeout
	ErrUnsupportedComposition = hal.ErrUnsupportedComposition
	ErrCompile                = hal.ErrCompile
	ErrBackendNotFound        = hal.ErrBackendNotFound
)

// ValidationError reports an argument-shape or invariant failure caught by
// front-end validation before a call would have reached the back-end (§4.2,
// §7). It is never returned by a back-end itself.
//
// Fatal mirrors §7's "assertion-equivalent diagnostic": true for invariant
// violations a caller must treat as a programming error (pass nesting,
// submitting a submitted buffer, drawing without a bound pipeline), false
// for recoverable argument-shape mistakes a caller might retry after fixing
// its inputs (a nil descriptor, a zero-length required slice).
type ValidationError struct {
	Message string
	Fatal   bool
}

func (e *ValidationError) Error() string { return "gfx: " + e.Message }
