// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "errors"

// Common HAL errors representing unrecoverable back-end failures (§7
// "Back-end failures"). Argument-shape and validation-invariant errors are
// not HAL errors — they are caught and reported by the front-end (package
// gfx) before a call ever reaches a hal.Device.
var (
	// ErrBackendNotFound indicates the requested backend is not registered.
	ErrBackendNotFound = errors.New("hal: backend not found")

	// ErrDeviceOutOfMemory indicates the GPU has exhausted its memory.
	ErrDeviceOutOfMemory = errors.New("hal: device out of memory")

	// ErrDeviceLost indicates the GPU device has been lost (driver crash,
	// hardware disconnection, or TDR). The device cannot be recovered; per
	// §7, callers are expected to tear down and recreate it.
	ErrDeviceLost = errors.New("hal: device lost")

	// ErrSwapchainLost indicates a claimed window's swapchain was destroyed,
	// typically because the window itself closed.
	ErrSwapchainLost = errors.New("hal: swapchain lost")

	// ErrTimeout indicates a blocking wait (Wait, WaitForFences) exceeded
	// its deadline.
	ErrTimeout = errors.New("hal: timeout")

	// ErrUnsupportedComposition indicates a requested swapchain composition
	// is not PRESENT-supported on the claimed window's output (§4.6).
	ErrUnsupportedComposition = errors.New("hal: swapchain composition not supported")

	// ErrCompile indicates HLSL shader compilation failed; the caller's
	// error wraps this with the compiler's error blob verbatim (§4.4).
	ErrCompile = errors.New("hal: shader compile failed")
)
