// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package render2d is a 2D renderer built entirely on the portable gfx API
// (§4.7): a persistent per-frame command buffer, a fixed-size vertex
// buffer staged through a host-visible transfer buffer, draw-command
// batching by {kind, texture, blend mode}, and small pipeline/sampler
// caches keyed on the state a draw actually varies.
//
// It uses package hal only for hal.Logger; everything it draws is
// expressed in terms of gfx.Device, gfx.CommandBuffer, and the other gfx
// handle types, so it runs unmodified against any back-end registered with hal,
// including hal/noop for testing.
package render2d
