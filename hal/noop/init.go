// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package noop

import "github.com/novagfx/gfx/hal"

func init() {
	hal.RegisterBackend(Backend())
}
