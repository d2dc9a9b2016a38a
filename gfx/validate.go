// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"fmt"

	"github.com/novagfx/gfx/hal"
)

// requireNonNil enforces §7's "always reported" rule for constructors with
// missing required inputs: this check runs unconditionally, independent of
// DebugMode, because a nil descriptor can never be delegated meaningfully
// to any back-end.
func requireNonNil(isNil bool, what string) *ValidationError {
	if !isNil {
		return nil
	}
	msg := fmt.Sprintf("%s must not be nil", what)
	hal.Logger().Error("gfx: validation failed", "error", msg)
	return &ValidationError{Message: msg, Fatal: false}
}

// invariant enforces one of §4.2's debug-gated checks (resource-creation
// invariants, command-buffer state preconditions, pass preconditions,
// argument-shape constraints). Per §4.2, "under debugMode the front-end
// performs argument checks before delegation; without debugMode the checks
// are skipped" — so outside DebugMode this is always a no-op and the call
// proceeds to the back-end with behavior left driver-defined (S5).
func (d *Device) invariant(ok bool, fatal bool, format string, args ...any) *ValidationError {
	if !d.debugMode || ok {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	hal.Logger().Error("gfx: validation failed", "error", msg)
	return &ValidationError{Message: msg, Fatal: fatal}
}

// invariant is also needed on CommandBuffer for pass/state preconditions;
// it shares the same DebugMode gate as its owning device.
func (cb *CommandBuffer) invariant(ok bool, fatal bool, format string, args ...any) *ValidationError {
	return cb.device.invariant(ok, fatal, format, args...)
}
