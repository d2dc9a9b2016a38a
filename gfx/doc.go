// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gfx is the portable front-end over a native graphics back-end
// (package hal). It owns argument-shape and invariant validation, the
// command-buffer state machine, and the typed resource handles; a back-end
// only ever sees inputs that already satisfy the invariants documented on
// each type.
package gfx
