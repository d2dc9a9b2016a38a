// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package noop implements hal.Backend and hal.Device entirely in memory.
// It performs no native graphics calls; every create/record/submit
// operation succeeds trivially. Use it to exercise the front-end command
// buffer state machine, validation, and the 2D renderer without a real GPU
// or a Windows host, exactly as the teacher's hal/noop backend is used to
// test hal.Device generically.
package noop
