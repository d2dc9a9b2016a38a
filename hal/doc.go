// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hal defines the device-as-vtable capability trait (design note
// 9.2) that every native graphics back-end implements, plus the driver
// registry used to enumerate and select among them (§4.1).
//
// # Architecture
//
// The front-end (package gfx) never talks to a native graphics API
// directly. It validates caller arguments under debug mode (§4.2, §7) and
// then delegates to the hal.Device selected at device-creation time:
//
//  1. Backend - advertises capability and constructs a Device (§4.1)
//  2. Device  - the function table for resource creation, command
//               recording, and presentation (§6 public API)
//
// # Design principles
//
// The HAL prioritizes translation fidelity over safety: argument-shape and
// invariant validation is the front-end's job (done once, under
// debugMode), not the HAL's. A hal.Device implementation may assume its
// arguments already satisfy §3's invariants; it only needs to report
// unrecoverable native failures (out of memory, device lost) per §7.
//
// # Backend registration
//
// Back-ends register themselves from an init() in a build-tag-gated file,
// e.g. hal/dx12/init.go (//go:build windows):
//
//	hal.RegisterBackend(dx12.Backend())
//
// The registry (RegisterBackend/GetBackend/AvailableBackends) is safe for
// concurrent use; everything else in this package follows §5's
// single-threaded-per-device model.
package hal
