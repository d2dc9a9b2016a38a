// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"fmt"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// DeviceOptions mirrors hal.DeviceOptions at the front-end (§6
// "Configuration with recognized options") so callers never need to import
// package hal just to construct a device.
type DeviceOptions struct {
	// ShaderFormats is the bitset of shader formats the caller can supply;
	// a back-end is selectable only when at least one of its advertised
	// formats is requested.
	ShaderFormats types.ShaderFormat
	// DebugMode enables front-end argument and invariant validation (§4.2).
	DebugMode bool
	// PreferLowPower favors an integrated GPU when the back-end can tell
	// adapters apart.
	PreferLowPower bool
	// Name force-selects a back-end by its types.Backend.String() name,
	// even one not selected automatically; the shader-format overlap and
	// probe still apply.
	Name string
}

// Device is the front-end handle to one selected, constructed back-end
// (§4.1). It is not safe for concurrent use from multiple goroutines (§5).
type Device struct {
	hal           hal.Device
	backend       types.Backend
	shaderFormats types.ShaderFormat
	debugMode     bool
}

// CreateDevice selects and constructs a back-end per §4.1's algorithm: the
// first registered back-end that matches opts.Name if supplied, overlaps
// opts.ShaderFormats with its supported formats, and probes successfully.
func CreateDevice(host hal.VideoHost, opts DeviceOptions) (*Device, error) {
	halOpts := hal.DeviceOptions{
		ShaderFormats:  opts.ShaderFormats,
		DebugMode:      opts.DebugMode,
		PreferLowPower: opts.PreferLowPower,
		Name:           opts.Name,
	}
	backend, err := hal.CreateDevice(host, halOpts)
	if err != nil {
		return nil, fmt.Errorf("gfx: create device: %w", err)
	}
	return &Device{
		hal:           backend,
		backend:       backend.Backend(),
		shaderFormats: opts.ShaderFormats,
		debugMode:     opts.DebugMode,
	}, nil
}

// Driver returns the identifier of the back-end this device selected (§6
// Device "get_driver").
func (d *Device) Driver() types.Backend { return d.backend }

// DebugMode reports whether front-end validation (§4.2) is enabled.
func (d *Device) DebugMode() bool { return d.debugMode }

// Destroy tears the device down. Every resource created from it must
// already be released (§3 Device invariant).
func (d *Device) Destroy() {
	d.hal.Destroy()
}
