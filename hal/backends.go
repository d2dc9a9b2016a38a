// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "fmt"

// CreateDevice implements §4.1's selection algorithm: it picks the first
// registered back-end that (a) matches opts.Name if supplied, (b) overlaps
// opts.ShaderFormats with its supported shader formats, and (c) probes
// successfully, then constructs a device from it.
//
// A back-end with Implemented() == false is only considered when opts.Name
// names it explicitly (design note 9.7).
func CreateDevice(host VideoHost, opts DeviceOptions) (Device, error) {
	for _, variant := range AvailableBackends() {
		b, ok := GetBackend(variant)
		if !ok {
			continue
		}

		if opts.Name != "" {
			if b.Variant().String() != opts.Name {
				continue
			}
		} else if !b.Implemented() {
			continue
		}
		if b.SupportedShaderFormats()&opts.ShaderFormats == 0 {
			continue
		}

		if !b.Prepare(host) {
			Logger().Warn("hal: backend failed probe", "backend", b.Variant())
			continue
		}

		scoped := opts
		scoped.ShaderFormats = b.SupportedShaderFormats() & opts.ShaderFormats

		device, err := b.CreateDevice(scoped)
		if err != nil {
			Logger().Error("hal: backend device creation failed", "backend", b.Variant(), "error", err)
			continue
		}
		return device, nil
	}

	return nil, fmt.Errorf("hal: %w: no backend matches requested formats %v (name=%q)", ErrBackendNotFound, opts.ShaderFormats, opts.Name)
}
