// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

import (
	"fmt"

	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// Shader is a typed, opaque handle to a compiled shader (§4.4 "Shader
// ingest"). It retains the resource counts from its descriptor: a graphics
// pipeline built from two shaders copies them verbatim onto the pipeline
// (property test 3), so the front-end never needs to re-derive them from
// the back-end.
type Shader struct {
	device   *Device
	native   hal.Shader
	desc     types.ShaderDescriptor
	released bool
}

func (s *Shader) Stage() types.ShaderStage { return s.desc.Stage }
func (s *Shader) Label() string            { return s.desc.Label }

// CreateShader compiles or copies shader bytecode (§4.4 "Shader ingest").
// HLSL source is compiled on ingest by the back-end using the profile
// string dictated by Stage; pre-compiled bytecode is copied verbatim.
func (d *Device) CreateShader(desc *types.ShaderDescriptor) (*Shader, error) {
	if verr := requireNonNil(desc == nil, "shader descriptor"); verr != nil {
		return nil, verr
	}
	if verr := requireNonNil(len(desc.Code) == 0, "shader code"); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(d.shaderFormats.Contains(desc.Format), false, "shader %q: format %v not accepted by this device (accepts %v)", desc.Label, desc.Format, d.shaderFormats); verr != nil {
		return nil, verr
	}
	if verr := d.invariant(desc.EntryPoint != "", false, "shader %q: entry point must not be empty", desc.Label); verr != nil {
		return nil, verr
	}
	native, err := d.hal.CreateShader(desc)
	if err != nil {
		hal.Logger().Error("gfx: shader compile failed", "label", desc.Label, "error", err)
		return nil, fmt.Errorf("gfx: %w: %v", ErrCompile, err)
	}
	return &Shader{device: d, native: native, desc: *desc}, nil
}

// ReleaseShader releases s's compiled bytecode. Calling it more than once
// is a no-op (testable property 10).
func (d *Device) ReleaseShader(s *Shader) {
	if s == nil || s.released {
		return
	}
	s.released = true
	d.hal.ReleaseShader(s.native)
}
