// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d

import (
	"github.com/novagfx/gfx/gfx"
	"github.com/novagfx/gfx/types"
)

// VertexShaderID selects one of the three vertex shaders §4.7's "shader
// selection" rule chooses between.
type VertexShaderID uint8

const (
	VertexShaderLinePoint VertexShaderID = iota
	VertexShaderTriColor
	VertexShaderTriTextured
)

// FragmentShaderID selects one of the two fragment shaders.
type FragmentShaderID uint8

const (
	FragmentShaderColor FragmentShaderID = iota
	FragmentShaderTexture
)

// shadersFor implements §4.7's shader-selection rule: lines/points use the
// line-point vertex shader with the color fragment shader; textured
// triangles use the textured-triangle vertex shader with the
// RGBA-sampling fragment shader; untextured triangles use the
// triangle-color vertex shader with the color fragment shader.
func shadersFor(b Batch) (VertexShaderID, FragmentShaderID) {
	switch b.Kind {
	case CommandPoints, CommandLines:
		return VertexShaderLinePoint, FragmentShaderColor
	default:
		if b.Texture != nil {
			return VertexShaderTriTextured, FragmentShaderTexture
		}
		return VertexShaderTriColor, FragmentShaderColor
	}
}

// Every shader input is surfaced as TEXCOORD<Location> per the fixed HLSL
// toolchain convention (types.VertexAttribute), not the POSITION/COLOR
// semantics a hand-written HLSL shader would otherwise use.
const linePointVertexHLSL = `
cbuffer ViewportParams : register(b0) {
  float2 viewport_size;
}

struct PSInput {
  float4 position : SV_POSITION;
  float4 color : TEXCOORD2;
};

PSInput VSMain(float2 position : TEXCOORD0, float4 color : TEXCOORD2) {
  PSInput result;
  result.position = float4(
    2.0 * position.x / viewport_size.x - 1.0,
    1.0 - 2.0 * position.y / viewport_size.y,
    0.0, 1.0);
  result.color = color;
  return result;
}
`

const triColorVertexHLSL = `
cbuffer ViewportParams : register(b0) {
  float2 viewport_size;
}

struct PSInput {
  float4 position : SV_POSITION;
  float4 color : TEXCOORD2;
};

PSInput VSMain(float2 position : TEXCOORD0, float4 color : TEXCOORD2) {
  PSInput result;
  result.position = float4(
    2.0 * position.x / viewport_size.x - 1.0,
    1.0 - 2.0 * position.y / viewport_size.y,
    0.0, 1.0);
  result.color = color;
  return result;
}
`

const triTexturedVertexHLSL = `
cbuffer ViewportParams : register(b0) {
  float2 viewport_size;
}

struct PSInput {
  float4 position : SV_POSITION;
  float2 texcoord : TEXCOORD1;
  float4 color : TEXCOORD2;
};

PSInput VSMain(float2 position : TEXCOORD0, float2 texcoord : TEXCOORD1, float4 color : TEXCOORD2) {
  PSInput result;
  result.position = float4(
    2.0 * position.x / viewport_size.x - 1.0,
    1.0 - 2.0 * position.y / viewport_size.y,
    0.0, 1.0);
  result.texcoord = texcoord;
  result.color = color;
  return result;
}
`

// colorScaleHLSL is shared by both fragment shaders: color_scale multiplies
// the interpolated vertex color, and linearize gamma-decodes it first when
// the render target is a linear color space (§4.7).
const colorScaleHLSL = `
cbuffer ColorScaleParams : register(b0) {
  float4 color_scale;
  uint linearize;
}

float4 apply_color_scale(float4 color) {
  if (linearize != 0) {
    color.rgb = pow(color.rgb, 2.2);
  }
  return color * color_scale;
}
`

const colorFragmentHLSL = colorScaleHLSL + `
struct PSInput {
  float4 position : SV_POSITION;
  float4 color : TEXCOORD2;
};

float4 PSMain(PSInput input) : SV_TARGET {
  return apply_color_scale(input.color);
}
`

const textureFragmentHLSL = colorScaleHLSL + `
Texture2D tex : register(t0);
SamplerState samp : register(s0);

struct PSInput {
  float4 position : SV_POSITION;
  float2 texcoord : TEXCOORD1;
  float4 color : TEXCOORD2;
};

float4 PSMain(PSInput input) : SV_TARGET {
  return apply_color_scale(input.color) * tex.Sample(samp, input.texcoord);
}
`

// shaderSet holds the five compiled shaders this renderer ever needs
// (§4.7 "shader selection"): three vertex shaders and two fragment
// shaders, shared by every pipeline the cache builds.
type shaderSet struct {
	device   *gfx.Device
	vertex   [3]*gfx.Shader
	fragment [2]*gfx.Shader
}

func newShaderSet(d *gfx.Device) (*shaderSet, error) {
	s := &shaderSet{device: d}

	vertexSources := [3]string{linePointVertexHLSL, triColorVertexHLSL, triTexturedVertexHLSL}
	vertexLabels := [3]string{"render2d-vs-line-point", "render2d-vs-tri-color", "render2d-vs-tri-textured"}
	for i, src := range vertexSources {
		vs, err := d.CreateShader(&types.ShaderDescriptor{
			Label:              vertexLabels[i],
			Code:               []byte(src),
			EntryPoint:         "VSMain",
			Format:             types.ShaderFormatHLSL,
			Stage:              types.ShaderStageVertex,
			UniformBufferCount: 1,
		})
		if err != nil {
			s.release()
			return nil, err
		}
		s.vertex[i] = vs
	}

	fs, err := d.CreateShader(&types.ShaderDescriptor{
		Label:              "render2d-fs-color",
		Code:               []byte(colorFragmentHLSL),
		EntryPoint:         "PSMain",
		Format:             types.ShaderFormatHLSL,
		Stage:              types.ShaderStageFragment,
		UniformBufferCount: 1,
	})
	if err != nil {
		s.release()
		return nil, err
	}
	s.fragment[FragmentShaderColor] = fs

	fsTex, err := d.CreateShader(&types.ShaderDescriptor{
		Label:              "render2d-fs-texture",
		Code:               []byte(textureFragmentHLSL),
		EntryPoint:         "PSMain",
		Format:             types.ShaderFormatHLSL,
		Stage:              types.ShaderStageFragment,
		UniformBufferCount: 1,
		SamplerCount:       1,
	})
	if err != nil {
		s.release()
		return nil, err
	}
	s.fragment[FragmentShaderTexture] = fsTex

	return s, nil
}

func (s *shaderSet) release() {
	for _, vs := range s.vertex {
		s.device.ReleaseShader(vs)
	}
	for _, fs := range s.fragment {
		s.device.ReleaseShader(fs)
	}
}

// vertexInputFor returns the buffer/attribute layout a pipeline built with
// vs must declare. Every vertex shares the same packed Vertex layout; a
// shader that doesn't read an attribute simply omits it from the layout.
func vertexInputFor(vs VertexShaderID) types.VertexInputState {
	buffers := []types.VertexBufferDescription{{Slot: 0, Pitch: vertexStride, InputRate: types.VertexInputRateVertex}}
	position := types.VertexAttribute{Location: 0, BufferSlot: 0, Format: types.VertexElementFormatFloat2, Offset: 0}
	texcoord := types.VertexAttribute{Location: 1, BufferSlot: 0, Format: types.VertexElementFormatFloat2, Offset: 8}
	color := types.VertexAttribute{Location: 2, BufferSlot: 0, Format: types.VertexElementFormatFloat4, Offset: 16}

	switch vs {
	case VertexShaderTriTextured:
		return types.VertexInputState{Buffers: buffers, Attributes: []types.VertexAttribute{position, texcoord, color}}
	default:
		return types.VertexInputState{Buffers: buffers, Attributes: []types.VertexAttribute{position, color}}
	}
}
