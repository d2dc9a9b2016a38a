// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

import "fmt"

// TextureFormat describes the pixel layout of a texture.
type TextureFormat uint32

const (
	// TextureFormatInvalid is the zero value and never a valid format.
	TextureFormatInvalid TextureFormat = iota

	TextureFormatR8Unorm
	TextureFormatR8Snorm
	TextureFormatR8Uint
	TextureFormatR8Sint
	TextureFormatR16Float
	TextureFormatRG8Unorm
	TextureFormatRG8Snorm
	TextureFormatRG8Uint
	TextureFormatRG8Sint
	TextureFormatR32Float
	TextureFormatR32Uint
	TextureFormatR32Sint
	TextureFormatRG16Float
	TextureFormatRGBA8Unorm
	TextureFormatRGBA8UnormSrgb
	TextureFormatRGBA8Snorm
	TextureFormatRGBA8Uint
	TextureFormatRGBA8Sint
	TextureFormatBGRA8Unorm
	TextureFormatBGRA8UnormSrgb
	TextureFormatRGB10A2Unorm
	TextureFormatRG11B10Ufloat
	TextureFormatRG32Float
	TextureFormatRGBA16Float
	TextureFormatRGBA16Uint
	TextureFormatRGBA16Sint
	TextureFormatRGBA32Float
	TextureFormatRGBA32Uint
	TextureFormatRGBA32Sint

	// Depth/stencil formats.
	TextureFormatStencil8
	TextureFormatDepth16Unorm
	TextureFormatDepth24PlusStencil8
	TextureFormatDepth32Float

	// Block-compressed formats.
	TextureFormatBC1RGBAUnorm
	TextureFormatBC3RGBAUnorm
	TextureFormatBC7RGBAUnorm
)

// IsDepthStencil reports whether the format carries depth and/or stencil
// data rather than color data.
func (f TextureFormat) IsDepthStencil() bool {
	switch f {
	case TextureFormatStencil8, TextureFormatDepth16Unorm,
		TextureFormatDepth24PlusStencil8, TextureFormatDepth32Float:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the format stores integer (non-normalized,
// non-float) texel data. Integer formats cannot be sampled with a filtering
// sampler (§3 invariant: "integer-format textures cannot expose SAMPLER").
func (f TextureFormat) IsInteger() bool {
	switch f {
	case TextureFormatR8Uint, TextureFormatR8Sint,
		TextureFormatRG8Uint, TextureFormatRG8Sint,
		TextureFormatR32Uint, TextureFormatR32Sint,
		TextureFormatRGBA8Uint, TextureFormatRGBA8Sint,
		TextureFormatRGBA16Uint, TextureFormatRGBA16Sint,
		TextureFormatRGBA32Uint, TextureFormatRGBA32Sint:
		return true
	default:
		return false
	}
}

// BlockSize returns the size in bytes of one texel block of the format, the
// portable equivalent of TexelBlockSize in the public API (§6). All formats
// in this taxonomy are single-texel blocks (no compressed-format block
// width/height is modeled, since the 2D renderer and the tested scenarios
// only exercise uncompressed formats).
func (f TextureFormat) BlockSize() uint32 {
	switch f {
	case TextureFormatR8Unorm, TextureFormatR8Snorm, TextureFormatR8Uint, TextureFormatR8Sint, TextureFormatStencil8:
		return 1
	case TextureFormatRG8Unorm, TextureFormatRG8Snorm, TextureFormatRG8Uint, TextureFormatRG8Sint,
		TextureFormatR16Float, TextureFormatDepth16Unorm:
		return 2
	case TextureFormatRGBA8Unorm, TextureFormatRGBA8UnormSrgb, TextureFormatRGBA8Snorm,
		TextureFormatRGBA8Uint, TextureFormatRGBA8Sint, TextureFormatBGRA8Unorm, TextureFormatBGRA8UnormSrgb,
		TextureFormatRGB10A2Unorm, TextureFormatRG11B10Ufloat, TextureFormatRG16Float,
		TextureFormatR32Float, TextureFormatR32Uint, TextureFormatR32Sint,
		TextureFormatDepth24PlusStencil8, TextureFormatDepth32Float:
		return 4
	case TextureFormatRG32Float, TextureFormatRGBA16Float, TextureFormatRGBA16Uint, TextureFormatRGBA16Sint:
		return 8
	case TextureFormatRGBA32Float, TextureFormatRGBA32Uint, TextureFormatRGBA32Sint:
		return 16
	case TextureFormatBC1RGBAUnorm:
		return 8
	case TextureFormatBC3RGBAUnorm, TextureFormatBC7RGBAUnorm:
		return 16
	default:
		return 0
	}
}

func (f TextureFormat) String() string {
	return fmt.Sprintf("TextureFormat(%d)", uint32(f))
}

// TextureType is the portable texture dimensionality (§3).
type TextureType uint8

const (
	TextureType2D TextureType = iota
	TextureType2DArray
	TextureTypeCube
	TextureType3D
)

// TextureUsage is a bitset of how a texture may be used, per §3.
type TextureUsage uint32

const (
	TextureUsageSampler TextureUsage = 1 << iota
	TextureUsageColorTarget
	TextureUsageDepthStencilTarget
	TextureUsageGraphicsStorageRead
	TextureUsageComputeStorageRead
	TextureUsageComputeStorageWrite
)

// Has reports whether the usage bitset contains flag.
func (u TextureUsage) Has(flag TextureUsage) bool { return u&flag != 0 }

// SampleCount is the portable multisample count enum.
type SampleCount uint8

const (
	SampleCount1 SampleCount = 1 << iota
	SampleCount2
	SampleCount4
	SampleCount8
)

// TextureDescriptor is the portable create-info for a texture (§3).
type TextureDescriptor struct {
	Label       string
	Format      TextureFormat
	Type        TextureType
	Width       uint32
	Height      uint32
	Depth       uint32
	LayerCount  uint32
	LevelCount  uint32
	SampleCount SampleCount
	Usage       TextureUsage
}

// LoadOp is the action applied to an attachment at render-pass begin.
type LoadOp uint8

const (
	LoadOpLoad LoadOp = iota
	LoadOpClear
	LoadOpDontCare
)

// StoreOp is the action applied to an attachment at render-pass end.
type StoreOp uint8

const (
	StoreOpStore StoreOp = iota
	StoreOpDontCare
)

// Color is a linear RGBA color, used for clear values and blend constants.
type Color struct {
	R, G, B, A float32
}
