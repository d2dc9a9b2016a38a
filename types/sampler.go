// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

// Filter selects nearest or linear texel filtering.
type Filter uint8

const (
	FilterNearest Filter = iota
	FilterLinear
)

// MipmapMode selects nearest or linear filtering between mip levels.
type MipmapMode uint8

const (
	MipmapModeNearest MipmapMode = iota
	MipmapModeLinear
)

// AddressMode selects the wrap behavior for texture coordinates outside
// [0, 1].
type AddressMode uint8

const (
	AddressModeRepeat AddressMode = iota
	AddressModeMirroredRepeat
	AddressModeClampToEdge
)

// CompareOp is a depth/stencil/sampler comparison function.
type CompareOp uint8

const (
	CompareOpNever CompareOp = iota
	CompareOpLess
	CompareOpEqual
	CompareOpLessEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterEqual
	CompareOpAlways
)

// SamplerDescriptor is the portable, immutable create-info for a sampler
// (§3). There is no comparison-enable flag split out separately: a sampler
// performs depth comparisons when CompareEnable is set, using CompareOp.
type SamplerDescriptor struct {
	Label            string
	MinFilter        Filter
	MagFilter        Filter
	MipmapMode       MipmapMode
	AddressModeU     AddressMode
	AddressModeV     AddressMode
	AddressModeW     AddressMode
	MipLodBias       float32
	MaxAnisotropy    float32
	CompareEnable    bool
	CompareOp        CompareOp
	MinLod           float32
	MaxLod           float32
}
