// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

// Package dx12 implements hal.Backend and hal.Device on top of DirectX 12,
// using raw COM vtable calls (package d3d12) and DXGI swapchain/adapter
// enumeration (package dxgi). It is the only native back-end in this
// module, and its translation layer is complete enough to be selected
// implicitly — see Backend.Implemented.
//
// Resources are allocated with committed D3D12 resources; descriptors for
// CBV/SRV/UAV, samplers, RTVs, and DSVs each live in their own heap on the
// Device, allocated with a bump allocator (no per-resource heap growth).
// Root signatures are synthesized per graphics/compute pipeline from the
// shader's declared resource counts, not hand-authored — see pipeline.go.
package dx12
