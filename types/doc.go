// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package types defines the portable enums, bitsets, and fixed-function
// descriptors shared by the front-end API (package gfx), the HAL capability
// interface (package hal), and every back-end. Nothing in this package
// depends on a specific graphics API; back-ends translate these values into
// their own native equivalents via lookup tables (see hal/dx12/convert.go).
package types
