// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "github.com/novagfx/gfx/types"

// VideoHost is the narrow window/video-subsystem contract a back-end probe
// needs (§1 "the host window/video subsystem ... specified only by the
// interfaces the core consumes"). The real implementation lives outside
// this module; tests supply a stub.
type VideoHost interface {
	// WindowHandle returns the platform-native window handle (HWND on
	// Windows) stored in the host's window-properties bag, or 0 if none.
	WindowHandle(window uintptr) uintptr
}

// DeviceOptions mirrors §6 "Configuration with recognized options".
type DeviceOptions struct {
	ShaderFormats  types.ShaderFormat
	DebugMode      bool
	PreferLowPower bool
	// Name forces selection of the back-end whose Backend.Variant() name
	// matches, even one with Implemented() == false; the shader-format
	// overlap and the Prepare probe still apply (§4.1). Empty means "pick
	// automatically".
	Name string
}

// Backend publishes a compiled-in native back-end's identity and
// constructs a Device on demand (§4.1).
type Backend interface {
	// Variant identifies this back-end.
	Variant() types.Backend

	// SupportedShaderFormats is the bitset of shader formats this back-end
	// can ingest.
	SupportedShaderFormats() types.ShaderFormat

	// Implemented reports whether this back-end's translation layer is
	// complete enough to be selected implicitly (design note 9.7). A
	// back-end with Implemented() == false is still registered and can be
	// force-selected via DeviceOptions.Name, but is skipped by automatic
	// selection.
	Implemented() bool

	// Prepare probes whether the runtime environment can load this
	// back-end's native libraries and create a minimal device, without
	// creating a real Device (§4.1).
	Prepare(host VideoHost) bool

	// CreateDevice constructs a Device. opts.ShaderFormats has already
	// been intersected with SupportedShaderFormats() by the caller.
	CreateDevice(opts DeviceOptions) (Device, error)
}
