// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx_test

import (
	"testing"

	"github.com/novagfx/gfx/gfx"
	_ "github.com/novagfx/gfx/hal/noop"
	"github.com/novagfx/gfx/types"
)

func newDeviceWithDebug(t *testing.T, debug bool) *gfx.Device {
	t.Helper()
	d, err := gfx.CreateDevice(nil, gfx.DeviceOptions{
		ShaderFormats: types.ShaderFormatHLSL,
		DebugMode:     debug,
		Name:          "noop",
	})
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	return d
}

// §7: "constructors with missing required inputs" are always reported,
// independent of DebugMode.
func TestNilDescriptorAlwaysReported(t *testing.T) {
	for _, debug := range []bool{true, false} {
		d := newDeviceWithDebug(t, debug)
		if _, err := d.CreateBuffer(nil); err == nil {
			t.Errorf("CreateBuffer(nil) with DebugMode=%v: want error, got nil", debug)
		}
		if _, err := d.CreateTexture(nil); err == nil {
			t.Errorf("CreateTexture(nil) with DebugMode=%v: want error, got nil", debug)
		}
	}
}

// S5 — cube-texture validation. With DebugMode, width != height is
// rejected with the literal diagnostic from the spec; without DebugMode
// the check is skipped and creation is delegated (behavior then
// driver-defined — the noop back-end accepts anything).
func TestCubeTextureDimensionMismatch(t *testing.T) {
	desc := &types.TextureDescriptor{
		Label:      "cube",
		Format:     types.TextureFormatRGBA8Unorm,
		Type:       types.TextureTypeCube,
		Width:      256,
		Height:     128,
		Depth:      1,
		LayerCount: types.CubeTextureLayerCount,
		LevelCount: 1,
		SampleCount: types.SampleCount1,
		Usage:      types.TextureUsageSampler,
	}

	debugDevice := newDeviceWithDebug(t, true)
	_, err := debugDevice.CreateTexture(desc)
	if err == nil {
		t.Fatal("CreateTexture with mismatched cube dimensions under DebugMode: want error, got nil")
	}
	verr, ok := err.(*gfx.ValidationError)
	if !ok {
		t.Fatalf("error type = %T, want *gfx.ValidationError", err)
	}
	if verr.Message != "width and height must be identical" {
		t.Errorf("message = %q, want %q", verr.Message, "width and height must be identical")
	}

	releaseDevice := newDeviceWithDebug(t, false)
	if _, err := releaseDevice.CreateTexture(desc); err != nil {
		t.Fatalf("CreateTexture with mismatched cube dimensions without DebugMode: want delegated (no front-end error), got %v", err)
	}
}

// Argument-shape checks gated by DebugMode are skipped entirely when it is
// off — §4.2: "without debugMode the checks are skipped."
func TestInvariantsSkippedWithoutDebugMode(t *testing.T) {
	d := newDeviceWithDebug(t, false)
	// A zero-size buffer is an invariant violation, not a nil-descriptor
	// case, so it is only checked under DebugMode.
	if _, err := d.CreateBuffer(&types.BufferDescriptor{Label: "empty", Usage: types.BufferUsageVertex, Size: 0}); err != nil {
		t.Fatalf("CreateBuffer with zero size, DebugMode off: want delegated, got %v", err)
	}

	debugDevice := newDeviceWithDebug(t, true)
	if _, err := debugDevice.CreateBuffer(&types.BufferDescriptor{Label: "empty", Usage: types.BufferUsageVertex, Size: 0}); err == nil {
		t.Fatal("CreateBuffer with zero size, DebugMode on: want error, got nil")
	}
}

// ValidationError.Fatal distinguishes assertion-equivalent invariant
// violations from recoverable argument-shape mistakes (§7).
func TestValidationErrorFatalFlag(t *testing.T) {
	d := newDeviceWithDebug(t, true)
	cb, _ := d.AcquireCommandBuffer()
	if err := cb.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	err := cb.BeginRenderPass(nil, &gfx.DepthStencilAttachment{})
	verr, ok := err.(*gfx.ValidationError)
	if !ok {
		t.Fatalf("error type = %T, want *gfx.ValidationError", err)
	}
	if !verr.Fatal {
		t.Error("BeginRenderPass on a submitted command buffer should be a fatal invariant violation")
	}
}
