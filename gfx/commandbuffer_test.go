// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx_test

import (
	"testing"

	"github.com/novagfx/gfx/gfx"
	_ "github.com/novagfx/gfx/hal/noop"
	"github.com/novagfx/gfx/types"
)

func newTestDevice(t *testing.T) *gfx.Device {
	t.Helper()
	d, err := gfx.CreateDevice(nil, gfx.DeviceOptions{
		ShaderFormats: types.ShaderFormatHLSL,
		DebugMode:     true,
		Name:          "noop",
	})
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	return d
}

func newColorTarget(t *testing.T, d *gfx.Device) *gfx.Texture {
	t.Helper()
	tex, err := d.CreateTexture(&types.TextureDescriptor{
		Label:      "target",
		Format:     types.TextureFormatRGBA8Unorm,
		Type:       types.TextureType2D,
		Width:      640,
		Height:     480,
		Depth:      1,
		LayerCount: 1,
		LevelCount: 1,
		SampleCount: types.SampleCount1,
		Usage:      types.TextureUsageColorTarget,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	return tex
}

// S1 — Clear-only frame: begin a render pass with one color attachment,
// clear, end, submit.
func TestCommandBufferClearOnlyFrame(t *testing.T) {
	d := newTestDevice(t)
	target := newColorTarget(t, d)

	cb, err := d.AcquireCommandBuffer()
	if err != nil {
		t.Fatalf("AcquireCommandBuffer: %v", err)
	}
	err = cb.BeginRenderPass([]gfx.ColorAttachment{{
		Texture:    target,
		LoadOp:     types.LoadOpClear,
		StoreOp:    types.StoreOpStore,
		ClearColor: types.Color{R: 0.25, G: 0.5, B: 0.75, A: 1.0},
	}}, nil)
	if err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}
	if err := cb.EndRenderPass(); err != nil {
		t.Fatalf("EndRenderPass: %v", err)
	}
	if err := cb.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
}

// Testable property 1: at most one pass-in-progress flag is set at a time,
// enforced by the state machine's single cbState field.
func TestCommandBufferPassMutualExclusion(t *testing.T) {
	d := newTestDevice(t)
	target := newColorTarget(t, d)
	cb, _ := d.AcquireCommandBuffer()

	if err := cb.BeginRenderPass([]gfx.ColorAttachment{{Texture: target, LoadOp: types.LoadOpLoad, StoreOp: types.StoreOpStore}}, nil); err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}

	// S4 — pass nesting error: beginning a compute pass while a render
	// pass is active must fail and must not mutate state.
	err := cb.BeginComputePass(nil, nil)
	if err == nil {
		t.Fatal("BeginComputePass while a render pass is active: want error, got nil")
	}
	if _, ok := err.(*gfx.ValidationError); !ok {
		t.Fatalf("BeginComputePass error type = %T, want *gfx.ValidationError", err)
	}

	// The render pass must still be the one active; EndRenderPass must
	// still succeed (no compute state was raised).
	if err := cb.EndRenderPass(); err != nil {
		t.Fatalf("EndRenderPass after rejected BeginComputePass: %v", err)
	}
}

// Testable property 2: after submission, further calls return a sentinel
// and mutate no state.
func TestCommandBufferSubmittedIsInert(t *testing.T) {
	d := newTestDevice(t)
	target := newColorTarget(t, d)
	cb, _ := d.AcquireCommandBuffer()

	if err := cb.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := cb.BeginRenderPass([]gfx.ColorAttachment{{Texture: target}}, nil); err == nil {
		t.Fatal("BeginRenderPass after Submit: want error, got nil")
	}
	if err := cb.EndRenderPass(); err == nil {
		t.Fatal("EndRenderPass after Submit: want error, got nil")
	}
	if _, err := cb.SubmitAndAcquireFence(); err == nil {
		t.Fatal("SubmitAndAcquireFence after Submit: want error, got nil")
	}
}

// Draw calls require a bound pipeline even though the render pass is
// active; with DebugMode off this would silently delegate, so this test
// runs with DebugMode on (newTestDevice).
func TestCommandBufferDrawWithoutPipelineBound(t *testing.T) {
	d := newTestDevice(t)
	target := newColorTarget(t, d)
	cb, _ := d.AcquireCommandBuffer()
	if err := cb.BeginRenderPass([]gfx.ColorAttachment{{Texture: target}}, nil); err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}

	// DrawPrimitives has no return value (mirrors hal.Device), so this
	// exercises that it does not panic when no pipeline is bound; the
	// invariant is logged, not surfaced as a return value, matching the
	// void-call sentinel behavior of §4.2 for non-error-returning calls.
	cb.DrawPrimitives(3, 1, 0, 0)
}

func TestCommandBufferOutOfOrderSubmit(t *testing.T) {
	d := newTestDevice(t)
	target := newColorTarget(t, d)
	cb, _ := d.AcquireCommandBuffer()
	if err := cb.BeginRenderPass([]gfx.ColorAttachment{{Texture: target}}, nil); err != nil {
		t.Fatalf("BeginRenderPass: %v", err)
	}

	if err := cb.Submit(); err == nil {
		t.Fatal("Submit while a render pass is active: want error, got nil")
	}
}
