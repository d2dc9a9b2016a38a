// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d_test

import (
	"testing"

	"github.com/novagfx/gfx/types"
	"github.com/novagfx/gfx/render2d"
)

func point(x, y float32) render2d.Vertex {
	return render2d.Vertex{Position: [2]float32{x, y}, Color: [4]float32{1, 1, 1, 1}}
}

// S3 — Batching: 50 consecutive DRAW_POINTS commands, each with count 1,
// identical texture=null, identical blend=NONE, coalesce into one batch.
func TestCoalescePointsBatching(t *testing.T) {
	var commands []render2d.Command
	for i := 0; i < 50; i++ {
		commands = append(commands, render2d.Command{
			Kind:     render2d.CommandPoints,
			Blend:    render2d.BlendNone,
			Vertices: []render2d.Vertex{point(float32(i), 0)},
		})
	}

	batches := render2d.Coalesce(commands)
	if len(batches) != 1 {
		t.Fatalf("batch count = %d, want 1", len(batches))
	}
	if len(batches[0].Vertices) != 50 {
		t.Fatalf("vertex count = %d, want 50", len(batches[0].Vertices))
	}
	if batches[0].Primitive != types.PrimitiveTypePointList {
		t.Errorf("primitive = %v, want PrimitiveTypePointList", batches[0].Primitive)
	}
}

// Commands with different blend modes must not coalesce.
func TestCoalesceBreaksOnBlendChange(t *testing.T) {
	commands := []render2d.Command{
		{Kind: render2d.CommandPoints, Blend: render2d.BlendNone, Vertices: []render2d.Vertex{point(0, 0)}},
		{Kind: render2d.CommandPoints, Blend: render2d.BlendBlend, Vertices: []render2d.Vertex{point(1, 0)}},
		{Kind: render2d.CommandPoints, Blend: render2d.BlendBlend, Vertices: []render2d.Vertex{point(2, 0)}},
	}
	batches := render2d.Coalesce(commands)
	if len(batches) != 2 {
		t.Fatalf("batch count = %d, want 2", len(batches))
	}
	if len(batches[0].Vertices) != 1 || len(batches[1].Vertices) != 2 {
		t.Errorf("batch sizes = %d, %d; want 1, 2", len(batches[0].Vertices), len(batches[1].Vertices))
	}
}

// Commands sharing the same texture identity (both untextured) coalesce
// (GEOMETRY).
func TestCoalesceMergesSameTextureIdentity(t *testing.T) {
	tri := []render2d.Vertex{point(0, 0), point(1, 0), point(0, 1)}
	commands := []render2d.Command{
		{Kind: render2d.CommandGeometry, Blend: render2d.BlendNone, Vertices: tri},
		{Kind: render2d.CommandGeometry, Blend: render2d.BlendNone, Texture: nil, Vertices: tri},
	}
	// Both nil textures: should coalesce.
	batches := render2d.Coalesce(commands)
	if len(batches) != 1 {
		t.Fatalf("batch count = %d, want 1 (both untextured)", len(batches))
	}
	if len(batches[0].Vertices) != 6 {
		t.Errorf("vertex count = %d, want 6", len(batches[0].Vertices))
	}
}

// DRAW_LINES: runs of two-vertex segments sharing blend mode coalesce into
// one LineList batch.
func TestCoalesceLineSegments(t *testing.T) {
	var commands []render2d.Command
	for i := 0; i < 10; i++ {
		commands = append(commands, render2d.Command{
			Kind:     render2d.CommandLines,
			Blend:    render2d.BlendNone,
			Vertices: []render2d.Vertex{point(float32(i), 0), point(float32(i), 1)},
		})
	}
	batches := render2d.Coalesce(commands)
	if len(batches) != 1 {
		t.Fatalf("batch count = %d, want 1", len(batches))
	}
	if len(batches[0].Vertices) != 20 {
		t.Errorf("vertex count = %d, want 20", len(batches[0].Vertices))
	}
	if batches[0].Primitive != types.PrimitiveTypeLineList {
		t.Errorf("primitive = %v, want PrimitiveTypeLineList", batches[0].Primitive)
	}
}

// Joined line runs (a polyline with more than two vertices) are never
// coalesced with neighboring commands, even of the same kind and blend.
func TestCoalesceJoinedLinesNeverMerge(t *testing.T) {
	polyline := render2d.Command{
		Kind:     render2d.CommandLines,
		Blend:    render2d.BlendNone,
		Joined:   true,
		Vertices: []render2d.Vertex{point(0, 0), point(1, 0), point(1, 1), point(0, 1)},
	}
	segment := render2d.Command{
		Kind:     render2d.CommandLines,
		Blend:    render2d.BlendNone,
		Vertices: []render2d.Vertex{point(2, 0), point(2, 1)},
	}
	batches := render2d.Coalesce([]render2d.Command{polyline, segment, segment})
	if len(batches) != 2 {
		t.Fatalf("batch count = %d, want 2 (joined polyline isolated, two segments merged)", len(batches))
	}
	if batches[0].Primitive != types.PrimitiveTypeLineStrip {
		t.Errorf("batches[0].Primitive = %v, want PrimitiveTypeLineStrip", batches[0].Primitive)
	}
	if len(batches[0].Vertices) != 4 {
		t.Errorf("batches[0] vertex count = %d, want 4", len(batches[0].Vertices))
	}
	if len(batches[1].Vertices) != 4 {
		t.Errorf("batches[1] vertex count = %d, want 4 (two merged segments)", len(batches[1].Vertices))
	}
}

// A kind change always breaks a run, even with matching blend and texture.
func TestCoalesceBreaksOnKindChange(t *testing.T) {
	commands := []render2d.Command{
		{Kind: render2d.CommandPoints, Blend: render2d.BlendNone, Vertices: []render2d.Vertex{point(0, 0)}},
		{Kind: render2d.CommandGeometry, Blend: render2d.BlendNone, Vertices: []render2d.Vertex{point(0, 0), point(1, 0), point(0, 1)}},
	}
	batches := render2d.Coalesce(commands)
	if len(batches) != 2 {
		t.Fatalf("batch count = %d, want 2", len(batches))
	}
}
