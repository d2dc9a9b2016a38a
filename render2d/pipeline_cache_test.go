// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d_test

import (
	"testing"

	"github.com/novagfx/gfx/gfx"
	"github.com/novagfx/gfx/render2d"
	"github.com/novagfx/gfx/types"
)

func newTestTarget(t *testing.T, d *gfx.Device) *gfx.Texture {
	t.Helper()
	tex, err := d.CreateTexture(&types.TextureDescriptor{
		Label:       "render2d-test-target",
		Format:      types.TextureFormatBGRA8Unorm,
		Type:        types.TextureType2D,
		Width:       320,
		Height:      240,
		Depth:       1,
		LayerCount:  1,
		LevelCount:  1,
		SampleCount: types.SampleCount1,
		Usage:       types.TextureUsageColorTarget,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	return tex
}

func colorVertex(x, y, r, g, b, a float32) render2d.Vertex {
	return render2d.Vertex{Position: [2]float32{x, y}, Color: [4]float32{r, g, b, a}}
}

// S2 — Triangle: a single CommandGeometry draw of 3 vertices, color
// (1,0,0,1), blend NONE; expect the pipeline cache to grow by exactly one
// and the triangle's vertex bytes to be staged.
func TestPipelineCacheTriangleScenario(t *testing.T) {
	d, r := newTestRenderer(t)
	target := newTestTarget(t, d)

	if got := r.PipelineCount(); got != 0 {
		t.Fatalf("PipelineCount before first draw = %d, want 0", got)
	}

	triangle := []render2d.Command{{
		Kind:  render2d.CommandGeometry,
		Blend: render2d.BlendNone,
		Vertices: []render2d.Vertex{
			colorVertex(0, 0, 1, 0, 0, 1),
			colorVertex(10, 0, 1, 0, 0, 1),
			colorVertex(0, 10, 1, 0, 0, 1),
		},
	}}

	clear := types.Color{R: 0, G: 0, B: 0, A: 1}
	if err := r.Flush(target, &clear, triangle); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got := r.PipelineCount(); got != 1 {
		t.Fatalf("PipelineCount after triangle draw = %d, want 1 (grew by exactly one)", got)
	}

	const wantBytes = 3 * 32 // 3 vertices at vertexStride bytes each
	if got := r.UploadedVertexBytes(); got != wantBytes {
		t.Fatalf("UploadedVertexBytes = %d, want %d (3-vertex batch staged)", got, wantBytes)
	}
}

// Testable property 7: repeated draws using an equal pipeline key return
// the same cached pipeline instead of rebuilding.
func TestPipelineCacheReusesEqualKey(t *testing.T) {
	d, r := newTestRenderer(t)
	target := newTestTarget(t, d)

	triangle := func() []render2d.Command {
		return []render2d.Command{{
			Kind:  render2d.CommandGeometry,
			Blend: render2d.BlendNone,
			Vertices: []render2d.Vertex{
				colorVertex(0, 0, 0, 1, 0, 1),
				colorVertex(5, 0, 0, 1, 0, 1),
				colorVertex(0, 5, 0, 1, 0, 1),
			},
		}}
	}

	clear := types.Color{R: 0, G: 0, B: 0, A: 1}
	for i := 0; i < 3; i++ {
		if err := r.Flush(target, &clear, triangle()); err != nil {
			t.Fatalf("Flush iteration %d: %v", i, err)
		}
		if err := r.Present(); err != nil {
			t.Fatalf("Present iteration %d: %v", i, err)
		}
	}

	if got := r.PipelineCount(); got != 1 {
		t.Fatalf("PipelineCount after 3 identical draws = %d, want 1 (cache hit every time)", got)
	}
}

// A second, distinctly-keyed draw (different blend mode) grows the cache
// by exactly one more entry.
func TestPipelineCacheGrowsOnNewKey(t *testing.T) {
	d, r := newTestRenderer(t)
	target := newTestTarget(t, d)
	clear := types.Color{R: 0, G: 0, B: 0, A: 1}

	none := []render2d.Command{{
		Kind:     render2d.CommandGeometry,
		Blend:    render2d.BlendNone,
		Vertices: []render2d.Vertex{colorVertex(0, 0, 1, 1, 1, 1), colorVertex(1, 0, 1, 1, 1, 1), colorVertex(0, 1, 1, 1, 1, 1)},
	}}
	blended := []render2d.Command{{
		Kind:     render2d.CommandGeometry,
		Blend:    render2d.BlendBlend,
		Vertices: []render2d.Vertex{colorVertex(0, 0, 1, 1, 1, 0.5), colorVertex(1, 0, 1, 1, 1, 0.5), colorVertex(0, 1, 1, 1, 1, 0.5)},
	}}

	if err := r.Flush(target, &clear, none); err != nil {
		t.Fatalf("Flush (none): %v", err)
	}
	if got := r.PipelineCount(); got != 1 {
		t.Fatalf("PipelineCount after first draw = %d, want 1", got)
	}

	if err := r.Flush(target, nil, blended); err != nil {
		t.Fatalf("Flush (blended): %v", err)
	}
	if got := r.PipelineCount(); got != 2 {
		t.Fatalf("PipelineCount after second (distinct) draw = %d, want 2", got)
	}
}
