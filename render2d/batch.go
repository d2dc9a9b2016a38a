// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d

import (
	"github.com/novagfx/gfx/gfx"
	"github.com/novagfx/gfx/types"
)

// Batch is one coalesced run of commands emitted as a single draw call
// (§4.7 "draw batching").
type Batch struct {
	Kind      CommandKind
	Texture   *gfx.Texture
	Blend     BlendMode
	Primitive types.PrimitiveType
	Vertices  []Vertex
}

func primitiveFor(kind CommandKind, joinedLine bool) types.PrimitiveType {
	switch kind {
	case CommandPoints:
		return types.PrimitiveTypePointList
	case CommandLines:
		if joinedLine {
			return types.PrimitiveTypeLineStrip
		}
		return types.PrimitiveTypeLineList
	default:
		return types.PrimitiveTypeTriangleList
	}
}

// Coalesce merges adjacent commands per §4.7: runs sharing {kind, texture
// identity, blend mode} are joined into one batch for POINTS and
// GEOMETRY; for CommandLines, runs of un-joined two-vertex segments
// sharing only blend mode are joined (lines carry no texture). A joined
// polyline (Command.Joined) never merges with its neighbors.
func Coalesce(commands []Command) []Batch {
	var batches []Batch
	for _, c := range commands {
		if c.Kind == CommandLines && c.Joined {
			batches = append(batches, Batch{
				Kind:      CommandLines,
				Blend:     c.Blend,
				Primitive: types.PrimitiveTypeLineStrip,
				Vertices:  append([]Vertex(nil), c.Vertices...),
			})
			continue
		}

		if n := len(batches); n > 0 && coalescable(batches[n-1], c) {
			batches[n-1].Vertices = append(batches[n-1].Vertices, c.Vertices...)
			continue
		}

		batches = append(batches, Batch{
			Kind:      c.Kind,
			Texture:   c.Texture,
			Blend:     c.Blend,
			Primitive: primitiveFor(c.Kind, false),
			Vertices:  append([]Vertex(nil), c.Vertices...),
		})
	}
	return batches
}

func coalescable(b Batch, c Command) bool {
	if b.Kind != c.Kind || b.Blend != c.Blend {
		return false
	}
	if c.Kind == CommandLines {
		return !c.Joined && len(c.Vertices) == 2 && b.Primitive == types.PrimitiveTypeLineList
	}
	return b.Texture == c.Texture
}
