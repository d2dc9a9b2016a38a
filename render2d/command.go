// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d

import "github.com/novagfx/gfx/gfx"

// CommandKind classifies a queued render command by the primitive shape it
// ultimately draws (§4.7 "draw batching").
type CommandKind uint8

const (
	CommandPoints CommandKind = iota
	CommandLines
	CommandGeometry
)

// BlendMode is the portable 2D blend preset, named after the SDL_gpu
// convention this renderer's front-end dispatch (package gfx) is itself
// modeled on.
type BlendMode uint8

const (
	BlendNone BlendMode = iota
	BlendBlend
	BlendAdd
	BlendMod
)

// Vertex is the single vertex layout shared by every draw this renderer
// issues. Unused fields (e.g. TexCoord on an untextured triangle) are
// simply not read by the bound vertex shader's input layout.
type Vertex struct {
	Position [2]float32
	TexCoord [2]float32
	Color    [4]float32
}

// vertexStride is the byte size of one Vertex: 2+2+4 float32 components.
const vertexStride = 32

// Command is one entry in the render-command queue a caller accumulates
// for a frame before calling Renderer.Flush (§4.7).
//
// Joined marks a CommandLines entry that is already a connected polyline
// (more than two vertices forming a line strip); per §4.7 "Joined line
// runs (>2 vertices) are not coalesced", such a command is emitted as its
// own draw and never merged with a neighbor.
type Command struct {
	Kind     CommandKind
	Texture  *gfx.Texture
	Blend    BlendMode
	Vertices []Vertex
	Joined   bool
}
