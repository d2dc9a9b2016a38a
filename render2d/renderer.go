// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package render2d

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/novagfx/gfx/gfx"
	"github.com/novagfx/gfx/hal"
	"github.com/novagfx/gfx/types"
)

// VertexBufferSize is the fixed size of the renderer's vertex buffer
// (§4.7 "A fixed-size vertex buffer (VERTEX_BUFFER_SIZE)"). At 32 bytes
// per Vertex this holds 32768 vertices per frame.
const VertexBufferSize = 1 << 20

// Renderer is a 2D renderer built on the portable gfx API (§4.7). It owns
// a persistent per-frame command buffer, a fixed-size vertex buffer
// mirrored by a host-visible transfer buffer, a graphics-pipeline cache,
// and a pre-allocated sampler table.
//
// A Renderer is not safe for concurrent use, matching gfx.Device and
// gfx.CommandBuffer (§5).
type Renderer struct {
	device *gfx.Device
	window *gfx.Window

	shaders   *shaderSet
	pipelines *PipelineCache
	samplers  *SamplerCache

	vertexBuffer   *gfx.Buffer
	vertexTransfer *gfx.TransferBuffer

	colorScale   [4]float32
	linearTarget bool

	cb          *gfx.CommandBuffer
	outstanding *gfx.Fence

	screenWidth, screenHeight float32

	// uploadedVertexBytes accumulates every byte staged into the vertex
	// buffer across the renderer's lifetime (testable property 5).
	uploadedVertexBytes uint64
}

// New constructs a renderer bound to window, whose swapchain texture
// format is used as the default pipeline-cache key format. linearTarget
// selects whether fragment color is linearized before color_scale is
// applied (§4.7).
func New(device *gfx.Device, window *gfx.Window, linearTarget bool) (*Renderer, error) {
	shaders, err := newShaderSet(device)
	if err != nil {
		return nil, fmt.Errorf("render2d: build shaders: %w", err)
	}

	samplers, err := newSamplerCache(device)
	if err != nil {
		shaders.release()
		return nil, fmt.Errorf("render2d: build sampler table: %w", err)
	}

	vb, err := device.CreateBuffer(&types.BufferDescriptor{
		Label: "render2d-vertices",
		Usage: types.BufferUsageVertex,
		Size:  VertexBufferSize,
	})
	if err != nil {
		samplers.release()
		shaders.release()
		return nil, fmt.Errorf("render2d: create vertex buffer: %w", err)
	}

	vt, err := device.CreateTransferBuffer(&types.TransferBufferDescriptor{
		Label:     "render2d-vertex-staging",
		Direction: types.TransferBufferUpload,
		Size:      VertexBufferSize,
	})
	if err != nil {
		device.ReleaseBuffer(vb)
		samplers.release()
		shaders.release()
		return nil, fmt.Errorf("render2d: create vertex staging buffer: %w", err)
	}

	cb, err := device.AcquireCommandBuffer()
	if err != nil {
		device.ReleaseTransferBuffer(vt)
		device.ReleaseBuffer(vb)
		samplers.release()
		shaders.release()
		return nil, fmt.Errorf("render2d: acquire command buffer: %w", err)
	}

	return &Renderer{
		device:         device,
		window:         window,
		shaders:        shaders,
		pipelines:      newPipelineCache(device, shaders),
		samplers:       samplers,
		vertexBuffer:   vb,
		vertexTransfer: vt,
		colorScale:     [4]float32{1, 1, 1, 1},
		linearTarget:   linearTarget,
		cb:             cb,
	}, nil
}

// SetColorScale sets the multiplier every fragment's color is scaled by
// (§4.7 "Color is always multiplied by color_scale").
func (r *Renderer) SetColorScale(s [4]float32) { r.colorScale = s }

// CommandBuffer returns the renderer's current persistent command buffer,
// for callers that need to record copy work (e.g. texture uploads) before
// Flush.
func (r *Renderer) CommandBuffer() *gfx.CommandBuffer { return r.cb }

// Samplers exposes the pre-allocated sampler table for callers selecting
// a sampler to pass through a draw's texture binding.
func (r *Renderer) Samplers() *SamplerCache { return r.samplers }

// UploadedVertexBytes reports the cumulative number of vertex bytes
// staged into the vertex buffer (testable property 5).
func (r *Renderer) UploadedVertexBytes() uint64 { return r.uploadedVertexBytes }

// PipelineCount reports the number of distinct pipelines built so far.
func (r *Renderer) PipelineCount() int { return r.pipelines.Len() }

// BeginFrame re-acquires the current swapchain back buffer on the
// renderer's persistent command buffer (§4.7 "per-frame lifecycle").
func (r *Renderer) BeginFrame() (*gfx.Texture, error) {
	return r.cb.AcquireSwapchainTexture(r.window)
}

func encodeVertex(buf []byte, v Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.TexCoord[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(v.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(v.Color[3]))
}

func encodeViewportParams(width, height float32) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(width))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(height))
	return buf
}

func encodeColorScaleParams(scale [4]float32, linearize bool) []byte {
	buf := make([]byte, 20)
	for i, c := range scale {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(c))
	}
	if linearize {
		binary.LittleEndian.PutUint32(buf[16:20], 1)
	}
	return buf
}

// Flush stages the accumulated vertex batch into the vertex buffer
// (§4.7 "vertex staging"), begins a render pass against target (clearing
// it when clear is non-nil — §4.7 "clear semantics"), and issues one
// draw call per coalesced batch of commands.
func (r *Renderer) Flush(target *gfx.Texture, clear *types.Color, commands []Command) error {
	r.screenWidth = float32(target.Width())
	r.screenHeight = float32(target.Height())

	batches := Coalesce(commands)

	offsets := make([]uint32, len(batches))
	var vertexData []byte
	for i, b := range batches {
		offsets[i] = uint32(len(vertexData))
		start := len(vertexData)
		vertexData = append(vertexData, make([]byte, len(b.Vertices)*vertexStride)...)
		for j, v := range b.Vertices {
			encodeVertex(vertexData[start+j*vertexStride:start+(j+1)*vertexStride], v)
		}
	}

	if len(vertexData) > 0 {
		if len(vertexData) > VertexBufferSize {
			hal.Logger().Warn("render2d: frame vertex data exceeds VertexBufferSize",
				"bytes", len(vertexData), "limit", VertexBufferSize, "batches", len(batches))
			return fmt.Errorf("render2d: frame vertex data (%d bytes) exceeds VertexBufferSize (%d)", len(vertexData), VertexBufferSize)
		}
		mapped, err := r.device.MapTransferBuffer(r.vertexTransfer, true)
		if err != nil {
			return fmt.Errorf("render2d: map vertex staging buffer: %w", err)
		}
		copy(mapped, vertexData)
		r.device.UnmapTransferBuffer(r.vertexTransfer)

		if err := r.cb.BeginCopyPass(); err != nil {
			return err
		}
		r.cb.UploadToBuffer(r.vertexTransfer, 0, gfx.BufferRegion{
			Buffer: r.vertexBuffer,
			Offset: 0,
			Size:   uint32(len(vertexData)),
		})
		if err := r.cb.EndCopyPass(); err != nil {
			return err
		}
		r.uploadedVertexBytes += uint64(len(vertexData))
	}

	attachment := gfx.ColorAttachment{Texture: target, LoadOp: types.LoadOpLoad, StoreOp: types.StoreOpStore}
	if clear != nil {
		attachment.LoadOp = types.LoadOpClear
		attachment.ClearColor = *clear
	}
	if err := r.cb.BeginRenderPass([]gfx.ColorAttachment{attachment}, nil); err != nil {
		return err
	}

	viewportParams := encodeViewportParams(r.screenWidth, r.screenHeight)
	colorScaleParams := encodeColorScaleParams(r.colorScale, r.linearTarget)

	for i, b := range batches {
		if len(b.Vertices) == 0 {
			continue
		}
		vsID, fsID := shadersFor(b)
		pipeline, err := r.pipelines.get(pipelineKey{
			blend:     b.Blend,
			vs:        vsID,
			fs:        fsID,
			primitive: b.Primitive,
			format:    target.Format(),
		})
		if err != nil {
			return err
		}
		r.cb.BindGraphicsPipeline(pipeline)
		r.cb.BindVertexBuffers(0, []gfx.BufferBinding{{Buffer: r.vertexBuffer, Offset: offsets[i]}})
		r.cb.PushVertexUniformData(0, viewportParams)
		r.cb.PushFragmentUniformData(0, colorScaleParams)
		if b.Texture != nil {
			sampler := r.samplers.Get(ScaleLinear, types.AddressModeClampToEdge)
			r.cb.BindFragmentSamplers(0, []*gfx.Sampler{sampler}, []*gfx.Texture{b.Texture})
		}
		r.cb.DrawPrimitives(uint32(len(b.Vertices)), 1, 0, 0)
	}

	return r.cb.EndRenderPass()
}

// Present submits the frame's command buffer and rotates the outstanding
// fence (§4.7 "at present time submit-and-acquire-fence, swap it with the
// previous frame's fence (wait and release the old one)"; S6 "the
// renderer keeps exactly one outstanding fence").
func (r *Renderer) Present() error {
	fence, err := r.cb.SubmitAndAcquireFence()
	if err != nil {
		return err
	}

	if r.outstanding != nil {
		if err := r.device.WaitForFences([]*gfx.Fence{r.outstanding}, true); err != nil {
			return fmt.Errorf("render2d: wait for previous frame's fence: %w", err)
		}
		r.device.ReleaseFence(r.outstanding)
	}
	r.outstanding = fence

	next, err := r.device.AcquireCommandBuffer()
	if err != nil {
		return fmt.Errorf("render2d: acquire next frame's command buffer: %w", err)
	}
	r.cb = next
	return nil
}

// Destroy releases every resource the renderer owns. Pending frame work
// must already have been presented and waited on.
func (r *Renderer) Destroy() {
	if r.outstanding != nil {
		r.device.WaitForFences([]*gfx.Fence{r.outstanding}, true)
		r.device.ReleaseFence(r.outstanding)
		r.outstanding = nil
	}
	r.pipelines.release()
	r.samplers.release()
	r.shaders.release()
	r.device.ReleaseTransferBuffer(r.vertexTransfer)
	r.device.ReleaseBuffer(r.vertexBuffer)
}
