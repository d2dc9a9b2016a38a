// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

// Command compute-copy demonstrates a GPU compute dispatch over the
// portable gfx API. It uploads an array of float32 values, dispatches a
// shader that copies each element from source to destination scaled by a
// constant, and reads back the results for CPU verification.
package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/novagfx/gfx/gfx"
	_ "github.com/novagfx/gfx/hal/dx12"
	"github.com/novagfx/gfx/types"
)

// copyShaderHLSL scales every input element by a constant factor:
// output[i] = input[i] * scale.
const copyShaderHLSL = `
cbuffer Params : register(b0) {
  uint count;
  float scale;
}

StructuredBuffer<float> input : register(t0);
RWStructuredBuffer<float> output : register(u0);

[numthreads(64, 1, 1)]
void CSMain(uint3 id : SV_DispatchThreadID) {
  if (id.x >= count) {
    return;
  }
  output[id.x] = input[id.x] * scale;
}
`

const (
	numElements = 1024
	scaleFactor = 2.5
	bufSize     = uint32(numElements * 4)
	paramsSize  = uint32(8) // count (u32) + scale (f32)
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("FATAL: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("=== Compute Shader: Scaled Copy ===")
	fmt.Println()

	fmt.Print("1. Creating device... ")
	device, err := gfx.CreateDevice(nil, gfx.DeviceOptions{
		ShaderFormats: types.ShaderFormatHLSL,
		DebugMode:     true,
	})
	if err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	defer device.Destroy()
	fmt.Println("OK")

	inputData := make([]byte, bufSize)
	for i := uint32(0); i < numElements; i++ {
		binary.LittleEndian.PutUint32(inputData[i*4:], math.Float32bits(float32(i+1)))
	}
	fmt.Printf("2. Input: %d float32 elements, scale = %.1f\n", numElements, scaleFactor)

	fmt.Print("3. Creating buffers... ")
	res, err := createResources(device, inputData)
	if err != nil {
		return err
	}
	defer res.release(device)
	fmt.Println("OK")

	fmt.Print("4. Dispatching compute... ")
	if err := dispatch(device, res); err != nil {
		return err
	}
	fmt.Println("OK")

	fmt.Print("5. Reading results... ")
	resultBytes, err := readback(device, res)
	if err != nil {
		return err
	}
	fmt.Println("OK")

	return verifyResults(resultBytes)
}

// resources holds every GPU object the demo creates, so a single release
// function can tear them all down in reverse-dependency order.
type resources struct {
	shader   *gfx.Shader
	pipeline *gfx.ComputePipeline

	input   *gfx.Buffer
	output  *gfx.Buffer
	upload  *gfx.TransferBuffer
	readback *gfx.TransferBuffer
}

func (r *resources) release(d *gfx.Device) {
	if r.pipeline != nil {
		d.ReleaseComputePipeline(r.pipeline)
	}
	if r.shader != nil {
		d.ReleaseShader(r.shader)
	}
	if r.input != nil {
		d.ReleaseBuffer(r.input)
	}
	if r.output != nil {
		d.ReleaseBuffer(r.output)
	}
	if r.upload != nil {
		d.ReleaseTransferBuffer(r.upload)
	}
	if r.readback != nil {
		d.ReleaseTransferBuffer(r.readback)
	}
}

func createResources(device *gfx.Device, inputData []byte) (*resources, error) {
	r := &resources{}

	var err error
	r.input, err = device.CreateBuffer(&types.BufferDescriptor{
		Label: "compute-copy-input",
		Usage: types.BufferUsageComputeStorageRead,
		Size:  bufSize,
	})
	if err != nil {
		return r, fmt.Errorf("create input buffer: %w", err)
	}

	r.output, err = device.CreateBuffer(&types.BufferDescriptor{
		Label: "compute-copy-output",
		Usage: types.BufferUsageComputeStorageWrite,
		Size:  bufSize,
	})
	if err != nil {
		return r, fmt.Errorf("create output buffer: %w", err)
	}

	r.upload, err = device.CreateTransferBuffer(&types.TransferBufferDescriptor{
		Label:     "compute-copy-upload",
		Direction: types.TransferBufferUpload,
		Size:      bufSize,
	})
	if err != nil {
		return r, fmt.Errorf("create upload transfer buffer: %w", err)
	}

	r.readback, err = device.CreateTransferBuffer(&types.TransferBufferDescriptor{
		Label:     "compute-copy-readback",
		Direction: types.TransferBufferDownload,
		Size:      bufSize,
	})
	if err != nil {
		return r, fmt.Errorf("create readback transfer buffer: %w", err)
	}

	mapped, err := device.MapTransferBuffer(r.upload, true)
	if err != nil {
		return r, fmt.Errorf("map upload buffer: %w", err)
	}
	copy(mapped, inputData)
	device.UnmapTransferBuffer(r.upload)

	r.shader, err = device.CreateShader(&types.ShaderDescriptor{
		Label:                  "compute-copy-shader",
		Code:                   []byte(copyShaderHLSL),
		EntryPoint:             "CSMain",
		Format:                 types.ShaderFormatHLSL,
		Stage:                  types.ShaderStageCompute,
		UniformBufferCount:     1,
		StorageBufferCount:     2,
	})
	if err != nil {
		return r, fmt.Errorf("create shader: %w", err)
	}

	r.pipeline, err = device.CreateComputePipeline(&types.ComputePipelineDescriptor{
		Label:                  "compute-copy-pipeline",
		ReadOnlyStorageBuffers: 1,
		ReadWriteStorageBuffers: 1,
		UniformBuffers:         1,
	}, r.shader)
	if err != nil {
		return r, fmt.Errorf("create pipeline: %w", err)
	}

	return r, nil
}

func dispatch(device *gfx.Device, r *resources) error {
	cb, err := device.AcquireCommandBuffer()
	if err != nil {
		return fmt.Errorf("acquire command buffer: %w", err)
	}

	if err := cb.BeginCopyPass(); err != nil {
		return fmt.Errorf("begin copy pass: %w", err)
	}
	cb.UploadToBuffer(r.upload, 0, gfx.BufferRegion{Buffer: r.input, Offset: 0, Size: bufSize})
	if err := cb.EndCopyPass(); err != nil {
		return fmt.Errorf("end copy pass: %w", err)
	}

	if err := cb.BeginComputePass(nil, []*gfx.Buffer{r.output}); err != nil {
		return fmt.Errorf("begin compute pass: %w", err)
	}
	cb.BindComputePipeline(r.pipeline)
	cb.BindComputeStorageBuffers(0, []*gfx.Buffer{r.input, r.output})

	params := make([]byte, paramsSize)
	binary.LittleEndian.PutUint32(params[0:4], numElements)
	binary.LittleEndian.PutUint32(params[4:8], math.Float32bits(scaleFactor))
	cb.PushComputeUniformData(0, params)

	groups := (numElements + 63) / 64
	cb.DispatchCompute(uint32(groups), 1, 1)
	cb.EndComputePass()

	if err := cb.BeginCopyPass(); err != nil {
		return fmt.Errorf("begin readback copy pass: %w", err)
	}
	cb.DownloadFromBuffer(gfx.BufferRegion{Buffer: r.output, Offset: 0, Size: bufSize}, r.readback, 0)
	if err := cb.EndCopyPass(); err != nil {
		return fmt.Errorf("end readback copy pass: %w", err)
	}

	fence, err := cb.SubmitAndAcquireFence()
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	defer device.ReleaseFence(fence)

	if err := device.WaitForFences([]*gfx.Fence{fence}, true); err != nil {
		return fmt.Errorf("wait for fence: %w", err)
	}
	return nil
}

func readback(device *gfx.Device, r *resources) ([]byte, error) {
	mapped, err := device.MapTransferBuffer(r.readback, false)
	if err != nil {
		return nil, fmt.Errorf("map readback buffer: %w", err)
	}
	defer device.UnmapTransferBuffer(r.readback)

	out := make([]byte, bufSize)
	copy(out, mapped)
	return out, nil
}

func verifyResults(resultBytes []byte) error {
	const tolerance = 0.001
	mismatches := 0

	for i := uint32(0); i < numElements; i++ {
		bits := binary.LittleEndian.Uint32(resultBytes[i*4:])
		got := math.Float32frombits(bits)
		want := float32(i+1) * scaleFactor
		if math.Abs(float64(got-want)) > tolerance {
			if mismatches < 5 {
				fmt.Printf("  MISMATCH [%d]: got %.4f, want %.4f\n", i, got, want)
			}
			mismatches++
		}
	}

	fmt.Println()
	fmt.Println("Sample results (first 8):")
	for i := uint32(0); i < 8; i++ {
		bits := binary.LittleEndian.Uint32(resultBytes[i*4:])
		got := math.Float32frombits(bits)
		fmt.Printf("  [%d] %.1f * %.1f = %.1f\n", i, float32(i+1), scaleFactor, got)
	}

	fmt.Println()
	if mismatches == 0 {
		fmt.Printf("PASS: all %d elements match (tolerance=%.4f)\n", numElements, tolerance)
		return nil
	}

	fmt.Printf("FAIL: %d/%d mismatches\n", mismatches, numElements)
	return fmt.Errorf("%d elements mismatched", mismatches)
}
