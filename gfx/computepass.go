// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gfx

// BeginComputePass opens a compute pass (§4.3). writeTextures and
// writeBuffers are the read-write storage resources the pass will bind;
// declaring them up front lets the back-end issue the matching UAV
// transitions once at pass begin rather than per bind.
func (cb *CommandBuffer) BeginComputePass(writeTextures []*Texture, writeBuffers []*Buffer) error {
	if verr := cb.invariant(cb.state == cbRecording, true, "BeginComputePass: command buffer is %s, must be recording with no pass active", cb.state); verr != nil {
		return verr
	}
	if verr := cb.invariant(len(writeTextures) <= MaxComputeWriteTextures, false, "BeginComputePass: too many write textures"); verr != nil {
		return verr
	}
	if verr := cb.invariant(len(writeBuffers) <= MaxComputeWriteBuffers, false, "BeginComputePass: too many write buffers"); verr != nil {
		return verr
	}
	if err := cb.device.hal.BeginComputePass(cb.native, toHALTextures(writeTextures), toHALBuffers(writeBuffers)); err != nil {
		return err
	}
	cb.state = cbComputePassActive
	cb.computeBound = false
	return nil
}

// EndComputePass closes the active compute pass.
func (cb *CommandBuffer) EndComputePass() error {
	if verr := cb.invariant(cb.state == cbComputePassActive, true, "EndComputePass: command buffer is %s, no compute pass is active", cb.state); verr != nil {
		return verr
	}
	cb.device.hal.EndComputePass(cb.native)
	cb.state = cbRecording
	cb.computeBound = false
	return nil
}

// BindComputePipeline binds p for subsequent dispatches.
func (cb *CommandBuffer) BindComputePipeline(p *ComputePipeline) {
	if verr := cb.invariant(cb.state == cbComputePassActive, true, "BindComputePipeline: no compute pass active"); verr != nil {
		return
	}
	if verr := requireNonNil(p == nil, "compute pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindComputePipeline(cb.native, p.native)
	cb.computeBound = true
}

// BindComputeStorageTextures binds read-write storage textures.
func (cb *CommandBuffer) BindComputeStorageTextures(first uint32, textures []*Texture) {
	if verr := cb.invariant(cb.state == cbComputePassActive && cb.computeBound, true, "BindComputeStorageTextures: no compute pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindComputeStorageTextures(cb.native, first, toHALTextures(textures))
}

// BindComputeStorageBuffers binds read-write storage buffers.
func (cb *CommandBuffer) BindComputeStorageBuffers(first uint32, buffers []*Buffer) {
	if verr := cb.invariant(cb.state == cbComputePassActive && cb.computeBound, true, "BindComputeStorageBuffers: no compute pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.BindComputeStorageBuffers(cb.native, first, toHALBuffers(buffers))
}

// PushComputeUniformData uploads inline uniform data for the bound compute
// shader.
func (cb *CommandBuffer) PushComputeUniformData(slot uint32, data []byte) {
	if verr := cb.invariant(cb.state == cbComputePassActive && cb.computeBound, true, "PushComputeUniformData: no compute pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.PushComputeUniformData(cb.native, slot, data)
}

// DispatchCompute issues a compute dispatch.
func (cb *CommandBuffer) DispatchCompute(groupsX, groupsY, groupsZ uint32) {
	if verr := cb.invariant(cb.state == cbComputePassActive && cb.computeBound, true, "DispatchCompute: no compute pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.DispatchCompute(cb.native, groupsX, groupsY, groupsZ)
}

// DispatchComputeIndirect issues a compute dispatch whose group counts are
// read from buf at offset.
func (cb *CommandBuffer) DispatchComputeIndirect(buf *Buffer, offset uint32) {
	if verr := cb.invariant(cb.state == cbComputePassActive && cb.computeBound, true, "DispatchComputeIndirect: no compute pass active with a bound pipeline"); verr != nil {
		return
	}
	cb.device.hal.DispatchComputeIndirect(cb.native, buf.native, offset)
}
