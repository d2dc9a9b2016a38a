// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/novagfx/gfx/hal/dx12/d3d12"
	"github.com/novagfx/gfx/types"
)

// uniformPool implements design note 9.4: a size-classed free list of
// upload-heap constant buffers, replacing the unbounded single-class free
// list the source used. Each class rounds up to the next power of two,
// with a 256-byte minimum and capped at types.UniformBufferSize, so a
// 96-byte push draws from a 256-byte class instead of a generic 32KiB block.
type uniformPool struct {
	dev *Device

	mu      sync.Mutex
	classes map[uint32][]*uniformBlock
}

type uniformBlock struct {
	class    uint32
	resource *d3d12.ID3D12Resource
	gpuAddr  uint64
	mapped   []byte
}

func newUniformPool(dev *Device) *uniformPool {
	return &uniformPool{dev: dev, classes: make(map[uint32][]*uniformBlock)}
}

func uniformSizeClass(size uint32) uint32 {
	class := uint32(256)
	for class < size {
		class <<= 1
	}
	if class > types.UniformBufferSize {
		class = types.UniformBufferSize
	}
	return class
}

// acquire returns a constant buffer of at least size bytes, reused from the
// matching size class's free list when one is available.
func (p *uniformPool) acquire(size uint32) (*uniformBlock, error) {
	class := uniformSizeClass(size)

	p.mu.Lock()
	if blocks := p.classes[class]; len(blocks) > 0 {
		b := blocks[len(blocks)-1]
		p.classes[class] = blocks[:len(blocks)-1]
		p.mu.Unlock()
		return b, nil
	}
	p.mu.Unlock()

	rd := bufferResourceDesc(class, d3d12.D3D12_RESOURCE_FLAG_NONE)
	res, err := p.dev.dev.CreateCommittedResource(heapProperties(d3d12.D3D12_HEAP_TYPE_UPLOAD), d3d12.D3D12_HEAP_FLAG_NONE, &rd, d3d12.D3D12_RESOURCE_STATE_GENERIC_READ, nil)
	if err != nil {
		return nil, fmt.Errorf("dx12: uniform pool CreateCommittedResource(class=%d): %w", class, err)
	}
	ptr, err := res.Map(0, &d3d12.D3D12_RANGE{Begin: 0, End: 0})
	if err != nil {
		res.Release()
		return nil, fmt.Errorf("dx12: uniform pool Map: %w", err)
	}
	return &uniformBlock{
		class:    class,
		resource: res,
		gpuAddr:  res.GetGPUVirtualAddress(),
		mapped:   unsafe.Slice((*byte)(ptr), int(class)),
	}, nil
}

// release returns a block to its size class's free list for reuse by a
// later push in the same or a subsequent frame.
func (p *uniformPool) release(b *uniformBlock) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.classes[b.class] = append(p.classes[b.class], b)
}

func (p *uniformPool) destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, blocks := range p.classes {
		for _, b := range blocks {
			b.resource.Unmap(0, nil)
			b.resource.Release()
		}
	}
	p.classes = nil
}
