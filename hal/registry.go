// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import (
	"sync"

	"github.com/novagfx/gfx/types"
)

var (
	// backendsMu protects backends.
	backendsMu sync.RWMutex

	// backends stores registered backend implementations.
	backends = make(map[types.Backend]Backend)

	// priority defines the order implicit (name-less) selection tries
	// backends in. DX12 is this spec's one translated back-end; Vulkan is
	// listed so it takes its place in line if a back-end package for it is
	// ever added (§1 — its translation layer is out of this module's
	// scope, but the registry slot is reserved).
	priority = []types.Backend{
		types.BackendVulkan,
		types.BackendDX12,
		types.BackendNoop,
	}
)

// RegisterBackend registers a backend implementation. Typically called
// from a build-tag-gated init() (§4.1). Registering the same variant twice
// replaces the previous registration.
func RegisterBackend(backend Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[backend.Variant()] = backend
}

// GetBackend returns a registered backend by variant.
func GetBackend(variant types.Backend) (Backend, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	b, ok := backends[variant]
	return b, ok
}

// AvailableBackends returns all registered backend variants in priority
// order, followed by any unlisted variants in non-deterministic order.
func AvailableBackends() []types.Backend {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	seen := make(map[types.Backend]bool, len(backends))
	result := make([]types.Backend, 0, len(backends))
	for _, v := range priority {
		if _, ok := backends[v]; ok {
			result = append(result, v)
			seen[v] = true
		}
	}
	for v := range backends {
		if !seen[v] {
			result = append(result, v)
		}
	}
	return result
}
