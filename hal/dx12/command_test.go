// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package dx12

import (
	"testing"
	"unicode/utf16"
)

func TestUtf16Bytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ascii", "render pass"},
		{"symbols", "draw[0]/blit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utf16Bytes(tt.in)
			if len(got) != 2*(len(tt.in)+1) {
				t.Fatalf("utf16Bytes(%q) length = %d, want %d (one uint16 per rune plus a NUL terminator)", tt.in, len(got), 2*(len(tt.in)+1))
			}
			if got[len(got)-2] != 0 || got[len(got)-1] != 0 {
				t.Errorf("utf16Bytes(%q) is not NUL-terminated: last two bytes = %v", tt.in, got[len(got)-2:])
			}
			units := utf16.Encode([]rune(tt.in))
			for i, u := range units {
				lo := got[i*2]
				hi := got[i*2+1]
				if uint16(lo)|uint16(hi)<<8 != u {
					t.Errorf("utf16Bytes(%q) unit %d = %#x, want %#x", tt.in, i, uint16(lo)|uint16(hi)<<8, u)
				}
			}
		})
	}
}

func TestMaxU32(t *testing.T) {
	tests := []struct {
		a, b, expect uint32
	}{
		{0, 0, 0},
		{5, 3, 5},
		{3, 5, 5},
		{7, 7, 7},
	}

	for _, tt := range tests {
		if got := maxU32(tt.a, tt.b); got != tt.expect {
			t.Errorf("maxU32(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expect)
		}
	}
}
