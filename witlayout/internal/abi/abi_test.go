package abi

import (
	"math"
	"testing"
)

func TestAlignTo(t *testing.T) {
	tests := []struct {
		name   string
		offset uint32
		align  uint32
		want   uint32
	}{
		{"align 0", 5, 0, 5},

		{"offset 0 align 1", 0, 1, 0},
		{"offset 5 align 1", 5, 1, 5},
		{"offset max align 1", math.MaxUint32, 1, math.MaxUint32},

		{"offset 1 align 2", 1, 2, 2},
		{"offset 2 align 2", 2, 2, 2},
		{"offset 3 align 2", 3, 2, 4},

		{"offset 1 align 4", 1, 4, 4},
		{"offset 4 align 4", 4, 4, 4},
		{"offset 7 align 4", 7, 4, 8},

		{"offset 1 align 8", 1, 8, 8},
		{"offset 8 align 8", 8, 8, 8},
		{"offset 15 align 8", 15, 8, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignTo(tt.offset, tt.align)
			if got != tt.want {
				t.Errorf("AlignTo(%d, %d) = %d, want %d", tt.offset, tt.align, got, tt.want)
			}
		})
	}
}

func TestDiscriminantSize(t *testing.T) {
	tests := []struct {
		numCases int
		want     uint32
	}{
		{0, 1},
		{1, 1},
		{256, 1},
		{257, 2},
		{65536, 2},
		{65537, 4},
	}

	for _, tt := range tests {
		got := DiscriminantSize(tt.numCases)
		if got != tt.want {
			t.Errorf("DiscriminantSize(%d) = %d, want %d", tt.numCases, got, tt.want)
		}
	}
}
