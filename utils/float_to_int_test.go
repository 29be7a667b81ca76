// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestClipInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  int16
	}{
		{"zero", 0, 0},
		{"positive truncates toward zero", 12.9, 12},
		{"negative truncates toward zero", -12.9, -12},
		{"max exact", 32767, math.MaxInt16},
		{"min exact", -32768, math.MinInt16},
		{"clip over max", 40000.5, math.MaxInt16},
		{"clip under min", -40000.5, math.MinInt16},
		{"positive infinity", math.Inf(1), math.MaxInt16},
		{"negative infinity", math.Inf(-1), math.MinInt16},
		{"nan", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ClipInt16(tt.input); got != tt.want {
				t.Errorf("ClipInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestClipInt16Monotonic checks that clipping never reorders samples
func TestClipInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := ClipInt16(-50000)
	for x := -50000.0; x <= 50000; x += 7.3 {
		curr := ClipInt16(x)
		if curr < prev {
			t.Fatalf("ClipInt16 not monotonic at %v: %v < %v", x, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{"zero", 0.0, 0},
		{"max positive", 1.0, math.MaxInt16},
		{"half positive", 0.5, 16383},
		{"half negative", -0.5, -16383},
		{"clamp over max", 1.5, math.MaxInt16},
		{"clamp under min", -1.5, -math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestClipInt16_ZeroAllocs verifies no heap allocations
func TestClipInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = ClipInt16(1234.5)
	})

	if allocs > 0 {
		t.Errorf("ClipInt16 allocated %v times, want 0", allocs)
	}
}

// BenchmarkClipInt16Realistic simulates converting one second of rendered audio
func BenchmarkClipInt16Realistic(b *testing.B) {
	rendered := make([]float64, 44100)
	out := make([]int16, 44100)
	for i := range rendered {
		rendered[i] = 40000 * math.Sin(float64(i)*0.1)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		for j := range rendered {
			out[j] = ClipInt16(rendered[j])
		}
	}
}
