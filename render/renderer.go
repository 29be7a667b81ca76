// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/ik5/binaural/audio"
)

// Source is a sound source at a fixed position with its mono samples.
type Source struct {
	Position Vec2
	Samples  []int
}

// NewSources pairs positions[i] with samples[i]. The counts must match.
func NewSources(positions []Vec2, samples [][]int) ([]Source, error) {
	if len(positions) != len(samples) {
		return nil, fmt.Errorf("%d positions for %d sources: %w",
			len(positions), len(samples), ErrMismatchedConfiguration)
	}

	sources := make([]Source, len(positions))
	for i := range positions {
		sources[i] = Source{Position: positions[i], Samples: samples[i]}
	}

	return sources, nil
}

// Renderer computes right and left ear signals for a fixed set of source
// positions. It holds no per-chunk state; RenderChunk is a pure function of
// its arguments.
type Renderer struct {
	params    Params
	positions []Vec2
}

func NewRenderer(positions []Vec2, params Params) (*Renderer, error) {
	if len(positions) == 0 {
		return nil, audio.ErrEmptyInput
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	for i, p := range positions {
		if !p.IsFinite() {
			return nil, fmt.Errorf("source %d position %v: %w", i, p, ErrInvalidParams)
		}
	}

	return &Renderer{
		params:    params,
		positions: append([]Vec2(nil), positions...),
	}, nil
}

func (r *Renderer) Params() Params { return r.params }

// NumSources returns the number of positions the renderer was built with.
func (r *Renderer) NumSources() int { return len(r.positions) }

// PhaseFrames converts the path difference between two squared distances
// into a whole number of samples, truncated toward zero.
func (r *Renderer) PhaseFrames(rightR2, leftR2 float64) int {
	diff := math.Abs(math.Sqrt(rightR2) - math.Sqrt(leftR2))
	frames := diff * float64(r.params.FrameRate) / r.params.SpeedOfSound

	switch {
	case math.IsNaN(frames):
		return 0
	case frames >= math.MaxInt32:
		return math.MaxInt32
	}

	return int(frames)
}

func (r *Renderer) floor(r2 float64) float64 {
	if r.params.MinDistance > 0 {
		return max(r2, r.params.MinDistance*r.params.MinDistance)
	}
	return r2
}

// RenderChunk renders one window. window[i] holds the samples of source i
// for this chunk and every row must have the same length.
//
// Each source adds its samples divided by the squared distance to each ear.
// After adding a source, the accumulated channel chosen by the delay policy
// is shifted later by the source's inter-aural delay, dropping samples that
// fall past the end of the chunk.
//
// A source on top of an ear, a distance that is not finite, or a gain that
// overflows float64 is reported as a *RenderError.
func (r *Renderer) RenderChunk(window [][]int, l Listener) (right, left []float64, err error) {
	if len(window) != len(r.positions) {
		return nil, nil, fmt.Errorf("%d rows for %d positions: %w",
			len(window), len(r.positions), ErrMismatchedConfiguration)
	}

	n := len(window[0])
	for i, row := range window {
		if len(row) != n {
			return nil, nil, fmt.Errorf("row %d has %d samples, want %d: %w",
				i, len(row), n, ErrMismatchedConfiguration)
		}
	}

	rightEar, leftEar := l.Ears(r.params.HeadWidth / 2)
	right = make([]float64, n)
	left = make([]float64, n)

	samples := make([]float64, n)
	scaled := make([]float64, n)

	// bound is at least the magnitude of every accumulated value.
	bound := 0.0

	for i, pos := range r.positions {
		rightR2 := r.floor(pos.Sub(rightEar).Norm2())
		leftR2 := r.floor(pos.Sub(leftEar).Norm2())

		if rightR2 == 0 || leftR2 == 0 {
			return nil, nil, &RenderError{Chunk: -1, Source: i, Reason: "source coincides with an ear"}
		}
		if !finite(rightR2) || !finite(leftR2) {
			return nil, nil, &RenderError{Chunk: -1, Source: i, Reason: "non-finite distance"}
		}

		peak := 0.0
		for k, v := range window[i] {
			samples[k] = float64(v)
			peak = max(peak, math.Abs(samples[k]))
		}

		bound += peak * max(1/rightR2, 1/leftR2)
		if !finite(bound) {
			return nil, nil, &RenderError{Chunk: -1, Source: i, Reason: "attenuated signal overflows"}
		}

		vecmath.ScaleBlock(scaled, samples, 1/rightR2)
		vecmath.AddBlockInPlace(right, scaled)
		vecmath.ScaleBlock(scaled, samples, 1/leftR2)
		vecmath.AddBlockInPlace(left, scaled)

		phase := r.PhaseFrames(rightR2, leftR2)
		if phase == 0 {
			continue
		}

		switch r.params.Policy {
		case DelayFartherEar:
			if leftR2 > rightR2 {
				delay(left, phase)
			} else {
				delay(right, phase)
			}
		case DelayBySide:
			if pos.X >= 0 {
				delay(left, phase)
			} else {
				delay(right, phase)
			}
		case DelayLegacy:
			if pos.X >= 0 {
				delay(left, phase)
			} else {
				copy(right, left)
				delay(right, phase)
			}
		}
	}

	return right, left, nil
}

// delay shifts buf later by n samples in place, filling the head with zeros.
func delay(buf []float64, n int) {
	if n <= 0 {
		return
	}
	if n >= len(buf) {
		clear(buf)
		return
	}

	copy(buf[n:], buf[:len(buf)-n])
	clear(buf[:n])
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
