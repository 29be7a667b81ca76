// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultSpeedOfSound = 343.0 // m/s
	DefaultFrameRate    = 44100 // Hz
	DefaultHeadWidth    = 0.15  // m
	DefaultThetaStep    = 0.1   // radians per chunk
	chunksPerSecond     = 100
)

// DelayPolicy selects which channel receives the inter-aural delay.
type DelayPolicy int

const (
	// DelayFartherEar delays the channel of whichever ear is farther from
	// the source for the current head orientation.
	DelayFartherEar DelayPolicy = iota
	// DelayBySide delays the left channel for sources with x >= 0 and the
	// right channel otherwise.
	DelayBySide
	// DelayLegacy matches DelayBySide for x >= 0, but for x < 0 replaces
	// the right channel with a delayed copy of the left channel.
	DelayLegacy

	delayPolicyCount
)

var delayPolicyNames = [delayPolicyCount]string{"farther-ear", "by-side", "legacy"}

// String returns the name of the policy as accepted by ParseDelayPolicy.
func (p DelayPolicy) String() string {
	if p.Valid() {
		return delayPolicyNames[p]
	}
	return fmt.Sprintf("DelayPolicy(%d)", int(p))
}

// Valid reports whether p is a known policy.
func (p DelayPolicy) Valid() bool {
	return p >= 0 && p < delayPolicyCount
}

// ParseDelayPolicy converts a policy name back to its value.
func ParseDelayPolicy(name string) (DelayPolicy, error) {
	for i, n := range delayPolicyNames {
		if strings.EqualFold(name, n) {
			return DelayPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown delay policy %q: %w", name, ErrInvalidParams)
}

// Params are the physical constants of the acoustic model.
type Params struct {
	SpeedOfSound float64 // m/s
	FrameRate    int     // Hz
	HeadWidth    float64 // ear to ear, m
	Policy       DelayPolicy

	// MinDistance, when positive, floors every source-to-ear distance.
	// With zero, a source on top of an ear is a RenderError.
	MinDistance float64
}

// DefaultParams returns the constants of the reference setup.
func DefaultParams() Params {
	return Params{
		SpeedOfSound: DefaultSpeedOfSound,
		FrameRate:    DefaultFrameRate,
		HeadWidth:    DefaultHeadWidth,
		Policy:       DelayFartherEar,
	}
}

// ChunkSize returns the number of samples in a 10 ms chunk.
func (p Params) ChunkSize() int {
	return p.FrameRate / chunksPerSecond
}

// Validate checks that every field is usable.
func (p Params) Validate() error {
	switch {
	case !(p.SpeedOfSound > 0) || math.IsInf(p.SpeedOfSound, 0):
		return fmt.Errorf("speed of sound must be > 0: %v: %w", p.SpeedOfSound, ErrInvalidParams)
	case p.FrameRate <= 0:
		return fmt.Errorf("frame rate must be > 0: %d: %w", p.FrameRate, ErrInvalidParams)
	case !(p.HeadWidth >= 0) || math.IsInf(p.HeadWidth, 0):
		return fmt.Errorf("head width must be >= 0: %v: %w", p.HeadWidth, ErrInvalidParams)
	case !(p.MinDistance >= 0) || math.IsInf(p.MinDistance, 0):
		return fmt.Errorf("minimum distance must be >= 0: %v: %w", p.MinDistance, ErrInvalidParams)
	case !p.Policy.Valid():
		return fmt.Errorf("delay policy %v: %w", p.Policy, ErrInvalidParams)
	}

	return nil
}
