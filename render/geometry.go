// SPDX-License-Identifier: EPL-2.0

package render

import "math"

// Vec2 is a point or offset in the horizontal plane, in meters.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Norm2 returns the squared length of v.
func (v Vec2) Norm2() float64 { return v.X*v.X + v.Y*v.Y }

// IsFinite reports whether both coordinates are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Listener is the head position and facing angle for one chunk.
type Listener struct {
	Head  Vec2
	Theta float64 // radians
}

// Ears returns the right and left ear positions for a head whose ears sit
// halfWidth meters from its center along the rotated x axis. The y offset
// is sin(Theta) for both ears and is not scaled by halfWidth.
func (l Listener) Ears(halfWidth float64) (right, left Vec2) {
	sin, cos := math.Sincos(l.Theta)

	right = l.Head.Add(Vec2{-halfWidth * cos, sin})
	left = l.Head.Add(Vec2{halfWidth * cos, sin})

	return right, left
}
