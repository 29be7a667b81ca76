// SPDX-License-Identifier: EPL-2.0

// Package render turns mono sources at fixed positions into a right and left
// ear signal for a listener whose head turns at a constant rate.
//
// # Model
//
// The listener's head sits at a point in the plane. Its ears lie half a head
// width to either side along the axis set by the angle theta:
//
//	right = head + (-hw*cos(theta), sin(theta))
//	left  = head + ( hw*cos(theta), sin(theta))
//
// Each source contributes its samples divided by the squared distance to
// each ear. The difference in path length, converted to whole samples at
// the speed of sound, delays one of the two channels. Which channel is
// delayed is chosen by DelayPolicy.
//
// # Rendering
//
// Renderer.RenderChunk renders a single window for one orientation and
// holds no state between calls:
//
//	r, err := render.NewRenderer([]render.Vec2{{X: -3}}, render.DefaultParams())
//	right, left, err := r.RenderChunk(window, render.Listener{Theta: 0.3})
//
// Scheduler walks the whole input in 10 ms chunks and turns the head by a
// fixed step after each one:
//
//	s, err := render.NewScheduler(sources, render.DefaultParams(),
//	    render.WithThetaStep(0.1),
//	    render.WithWorkers(runtime.NumCPU()),
//	)
//	out, err := s.Run()
//
// Chunk n is always rendered with theta = n*step, so sequential and
// parallel runs produce identical output.
//
// # Errors
//
//   - ErrMismatchedConfiguration: position and sample counts differ
//   - ErrInvalidParams: a physical constant or option is out of range
//   - ErrRender: a source sits on an ear; use errors.As with *RenderError
//     to find the chunk and source
package render
