// SPDX-License-Identifier: EPL-2.0

package render_test

import (
	"errors"
	"fmt"

	"github.com/ik5/binaural/render"
)

// Example_renderChunk renders one window for a source three meters to the
// left of the listener.
func Example_renderChunk() {
	r, err := render.NewRenderer([]render.Vec2{{X: -3}}, render.DefaultParams())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	window := [][]int{make([]int, 441)}
	for i := range window[0] {
		window[0][i] = 1000
	}

	right, left, err := r.RenderChunk(window, render.Listener{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("right[0]=%.2f left[0]=%.2f left[19]=%.2f\n", right[0], left[0], left[19])
	// Output: right[0]=116.88 left[0]=0.00 left[19]=105.76
}

// Example_scheduler renders a quarter second and reports the chunk layout.
func Example_scheduler() {
	samples := make([]int, 11025)
	sources := []render.Source{{Position: render.Vec2{X: 2, Y: 1}, Samples: samples}}

	s, err := render.NewScheduler(sources, render.DefaultParams())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := s.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("chunk size:", s.ChunkSize())
	fmt.Println("chunks:", out.Chunks)
	fmt.Printf("theta of last chunk: %.1f\n", s.Theta(out.Chunks-1))
	// Output:
	// chunk size: 441
	// chunks: 25
	// theta of last chunk: 2.4
}

// Example_renderError shows how to find the failing chunk.
func Example_renderError() {
	sources := []render.Source{{Position: render.Vec2{X: 0.075}, Samples: make([]int, 441)}}

	s, err := render.NewScheduler(sources, render.DefaultParams())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = s.Run()

	var re *render.RenderError
	if errors.As(err, &re) {
		fmt.Println("chunk", re.Chunk, "source", re.Source)
	}
	// Output: chunk 0 source 0
}

// Example_parseDelayPolicy parses a policy name from a flag value.
func Example_parseDelayPolicy() {
	p, err := render.ParseDelayPolicy("By-Side")
	fmt.Println(p, err)

	_, err = render.ParseDelayPolicy("nearest")
	fmt.Println(errors.Is(err, render.ErrInvalidParams))
	// Output:
	// by-side <nil>
	// true
}
