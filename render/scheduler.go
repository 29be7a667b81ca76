// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/ik5/binaural/audio"
	"golang.org/x/sync/errgroup"
)

// Chunk is a window of the source matrix: Len samples starting at Offset.
type Chunk struct {
	Index  int
	Offset int
	Len    int
}

// Cursor walks a sequence of total samples in chunks of size, front to back.
// Only the final chunk may be shorter.
type Cursor struct {
	total  int
	size   int
	offset int
	index  int
}

func NewCursor(total, size int) *Cursor {
	return &Cursor{total: total, size: size}
}

// Remaining returns the number of samples not yet handed out.
func (c *Cursor) Remaining() int { return c.total - c.offset }

// Next returns the next chunk, or false once the input is exhausted.
func (c *Cursor) Next() (Chunk, bool) {
	n := min(c.size, c.Remaining())
	if n <= 0 {
		return Chunk{}, false
	}

	chunk := Chunk{Index: c.index, Offset: c.offset, Len: n}
	c.offset += n
	c.index++

	return chunk, true
}

// Output holds the rendered channels, one value per input sample.
type Output struct {
	Right  []float64
	Left   []float64
	Chunks int
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler) error

// WithChunkSize overrides the number of samples per chunk.
func WithChunkSize(size int) SchedulerOption {
	return func(s *Scheduler) error {
		if size <= 0 {
			return fmt.Errorf("chunk size must be > 0: %d: %w", size, ErrInvalidParams)
		}
		s.chunkSize = size
		return nil
	}
}

// WithThetaStep sets the head rotation per chunk in radians.
func WithThetaStep(step float64) SchedulerOption {
	return func(s *Scheduler) error {
		s.thetaStep = step
		return nil
	}
}

// WithHead places the listener's head.
func WithHead(head Vec2) SchedulerOption {
	return func(s *Scheduler) error {
		if !head.IsFinite() {
			return fmt.Errorf("head position %v: %w", head, ErrInvalidParams)
		}
		s.head = head
		return nil
	}
}

// WithWorkers renders chunks on up to n goroutines. n <= 1 renders
// sequentially.
func WithWorkers(n int) SchedulerOption {
	return func(s *Scheduler) error {
		s.workers = max(n, 1)
		return nil
	}
}

func WithLogger(logger *slog.Logger) SchedulerOption {
	return func(s *Scheduler) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithTrace registers fn to be called before each chunk is rendered. With
// more than one worker fn is called concurrently and out of order.
func WithTrace(fn func(Chunk, Listener)) SchedulerOption {
	return func(s *Scheduler) error {
		s.trace = fn
		return nil
	}
}

// Scheduler drives a Renderer across the whole source matrix, rotating the
// listener by a fixed step per chunk.
type Scheduler struct {
	renderer  *Renderer
	matrix    [][]int
	frames    int
	chunkSize int
	thetaStep float64
	head      Vec2
	workers   int
	logger    *slog.Logger
	trace     func(Chunk, Listener)
}

// NewScheduler builds a scheduler for sources. All sources must carry the
// same number of samples.
func NewScheduler(sources []Source, params Params, opts ...SchedulerOption) (*Scheduler, error) {
	if len(sources) == 0 {
		return nil, audio.ErrEmptyInput
	}

	positions := make([]Vec2, len(sources))
	matrix := make([][]int, len(sources))
	frames := len(sources[0].Samples)
	for i, src := range sources {
		if len(src.Samples) != frames {
			return nil, fmt.Errorf("source %d has %d samples, want %d: %w",
				i, len(src.Samples), frames, ErrMismatchedConfiguration)
		}
		positions[i] = src.Position
		matrix[i] = src.Samples
	}

	renderer, err := NewRenderer(positions, params)
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		renderer:  renderer,
		matrix:    matrix,
		frames:    frames,
		chunkSize: params.ChunkSize(),
		thetaStep: DefaultThetaStep,
		workers:   1,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.chunkSize <= 0 {
		return nil, fmt.Errorf("frame rate %d gives an empty chunk: %w", params.FrameRate, ErrInvalidParams)
	}

	return s, nil
}

// ChunkSize returns the number of samples per full chunk.
func (s *Scheduler) ChunkSize() int { return s.chunkSize }

// Theta returns the listener angle for chunk index n.
func (s *Scheduler) Theta(n int) float64 {
	return float64(n) * s.thetaStep
}

// Chunks lists every chunk in order.
func (s *Scheduler) Chunks() []Chunk {
	cur := NewCursor(s.frames, s.chunkSize)
	chunks := make([]Chunk, 0, (s.frames+s.chunkSize-1)/s.chunkSize)
	for {
		c, ok := cur.Next()
		if !ok {
			return chunks
		}
		chunks = append(chunks, c)
	}
}

// Run renders the full input and returns both channels. The first
// RenderError stops the run.
func (s *Scheduler) Run() (*Output, error) {
	out := &Output{
		Right: make([]float64, s.frames),
		Left:  make([]float64, s.frames),
	}

	s.logger.Debug("rendering",
		"frames", s.frames,
		"sources", len(s.matrix),
		"chunk_size", s.chunkSize,
		"theta_step", s.thetaStep,
		"workers", s.workers,
	)

	var err error
	if s.workers > 1 {
		out.Chunks, err = s.runParallel(out)
	} else {
		out.Chunks, err = s.runSequential(out)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("rendered", "chunks", out.Chunks)

	return out, nil
}

func (s *Scheduler) runSequential(out *Output) (int, error) {
	cur := NewCursor(s.frames, s.chunkSize)
	count := 0
	for {
		c, ok := cur.Next()
		if !ok {
			return count, nil
		}
		if err := s.renderInto(out, c); err != nil {
			return count, err
		}
		count++
	}
}

// runParallel renders precomputed chunks concurrently. Each chunk writes a
// disjoint window of out. Once a chunk fails, later chunks are skipped while
// earlier ones still run, so the returned error is the one a sequential run
// would have hit first.
func (s *Scheduler) runParallel(out *Output) (int, error) {
	chunks := s.Chunks()
	errs := make([]error, len(chunks))

	var firstFailed atomic.Int64
	firstFailed.Store(int64(len(chunks)))

	var g errgroup.Group
	g.SetLimit(s.workers)

	for i, c := range chunks {
		g.Go(func() error {
			if int64(i) > firstFailed.Load() {
				return nil
			}

			errs[i] = s.renderInto(out, c)
			if errs[i] != nil {
				for {
					cur := firstFailed.Load()
					if int64(i) >= cur || firstFailed.CompareAndSwap(cur, int64(i)) {
						break
					}
				}
			}
			return errs[i]
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return 0, err
		}
	}

	return len(chunks), nil
}

func (s *Scheduler) renderInto(out *Output, c Chunk) error {
	l := Listener{Head: s.head, Theta: s.Theta(c.Index)}
	if s.trace != nil {
		s.trace(c, l)
	}

	window := make([][]int, len(s.matrix))
	for i, row := range s.matrix {
		window[i] = row[c.Offset : c.Offset+c.Len]
	}

	right, left, err := s.renderer.RenderChunk(window, l)
	if err != nil {
		var re *RenderError
		if errors.As(err, &re) {
			return &RenderError{Chunk: c.Index, Source: re.Source, Reason: re.Reason}
		}
		return fmt.Errorf("chunk %d: %w", c.Index, err)
	}

	copy(out.Right[c.Offset:], right)
	copy(out.Left[c.Offset:], left)

	return nil
}
