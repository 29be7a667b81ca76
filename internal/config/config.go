// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/render"
)

// StdoutPath as Output streams the WAV to standard output.
const StdoutPath = "-"

// SourceConfig places one input file in the plane.
type SourceConfig struct {
	Path string  `json:"path"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Config holds everything needed for one render job.
type Config struct {
	// Acoustic model
	SpeedOfSound float64 `json:"speedOfSound"` // m/s
	FrameRate    int     `json:"frameRate"`    // Hz, also the output rate
	HeadWidth    float64 `json:"headWidth"`    // m
	MinDistance  float64 `json:"minDistance"`  // m, 0 disables the floor
	DelayPolicy  string  `json:"delayPolicy"`

	// Listener motion
	HeadX       float64 `json:"headX"`
	HeadY       float64 `json:"headY"`
	ChunkMillis int     `json:"chunkMs"`   // length of one chunk
	ThetaStep   float64 `json:"thetaStep"` // radians per chunk

	Workers int    `json:"workers"` // 0 or 1 renders sequentially
	Output  string `json:"output"`

	Sources []SourceConfig `json:"sources"`
}

// Default returns the reference setup with no sources.
func Default() Config {
	return Config{
		SpeedOfSound: render.DefaultSpeedOfSound,
		FrameRate:    render.DefaultFrameRate,
		HeadWidth:    render.DefaultHeadWidth,
		DelayPolicy:  render.DelayFartherEar.String(),
		ChunkMillis:  10,
		ThetaStep:    render.DefaultThetaStep,
		Workers:      1,
		Output:       "output.wav",
	}
}

// Load reads a JSON file over the defaults. Fields missing from the file
// keep their default value; unknown fields are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// PairSources zips paths with positions. Each position is an (x, y) pair.
func PairSources(paths []string, positions [][2]float64) ([]SourceConfig, error) {
	if len(paths) != len(positions) {
		return nil, fmt.Errorf("%d files for %d positions: %w",
			len(paths), len(positions), render.ErrMismatchedConfiguration)
	}

	sources := make([]SourceConfig, len(paths))
	for i, p := range paths {
		sources[i] = SourceConfig{Path: p, X: positions[i][0], Y: positions[i][1]}
	}

	return sources, nil
}

// Validate checks the job before any file is opened.
func (c Config) Validate() error {
	if len(c.Sources) == 0 {
		return audio.ErrEmptyInput
	}

	for i, s := range c.Sources {
		if s.Path == "" {
			return fmt.Errorf("source %d has no path: %w", i, render.ErrMismatchedConfiguration)
		}
		if !finite(s.X) || !finite(s.Y) {
			return fmt.Errorf("source %d position (%v, %v): %w", i, s.X, s.Y, render.ErrInvalidParams)
		}
	}

	params, err := c.Params()
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	switch {
	case c.ChunkMillis <= 0:
		return fmt.Errorf("chunk length must be > 0 ms: %d: %w", c.ChunkMillis, render.ErrInvalidParams)
	case c.ChunkSize() <= 0:
		return fmt.Errorf("%d ms at %d Hz is an empty chunk: %w", c.ChunkMillis, c.FrameRate, render.ErrInvalidParams)
	case !finite(c.ThetaStep):
		return fmt.Errorf("theta step %v: %w", c.ThetaStep, render.ErrInvalidParams)
	case !finite(c.HeadX) || !finite(c.HeadY):
		return fmt.Errorf("head position (%v, %v): %w", c.HeadX, c.HeadY, render.ErrInvalidParams)
	case c.Workers < 0:
		return fmt.Errorf("workers must be >= 0: %d: %w", c.Workers, render.ErrInvalidParams)
	case c.Output == "":
		return fmt.Errorf("no output path: %w", render.ErrInvalidParams)
	}

	return nil
}

// Params converts the acoustic fields to render.Params.
func (c Config) Params() (render.Params, error) {
	policy, err := render.ParseDelayPolicy(c.DelayPolicy)
	if err != nil {
		return render.Params{}, err
	}

	return render.Params{
		SpeedOfSound: c.SpeedOfSound,
		FrameRate:    c.FrameRate,
		HeadWidth:    c.HeadWidth,
		Policy:       policy,
		MinDistance:  c.MinDistance,
	}, nil
}

// ChunkSize returns the number of samples per chunk.
func (c Config) ChunkSize() int {
	return c.FrameRate * c.ChunkMillis / 1000
}

// Positions returns the source positions in configuration order.
func (c Config) Positions() []render.Vec2 {
	positions := make([]render.Vec2, len(c.Sources))
	for i, s := range c.Sources {
		positions[i] = render.Vec2{X: s.X, Y: s.Y}
	}
	return positions
}

// Paths returns the source files in configuration order.
func (c Config) Paths() []string {
	paths := make([]string, len(c.Sources))
	for i, s := range c.Sources {
		paths[i] = s.Path
	}
	return paths
}

// SchedulerOptions translates the motion fields into scheduler options.
func (c Config) SchedulerOptions(logger *slog.Logger) []render.SchedulerOption {
	return []render.SchedulerOption{
		render.WithChunkSize(c.ChunkSize()),
		render.WithThetaStep(c.ThetaStep),
		render.WithHead(render.Vec2{X: c.HeadX, Y: c.HeadY}),
		render.WithWorkers(c.Workers),
		render.WithLogger(logger),
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
