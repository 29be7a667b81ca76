// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ik5/binaural"
	"github.com/ik5/binaural/internal/config"
)

// sourceList collects repeated -source path@x,y values.
type sourceList []config.SourceConfig

func (s *sourceList) String() string {
	parts := make([]string, len(*s))
	for i, src := range *s {
		parts[i] = fmt.Sprintf("%s@%g,%g", src.Path, src.X, src.Y)
	}
	return strings.Join(parts, " ")
}

func (s *sourceList) Set(value string) error {
	at := strings.LastIndex(value, "@")
	if at <= 0 {
		return fmt.Errorf("want path@x,y, got %q", value)
	}

	p, err := parsePoint(value[at+1:])
	if err != nil {
		return err
	}

	*s = append(*s, config.SourceConfig{Path: value[:at], X: p[0], Y: p[1]})
	return nil
}

// pointList collects repeated x,y values.
type pointList [][2]float64

func (p *pointList) String() string {
	parts := make([]string, len(*p))
	for i, pt := range *p {
		parts[i] = fmt.Sprintf("%g,%g", pt[0], pt[1])
	}
	return strings.Join(parts, " ")
}

func (p *pointList) Set(value string) error {
	pt, err := parsePoint(value)
	if err != nil {
		return err
	}
	*p = append(*p, pt)
	return nil
}

func parsePoint(s string) ([2]float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]float64{}, fmt.Errorf("want x,y, got %q", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("x of %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return [2]float64{}, fmt.Errorf("y of %q: %w", s, err)
	}

	return [2]float64{x, y}, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, renders the job and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, verbose, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := binaural.RenderFiles(cfg, binaural.DefaultRegistry(), stdout, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// parseArgs builds the job from an optional config file and the flags that
// were set on the command line. Flags win over the file.
func parseArgs(args []string, stderr io.Writer) (config.Config, bool, error) {
	def := config.Default()

	fs := flag.NewFlagSet("binaural", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "JSON job file")
	output := fs.String("o", def.Output, "Output WAV file, - for stdout")
	speed := fs.Float64("speed", def.SpeedOfSound, "Speed of sound in m/s")
	rate := fs.Int("rate", def.FrameRate, "Output frame rate in Hz")
	headWidth := fs.Float64("head", def.HeadWidth, "Distance between the ears in m")
	step := fs.Float64("step", def.ThetaStep, "Head rotation per chunk in radians")
	chunkMs := fs.Int("chunk-ms", def.ChunkMillis, "Chunk length in milliseconds")
	delay := fs.String("delay", def.DelayPolicy, "Delay policy: farther-ear, by-side or legacy")
	minDistance := fs.Float64("min-distance", def.MinDistance, "Floor for source to ear distance in m, 0 disables")
	workers := fs.Int("workers", def.Workers, "Chunks rendered in parallel")
	verbose := fs.Bool("v", false, "Verbose output")

	var listener pointList
	fs.Var(&listener, "listener", "Head position x,y in m")

	var sources sourceList
	fs.Var(&sources, "source", "Input as path@x,y (repeatable)")

	var positions pointList
	fs.Var(&positions, "pos", "Position x,y of the next positional file (repeatable)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: binaural [flags] [file...]\n\n")
		fmt.Fprintf(stderr, "Render mono sources around a rotating listener into a stereo WAV.\n")
		fmt.Fprintf(stderr, "Sources come from -source, from positional files paired with -pos, or from -config.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config.Config{}, false, err
	}

	cfg := def
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, false, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "speed":
			cfg.SpeedOfSound = *speed
		case "rate":
			cfg.FrameRate = *rate
		case "head":
			cfg.HeadWidth = *headWidth
		case "step":
			cfg.ThetaStep = *step
		case "chunk-ms":
			cfg.ChunkMillis = *chunkMs
		case "delay":
			cfg.DelayPolicy = *delay
		case "min-distance":
			cfg.MinDistance = *minDistance
		case "workers":
			cfg.Workers = *workers
		case "listener":
			head := listener[len(listener)-1]
			cfg.HeadX, cfg.HeadY = head[0], head[1]
		}
	})

	if len(sources) > 0 || fs.NArg() > 0 || len(positions) > 0 {
		paired, err := config.PairSources(fs.Args(), positions)
		if err != nil {
			return config.Config{}, false, err
		}
		cfg.Sources = append(append([]config.SourceConfig(nil), sources...), paired...)
	}

	return cfg, *verbose, nil
}
