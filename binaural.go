// SPDX-License-Identifier: EPL-2.0

package binaural

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/formats/aiff"
	"github.com/ik5/binaural/formats/mp3"
	"github.com/ik5/binaural/formats/vorbis"
	"github.com/ik5/binaural/formats/wav"
	"github.com/ik5/binaural/internal/config"
	"github.com/ik5/binaural/render"
)

// outputMode matches a plain create under the usual umask.
const outputMode = 0o644

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// Render decodes every source in cfg, mixes them to mono and renders the
// rotating listener. Nothing is written.
func Render(cfg config.Config, reg *audio.Registry, logger *slog.Logger) (*render.Output, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	decoded := make([]*audio.PCM, len(cfg.Sources))
	for i, src := range cfg.Sources {
		pcm, err := audio.DecodeFile(reg, src.Path)
		if err != nil {
			return nil, err
		}

		logger.Info("decoded source",
			"path", src.Path,
			"channels", pcm.NumChannels(),
			"sample_rate", pcm.SampleRate,
			"bit_depth", pcm.BitDepth,
			"frames", pcm.Frames(),
		)

		if pcm.SampleRate != cfg.FrameRate {
			logger.Warn("sample rate differs from output rate, samples are used as is",
				"path", src.Path,
				"sample_rate", pcm.SampleRate,
				"output_rate", cfg.FrameRate,
			)
		}

		decoded[i] = pcm
	}

	matrix, err := audio.Mix(decoded)
	if err != nil {
		return nil, err
	}

	sources, err := render.NewSources(cfg.Positions(), matrix)
	if err != nil {
		return nil, err
	}

	sched, err := render.NewScheduler(sources, params, cfg.SchedulerOptions(logger)...)
	if err != nil {
		return nil, err
	}

	return sched.Run()
}

// RenderFiles renders cfg and writes the result to cfg.Output. When Output
// is "-" the WAV goes to stdout. A failed job leaves no output file behind.
func RenderFiles(cfg config.Config, reg *audio.Registry, stdout io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	out, err := Render(cfg, reg, logger)
	if err != nil {
		return err
	}

	if err := WriteOutput(cfg.Output, stdout, cfg.FrameRate, out); err != nil {
		return err
	}

	logger.Info("wrote output",
		"path", cfg.Output,
		"frames", len(out.Right),
		"chunks", out.Chunks,
	)

	return nil
}

// WriteOutput stores out as a 16-bit stereo WAV at path. The file is
// written next to path under a temporary name and renamed into place once
// complete with mode 0644. A path of "-" streams to stdout instead, using
// os.Stdout when stdout is nil.
func WriteOutput(path string, stdout io.Writer, sampleRate int, out *render.Output) error {
	if path == config.StdoutPath {
		if stdout == nil {
			stdout = os.Stdout
		}
		if err := wav.WriteStereo16(stdout, sampleRate, out.Right, out.Left); err != nil {
			return fmt.Errorf("%w: writing stdout: %w", audio.ErrIO, err)
		}
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	tmpPath := tmp.Name()

	if err := wav.EncodeStereo16(tmp, sampleRate, out.Right, out.Left); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: encoding %s: %w", audio.ErrIO, path, err)
	}

	if err := tmp.Chmod(outputMode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}
