// SPDX-License-Identifier: EPL-2.0

// Package binaural renders mono recordings placed around a listener into a
// stereo WAV file, as heard by a head that keeps turning in place.
//
// Each input file becomes a point source at a fixed position in the plane.
// The renderer attenuates every source with the inverse square of its
// distance to each ear and delays one ear by the difference in travel time.
// The head rotates by a fixed angle every 10 ms chunk, so sources sweep
// around the listener.
//
// # Supported Formats
//
// DefaultRegistry decodes:
//   - WAV (PCM 8 and 16-bit) via formats/wav
//   - AIFF (PCM 8 and 16-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Inputs are not resampled. A source whose sample rate differs from the
// output rate is rendered sample for sample and a warning is logged.
//
// # Quick Start
//
//	cfg := config.Default()
//	cfg.Sources = []config.SourceConfig{
//	    {Path: "1.wav", X: -3, Y: 0},
//	    {Path: "2.wav", X: 2, Y: 2},
//	}
//	cfg.Output = "output.wav"
//
//	err := binaural.RenderFiles(cfg, binaural.DefaultRegistry(), os.Stdout, logger)
//
// Render runs the same job and returns the channels without writing them.
//
// # Output
//
// The result is 16-bit stereo PCM at the configured frame rate with the
// right channel first in every frame. Values outside the int16 range are
// clipped. The file is written under a temporary name and renamed into
// place, so a failed job never leaves a partial file. An Output of "-"
// streams the WAV to stdout.
//
// See the render package for the acoustic model and the scheduler.
package binaural
