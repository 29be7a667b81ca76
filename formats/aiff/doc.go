// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into
// audio.PCM values so they can be placed as sources next to WAV files.
//
// # Supported Formats
//
//   - PCM 8-bit and 16-bit
//   - Any channel count and sample rate
//
// Samples are returned as decoded by go-audio (signed for both depths).
//
//	pcm, err := aiff.Decoder{}.Decode(file)
//
// # Errors
//
//   - ErrNotAiffFile: the input is not an AIFF file
//   - ErrUnsupportedAiffLayout: the file has no usable format information
//   - audio.ErrUnsupportedFormat: bit depth other than 8 or 16
package aiff
