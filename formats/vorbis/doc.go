// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to
// floating point, so samples are clamped to [-1, 1] and scaled to 16-bit
// signed integers; the resulting audio.PCM reports a BitDepth of 16.
//
//	pcm, err := vorbis.Decoder{}.Decode(file)
//
// The sample rate of the stream is kept as-is.
package vorbis
