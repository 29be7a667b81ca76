// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV sources and writes the rendered stereo output.
//
// Decoding and the seekable encoder use the github.com/go-audio/wav library.
//
// # Supported Input
//
//   - PCM 8-bit (unsigned samples, kept as 0..255)
//   - PCM 16-bit (signed samples)
//   - Any channel count and sample rate
//
// Other bit depths fail with audio.ErrUnsupportedFormat.
//
//	pcm, err := wav.Decoder{}.Decode(file)
//	// pcm.Channels[0] is the first channel
//
// # Writing Output
//
// Output is always 16-bit stereo, interleaved right then left. Samples are
// clipped to the int16 range and truncated toward zero:
//
//	f, _ := os.Create("output.wav")
//	err := wav.EncodeStereo16(f, 44100, right, left)
//
// WriteStereo16 writes the same format to any io.Writer (for example stdout)
// with a precomputed 44-byte header.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrNotPCM: the format tag is not integer PCM
//   - ErrChannelLength: right and left differ in length
package wav
