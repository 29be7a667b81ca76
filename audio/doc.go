// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoded-sample model shared by the format
// decoders and the renderer.
//
// # PCM
//
// A decoded file is a PCM value holding one integer sequence per channel:
//
//	type PCM struct {
//	    Channels   [][]int
//	    SampleRate int
//	    BitDepth   int
//	}
//
// Decoders keep the encoding of the source file. 8-bit WAV samples are
// unsigned (0..255) while 16-bit samples are signed.
//
// # Decoder Registry
//
// Decoders are registered by format key and looked up by file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	pcm, err := audio.DecodeFile(reg, "1.wav")
//
// # Mixing Sources
//
// MergeChannels joins a file's channels end to end into one mono sequence.
// Stereo files are concatenated (left then right), not averaged. Mix merges
// every source and zero-pads them to a common length:
//
//	matrix, err := audio.Mix([]*audio.PCM{a, b})
//	// len(matrix[0]) == len(matrix[1])
//
// # Errors
//
//   - ErrUnsupportedFormat: bit depth other than 8 or 16
//   - ErrUnknownFormat: no decoder for the file extension
//   - ErrEmptyInput: Mix called without sources
//   - ErrIO: the input file could not be opened
package audio
