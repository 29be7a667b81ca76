// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files into
// audio.PCM. go-mp3 always produces 16-bit signed stereo, so the result has
// two channels and a BitDepth of 16 regardless of the encoded stream.
//
//	pcm, err := mp3.Decoder{}.Decode(file)
//
// The whole stream is decoded into memory. No resampling takes place; the
// PCM keeps the sample rate of the MP3 stream.
package mp3
