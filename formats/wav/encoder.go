// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/binaural/utils"
)

const (
	stereoChannels = 2
	bitsPerSample  = 16
)

// Interleave16 clips right and left to 16-bit and interleaves them as R, L
// per frame.
func Interleave16(right, left []float64) ([]int16, error) {
	if len(right) != len(left) {
		return nil, fmt.Errorf("%d vs %d: %w", len(right), len(left), ErrChannelLength)
	}

	frames := make([]int16, 2*len(right))
	for i := range right {
		frames[2*i] = utils.ClipInt16(right[i])
		frames[2*i+1] = utils.ClipInt16(left[i])
	}

	return frames, nil
}

// EncodeStereo16 writes a 16-bit stereo PCM WAV to ws using the go-audio
// encoder. The header sizes are patched on Close, so ws must be seekable.
func EncodeStereo16(ws io.WriteSeeker, sampleRate int, right, left []float64) error {
	frames, err := Interleave16(right, left)
	if err != nil {
		return err
	}

	data := make([]int, len(frames))
	for i, s := range frames {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(ws, sampleRate, bitsPerSample, stereoChannels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: stereoChannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitsPerSample,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing pcm data: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}

	return nil
}

// WriteStereo16 streams a 16-bit stereo PCM WAV to w. Unlike EncodeStereo16
// it needs no seeking, so it works for pipes and stdout.
func WriteStereo16(w io.Writer, sampleRate int, right, left []float64) error {
	frames, err := Interleave16(right, left)
	if err != nil {
		return err
	}

	byteRate := uint32(sampleRate) * stereoChannels * bitsPerSample / 8
	blockAlign := uint16(stereoChannels * bitsPerSample / 8)
	dataSize := uint32(len(frames) * 2)
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], stereoChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192
	if len(frames) == 0 {
		return nil
	}

	buf := make([]byte, min(len(frames), chunkSize)*2)

	for i := 0; i < len(frames); i += chunkSize {
		end := min(i+chunkSize, len(frames))
		chunk := frames[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
