// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/binaural/audio"
)

const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// readAll drains dec into a single interleaved slice.
func readAll(dec aiffReader) ([]int, error) {
	buf := &goaudio.IntBuffer{
		Data:   make([]int, readChunk),
		Format: dec.Format(),
	}

	var data []int
	for {
		n, err := dec.PCMBuffer(buf)
		data = append(data, buf.Data[:n]...)

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			return data, nil
		}
		if err != nil {
			return data, fmt.Errorf("%w", err)
		}
	}
}

// Decoder reads 8 and 16-bit PCM AIFF files into memory. The go-audio
// decoder needs to seek, so plain readers are buffered first.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	if bitDepth != 8 && bitDepth != 16 {
		return nil, fmt.Errorf("%d bit: %w", bitDepth, audio.ErrUnsupportedFormat)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return decode(dec, format, bitDepth)
}

func decode(dec aiffReader, format *goaudio.Format, bitDepth int) (*audio.PCM, error) {
	data, err := readAll(dec)
	if err != nil {
		return nil, err
	}

	return &audio.PCM{
		Channels:   audio.Deinterleave(data, format.NumChannels),
		SampleRate: format.SampleRate,
		BitDepth:   bitDepth,
	}, nil
}
