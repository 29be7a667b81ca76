// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/binaural/audio"
)

// go-mp3 always produces 16-bit little-endian stereo
const (
	outputChannels = 2
	outputBitDepth = 16
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

func decode(dec mp3Reader) (*audio.PCM, error) {
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// Drop a trailing odd byte
	samples := make([]int, len(raw)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2])))
	}

	return &audio.PCM{
		Channels:   audio.Deinterleave(samples, outputChannels),
		SampleRate: dec.SampleRate(),
		BitDepth:   outputBitDepth,
	}, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decode(dec)
}
