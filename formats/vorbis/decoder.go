package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/utils"
	"github.com/jfreymuth/oggvorbis"
)

// Vorbis decodes to float; samples are quantized to 16-bit PCM
const outputBitDepth = 16

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

func decode(dec oggReader) (*audio.PCM, error) {
	channels := dec.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	frameBuf := make([]float32, 4096*channels)
	var samples []int

	for {
		n, err := dec.Read(frameBuf)
		for _, v := range frameBuf[:n] {
			samples = append(samples, int(utils.Float32ToInt16(v)))
		}

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &audio.PCM{
		Channels:   audio.Deinterleave(samples, channels),
		SampleRate: dec.SampleRate(),
		BitDepth:   outputBitDepth,
	}, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decode(dec)
}
