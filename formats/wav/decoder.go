package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/binaural/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, ErrNotPCM
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth != 8 && bitDepth != 16 {
		return nil, fmt.Errorf("%d bit: %w", bitDepth, audio.ErrUnsupportedFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading pcm data: %w", err)
	}

	return &audio.PCM{
		Channels:   audio.Deinterleave(buf.Data, int(dec.NumChans)),
		SampleRate: int(dec.SampleRate),
		BitDepth:   bitDepth,
	}, nil
}
