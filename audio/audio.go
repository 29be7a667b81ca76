// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// PCM holds a fully decoded file as per-channel integer sample sequences.
//
// Sample values keep the encoding of the source: 8-bit WAV data stays
// unsigned (0..255) and 16-bit data stays signed.
type PCM struct {
	Channels   [][]int
	SampleRate int
	BitDepth   int
}

// NumChannels returns the channel count.
func (p *PCM) NumChannels() int { return len(p.Channels) }

// Frames returns the number of samples per channel.
func (p *PCM) Frames() int {
	if len(p.Channels) == 0 {
		return 0
	}

	return len(p.Channels[0])
}

// Deinterleave splits interleaved samples into numChannels sequences,
// preserving the order of samples within each channel. A trailing partial
// frame is dropped.
func Deinterleave(data []int, numChannels int) [][]int {
	if numChannels <= 0 {
		return nil
	}

	frames := len(data) / numChannels
	channels := make([][]int, numChannels)
	for c := range channels {
		channels[c] = make([]int, frames)
	}

	for f := range frames {
		base := f * numChannels
		for c := range numChannels {
			channels[c][f] = data[base+c]
		}
	}

	return channels
}

// Decoder constructs a PCM from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*PCM, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// DecoderFor picks a decoder using the file extension of path.
func (r *Registry) DecoderFor(path string) (Decoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	d, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%s (%s): %w", path, ext, ErrUnknownFormat)
	}

	return d, nil
}

// DecodeFile opens path and decodes it with the registered decoder for its
// extension. Open failures are reported as ErrIO.
func DecodeFile(reg *Registry, path string) (*PCM, error) {
	dec, err := reg.DecoderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	pcm, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return pcm, nil
}
