// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	samples      []int
	offset       int
	returnErrors bool
	zeroAtEnd    bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		if m.zeroAtEnd {
			return 0, nil
		}
		return 0, io.EOF
	}

	samplesToRead := min(len(buf.Data), len(m.samples)-m.offset)
	copy(buf.Data, m.samples[m.offset:m.offset+samplesToRead])
	m.offset += samplesToRead

	return samplesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{}))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecode_Deinterleaves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		zeroAtEnd bool
	}{
		{"ends with EOF", false},
		{"ends with empty read", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reader := &mockAiffReader{
				sampleRate: 44100,
				channels:   2,
				samples:    []int{1, -1, 2, -2, 3, -3},
				zeroAtEnd:  tt.zeroAtEnd,
			}

			pcm, err := decode(reader, reader.Format(), 16)
			if err != nil {
				t.Fatalf("decode() error = %v", err)
			}

			want := [][]int{{1, 2, 3}, {-1, -2, -3}}
			if !reflect.DeepEqual(pcm.Channels, want) {
				t.Errorf("Channels = %v, want %v", pcm.Channels, want)
			}
			if pcm.SampleRate != 44100 || pcm.BitDepth != 16 {
				t.Errorf("format = %d Hz %d bit, want 44100 Hz 16 bit", pcm.SampleRate, pcm.BitDepth)
			}
		})
	}
}

func TestReadAll_SpansChunks(t *testing.T) {
	t.Parallel()

	samples := make([]int, readChunk*2+17)
	for i := range samples {
		samples[i] = i
	}

	got, err := readAll(&mockAiffReader{sampleRate: 8000, channels: 1, samples: samples})
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}

	if !reflect.DeepEqual(got, samples) {
		t.Errorf("readAll() returned %d samples, want %d", len(got), len(samples))
	}
}

func TestReadAll_Error(t *testing.T) {
	t.Parallel()

	_, err := readAll(&mockAiffReader{channels: 1, returnErrors: true})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("readAll() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestDecode_NotAiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    io.Reader
	}{
		{"seekable", bytes.NewReader([]byte("RIFF....WAVEfmt "))},
		{"plain reader", struct{ io.Reader }{bytes.NewReader([]byte("RIFF....WAVEfmt "))}},
		{"empty", struct{ io.Reader }{bytes.NewReader(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(tt.r)
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	if ErrNotAiffFile.Error() != "not an AIFF file" {
		t.Errorf("ErrNotAiffFile = %q", ErrNotAiffFile.Error())
	}
	if ErrUnsupportedAiffLayout.Error() != "unsupported AIFF layout" {
		t.Errorf("ErrUnsupportedAiffLayout = %q", ErrUnsupportedAiffLayout.Error())
	}
	if errors.Is(ErrNotAiffFile, ErrUnsupportedAiffLayout) {
		t.Error("AIFF errors are not distinct")
	}
}

// BenchmarkReadAll benchmarks draining one second of stereo audio
func BenchmarkReadAll(b *testing.B) {
	samples := make([]int, 44100*2)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = readAll(&mockAiffReader{sampleRate: 44100, channels: 2, samples: samples})
	}
}
