package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"reflect"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // interleaved stereo PCM
	offset       int
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := min(len(buf)/2, len(m.samples)-m.offset)
	for i := range samplesToRead {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(m.samples[m.offset+i]))
	}
	m.offset += samplesToRead

	return samplesToRead * 2, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data")))
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

func TestDecode_StereoInterleaving(t *testing.T) {
	t.Parallel()

	reader := &mockMP3Reader{
		sampleRate: 44100,
		samples:    []int16{100, -100, 32767, -32768, 0, 1},
	}

	pcm, err := decode(reader)
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}

	want := [][]int{{100, 32767, 0}, {-100, -32768, 1}}
	if !reflect.DeepEqual(pcm.Channels, want) {
		t.Errorf("Channels = %v, want %v", pcm.Channels, want)
	}

	if pcm.SampleRate != 44100 || pcm.BitDepth != 16 {
		t.Errorf("format = %d Hz %d bit, want 44100 Hz 16 bit", pcm.SampleRate, pcm.BitDepth)
	}
}

func TestDecode_VariousSampleRates(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{22050, 32000, 44100, 48000} {
		pcm, err := decode(&mockMP3Reader{sampleRate: rate, samples: []int16{1, 2}})
		if err != nil {
			t.Fatalf("decode() error = %v", err)
		}
		if pcm.SampleRate != rate {
			t.Errorf("SampleRate = %d, want %d", pcm.SampleRate, rate)
		}
	}
}

func TestDecode_ReadError(t *testing.T) {
	t.Parallel()

	_, err := decode(&mockMP3Reader{sampleRate: 44100, returnErrors: true})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("decode() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

// BenchmarkDecode benchmarks converting one second of decoded stereo audio
func BenchmarkDecode(b *testing.B) {
	samples := make([]int16, 44100*2)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = decode(&mockMP3Reader{sampleRate: 44100, samples: samples})
	}
}
