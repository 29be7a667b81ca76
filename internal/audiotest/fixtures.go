// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// WAVSpec describes a canonical 44-byte-header WAV file for tests.
type WAVSpec struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	AudioFormat   int // 0 means PCM (1)
}

// WAVBytes builds a WAV file from interleaved samples. 8-bit samples are
// written as single unsigned bytes, every other depth as little-endian
// integers of BitsPerSample/8 bytes.
func WAVBytes(spec WAVSpec, samples []int) []byte {
	format := spec.AudioFormat
	if format == 0 {
		format = 1
	}

	bytesPerSample := spec.BitsPerSample / 8
	numChannels := uint16(spec.Channels)
	byteRate := uint32(spec.SampleRate) * uint32(numChannels) * uint32(bytesPerSample)
	blockAlign := numChannels * uint16(bytesPerSample)
	dataSize := uint32(len(samples) * bytesPerSample)

	buf := new(bytes.Buffer)

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(format))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(spec.SampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(spec.BitsPerSample))

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		switch bytesPerSample {
		case 1:
			buf.WriteByte(byte(s))
		case 2:
			binary.Write(buf, binary.LittleEndian, int16(s))
		case 3:
			buf.Write([]byte{byte(s), byte(s >> 8), byte(s >> 16)})
		default:
			binary.Write(buf, binary.LittleEndian, int32(s))
		}
	}

	return buf.Bytes()
}

// WriteWAV writes WAVBytes to a file named name inside t.TempDir() and
// returns its path.
func WriteWAV(t testing.TB, name string, spec WAVSpec, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, WAVBytes(spec, samples), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}

// Constant returns n copies of value.
func Constant(n, value int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Sine returns n samples of a sine wave with the given peak amplitude.
func Sine(n, sampleRate int, frequency, amplitude float64) []int {
	out := make([]int, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int(amplitude * math.Sin(2*math.Pi*frequency*t))
	}
	return out
}

// Ramp returns the sequence start, start+1, ... of length n.
func Ramp(n, start int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}
