// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds helpers for inspecting and fabricating WAV files
// in tests without going through the encoder under test.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"testing"
)

// HeaderSize is the size of a canonical RIFF/WAVE header.
const HeaderSize = 44

var errNotCanonical = errors.New("not a canonical 44-byte WAV header")

// Header is the decoded canonical WAV header.
type Header struct {
	RIFFSize      uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// Frames is the number of frames the data chunk claims to hold.
func (h Header) Frames() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize) / int(h.BlockAlign)
}

// ParseHeader decodes the first HeaderSize bytes of data, assuming the
// RIFF, fmt and data chunks are laid out back to back.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errNotCanonical
	}

	if !bytes.HasPrefix(data[:4], []byte("RIFF")) ||
		!bytes.HasPrefix(data[8:12], []byte("WAVE")) ||
		!bytes.HasPrefix(data[12:16], []byte("fmt ")) ||
		!bytes.HasPrefix(data[36:40], []byte("data")) {
		return Header{}, errNotCanonical
	}

	return Header{
		RIFFSize:      binary.LittleEndian.Uint32(data[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(data[20:22]),
		Channels:      binary.LittleEndian.Uint16(data[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(data[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(data[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(data[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(data[34:36]),
		DataSize:      binary.LittleEndian.Uint32(data[40:44]),
	}, nil
}

// ReadFile reads path and parses its header, failing the test on error.
// It returns the header together with the raw sample payload.
func ReadFile(t testing.TB, path string) (Header, []byte) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}

	h, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}

	return h, data[HeaderSize:]
}

// PCM16 decodes a little-endian 16-bit payload.
func PCM16(payload []byte) []int16 {
	out := make([]int16, len(payload)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(payload[2*i : 2*i+2]))
	}
	return out
}
