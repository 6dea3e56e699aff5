// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
)

// HeaderSize is the size of the canonical PCM WAV header.
const HeaderSize = 44

type header struct {
	audioFormat   uint16
	channels      int
	sampleRate    int
	bitsPerSample int
	dataSize      uint32
}

func putHeader(h []byte, sampleRate int, dataSize uint32) {
	const (
		numChannels   = 1
		bitsPerSample = 16
		blockAlign    = numChannels * bitsPerSample / 8
	)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(h[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(h[22:24], numChannels)
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(sampleRate)*blockAlign)
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], bitsPerSample)

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)
}

// parseHeader checks the canonical layout. It returns ErrUnsupportedWavChunks
// when the file is RIFF/WAVE but "data" does not follow a 16-byte fmt chunk.
func parseHeader(h []byte) (header, error) {
	if len(h) < HeaderSize {
		return header{}, ErrTruncatedHeader
	}
	if !bytes.Equal(h[0:4], []byte("RIFF")) || !bytes.Equal(h[8:12], []byte("WAVE")) {
		return header{}, ErrNotWavFile
	}
	if !bytes.Equal(h[12:16], []byte("fmt ")) {
		return header{}, ErrUnsupportedWavChunks
	}

	hdr := header{
		audioFormat:   binary.LittleEndian.Uint16(h[20:22]),
		channels:      int(binary.LittleEndian.Uint16(h[22:24])),
		sampleRate:    int(binary.LittleEndian.Uint32(h[24:28])),
		bitsPerSample: int(binary.LittleEndian.Uint16(h[34:36])),
		dataSize:      binary.LittleEndian.Uint32(h[40:44]),
	}

	if hdr.audioFormat != 1 || hdr.bitsPerSample != 16 {
		return hdr, ErrOnlyPCM16bitSupported
	}
	if !bytes.Equal(h[36:40], []byte("data")) {
		return hdr, ErrUnsupportedWavChunks
	}

	return hdr, nil
}
