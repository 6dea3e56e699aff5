// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files.
//
// # Fixed layout
//
// Tracks are stored in the canonical 44-byte layout:
//
//	"RIFF" size "WAVE"
//	"fmt " 16 format=1 channels=1 rate byteRate blockAlign=2 bits=16
//	"data" size samples...
//
// WriteWAV16 and Save produce it; ReadPCM16 and Load validate the header,
// strip it and return the rest of the file as little-endian int16 samples.
//
//	samples, err := wav.Load("in.wav")
//	err = wav.Save("out.wav", 8000, samples)
//
// Load falls back to github.com/go-audio/wav when a RIFF/WAVE file keeps its
// chunks in a different order (for example a LIST chunk before "data"). Only
// mono 16-bit PCM is accepted either way.
//
// # Streaming
//
// Decoder returns an audio.Source with float32 samples in [-1, 1], used by
// the import pipeline:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// # Errors
//
//   - ErrTruncatedHeader: fewer than 44 bytes
//   - ErrNotWavFile: missing RIFF/WAVE markers
//   - ErrOnlyPCM16bitSupported: not 16-bit PCM
//   - ErrOnlyMonoSupported: Load on a multi-channel file
//   - ErrUnsupportedWavChunks: non-canonical chunk order (ReadPCM16 only)
package wav
