// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files for import into a track.
//
// Decoding is done by github.com/hajimehoshi/go-mp3. This package wraps it
// in an audio.Source so the import pipeline can pull float32 samples from
// it like from any other format.
//
// # Decoding
//
//	f, err := os.Open("speech.mp3")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
// go-mp3 always produces interleaved 16-bit little-endian stereo, even for
// mono files, so the source reports:
//   - Channels: 2
//   - Sample rate: taken from the first frame (usually 44.1 kHz or 48 kHz)
//   - Samples: float32 in [-1, 1), the exact inverse of utils.Float32ToInt16
//
// A read from go-mp3 may end in the middle of a sample. The odd byte is
// kept and joined with the next read, so no sample is ever torn.
//
// # Importing
//
// Most callers never use the decoder directly. audtrack.Import picks it for
// ".mp3" files, resamples to the track's rate and mixes the two channels
// down to mono:
//
//	t, err := audtrack.Import("speech.mp3")
//
// To run the same chain by hand:
//
//	pcm, err := audio.ToMono16(src, 8000, 4096)
//
// # Limitations
//
// Decoding only. Writing MP3 is out of scope; tracks are saved as WAV.
package mp3
