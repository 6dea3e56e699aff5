// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams for import into a track.
//
// The heavy lifting is done by github.com/jfreymuth/oggvorbis, which already
// yields float32 samples. The wrapper here only adapts it to audio.Source.
//
// # Decoding
//
//	f, err := os.Open("music.ogg")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(src.SampleRate(), src.Channels())
//
// # Output Format
//
//   - Samples: interleaved float32 in [-1, 1]
//   - Channels: as stored in the stream (1 to 255)
//   - Sample rate: as stored in the stream
//
// ReadSamples only ever fills whole frames. If dst is not a multiple of the
// channel count, the trailing slots are left untouched and not counted.
// A dst shorter than one frame returns 0 and no error.
//
// # Importing
//
// audtrack.Import registers this decoder for ".ogg". The stream is
// resampled to the track's rate and averaged down to mono before the
// samples are written into the track:
//
//	t, err := audtrack.Import("music.ogg", track.WithSampleRate(16000))
//
// # Limitations
//
// Only Vorbis in an Ogg container is supported. Opus and FLAC in Ogg are
// rejected by oggvorbis when the headers are read.
package vorbis
