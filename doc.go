// SPDX-License-Identifier: EPL-2.0

// Package audtrack edits 16-bit mono PCM audio without copying the whole
// signal on every change.
//
// The editing core lives in package track: a Track is a chain of segments
// over shared sample buffers supporting positional read and write, range
// deletion, insertion from another track and pattern detection.
//
//	t := track.New()
//	_ = t.Write(0, []int16{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})
//	_ = t.DeleteRange(3, 4) // [10 20 30 80 90 100]
//
// This package adds Import, which brings WAV, MP3, Ogg Vorbis and AIFF files
// into a track by decoding, resampling to the track's rate (8 kHz by
// default) and mixing down to mono:
//
//	t, err := audtrack.Import("speech.mp3")
//	if err != nil {
//	    return err
//	}
//	err = t.SaveWAV("speech.wav")
//
// # Subpackages
//
//   - track: the segmented editable track
//   - match: sliding-window cross-correlation search
//   - formats/wav: fixed 44-byte WAV reader and writer, streaming decoder
//   - formats/mp3, formats/vorbis, formats/aiff: import decoders
//   - audio: Source, Registry, Resampler, MonoMixer
//   - utils: sample conversion and interpolation
package audtrack
