// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files for import into a track.
//
// Parsing is handled by github.com/go-audio/aiff. This package checks the
// sample format, then exposes the file as an audio.Source.
//
// # Decoding
//
//	f, err := os.Open("take.aiff")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
// go-audio/aiff needs to seek. An *os.File is used as is; any other
// io.Reader is read fully into memory first.
//
// # Supported Files
//
//   - Bit depth: 16 only (ErrOnlyPCM16bitSupported otherwise)
//   - Channels: one or more (ErrUnsupportedAiffLayout for zero)
//   - Sample rate: any, taken from the COMM chunk
//
// Samples are converted with utils.Int16ToFloat32, so an AIFF imported at
// the track's own rate into a mono track keeps its exact 16-bit values.
//
// # Errors
//
//   - ErrNotAiffFile: missing FORM/AIFF structure
//   - ErrOnlyPCM16bitSupported: bit depth other than 16
//   - ErrUnsupportedAiffLayout: no channels
//
// # Importing
//
// audtrack.Import registers the decoder for both ".aiff" and ".aif":
//
//	t, err := audtrack.Import("take.aif")
package aiff
