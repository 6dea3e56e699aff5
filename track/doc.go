// SPDX-License-Identifier: EPL-2.0

// Package track implements an editable buffer of 16-bit mono PCM samples.
//
// A Track is a chain of segments. Each segment is a window (offset, length)
// into a sample buffer, and a buffer may be viewed by several segments at
// once, in the same track or in others. Edits work on the chain instead of
// the samples: a write past the end appends a new zeroed buffer, an insert
// splits the segment at the insertion point and links new segments in, and
// a deletion drops or shrinks the segments it covers. Only samples inside a
// single segment are ever shifted.
//
// # Reading and writing
//
//	t := track.New()
//	_ = t.Write(0, []int16{10, 20, 30, 40, 50})
//	samples := t.Read(1, 3) // [20 30 40]
//
// Reads past the end are truncated rather than failing, so always check the
// length of what Read returns.
//
// # Editing
//
// DeleteRange and Insert either apply fully or leave the track unchanged:
//
//	if err := t.DeleteRange(1, 2); err != nil {
//	    // errors.Is(err, track.ErrOutOfRange) ...
//	}
//	_ = dst.Insert(src, 5, 0, 100)
//
// Insert copies the source samples. InsertShared links views of the source
// buffers instead; the source cannot delete those samples while the views
// are alive, and writes on either side copy before mutating.
//
// # Matching
//
// Identify slides pattern over the track and reports every non-overlapping
// window whose correlation reaches 95% of the pattern's energy. See
// package match.
//
// # WAV files
//
// Open, LoadWAV and SaveWAV use the fixed 44-byte mono 16-bit layout from
// package formats/wav.
package track
