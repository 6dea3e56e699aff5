// SPDX-License-Identifier: EPL-2.0

package track

import "errors"

var (
	// ErrNegativePosition is returned when a write starts before sample 0.
	ErrNegativePosition = errors.New("negative position")

	// ErrTooLong is returned when an edit would grow the track past its
	// configured maximum length.
	ErrTooLong = errors.New("track would exceed maximum length")

	// ErrOutOfRange is returned when a range does not lie inside the track.
	ErrOutOfRange = errors.New("range out of bounds")

	// ErrRangeReferenced is returned when a deletion touches samples that a
	// shared insert elsewhere still depends on.
	ErrRangeReferenced = errors.New("range is referenced by a shared insert")
)
