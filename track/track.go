// SPDX-License-Identifier: EPL-2.0

package track

import (
	"fmt"
	"sort"
)

// Track is an editable sequence of 16-bit mono samples stored as a chain of
// segments over shared sample buffers.
//
// A Track is not safe for concurrent use. Callers that share a Track, or
// that edit a Track while another one inserts from it, must serialize access.
type Track struct {
	head  *segment
	total int

	// index holds the chain in order; rebuilt by reindex after every
	// structural change.
	index []*segment

	opts options
}

// New returns an empty track.
func New(opts ...Option) *Track {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Track{opts: o}
}

// Len returns the number of samples in the track.
func (t *Track) Len() int { return t.total }

// SampleRate returns the rate used when the track is saved.
func (t *Track) SampleRate() int { return t.opts.sampleRate }

// reindex recomputes every cached global start, the total length and the
// lookup index in a single pass over the chain.
func (t *Track) reindex() {
	t.index = t.index[:0]
	pos := 0
	for s := t.head; s != nil; s = s.next {
		s.globalStart = pos
		pos += s.length
		t.index = append(t.index, s)
	}
	t.total = pos
}

// locate returns the segment holding global sample pos and the offset of
// pos inside it, or nil when pos is outside the track.
func (t *Track) locate(pos int) (*segment, int) {
	if pos < 0 || pos >= t.total {
		return nil, 0
	}

	i := sort.Search(len(t.index), func(i int) bool {
		return t.index[i].end() > pos
	})
	if i == len(t.index) {
		return nil, 0
	}

	s := t.index[i]
	return s, pos - s.globalStart
}

// prev returns the segment linked before s. A nil s yields the tail.
func (t *Track) prev(s *segment) *segment {
	for p := t.head; p != nil; p = p.next {
		if p.next == s {
			return p
		}
	}
	return nil
}

// ReadInto copies samples starting at pos into dst and returns how many
// were copied. Fewer than len(dst) are copied when the track ends first.
func (t *Track) ReadInto(dst []int16, pos int) int {
	s, local := t.locate(pos)

	copied := 0
	for s != nil && copied < len(dst) {
		copied += copy(dst[copied:], s.samples()[local:])
		s = s.next
		local = 0
	}

	return copied
}

// Read returns up to n samples starting at pos. Reading past the end of the
// track returns a shorter slice; check its length.
func (t *Track) Read(pos, n int) []int16 {
	if n <= 0 || pos < 0 || pos >= t.total {
		return []int16{}
	}

	out := make([]int16, min(n, t.total-pos))
	got := t.ReadInto(out, pos)
	return out[:got]
}

// Samples returns a copy of the whole track.
func (t *Track) Samples() []int16 {
	return t.Read(0, t.total)
}

// Write copies samples into the track starting at pos. When the write ends
// past the current length the track is first extended with zeroed samples,
// so any gap between the old end and pos reads back as silence.
func (t *Track) Write(pos int, samples []int16) error {
	if pos < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePosition, pos)
	}
	if len(samples) == 0 {
		return nil
	}

	if len(samples) > t.opts.maxLength-pos {
		return fmt.Errorf("%w: %d samples at %d, max %d", ErrTooLong, len(samples), pos, t.opts.maxLength)
	}

	end := pos + len(samples)
	if end > t.total {
		t.extend(end)
	}

	s, local := t.locate(pos)

	written := 0
	for s != nil && written < len(samples) {
		s.unshare()
		written += copy(s.samples()[local:], samples[written:])
		s = s.next
		local = 0
	}

	return nil
}

// extend grows the track to end samples with a new zero-filled tail buffer.
func (t *Track) extend(end int) {
	if t.head == nil {
		t.head = newSegment(newSampleBuffer(end), 0, end, 0)
		t.reindex()
		return
	}

	gap := end - t.total
	t.index[len(t.index)-1].next = newSegment(newSampleBuffer(gap), 0, gap, 0)
	t.reindex()
}
