// SPDX-License-Identifier: EPL-2.0

package track

import "sync/atomic"

var bufferSeq atomic.Uint64

// sampleBuffer is the physical storage behind one or more segments.
// Storage is shared by reference counting: every segment that views the
// buffer is attached, and the samples are dropped when the last view detaches.
type sampleBuffer struct {
	id    uint64
	data  []int16
	views map[*segment]struct{}
}

func newSampleBuffer(n int) *sampleBuffer {
	return &sampleBuffer{
		id:    bufferSeq.Add(1),
		data:  make([]int16, n),
		views: make(map[*segment]struct{}, 1),
	}
}

// bufferFrom takes ownership of a private copy of samples.
func bufferFrom(samples []int16) *sampleBuffer {
	b := newSampleBuffer(len(samples))
	copy(b.data, samples)
	return b
}

func (b *sampleBuffer) refs() int { return len(b.views) }

func (b *sampleBuffer) attach(s *segment) {
	b.views[s] = struct{}{}
}

func (b *sampleBuffer) detach(s *segment) {
	delete(b.views, s)
	if len(b.views) == 0 {
		b.data = nil
	}
}

func (b *sampleBuffer) released() bool { return b.data == nil }

// overlapping reports whether any view other than s covers part of the
// buffer window [start, end).
func (b *sampleBuffer) overlapping(s *segment, start, end int) bool {
	for v := range b.views {
		if v == s {
			continue
		}
		if v.offset < end && start < v.offset+v.length {
			return true
		}
	}
	return false
}

// dependents reports whether a view cloned (directly or transitively) from
// s still covers part of s's window.
func (b *sampleBuffer) dependents(s *segment) bool {
	for v := range b.views {
		if v == s || v.depth <= s.depth {
			continue
		}
		if v.offset < s.offset+s.length && s.offset < v.offset+v.length {
			return true
		}
	}
	return false
}
