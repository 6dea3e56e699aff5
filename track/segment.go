// SPDX-License-Identifier: EPL-2.0

package track

// segment is a view of length samples starting at offset inside buf.
type segment struct {
	buf         *sampleBuffer
	offset      int
	length      int
	globalStart int
	next        *segment

	// depth is 0 for views created by writing or copying, and parent+1 for
	// zero-copy clones taken by InsertShared.
	depth int
}

func newSegment(buf *sampleBuffer, offset, length, depth int) *segment {
	s := &segment{
		buf:    buf,
		offset: offset,
		length: length,
		depth:  depth,
	}
	buf.attach(s)
	return s
}

func (s *segment) end() int { return s.globalStart + s.length }

func (s *segment) samples() []int16 {
	return s.buf.data[s.offset : s.offset+s.length]
}

func (s *segment) hasLiveChildren() bool {
	return s.buf.dependents(s)
}

func (s *segment) shared() bool {
	return s.buf.overlapping(s, s.offset, s.offset+s.length)
}

// unshare moves s onto a private copy of its window so in-place mutation
// cannot be observed through another view.
func (s *segment) unshare() {
	if !s.shared() {
		return
	}
	priv := bufferFrom(s.samples())
	s.buf.detach(s)
	s.buf = priv
	s.offset = 0
	s.depth = 0
	priv.attach(s)
}

func (s *segment) release() {
	s.buf.detach(s)
	s.next = nil
}

// split cuts s at local and links the right half after it. It returns nil
// when local does not fall strictly inside s. Samples are never copied.
func split(s *segment, local int) *segment {
	if s == nil || local <= 0 || local >= s.length {
		return nil
	}

	right := newSegment(s.buf, s.offset+local, s.length-local, s.depth)
	right.globalStart = s.globalStart + local
	right.next = s.next

	s.next = right
	s.length = local

	return right
}
