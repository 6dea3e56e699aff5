// SPDX-License-Identifier: EPL-2.0

package track

import "fmt"

// DeleteRange removes n samples starting at pos.
//
// The call is all or nothing: it returns ErrOutOfRange when the range is not
// inside the track, and ErrRangeReferenced when any segment it touches is
// still viewed by a shared insert. In both cases the track is unchanged.
func (t *Track) DeleteRange(pos, n int) error {
	if pos < 0 || n < 0 || pos > t.total || n > t.total-pos {
		return fmt.Errorf("%w: %d samples at %d of %d", ErrOutOfRange, n, pos, t.total)
	}
	if n == 0 {
		return nil
	}

	first, local := t.locate(pos)

	left := n
	for s, l := first, local; s != nil && left > 0; s, l = s.next, 0 {
		if s.hasLiveChildren() {
			return fmt.Errorf("%w: %d samples at %d", ErrRangeReferenced, n, pos)
		}
		left -= s.length - l
	}

	prev := t.prev(first)
	s := first
	left = n

	for s != nil && left > 0 {
		next := s.next
		avail := s.length - local

		switch {
		case local == 0 && left >= s.length:
			left -= s.length
			if prev == nil {
				t.head = next
			} else {
				prev.next = next
			}
			s.release()
			s = next
			continue

		case left >= avail:
			s.length = local
			left -= avail

		default:
			cutInside(s, local, left)
			left = 0
		}

		prev = s
		s = next
		local = 0
	}

	t.reindex()
	return nil
}

// cutInside removes n samples at local from s where the cut ends before the
// segment does.
func cutInside(s *segment, local, n int) {
	if !s.shared() {
		win := s.samples()
		copy(win[local:], win[local+n:])
		s.length -= n
		return
	}

	// Another view overlaps this window, so its samples must not move.
	if local == 0 {
		s.offset += n
		s.length -= n
		return
	}

	split(s, local+n)
	s.length = local
}

// Insert copies n samples starting at srcPos of src into t at destPos.
// Each contributing source segment is duplicated into a new buffer, so later
// edits to src never affect t. src may be t itself.
func (t *Track) Insert(src *Track, destPos, srcPos, n int) error {
	return t.insert(src, destPos, srcPos, n, false)
}

// InsertShared is like Insert but the inserted segments view the source
// buffers directly. While they are linked into any track, deleting the
// source samples they cover fails with ErrRangeReferenced. Writes on either
// side copy the written segment first, so neither side observes the other.
func (t *Track) InsertShared(src *Track, destPos, srcPos, n int) error {
	return t.insert(src, destPos, srcPos, n, true)
}

func (t *Track) insert(src *Track, destPos, srcPos, n int, shared bool) error {
	if src == nil {
		return fmt.Errorf("%w: nil source track", ErrOutOfRange)
	}
	if srcPos < 0 || n < 0 || srcPos > src.total || n > src.total-srcPos {
		return fmt.Errorf("%w: source %d samples at %d of %d", ErrOutOfRange, n, srcPos, src.total)
	}
	if destPos < 0 || destPos > t.total {
		return fmt.Errorf("%w: destination %d of %d", ErrOutOfRange, destPos, t.total)
	}
	if n == 0 {
		return nil
	}
	if n > t.opts.maxLength-t.total {
		return fmt.Errorf("%w: %d more samples on %d, max %d", ErrTooLong, n, t.total, t.opts.maxLength)
	}

	head, tail := src.cloneRange(srcPos, n, shared)
	t.splice(destPos, head, tail)
	t.reindex()

	return nil
}

// cloneRange builds a detached chain covering [pos, pos+n) of t.
func (t *Track) cloneRange(pos, n int, shared bool) (head, tail *segment) {
	s, local := t.locate(pos)

	for left := n; s != nil && left > 0; s, local = s.next, 0 {
		take := min(s.length-local, left)

		var c *segment
		if shared {
			c = newSegment(s.buf, s.offset+local, take, s.depth+1)
		} else {
			c = newSegment(bufferFrom(s.samples()[local:local+take]), 0, take, 0)
		}

		if head == nil {
			head = c
		} else {
			tail.next = c
		}
		tail = c
		left -= take
	}

	return head, tail
}

// splice links the chain head..tail so that head starts at global pos,
// splitting the segment at pos when pos falls inside it.
func (t *Track) splice(pos int, head, tail *segment) {
	at, local := t.locate(pos)
	if at != nil && local > 0 {
		at = split(at, local)
	}

	prev := t.prev(at)
	tail.next = at
	if prev == nil {
		t.head = head
		return
	}
	prev.next = head
}
