// SPDX-License-Identifier: EPL-2.0

package track

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const previewLen = 10

// SegmentInfo describes one segment of a track at the time of the call.
type SegmentInfo struct {
	GlobalStart int
	Length      int
	Offset      int
	BufferID    uint64
	// Refs is the number of segments, in any track, viewing the same buffer.
	Refs int
	// Depth is 0 for owned data and grows by one per shared insert.
	Depth   int
	Preview []int16
}

// Segments returns a description of every segment in chain order.
func (t *Track) Segments() []SegmentInfo {
	out := make([]SegmentInfo, 0, len(t.index))
	for s := t.head; s != nil; s = s.next {
		win := s.samples()
		out = append(out, SegmentInfo{
			GlobalStart: s.globalStart,
			Length:      s.length,
			Offset:      s.offset,
			BufferID:    s.buf.id,
			Refs:        s.buf.refs(),
			Depth:       s.depth,
			Preview:     append([]int16(nil), win[:min(len(win), previewLen)]...),
		})
	}
	return out
}

func (t *Track) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "track(len=%d)", t.total)
	for _, si := range t.Segments() {
		fmt.Fprintf(&sb, " %v", si.Preview)
		if si.Length > previewLen {
			sb.WriteString("...")
		}
		fmt.Fprintf(&sb, "(start: %d, len: %d)", si.GlobalStart, si.Length)
	}
	return sb.String()
}

// Sum64 returns an xxhash digest of the track's samples encoded as
// little-endian int16. Two tracks with equal samples have equal sums
// regardless of how they are segmented.
func (t *Track) Sum64() uint64 {
	d := xxhash.New()
	var scratch []byte
	for s := t.head; s != nil; s = s.next {
		scratch = scratch[:0]
		for _, v := range s.samples() {
			scratch = binary.LittleEndian.AppendUint16(scratch, uint16(v))
		}
		_, _ = d.Write(scratch)
	}
	return d.Sum64()
}
