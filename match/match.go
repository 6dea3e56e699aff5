// SPDX-License-Identifier: EPL-2.0

package match

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DefaultThreshold is the fraction of the pattern's energy a window must
// reach to count as an occurrence.
const DefaultThreshold = 0.95

// Occurrence is an inclusive range [Start, End] of target samples.
type Occurrence struct {
	Start int
	End   int
}

func (o Occurrence) String() string {
	return strconv.Itoa(o.Start) + "," + strconv.Itoa(o.End)
}

// Find slides pattern across target one sample at a time and records every
// window whose cross-correlation with pattern is at least threshold times
// the pattern's own energy. After a hit the window jumps past it, so
// occurrences never overlap. The scan is O(len(target) * len(pattern)).
//
// Find returns nil when either input is empty or pattern is longer than
// target.
func Find(target, pattern []int16, threshold float64) []Occurrence {
	m := len(pattern)
	if m == 0 || len(target) == 0 || len(target) < m {
		return nil
	}

	t := toFloat64(target)
	p := toFloat64(pattern)

	limit := threshold * floats.Dot(p, p)

	var out []Occurrence
	for i := 0; i+m <= len(t); {
		if floats.Dot(t[i:i+m], p) >= limit {
			out = append(out, Occurrence{Start: i, End: i + m - 1})
			i += m
			continue
		}
		i++
	}

	return out
}

// Format renders occurrences one per line as "start,end".
func Format(occ []Occurrence) string {
	lines := make([]string, len(occ))
	for i, o := range occ {
		lines[i] = o.String()
	}
	return strings.Join(lines, "\n")
}

func toFloat64(s []int16) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
