// SPDX-License-Identifier: EPL-2.0

package track

import "github.com/ik5/audtrack/match"

// Identify reports where pattern occurs in t, as non-overlapping inclusive
// sample ranges in ascending order. It returns nil when either track is
// empty or pattern is longer than t.
func (t *Track) Identify(pattern *Track) []match.Occurrence {
	if pattern == nil || t.total == 0 || pattern.total == 0 || t.total < pattern.total {
		return nil
	}

	return match.Find(t.Samples(), pattern.Samples(), t.opts.threshold)
}
