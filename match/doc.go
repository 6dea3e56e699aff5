// SPDX-License-Identifier: EPL-2.0

// Package match finds approximate occurrences of a short PCM pattern inside
// a longer signal using plain sliding-window cross-correlation.
//
// A window starting at i matches when
//
//	sum(target[i+j] * pattern[j]) >= threshold * sum(pattern[j]^2)
//
// The first match found wins; the scan then resumes right after it, so a
// better-scoring overlapping window is never reported.
package match
