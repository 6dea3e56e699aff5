// SPDX-License-Identifier: EPL-2.0

package track

import "github.com/ik5/audtrack/match"

const (
	// DefaultSampleRate is the rate written into saved WAV headers.
	DefaultSampleRate = 8000

	// DefaultMaxLength caps implicit extension, in samples.
	DefaultMaxLength = 1 << 30
)

type options struct {
	sampleRate int
	maxLength  int
	threshold  float64
}

func defaultOptions() options {
	return options{
		sampleRate: DefaultSampleRate,
		maxLength:  DefaultMaxLength,
		threshold:  match.DefaultThreshold,
	}
}

// Option configures a Track.
type Option func(*options)

// WithSampleRate sets the sample rate used by SaveWAV and Import.
// Non-positive values are ignored.
func WithSampleRate(hz int) Option {
	return func(o *options) {
		if hz > 0 {
			o.sampleRate = hz
		}
	}
}

// WithMaxLength sets the largest length, in samples, a write or insert may
// grow the track to. Non-positive values are ignored.
func WithMaxLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

// WithMatchThreshold sets the fraction of the pattern's energy a window's
// correlation must reach for Identify to report it.
func WithMatchThreshold(t float64) Option {
	return func(o *options) {
		o.threshold = t
	}
}
