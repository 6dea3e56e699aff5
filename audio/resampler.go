// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audtrack/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation, keeping the channel count. When downsampling, incoming
// frames pass through a one-pole low-pass filter first.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// win holds frames i-1, i, i+1, i+2 around the output position; real
	// marks which of them came from src rather than edge duplication.
	win  [4][]float32
	real [4]bool

	pos     float64 // fractional position between win[1] and win[2]
	primed  bool
	srcDone bool
	frame   []float32

	filter      bool
	filterAlpha float32
	filterState []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		frame:       make([]float32, channels),
		filter:      ratio > 1,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads one whole frame from src into r.frame. A partial frame at the
// end of the stream is dropped.
func (r *Resampler) pull() (bool, error) {
	if r.srcDone {
		return false, nil
	}

	n, err := readAtLeast(r.src, r.frame, r.channels)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("%w", err)
		}
		r.srcDone = true
	}
	if n < r.channels {
		r.srcDone = true
		return false, nil
	}

	if r.filter {
		if !r.primed {
			copy(r.filterState, r.frame)
		}
		for c, x := range r.frame {
			y := r.filterAlpha*x + (1-r.filterAlpha)*r.filterState[c]
			r.frame[c] = y
			r.filterState[c] = y
		}
	}

	return true, nil
}

// fill loads slot i with the next frame, or duplicates slot i-1 when src
// is exhausted.
func (r *Resampler) fill(i int) error {
	ok, err := r.pull()
	if err != nil {
		return err
	}
	if ok {
		copy(r.win[i], r.frame)
	} else {
		copy(r.win[i], r.win[i-1])
	}
	r.real[i] = ok
	return nil
}

func (r *Resampler) prime() error {
	ok, err := r.pull()
	if err != nil {
		return err
	}
	r.primed = true
	if !ok {
		return io.EOF
	}

	copy(r.win[0], r.frame)
	copy(r.win[1], r.frame)
	r.real[0], r.real[1] = false, true

	if err := r.fill(2); err != nil {
		return err
	}
	return r.fill(3)
}

func (r *Resampler) advance() error {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]
	return r.fill(3)
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written, err
			}
		}

		if !r.real[1] {
			return written, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written += r.channels
		r.pos += r.ratio
	}

	return written, nil
}
