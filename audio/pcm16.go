// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audtrack/utils"
)

// ToMono16 drains src through a Resampler and a MonoMixer and returns the
// result as 16-bit PCM at targetRate. bufferSize is the number of samples
// read per call; values below 1 use src.BufSize().
func ToMono16(src Source, targetRate, bufferSize int) ([]int16, error) {
	if targetRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if bufferSize < 1 {
		bufferSize = max(src.BufSize(), 1)
	}

	var stage Source = src
	if src.SampleRate() != targetRate {
		stage = NewResampler(src, targetRate)
	}
	mono := NewMonoMixer(stage)

	buf := make([]float32, bufferSize)
	pcm := make([]int16, 0, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm = append(pcm, utils.Float32ToInt16(x))
		}

		if errors.Is(err, io.EOF) {
			return pcm, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			return pcm, nil
		}
	}
}
