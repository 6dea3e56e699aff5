// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// MonoMixer averages the channels of src into a single channel.
//
// Sources may return a number of samples that is not a whole number of
// frames. The incomplete frame is kept and finished by the next read; one
// still incomplete when src ends is dropped.
type MonoMixer struct {
	src Source
	tmp []float32
	// carry is the number of samples of an incomplete frame at the front
	// of tmp.
	carry int
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		grown := make([]float32, need)
		copy(grown, m.tmp[:m.carry])
		m.tmp = grown
	}
	m.tmp = m.tmp[:need]

	n, err := readAtLeast(m.src, m.tmp[m.carry:], channels-m.carry)
	total := m.carry + n
	frames := total / channels

	inv := 1 / float32(channels)
	for f := range frames {
		var sum float32
		for _, v := range m.tmp[f*channels : (f+1)*channels] {
			sum += v
		}
		dst[f] = sum * inv
	}

	m.carry = copy(m.tmp, m.tmp[frames*channels:total])
	if errors.Is(err, io.EOF) {
		m.carry = 0
	}

	return frames, err
}
