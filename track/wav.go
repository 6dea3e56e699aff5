// SPDX-License-Identifier: EPL-2.0

package track

import (
	"fmt"

	"github.com/ik5/audtrack/formats/wav"
)

// Open creates a track holding the samples of the WAV file at path.
func Open(path string, opts ...Option) (*Track, error) {
	t := New(opts...)
	if err := t.LoadWAV(path); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadWAV writes the samples of the WAV file at path into t starting at
// position 0, extending t when the file is longer.
func (t *Track) LoadWAV(path string) error {
	samples, err := wav.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return t.Write(0, samples)
}

// SaveWAV writes t to path as a mono 16-bit PCM WAV file.
func (t *Track) SaveWAV(path string) error {
	if err := wav.Save(path, t.opts.sampleRate, t.Samples()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
