// SPDX-License-Identifier: EPL-2.0

package audtrack

import (
	"fmt"
	"os"

	"github.com/ik5/audtrack/audio"
	"github.com/ik5/audtrack/formats/aiff"
	"github.com/ik5/audtrack/formats/mp3"
	"github.com/ik5/audtrack/formats/vorbis"
	"github.com/ik5/audtrack/formats/wav"
	"github.com/ik5/audtrack/track"
)

// readSize is the number of samples pulled through the pipeline per call.
const readSize = 4096

// DefaultRegistry returns a registry with every decoder this module ships.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// Import decodes the file at path with the decoder registered for its
// extension and returns it as a track: resampled to the track's sample rate,
// mixed to mono and converted to 16-bit PCM.
func Import(path string, opts ...track.Option) (*track.Track, error) {
	return ImportWith(DefaultRegistry(), path, opts...)
}

// ImportWith is Import with a caller supplied registry.
func ImportWith(reg *audio.Registry, path string, opts ...track.Option) (*track.Track, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer src.Close()

	return ImportSource(src, opts...)
}

// ImportSource drains src into a new track.
func ImportSource(src audio.Source, opts ...track.Option) (*track.Track, error) {
	t := track.New(opts...)

	pcm, err := audio.ToMono16(src, t.SampleRate(), readSize)
	if err != nil {
		return nil, err
	}

	if err := t.Write(0, pcm); err != nil {
		return nil, err
	}

	return t, nil
}
