// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audtrack/audio"
	"github.com/ik5/audtrack/utils"
)

type source struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if cap(s.buf) < len(dst)*2 {
		s.buf = make([]byte, len(dst)*2)
	}
	s.buf = s.buf[:len(dst)*2]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / 2
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}

	if err != nil {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder streams a 16-bit PCM WAV (any channel count) as an audio.Source.
// Canonical files are read straight through; files with other chunks are
// handed to go-audio/wav.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	h := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncatedHeader
		}
		return nil, fmt.Errorf("%w", err)
	}

	hdr, err := parseHeader(h)
	if errors.Is(err, ErrUnsupportedWavChunks) {
		return decodeChunkedStream(io.MultiReader(bytes.NewReader(h), r))
	}
	if err != nil {
		return nil, err
	}
	if hdr.channels < 1 {
		return nil, ErrUnsupportedWavLayout
	}

	return &source{
		r:          r,
		sampleRate: hdr.sampleRate,
		channels:   hdr.channels,
		buf:        make([]byte, 8192),
	}, nil
}
