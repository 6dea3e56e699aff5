// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audtrack/audio"
	"github.com/ik5/audtrack/utils"
)

// chunkedSource streams the data chunk of a WAV walked by go-audio/wav.
type chunkedSource struct {
	dec        *gowav.Decoder
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func (s *chunkedSource) SampleRate() int { return s.sampleRate }
func (s *chunkedSource) Channels() int   { return s.channels }
func (s *chunkedSource) BufSize() int    { return 4096 }
func (s *chunkedSource) Close() error    { return nil }

func (s *chunkedSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.Int16ToFloat32(int16(v))
	}

	if err != nil {
		return n, io.EOF
	}
	return n, nil
}

// openChunked validates a RIFF/WAVE stream with go-audio/wav and positions
// it at the start of the data chunk.
func openChunked(rs io.ReadSeeker) (*gowav.Decoder, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}
	if dec.NumChans < 1 {
		return nil, ErrUnsupportedWavLayout
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("find wav data chunk: %w", err)
	}
	return dec, nil
}

// decodeChunkedStream buffers r in memory, since go-audio/wav needs to seek.
func decodeChunkedStream(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}

	dec, err := openChunked(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return &chunkedSource{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}
