// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audtrack/utils"
)

// chunkedPCM hands out its bytes step at a time, which may split a sample.
type chunkedPCM struct {
	data []byte
	step int
	err  error
}

func (c *chunkedPCM) SampleRate() int { return 44100 }

func (c *chunkedPCM) Read(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n := copy(p[:min(len(p), c.step)], c.data)
	c.data = c.data[n:]
	return n, nil
}

func pcmBytes(samples ...int16) []byte {
	out := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}
	return out
}

func drain(t *testing.T, src *source, chunk int) []float32 {
	t.Helper()

	var out []float32
	dst := make([]float32, chunk)
	for range 1000 {
		n, err := src.ReadSamples(dst)
		out = append(out, dst[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	t.Fatal("source never reached EOF")
	return nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not MP3 data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &chunkedPCM{}, sampleRate: 44100, buf: make([]byte, 8192)}
	if src.SampleRate() != 44100 || src.Channels() != 2 || src.BufSize() != 4096 {
		t.Errorf("metadata = %d Hz, %d channels, buf %d", src.SampleRate(), src.Channels(), src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples_OddByteReads(t *testing.T) {
	t.Parallel()

	in := []int16{1000, -1000, 32767, -32768, 0, 12345}

	for _, step := range []int{1, 3, 5, 64} {
		src := &source{dec: &chunkedPCM{data: pcmBytes(in...), step: step}, sampleRate: 44100}
		got := drain(t, src, 4)

		if len(got) != len(in) {
			t.Fatalf("step %d: read %d samples, want %d", step, len(got), len(in))
		}
		for i, s := range in {
			if utils.Float32ToInt16(got[i]) != s {
				t.Errorf("step %d: sample %d = %v, want %d", step, i, got[i], s)
			}
		}
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := &source{dec: &chunkedPCM{err: io.ErrUnexpectedEOF}, sampleRate: 44100}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want ErrUnexpectedEOF", err)
	}
}
