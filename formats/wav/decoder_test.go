// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audtrack/utils"
)

func TestDecoder_StreamsSamples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(encode(t, 22050, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	var got []float32
	buf := make([]float32, 2)
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(samples) {
		t.Fatalf("read %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if got[i] != utils.Int16ToFloat32(s) {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], utils.Int16ToFloat32(s))
		}
		if utils.Float32ToInt16(got[i]) != s {
			t.Errorf("sample[%d] does not round trip to %d", i, s)
		}
	}
}

func TestDecoder_ExtraChunks(t *testing.T) {
	t.Parallel()

	samples := []int16{10, -20, 30, -40, 50, -60}
	data := withJunkChunk(encode(t, 16000, samples))
	binary.LittleEndian.PutUint16(data[22:24], 2)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 16000 || src.Channels() != 2 {
		t.Fatalf("Decode() = %d Hz, %d channels, want 16000 Hz, 2 channels", src.SampleRate(), src.Channels())
	}

	var got []int16
	buf := make([]float32, 4)
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			got = append(got, utils.Float32ToInt16(v))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(samples) {
		t.Fatalf("read %v, want %v", got, samples)
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], samples[i])
		}
	}
}

func TestDecoder_Stereo(t *testing.T) {
	t.Parallel()

	data := encode(t, 8000, []int16{100, -100, 200, -200})
	binary.LittleEndian.PutUint16(data[22:24], 2)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	noChannels := encode(t, 8000, []int16{1})
	binary.LittleEndian.PutUint16(noChannels[22:24], 0)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncatedHeader},
		{"short", []byte("RIFF"), ErrTruncatedHeader},
		{"not wav", bytes.Repeat([]byte{'x'}, HeaderSize), ErrNotWavFile},
		{"no channels", noChannels, ErrUnsupportedWavLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}
