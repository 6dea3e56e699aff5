// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func encode(t *testing.T, rate int, samples []int16) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, rate, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	return buf.Bytes()
}

// withJunkChunk moves the data chunk behind a JUNK chunk, which the fixed
// 44-byte reader does not accept.
func withJunkChunk(canonical []byte) []byte {
	junk := []byte("JUNK\x04\x00\x00\x00abcd")

	out := slices.Clone(canonical[:36])
	out = append(out, junk...)
	out = append(out, canonical[36:]...)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))
	return out
}

func TestReadPCM16_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, samples := range [][]int16{nil, {0}, {-32768, 32767, 1, -1}} {
		got, err := ReadPCM16(bytes.NewReader(encode(t, 8000, samples)))
		if err != nil {
			t.Fatalf("ReadPCM16() error = %v", err)
		}
		if len(got) != len(samples) || (len(samples) > 0 && !slices.Equal(got, samples)) {
			t.Errorf("ReadPCM16() = %v, want %v", got, samples)
		}
	}
}

func TestReadPCM16_DropsOddTrailingByte(t *testing.T) {
	t.Parallel()

	data := append(encode(t, 8000, []int16{5, 6}), 0x7f)
	got, err := ReadPCM16(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v", err)
	}
	if !slices.Equal(got, []int16{5, 6}) {
		t.Errorf("ReadPCM16() = %v, want [5 6]", got)
	}
}

func TestReadPCM16_Errors(t *testing.T) {
	t.Parallel()

	stereo := encode(t, 8000, []int16{1, 2})
	binary.LittleEndian.PutUint16(stereo[22:24], 2)

	eightBit := encode(t, 8000, []int16{1})
	binary.LittleEndian.PutUint16(eightBit[34:36], 8)

	notRiff := encode(t, 8000, []int16{1})
	copy(notRiff[0:4], "RIFX")

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncatedHeader},
		{"short", make([]byte, 43), ErrTruncatedHeader},
		{"not riff", notRiff, ErrNotWavFile},
		{"stereo", stereo, ErrOnlyMonoSupported},
		{"8 bit", eightBit, ErrOnlyPCM16bitSupported},
		{"extra chunk", withJunkChunk(encode(t, 8000, []int16{1})), ErrUnsupportedWavChunks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadPCM16(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadPCM16() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_FallsBackForExtraChunks(t *testing.T) {
	t.Parallel()

	samples := []int16{10, -20, 30, -40}
	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, withJunkChunk(encode(t, 8000, samples)), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !slices.Equal(got, samples) {
		t.Errorf("Load() = %v, want %v", got, samples)
	}
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	samples := []int16{1, 2, 3, -4}
	path := filepath.Join(dir, "out.wav")

	if err := Save(path, 8000, samples); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !slices.Equal(got, samples) {
		t.Errorf("Load() = %v, want %v", got, samples)
	}

	if _, err := Load(filepath.Join(dir, "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}
