// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

)

// ReadPCM16 reads a canonical mono 16-bit WAV stream. The 44-byte header is
// validated and stripped and everything after it is returned as samples; a
// trailing odd byte is dropped.
func ReadPCM16(r io.Reader) ([]int16, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	return decodePCM16(data)
}

func decodePCM16(data []byte) ([]int16, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.channels != 1 {
		return nil, ErrOnlyMonoSupported
	}

	payload := data[HeaderSize:]
	samples := make([]int16, len(payload)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(payload[2*i:]))
	}

	return samples, nil
}

// decodeChunked handles RIFF files whose chunks are not in the canonical
// 44-byte order, such as files carrying LIST or fact chunks before data.
func decodeChunked(rs io.ReadSeeker) ([]int16, error) {
	dec, err := openChunked(rs)
	if err != nil {
		return nil, err
	}
	if dec.NumChans != 1 {
		return nil, ErrOnlyMonoSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav chunks: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	return samples, nil
}

// Load reads the mono 16-bit WAV file at path.
func Load(path string) ([]int16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples, err := decodePCM16(data)
	if errors.Is(err, ErrUnsupportedWavChunks) {
		return decodeChunked(bytes.NewReader(data))
	}

	return samples, err
}

// Save writes samples to path as a mono 16-bit WAV at sampleRate, replacing
// any existing file.
func Save(path string, sampleRate int, samples []int16) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := WriteWAV16(w, sampleRate, samples); err != nil {
		return err
	}

	return w.Flush()
}
