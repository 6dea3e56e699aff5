// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate: the 44-byte header
// followed by samples in little-endian order.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	header := make([]byte, HeaderSize)
	putHeader(header, sampleRate, uint32(len(samples)*2))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// 8 KiB samples per Write call
	const chunkSize = 8192
	buf := make([]byte, 0, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]

		buf = buf[:0]
		for _, s := range chunk {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
	}

	return nil
}
