// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrTruncatedHeader       = errors.New("WAV header shorter than 44 bytes")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrOnlyMonoSupported     = errors.New("only mono WAV supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
)
