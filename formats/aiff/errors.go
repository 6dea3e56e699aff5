// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF supported")
	ErrUnsupportedAiffLayout = errors.New("AIFF has no channels")
)
