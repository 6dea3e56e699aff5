// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// maxEmptyReads is how many (0, nil) results in a row readAtLeast accepts
// before giving up with io.ErrNoProgress.
const maxEmptyReads = 100

// readAtLeast reads from src into buf until at least atLeast samples have been
// read. Any error from src, io.EOF included, is returned together with the
// samples read so far.
func readAtLeast(src Source, buf []float32, atLeast int) (int, error) {
	n, empty := 0, 0
	for n < atLeast {
		nn, err := src.ReadSamples(buf[n:])
		n += nn
		if err != nil {
			return n, err
		}
		if nn > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxEmptyReads {
			return n, io.ErrNoProgress
		}
	}
	return n, nil
}
