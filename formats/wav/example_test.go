// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audtrack/formats/wav"
)

func ExampleWriteWAV16() {
	buf := new(bytes.Buffer)
	if err := wav.WriteWAV16(buf, 8000, []int16{1, 2, 3}); err != nil {
		fmt.Println(err)
		return
	}

	samples, err := wav.ReadPCM16(buf)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(samples)
	// Output: [1 2 3]
}
