// SPDX-License-Identifier: EPL-2.0

package track_test

import (
	"errors"
	"fmt"

	"github.com/ik5/audtrack/match"
	"github.com/ik5/audtrack/track"
)

func Example() {
	t := track.New()
	_ = t.Write(0, []int16{10, 20, 30, 40, 50, 60, 70, 80, 90, 100})

	if err := t.DeleteRange(3, 4); err != nil {
		fmt.Println("delete:", err)
		return
	}

	fmt.Println(t.Samples())
	// Output: [10 20 30 80 90 100]
}

func ExampleTrack_Insert() {
	src := track.New()
	_ = src.Write(0, []int16{100, 101, 102, 103, 104})

	dst := track.New()
	_ = dst.Write(0, []int16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	_ = dst.Insert(src, 5, 1, 3)

	fmt.Println(dst.Samples())
	fmt.Println(dst)
	// Output:
	// [1 2 3 4 5 101 102 103 6 7 8 9 10]
	// track(len=13) [1 2 3 4 5](start: 0, len: 5) [101 102 103](start: 5, len: 3) [6 7 8 9 10](start: 8, len: 5)
}

func ExampleTrack_Identify() {
	target := track.New()
	_ = target.Write(0, []int16{1, 2, 3, 10, 20, 30, 4, 5, 6, 10, 20, 30, 7, 8, 9})

	ad := track.New()
	_ = ad.Write(0, []int16{10, 20, 30})

	fmt.Println(match.Format(target.Identify(ad)))
	// Output:
	// 3,5
	// 9,11
}

func ExampleTrack_InsertShared() {
	src := track.New()
	_ = src.Write(0, []int16{1, 2, 3, 4})

	dst := track.New()
	_ = dst.InsertShared(src, 0, 1, 2)

	err := src.DeleteRange(0, 4)
	fmt.Println(errors.Is(err, track.ErrRangeReferenced))
	// Output: true
}
