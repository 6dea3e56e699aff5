// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const pcm16Scale = 32768.0

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM, rounding to the
// nearest step and clamping out-of-range input. It is the exact inverse of
// Int16ToFloat32.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * pcm16Scale)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// Int16ToFloat32 converts a 16-bit PCM sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / pcm16Scale
}
