// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// MaxPCM16 is the full-scale value a normalized amplitude of 1.0 maps to.
const MaxPCM16 = 32767.0

// Float64ToInt16 quantizes a normalized amplitude to a 16-bit PCM sample.
// Values outside [-1, 1] are clamped, so the result never wraps around.
func Float64ToInt16(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	} else if math.IsNaN(x) {
		return 0
	}

	return int16(math.Round(x * MaxPCM16))
}

// Int16ToFloat64 maps a 16-bit PCM sample back to a normalized amplitude.
func Int16ToFloat64(s int16) float64 {
	return float64(s) / MaxPCM16
}
