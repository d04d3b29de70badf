// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a sample in [-1,1] to signed 16-bit PCM.
// Values outside the range are clamped. The scale factor is 32768 so that a
// value produced by IntToFloat32(v, 16) converts back to v exactly.
func Float32ToInt16(x float32) int16 {
	v := x * 32768.0
	if v >= 32767 {
		return 32767
	}
	if v <= -32768 {
		return -32768
	}

	return int16(v)
}

// IntToFloat32 scales a signed integer sample of the given bit depth into
// [-1,1).
func IntToFloat32(v int, bitDepth int) float32 {
	if bitDepth < 1 || bitDepth > 32 {
		return 0
	}

	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}
