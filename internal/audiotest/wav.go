// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
)

// WAV16 builds a canonical 44-byte-header PCM WAV file holding interleaved
// 16-bit samples.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	const bitsPerSample = 16

	blockAlign := channels * bitsPerSample / 8
	dataSize := len(samples) * 2

	out := make([]byte, 44+dataSize)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+dataSize))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataSize))

	copy(out[44:], PCM16(samples))

	return out
}

// Ramp returns n samples rising linearly from lo to hi.
func Ramp(n int, lo, hi int16) []int16 {
	out := make([]int16, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	for i := range out {
		out[i] = int16(int(lo) + (int(hi)-int(lo))*i/(n-1))
	}
	return out
}

// Fill returns n copies of v.
func Fill(n int, v int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = v
	}
	return out
}
