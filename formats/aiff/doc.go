// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// AIFF stores big-endian signed PCM; 8, 16, 24 and 32-bit samples are
// supported and scaled to [-1.0, 1.0). Compressed AIFF-C is not.
//
//	f, _ := os.Open("loop.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//
// The duration comes from the sample frame count in the COMM chunk and is
// exposed through audio.Durationer.
//
// Errors:
//   - ErrNotAiffFile: the input is not a FORM/AIFF container
//   - ErrUnsupportedBitDepth: sample size other than 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: header without channels or sample rate
package aiff
