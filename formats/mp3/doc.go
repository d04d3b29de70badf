// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams with
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always yields 16-bit stereo; mono files come out with both
// channels equal. The source implements audio.Durationer: when the input
// is an io.Seeker the decoder scans the frames up front and the duration is
// exact, otherwise it reports 0 and the envelope extractor falls back to a
// stride of one sample.
package mp3
