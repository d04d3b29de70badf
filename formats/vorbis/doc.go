// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes straight to float32, so samples reach the caller without a
// bit-depth conversion. Any channel count is supported; reads are trimmed
// to whole frames.
//
// When the input can seek, oggvorbis reads the last granule position and
// the source reports an exact duration through audio.Durationer.
// Otherwise the duration is 0.
//
// Errors from the Ogg layer are returned wrapped. ErrInvalidStream covers
// headers that decode but describe no audio.
package vorbis
