// SPDX-License-Identifier: EPL-2.0

// Package envelope turns a 16-bit PCM stream into a fixed-length amplitude
// envelope.
//
// Each sample is rectified, converted to dB relative to full scale and
// clipped to [NoiseFloor, 0]. Runs of samplesPerPixel samples are then
// averaged into one value, where
//
//	samplesPerPixel = max(1, totalSamples / count)
//
// is fixed before the first block arrives. Finally every value is divided
// by the noise floor, so 0 means full scale and 1 means silence. Renderers
// draw 1 - v.
//
// The result always has exactly count values. Streams shorter than their
// metadata promised are padded with silence; longer ones are truncated.
// The total comes from container metadata and may be an estimate, so
// padding of the last few values is expected for some files.
//
// A reader that ends in any state other than audio.StatusCompleted yields
// an *audio.ReaderError and no envelope.
package envelope
