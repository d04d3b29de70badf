// SPDX-License-Identifier: EPL-2.0

// Package audwave extracts amplitude envelopes from audio files and renders
// them as waveform images.
//
// # Supported Formats
//
// DefaultRegistry maps file extensions to the bundled decoders:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 8/16/24/32-bit) via formats/aiff
//
// # Quick Start
//
// Samples returns one value per requested slot, 0 for full scale and 1 for
// the noise floor (-50 dB by default):
//
//	samples, err := audwave.Samples(ctx, "voice.mp3", 400)
//
// WaveformImage extracts exactly as many samples as the image has pixel
// columns and draws them:
//
//	cfg, _ := waveform.NewConfiguration(waveform.WithSize(400, 80), waveform.WithScale(2))
//	img, err := audwave.WaveformImage(ctx, "voice.mp3", cfg, waveform.Linear{}, waveform.Middle)
//
// # Pipeline
//
// Each call opens the file, wraps the decoded audio.Source in an
// audio.StreamReader and runs an envelope.Extractor over it. The pieces can
// be used directly for other sources:
//
//	r, _ := audio.NewStreamReader(ctx, src)
//	samples, err := envelope.Extractor{}.Extract(r, 400)
//
// Errors are the sentinels of the audio package: audio.ErrInvalidInput for
// a bad count, audio.ErrNoAudioTrack when nothing can be decoded and
// *audio.ReaderError when decoding stops early.
package audwave
