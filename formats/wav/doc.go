// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into an audio.Source.
//
// Parsing is done by github.com/go-audio/wav, so files with extra chunks
// (LIST, cue, smpl) and odd-sized chunk padding are handled. Integer PCM at
// 8, 16, 24 and 32 bits is accepted; IEEE float and compressed WAV are
// rejected with ErrUnsupportedEncoding.
//
//	f, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	buf := make([]float32, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// The returned source also implements audio.Durationer with the duration
// stored in the header, which the envelope extractor uses to size its
// downsampling stride.
//
// go-audio needs an io.ReadSeeker. Decode buffers other readers in memory.
package wav
