// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding side of the waveform pipeline.
//
// It contains:
//   - Source, the pull interface every decoder implements
//   - Registry, which maps file extensions to decoders
//   - ChannelPicker, which extracts one channel of an interleaved source
//   - StreamReader, which turns a Source into blocks of 16-bit PCM
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. Sources that know
// their length up front also implement Durationer.
//
// # PCM Blocks
//
// The envelope extractor consumes signed 16-bit little-endian PCM, so a
// Source is wrapped in a StreamReader:
//
//	r, err := audio.NewStreamReader(ctx, src)
//	for {
//	    block, err := r.NextBlock()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err // r.Status() tells failed from cancelled
//	    }
//	    // consume block
//	}
//
// # Errors
//
// ReaderError carries the final Status of a reader that stopped early and
// matches ErrReaderFailure with errors.Is.
package audio
