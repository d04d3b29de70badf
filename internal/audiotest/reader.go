// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"io"

	"github.com/ik5/audwave/audio"
)

// BlockReader replays fixed PCM blocks and then stops with Final. When
// Final is anything but audio.StatusCompleted, the last NextBlock returns
// FinalErr (or io.ErrUnexpectedEOF when FinalErr is nil).
type BlockReader struct {
	Meta     audio.TrackMetadata
	Blocks   [][]byte
	Final    audio.Status
	FinalErr error

	next   int
	status audio.Status
	err    error
	Closed bool
}

// NewBlockReader splits samples into blocks of blockSize samples.
func NewBlockReader(meta audio.TrackMetadata, samples []int16, blockSize int) *BlockReader {
	pcm := PCM16(samples)

	var blocks [][]byte
	step := blockSize * audio.BytesPerSample
	for start := 0; start < len(pcm); start += step {
		blocks = append(blocks, pcm[start:min(start+step, len(pcm))])
	}

	return &BlockReader{
		Meta:   meta,
		Blocks: blocks,
		Final:  audio.StatusCompleted,
	}
}

func (r *BlockReader) Metadata() audio.TrackMetadata { return r.Meta }
func (r *BlockReader) Err() error                    { return r.err }

func (r *BlockReader) Status() audio.Status {
	if r.status == audio.StatusUnknown {
		return audio.StatusReading
	}
	return r.status
}

func (r *BlockReader) NextBlock() ([]byte, error) {
	if r.status != audio.StatusUnknown {
		if r.status == audio.StatusCompleted {
			return nil, io.EOF
		}
		return nil, r.err
	}

	if r.next < len(r.Blocks) {
		b := r.Blocks[r.next]
		r.next++
		return b, nil
	}

	r.status = r.Final
	if r.Final == audio.StatusCompleted {
		return nil, io.EOF
	}

	r.err = r.FinalErr
	if r.err == nil {
		r.err = io.ErrUnexpectedEOF
	}
	return nil, r.err
}

func (r *BlockReader) Close() error {
	r.Closed = true
	return nil
}

// PCM16 encodes samples as little-endian 16-bit PCM.
func PCM16(samples []int16) []byte {
	out := make([]byte, len(samples)*audio.BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}
