// SPDX-License-Identifier: EPL-2.0

// Package pcmbuf is an append/discard arena for 16-bit little-endian PCM.
//
// Writes copy the caller's bytes, so reader-owned blocks may be reused as
// soon as Write returns. Discarded bytes are reclaimed by sliding the
// unread tail to the front once the consumed prefix outgrows it, which
// keeps the backing array proportional to the unread data.
package pcmbuf

import "encoding/binary"

// SampleSize is the width of one sample in bytes.
const SampleSize = 2

type Buffer struct {
	buf []byte
	off int
}

// New returns a buffer with room for capacity bytes.
func New(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Len is the number of unread bytes.
func (b *Buffer) Len() int { return len(b.buf) - b.off }

// Samples is the number of complete unread samples.
func (b *Buffer) Samples() int { return b.Len() / SampleSize }

// Bytes returns the unread bytes. The slice is valid until the next Write,
// Pad or Discard.
func (b *Buffer) Bytes() []byte { return b.buf[b.off:] }

// Sample returns unread sample i.
func (b *Buffer) Sample(i int) int16 {
	return int16(binary.LittleEndian.Uint16(b.buf[b.off+i*SampleSize:]))
}

// Write appends a copy of p.
func (b *Buffer) Write(p []byte) {
	b.compact()
	b.buf = append(b.buf, p...)
}

// Pad completes a trailing partial sample, if any, and appends n zero
// samples.
func (b *Buffer) Pad(n int) {
	partial := (SampleSize - b.Len()%SampleSize) % SampleSize
	if n <= 0 && partial == 0 {
		return
	}
	b.compact()
	b.buf = append(b.buf, make([]byte, max(0, n)*SampleSize+partial)...)
}

// Discard drops the first n unread bytes.
func (b *Buffer) Discard(n int) {
	if n >= b.Len() {
		b.Reset()
		return
	}
	b.off += n
}

// Reset empties the buffer but keeps its storage.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.off = 0
}

func (b *Buffer) compact() {
	if b.off == 0 || b.off < b.Len() {
		return
	}
	n := copy(b.buf, b.buf[b.off:])
	b.buf = b.buf[:n]
	b.off = 0
}
