// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
	"time"
)

func TestNewChannelPicker_InvalidChannel(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 10)
	for _, ch := range []int{-1, 2, 5} {
		if _, err := NewChannelPicker(src, ch); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewChannelPicker(ch=%d) error = %v, want ErrInvalidInput", ch, err)
		}
	}
}

func TestChannelPicker_SelectsChannel(t *testing.T) {
	t.Parallel()

	gen := func(frame, channel int) float32 {
		return float32(channel+1) / 10
	}

	for channel, want := range []float32{0.1, 0.2, 0.3} {
		picker, err := NewChannelPicker(newFakeSource(16000, 3, 50, gen), channel)
		if err != nil {
			t.Fatalf("NewChannelPicker() error = %v", err)
		}

		if picker.Channels() != 1 {
			t.Errorf("Channels() = %d, want 1", picker.Channels())
		}
		if picker.SampleRate() != 16000 {
			t.Errorf("SampleRate() = %d, want 16000", picker.SampleRate())
		}

		buf := make([]float32, 20)
		n, err := picker.ReadSamples(buf)
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n != 20 {
			t.Fatalf("ReadSamples() n = %d, want 20", n)
		}
		for i, v := range buf[:n] {
			if v != want {
				t.Fatalf("channel %d buf[%d] = %v, want %v", channel, i, v, want)
			}
		}
	}
}

func TestChannelPicker_KeepsFrameOrder(t *testing.T) {
	t.Parallel()

	gen := func(frame, channel int) float32 {
		if channel == 1 {
			return -float32(frame)
		}
		return float32(frame)
	}

	picker, err := NewChannelPicker(newFakeSource(8000, 2, 30, gen), 1)
	if err != nil {
		t.Fatalf("NewChannelPicker() error = %v", err)
	}

	var got []float32
	buf := make([]float32, 7)
	for {
		n, err := picker.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != 30 {
		t.Fatalf("read %d frames, want 30", len(got))
	}
	for i, v := range got {
		if v != -float32(i) {
			t.Fatalf("frame %d = %v, want %v", i, v, -float32(i))
		}
	}
}

func TestChannelPicker_MonoPassthrough(t *testing.T) {
	t.Parallel()

	picker, err := NewChannelPicker(newConstantSource(8000, 1, 10, 0.25), 0)
	if err != nil {
		t.Fatalf("NewChannelPicker() error = %v", err)
	}

	buf := make([]float32, 16)
	n, err := picker.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
}

func TestChannelPicker_EmptyBuffer(t *testing.T) {
	t.Parallel()

	picker, _ := NewChannelPicker(newSilentSource(8000, 2, 10), 0)
	n, err := picker.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestChannelPicker_DurationAndClose(t *testing.T) {
	t.Parallel()

	inner := newSilentSource(8000, 2, 10)
	inner.duration = 3 * time.Second

	picker, _ := NewChannelPicker(timedSource{inner}, 1)
	if d := picker.Duration(); d != 3*time.Second {
		t.Errorf("Duration() = %v, want 3s", d)
	}

	plain, _ := NewChannelPicker(newSilentSource(8000, 2, 10), 0)
	if d := plain.Duration(); d != 0 {
		t.Errorf("Duration() without Durationer = %v, want 0", d)
	}

	if err := picker.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !inner.closed {
		t.Error("Close() did not close the wrapped source")
	}
}
