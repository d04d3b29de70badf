// SPDX-License-Identifier: EPL-2.0

package envelope

import (
	"context"
	"errors"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/internal/audiotest"
)

func monoMeta(sampleRate float64, d time.Duration) audio.TrackMetadata {
	return audio.TrackMetadata{Channels: 1, SampleRate: sampleRate, Duration: d}
}

func assertAll(t *testing.T, got []float32, from, to int, want, tolerance float32) {
	t.Helper()

	for i := from; i < to; i++ {
		if math.Abs(float64(got[i]-want)) > float64(tolerance) {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

// untouchable fails the test when the extractor pulls from it.
type untouchable struct {
	*audiotest.BlockReader
	t *testing.T
}

func (u untouchable) NextBlock() ([]byte, error) {
	u.t.Error("NextBlock() called")
	return nil, errors.New("unexpected read")
}

func (u untouchable) Metadata() audio.TrackMetadata {
	u.t.Error("Metadata() called")
	return u.BlockReader.Metadata()
}

func TestExtract_InvalidCount(t *testing.T) {
	t.Parallel()

	for _, count := range []int{0, -1, -100} {
		r := untouchable{audiotest.NewBlockReader(monoMeta(8000, time.Second), nil, 1), t}
		if _, err := (Extractor{}).Extract(r, count); !errors.Is(err, audio.ErrInvalidInput) {
			t.Errorf("Extract(count=%d) error = %v, want ErrInvalidInput", count, err)
		}
		if _, err := (Extractor{}).Analyze(r, count, 8); !errors.Is(err, audio.ErrInvalidInput) {
			t.Errorf("Analyze(count=%d) error = %v, want ErrInvalidInput", count, err)
		}
		if _, err := (Extractor{}).Downsample(r, 1000, count); !errors.Is(err, audio.ErrInvalidInput) {
			t.Errorf("Downsample(count=%d) error = %v, want ErrInvalidInput", count, err)
		}
	}
}

// A header can claim far more audio than the stream carries. Memory must
// follow what is actually read.
func TestAnalyze_OverstatedLengthStaysBounded(t *testing.T) {
	meta := audio.TrackMetadata{Channels: 2, SampleRate: 48000, Duration: time.Hour}
	samples := make([]int16, 1024)
	for i := range samples {
		samples[i] = 32767
	}
	r := audiotest.NewBlockReader(meta, samples, 256)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	a, err := Extractor{}.Analyze(r, 1, 8)
	if err != nil {
		t.Fatal(err)
	}

	runtime.ReadMemStats(&after)

	const limit = 4 << 20
	if allocated := after.TotalAlloc - before.TotalAlloc; allocated > limit {
		t.Errorf("Analyze allocated %d bytes, want at most %d", allocated, limit)
	}
	if len(a.Samples) != 1 {
		t.Fatalf("len(Samples) = %d, want 1", len(a.Samples))
	}
	// 1024 loud samples in a window sized for an hour are practically silence
	if a.Samples[0] < 0.99 {
		t.Errorf("Samples[0] = %v, want about 1", a.Samples[0])
	}
	if len(a.Frames) != 0 {
		t.Errorf("len(Frames) = %d, want 0", len(a.Frames))
	}
}

func TestExtract_OddTrailingByte(t *testing.T) {
	t.Parallel()

	pcm := audiotest.PCM16([]int16{32767, 32767, 32767})
	r := &audiotest.BlockReader{
		Meta:   monoMeta(4, time.Second),
		Blocks: [][]byte{pcm, {0xff}},
	}

	got, err := Extractor{}.Extract(r, 2)
	if err != nil {
		t.Fatal(err)
	}
	// the stray byte becomes a fourth sample, 0x00ff
	want := float32((20 * math.Log10(255/maxAmplitude) / DefaultNoiseFloor) / 2)
	if got[0] != 0 || math.Abs(float64(got[1]-want)) > 1e-5 {
		t.Errorf("Extract() = %v, want [0 %v]", got, want)
	}
}

func TestExtract_InvalidNoiseFloor(t *testing.T) {
	t.Parallel()

	for _, floor := range []float64{10, math.NaN(), math.Inf(-1)} {
		r := audiotest.NewBlockReader(monoMeta(8000, time.Second), nil, 1)
		if _, err := (Extractor{NoiseFloor: floor}).Extract(r, 10); !errors.Is(err, audio.ErrInvalidInput) {
			t.Errorf("noise floor %v: error = %v, want ErrInvalidInput", floor, err)
		}
	}
}

func TestExtract_FullScaleAndSilence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int16
		want  float32
	}{
		{"full scale", 32767, 0},
		{"negative full scale", -32768, 0},
		{"silence", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := audiotest.NewBlockReader(monoMeta(44100, time.Second), audiotest.Fill(44100, tt.value), 4096)
			got, err := Extractor{}.Extract(r, 100)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if len(got) != 100 {
				t.Fatalf("len = %d, want 100", len(got))
			}
			assertAll(t, got, 0, 100, tt.want, 1e-6)
		})
	}
}

func TestExtract_KnownLevel(t *testing.T) {
	t.Parallel()

	// 16384 is -6.02 dB
	r := audiotest.NewBlockReader(monoMeta(8000, time.Second), audiotest.Fill(8000, 16384), 1000)
	got, err := Extractor{}.Extract(r, 8)
	if err != nil {
		t.Fatal(err)
	}
	want := float32(20 * math.Log10(16384.0/32767.0) / DefaultNoiseFloor)
	assertAll(t, got, 0, 8, want, 1e-5)

	r = audiotest.NewBlockReader(monoMeta(8000, time.Second), audiotest.Fill(8000, 16384), 1000)
	got, _ = Extractor{NoiseFloor: -12}.Extract(r, 8)
	want = float32(20 * math.Log10(16384.0/32767.0) / -12)
	assertAll(t, got, 0, 8, want, 1e-5)
}

func TestExtract_PadsShortStream(t *testing.T) {
	t.Parallel()

	// metadata promises a second, the stream stops after half of it
	r := audiotest.NewBlockReader(monoMeta(44100, time.Second), audiotest.Fill(22050, 32767), 1000)
	got, err := Extractor{}.Extract(r, 100)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
	assertAll(t, got, 0, 50, 0, 1e-6)
	assertAll(t, got, 50, 100, 1, 0)
}

func TestExtract_TruncatesLongStream(t *testing.T) {
	t.Parallel()

	// twice the data the metadata announces
	samples := append(audiotest.Fill(8000, 32767), audiotest.Fill(8000, 0)...)
	r := audiotest.NewBlockReader(monoMeta(8000, time.Second), samples, 512)

	got, err := Extractor{}.Extract(r, 10)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	assertAll(t, got, 0, 10, 0, 1e-6)
	if r.Status() != audio.StatusCompleted {
		t.Errorf("stream was not drained: status %v", r.Status())
	}
}

func TestExtract_LengthAndRangeInvariants(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(30000 * math.Sin(float64(i)*0.013) * math.Cos(float64(i)*0.0007))
	}

	for _, count := range []int{1, 7, 100, 333, 19999, 20000, 50000} {
		for _, block := range []int{1, 37, 4096} {
			r := audiotest.NewBlockReader(monoMeta(20000, time.Second), samples, block)
			got, err := Extractor{}.Extract(r, count)
			if err != nil {
				t.Fatalf("count %d block %d: %v", count, block, err)
			}
			if len(got) != count {
				t.Fatalf("count %d block %d: len = %d", count, block, len(got))
			}
			for i, v := range got {
				if !(v >= 0 && v <= 1) {
					t.Fatalf("count %d block %d: sample %d = %v out of [0,1]", count, block, i, v)
				}
			}
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	t.Parallel()

	samples := audiotest.Ramp(30000, -32768, 32767)
	extract := func(block int) []float32 {
		r := audiotest.NewBlockReader(monoMeta(10000, 3*time.Second), samples, block)
		got, err := Extractor{}.Extract(r, 256)
		if err != nil {
			t.Fatal(err)
		}
		return got
	}

	first := extract(1024)
	for _, block := range []int{1024, 1, 999, 30000} {
		again := extract(block)
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("block %d: sample %d = %v, first run %v", block, i, again[i], first[i])
			}
		}
	}
}

func TestExtract_ReaderFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("demux error")
	tests := []struct {
		name   string
		final  audio.Status
		err    error
		wantIs error
	}{
		{"failed", audio.StatusFailed, boom, boom},
		{"cancelled", audio.StatusCancelled, context.Canceled, context.Canceled},
		{"unknown", audio.StatusUnknown, nil, audio.ErrReaderFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := audiotest.NewBlockReader(monoMeta(8000, time.Second), audiotest.Fill(4000, 100), 512)
			r.Final = tt.final
			r.FinalErr = tt.err

			got, err := Extractor{}.Extract(r, 10)
			if got != nil {
				t.Errorf("partial output returned: %v", got)
			}
			if !errors.Is(err, audio.ErrReaderFailure) || !errors.Is(err, tt.wantIs) {
				t.Fatalf("Extract() error = %v", err)
			}

			var re *audio.ReaderError
			if !errors.As(err, &re) {
				t.Fatalf("error %T is not a *audio.ReaderError", err)
			}
			if tt.final != audio.StatusUnknown && re.Status != tt.final {
				t.Errorf("status = %v, want %v", re.Status, tt.final)
			}
		})
	}
}

func TestExtract_WithStreamReader(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(44100, 2, 44100, 1)
	r, err := audio.NewStreamReader(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, err := Extractor{}.Extract(r, 100)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	assertAll(t, got, 0, 100, 0, 1e-6)
}

func TestExtract_CancelledStreamReader(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, _ := audio.NewStreamReader(ctx, audiotest.NewSilentSource(8000, 1, 8000))
	_, err := Extractor{}.Extract(r, 10)

	var re *audio.ReaderError
	if !errors.As(err, &re) || re.Status != audio.StatusCancelled {
		t.Fatalf("Extract() error = %v, want cancelled ReaderError", err)
	}
}

func TestAnalyze_Bands(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 3*4096+100)
	for i := range samples {
		samples[i] = int16(20000 * math.Sin(2*math.Pi*1000*float64(i)/44100))
	}
	meta := monoMeta(44100, time.Duration(len(samples))*time.Second/44100)

	a, err := Extractor{}.Analyze(audiotest.NewBlockReader(meta, samples, 1500), 50, 16)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(a.Samples) != 50 {
		t.Errorf("len(Samples) = %d, want 50", len(a.Samples))
	}
	if len(a.Frames) != 3 {
		t.Fatalf("len(Frames) = %d, want 3", len(a.Frames))
	}
	for _, f := range a.Frames {
		if len(f.BandMagnitudes) != 16 || f.SampleRate != 44100 {
			t.Errorf("frame: %d bands at %v Hz", len(f.BandMagnitudes), f.SampleRate)
		}
	}

	a, err = Extractor{}.Analyze(audiotest.NewBlockReader(meta, samples, 1500), 50, 0)
	if err != nil {
		t.Fatalf("Analyze(bands=0) error = %v", err)
	}
	if a.Frames != nil {
		t.Errorf("Analyze(bands=0) returned %d frames", len(a.Frames))
	}
}

func TestDownsample_ExplicitTotal(t *testing.T) {
	t.Parallel()

	// no duration in the metadata, so the caller supplies the total
	samples := append(audiotest.Fill(500, 32767), audiotest.Fill(500, 0)...)
	r := audiotest.NewBlockReader(audio.TrackMetadata{Channels: 1, SampleRate: 1000}, samples, 64)

	got, err := Extractor{}.Downsample(r, 1000, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{0, 0, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func BenchmarkExtract(b *testing.B) {
	samples := audiotest.Ramp(44100*10, -32768, 32767)
	meta := monoMeta(44100, 10*time.Second)

	b.ReportAllocs()

	for b.Loop() {
		r := audiotest.NewBlockReader(meta, samples, 4096)
		if _, err := (Extractor{}).Extract(r, 1000); err != nil {
			b.Fatal(err)
		}
	}
}
