// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/envelope"
	"github.com/ik5/audwave/formats/aiff"
	"github.com/ik5/audwave/formats/mp3"
	"github.com/ik5/audwave/formats/vorbis"
	"github.com/ik5/audwave/formats/wav"
	"github.com/ik5/audwave/spectrum"
	"github.com/ik5/audwave/waveform"
)

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

type options struct {
	registry   *audio.Registry
	noiseFloor float64
}

type Option func(*options)

// WithNoiseFloor sets the level in dB treated as silence. It must be
// negative.
func WithNoiseFloor(db float64) Option {
	return func(o *options) { o.noiseFloor = db }
}

// WithRegistry replaces DefaultRegistry for decoder lookup.
func WithRegistry(r *audio.Registry) Option {
	return func(o *options) { o.registry = r }
}

func newOptions(opts []Option) options {
	o := options{noiseFloor: envelope.DefaultNoiseFloor}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	return o
}

func (o options) extractor() envelope.Extractor {
	return envelope.Extractor{NoiseFloor: o.noiseFloor}
}

// fileSource closes the file along with the decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Duration() time.Duration {
	if d, ok := s.Source.(audio.Durationer); ok {
		return d.Duration()
	}
	return 0
}

func (s *fileSource) Close() error {
	srcErr := s.Source.Close()
	fileErr := s.f.Close()
	if srcErr != nil {
		return fmt.Errorf("%w", srcErr)
	}
	if fileErr != nil {
		return fmt.Errorf("%w", fileErr)
	}
	return nil
}

func openSource(path string, o options) (audio.Source, error) {
	dec, ok := o.registry.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %q", audio.ErrNoAudioTrack, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", audio.ErrNoAudioTrack, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

func streamReader(ctx context.Context, src audio.Source) (*audio.StreamReader, error) {
	r, err := audio.NewStreamReader(ctx, src)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("%w", err)
	}
	return r, nil
}

// Open decodes the file at path, picking the decoder by extension. An
// unknown extension or an undecodable file yields audio.ErrNoAudioTrack.
func Open(ctx context.Context, path string, opts ...Option) (*audio.StreamReader, error) {
	src, err := openSource(path, newOptions(opts))
	if err != nil {
		return nil, err
	}
	return streamReader(ctx, src)
}

func checkCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: sample count %d", audio.ErrInvalidInput, count)
	}
	return nil
}

// Samples returns count envelope values for the file at path, each in [0,1]
// with 0 as full scale and 1 as the noise floor.
func Samples(ctx context.Context, path string, count int, opts ...Option) ([]float32, error) {
	a, err := Analyze(ctx, path, count, 0, opts...)
	if err != nil {
		return nil, err
	}
	return a.Samples, nil
}

// Analyze is Samples plus, when bands > 0, the banded spectrum of every
// chunk of spectrum.DefaultSize samples.
func Analyze(ctx context.Context, path string, count, bands int, opts ...Option) (*envelope.Analysis, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	src, err := openSource(path, o)
	if err != nil {
		return nil, err
	}

	r, err := streamReader(ctx, src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return o.extractor().Analyze(r, count, bands)
}

// Spectrum returns the banded spectrum of every chunk of
// spectrum.DefaultSize samples in the file at path, without building an
// envelope. A trailing partial chunk is dropped.
func Spectrum(ctx context.Context, path string, bands int, opts ...Option) ([]spectrum.Frame, error) {
	if bands <= 0 {
		return nil, fmt.Errorf("%w: band count %d", audio.ErrInvalidInput, bands)
	}

	r, err := Open(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	bander, err := spectrum.NewBander(spectrum.DefaultSize, bands, r.Metadata().SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrExtraction, err)
	}

	var frames []spectrum.Frame
	for {
		block, err := r.NextBlock()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			status := r.Status()
			if status == audio.StatusReading || status == audio.StatusCompleted {
				status = audio.StatusUnknown
			}
			return nil, &audio.ReaderError{Status: status, Err: err}
		}
		frames = append(frames, bander.Write(block)...)
	}

	if status := r.Status(); status != audio.StatusCompleted {
		return nil, &audio.ReaderError{Status: status, Err: r.Err()}
	}
	return frames, nil
}

// StereoSamples returns [left..., right...], count values per channel.
// Mono files repeat their single channel. Channels past the second are
// ignored.
func StereoSamples(ctx context.Context, path string, count int, opts ...Option) ([]float32, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	out := make([]float32, 0, 2*count)

	for ch := range 2 {
		src, err := openSource(path, o)
		if err != nil {
			return nil, err
		}

		if src.Channels() == 1 {
			left, err := extractChannel(ctx, src, count, o)
			if err != nil {
				return nil, err
			}
			return append(append(out, left...), left...), nil
		}

		picked, err := audio.NewChannelPicker(src, ch)
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("%w", err)
		}

		samples, err := extractChannel(ctx, picked, count, o)
		if err != nil {
			return nil, err
		}
		out = append(out, samples...)
	}

	return out, nil
}

func extractChannel(ctx context.Context, src audio.Source, count int, o options) ([]float32, error) {
	r, err := streamReader(ctx, src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return o.extractor().Extract(r, count)
}

// WaveformImage extracts as many samples as renderer draws for cfg and
// renders them. waveform.Stereo reads the two channels separately.
func WaveformImage(ctx context.Context, path string, cfg waveform.Configuration, renderer waveform.Renderer, pos waveform.Position, opts ...Option) (*image.RGBA, error) {
	if renderer == nil {
		renderer = waveform.Linear{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		samples []float32
		err     error
	)
	if _, stereo := renderer.(waveform.Stereo); stereo {
		samples, err = StereoSamples(ctx, path, cfg.SamplesNeeded(), opts...)
	} else {
		samples, err = Samples(ctx, path, waveform.SamplesFor(renderer, cfg), opts...)
	}
	if err != nil {
		return nil, err
	}

	return waveform.Image(samples, cfg, renderer, pos)
}
