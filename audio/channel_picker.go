// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// ChannelPicker is a mono Source carrying a single channel of an
// interleaved source.
type ChannelPicker struct {
	src     Source
	channel int
	tmp     []float32
}

func NewChannelPicker(src Source, channel int) (*ChannelPicker, error) {
	if channel < 0 || channel >= src.Channels() {
		return nil, fmt.Errorf("%w: channel %d of %d", ErrInvalidInput, channel, src.Channels())
	}

	return &ChannelPicker{
		src:     src,
		channel: channel,
		tmp:     make([]float32, 4096),
	}, nil
}

func (p *ChannelPicker) SampleRate() int { return p.src.SampleRate() }
func (p *ChannelPicker) Channels() int   { return 1 }
func (p *ChannelPicker) BufSize() int    { return p.src.BufSize() }

func (p *ChannelPicker) Duration() time.Duration {
	if d, ok := p.src.(Durationer); ok {
		return d.Duration()
	}
	return 0
}

func (p *ChannelPicker) Close() error {
	err := p.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (p *ChannelPicker) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := p.src.Channels()
	if channels == 1 {
		return p.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels
	if cap(p.tmp) < samplesNeeded {
		p.tmp = make([]float32, samplesNeeded)
	}
	p.tmp = p.tmp[:samplesNeeded]

	n, err := p.src.ReadSamples(p.tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	for f := range frames {
		dst[f] = p.tmp[f*channels+p.channel]
	}

	return frames, err
}
