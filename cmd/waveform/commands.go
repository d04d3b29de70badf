// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ik5/audwave"
	"github.com/ik5/audwave/internal/cli"
	"github.com/ik5/audwave/spectrum"
	"github.com/ik5/audwave/waveform"
)

type ImageCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Audio file to draw."`
	Output string `short:"o" type:"path" help:"PNG file to write, <input>.png when empty."`

	Renderer string `short:"r" help:"Shape: linear, circular, ring or stereo." enum:"linear,circular,ring,stereo" default:"linear"`

	cli.CanvasFlags  `embed:""`
	cli.StyleFlags   `embed:""`
	cli.DampingFlags `embed:""`
}

func (c *ImageCmd) configuration() (waveform.Configuration, error) {
	return cli.Configure(waveform.NewConfiguration, c.CanvasFlags, c.StyleFlags, c.DampingFlags)
}

func (c *ImageCmd) output() string {
	if c.Output != "" {
		return c.Output
	}
	return strings.TrimSuffix(c.Input, filepath.Ext(c.Input)) + ".png"
}

func (c *ImageCmd) Run(g *Globals) error {
	cfg, err := c.configuration()
	if err != nil {
		return err
	}
	renderer, err := cli.ParseRenderer(c.Renderer, c.Hollowness)
	if err != nil {
		return err
	}
	pos, err := cli.ParsePosition(c.Position)
	if err != nil {
		return err
	}

	img, err := audwave.WaveformImage(g.ctx, c.Input, cfg, renderer, pos, g.options()...)
	if err != nil {
		return err
	}

	out := c.output()
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	b := img.Bounds()
	cli.Report(g.stdout, "input", c.Input)
	cli.Report(g.stdout, "output", out)
	cli.Report(g.stdout, "pixels", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()))
	cli.Report(g.stdout, "samples", waveform.SamplesFor(renderer, cfg))
	return nil
}

type SamplesCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Audio file to read."`
	Count  int    `short:"n" help:"Number of samples per channel." default:"100"`
	Stereo bool   `help:"Extract left and right separately, left first."`
	JSON   bool   `help:"Print a JSON array instead of one value per line."`
}

func (c *SamplesCmd) Run(g *Globals) error {
	var (
		samples []float32
		err     error
	)
	if c.Stereo {
		samples, err = audwave.StereoSamples(g.ctx, c.Input, c.Count, g.options()...)
	} else {
		samples, err = audwave.Samples(g.ctx, c.Input, c.Count, g.options()...)
	}
	if err != nil {
		return err
	}

	if c.JSON {
		return json.NewEncoder(g.stdout).Encode(samples)
	}

	var sb strings.Builder
	for _, s := range samples {
		sb.WriteString(strconv.FormatFloat(float64(s), 'f', 4, 32))
		sb.WriteByte('\n')
	}
	_, err = fmt.Fprint(g.stdout, sb.String())
	return err
}

type SpectrumCmd struct {
	Input string `arg:"" type:"existingfile" help:"Audio file to analyze."`
	Bands int    `short:"b" help:"Number of linear frequency bands." default:"16"`
	JSON  bool   `help:"Print the frames as JSON."`
}

type spectrumFrame struct {
	Time        float64   `json:"time"`
	Frequencies []float32 `json:"frequencies"`
	Decibels    []float32 `json:"decibels"`
}

func (c *SpectrumCmd) Run(g *Globals) error {
	result, err := audwave.Spectrum(g.ctx, c.Input, c.Bands, g.options()...)
	if err != nil {
		return err
	}

	frames := make([]spectrumFrame, 0, len(result))
	for i, f := range result {
		out := spectrumFrame{
			Time:        float64(i*f.Size) / float64(f.SampleRate),
			Frequencies: f.BandFrequencies,
			Decibels:    make([]float32, len(f.BandMagnitudes)),
		}
		for j, m := range f.BandMagnitudes {
			out.Decibels[j] = spectrum.ToDB(m)
		}
		frames = append(frames, out)
	}

	if c.JSON {
		return json.NewEncoder(g.stdout).Encode(frames)
	}

	for _, f := range frames {
		var sb strings.Builder
		for j, db := range f.Decibels {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(float64(db), 'f', 1, 32))
		}
		cli.Report(g.stdout, strconv.FormatFloat(f.Time, 'f', 3, 64)+"s", sb.String())
	}
	return nil
}

type VersionCmd struct{}

func (VersionCmd) Run() error {
	cli.Banner(os.Stdout, "waveform", version)
	return nil
}
