// SPDX-License-Identifier: EPL-2.0

// Command waveform extracts envelopes and spectra from audio files and
// renders them as PNG waveforms.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/ik5/audwave"
	"github.com/ik5/audwave/internal/cli"
)

var version = "0.1.0"

// Globals are shared by every command.
type Globals struct {
	Config     kong.ConfigFlag `short:"c" type:"path" help:"JSON file with flag defaults."`
	NoiseFloor float64         `help:"Level in dB treated as silence." default:"-50"`

	ctx    context.Context
	stdout io.Writer
}

func (g *Globals) options() []audwave.Option {
	return []audwave.Option{audwave.WithNoiseFloor(g.NoiseFloor)}
}

// CLI defines the command-line interface.
type CLI struct {
	Globals

	Image    ImageCmd    `cmd:"" help:"Render a waveform image."`
	Samples  SamplesCmd  `cmd:"" help:"Print envelope samples."`
	Spectrum SpectrumCmd `cmd:"" help:"Print banded spectrum frames."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cliArgs := &CLI{}
	k := kong.Parse(cliArgs,
		kong.Name("waveform"),
		kong.Description("Audio envelope extraction and waveform rendering"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.DefaultEnvars("WAVEFORM"),
		kong.Configuration(kong.JSON, "/etc/waveform.json", "~/.config/waveform.json"),
		kong.Help(cli.StyledHelpPrinter("Waveform")),
	)

	cliArgs.ctx = ctx
	cliArgs.stdout = os.Stdout

	if err := k.Run(&cliArgs.Globals); err != nil {
		cli.Fail(err)
		os.Exit(1)
	}
}
