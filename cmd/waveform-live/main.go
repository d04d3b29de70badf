// SPDX-License-Identifier: EPL-2.0

// Command waveform-live draws the microphone input as a scrolling waveform
// and keeps writing it to a PNG file.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gordonklaus/portaudio"
	"github.com/ik5/audwave/internal/cli"
	"github.com/ik5/audwave/waveform"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Version bool            `short:"v" help:"Show version information."`
	Config  kong.ConfigFlag `short:"c" type:"path" help:"JSON file with flag defaults."`

	Output         string        `short:"o" type:"path" help:"PNG file rewritten while recording." default:"live.png"`
	Renderer       string        `short:"r" help:"Shape: linear, circular or ring." enum:"linear,circular,ring" default:"linear"`
	SilencePadding bool          `help:"Fill the view with silence until enough samples arrive." negatable:"" default:"true"`
	SampleRate     float64       `help:"Capture sample rate in Hz." default:"44100"`
	Frames         int           `help:"Frames per capture buffer, each buffer becomes one sample." default:"1024"`
	Interval       time.Duration `help:"Time between image writes." default:"250ms"`
	Duration       time.Duration `short:"d" help:"Stop after this long, 0 records until q is pressed." default:"0s"`

	cli.CanvasFlags  `embed:""`
	cli.StyleFlags   `embed:""`
	cli.DampingFlags `embed:""`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("waveform-live"),
		kong.Description("Live microphone waveform"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
			"damping": strconv.FormatFloat(waveform.DefaultDampingPercentage, 'g', -1, 64),
		},
		kong.DefaultEnvars("WAVEFORM_LIVE"),
		kong.Configuration(kong.JSON, "/etc/waveform-live.json", "~/.config/waveform-live.json"),
		kong.Help(cli.StyledHelpPrinter("Waveform Live")),
	)

	if cliArgs.Version {
		cli.Banner(os.Stdout, "waveform-live", version)
		os.Exit(0)
	}

	if err := run(cliArgs); err != nil {
		cli.Fail(err)
		os.Exit(1)
	}
}

func run(c *CLI) error {
	cfg, err := cli.Configure(waveform.DefaultLiveConfiguration, c.CanvasFlags, c.StyleFlags, c.DampingFlags)
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
	if c.Frames <= 0 || c.SampleRate <= 0 || c.Interval <= 0 {
		return fmt.Errorf("invalid capture settings: %d frames at %v Hz every %v", c.Frames, c.SampleRate, c.Interval)
	}

	rec := newRecorder(cfg, waveform.NewLiveDrawer(renderer, pos, c.SilencePadding))

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing audio: %w", err)
	}
	defer portaudio.Terminate()

	levels := make(chan float64, 64)
	stream, err := portaudio.OpenDefaultStream(1, 0, c.SampleRate, c.Frames, func(in []float32) {
		select {
		case levels <- rmsDecibels(in):
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("opening input stream: %w", err)
	}
	defer stream.Close()

	p := tea.NewProgram(newModel(c.Output), tea.WithAltScreen())
	stop := make(chan struct{})
	finished := make(chan error, 1)

	go func() {
		finished <- capture(p, stream, rec, levels, stop, c)
	}()

	_, uiErr := p.Run()
	close(stop)
	captureErr := <-finished

	if uiErr != nil {
		return fmt.Errorf("%w", uiErr)
	}
	if captureErr != nil {
		return captureErr
	}

	cli.Report(os.Stdout, "output", c.Output)
	cli.Report(os.Stdout, "samples", rec.count())
	return nil
}

// capture feeds readings to rec until stop closes or the duration ends,
// then writes the final image.
func capture(p *tea.Program, stream *portaudio.Stream, rec *recorder, levels <-chan float64, stop <-chan struct{}, c *CLI) error {
	if err := stream.Start(); err != nil {
		err = fmt.Errorf("starting input stream: %w", err)
		p.Send(doneMsg{Err: err})
		return err
	}

	var deadline <-chan time.Time
	if c.Duration > 0 {
		deadline = time.After(c.Duration)
	}
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	dirty := false

loop:
	for {
		select {
		case db := <-levels:
			rec.push(db)
			dirty = true
			p.Send(levelMsg{DB: db, Samples: rec.count()})

		case <-ticker.C:
			if !dirty {
				continue
			}
			dirty = false
			p.Send(savedMsg{Path: c.Output, Err: rec.save(c.Output)})

		case <-deadline:
			break loop

		case <-stop:
			break loop
		}
	}

	if err := stream.Stop(); err != nil {
		err = fmt.Errorf("stopping input stream: %w", err)
		p.Send(doneMsg{Err: err})
		return err
	}

	err := rec.save(c.Output)
	p.Send(doneMsg{Err: err})
	return err
}
