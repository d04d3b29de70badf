// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ik5/audwave/internal/cli"
)

// levelMsg reports the latest reading.
type levelMsg struct {
	DB      float64
	Samples int
}

// savedMsg reports a written image.
type savedMsg struct {
	Path string
	Err  error
}

// doneMsg ends the program once capture has stopped.
type doneMsg struct{ Err error }

type tickMsg time.Time

const meterWidth = 40

type model struct {
	output  string
	start   time.Time
	now     time.Time
	db      float64
	samples int
	saved   int
	err     error
	done    bool
}

func newModel(output string) model {
	now := time.Now()
	return model{output: output, start: now, now: now, db: minDecibels}
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		}

	case tickMsg:
		m.now = time.Time(msg)
		if m.done {
			return m, nil
		}
		return m, tickCmd()

	case levelMsg:
		m.db = msg.DB
		m.samples = msg.Samples

	case savedMsg:
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.saved++
		}

	case doneMsg:
		m.err = msg.Err
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// meter maps [-60,0] dB onto a bar of width cells.
func meter(db float64, width int) string {
	filled := int((db + 60) / 60 * float64(width))
	filled = min(width, max(0, filled))
	return cli.Look.Lit.Render(strings.Repeat("█", filled)) +
		cli.Look.Unlit.Render(strings.Repeat("░", width-filled))
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cli.Look.Heading.Render("waveform-live"))
	b.WriteString("\n")

	b.WriteString(meter(m.db, meterWidth))
	fmt.Fprintf(&b, " %6.1f dB\n\n", m.db)

	elapsed := m.now.Sub(m.start).Truncate(100 * time.Millisecond)
	b.WriteString(cli.Look.Field("elapsed", elapsed) + "\n")
	b.WriteString(cli.Look.Field("samples", m.samples) + "\n")
	b.WriteString(cli.Look.Field("output", fmt.Sprintf("%s (%d writes)", m.output, m.saved)) + "\n")

	if m.err != nil {
		b.WriteString("\n" + cli.Look.Failure.Render("save failed:") + " " + m.err.Error() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.Look.Hint.Render("q to stop"))
	b.WriteString("\n")
	return b.String()
}
