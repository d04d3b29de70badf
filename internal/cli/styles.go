// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// labelWidth is the column where report values start.
const labelWidth = 10

// Theme is the terminal look of both commands. The grays follow the
// default waveform gradient; amber marks headings and the live meter.
type Theme struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Failure lipgloss.Style
	Hint    lipgloss.Style

	// Help output.
	Section lipgloss.Style
	Name    lipgloss.Style
	Default lipgloss.Style

	// Level meter cells.
	Lit   lipgloss.Style
	Unlit lipgloss.Style
}

var (
	amber = lipgloss.Color("#E8A33D")
	ink   = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#EEEEEE"}
	gray  = lipgloss.Color("#808080")
	dim   = lipgloss.Color("#3A3A3A")
	alarm = lipgloss.Color("#D9534F")
)

// Look is the theme every command renders with.
var Look = Theme{
	Heading: lipgloss.NewStyle().Bold(true).Foreground(amber),
	Label:   lipgloss.NewStyle().Foreground(gray),
	Value:   lipgloss.NewStyle().Foreground(ink),
	Failure: lipgloss.NewStyle().Bold(true).Foreground(alarm),
	Hint:    lipgloss.NewStyle().Foreground(gray).Italic(true),

	Section: lipgloss.NewStyle().Bold(true).Foreground(ink).MarginTop(1),
	Name:    lipgloss.NewStyle().Foreground(amber),
	Default: lipgloss.NewStyle().Foreground(gray).Italic(true),

	Lit:   lipgloss.NewStyle().Foreground(amber),
	Unlit: lipgloss.NewStyle().Foreground(dim),
}

// Field renders "label  value" with the value aligned on labelWidth.
func (t Theme) Field(label string, value any) string {
	pad := max(1, labelWidth-len(label))
	return t.Label.Render(label) + strings.Repeat(" ", pad) + t.Value.Render(fmt.Sprint(value))
}

// Report writes one Field line to w.
func Report(w io.Writer, label string, value any) {
	fmt.Fprintln(w, Look.Field(label, value))
}

// Banner writes the program name and version to w.
func Banner(w io.Writer, name, version string) {
	fmt.Fprintln(w, Look.Heading.Render(name)+" "+Look.Label.Render(version))
}

// Fail reports err on stderr.
func Fail(err error) {
	fmt.Fprintln(os.Stderr, Look.Failure.Render("failed:")+" "+err.Error())
}
