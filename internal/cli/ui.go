package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/navkit/pkg/navkit/coordinator"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - handled
	colorYellow = lipgloss.Color("220") // Amber - unhandled
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLink    = lipgloss.NewStyle().Foreground(colorBlue)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

func printHandled(w io.Writer, link, detail string) {
	fmt.Fprintf(w, "%s %s %s %s\n", styleSuccess.Render(iconSuccess), styleLink.Render(link), iconArrow, detail)
}

func printUnhandled(w io.Writer, link string) {
	fmt.Fprintf(w, "%s %s %s\n", styleWarning.Render(iconWarning), styleLink.Render(link), styleDim.Render("no matching route"))
}

// printSnapshot writes a coordinator tree, one router level per line.
func printSnapshot(w io.Writer, s coordinator.Snapshot) {
	for _, line := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
