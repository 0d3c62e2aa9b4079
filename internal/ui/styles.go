package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for scan output
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - candidates, checkmarks
	WarningColor = lipgloss.Color("#FFA500") // Orange - in-progress
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for scan output
var (
	// ScanLabelStyle is for the scan headline (e.g., "Scanning 192.168.1.0/24...")
	ScanLabelStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			PaddingLeft(2)

	// CandidateStyle marks likely-candidate rows
	CandidateStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// DeviceStyle is for ordinary device rows
	DeviceStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// HeaderRowStyle is for the result table header
	HeaderRowStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Bold(true)

	// SummaryStyle is for the closing summary line
	SummaryStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)

	// CounterStyle is for the live scanned/total counter
	CounterStyle = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// Markers
const (
	CandidateMarker = "✓"
	DeviceMarker    = "·"
)

// IsTerminal reports whether stdout is attached to a terminal. Non-TTY
// output (pipes, CI) gets the plain renderer.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
