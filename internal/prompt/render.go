package prompt

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleQmark = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	styleMessage = lipgloss.NewStyle().
			Bold(true)

	styleAnswer = lipgloss.NewStyle().
			Foreground(colorCyan)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleSkipped = lipgloss.NewStyle().
			Foreground(colorYellow)
)

// addCursorAt adds a cursor indicator at the specified position
func addCursorAt(s string, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	if pos == len(s) {
		return s + "█"
	}
	return s[:pos] + "█" + s[pos:]
}

// padRegion right-pads text with spaces up to the region's display width
func padRegion(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// fitLine shortens plain text to the terminal width, keeping an ellipsis
func fitLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
