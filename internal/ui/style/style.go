// Package style holds the colours and icons shared by the log handler and the build report.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// StatusIcon returns the icon and colour for a build status name.
func StatusIcon(status string) (string, lipgloss.Color) {
	switch status {
	case "merged":
		return Check, Green
	case "up-to-date":
		return Tilde, Iris
	case "failed":
		return Cross, Red
	default:
		return Circle, Slate
	}
}
