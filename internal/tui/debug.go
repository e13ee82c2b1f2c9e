package tui

import (
	"strings"
	"time"
)

// DebugPanel collects diagnostic events (mode transitions, step timings,
// save outcomes) for display under the board when -debug is set.
type DebugPanel struct {
	enabled bool
	lines   []string
	max     int // lines kept and shown
}

// NewDebugPanel creates a debug panel
func NewDebugPanel(enabled bool) DebugPanel {
	return DebugPanel{enabled: enabled, max: 8}
}

// IsEnabled returns whether debug mode is enabled
func (d *DebugPanel) IsEnabled() bool {
	return d.enabled
}

// AddEvent records a timestamped event line
func (d *DebugPanel) AddEvent(kind, details string) {
	if !d.enabled {
		return
	}
	line := time.Now().Format("15:04:05.000") + " [" + kind + "]"
	if details != "" {
		line += " " + details
	}
	d.lines = append(d.lines, line)
	if len(d.lines) > d.max {
		d.lines = d.lines[len(d.lines)-d.max:]
	}
}

// Render renders the panel, truncating lines to the given width
func (d *DebugPanel) Render(width int) string {
	if !d.enabled {
		return ""
	}
	maxLen := width - 4
	if maxLen < 10 {
		maxLen = 10
	}
	out := make([]string, 0, len(d.lines)+1)
	out = append(out, DebugTitleStyle.Render("DEBUG"))
	for _, line := range d.lines {
		if len(line) > maxLen {
			line = line[:maxLen-3] + "..."
		}
		out = append(out, line)
	}
	return DebugPanelStyle.Render(strings.Join(out, "\n"))
}
