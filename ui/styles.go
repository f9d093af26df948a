package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termtools/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	critStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	bluePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)

	greenPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)
)

// procUsageStyle colors a per-process percentage: <10 green, <50 yellow.
func procUsageStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 10:
		return goodStyle
	case pct < 50:
		return warmStyle
	default:
		return critStyle
	}
}

// sysUsageStyle colors a system-wide percentage: <50 green, <80 yellow.
func sysUsageStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 50:
		return goodStyle
	case pct < 80:
		return warmStyle
	default:
		return critStyle
	}
}

// statusStyle colors a process status cell.
func statusStyle(s models.ProcessStatus) lipgloss.Style {
	switch s {
	case models.StatusRunning:
		return goodStyle
	case models.StatusSleeping:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	case models.StatusDiskSleep:
		return warmStyle
	case models.StatusStopped, models.StatusZombie, models.StatusDead:
		return critStyle
	default:
		return lipgloss.NewStyle()
	}
}

// bar renders a 20-cell usage bar, colored by the system thresholds.
func bar(pct float64) string {
	filled := int(pct / 5)
	if filled > 20 {
		filled = 20
	}
	if filled < 0 {
		filled = 0
	}
	return sysUsageStyle(pct).Render(strings.Repeat("█", filled) + strings.Repeat("░", 20-filled))
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
