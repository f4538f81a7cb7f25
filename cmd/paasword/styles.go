package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/paasword/paasword-go/internal/strength"
)

var (
	accent = lipgloss.Color("#ff8e3e")
	muted  = lipgloss.Color("8")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	passwordStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(muted)
	copiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#32cd32"))
	cellStyle    = lipgloss.NewStyle().Width(5)
)

// renderMeter draws the three-cell strength meter.
func renderMeter(t strength.Tier) string {
	cells := make([]string, 3)
	for i := range cells {
		color := strength.IdleColor
		if i < t.Bars() {
			color = t.Color()
		}
		cells[i] = cellStyle.Background(lipgloss.Color(color)).Render("")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells[0], " ", cells[1], " ", cells[2])
}
