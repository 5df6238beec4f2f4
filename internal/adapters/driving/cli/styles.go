package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
)

var (
	colourPrimary = lipgloss.Color("#7C3AED")
	colourMuted   = lipgloss.Color("#6C7086")
	colourSuccess = lipgloss.Color("#A6E3A1")
	colourWarning = lipgloss.Color("#F9E2AF")
	colourError   = lipgloss.Color("#F38BA8")
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colourPrimary)
	domainStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colourMuted)
	warningStyle = lipgloss.NewStyle().Foreground(colourWarning)
)

// bandStyle colours a match band the way a traffic light would.
func bandStyle(band domain.MatchBand) lipgloss.Style {
	switch band {
	case domain.MatchHigh:
		return lipgloss.NewStyle().Bold(true).Foreground(colourSuccess)
	case domain.MatchModerate:
		return lipgloss.NewStyle().Bold(true).Foreground(colourWarning)
	case domain.MatchLow:
		return lipgloss.NewStyle().Bold(true).Foreground(colourError)
	default:
		return mutedStyle
	}
}
