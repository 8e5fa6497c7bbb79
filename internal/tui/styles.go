package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
)

var (
	// Colors
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5F87")
	ColorMuted   = lipgloss.Color("#626262")
	ColorBorder  = lipgloss.Color("#3C3C3C")

	// Base styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginTop(1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	TableCellStyle   = lipgloss.NewStyle()

	MetricLabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle = lipgloss.NewStyle().Bold(true)

	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	CaveatStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	PendingStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)

// TierStyle colors an eligibility status by its severity.
func TierStyle(tier domain.StatusTier) lipgloss.Style {
	switch tier {
	case domain.TierFavorable:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	case domain.TierConditional:
		return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	}
}
