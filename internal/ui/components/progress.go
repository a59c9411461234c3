package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jsalter/cmi5quest/internal/ui/theme"
)

// ProgressBar displays a horizontal meter. Fill picks the bar color
// so the same component serves health, experience, and course progress.
type ProgressBar struct {
	Label       string
	Percent     float64
	Fill        lipgloss.Style
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar with the default fill color.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		Fill:        lipgloss.NewStyle().Background(theme.Secondary),
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewHPBar creates a health meter from current and max hit points.
func NewHPBar(label string, hp, maxHP, width int) ProgressBar {
	pct := 0.0
	if maxHP > 0 {
		pct = float64(hp) / float64(maxHP)
	}
	return ProgressBar{
		Label:   label,
		Percent: pct,
		Fill:    theme.HPFilled,
		Width:   width,
	}
}

// NewXPBar creates an experience meter showing progress into the
// current level.
func NewXPBar(label string, into, span, width int) ProgressBar {
	pct := 1.0
	if span > 0 {
		pct = float64(into) / float64(span)
	}
	return ProgressBar{
		Label:   label,
		Percent: pct,
		Fill:    theme.XPFilled,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += p.Fill.Render(strings.Repeat(" ", filled))
	result += theme.BarEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
