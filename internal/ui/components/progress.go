package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/readychina/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

// NewStepProgress labels the bar "Step k of n" and fills it to k/n.
func NewStepProgress(step, total, width int) ProgressBar {
	if step > total {
		step = total
	}
	p := 0.0
	if total > 0 {
		p = float64(step) / float64(total)
	}
	return ProgressBar{
		Label:   fmt.Sprintf("Step %d of %d", step, total),
		Percent: p,
		Width:   width,
	}
}

// View renders the label above a thin bar.
func (p ProgressBar) View() string {
	barWidth := p.Width
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

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.Label == "" {
		return bar
	}
	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Bold(true).
		Render(strings.ToUpper(p.Label))
	return label + "\n" + bar
}
