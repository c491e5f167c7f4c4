package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/readychina/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections,
// so boxes rendered at this width line up.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// PosterFrame wraps content in a heavy red border, centered in the area.
func PosterFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Secondary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel wraps content in a rounded card at the given content width.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Button renders a pill button; active buttons are filled.
func Button(label string, active bool) string {
	if active {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}

// Status renders a transient one-line message, or nothing.
func Status(text string, isErr bool, width int) string {
	if text == "" {
		return ""
	}
	color := theme.Accent
	if isErr {
		color = theme.Error
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(color).
		Render(text)
}

// GradientText colors s left to right across the hero gradient stops.
func GradientText(s string) string {
	lines := strings.Split(s, "\n")
	for li, line := range lines {
		runes := []rune(line)
		var b strings.Builder
		for i, r := range runes {
			stop := theme.Gradient[i*len(theme.Gradient)/max(len(runes), 1)]
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(stop)).
				Bold(true).
				Render(string(r)))
		}
		lines[li] = b.String()
	}
	return strings.Join(lines, "\n")
}
