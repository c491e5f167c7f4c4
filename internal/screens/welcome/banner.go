package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/readychina/internal/ui/components"
	"github.com/abhisek/readychina/internal/ui/theme"
)

const bannerArt = ` ██████╗██╗  ██╗██╗███╗   ██╗ █████╗
██╔════╝██║  ██║██║████╗  ██║██╔══██╗
██║     ███████║██║██╔██╗ ██║███████║
██║     ██╔══██║██║██║╚██╗██║██╔══██║
╚██████╗██║  ██║██║██║ ╚████║██║  ██║
 ╚═════╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝`

const bannerCompact = "R E A D Y  T O  C H I N A"

// RenderBanner returns the CHINA banner in the hero gradient under a small
// "READY TO" line. Uses a compact fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	if width < 44 {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Render(bannerCompact)
	}
	kicker := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("R E A D Y   T O")
	return lipgloss.JoinVertical(lipgloss.Center, kicker, components.GradientText(bannerArt))
}
