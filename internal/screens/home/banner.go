package home

import (
	"charm.land/lipgloss/v2"

	"github.com/todoscontam/finlab/internal/ui/theme"
)

const bannerArt = `███████╗██╗███╗   ██╗██╗      █████╗ ██████╗
██╔════╝██║████╗  ██║██║     ██╔══██╗██╔══██╗
█████╗  ██║██╔██╗ ██║██║     ███████║██████╔╝
██╔══╝  ██║██║╚██╗██║██║     ██╔══██║██╔══██╗
██║     ██║██║ ╚████║███████╗██║  ██║██████╔╝
╚═╝     ╚═╝╚═╝  ╚═══╝╚══════╝╚═╝  ╚═╝╚═════╝`

const bannerCompact = "F I N L A B"

// renderBanner uses the compact form on narrow or short terminals.
func renderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
