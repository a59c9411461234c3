package title

import (
	"charm.land/lipgloss/v2"

	"github.com/jsalter/cmi5quest/internal/ui/theme"
)

const bannerArt = `
 ██████╗███╗   ███╗██╗███████╗     ██████╗ ██╗   ██╗███████╗███████╗████████╗
██╔════╝████╗ ████║██║██╔════╝    ██╔═══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
██║     ██╔████╔██║██║███████╗    ██║   ██║██║   ██║█████╗  ███████╗   ██║
██║     ██║╚██╔╝██║██║╚════██║    ██║▄▄ ██║██║   ██║██╔══╝  ╚════██║   ██║
╚██████╗██║ ╚═╝ ██║██║███████║    ╚██████╔╝╚██████╔╝███████╗███████║   ██║
 ╚═════╝╚═╝     ╚═╝╚═╝╚══════╝     ╚══▀▀═╝  ╚═════╝ ╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "C M I 5   Q U E S T"

// RenderBanner returns the CMI5 QUEST banner styled in the primary
// color. Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 80 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
