package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/typerush/typerush/internal/ui/components"
	"github.com/typerush/typerush/internal/ui/theme"
)

const bannerArt = `
████████╗██╗   ██╗██████╗ ███████╗██████╗ ██╗   ██╗███████╗██╗  ██╗
╚══██╔══╝╚██╗ ██╔╝██╔══██╗██╔════╝██╔══██╗██║   ██║██╔════╝██║  ██║
   ██║    ╚████╔╝ ██████╔╝█████╗  ██████╔╝██║   ██║███████╗███████║
   ██║     ╚██╔╝  ██╔═══╝ ██╔══╝  ██╔══██╗██║   ██║╚════██║██╔══██║
   ██║      ██║   ██║     ███████╗██║  ██║╚██████╔╝███████║██║  ██║
   ╚═╝      ╚═╝   ╚═╝     ╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝`

const bannerCompact = "T Y P E R U S H"

// RenderBanner returns the TYPERUSH banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// renderStatsBar renders the lifetime stats strip under the banner.
func renderStatsBar(sessions, bestWPM, streakDays int, cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	parts := []string{
		dim.Render("Sessions ") + val.Render(fmt.Sprintf("%d", sessions)),
		dim.Render("Best ") + val.Render(fmt.Sprintf("%d wpm", bestWPM)),
		dim.Render("Streak ") + val.Render(fmt.Sprintf("%d day", streakDays)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, "    "))
}

// renderMenu renders the vertical button stack.
func renderMenu(labels []string, selected int, cw int) string {
	bw := cw - 8
	if bw < 18 {
		bw = 18
	}

	rows := make([]string, 0, len(labels))
	for i, label := range labels {
		rows = append(rows, components.MenuButton(label, i == selected, bw))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// centerFrame centers the home content in the available area.
func centerFrame(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
