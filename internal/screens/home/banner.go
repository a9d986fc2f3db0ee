package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/integrals/internal/session"
	"github.com/abhisek/integrals/internal/ui/components"
	"github.com/abhisek/integrals/internal/ui/theme"
)

const bannerFull = ` ██╗███╗   ██╗████████╗███████╗ ██████╗ ██████╗  █████╗ ██╗     ███████╗
 ██║████╗  ██║╚══██╔══╝██╔════╝██╔════╝ ██╔══██╗██╔══██╗██║     ██╔════╝
 ██║██╔██╗ ██║   ██║   █████╗  ██║  ███╗██████╔╝███████║██║     ███████╗
 ██║██║╚██╗██║   ██║   ██╔══╝  ██║   ██║██╔══██╗██╔══██║██║     ╚════██║
 ██║██║ ╚████║   ██║   ███████╗╚██████╔╝██║  ██║██║  ██║███████╗███████║
 ╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝`

const bannerCompact = "∫ · I N T E G R A L S · dx"

// bannerMinWidth is the content width needed for the block-letter banner.
const bannerMinWidth = 72

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	text := bannerFull
	if compact || cw < bannerMinWidth {
		text = bannerCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// renderStatsBar shows the current batch at a glance.
func renderStatsBar(p sess.Progress, cw int, compact bool) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	progressStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case p.Total == 0:
		stats = dimStyle.Render("NO BATCH YET")
	case compact:
		stats = fmt.Sprintf("%s %s",
			scoreStyle.Render(fmt.Sprintf("✓%d", p.Score)),
			progressStyle.Render(fmt.Sprintf("∑%d/%d", p.AnsweredCount, p.Total)),
		)
	default:
		stats = fmt.Sprintf("%s  %s",
			scoreStyle.Render(fmt.Sprintf("✓ %d CORRECT", p.Score)),
			progressStyle.Render(fmt.Sprintf("∑ %d/%d ANSWERED", p.AnsweredCount, p.Total)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func renderMenu(labels []string, selected int, cw int) string {
	buttons := make([]string, len(labels))
	for i, label := range labels {
		buttons[i] = components.MenuButton(label, i == selected, buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as text lines for terminals too
// short for bordered buttons.
func renderMenuCompact(labels []string, selected int, cw int) string {
	lines := make([]string, len(labels))
	for i, label := range labels {
		if i == selected {
			lines[i] = theme.Selected.Render(" ▸ " + label + " ")
		} else {
			lines[i] = theme.Unselected.Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
