// Package summary shows per-formula results for a finished batch.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/screen"
	"github.com/abhisek/integrals/internal/session"
	"github.com/abhisek/integrals/internal/ui/layout"
	"github.com/abhisek/integrals/internal/ui/theme"
)

// SummaryScreen displays the batch summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Batch Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to quiz"},
		{Key: "q", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "q":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	title := "Batch complete!"
	if sum.Answered < sum.Total {
		title = "Batch in progress"
	}
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(title)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Exercises: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Total, sum.Correct, sum.Accuracy*100)
	b.WriteString(center(theme.Body.Render(statsLine)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(center(theme.Hint.Render("Formulas")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n\n")

	for _, kr := range sum.PerKind {
		line := fmt.Sprintf("  %-16s %s    %d/%d correct",
			kr.Kind.Name(), kr.Kind.String(), kr.Correct, kr.Attempted)

		style := theme.Body
		switch {
		case kr.Attempted == 0:
			style = theme.Hint
		case kr.Correct == kr.Attempted:
			style = theme.Correct
		case kr.Correct == 0:
			style = theme.Incorrect
		}
		b.WriteString(center(style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
