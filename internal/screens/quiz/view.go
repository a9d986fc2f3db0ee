package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/integrals/internal/session"
	"github.com/abhisek/integrals/internal/symbolic"
	"github.com/abhisek/integrals/internal/ui/components"
	"github.com/abhisek/integrals/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.slider.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  press n to start a new batch with this count"))
	b.WriteString("\n\n")

	ex, idx, ok := s.ctrl.Current()
	if !ok {
		b.WriteString(theme.Hint.Render("No exercises yet. Press n to generate a batch."))
		s.renderError(&b)
		return s.place(b.String(), width, height)
	}
	state := s.ctrl.State()

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Exercise %d of %d", idx+1, state.Total())))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(ex.Kind.Name()))
	b.WriteString("\n")
	b.WriteString(components.Card(theme.Formula.Render(ex.Statement), cw))
	b.WriteString("\n\n")

	b.WriteString(s.options.View())
	b.WriteString("\n")

	if fb := s.feedback(state, idx); fb != "" {
		b.WriteString("\n")
		b.WriteString(fb)
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Info.Render(s.notice))
		b.WriteString("\n")
	}

	switch s.pane {
	case paneSteps:
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Step-by-step solution"))
		b.WriteString("\n")
		for _, line := range s.steps {
			b.WriteString(theme.Formula.Render("  " + line))
			b.WriteString("\n")
		}
	case panePlot:
		b.WriteString("\n")
		b.WriteString(s.plot)
		b.WriteString("\n")
	}

	p := s.ctrl.Progress()
	if lines := p.Lines(); lines != nil {
		b.WriteString("\n")
		for _, line := range lines {
			b.WriteString(theme.Body.Render(line))
			b.WriteString("\n")
		}
		b.WriteString(components.NewProgressBar("", p.Fraction(), true, cw).View())
		b.WriteString("\n")
	}
	if p.Complete() {
		b.WriteString("\n")
		b.WriteString(theme.Title.Render(fmt.Sprintf("Batch complete: %d/%d", p.Score, p.Total)))
		b.WriteString("  ")
		b.WriteString(theme.Hint.Render("press v for the summary"))
		b.WriteString("\n")
	}

	s.renderError(&b)
	return s.place(b.String(), width, height)
}

func (s *QuizScreen) place(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (s *QuizScreen) renderError(b *strings.Builder) {
	if s.errMsg == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(theme.Incorrect.Render("Error: " + s.errMsg))
}

// feedback is derived from the session so it survives navigation.
func (s *QuizScreen) feedback(state *sess.SessionState, idx int) string {
	if !state.Answered[idx] {
		return ""
	}
	if state.Outcomes[idx] == sess.OutcomeCorrect {
		return theme.Correct.Render("Correct!")
	}
	return theme.Incorrect.Render("Wrong. Correct answer: " +
		symbolic.FormatValue(state.Exercises[idx].CorrectValue))
}
