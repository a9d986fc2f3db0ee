package theory

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/integrals/internal/problemgen"
	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/screen"
	"github.com/abhisek/integrals/internal/ui/components"
	"github.com/abhisek/integrals/internal/ui/layout"
	"github.com/abhisek/integrals/internal/ui/theme"
)

// TheoryScreen shows the three definite-integral formulas.
type TheoryScreen struct {
	startQuiz func() screen.Screen
}

var _ screen.Screen = (*TheoryScreen)(nil)
var _ screen.KeyHintProvider = (*TheoryScreen)(nil)

// New creates a TheoryScreen. startQuiz, if non-nil, builds the quiz
// screen that replaces this one on Enter.
func New(startQuiz func() screen.Screen) *TheoryScreen {
	return &TheoryScreen{startQuiz: startQuiz}
}

func (s *TheoryScreen) Init() tea.Cmd {
	return nil
}

func (s *TheoryScreen) Title() string {
	return "Theory"
}

func (s *TheoryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if s.startQuiz != nil {
		hints = append([]layout.KeyHint{{Key: "Enter", Description: "Start quiz"}}, hints...)
	}
	return hints
}

func (s *TheoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter":
		if s.startQuiz != nil {
			next := s.startQuiz()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *TheoryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{theme.Title.Width(cw).Render("Common definite-integral formulas")}
	for i, k := range problemgen.Kinds {
		body := theme.Subtitle.Render(fmt.Sprintf("%d. %s", i+1, k.Name())) + "\n\n" +
			theme.Formula.Render(k.Formula())
		sections = append(sections, components.Card(body, cw))
	}
	sections = append(sections, theme.Hint.Render(problemgen.CombineNote))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// Text renders the formulas without styling, for the command line.
func Text() string {
	var b strings.Builder
	b.WriteString("Common definite-integral formulas\n\n")
	for i, k := range problemgen.Kinds {
		fmt.Fprintf(&b, "%d. %s\n   %s\n\n", i+1, k.Name(), k.Formula())
	}
	b.WriteString(problemgen.CombineNote)
	b.WriteString("\n")
	return b.String()
}
