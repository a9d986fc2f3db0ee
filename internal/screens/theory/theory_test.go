package theory

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/screen"
	"github.com/abhisek/integrals/internal/screens/placeholder"
)

func TestText(t *testing.T) {
	text := Text()
	for _, want := range []string{
		"1. Power rule",
		`\frac{b^{n+1} - a^{n+1}}{n+1}`,
		"2. Reciprocal rule",
		`\ln|b| - \ln|a|`,
		"3. Exponential rule",
		`e^b - e^a`,
		"can be combined",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q", want)
		}
	}
}

func TestTheoryScreen_EnterStartsQuiz(t *testing.T) {
	target := placeholder.New("Quiz", "")
	s := New(func() screen.Screen { return target })

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	repl, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || repl.Screen != target {
		t.Fatalf("expected quiz screen to replace theory, got %#v", cmd())
	}
}

func TestTheoryScreen_NoQuiz(t *testing.T) {
	s := New(nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("Enter without quiz should do nothing")
	}
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints = %+v", s.KeyHints())
	}
	if !strings.Contains(s.View(100, 40), "Power rule") {
		t.Error("view missing formula names")
	}
}
