package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/integrals/internal/problemgen"
	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Total:    4,
		Answered: 4,
		Correct:  3,
		Accuracy: 0.75,
		PerKind: []session.KindResult{
			{Kind: problemgen.KindPower, Attempted: 2, Correct: 2},
			{Kind: problemgen.KindExponential, Attempted: 2, Correct: 1},
		},
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 40)

	for _, want := range []string{"Batch complete!", "Accuracy: 75%", "Power rule", "Exponential rule", "2/2 correct", "1/2 correct"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if strings.Contains(view, "Reciprocal rule") {
		t.Error("kinds absent from the batch should not be listed")
	}
}

func TestSummaryScreen_InProgress(t *testing.T) {
	sum := testSummary()
	sum.Answered = 2
	if view := New(sum).View(100, 40); !strings.Contains(view, "Batch in progress") {
		t.Error("expected in-progress title")
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	if view := New(nil).View(80, 24); view != "" {
		t.Errorf("expected empty view, got %q", view)
	}
}

func TestSummaryScreen_Keys(t *testing.T) {
	s := New(testSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected Enter to pop back to the quiz")
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("expected command on q")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected q to return home")
	}

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("other keys should be ignored")
	}
}
