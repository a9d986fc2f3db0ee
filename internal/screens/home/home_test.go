package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/screen"
	"github.com/abhisek/integrals/internal/screens/history"
	"github.com/abhisek/integrals/internal/screens/placeholder"
	"github.com/abhisek/integrals/internal/screens/theory"
	sess "github.com/abhisek/integrals/internal/session"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// selectItem moves down n times and presses Enter, returning the message
// produced by the menu action.
func selectItem(t *testing.T, h *HomeScreen, n int) tea.Msg {
	t.Helper()
	for i := 0; i < n; i++ {
		h.Update(specialKey(tea.KeyDown))
	}
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from menu selection")
	}
	return cmd()
}

func TestMenuLabels(t *testing.T) {
	h := New(Deps{})
	want := []string{LabelStart, LabelTheory, LabelHistory, LabelExit}
	got := h.menu.Labels()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStartQuizPushesNewQuiz(t *testing.T) {
	quiz := placeholder.New("Quiz", "")
	calls := 0
	h := New(Deps{NewQuiz: func() screen.Screen {
		calls++
		return quiz
	}})

	push, ok := selectItem(t, h, 0).(router.PushScreenMsg)
	if !ok || push.Screen != quiz {
		t.Fatalf("expected push of quiz screen, got %#v", push)
	}
	if calls != 1 {
		t.Errorf("expected NewQuiz called once, got %d", calls)
	}
}

func TestTheoryAndHistory(t *testing.T) {
	h := New(Deps{})
	push, ok := selectItem(t, h, 1).(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected push")
	}
	if _, ok := push.Screen.(*theory.TheoryScreen); !ok {
		t.Errorf("expected theory screen, got %T", push.Screen)
	}

	h = New(Deps{})
	push, _ = selectItem(t, h, 2).(router.PushScreenMsg)
	if _, ok := push.Screen.(*placeholder.PlaceholderScreen); !ok {
		t.Errorf("expected placeholder without events, got %T", push.Screen)
	}
	if _, ok := push.Screen.(*history.HistoryScreen); ok {
		t.Error("history needs an event repo")
	}
}

func TestExitQuits(t *testing.T) {
	h := New(Deps{})
	if _, ok := selectItem(t, h, 3).(tea.QuitMsg); !ok {
		t.Error("expected EXIT to quit")
	}
}

func TestMascotFor(t *testing.T) {
	tests := []struct {
		name string
		p    sess.Progress
		want MascotVariant
	}{
		{"no batch", sess.Progress{}, MascotIdle},
		{"fresh batch", sess.Progress{Total: 3}, MascotIdle},
		{"in progress", sess.Progress{AnsweredCount: 1, Total: 3, Score: 1}, MascotThinking},
		{"finished with a miss", sess.Progress{AnsweredCount: 3, Total: 3, Score: 2}, MascotThinking},
		{"perfect", sess.Progress{AnsweredCount: 3, Total: 3, Score: 3}, MascotCelebrating},
	}
	for _, tc := range tests {
		if got := MascotFor(tc.p); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestViewRenders(t *testing.T) {
	h := New(Deps{Progress: func() sess.Progress {
		return sess.Progress{AnsweredCount: 1, Total: 3, Score: 1}
	}})
	for _, size := range [][2]int{{120, 40}, {80, 16}} {
		if out := h.View(size[0], size[1]); out == "" {
			t.Errorf("empty view at %v", size)
		}
	}
}
