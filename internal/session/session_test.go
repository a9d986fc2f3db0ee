package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/integrals/internal/problemgen"
)

func mustExercise(t *testing.T, kind problemgen.Kind, a, b, n int) problemgen.Exercise {
	t.Helper()
	ex, err := problemgen.NewExercise(kind, a, b, n, nil)
	if err != nil {
		t.Fatalf("NewExercise: %v", err)
	}
	return ex
}

func testState(t *testing.T) *SessionState {
	t.Helper()
	return NewSessionState("test-batch", []problemgen.Exercise{
		mustExercise(t, problemgen.KindPower, 0, 2, 1),       // correct 2
		mustExercise(t, problemgen.KindReciprocal, 1, 2, 0),  // correct 0.693
		mustExercise(t, problemgen.KindExponential, 0, 1, 0), // correct 1.718
	}, time.Now())
}

func TestNewSessionState(t *testing.T) {
	state := testState(t)

	if state.Total() != 3 {
		t.Errorf("Total = %d, want 3", state.Total())
	}
	if state.Score != 0 || state.CurrentIndex != 0 {
		t.Errorf("Score/CurrentIndex = %d/%d, want 0/0", state.Score, state.CurrentIndex)
	}
	for i, a := range state.Answered {
		if a {
			t.Errorf("Answered[%d] = true on a fresh batch", i)
		}
	}
	if len(state.Pending) != 0 {
		t.Errorf("Pending = %v, want empty", state.Pending)
	}
}

func TestGenerateBatch(t *testing.T) {
	gen := problemgen.NewSeeded(1, problemgen.Config{})

	for count := MinExercises; count <= MaxExercises; count++ {
		exs, err := GenerateBatch(gen, count)
		if err != nil {
			t.Fatalf("count %d: unexpected error: %v", count, err)
		}
		if len(exs) != count {
			t.Errorf("count %d: got %d exercises", count, len(exs))
		}
	}

	for _, bad := range []int{0, -1, 11} {
		if _, err := GenerateBatch(gen, bad); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count %d: expected ErrInvalidCount, got %v", bad, err)
		}
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {3, 3}, {10, 10}, {11, 10},
	}
	for _, tc := range tests {
		if got := ClampCount(tc.in); got != tc.want {
			t.Errorf("ClampCount(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHandleAnswer_Correct(t *testing.T) {
	state := testState(t)

	if err := SelectOption(state, 0, 2.0); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	res, err := HandleAnswer(state)
	if err != nil {
		t.Fatalf("HandleAnswer: %v", err)
	}
	if !res.Applied || !res.Correct() {
		t.Errorf("result = %+v, want applied correct", res)
	}
	if state.Score != 1 || !state.Answered[0] {
		t.Errorf("Score = %d, Answered[0] = %v", state.Score, state.Answered[0])
	}
	if _, ok := state.Pending[0]; ok {
		t.Error("pending selection should be cleared after checking")
	}
}

func TestHandleAnswer_WrongThenLocked(t *testing.T) {
	state := testState(t)
	state.CurrentIndex = 1

	_ = SelectOption(state, 1, 1.693)
	res, err := HandleAnswer(state)
	if err != nil {
		t.Fatalf("HandleAnswer: %v", err)
	}
	if res.Outcome != OutcomeIncorrect || res.CorrectValue != 0.693 {
		t.Errorf("result = %+v, want incorrect with correct value 0.693", res)
	}
	if state.Score != 0 {
		t.Errorf("Score = %d, want 0", state.Score)
	}

	// The answer is locked: selecting the right value and re-checking changes nothing.
	if err := SelectOption(state, 1, 0.693); err != nil {
		t.Fatalf("SelectOption on answered exercise: %v", err)
	}
	res, err = HandleAnswer(state)
	if err != nil {
		t.Fatalf("second HandleAnswer: %v", err)
	}
	if res.Applied {
		t.Error("second check should not be applied")
	}
	if res.Outcome != OutcomeIncorrect || res.Selected != 1.693 {
		t.Errorf("second result = %+v, want recorded incorrect 1.693", res)
	}
	if state.Score != 0 || state.AnsweredCount() != 1 {
		t.Errorf("Score = %d, answered = %d after re-check", state.Score, state.AnsweredCount())
	}
}

func TestHandleAnswer_NoSelection(t *testing.T) {
	state := testState(t)

	_, err := HandleAnswer(state)
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if state.Answered[0] || state.Score != 0 {
		t.Error("state changed on a check without selection")
	}
}

func TestSelectOption_OutOfRange(t *testing.T) {
	state := testState(t)

	for _, idx := range []int{-1, 3} {
		if err := SelectOption(state, idx, 1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("index %d: expected ErrIndexOutOfRange, got %v", idx, err)
		}
	}
}

func TestSelectOption_PerExercise(t *testing.T) {
	state := testState(t)

	_ = SelectOption(state, 0, 4.0)
	_ = SelectOption(state, 2, 1.718)
	_ = SelectOption(state, 0, 2.0)

	if v, ok := PendingSelection(state, 0); !ok || v != 2.0 {
		t.Errorf("pending[0] = %v, %v; want 2.0", v, ok)
	}
	if v, ok := PendingSelection(state, 2); !ok || v != 1.718 {
		t.Errorf("pending[2] = %v, %v; want 1.718", v, ok)
	}
	if _, ok := PendingSelection(state, 1); ok {
		t.Error("pending[1] should be unset")
	}
}

func TestNavigate_Clamped(t *testing.T) {
	state := testState(t)

	Navigate(state, DirPrev)
	if state.CurrentIndex != 0 {
		t.Errorf("prev at 0: CurrentIndex = %d", state.CurrentIndex)
	}

	for range 5 {
		Navigate(state, DirNext)
	}
	if state.CurrentIndex != 2 {
		t.Errorf("after 5 next: CurrentIndex = %d, want 2", state.CurrentIndex)
	}

	Navigate(state, DirPrev)
	if state.CurrentIndex != 1 {
		t.Errorf("after prev: CurrentIndex = %d, want 1", state.CurrentIndex)
	}
}

func TestNavigate_SingleExercise(t *testing.T) {
	state := NewSessionState("one", []problemgen.Exercise{
		mustExercise(t, problemgen.KindExponential, 0, 1, 0),
	}, time.Now())

	Navigate(state, DirNext)
	Navigate(state, DirPrev)
	if state.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", state.CurrentIndex)
	}
}

func TestNavigate_KeepsAnswersAndSelections(t *testing.T) {
	state := testState(t)

	_ = SelectOption(state, 0, 2.0)
	_, _ = HandleAnswer(state)
	Navigate(state, DirNext)
	_ = SelectOption(state, 1, 0.193)
	Navigate(state, DirPrev)
	Navigate(state, DirNext)

	if !state.Answered[0] || state.Outcomes[0] != OutcomeCorrect {
		t.Error("answer on exercise 0 lost after navigation")
	}
	if v, ok := PendingSelection(state, 1); !ok || v != 0.193 {
		t.Errorf("pending[1] = %v, %v after navigation", v, ok)
	}
}

func TestProgress(t *testing.T) {
	state := testState(t)

	p := BuildProgress(state)
	if p != (Progress{AnsweredCount: 0, Total: 3, Score: 0}) {
		t.Errorf("fresh progress = %+v", p)
	}
	if lines := p.Lines(); lines != nil {
		t.Errorf("Lines before any answer = %v, want none", lines)
	}

	_ = SelectOption(state, 0, 2.0)
	_, _ = HandleAnswer(state)
	Navigate(state, DirNext)
	_ = SelectOption(state, 1, 1.386)
	_, _ = HandleAnswer(state)

	p = BuildProgress(state)
	if p != (Progress{AnsweredCount: 2, Total: 3, Score: 1}) {
		t.Errorf("progress = %+v", p)
	}
	lines := p.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines = %v", lines)
	}
	if lines[0] != "Progress: 2/3 exercises completed" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "Score: 1/2" {
		t.Errorf("lines[1] = %q", lines[1])
	}
	if p.Complete() {
		t.Error("batch should not be complete")
	}
	if got := BuildProgress(nil); got != (Progress{}) {
		t.Errorf("BuildProgress(nil) = %+v", got)
	}
}

func TestBuildSummary(t *testing.T) {
	state := testState(t)

	_ = SelectOption(state, 0, 2.0)
	_, _ = HandleAnswer(state)
	state.CurrentIndex = 2
	_ = SelectOption(state, 2, 0.718)
	_, _ = HandleAnswer(state)

	s := BuildSummary(state)
	if s.Total != 3 || s.Answered != 2 || s.Correct != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.Accuracy != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", s.Accuracy)
	}
	if len(s.PerKind) != 3 {
		t.Fatalf("PerKind = %+v", s.PerKind)
	}
	want := []KindResult{
		{Kind: problemgen.KindPower, Attempted: 1, Correct: 1},
		{Kind: problemgen.KindReciprocal},
		{Kind: problemgen.KindExponential, Attempted: 1},
	}
	for i := range want {
		if s.PerKind[i] != want[i] {
			t.Errorf("PerKind[%d] = %+v, want %+v", i, s.PerKind[i], want[i])
		}
	}
}
