package quiz

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/integrals/internal/problemgen"
	ctrl "github.com/abhisek/integrals/internal/quiz"
	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/store"
	"github.com/abhisek/integrals/internal/symbolic"
)

type scriptedGenerator struct {
	exercises []problemgen.Exercise
	calls     int
}

func (g *scriptedGenerator) Generate() problemgen.Exercise {
	ex := g.exercises[g.calls%len(g.exercises)]
	g.calls++
	return ex
}

type brokenOracle struct{}

func (brokenOracle) IntegrateDefinite(symbolic.Expr, int, int) (symbolic.Result, error) {
	return symbolic.Result{}, symbolic.ErrUnsupported
}

func (brokenOracle) Steps(symbolic.Expr, int, int) ([]string, error) {
	return nil, symbolic.ErrUnsupported
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func mustExercise(t *testing.T, kind problemgen.Kind, a, b, n int) problemgen.Exercise {
	t.Helper()
	ex, err := problemgen.NewExercise(kind, a, b, n, nil)
	require.NoError(t, err)
	return ex
}

// testQuizScreen cycles through x^1 on [0,2] (options 2.0, 4.0, 1.0, 3.0)
// and e^x on [0,1] (options 1.718, 2.718, 0.718, 3.436).
func testQuizScreen(t *testing.T, oracle symbolic.Oracle) (*QuizScreen, *store.Store) {
	t.Helper()
	s, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ids := 0
	c := ctrl.New(ctrl.Options{
		Generator: &scriptedGenerator{exercises: []problemgen.Exercise{
			mustExercise(t, problemgen.KindPower, 0, 2, 1),
			mustExercise(t, problemgen.KindExponential, 0, 1, 0),
		}},
		Oracle: oracle,
		Events: s.EventRepo(),
		NewID: func() string {
			ids++
			return []string{"batch-1", "batch-2", "batch-3"}[ids-1]
		},
		Now: func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	})

	scr := New(c, 3, PlotSize{Width: 40, Height: 10})
	scr.Init()
	return scr, s
}

func view(s *QuizScreen) string {
	return ansi.Strip(s.View(100, 60))
}

func TestInit_CreatesBatchFromSlider(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())

	state := s.ctrl.State()
	require.NotNil(t, state)
	assert.Equal(t, 3, state.Total())
	assert.Equal(t, "batch-1", state.ID)

	out := view(s)
	assert.Contains(t, out, "Exercise 1 of 3")
	assert.Contains(t, out, `\int_{0}^{2} x^1 \, dx`)
	assert.NotContains(t, out, "Progress:")
	assert.Empty(t, s.Status())
}

func TestInit_ResumesExistingBatch(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())
	s.Update(keyPress('1'))
	s.Update(keyPress('c'))

	again := New(s.ctrl, 5, PlotSize{})
	again.Init()
	assert.Equal(t, "batch-1", again.ctrl.State().ID)
	assert.Contains(t, view(again), "Correct!")
}

func TestCheck_WithoutSelection(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())

	s.Update(keyPress('c'))
	assert.Equal(t, "Select an option first", s.notice)
	assert.Contains(t, view(s), "Select an option first")
	assert.Equal(t, 0, s.ctrl.Progress().AnsweredCount)

	// The notice clears on the next key.
	s.Update(specialKey(tea.KeyDown))
	assert.Empty(t, s.notice)
}

func TestAnswer_Correct(t *testing.T) {
	s, st := testQuizScreen(t, symbolic.NewKernel())

	s.Update(keyPress('1'))
	assert.Equal(t, 0, s.options.Chosen)
	s.Update(specialKey(tea.KeyEnter))

	out := view(s)
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Progress: 1/3 exercises completed")
	assert.Contains(t, out, "Score: 1/1")
	assert.Equal(t, "Score 1/1", s.Status())
	assert.True(t, s.options.Locked)

	events, err := st.EventRepo().QueryAnswerEvents(t.Context(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Correct)
}

func TestAnswer_WrongShowsCorrectValue(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())

	s.Update(keyPress('l'))
	s.Update(keyPress('2'))
	s.Update(keyPress('c'))

	out := view(s)
	assert.Contains(t, out, "Exercise 2 of 3")
	assert.Contains(t, out, "Wrong. Correct answer: 1.718")
	assert.Equal(t, "Score 0/1", s.Status())
}

func TestAnswer_LockedAfterCheck(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())

	s.Update(keyPress('1'))
	s.Update(keyPress('c'))
	s.Update(keyPress('3'))
	s.Update(keyPress('c'))

	state := s.ctrl.State()
	assert.Equal(t, 2.0, state.Checked[0])
	assert.Equal(t, 1, state.Score)
	assert.Equal(t, 0, s.options.Chosen)
}

func TestCursorMovesSelection(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())

	s.Update(specialKey(tea.KeyDown))
	s.Update(keyPress('j'))
	v, ok := s.ctrl.Pending()
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	s.Update(specialKey(tea.KeyUp))
	v, _ = s.ctrl.Pending()
	assert.Equal(t, 4.0, v)
	assert.Equal(t, 1, s.options.Chosen)
}

func TestNavigation_KeepsSelectionsAndFeedback(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())

	s.Update(keyPress('1'))
	s.Update(keyPress('c'))
	s.Update(specialKey(tea.KeyRight))
	s.Update(keyPress('4'))
	s.Update(specialKey(tea.KeyLeft))

	assert.Contains(t, view(s), "Correct!")
	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, 3, s.options.Chosen)
	assert.False(t, s.options.Locked)

	// Navigation is clamped at both ends.
	s.Update(keyPress('l'))
	s.Update(keyPress('l'))
	assert.Contains(t, view(s), "Exercise 3 of 3")
	for range 5 {
		s.Update(keyPress('h'))
	}
	assert.Contains(t, view(s), "Exercise 1 of 3")
}

func TestSlider_AppliesOnNewBatch(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())
	s.Update(keyPress('1'))
	s.Update(keyPress('c'))

	s.Update(keyPress('+'))
	assert.Equal(t, 4, s.slider.Value)
	assert.Equal(t, 3, s.ctrl.State().Total())

	s.Update(keyPress('n'))
	state := s.ctrl.State()
	assert.Equal(t, "batch-2", state.ID)
	assert.Equal(t, 4, state.Total())
	assert.Equal(t, 0, state.CurrentIndex)
	assert.Equal(t, 0, s.ctrl.Progress().AnsweredCount)
	assert.NotContains(t, view(s), "Correct!")
}

func TestSlider_Clamped(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())
	for range 20 {
		s.Update(keyPress('='))
	}
	assert.Equal(t, 10, s.slider.Value)
	for range 20 {
		s.Update(keyPress('-'))
	}
	assert.Equal(t, 1, s.slider.Value)
}

func TestStepsPane(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())

	s.Update(keyPress('s'))
	assert.Equal(t, paneSteps, s.pane)
	out := view(s)
	assert.Contains(t, out, "Step-by-step solution")
	assert.Len(t, s.steps, 3)

	s.Update(keyPress('s'))
	assert.Equal(t, paneNone, s.pane)
}

func TestPlotPane_ClosesOnNavigate(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())

	s.Update(keyPress('g'))
	assert.Equal(t, panePlot, s.pane)
	assert.Contains(t, view(s), "f(x) = ")

	// Selecting keeps the pane open.
	s.Update(keyPress('2'))
	assert.Equal(t, panePlot, s.pane)

	s.Update(keyPress('l'))
	assert.Equal(t, paneNone, s.pane)
	assert.Empty(t, s.plot)
}

func TestStepsPane_OracleFailure(t *testing.T) {
	s, _ := testQuizScreen(t, brokenOracle{})

	s.Update(keyPress('s'))
	assert.Equal(t, paneNone, s.pane)
	assert.Contains(t, view(s), "Error: ")

	// The quiz itself keeps working.
	s.Update(keyPress('1'))
	s.Update(keyPress('c'))
	assert.Equal(t, 1, s.ctrl.Progress().Score)
}

func TestCompletedBatchShowsSummary(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())

	for i := 0; i < 3; i++ {
		s.Update(keyPress('1'))
		s.Update(keyPress('c'))
		s.Update(keyPress('l'))
	}
	out := view(s)
	assert.Contains(t, out, "Progress: 3/3 exercises completed")
	assert.Contains(t, out, "Batch complete: 3/3")

	_, cmd := s.Update(keyPress('v'))
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Batch Summary", push.Screen.Title())
}

func TestSummaryKeyDisabledUntilComplete(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())
	s.Update(keyPress('1'))
	s.Update(keyPress('c'))

	_, cmd := s.Update(keyPress('v'))
	assert.Nil(t, cmd)
	for _, h := range s.KeyHints() {
		assert.NotEqual(t, "v", h.Key)
	}
}

func TestKeyHints(t *testing.T) {
	s, _ := testQuizScreen(t, symbolic.NewKernel())
	hints := s.KeyHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "Esc", hints[len(hints)-1].Key)
	assert.Equal(t, "Quiz", s.Title())
}
