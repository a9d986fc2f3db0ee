// Package quiz is the exercise screen: count slider, statement, options,
// answer feedback, step-by-step solution and plot.
package quiz

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	ctrl "github.com/abhisek/integrals/internal/quiz"
	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/screen"
	"github.com/abhisek/integrals/internal/screens/summary"
	sess "github.com/abhisek/integrals/internal/session"
	"github.com/abhisek/integrals/internal/ui/components"
	"github.com/abhisek/integrals/internal/ui/layout"
)

type pane int

const (
	paneNone pane = iota
	paneSteps
	panePlot
)

// PlotSize is the raster size of the plot pane.
type PlotSize struct {
	Width  int
	Height int
}

// QuizScreen drives a quiz.Controller from key presses and renders its state.
type QuizScreen struct {
	ctrl     *ctrl.Controller
	keys     keyMap
	slider   components.Slider
	options  components.OptionList
	plotSize PlotSize

	// shownID and shownIdx identify the exercise the panes belong to.
	shownID  string
	shownIdx int

	pane   pane
	steps  []string
	plot   string
	notice string
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over c. count is the initial slider value and
// the size of the first batch when c has none.
func New(c *ctrl.Controller, count int, plotSize PlotSize) *QuizScreen {
	return &QuizScreen{
		ctrl:     c,
		keys:     defaultKeyMap(),
		slider:   components.NewSlider("Exercises", count, sess.MinExercises, sess.MaxExercises),
		plotSize: plotSize,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if err := s.ctrl.EnsureBatch(context.Background(), s.slider.Value); err != nil {
		s.errMsg = err.Error()
	}
	s.sync()
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return append(layout.HintsFromBindings(s.keys.hints()...), layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Status shows the running score in the header.
func (s *QuizScreen) Status() string {
	p := s.ctrl.Progress()
	if p.AnsweredCount == 0 {
		return ""
	}
	return fmt.Sprintf("Score %d/%d", p.Score, p.AnsweredCount)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	s.notice = ""

	switch {
	case key.Matches(kmsg, s.keys.More):
		s.slider.Inc()
	case key.Matches(kmsg, s.keys.Fewer):
		s.slider.Dec()
	case key.Matches(kmsg, s.keys.New):
		s.newBatch()
	case key.Matches(kmsg, s.keys.Up):
		s.options.MoveUp()
		s.selectCursor()
	case key.Matches(kmsg, s.keys.Down):
		s.options.MoveDown()
		s.selectCursor()
	case key.Matches(kmsg, s.keys.Pick):
		s.options.Cursor = int(kmsg.Code - '1')
		s.selectCursor()
	case key.Matches(kmsg, s.keys.Check):
		s.check()
	case key.Matches(kmsg, s.keys.Steps):
		s.togglePane(paneSteps)
	case key.Matches(kmsg, s.keys.Plot):
		s.togglePane(panePlot)
	case key.Matches(kmsg, s.keys.Prev):
		s.ctrl.Navigate(sess.DirPrev)
		s.sync()
	case key.Matches(kmsg, s.keys.Next):
		s.ctrl.Navigate(sess.DirNext)
		s.sync()
	case key.Matches(kmsg, s.keys.Summary):
		next := summary.New(s.ctrl.Summary())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *QuizScreen) newBatch() {
	if err := s.ctrl.NewBatch(context.Background(), s.slider.Value); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	s.sync()
}

func (s *QuizScreen) selectCursor() {
	state := s.ctrl.State()
	if state == nil || state.Answered[state.CurrentIndex] {
		return
	}
	if err := s.ctrl.SelectOption(s.options.Cursor); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.options.Chosen = s.options.Cursor
}

func (s *QuizScreen) check() {
	_, err := s.ctrl.CheckAnswer(context.Background())
	switch {
	case errors.Is(err, sess.ErrNoSelection):
		s.notice = "Select an option first"
	case err != nil:
		s.errMsg = err.Error()
	}
	s.sync()
}

func (s *QuizScreen) togglePane(p pane) {
	if s.pane == p {
		s.pane = paneNone
		return
	}
	s.errMsg = ""
	switch p {
	case paneSteps:
		lines, err := s.ctrl.ShowSteps()
		if err != nil {
			s.errMsg = err.Error()
			return
		}
		s.steps = lines
	case panePlot:
		pl, err := s.ctrl.ShowPlot(s.plotSize.Width, s.plotSize.Height)
		if err != nil {
			s.errMsg = err.Error()
			return
		}
		s.plot = pl.Render()
	}
	s.pane = p
}

// sync rebuilds the option list from the session and closes the panes
// when a different exercise is now shown.
func (s *QuizScreen) sync() {
	ex, idx, ok := s.ctrl.Current()
	if !ok {
		s.options = components.NewOptionList(nil)
		s.keys.Summary.SetEnabled(false)
		return
	}

	state := s.ctrl.State()
	s.keys.Summary.SetEnabled(s.ctrl.Progress().Complete())
	s.options = components.NewOptionList(ex.Options)
	s.options.Correct = ex.CorrectValue
	if state.Answered[idx] {
		s.options.Locked = true
		s.options.ChooseValue(state.Checked[idx])
	} else if v, ok := s.ctrl.Pending(); ok {
		s.options.ChooseValue(v)
	}

	if state.ID != s.shownID || idx != s.shownIdx {
		s.shownID, s.shownIdx = state.ID, idx
		s.pane = paneNone
		s.steps = nil
		s.plot = ""
	}
}
