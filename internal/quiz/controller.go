// Package quiz wires a session to the exercise generator, the symbolic and
// plotting oracles, and the attempt log. Each method handles one user event
// to completion; presentation code reads the state back afterwards.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/integrals/internal/plot"
	"github.com/abhisek/integrals/internal/problemgen"
	"github.com/abhisek/integrals/internal/session"
	"github.com/abhisek/integrals/internal/store"
	"github.com/abhisek/integrals/internal/symbolic"
)

// ErrNoBatch is returned by operations that need an exercise before any
// batch has been generated.
var ErrNoBatch = errors.New("no exercise batch")

// Options configures a Controller. Generator and Oracle are required.
type Options struct {
	Generator problemgen.Generator
	Oracle    symbolic.Oracle

	// Sampler evaluates integrands for plots. Defaults to plot.PointSampler.
	Sampler plot.Sampler

	// Events records batches and answers. Nil disables the attempt log.
	Events store.EventRepo

	// PlotSamples overrides plot.DefaultSamples when positive.
	PlotSamples int

	// NewID returns batch IDs. Defaults to uuid.NewString.
	NewID func() string

	// Now defaults to time.Now.
	Now func() time.Time
}

// Controller handles quiz events for one session at a time.
type Controller struct {
	gen     problemgen.Generator
	oracle  symbolic.Oracle
	sampler plot.Sampler
	events  store.EventRepo
	samples int
	newID   func() string
	now     func() time.Time

	state *session.SessionState
}

// New creates a Controller with no batch.
func New(opts Options) *Controller {
	c := &Controller{
		gen:     opts.Generator,
		oracle:  opts.Oracle,
		sampler: opts.Sampler,
		events:  opts.Events,
		samples: opts.PlotSamples,
		newID:   opts.NewID,
		now:     opts.Now,
	}
	if c.sampler == nil {
		c.sampler = plot.PointSampler{}
	}
	if c.samples <= 0 {
		c.samples = plot.DefaultSamples
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// NewBatch replaces the session with count freshly generated exercises.
// On error the current session is left untouched.
func (c *Controller) NewBatch(ctx context.Context, count int) error {
	exercises, err := session.GenerateBatch(c.gen, count)
	if err != nil {
		return err
	}

	c.state = session.NewSessionState(c.newID(), exercises, c.now())
	logrus.WithFields(logrus.Fields{
		"batch": c.state.ID,
		"count": count,
	}).Debug("new exercise batch")

	if c.events != nil {
		err := c.events.AppendBatchEvent(ctx, store.BatchEventData{
			BatchID: c.state.ID,
			Count:   count,
		})
		if err != nil {
			logrus.WithError(err).Warn("record batch event")
		}
	}
	return nil
}

// EnsureBatch generates a batch of count exercises if none exists yet.
func (c *Controller) EnsureBatch(ctx context.Context, count int) error {
	if c.state != nil {
		return nil
	}
	return c.NewBatch(ctx, count)
}

// Select records value as the pending choice for exercise index.
func (c *Controller) Select(index int, value float64) error {
	if c.state == nil {
		return ErrNoBatch
	}
	return session.SelectOption(c.state, index, value)
}

// SelectOption selects option i of the current exercise.
func (c *Controller) SelectOption(i int) error {
	ex, idx, ok := c.Current()
	if !ok {
		return ErrNoBatch
	}
	if i < 0 || i >= len(ex.Options) {
		return fmt.Errorf("option %d of %d: %w", i, len(ex.Options), session.ErrIndexOutOfRange)
	}
	return session.SelectOption(c.state, idx, ex.Options[i])
}

// Pending returns the pending choice for the current exercise.
func (c *Controller) Pending() (float64, bool) {
	if c.state == nil {
		return 0, false
	}
	return session.PendingSelection(c.state, c.state.CurrentIndex)
}

// CheckAnswer checks the pending choice for the current exercise. Only the
// first check of an exercise is scored and recorded.
func (c *Controller) CheckAnswer(ctx context.Context) (session.Result, error) {
	if c.state == nil {
		return session.Result{}, ErrNoBatch
	}
	res, err := session.HandleAnswer(c.state)
	if err != nil {
		return res, err
	}
	if !res.Applied {
		return res, nil
	}

	ex := c.state.Exercises[res.Index]
	logrus.WithFields(logrus.Fields{
		"batch":    c.state.ID,
		"index":    res.Index,
		"kind":     ex.Kind.String(),
		"selected": res.Selected,
		"correct":  res.CorrectValue,
		"outcome":  res.Outcome.String(),
		"score":    c.state.Score,
		"answered": c.state.AnsweredCount(),
	}).Info("answer checked")

	if c.events != nil {
		err := c.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			BatchID:      c.state.ID,
			Index:        res.Index,
			Kind:         ex.Kind.String(),
			Statement:    ex.Statement,
			Selected:     res.Selected,
			CorrectValue: res.CorrectValue,
			Correct:      res.Correct(),
		})
		if err != nil {
			logrus.WithError(err).Warn("record answer event")
		}
	}
	return res, nil
}

// ShowSteps returns the derivation lines for the current exercise.
func (c *Controller) ShowSteps() ([]string, error) {
	ex, _, ok := c.Current()
	if !ok {
		return nil, ErrNoBatch
	}
	lines, err := c.oracle.Steps(ex.Expr, ex.Lower, ex.Upper)
	if err != nil {
		logrus.WithError(err).WithField("statement", ex.Statement).Error("symbolic steps")
		return nil, fmt.Errorf("steps for %s: %w", ex.Statement, err)
	}
	return lines, nil
}

// ShowPlot samples the current integrand over [a-1, b+1] with [a, b] shaded.
func (c *Controller) ShowPlot(width, height int) (*plot.Plot, error) {
	ex, _, ok := c.Current()
	if !ok {
		return nil, ErrNoBatch
	}
	p, err := plot.New(plot.Spec{
		Expr:    ex.Expr,
		Lower:   ex.Lower,
		Upper:   ex.Upper,
		Samples: c.samples,
		Width:   width,
		Height:  height,
	}, c.sampler)
	if err != nil {
		logrus.WithError(err).WithField("statement", ex.Statement).Error("plot")
		return nil, fmt.Errorf("plot for %s: %w", ex.Statement, err)
	}
	return p, nil
}

// Navigate moves between exercises; it never fails.
func (c *Controller) Navigate(dir session.Direction) {
	if c.state == nil {
		return
	}
	session.Navigate(c.state, dir)
}

// Progress reports answered/total/score for the current batch.
func (c *Controller) Progress() session.Progress {
	return session.BuildProgress(c.state)
}

// Summary reports per-formula results for the current batch, or nil when
// there is none.
func (c *Controller) Summary() *session.Summary {
	if c.state == nil {
		return nil
	}
	return session.BuildSummary(c.state)
}

// Current returns the displayed exercise and its index.
func (c *Controller) Current() (problemgen.Exercise, int, bool) {
	ex, ok := session.CurrentExercise(c.state)
	if !ok {
		return problemgen.Exercise{}, 0, false
	}
	return *ex, c.state.CurrentIndex, true
}

// State exposes the session for rendering. It is nil before the first batch.
func (c *Controller) State() *session.SessionState {
	return c.state
}
