package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/integrals/internal/problemgen"
)

var (
	// ErrInvalidCount is returned for batch sizes outside [MinExercises, MaxExercises].
	ErrInvalidCount = errors.New("invalid exercise count")

	// ErrNoSelection is returned when checking an exercise with no option selected.
	ErrNoSelection = errors.New("no option selected")

	// ErrIndexOutOfRange is returned for an exercise index outside the batch.
	ErrIndexOutOfRange = errors.New("exercise index out of range")
)

// Direction is a navigation step between exercises.
type Direction int

const (
	DirPrev Direction = iota
	DirNext
)

func (d Direction) String() string {
	if d == DirPrev {
		return "prev"
	}
	return "next"
}

// Result is returned by HandleAnswer.
type Result struct {
	// Index is the exercise that was checked.
	Index int

	// Outcome is the recorded outcome for the exercise.
	Outcome Outcome

	// CorrectValue is the exercise's correct option.
	CorrectValue float64

	// Selected is the value that was checked.
	Selected float64

	// Applied is false when the exercise was already answered and nothing
	// changed.
	Applied bool
}

// Correct reports whether the recorded outcome is correct.
func (r Result) Correct() bool {
	return r.Outcome == OutcomeCorrect
}

// ValidateCount checks a requested batch size.
func ValidateCount(count int) error {
	if count < MinExercises || count > MaxExercises {
		return fmt.Errorf("count %d not in [%d, %d]: %w", count, MinExercises, MaxExercises, ErrInvalidCount)
	}
	return nil
}

// ClampCount forces count into [MinExercises, MaxExercises].
func ClampCount(count int) int {
	return min(max(count, MinExercises), MaxExercises)
}

// GenerateBatch draws count exercises from gen, in order.
func GenerateBatch(gen problemgen.Generator, count int) ([]problemgen.Exercise, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}
	exercises := make([]problemgen.Exercise, count)
	for i := range exercises {
		exercises[i] = gen.Generate()
	}
	return exercises, nil
}

// SelectOption records value as the pending choice for exercise index.
// Selecting on an answered exercise is ignored.
func SelectOption(state *SessionState, index int, value float64) error {
	if index < 0 || index >= state.Total() {
		return fmt.Errorf("select %d of %d: %w", index, state.Total(), ErrIndexOutOfRange)
	}
	if state.Answered[index] {
		return nil
	}
	state.Pending[index] = value
	return nil
}

// PendingSelection returns the pending choice for exercise index.
func PendingSelection(state *SessionState, index int) (float64, bool) {
	v, ok := state.Pending[index]
	return v, ok
}

// HandleAnswer checks the pending choice for the current exercise. The first
// check locks the exercise and updates the score; later checks return the
// recorded outcome with Applied set to false.
func HandleAnswer(state *SessionState) (Result, error) {
	i := state.CurrentIndex
	ex, ok := CurrentExercise(state)
	if !ok {
		return Result{}, fmt.Errorf("check %d of %d: %w", i, state.Total(), ErrIndexOutOfRange)
	}

	if state.Answered[i] {
		return Result{
			Index:        i,
			Outcome:      state.Outcomes[i],
			CorrectValue: ex.CorrectValue,
			Selected:     state.Checked[i],
		}, nil
	}

	selected, ok := state.Pending[i]
	if !ok {
		return Result{}, ErrNoSelection
	}

	outcome := OutcomeIncorrect
	if problemgen.CheckAnswer(selected, ex) {
		outcome = OutcomeCorrect
		state.Score++
	}
	state.Answered[i] = true
	state.Outcomes[i] = outcome
	state.Checked[i] = selected
	delete(state.Pending, i)

	return Result{
		Index:        i,
		Outcome:      outcome,
		CorrectValue: ex.CorrectValue,
		Selected:     selected,
		Applied:      true,
	}, nil
}

// Navigate moves to the previous or next exercise, clamped to the batch.
func Navigate(state *SessionState, dir Direction) {
	switch dir {
	case DirPrev:
		if state.CurrentIndex > 0 {
			state.CurrentIndex--
		}
	case DirNext:
		if state.CurrentIndex < state.Total()-1 {
			state.CurrentIndex++
		}
	}
}

// CurrentExercise returns the exercise at CurrentIndex.
func CurrentExercise(state *SessionState) (*problemgen.Exercise, bool) {
	if state == nil || state.CurrentIndex < 0 || state.CurrentIndex >= state.Total() {
		return nil, false
	}
	return &state.Exercises[state.CurrentIndex], true
}
