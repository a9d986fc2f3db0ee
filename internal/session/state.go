package session

import (
	"time"

	"github.com/abhisek/integrals/internal/problemgen"
)

// Batch size limits.
const (
	MinExercises     = 1
	MaxExercises     = 10
	DefaultExercises = 3
)

// Outcome is the recorded result of checking one exercise.
type Outcome int

const (
	OutcomeUnanswered Outcome = iota // Not yet checked
	OutcomeCorrect                   // Selected value matched
	OutcomeIncorrect                 // Selected value did not match
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	}
	return "unanswered"
}

// SessionState tracks one batch of exercises. It is replaced wholesale when
// a new batch is requested and mutated in place otherwise.
type SessionState struct {
	// ID is the UUID of this batch.
	ID string

	// CreatedAt is when the batch was generated.
	CreatedAt time.Time

	// Exercises is the fixed, ordered batch.
	Exercises []problemgen.Exercise

	// Answered marks exercises whose answer has been checked and locked.
	Answered []bool

	// Outcomes records the result of each checked exercise.
	Outcomes []Outcome

	// Checked holds the value that was checked for each answered exercise.
	Checked []float64

	// Pending holds the selection made for each exercise that has not been
	// checked yet, keyed by exercise index.
	Pending map[int]float64

	// Score is the number of exercises answered correctly.
	Score int

	// CurrentIndex is the exercise being displayed.
	CurrentIndex int
}

// NewSessionState creates a state for exercises with nothing answered.
func NewSessionState(id string, exercises []problemgen.Exercise, now time.Time) *SessionState {
	return &SessionState{
		ID:        id,
		CreatedAt: now,
		Exercises: exercises,
		Answered:  make([]bool, len(exercises)),
		Outcomes:  make([]Outcome, len(exercises)),
		Checked:   make([]float64, len(exercises)),
		Pending:   make(map[int]float64),
	}
}

// Total returns the number of exercises in the batch.
func (s *SessionState) Total() int {
	return len(s.Exercises)
}

// AnsweredCount returns how many exercises have been checked.
func (s *SessionState) AnsweredCount() int {
	n := 0
	for _, a := range s.Answered {
		if a {
			n++
		}
	}
	return n
}
