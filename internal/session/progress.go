package session

import "fmt"

// Progress is a snapshot of how far the learner is through a batch.
type Progress struct {
	AnsweredCount int
	Total         int
	Score         int
}

// BuildProgress reads the progress counters from state.
func BuildProgress(state *SessionState) Progress {
	if state == nil {
		return Progress{}
	}
	return Progress{
		AnsweredCount: state.AnsweredCount(),
		Total:         state.Total(),
		Score:         state.Score,
	}
}

// Lines returns the progress text shown under the quiz. It is empty until
// at least one exercise has been answered.
func (p Progress) Lines() []string {
	if p.AnsweredCount == 0 {
		return nil
	}
	return []string{
		fmt.Sprintf("Progress: %d/%d exercises completed", p.AnsweredCount, p.Total),
		fmt.Sprintf("Score: %d/%d", p.Score, p.AnsweredCount),
	}
}

// Complete reports whether every exercise has been answered.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.AnsweredCount == p.Total
}

// Fraction is AnsweredCount/Total, or 0 for an empty batch.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.AnsweredCount) / float64(p.Total)
}
