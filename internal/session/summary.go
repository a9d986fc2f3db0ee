package session

import "github.com/abhisek/integrals/internal/problemgen"

// KindResult tracks per-formula performance within a batch.
type KindResult struct {
	Kind      problemgen.Kind
	Attempted int
	Correct   int
}

// Summary holds the data shown once a batch is finished.
type Summary struct {
	Total    int
	Answered int
	Correct  int
	Accuracy float64
	PerKind  []KindResult
}

// BuildSummary creates a Summary from the current session state. PerKind
// lists only the kinds that appear in the batch, in problemgen.Kinds order.
func BuildSummary(state *SessionState) *Summary {
	byKind := make(map[problemgen.Kind]*KindResult)
	for i, ex := range state.Exercises {
		kr, ok := byKind[ex.Kind]
		if !ok {
			kr = &KindResult{Kind: ex.Kind}
			byKind[ex.Kind] = kr
		}
		if !state.Answered[i] {
			continue
		}
		kr.Attempted++
		if state.Outcomes[i] == OutcomeCorrect {
			kr.Correct++
		}
	}

	var results []KindResult
	for _, k := range problemgen.Kinds {
		if kr, ok := byKind[k]; ok {
			results = append(results, *kr)
		}
	}

	answered := state.AnsweredCount()
	var accuracy float64
	if answered > 0 {
		accuracy = float64(state.Score) / float64(answered)
	}

	return &Summary{
		Total:    state.Total(),
		Answered: answered,
		Correct:  state.Score,
		Accuracy: accuracy,
		PerKind:  results,
	}
}
