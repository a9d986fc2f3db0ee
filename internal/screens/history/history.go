package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/screen"
	"github.com/abhisek/integrals/internal/store"
	"github.com/abhisek/integrals/internal/symbolic"
	"github.com/abhisek/integrals/internal/ui/layout"
	"github.com/abhisek/integrals/internal/ui/theme"
)

type historyLoadedMsg struct {
	Batches []store.BatchSummary
	Answers map[string][]store.AnswerEvent // batchID → answers, newest first
	Err     error
}

// HistoryScreen lists the batches played in this run and, on demand, the
// answers given in each.
type HistoryScreen struct {
	eventRepo store.EventRepo
	batches   []store.BatchSummary
	answers   map[string][]store.AnswerEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		batches, err := s.eventRepo.BatchSummaries(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		all, err := s.eventRepo.QueryAnswerEvents(ctx, store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		byBatch := make(map[string][]store.AnswerEvent)
		for _, a := range all {
			byBatch[a.BatchID] = append(byBatch[a.BatchID], a)
		}

		return historyLoadedMsg{Batches: batches, Answers: byBatch}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.batches = msg.Batches
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.batches)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.batches) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No exercises yet. Start a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, batch := range s.batches {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d exercises  %d answered  score %d/%d",
			prefix, batch.Timestamp.Format("15:04:05"), batch.Count,
			batch.Answered, batch.Correct, batch.Answered)

		style := theme.Unselected
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if !s.expanded[i] {
			continue
		}
		answers := s.answers[batch.BatchID]
		if len(answers) == 0 {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("    No answers checked in this batch")))
			b.WriteString("\n")
			continue
		}
		// Oldest first within a batch reads like the quiz did.
		for j := len(answers) - 1; j >= 0; j-- {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderAnswer(answers[j])))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderAnswer(a store.AnswerEvent) string {
	line := fmt.Sprintf("    #%d  %s   chose %s", a.Index+1, a.Statement, symbolic.FormatValue(a.Selected))
	if a.Correct {
		return theme.Correct.Render(line + "  ✓")
	}
	return theme.Incorrect.Render(fmt.Sprintf("%s  ✗ (%s)", line, symbolic.FormatValue(a.CorrectValue)))
}
