// Package home is the start screen: banner, mascot, batch stats and the
// main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/screen"
	"github.com/abhisek/integrals/internal/screens/history"
	"github.com/abhisek/integrals/internal/screens/placeholder"
	"github.com/abhisek/integrals/internal/screens/theory"
	sess "github.com/abhisek/integrals/internal/session"
	"github.com/abhisek/integrals/internal/store"
	"github.com/abhisek/integrals/internal/ui/components"
	"github.com/abhisek/integrals/internal/ui/layout"
)

// Menu labels in display order.
const (
	LabelStart   = "START QUIZ"
	LabelTheory  = "THEORY"
	LabelHistory = "HISTORY"
	LabelExit    = "EXIT"
)

// Deps are the collaborators the home menu opens screens with. Any field
// may be nil; the matching entry then opens a placeholder.
type Deps struct {
	// NewQuiz returns the quiz screen. It is called on every START QUIZ.
	NewQuiz func() screen.Screen

	// Progress reports the current batch for the stats bar.
	Progress func() sess.Progress

	Events store.EventRepo
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu     components.Menu
	progress func() sess.Progress
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	push := func(s screen.Screen) tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}

	items := []components.MenuItem{
		{Label: LabelStart, Action: func() tea.Cmd {
			if deps.NewQuiz == nil {
				return push(placeholder.New("Quiz", "The quiz is not available."))
			}
			return push(deps.NewQuiz())
		}},
		{Label: LabelTheory, Action: func() tea.Cmd {
			return push(theory.New(deps.NewQuiz))
		}},
		{Label: LabelHistory, Action: func() tea.Cmd {
			if deps.Events == nil {
				return push(placeholder.New("History", "No attempt log in this run."))
			}
			return push(history.New(deps.Events))
		}},
		{Label: LabelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		progress: deps.Progress,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	keys := h.menu.Keys
	return append(layout.HintsFromBindings(keys.Up, keys.Select),
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var p sess.Progress
	if h.progress != nil {
		p = h.progress()
	}

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(MascotFor(p), cw))
	}
	sections = append(sections, renderStatsBar(p, cw, compact))

	labels := h.menu.Labels()
	if termHeight < 24 {
		sections = append(sections, renderMenuCompact(labels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(labels, h.menu.Selected, cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}
