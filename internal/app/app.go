// Package app is the root Bubble Tea model: a router of screens framed by
// a header and a footer.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/integrals/internal/quiz"
	"github.com/abhisek/integrals/internal/router"
	"github.com/abhisek/integrals/internal/screen"
	"github.com/abhisek/integrals/internal/screens/home"
	quizscreen "github.com/abhisek/integrals/internal/screens/quiz"
	"github.com/abhisek/integrals/internal/store"
	"github.com/abhisek/integrals/internal/ui/layout"
)

// Options holds what the TUI needs from the command that starts it.
type Options struct {
	Controller *quiz.Controller
	Events     store.EventRepo

	// Count is the initial exercise count on the quiz slider.
	Count int

	Plot quizscreen.PlotSize
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen. The quiz screen
// is built once so leaving and re-entering it resumes the same batch.
func newAppModel(opts Options) AppModel {
	var newQuiz func() screen.Screen
	if opts.Controller != nil {
		qs := quizscreen.New(opts.Controller, opts.Count, opts.Plot)
		newQuiz = func() screen.Screen { return qs }
	}

	deps := home.Deps{
		NewQuiz: newQuiz,
		Events:  opts.Events,
	}
	if opts.Controller != nil {
		deps.Progress = opts.Controller.Progress
	}

	return AppModel{
		router: router.New(home.New(deps)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
