package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/integrals/internal/ui/theme"
)

// Slider picks an integer in [Min, Max].
type Slider struct {
	Label string
	Value int
	Min   int
	Max   int
}

// NewSlider creates a slider with value clamped into [lo, hi].
func NewSlider(label string, value, lo, hi int) Slider {
	s := Slider{Label: label, Min: lo, Max: hi}
	s.Set(value)
	return s
}

// Set assigns v, clamped to the slider range.
func (s *Slider) Set(v int) {
	s.Value = min(max(v, s.Min), s.Max)
}

// Inc increases the value by one, stopping at Max.
func (s *Slider) Inc() { s.Set(s.Value + 1) }

// Dec decreases the value by one, stopping at Min.
func (s *Slider) Dec() { s.Set(s.Value - 1) }

// View renders "Label  1 ━━━●──── 10  3".
func (s Slider) View() string {
	var track strings.Builder
	for v := s.Min; v <= s.Max; v++ {
		switch {
		case v == s.Value:
			track.WriteString(theme.Selected.Render("●"))
		case v < s.Value:
			track.WriteString(theme.Info.Render("━"))
		default:
			track.WriteString(theme.Hint.Render("─"))
		}
	}
	return fmt.Sprintf("%s  %s %s %s  %s",
		theme.Body.Render(s.Label),
		theme.Hint.Render(fmt.Sprint(s.Min)),
		track.String(),
		theme.Hint.Render(fmt.Sprint(s.Max)),
		theme.Selected.Render(fmt.Sprint(s.Value)),
	)
}
