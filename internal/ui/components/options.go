package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/integrals/internal/symbolic"
	"github.com/abhisek/integrals/internal/ui/theme"
)

// OptionList renders the four answer options of an exercise. The cursor
// marks the highlighted row; Chosen marks the pending or checked value.
type OptionList struct {
	Options []float64
	Cursor  int

	// Chosen is the index of the selected option, or -1.
	Chosen int

	// Locked is set once the answer has been checked; the correct option
	// is then highlighted and the cursor hidden.
	Locked  bool
	Correct float64
}

// NewOptionList creates a list with the cursor on the first option and
// nothing chosen.
func NewOptionList(options []float64) OptionList {
	return OptionList{Options: options, Chosen: -1}
}

// MoveUp moves the cursor up, stopping at the first option.
func (o *OptionList) MoveUp() {
	if o.Cursor > 0 {
		o.Cursor--
	}
}

// MoveDown moves the cursor down, stopping at the last option.
func (o *OptionList) MoveDown() {
	if o.Cursor < len(o.Options)-1 {
		o.Cursor++
	}
}

// ChooseValue marks the first option equal to v as chosen and moves the
// cursor onto it.
func (o *OptionList) ChooseValue(v float64) {
	for i, opt := range o.Options {
		if opt == v {
			o.Chosen = i
			o.Cursor = i
			return
		}
	}
}

// View renders the options, one per line.
func (o OptionList) View() string {
	lines := make([]string, 0, len(o.Options))
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}
		mark := "( )"
		if i == o.Chosen {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%d. %s %s", prefix, i+1, mark, symbolic.FormatValue(opt))

		switch {
		case o.Locked && opt == o.Correct:
			line = theme.Correct.Render(line + "  ✓")
		case o.Locked && i == o.Chosen:
			line = theme.Incorrect.Render(line + "  ✗")
		case o.Locked:
			line = theme.Hint.Render(line)
		case i == o.Cursor:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
