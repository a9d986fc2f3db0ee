package home

import (
	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/integrals/internal/session"
	"github.com/abhisek/integrals/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no batch or nothing answered
	MascotThinking                         // batch in progress
	MascotCelebrating                      // batch finished without a miss
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ∫dx │
└─────┘`

const mascotThinking = `┌─────┐
│ ◔ ◔ │ ?
│  ─  │
│ ∫dx │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ∫dx │
└─╥═╥─┘
  ╚═╝`

// MascotFor picks the variant for the batch progress p.
func MascotFor(p sess.Progress) MascotVariant {
	switch {
	case p.Complete() && p.Score == p.Total:
		return MascotCelebrating
	case p.AnsweredCount > 0:
		return MascotThinking
	}
	return MascotIdle
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotThinking:
		art = mascotThinking
		fg = theme.Secondary
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
