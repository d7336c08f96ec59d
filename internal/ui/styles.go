package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mageduel/internal/narration"
)

// styleFor returns the base style of an event kind.
func styleFor(kind narration.Kind) tcell.Style {
	base := tcell.StyleDefault
	switch kind {
	case narration.KindWelcome, narration.KindEncounter:
		return base.Foreground(tcell.ColorYellow).Bold(true)
	case narration.KindPrompt:
		return base.Foreground(tcell.ColorGray)
	case narration.KindSpellCast, narration.KindSpellHit:
		return base.Foreground(tcell.ColorOrangeRed)
	case narration.KindAttack:
		return base.Foreground(tcell.ColorRed)
	case narration.KindDefend:
		return base.Foreground(tcell.ColorSteelBlue)
	case narration.KindDefeated, narration.KindGameOver:
		return base.Foreground(tcell.ColorRed).Bold(true)
	case narration.KindNotEnoughHP, narration.KindCannotFlee, narration.KindInvalidCommand:
		return base.Foreground(tcell.ColorDarkGray).Dim(true)
	case narration.KindGainedHP, narration.KindLevelUp, narration.KindStronger:
		return base.Foreground(tcell.ColorGreen)
	case narration.KindFled, narration.KindGiveUp, narration.KindSurrender:
		return base.Foreground(tcell.ColorSilver)
	default:
		return base
	}
}

// tintable reports whether a kind takes its subject's color.
func tintable(kind narration.Kind) bool {
	switch kind {
	case narration.KindPlayerIntro, narration.KindEncounter, narration.KindPlayerHP,
		narration.KindOpponentHP, narration.KindAttack, narration.KindDefend:
		return true
	default:
		return false
	}
}
