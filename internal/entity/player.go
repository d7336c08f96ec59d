package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/mageduel/internal/dice"
	"github.com/samdwyer/mageduel/internal/narration"
)

// LevelUpHitPoints is the HP gained on every level up.
const LevelUpHitPoints = 10

// ErrNotEnoughHP is returned when a spell costs more HP than the player has.
var ErrNotEnoughHP = errors.New("not enough HP to cast")

// Player is the character controlled by the user. It fights only through
// its spell and spends HP to cast it.
type Player struct {
	Vitals
	spell Spell
	rng   dice.Source
}

// NewPlayer creates a player with a single spell for the whole game.
func NewPlayer(title string, hitPoints int, spell Spell, rng dice.Source) *Player {
	return &Player{
		Vitals: newVitals(title, hitPoints),
		spell:  spell,
		rng:    rng,
	}
}

// Spell returns the player's spell.
func (p *Player) Spell() Spell { return p.spell }

// CastSpell spends the spell cost and hits enemy with a rolled amount.
// If the player cannot afford it nothing changes and ErrNotEnoughHP is returned
// along with the refusal line.
func (p *Player) CastSpell(enemy Character) ([]narration.Event, error) {
	cost := p.spell.Cost()
	if cost > p.hitPoints {
		return []narration.Event{{
			Kind:    narration.KindNotEnoughHP,
			Text:    "You do not have enough HP to cast the spell!",
			Subject: p.title,
			Amount:  cost,
		}}, ErrNotEnoughHP
	}

	p.hitPoints -= cost
	events := []narration.Event{{
		Kind:    narration.KindSpellCast,
		Text:    fmt.Sprintf("%s casts %s at a cost of %d HP", p.title, p.spell.Name(), cost),
		Subject: p.title,
		Amount:  cost,
	}}

	damage := p.spell.Damage().Roll(p.rng)
	events = append(events, narration.Event{
		Kind:    narration.KindSpellHit,
		Text:    fmt.Sprintf("The spell hits %s for %d damage", enemy.Title(), damage),
		Subject: enemy.Title(),
		Amount:  damage,
	})
	return append(events, enemy.ReceiveDamage(damage)...), nil
}

// Attack is the plain character attack. The game never calls it for the
// player; offense goes through CastSpell.
func (p *Player) Attack(opponent Character) []narration.Event {
	return rollAttack(&p.Vitals, baseProfile, p.rng, opponent)
}

// Defend rolls the plain character defense.
func (p *Player) Defend() (int, []narration.Event) {
	return rollDefend(&p.Vitals, baseProfile, p.rng)
}

// LevelUp grants LevelUpHitPoints unconditionally.
func (p *Player) LevelUp() []narration.Event {
	p.hitPoints += LevelUpHitPoints
	return []narration.Event{{
		Kind:    narration.KindLevelUp,
		Text:    "Leveling up! Hit points and damage potential increased.",
		Subject: p.title,
		Amount:  LevelUpHitPoints,
	}}
}

// GainHitPoints adds amount to the player's HP.
func (p *Player) GainHitPoints(amount int) []narration.Event {
	p.hitPoints += amount
	return []narration.Event{{
		Kind:    narration.KindGainedHP,
		Text:    fmt.Sprintf("Gained %d hitpoint(s). Current HP: %d", amount, p.hitPoints),
		Subject: p.title,
		Amount:  amount,
	}}
}

// Surrender ends the player's game regardless of HP.
func (p *Player) Surrender() []narration.Event {
	p.alive = false
	return []narration.Event{{
		Kind:    narration.KindSurrender,
		Text:    "You've decided to give up. Your journey ends here.",
		Subject: p.title,
	}}
}

var _ Character = (*Player)(nil)
