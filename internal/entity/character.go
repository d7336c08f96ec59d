// Package entity provides the combatants of a duel: the player, standard
// enemies and the boss.
package entity

import (
	"fmt"

	"github.com/samdwyer/mageduel/internal/dice"
	"github.com/samdwyer/mageduel/internal/narration"
)

// Character is the capability set shared by every combatant.
type Character interface {
	Title() string
	HitPoints() int
	IsAlive() bool

	// ReceiveDamage subtracts amount from hit points.
	ReceiveDamage(amount int) []narration.Event
	// Attack rolls damage and applies it to opponent.
	Attack(opponent Character) []narration.Event
	// Defend rolls a defensive value. Nothing in combat consumes it yet.
	Defend() (int, []narration.Event)
}

// Vitals is the state every character carries.
// alive only changes through damage or surrender, never through spending HP.
type Vitals struct {
	title     string
	hitPoints int
	alive     bool
}

func newVitals(title string, hitPoints int) Vitals {
	return Vitals{
		title:     title,
		hitPoints: hitPoints,
		alive:     true,
	}
}

// Title returns the character's display title.
func (v *Vitals) Title() string { return v.title }

// HitPoints returns current HP. It may be zero or negative.
func (v *Vitals) HitPoints() int { return v.hitPoints }

// IsAlive reports whether the character is still in the fight.
func (v *Vitals) IsAlive() bool { return v.alive }

// ReceiveDamage subtracts amount from HP without flooring at zero.
// Once HP is at or below zero the character is dead for good.
func (v *Vitals) ReceiveDamage(amount int) []narration.Event {
	v.hitPoints -= amount
	if v.hitPoints > 0 {
		return nil
	}
	v.alive = false
	return []narration.Event{{
		Kind:    narration.KindDefeated,
		Text:    v.title + " has been defeated!",
		Subject: v.title,
	}}
}

// profile is the per-variant roll policy for attack and defend.
type profile struct {
	attack dice.Range
	defend dice.Range
	// attackText renders the attack line.
	attackText func(attacker, target string, damage int) string
	// announceDefend emits a line when the character defends.
	announceDefend bool
}

// baseProfile is what a plain character rolls.
var baseProfile = profile{
	attack: dice.Range{Min: 1, Max: 5},
	defend: dice.Range{Min: 1, Max: 3},
	attackText: func(attacker, target string, damage int) string {
		return fmt.Sprintf("%s deals %d damage to %s", attacker, damage, target)
	},
}

func rollAttack(v *Vitals, p profile, rng dice.Source, opponent Character) []narration.Event {
	damage := p.attack.Roll(rng)
	events := []narration.Event{{
		Kind:    narration.KindAttack,
		Text:    p.attackText(v.title, opponent.Title(), damage),
		Subject: v.title,
		Amount:  damage,
	}}
	return append(events, opponent.ReceiveDamage(damage)...)
}

func rollDefend(v *Vitals, p profile, rng dice.Source) (int, []narration.Event) {
	defense := p.defend.Roll(rng)
	if !p.announceDefend {
		return defense, nil
	}
	return defense, []narration.Event{{
		Kind:    narration.KindDefend,
		Text:    fmt.Sprintf("%s defends and mitigates %d damage", v.title, defense),
		Subject: v.title,
		Amount:  defense,
	}}
}
