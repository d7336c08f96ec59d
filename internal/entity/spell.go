package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/mageduel/internal/dice"
	"github.com/samdwyer/mageduel/internal/gamedata"
)

// ErrInvalidSpell is returned when spell bounds are violated.
var ErrInvalidSpell = errors.New("invalid spell")

// Spell is an immutable castable ability.
type Spell struct {
	name   string
	damage dice.Range
	cost   int
}

// NewSpell creates a spell. minDamage must not exceed maxDamage and cost
// must not be negative.
func NewSpell(name string, minDamage, maxDamage, cost int) (Spell, error) {
	damage := dice.Range{Min: minDamage, Max: maxDamage}
	if err := damage.Validate(); err != nil {
		return Spell{}, fmt.Errorf("%w %q: %w", ErrInvalidSpell, name, err)
	}
	if cost < 0 {
		return Spell{}, fmt.Errorf("%w %q: negative cost %d", ErrInvalidSpell, name, cost)
	}
	return Spell{name: name, damage: damage, cost: cost}, nil
}

// NewSpellFromDef creates a spell from a roster definition.
func NewSpellFromDef(def *gamedata.SpellDef) (Spell, error) {
	return NewSpell(def.Name, def.MinDamage, def.MaxDamage, def.Cost)
}

// Name returns the spell name.
func (s Spell) Name() string { return s.name }

// Cost returns the HP spent per cast.
func (s Spell) Cost() int { return s.cost }

// Damage returns the inclusive damage range.
func (s Spell) Damage() dice.Range { return s.damage }
