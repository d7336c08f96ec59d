package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mageduel/internal/dice"
	"github.com/samdwyer/mageduel/internal/gamedata"
	"github.com/samdwyer/mageduel/internal/narration"
)

// Rank separates standard enemies from the boss.
type Rank int

const (
	RankStandard Rank = iota
	RankBoss
)

// String returns the rank name.
func (r Rank) String() string {
	switch r {
	case RankStandard:
		return "standard"
	case RankBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// bossProfile overrides both rolls and announces nothing on defend.
var bossProfile = profile{
	attack: dice.Range{Min: 5, Max: 14},
	defend: dice.Range{Min: 3, Max: 7},
	attackText: func(attacker, _ string, damage int) string {
		return fmt.Sprintf("%s unleashes a powerful attack for %d damage!", attacker, damage)
	},
}

// Enemy is a hostile character. A boss is an enemy with a stronger profile
// that cannot be fled from.
type Enemy struct {
	Vitals
	Def         *gamedata.EnemyDef // Template the enemy was spawned from (nil if built directly)
	attackPower int
	rank        Rank
	profile     profile
	rng         dice.Source
}

// NewEnemy creates a standard enemy. Its attack rolls 1..attackPower.
func NewEnemy(title string, hitPoints, attackPower int, rng dice.Source) *Enemy {
	return &Enemy{
		Vitals:      newVitals(title, hitPoints),
		attackPower: attackPower,
		rank:        RankStandard,
		profile: profile{
			attack: dice.Range{Min: 1, Max: attackPower},
			defend: baseProfile.defend,
			attackText: func(attacker, target string, damage int) string {
				return fmt.Sprintf("%s attacks %s for %d damage", attacker, target, damage)
			},
			announceDefend: true,
		},
		rng: rng,
	}
}

// NewBoss creates a boss. attackPower is kept for its shape only; boss
// attacks always roll 5..14.
func NewBoss(title string, hitPoints, attackPower int, rng dice.Source) *Enemy {
	return &Enemy{
		Vitals:      newVitals(title, hitPoints),
		attackPower: attackPower,
		rank:        RankBoss,
		profile:     bossProfile,
		rng:         rng,
	}
}

// AttackPower returns the enemy's attack parameter.
func (e *Enemy) AttackPower() int { return e.attackPower }

// Rank returns whether this is a standard enemy or the boss.
func (e *Enemy) Rank() Rank { return e.rank }

// IsBoss reports whether the enemy is a boss.
func (e *Enemy) IsBoss() bool { return e.rank == RankBoss }

// CanBeFled reports whether the player may run from this enemy.
func (e *Enemy) CanBeFled() bool { return e.rank != RankBoss }

// AttackRange returns the inclusive damage range of the enemy's attacks.
func (e *Enemy) AttackRange() dice.Range { return e.profile.attack }

// Color returns the narration color from the enemy's template.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorDefault
}

// Attack rolls damage by rank and applies it to opponent.
func (e *Enemy) Attack(opponent Character) []narration.Event {
	return rollAttack(&e.Vitals, e.profile, e.rng, opponent)
}

// Defend rolls a defensive value. Standard enemies announce it.
func (e *Enemy) Defend() (int, []narration.Event) {
	return rollDefend(&e.Vitals, e.profile, e.rng)
}

var _ Character = (*Enemy)(nil)
