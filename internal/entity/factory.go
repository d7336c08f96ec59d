package entity

import (
	"fmt"

	"github.com/samdwyer/mageduel/internal/dice"
	"github.com/samdwyer/mageduel/internal/gamedata"
)

// Factory creates the player and the opponents of each encounter.
// It holds no state besides the roster and the random source.
type Factory struct {
	roster   *gamedata.Roster
	registry *gamedata.EnemyRegistry
	rng      dice.Source
}

// NewFactory creates a factory drawing from roster.
func NewFactory(roster *gamedata.Roster, rng dice.Source) *Factory {
	return &Factory{
		roster:   roster,
		registry: gamedata.NewEnemyRegistry(roster.Enemies),
		rng:      rng,
	}
}

// CreatePlayer builds the starting player from the roster.
func (f *Factory) CreatePlayer() (*Player, error) {
	def := f.roster.PlayerSpell()
	if def == nil {
		return nil, fmt.Errorf("player spell %q not in roster", f.roster.Player.Spell)
	}
	spell, err := NewSpellFromDef(def)
	if err != nil {
		return nil, err
	}
	return NewPlayer(f.roster.Player.Title, f.roster.Player.HP, spell, f.rng), nil
}

// RollBoss makes the 1-in-n roll that decides whether the next encounter is
// the boss.
func (f *Factory) RollBoss() bool {
	return f.rng.Intn(f.roster.Boss.OddsOneIn) == 0
}

// CreateEnemy picks a standard enemy uniformly from the roster.
func (f *Factory) CreateEnemy() *Enemy {
	def := f.registry.SpawnRandom(f.rng)
	enemy := NewEnemy(def.Name, def.HP, def.Attack, f.rng)
	enemy.Def = def
	return enemy
}

// CreateBoss builds the boss with its fixed stats.
func (f *Factory) CreateBoss() *Enemy {
	def := &f.roster.Boss.EnemyDef
	boss := NewBoss(def.Name, def.HP, def.Attack, f.rng)
	boss.Def = def
	return boss
}
