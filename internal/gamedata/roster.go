package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidRoster is returned when roster data breaks a game rule.
var ErrInvalidRoster = errors.New("invalid roster")

// PlayerDef defines the player character every session starts with.
type PlayerDef struct {
	Title string `json:"title"` // Display title (e.g., "Novice Mage")
	HP    int    `json:"hp"`    // Starting hit points
	Spell string `json:"spell"` // ID of the single spell the player knows
	Color string `json:"color"` // Hex color code for narration
}

// SpellDef defines a castable spell.
type SpellDef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MinDamage int    `json:"minDamage"`
	MaxDamage int    `json:"maxDamage"`
	Cost      int    `json:"cost"` // HP spent per cast
}

// EnemyDef defines an opponent template.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	HP          int    `json:"hp"`          // Starting hit points
	Attack      int    `json:"attack"`      // Attack power, the upper bound of an attack roll
	Color       string `json:"color"`       // Hex color code (e.g., "#00FF00")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	return colorOrDefault(e.Color)
}

// BossDef defines the boss encounter. OddsOneIn is the n in a 1-in-n chance
// that an encounter is the boss.
type BossDef struct {
	EnemyDef
	OddsOneIn int `json:"oddsOneIn"`
}

// Roster is the full set of characters and spells a session draws from.
type Roster struct {
	Player  PlayerDef  `json:"player"`
	Spells  []SpellDef `json:"spells"`
	Enemies []EnemyDef `json:"enemies"`
	Boss    BossDef    `json:"boss"`
}

// LoadRoster loads and validates the embedded roster.json.
func LoadRoster() (*Roster, error) {
	roster, err := Load[Roster]("roster.json")
	if err != nil {
		return nil, err
	}
	if err := roster.Validate(); err != nil {
		return nil, err
	}
	return &roster, nil
}

// MustLoadRoster loads the roster, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadRoster() *Roster {
	roster, err := LoadRoster()
	if err != nil {
		panic(err)
	}
	return roster
}

// Validate checks the roster against the game rules.
func (r *Roster) Validate() error {
	if r.Player.HP <= 0 {
		return fmt.Errorf("%w: player %q needs positive hp", ErrInvalidRoster, r.Player.Title)
	}
	if r.PlayerSpell() == nil {
		return fmt.Errorf("%w: player spell %q not defined", ErrInvalidRoster, r.Player.Spell)
	}
	for _, s := range r.Spells {
		if s.MinDamage > s.MaxDamage {
			return fmt.Errorf("%w: spell %q has minDamage above maxDamage", ErrInvalidRoster, s.ID)
		}
		if s.Cost < 0 {
			return fmt.Errorf("%w: spell %q has negative cost", ErrInvalidRoster, s.ID)
		}
	}
	if len(r.Enemies) == 0 {
		return fmt.Errorf("%w: no enemies defined", ErrInvalidRoster)
	}
	for _, e := range r.Enemies {
		if err := validateEnemy(e); err != nil {
			return err
		}
		if e.SpawnWeight <= 0 {
			return fmt.Errorf("%w: enemy %q needs positive spawnWeight", ErrInvalidRoster, e.ID)
		}
	}
	if err := validateEnemy(r.Boss.EnemyDef); err != nil {
		return err
	}
	if r.Boss.OddsOneIn <= 0 {
		return fmt.Errorf("%w: boss %q needs positive oddsOneIn", ErrInvalidRoster, r.Boss.ID)
	}
	return nil
}

func validateEnemy(e EnemyDef) error {
	if e.HP <= 0 {
		return fmt.Errorf("%w: enemy %q needs positive hp", ErrInvalidRoster, e.ID)
	}
	if e.Attack <= 0 {
		return fmt.Errorf("%w: enemy %q needs positive attack", ErrInvalidRoster, e.ID)
	}
	return nil
}

// PlayerSpell returns the spell the player starts with, or nil.
func (r *Roster) PlayerSpell() *SpellDef {
	for i := range r.Spells {
		if r.Spells[i].ID == r.Player.Spell {
			return &r.Spells[i]
		}
	}
	return nil
}

// PlayerColor returns the player's narration color.
func (r *Roster) PlayerColor() tcell.Color {
	return colorOrDefault(r.Player.Color)
}
