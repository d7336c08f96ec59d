// Package game provides the duel loop: encounters, combat turns and the end
// of the game.
package game

// State represents where the session is in the encounter cycle.
type State int

const (
	// StateEncounterStart rolls for the boss and spawns the next opponent.
	StateEncounterStart State = iota
	// StateCombat waits for the player's next command.
	StateCombat
	// StateEncounterResolution levels the surviving player up.
	StateEncounterResolution
	// StateGameOver is final; no further commands are accepted.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateEncounterStart:
		return "encounter_start"
	case StateCombat:
		return "combat"
	case StateEncounterResolution:
		return "encounter_resolution"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome records how an encounter ended.
type Outcome int

const (
	OutcomeVictory Outcome = iota
	OutcomeFled
	OutcomeDefeat
	OutcomeSurrender
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeFled:
		return "fled"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeSurrender:
		return "surrender"
	default:
		return "unknown"
	}
}
