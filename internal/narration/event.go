// Package narration defines the message events produced by every state
// change in a duel. Producers return events; sinks decide how to show them.
package narration

// Kind identifies what an event reports.
type Kind int

const (
	KindWelcome Kind = iota
	KindPlayerIntro
	KindEncounter
	KindPlayerHP
	KindOpponentHP
	KindPrompt
	KindSpellCast
	KindSpellHit
	KindNotEnoughHP
	KindAttack
	KindDefend
	KindDefeated
	KindCannotFlee
	KindFled
	KindGainedHP
	KindGiveUp
	KindSurrender
	KindInvalidCommand
	KindStronger
	KindLevelUp
	KindGameOver
)

// String returns a stable identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindWelcome:
		return "welcome"
	case KindPlayerIntro:
		return "player_intro"
	case KindEncounter:
		return "encounter"
	case KindPlayerHP:
		return "player_hp"
	case KindOpponentHP:
		return "opponent_hp"
	case KindPrompt:
		return "prompt"
	case KindSpellCast:
		return "spell_cast"
	case KindSpellHit:
		return "spell_hit"
	case KindNotEnoughHP:
		return "not_enough_hp"
	case KindAttack:
		return "attack"
	case KindDefend:
		return "defend"
	case KindDefeated:
		return "defeated"
	case KindCannotFlee:
		return "cannot_flee"
	case KindFled:
		return "fled"
	case KindGainedHP:
		return "gained_hp"
	case KindGiveUp:
		return "give_up"
	case KindSurrender:
		return "surrender"
	case KindInvalidCommand:
		return "invalid_command"
	case KindStronger:
		return "stronger"
	case KindLevelUp:
		return "level_up"
	case KindGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one user-visible line.
type Event struct {
	Kind    Kind
	Text    string // Rendered line, without trailing newline
	Subject string // Title of the character the line is about, if any
	Amount  int    // Damage, cost or HP figure carried by the line
}

// Sink receives events in the order they happen.
type Sink interface {
	Emit(Event)
}

// Emit delivers events to sink in order.
func Emit(sink Sink, events ...Event) {
	for _, e := range events {
		sink.Emit(e)
	}
}

// Recorder is a Sink that keeps every event. Useful for tests and replays.
type Recorder struct {
	Events []Event
}

// Emit appends e.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Kinds returns the kinds of every recorded event.
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Lines returns the text of every recorded event.
func (r *Recorder) Lines() []string {
	lines := make([]string, len(r.Events))
	for i, e := range r.Events {
		lines[i] = e.Text
	}
	return lines
}

// Count returns how many recorded events have kind k.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}
