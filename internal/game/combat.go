package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mageduel/internal/narration"
	"github.com/samdwyer/mageduel/internal/telemetry"
)

// FleeHitPoints is the HP granted for escaping an encounter.
const FleeHitPoints = 1

// ErrCannotFlee is returned when the player tries to run from a boss.
var ErrCannotFlee = errors.New("cannot flee from a boss battle")

// beginEncounter spawns the next opponent and prompts for the first turn.
func (g *Game) beginEncounter(ctx context.Context) {
	g.state = StateEncounterStart
	if g.factory.RollBoss() {
		g.opponent = g.factory.CreateBoss()
		g.bossBattle = true
	} else {
		g.opponent = g.factory.CreateEnemy()
		g.bossBattle = false
	}
	g.tint(g.opponent.Title(), g.opponent.Color())
	g.fled = false
	g.turns = 0
	g.encounters++

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "encounter.start")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("encounter", g.encounters),
		attribute.String("opponent", g.opponent.Title()),
		attribute.Int("opponent.hp", g.opponent.HitPoints()),
		attribute.Bool("boss", g.bossBattle),
		attribute.String("opponent.rank", g.opponent.Rank().String()),
		attribute.Int("player.hp", g.player.HitPoints()),
	)
	span.End()

	g.logger.Printf("session=%s encounter=%d opponent=%q boss=%t player_hp=%d",
		g.sessionID, g.encounters, g.opponent.Title(), g.bossBattle, g.player.HitPoints())

	g.emit(
		narration.Event{
			Kind:    narration.KindPlayerIntro,
			Text:    fmt.Sprintf("You are a %s with %d hit points.", g.player.Title(), g.player.HitPoints()),
			Subject: g.player.Title(),
			Amount:  g.player.HitPoints(),
		},
		narration.Event{
			Kind:    narration.KindEncounter,
			Text:    fmt.Sprintf("You encounter a wild %s!", g.opponent.Title()),
			Subject: g.opponent.Title(),
		},
	)

	g.state = StateCombat
	g.prompt()
}

// apply resolves one valid command and moves the state machine on.
func (g *Game) apply(ctx context.Context, cmd Command) {
	g.turns++

	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.turn")
	defer span.End()

	span.SetAttributes(
		attribute.String("command", cmd.String()),
		attribute.Int("turn", g.turns),
		attribute.String("opponent", g.opponent.Title()),
	)

	switch cmd {
	case CommandCast:
		if err := g.cast(); err != nil {
			span.SetAttributes(attribute.String("refused", err.Error()))
		}
	case CommandFlee:
		if err := g.flee(); err != nil {
			span.SetAttributes(attribute.String("refused", err.Error()))
		}
	case CommandGiveUp:
		g.giveUp()
	}

	span.SetAttributes(
		attribute.Int("player.hp", g.player.HitPoints()),
		attribute.Int("opponent.hp", g.opponent.HitPoints()),
	)

	g.advance(ctx, cmd)
}

// cast fires the player's spell. A surviving opponent strikes back, unless
// the cast was refused.
func (g *Game) cast() error {
	events, err := g.player.CastSpell(g.opponent)
	g.emit(events...)
	if err != nil {
		return err
	}
	if g.opponent.IsAlive() && g.player.IsAlive() {
		g.emit(g.opponent.Attack(g.player)...)
	}
	return nil
}

// flee ends a standard encounter. The opponent gets no parting attack.
func (g *Game) flee() error {
	if g.bossBattle || !g.opponent.CanBeFled() {
		g.emit(narration.Event{
			Kind:    narration.KindCannotFlee,
			Text:    "You can't flee from a boss battle!",
			Subject: g.opponent.Title(),
		})
		return ErrCannotFlee
	}
	g.emit(narration.Event{
		Kind:    narration.KindFled,
		Text:    fmt.Sprintf("You managed to flee from the %s.", g.opponent.Title()),
		Subject: g.opponent.Title(),
	})
	g.emit(g.player.GainHitPoints(FleeHitPoints)...)
	g.fled = true
	return nil
}

func (g *Game) giveUp() {
	g.emit(narration.Event{
		Kind: narration.KindGiveUp,
		Text: "You've chosen to give up. The game will now end.",
	})
	g.emit(g.player.Surrender()...)
}

// advance checks how the turn left the encounter.
func (g *Game) advance(ctx context.Context, cmd Command) {
	switch {
	case !g.player.IsAlive():
		outcome := OutcomeDefeat
		if cmd == CommandGiveUp {
			outcome = OutcomeSurrender
		}
		g.endEncounter(ctx, outcome)
		g.gameOver(ctx)
	case g.fled:
		g.endEncounter(ctx, OutcomeFled)
		g.resolve(ctx)
	case !g.opponent.IsAlive():
		g.victories++
		g.endEncounter(ctx, OutcomeVictory)
		g.resolve(ctx)
	default:
		g.prompt()
	}
}

// resolve levels up the surviving player and opens the next encounter.
func (g *Game) resolve(ctx context.Context) {
	g.state = StateEncounterResolution
	g.emit(narration.Event{
		Kind:    narration.KindStronger,
		Text:    "After a tough battle, you've grown stronger. Preparing for the next challenge...",
		Subject: g.player.Title(),
	})
	g.emit(g.player.LevelUp()...)
	g.beginEncounter(ctx)
}

func (g *Game) endEncounter(ctx context.Context, outcome Outcome) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "encounter.end")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("encounter", g.encounters),
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", g.turns),
		attribute.Int("player.hp", g.player.HitPoints()),
		attribute.Int("opponent.hp", g.opponent.HitPoints()),
	)
	span.End()

	g.logger.Printf("session=%s encounter=%d outcome=%s turns=%d",
		g.sessionID, g.encounters, outcome, g.turns)
}

func (g *Game) gameOver(ctx context.Context) {
	g.state = StateGameOver

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("encounters", g.encounters),
		attribute.Int("victories", g.victories),
	)
	span.End()

	g.emit(narration.Event{
		Kind: narration.KindGameOver,
		Text: "Alas, you have been defeated in battle.",
	})
}
