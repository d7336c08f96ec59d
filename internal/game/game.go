package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mageduel/internal/dice"
	"github.com/samdwyer/mageduel/internal/entity"
	"github.com/samdwyer/mageduel/internal/gamedata"
	"github.com/samdwyer/mageduel/internal/narration"
	"github.com/samdwyer/mageduel/internal/telemetry"
)

var (
	// ErrNotStarted is returned by Handle before Start.
	ErrNotStarted = errors.New("game not started")
	// ErrGameOver is returned by Handle once the game has ended.
	ErrGameOver = errors.New("game is over")
)

// Options wires a game to its collaborators.
type Options struct {
	Roster *gamedata.Roster
	Rand   dice.Source
	Sink   narration.Sink
	// Logger receives encounter diagnostics. Nil discards them.
	Logger *log.Logger
}

// Game holds the entire session state. Only the player survives across
// encounters.
type Game struct {
	factory *entity.Factory
	roster  *gamedata.Roster
	sink    narration.Sink
	logger  *log.Logger

	player     *entity.Player
	opponent   *entity.Enemy
	bossBattle bool
	fled       bool
	state      State
	started    bool

	sessionID  string
	encounters int
	victories  int
	turns      int // Turns taken in the current encounter
}

// New creates a new game instance.
func New(opts Options) (*Game, error) {
	if opts.Roster == nil {
		return nil, errors.New("roster is required")
	}
	if opts.Rand == nil {
		return nil, errors.New("random source is required")
	}
	if opts.Sink == nil {
		return nil, errors.New("narration sink is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	factory := entity.NewFactory(opts.Roster, opts.Rand)
	player, err := factory.CreatePlayer()
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	return &Game{
		factory:   factory,
		roster:    opts.Roster,
		sink:      opts.Sink,
		logger:    logger,
		player:    player,
		state:     StateEncounterStart,
		sessionID: uuid.NewString(),
	}, nil
}

// Player returns the player character.
func (g *Game) Player() *entity.Player { return g.player }

// Opponent returns the current opponent, or nil before the first encounter.
func (g *Game) Opponent() *entity.Enemy { return g.opponent }

// BossBattle reports whether the current encounter is the boss.
func (g *Game) BossBattle() bool { return g.bossBattle }

// State returns the current state.
func (g *Game) State() State { return g.state }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.state == StateGameOver }

// Encounters returns how many encounters have started.
func (g *Game) Encounters() int { return g.encounters }

// Victories returns how many opponents the player has defeated.
func (g *Game) Victories() int { return g.victories }

// SessionID identifies this session in logs and traces.
func (g *Game) SessionID() string { return g.sessionID }

// Start greets the player and opens the first encounter.
func (g *Game) Start(ctx context.Context) error {
	if g.started {
		return errors.New("game already started")
	}
	g.started = true

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("player.title", g.player.Title()),
		attribute.Int("player.hp", g.player.HitPoints()),
		attribute.String("player.spell", g.player.Spell().Name()),
	)
	span.End()

	g.tint(g.player.Title(), g.roster.PlayerColor())
	g.emit(narration.Event{Kind: narration.KindWelcome, Text: "Welcome to the Fantasy Mage Game!"})
	g.beginEncounter(ctx)
	return nil
}

// Handle consumes one line of player input and resolves the turn.
// Invalid input and refused actions are narrated, not returned.
func (g *Game) Handle(ctx context.Context, line string) error {
	switch {
	case g.state == StateGameOver:
		return ErrGameOver
	case !g.started || g.state != StateCombat:
		return ErrNotStarted
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		g.logger.Printf("session=%s %v", g.sessionID, err)
		g.emit(narration.Event{
			Kind: narration.KindInvalidCommand,
			Text: "Invalid command. Please choose 'c' to Cast Spell, 'f' to Flee, or 'g' to Give Up.",
		})
		g.prompt()
		return nil
	}

	g.apply(ctx, cmd)
	return nil
}

// Quit gives up on behalf of the player, as when input runs out.
func (g *Game) Quit(ctx context.Context) error {
	switch {
	case g.state == StateGameOver:
		return ErrGameOver
	case !g.started || g.state != StateCombat:
		return ErrNotStarted
	}
	g.apply(ctx, CommandGiveUp)
	return nil
}

// Run executes the main game loop, reading one command per line from in.
// End of input counts as giving up.
func (g *Game) Run(ctx context.Context, in io.Reader) error {
	if err := g.Start(ctx); err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	for !g.Over() {
		line, err := reader.ReadString('\n')
		if line != "" {
			if err := g.Handle(ctx, line); err != nil {
				return err
			}
		}
		switch {
		case errors.Is(err, io.EOF):
			if g.Over() {
				return nil
			}
			g.logger.Printf("session=%s end of input", g.sessionID)
			return g.Quit(ctx)
		case err != nil:
			return fmt.Errorf("read command: %w", err)
		}
	}
	return nil
}

// tinter is implemented by sinks that color lines by subject.
type tinter interface {
	Tint(title string, color tcell.Color)
}

func (g *Game) tint(title string, color tcell.Color) {
	if t, ok := g.sink.(tinter); ok {
		t.Tint(title, color)
	}
}

func (g *Game) emit(events ...narration.Event) {
	narration.Emit(g.sink, events...)
}

// prompt shows both HP totals and asks for the next command.
func (g *Game) prompt() {
	g.emit(
		narration.Event{
			Kind:    narration.KindPlayerHP,
			Text:    fmt.Sprintf("Your HP: %d", g.player.HitPoints()),
			Subject: g.player.Title(),
			Amount:  g.player.HitPoints(),
		},
		narration.Event{
			Kind:    narration.KindOpponentHP,
			Text:    fmt.Sprintf("%s HP: %d", g.opponent.Title(), g.opponent.HitPoints()),
			Subject: g.opponent.Title(),
			Amount:  g.opponent.HitPoints(),
		},
		narration.Event{
			Kind: narration.KindPrompt,
			Text: "Do you want to Cast Spell (c), Flee (f), or Give Up (g)?",
		},
	)
}
