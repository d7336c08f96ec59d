package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCommand is returned for input that is not a known command.
var ErrInvalidCommand = errors.New("invalid command")

// maxEchoedInput bounds how much of a rejected line ends up in the error.
const maxEchoedInput = 32

// Command is one player action.
type Command int

const (
	CommandCast Command = iota
	CommandFlee
	CommandGiveUp
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandCast:
		return "cast"
	case CommandFlee:
		return "flee"
	case CommandGiveUp:
		return "give_up"
	default:
		return "unknown"
	}
}

// ParseCommand maps an input line to a command. Matching ignores case and
// surrounding whitespace.
func ParseCommand(line string) (Command, error) {
	token := strings.TrimSpace(line)
	switch {
	case strings.EqualFold(token, "c"):
		return CommandCast, nil
	case strings.EqualFold(token, "f"):
		return CommandFlee, nil
	case strings.EqualFold(token, "g"):
		return CommandGiveUp, nil
	default:
		if len(token) > maxEchoedInput {
			token = token[:maxEchoedInput] + "..."
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidCommand, token)
	}
}
