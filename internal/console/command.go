package console

import (
	"golang.org/x/text/message"

	"blackjack/internal/i18n"
)

type Command int

const (
	Play Command = iota
	Hit
	Stand
	Quit
	Invalid
)

// ParseCommand maps the single-letter input keys to commands.
func ParseCommand(r rune) Command {
	switch r {
	case 'p':
		return Play
	case 'h':
		return Hit
	case 's':
		return Stand
	case 'q':
		return Quit
	default:
		return Invalid
	}
}

var commandKeys = map[Command]string{
	Play:    i18n.CommandPlayKey,
	Hit:     i18n.CommandHitKey,
	Stand:   i18n.CommandStandKey,
	Quit:    i18n.CommandQuitKey,
	Invalid: i18n.CommandInvalidKey,
}

// Description is the user-facing explanation of the command.
func (c Command) Description(p *message.Printer) string {
	key, ok := commandKeys[c]
	if !ok {
		key = i18n.CommandInvalidKey
	}
	return p.Sprintf(key)
}

func (c Command) String() string {
	switch c {
	case Play:
		return "play"
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Quit:
		return "quit"
	default:
		return "invalid"
	}
}
