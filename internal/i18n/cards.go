package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"blackjack/internal/game"
)

func colorKey(c game.Color) string { return "card.color." + c.String() }
func valueKey(v game.Value) string { return "card.value." + v.String() }

func setNames(lang language.Tag, colors [game.ColorCount]string, values [game.ValueCount]string) {
	for c, name := range colors {
		message.SetString(lang, colorKey(game.Color(c)), name)
	}
	for v, name := range values {
		message.SetString(lang, valueKey(game.Value(v)), name)
	}
}

// CardName renders a card such as "Ace of Hearts", or the hidden-card text
// for a face-down card.
func CardName(p *message.Printer, c game.Card) string {
	if c.Hidden() {
		return p.Sprintf(HiddenCardKey)
	}
	return p.Sprintf(CardNameKey, p.Sprintf(valueKey(c.Value())), p.Sprintf(colorKey(c.Color())))
}
