package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHasEveryCardOnce(t *testing.T) {
	d := NewDeck()
	require.Equal(t, 52, d.Remaining())

	type key struct {
		c Color
		v Value
	}
	seen := make(map[key]bool)
	for d.Remaining() > 0 {
		card := d.Draw()
		assert.True(t, card.Hidden(), "drawn cards start face down")

		card.show(true)
		k := key{card.Color(), card.Value()}
		assert.False(t, seen[k], "duplicate %v", card)
		assert.Less(t, int(k.c), int(ColorCount))
		assert.Less(t, int(k.v), int(ValueCount))
		seen[k] = true
	}
	assert.Len(t, seen, 52)
}

func TestDeckFromCardsKeepsOrder(t *testing.T) {
	d := NewDeckFromCards(NewCard(Hearts, Two), NewCard(Spades, Ace))

	first := d.Draw()
	first.show(true)
	assert.Equal(t, Two, first.Value())
	assert.Equal(t, 1, d.Remaining())
}

func TestDrawFromEmptyDeckPanics(t *testing.T) {
	d := NewDeckFromCards()
	assert.Panics(t, func() { d.Draw() })
}
