package game

import "math/rand"

type Deck struct {
	cards []*Card
}

// NewDeck returns a shuffled 52-card deck.
func NewDeck() *Deck {
	d := &Deck{
		cards: make([]*Card, 0, int(ColorCount)*int(ValueCount)),
	}

	for c := Hearts; c < ColorCount; c++ {
		for v := Two; v < ValueCount; v++ {
			d.cards = append(d.cards, NewCard(c, v))
		}
	}

	d.Shuffle()
	return d
}

// NewDeckFromCards builds a deck that deals the given cards in order.
func NewDeckFromCards(cards ...*Card) *Deck {
	d := &Deck{cards: make([]*Card, len(cards))}
	copy(d.cards, cards)
	return d
}

func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes the top card. The card is face down. Drawing from an empty
// deck panics: two hands never come close to using 52 cards.
func (d *Deck) Draw() *Card {
	if len(d.cards) == 0 {
		panic("game: draw from empty deck")
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	card.show(false)
	return card
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}
