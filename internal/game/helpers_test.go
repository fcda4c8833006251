package game

// faceUp returns a visible Hearts card of value v.
func faceUp(v Value) *Card {
	c := NewCard(Hearts, v)
	c.show(true)
	return c
}

func playerWith(values ...Value) *Player {
	p := NewPlayer()
	for _, v := range values {
		p.DealCard(faceUp(v))
	}
	return p
}

// stackedDeck deals the given values in order. Cards come out face down like
// any other deck.
func stackedDeck(values ...Value) func() *Deck {
	return func() *Deck {
		cards := make([]*Card, len(values))
		for i, v := range values {
			cards[i] = NewCard(Color(i%int(ColorCount)), v)
		}
		return NewDeckFromCards(cards...)
	}
}

type countingObserver struct {
	updates int
}

func (o *countingObserver) Update()    { o.updates++ }
func (o *countingObserver) CardDealt() { o.Update() }
func (o *countingObserver) GameOver()  {}
