package game

// AmericanNewGame deals player, dealer, player, then a face-down hole card
// to the dealer.
type AmericanNewGame struct{}

func (AmericanNewGame) NewGame(deck *Deck, dealer *Dealer, player *Player) bool {
	dealCard(deck, player, true)
	dealCard(deck, &dealer.Player, true)
	dealCard(deck, player, true)
	dealCard(deck, &dealer.Player, false)

	return true
}

// InternationalNewGame gives the dealer a single face-up card and no hole
// card.
type InternationalNewGame struct{}

func (InternationalNewGame) NewGame(deck *Deck, dealer *Dealer, player *Player) bool {
	dealCard(deck, player, true)
	dealCard(deck, &dealer.Player, true)
	dealCard(deck, player, true)

	return true
}
