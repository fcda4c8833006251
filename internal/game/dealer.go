package game

// Dealer runs a round against one player using the rules it was built with.
//
// The dealer is Idle until the first NewGame, InPlay while it holds a deck
// and its hit rule still wants a card, and Over once the hit rule says stop.
// None of these states is stored; they are read off the deck and the hand.
type Dealer struct {
	Player

	deck        *Deck
	newDeck     func() *Deck
	newGameRule NewGameStrategy
	hitRule     HitStrategy
	winRule     WinStrategy
}

type DealerOption func(*Dealer)

// WithDeckSource replaces the shuffled 52-card deck used for each new game.
func WithDeckSource(fn func() *Deck) DealerOption {
	return func(d *Dealer) {
		if fn != nil {
			d.newDeck = fn
		}
	}
}

func NewDealer(rules RulesFactory, opts ...DealerOption) *Dealer {
	d := &Dealer{
		newDeck:     NewDeck,
		newGameRule: rules.NewGameRule(),
		hitRule:     rules.HitRule(),
		winRule:     rules.WinRule(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewGame starts a round unless one is in progress.
func (d *Dealer) NewGame(player *Player) bool {
	if d.deck != nil && !d.IsGameOver() {
		return false
	}

	d.deck = d.newDeck()
	d.ClearHand()
	player.ClearHand()
	d.notify()
	return d.newGameRule.NewGame(d.deck, d, player)
}

// Hit gives the player one face-up card if the round allows it.
func (d *Dealer) Hit(player *Player) bool {
	if d.deck == nil || player.Score() >= player.MaxScore() || d.IsGameOver() {
		return false
	}

	d.deal(player, true)
	return true
}

// Stand reveals the dealer's hand and draws until the hit rule is satisfied.
func (d *Dealer) Stand() bool {
	if d.deck == nil {
		return false
	}

	d.ShowHand()
	for d.hitRule.DoHit(&d.Player) {
		d.deal(&d.Player, true)
	}
	return true
}

func (d *Dealer) IsGameOver() bool {
	return d.deck != nil && !d.hitRule.DoHit(&d.Player)
}

func (d *Dealer) IsDealerWinner(player *Player) bool {
	return d.winRule.IsDealerWinner(&d.Player, player)
}

func (d *Dealer) deal(to *Player, visible bool) {
	dealCard(d.deck, to, visible)
}

func dealCard(deck *Deck, to *Player, visible bool) {
	card := deck.Draw()
	card.show(visible)
	to.DealCard(card)
}
