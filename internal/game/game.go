package game

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Game couples one dealer with one player and keeps the running score
// across rounds. It is not safe for concurrent use.
type Game struct {
	id     uuid.UUID
	dealer *Dealer
	player *Player
	logger *slog.Logger

	playerWins int
	dealerWins int
	// counted is set once the current round has been added to the tally.
	counted bool
}

type options struct {
	logger *slog.Logger
	dealer []DealerOption
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDeck makes every new round deal from decks returned by fn.
func WithDeck(fn func() *Deck) Option {
	return func(o *options) {
		o.dealer = append(o.dealer, WithDeckSource(fn))
	}
}

func New(rules RulesFactory, opts ...Option) *Game {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New()
	return &Game{
		id:     id,
		dealer: NewDealer(rules, o.dealer...),
		player: NewPlayer(),
		logger: o.logger.With("game_id", id.String()),
	}
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

// Dealer and Player expose the two subjects for observers that only care
// about one side of the table.
func (g *Game) Dealer() Subject { return g.dealer }
func (g *Game) Player() Subject { return g.player }

// Attach registers o with both the dealer and the player.
func (g *Game) Attach(o Observer) {
	g.dealer.Attach(o)
	g.player.Attach(o)
}

func (g *Game) Detach(o Observer) {
	g.dealer.Detach(o)
	g.player.Detach(o)
}

func (g *Game) NewGame() bool {
	if !g.dealer.NewGame(g.player) {
		return false
	}
	g.counted = false
	g.logger.Debug("new round dealt",
		"player_score", g.player.Score(),
		"dealer_score", g.dealer.Score())
	return true
}

func (g *Game) Hit() bool {
	return g.dealer.Hit(g.player)
}

func (g *Game) Stand() bool {
	return g.dealer.Stand()
}

func (g *Game) IsGameOver() bool {
	return g.dealer.IsGameOver()
}

// IsDealerWinner reports the outcome for the current hands. The first call
// after a round is over adds the result to the win counters; later calls for
// the same round only report.
func (g *Game) IsDealerWinner() bool {
	dealerWon := g.dealer.IsDealerWinner(g.player)
	if g.IsGameOver() && !g.counted {
		g.counted = true
		if dealerWon {
			g.dealerWins++
		} else {
			g.playerWins++
		}
		g.logger.Debug("round adjudicated",
			"dealer_won", dealerWon,
			"player_score", g.player.Score(),
			"dealer_score", g.dealer.Score())
	}
	return dealerWon
}

func (g *Game) DealerHand() []Card { return g.dealer.Hand() }
func (g *Game) PlayerHand() []Card { return g.player.Hand() }
func (g *Game) DealerScore() int   { return g.dealer.Score() }
func (g *Game) PlayerScore() int   { return g.player.Score() }
func (g *Game) PlayerWins() int    { return g.playerWins }
func (g *Game) DealerWins() int    { return g.dealerWins }
