package console

import (
	"log/slog"

	"blackjack/internal/game"
)

// Controller turns view commands into game calls.
type Controller struct {
	view   View
	logger *slog.Logger
}

func NewController(view View, logger *slog.Logger) *Controller {
	return &Controller{view: view, logger: logger}
}

// Run shows the welcome text, plays until the player quits and prints the
// win summary.
func (c *Controller) Run(g *game.Game) {
	c.view.DisplayWelcome()
	for c.Play(g) {
	}
	c.view.DisplaySummary(g.PlayerWins(), g.DealerWins())
}

// Play handles one command. It returns false when the player is done.
func (c *Controller) Play(g *game.Game) bool {
	cmd := c.view.Input()
	c.logger.Debug("command", "command", cmd.String(), "game_id", g.ID().String())

	switch cmd {
	case Quit:
		return false
	case Play:
		if !g.NewGame() {
			c.view.HandleInvalidCommand(cmd)
			return true
		}
	case Hit:
		if !g.Hit() {
			return true
		}
	case Stand:
		if !g.Stand() {
			return true
		}
	default:
		c.view.HandleInvalidCommand(cmd)
		return true
	}

	c.render(g)

	if !g.IsGameOver() {
		return true
	}

	c.view.DisplayGameOver(g.IsDealerWinner())
	c.view.GameOver()

	if !c.view.PromptForReplay() {
		return false
	}
	if g.NewGame() {
		c.render(g)
	}
	return true
}

func (c *Controller) render(g *game.Game) {
	c.view.DisplayDealerHand(g.DealerHand(), g.DealerScore())
	c.view.DisplayPlayerHand(g.PlayerHand(), g.PlayerScore())
}
