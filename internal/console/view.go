package console

import "blackjack/internal/game"

// View is everything the controller needs from a front end. A View also
// observes the game so it can react to dealt cards.
type View interface {
	game.Observer

	DisplayWelcome()
	Input() Command
	DisplayCard(c game.Card)
	DisplayDealerHand(hand []game.Card, score int)
	DisplayPlayerHand(hand []game.Card, score int)
	DisplayGameOver(dealerIsWinner bool)
	DisplayError(msg string)
	DisplayPrompt(prompt string)
	DisplaySummary(playerWins, dealerWins int)
	Pause()
	HandleInvalidCommand(cmd Command)
	PromptForReplay() bool
}
