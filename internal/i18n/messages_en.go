package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"blackjack/internal/game"
)

func init() {
	lang := language.English

	message.SetString(lang, WelcomeTitleKey, "Hello Black Jack World")
	message.SetString(lang, WelcomeHelpKey, "Type 'p' to Play, 'h' to Hit, 's' to Stand or 'q' to Quit")
	message.SetString(lang, InputPromptKey, "Enter your command (p = play, h = hit, s = stand, q = quit): ")
	message.SetString(lang, InputErrorKey, "Error reading input: %v")
	message.SetString(lang, DealerHasKey, "Dealer has:")
	message.SetString(lang, PlayerHasKey, "Player has:")
	message.SetString(lang, ScoreKey, "Score: %d")
	message.SetString(lang, GameOverKey, "Game Over:")
	message.SetString(lang, DealerWonKey, "Dealer Won!")
	message.SetString(lang, PlayerWonKey, "You Won!")
	message.SetString(lang, ErrorKey, "Error: %s")
	message.SetString(lang, SummaryTitleKey, "Game Summary:")
	message.SetString(lang, SummaryPlayerWinsKey, "Player Wins: %d")
	message.SetString(lang, SummaryDealerWinsKey, "Dealer Wins: %d")
	message.SetString(lang, ThanksKey, "Thank you for playing!")
	message.SetString(lang, CardDealtKey, "A new card has been dealt, updating the game...")
	message.SetString(lang, GameEndedKey, "The game has ended.")
	message.SetString(lang, PlayWhilePlayingKey, "Cannot start a new game while playing. Use 'h', 's', or 'q'.")
	message.SetString(lang, InvalidCommandKey, "Invalid command. Please use 'h', 's', or 'q'.")
	message.SetString(lang, UnknownCommandKey, "Unknown command.")
	message.SetString(lang, ReplayPromptKey, "Press 'p' to play again or 'q' to quit.")

	message.SetString(lang, CommandPlayKey, "Start a new game")
	message.SetString(lang, CommandHitKey, "Request another card")
	message.SetString(lang, CommandStandKey, "Hold current hand")
	message.SetString(lang, CommandQuitKey, "Quit the game")
	message.SetString(lang, CommandInvalidKey, "Invalid command")

	message.SetString(lang, CardNameKey, "%s of %s")
	message.SetString(lang, HiddenCardKey, "Hidden card")
	setNames(lang,
		[game.ColorCount]string{"Hearts", "Spades", "Diamonds", "Clubs"},
		[game.ValueCount]string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Knight", "Queen", "King", "Ace"},
	)

	message.SetString(lang, BotWelcomeKey, "🎰 Welcome to Blackjack!\n\n/play — deal a new round\n/stats — wins so far\n/lang en|sv — language\n/help — rules")
	message.SetString(lang, BotHelpKey, "📖 Get closer to 21 than the dealer without going over.\n\n• 2-10 count face value\n• Knight, Queen, King count 10\n• Ace counts 11 or 1\n\nThe dealer draws until the house rules tell it to stop.")
	message.SetString(lang, BotNoGameKey, "No round yet. Use /play")
	message.SetString(lang, BotInProgressKey, "A round is already in progress.")
	message.SetString(lang, BotCannotHitKey, "You cannot take another card.")
	message.SetString(lang, BotCardsDealtKey, "🃏 %d card(s) dealt")
	message.SetString(lang, BotStatsKey, "📊 Player wins: %d\nDealer wins: %d")
	message.SetString(lang, BotLangSetKey, "Language set to English.")
	message.SetString(lang, BotLangUsageKey, "Usage: /lang en|sv")
	message.SetString(lang, BotErrorKey, "❌ Something went wrong. Try again later.")
	message.SetString(lang, BotButtonHitKey, "👊 Hit")
	message.SetString(lang, BotButtonStandKey, "✋ Stand")
	message.SetString(lang, BotButtonAgainKey, "🔄 Play again")
	message.SetString(lang, BotInactiveKey, "The round is over")
}
