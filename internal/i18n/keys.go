package i18n

// Console text.
const (
	WelcomeTitleKey      = "console.welcome.title"
	WelcomeHelpKey       = "console.welcome.help"
	InputPromptKey       = "console.input.prompt"
	InputErrorKey        = "console.input.error"
	DealerHasKey         = "console.hand.dealer"
	PlayerHasKey         = "console.hand.player"
	ScoreKey             = "console.hand.score"
	GameOverKey          = "console.game_over.title"
	DealerWonKey         = "console.game_over.dealer"
	PlayerWonKey         = "console.game_over.player"
	ErrorKey             = "console.error"
	SummaryTitleKey      = "console.summary.title"
	SummaryPlayerWinsKey = "console.summary.player_wins"
	SummaryDealerWinsKey = "console.summary.dealer_wins"
	ThanksKey            = "console.summary.thanks"
	CardDealtKey         = "console.card_dealt"
	GameEndedKey         = "console.game_ended"
	PlayWhilePlayingKey  = "console.error.play_while_playing"
	InvalidCommandKey    = "console.error.invalid_command"
	UnknownCommandKey    = "console.error.unknown_command"
	ReplayPromptKey      = "console.replay"
)

// Command descriptions.
const (
	CommandPlayKey    = "command.play"
	CommandHitKey     = "command.hit"
	CommandStandKey   = "command.stand"
	CommandQuitKey    = "command.quit"
	CommandInvalidKey = "command.invalid"
)

// Card names. CardNameKey takes the value then the color.
const (
	CardNameKey   = "card.name"
	HiddenCardKey = "card.hidden"
)

// Telegram text.
const (
	BotWelcomeKey     = "bot.welcome"
	BotHelpKey        = "bot.help"
	BotNoGameKey      = "bot.no_game"
	BotInProgressKey  = "bot.in_progress"
	BotCannotHitKey   = "bot.cannot_hit"
	BotCardsDealtKey  = "bot.cards_dealt"
	BotStatsKey       = "bot.stats"
	BotLangSetKey     = "bot.lang.set"
	BotLangUsageKey   = "bot.lang.usage"
	BotErrorKey       = "bot.error"
	BotButtonHitKey   = "bot.button.hit"
	BotButtonStandKey = "bot.button.stand"
	BotButtonAgainKey = "bot.button.again"
	BotInactiveKey    = "bot.inactive"
)
