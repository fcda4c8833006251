package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/message"

	"blackjack/internal/i18n"
)

const (
	CallbackHit       = "hit"
	CallbackStand     = "stand"
	CallbackPlayAgain = "play_again"
)

func GameKeyboard(p *message.Printer) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.Sprintf(i18n.BotButtonHitKey), CallbackHit),
			tgbotapi.NewInlineKeyboardButtonData(p.Sprintf(i18n.BotButtonStandKey), CallbackStand),
		),
	)
}

func EndGameKeyboard(p *message.Printer) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(p.Sprintf(i18n.BotButtonAgainKey), CallbackPlayAgain),
		),
	)
}
