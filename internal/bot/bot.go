package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"blackjack/internal/config"
	"blackjack/internal/game"
	"blackjack/internal/settings"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	logger  *slog.Logger
}

func New(cfg *config.Config, repo settings.Repository, rules game.RulesFactory, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}

	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, repo, rules, logger),
		logger:  logger,
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot started", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopping")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(update)
		}
	}
}

func (b *Bot) dispatch(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		go b.handler.HandleCallback(update.CallbackQuery)
		return
	}

	if update.Message != nil {
		go b.handler.HandleMessage(update.Message)
	}
}
