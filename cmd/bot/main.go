package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"blackjack/internal/bot"
	"blackjack/internal/config"
	"blackjack/internal/database"
	"blackjack/internal/logging"
	"blackjack/internal/settings"
)

func main() {
	if err := run(); err != nil {
		slog.Error("bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireBotToken(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := logging.New(level, os.Stderr)
	slog.SetDefault(logger)

	rules, _ := cfg.Rules()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("database connected", "path", cfg.DatabasePath)

	b, err := bot.New(cfg, settings.NewRepository(db.DB), rules, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return b.Run(ctx)
}
