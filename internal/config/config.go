package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"blackjack/internal/game"
	"blackjack/internal/i18n"
)

type Config struct {
	Lang        string        `env:"BLACKJACK_LANG" envDefault:"en"`
	NewGameRule string        `env:"BLACKJACK_NEW_GAME_RULE" envDefault:"american"`
	HitRule     string        `env:"BLACKJACK_HIT_RULE" envDefault:"basic"`
	WinRule     string        `env:"BLACKJACK_WIN_RULE" envDefault:"dealer"`
	Pause       time.Duration `env:"BLACKJACK_PAUSE" envDefault:"1s"`
	LogLevel    string        `env:"BLACKJACK_LOG_LEVEL" envDefault:"info"`

	BotToken     string `env:"BOT_TOKEN"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./blackjack.db"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, ok := i18n.Parse(cfg.Lang); !ok {
		return nil, fmt.Errorf("unsupported language %q", cfg.Lang)
	}
	if cfg.Pause < 0 {
		return nil, fmt.Errorf("BLACKJACK_PAUSE must not be negative")
	}
	if _, err := cfg.Rules(); err != nil {
		return nil, err
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// RequireBotToken is checked only by the Telegram entry point.
func (c *Config) RequireBotToken() error {
	if strings.TrimSpace(c.BotToken) == "" {
		return fmt.Errorf("BOT_TOKEN is not set")
	}
	return nil
}

func (c *Config) Rules() (game.RuleSet, error) {
	rules, err := game.ParseRules(c.NewGameRule, c.HitRule, c.WinRule)
	if err != nil {
		return game.RuleSet{}, fmt.Errorf("rules: %w", err)
	}
	return rules, nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
