package main

import (
	"fmt"
	"os"

	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/game"
	"blackjack/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger := logging.New(level, os.Stderr)

	rules, _ := cfg.Rules()

	g := game.New(rules, game.WithLogger(logger))
	view := console.NewTerminalView(os.Stdin, os.Stdout, cfg.Lang, cfg.Pause)
	g.Attach(view)

	console.NewController(view, logger).Run(g)
}
