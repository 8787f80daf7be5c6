package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjacksim/internal/config"
	"github.com/lox/blackjacksim/internal/display"
	"github.com/lox/blackjacksim/internal/simulator"
)

// SimulateCmd runs the Monte Carlo estimation
type SimulateCmd struct {
	Config   string  `short:"c" default:"blackjack.hcl" help:"HCL rules/simulation file"`
	Hands    int     `help:"Number of rounds to simulate (overrides config)"`
	Bet      float64 `help:"Bet per hand (overrides config)"`
	Seed     int64   `help:"RNG seed, 0 for time-based (overrides config)"`
	Workers  int     `help:"Parallel workers (overrides config)"`
	Progress int     `default:"0" help:"Log progress every N rounds (0 disables)"`
}

func (cmd *SimulateCmd) Run(logger *log.Logger) error {
	settings, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Hands > 0 {
		settings.Hands = cmd.Hands
	}
	if cmd.Bet > 0 {
		settings.BetPerHand = cmd.Bet
	}
	if cmd.Seed != 0 {
		settings.Seed = cmd.Seed
	}
	if cmd.Workers > 0 {
		settings.Workers = cmd.Workers
	}
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	logger.Info("starting simulation",
		"hands", settings.Hands,
		"bet", settings.BetPerHand,
		"seed", settings.Seed,
		"workers", settings.Workers,
		"decks", settings.Rules.NumDecks)

	sim := simulator.New(simulator.Config{
		Hands:         settings.Hands,
		Rules:         settings.Rules,
		BetPerHand:    settings.BetPerHand,
		Seed:          settings.Seed,
		Workers:       settings.Workers,
		ProgressEvery: cmd.Progress,
		Logger:        logger,
	})

	start := time.Now()
	results, err := sim.Run()
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	styles := display.NewStyles()
	fmt.Println()
	fmt.Print(styles.Report(results, time.Since(start)))
	return nil
}
