package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjacksim/internal/config"
	"github.com/lox/blackjacksim/internal/display"
)

// RulesCmd prints the rule set that a simulation with this config would use
type RulesCmd struct {
	Config string `short:"c" default:"blackjack.hcl" help:"HCL rules/simulation file"`
}

func (cmd *RulesCmd) Run(logger *log.Logger) error {
	settings, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	fmt.Print(display.NewStyles().Rules(settings.Rules))
	return nil
}

// ChartCmd renders the basic strategy tables under the configured rules
type ChartCmd struct {
	Config string `short:"c" default:"blackjack.hcl" help:"HCL rules/simulation file"`
}

func (cmd *ChartCmd) Run(logger *log.Logger) error {
	settings, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	fmt.Print(display.NewStyles().Chart(settings.Rules))
	return nil
}
