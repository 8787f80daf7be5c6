// Package config loads rule sets and simulation settings from HCL files.
// A missing file yields the defaults; present fields override them.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjacksim/internal/blackjack"
)

// File is the top-level HCL schema: one optional rules block and one optional
// simulation block.
type File struct {
	Rules      *RulesBlock      `hcl:"rules,block"`
	Simulation *SimulationBlock `hcl:"simulation,block"`
}

// RulesBlock mirrors blackjack.Rules with pointer fields so that an omitted
// setting keeps its default rather than collapsing to the zero value.
type RulesBlock struct {
	DealerHitsSoft17      *bool    `hcl:"dealer_hits_soft_17,optional"`
	DealerPeeks           *bool    `hcl:"dealer_peeks,optional"`
	EuropeanNoHoleCard    *bool    `hcl:"european_no_hole_card,optional"`
	DoubleAfterSplit      *bool    `hcl:"double_after_split,optional"`
	ResplitAces           *bool    `hcl:"resplit_aces,optional"`
	HitSplitAces          *bool    `hcl:"hit_split_aces,optional"`
	LateSurrenderAllowed  *bool    `hcl:"late_surrender,optional"`
	EarlySurrenderAllowed *bool    `hcl:"early_surrender,optional"`
	DoubleAnyTwoCards     *bool    `hcl:"double_any_two_cards,optional"`
	MaxSplits             *int     `hcl:"max_splits,optional"`
	NumDecks              *int     `hcl:"num_decks,optional"`
	ShoePenetration       *float64 `hcl:"shoe_penetration,optional"`
	BlackjackPayout       *float64 `hcl:"blackjack_payout,optional"`
	InsurancePayout       *float64 `hcl:"insurance_payout,optional"`
	FiveCardCharlie       *bool    `hcl:"five_card_charlie,optional"`
	SixCardCharlie        *bool    `hcl:"six_card_charlie,optional"`
}

// SimulationBlock holds driver settings
type SimulationBlock struct {
	Hands      *int     `hcl:"hands,optional"`
	BetPerHand *float64 `hcl:"bet_per_hand,optional"`
	Seed       *int64   `hcl:"seed,optional"`
	Workers    *int     `hcl:"workers,optional"`
}

// Settings is the merged result of defaults and file contents
type Settings struct {
	Rules      blackjack.Rules
	Hands      int
	BetPerHand float64
	Seed       int64
	Workers    int
}

// DefaultSettings returns the defaults used when no file is present
func DefaultSettings() *Settings {
	return &Settings{
		Rules:      blackjack.DefaultRules(),
		Hands:      100000,
		BetPerHand: 10.0,
		Seed:       0,
		Workers:    1,
	}
}

// Load reads an HCL file and merges it over the defaults. A missing file is
// not an error; an unparsable or invalid one is.
func Load(filename string) (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return settings, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	settings.apply(&f)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return settings, nil
}

func (s *Settings) apply(f *File) {
	if f.Rules != nil {
		r := &s.Rules
		setBool(&r.DealerHitsSoft17, f.Rules.DealerHitsSoft17)
		setBool(&r.DealerPeeks, f.Rules.DealerPeeks)
		setBool(&r.EuropeanNoHoleCard, f.Rules.EuropeanNoHoleCard)
		setBool(&r.DoubleAfterSplit, f.Rules.DoubleAfterSplit)
		setBool(&r.ResplitAces, f.Rules.ResplitAces)
		setBool(&r.HitSplitAces, f.Rules.HitSplitAces)
		setBool(&r.LateSurrenderAllowed, f.Rules.LateSurrenderAllowed)
		setBool(&r.EarlySurrenderAllowed, f.Rules.EarlySurrenderAllowed)
		setBool(&r.DoubleAnyTwoCards, f.Rules.DoubleAnyTwoCards)
		setBool(&r.FiveCardCharlie, f.Rules.FiveCardCharlie)
		setBool(&r.SixCardCharlie, f.Rules.SixCardCharlie)
		setInt(&r.MaxSplits, f.Rules.MaxSplits)
		setInt(&r.NumDecks, f.Rules.NumDecks)
		setFloat(&r.ShoePenetration, f.Rules.ShoePenetration)
		setFloat(&r.BlackjackPayout, f.Rules.BlackjackPayout)
		setFloat(&r.InsurancePayout, f.Rules.InsurancePayout)
	}
	if f.Simulation != nil {
		setInt(&s.Hands, f.Simulation.Hands)
		setFloat(&s.BetPerHand, f.Simulation.BetPerHand)
		if f.Simulation.Seed != nil {
			s.Seed = *f.Simulation.Seed
		}
		setInt(&s.Workers, f.Simulation.Workers)
	}
}

// Validate checks the merged settings for values the simulator would reject
func (s *Settings) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", s.Hands)
	}
	if s.BetPerHand <= 0 {
		return fmt.Errorf("bet_per_hand must be positive, got %.2f", s.BetPerHand)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	if s.Rules.NumDecks < 1 {
		return fmt.Errorf("num_decks must be at least 1, got %d", s.Rules.NumDecks)
	}
	if s.Rules.MaxSplits < 0 {
		return fmt.Errorf("max_splits cannot be negative, got %d", s.Rules.MaxSplits)
	}
	if s.Rules.ShoePenetration <= 0 || s.Rules.ShoePenetration > 1 {
		return fmt.Errorf("shoe_penetration must be in (0, 1], got %.2f", s.Rules.ShoePenetration)
	}
	if s.Rules.BlackjackPayout <= 0 {
		return fmt.Errorf("blackjack_payout must be positive, got %.2f", s.Rules.BlackjackPayout)
	}
	if s.Rules.InsurancePayout <= 0 {
		return fmt.Errorf("insurance_payout must be positive, got %.2f", s.Rules.InsurancePayout)
	}
	return nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
