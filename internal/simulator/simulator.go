// Package simulator drives Monte Carlo estimation of the house edge: it plays
// rounds of the game engine under basic strategy and a fixed dealer policy,
// and accumulates the results.
package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjacksim/internal/blackjack"
	"github.com/lox/blackjacksim/internal/randutil"
	"github.com/lox/blackjacksim/internal/statistics"
	"github.com/lox/blackjacksim/internal/strategy"
)

// Config holds configuration for a simulation run
type Config struct {
	Hands         int
	Rules         blackjack.Rules
	BetPerHand    float64
	Seed          int64
	Workers       int
	ProgressEvery int
	Logger        *log.Logger
}

// Validate rejects configurations the driver cannot run meaningfully
func (c Config) Validate() error {
	if c.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Hands)
	}
	if c.BetPerHand <= 0 {
		return fmt.Errorf("bet per hand must be positive, got %.2f", c.BetPerHand)
	}
	if c.Rules.NumDecks <= 0 {
		return fmt.Errorf("num decks must be positive, got %d", c.Rules.NumDecks)
	}
	if c.Rules.MaxSplits < 0 {
		return fmt.Errorf("max splits cannot be negative, got %d", c.Rules.MaxSplits)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Workers)
	}
	return nil
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the configured number of rounds and returns the aggregate
// results. With more than one worker the rounds are partitioned across
// goroutines, each owning an independent PCG stream derived from the run
// seed, so a run is reproducible for a given (seed, workers) pair.
func (s *Simulator) Run() (*statistics.Results, error) {
	if err := s.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	workers := s.config.Workers
	if workers <= 1 {
		results := s.runWorker(0, s.config.Hands, nil)
		if err := results.Validate(); err != nil {
			return nil, err
		}
		return results, nil
	}

	var completed atomic.Int64
	perWorker := make([]*statistics.Results, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		hands := s.config.Hands / workers
		if w < s.config.Hands%workers {
			hands++
		}
		g.Go(func() error {
			perWorker[w] = s.runWorker(w, hands, &completed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := &statistics.Results{}
	for _, r := range perWorker {
		results.Merge(r)
	}
	if err := results.Validate(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Simulator) runWorker(worker, hands int, completed *atomic.Int64) *statistics.Results {
	rng := randutil.Stream(s.config.Seed, worker)
	results := &statistics.Results{}
	logger := s.config.Logger

	for i := 0; i < hands; i++ {
		results.Add(s.playRound(rng))

		done := int64(i + 1)
		if completed != nil {
			done = completed.Add(1)
		}
		if s.config.ProgressEvery > 0 && done%int64(s.config.ProgressEvery) == 0 && logger != nil {
			logger.Info("progress",
				"hands", done,
				"edge", fmt.Sprintf("%.4f", results.HouseEdge()))
		}
	}
	return results
}

// playRound plays one complete round: deal, player decisions per seat in play
// order, dealer play, resolution.
func (s *Simulator) playRound(rng *rand.Rand) statistics.RoundResult {
	rules := s.config.Rules
	game := blackjack.NewGame(rules, s.config.BetPerHand, rng)
	game.Deal()

	var doubles, splits int

	// the seat list grows while we iterate; splits append behind the cursor
	for i := 0; i < len(game.Seats()); i++ {
		seat := game.Seats()[i]
		for {
			if seat.Hand.IsBust() {
				break
			}
			if standsOnSplitAce(seat, rules) {
				break
			}

			canSplit := len(game.Seats()) < rules.MaxSplits+1 &&
				!(isAcePair(seat.Hand) && !rules.ResplitAces && fromSplitAces(seat))
			canDouble := seat.Hand.CanDouble() && (!seat.FromSplit || rules.DoubleAfterSplit)
			canSurrender := len(game.Seats()) == 1 && !seat.FromSplit && seat.Hand.Count() == 2

			action := strategy.Decide(seat.Hand, game.Dealer().Cards()[0], rules, canSplit, canDouble, canSurrender)

			splitAces := false
			switch action {
			case blackjack.Double:
				doubles++
			case blackjack.Split:
				splits++
				splitAces = isAcePair(seat.Hand)
			}

			game.PlayAction(action, i)

			if action == blackjack.Stand || action == blackjack.Double || action == blackjack.Surrender {
				break
			}
			// split aces receive exactly one card regardless of the loop
			// condition, unless the rules allow hitting them
			if splitAces && !rules.HitSplitAces {
				break
			}
		}
		if game.Surrendered() {
			break
		}
	}

	if !game.Surrendered() && anyLive(game.Seats()) {
		game.DealDealer()
	}

	return statistics.RoundResult{
		Bet:     game.TotalBet(),
		Payout:  game.Resolve(),
		Doubles: doubles,
		Splits:  splits,
		Seed:    s.config.Seed,
	}
}

func isAcePair(hand *blackjack.Hand) bool {
	cards := hand.Cards()
	return len(cards) == 2 && cards[0].IsAce() && cards[1].IsAce()
}

// fromSplitAces reports whether a seat was produced by splitting aces; a seat
// created by a split always leads with the card kept from the original pair.
func fromSplitAces(seat *blackjack.Seat) bool {
	return seat.FromSplit && seat.Hand.Count() > 0 && seat.Hand.Cards()[0].IsAce()
}

// standsOnSplitAce reports whether this seat is frozen on its forced one-card
// deal. A re-drawn ace pair may still be resplit when the rules allow it.
func standsOnSplitAce(seat *blackjack.Seat, rules blackjack.Rules) bool {
	if !fromSplitAces(seat) || rules.HitSplitAces {
		return false
	}
	if rules.ResplitAces && isAcePair(seat.Hand) {
		return false
	}
	return true
}

func anyLive(seats []*blackjack.Seat) bool {
	for _, seat := range seats {
		if !seat.Hand.IsBust() {
			return true
		}
	}
	return false
}
