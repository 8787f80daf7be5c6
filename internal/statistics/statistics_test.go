package statistics

import (
	"math"
	"testing"
)

func TestAddClassifiesRounds(t *testing.T) {
	t.Parallel()
	var r Results
	r.Add(RoundResult{Bet: 10, Payout: 25})             // blackjack win
	r.Add(RoundResult{Bet: 10, Payout: 0})              // bust
	r.Add(RoundResult{Bet: 10, Payout: 10})             // push
	r.Add(RoundResult{Bet: 10, Payout: 5})              // surrender
	r.Add(RoundResult{Bet: 20, Payout: 40, Doubles: 1}) // doubled win
	r.Add(RoundResult{Bet: 20, Payout: 20, Splits: 1})  // split push

	if r.HandsPlayed != 6 {
		t.Errorf("HandsPlayed = %d, want 6", r.HandsPlayed)
	}
	if r.HandsWon != 2 || r.HandsLost != 2 || r.HandsPushed != 2 {
		t.Errorf("won/lost/pushed = %d/%d/%d, want 2/2/2", r.HandsWon, r.HandsLost, r.HandsPushed)
	}
	if r.DoublesTaken != 1 || r.SplitsTaken != 1 {
		t.Errorf("doubles/splits = %d/%d, want 1/1", r.DoublesTaken, r.SplitsTaken)
	}
	if r.TotalBet != 80 || r.TotalPayout != 100 {
		t.Errorf("bet/payout = %.1f/%.1f, want 80/100", r.TotalBet, r.TotalPayout)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestHouseEdge(t *testing.T) {
	t.Parallel()
	var r Results
	if !math.IsNaN(r.HouseEdge()) {
		t.Errorf("edge with nothing wagered = %v, want NaN", r.HouseEdge())
	}
	lo, hi := r.EdgeConfidenceInterval95()
	if !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("interval with nothing wagered = [%v, %v], want NaN", lo, hi)
	}

	r.Add(RoundResult{Bet: 10, Payout: 0})
	r.Add(RoundResult{Bet: 10, Payout: 10})
	r.Add(RoundResult{Bet: 10, Payout: 20})
	r.Add(RoundResult{Bet: 10, Payout: 9})
	if got, want := r.HouseEdge(), 1.0/40.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("edge = %v, want %v", got, want)
	}
}

func TestMergeMatchesSequentialAdds(t *testing.T) {
	t.Parallel()
	rounds := []RoundResult{
		{Bet: 10, Payout: 25},
		{Bet: 10, Payout: 0},
		{Bet: 20, Payout: 40, Doubles: 1},
		{Bet: 10, Payout: 10},
		{Bet: 30, Payout: 20, Splits: 2},
		{Bet: 10, Payout: 5},
	}

	var all Results
	for _, round := range rounds {
		all.Add(round)
	}

	var left, right Results
	for _, round := range rounds[:3] {
		left.Add(round)
	}
	for _, round := range rounds[3:] {
		right.Add(round)
	}
	left.Merge(&right)

	if left != all {
		t.Errorf("merged = %+v, want %+v", left, all)
	}
}

func TestVarianceAndStdError(t *testing.T) {
	t.Parallel()
	var r Results
	// nets are -10, 0, +10: mean 0, sample variance 100
	r.Add(RoundResult{Bet: 10, Payout: 0})
	r.Add(RoundResult{Bet: 10, Payout: 10})
	r.Add(RoundResult{Bet: 10, Payout: 20})

	if got := r.MeanNet(); math.Abs(got) > 1e-12 {
		t.Errorf("mean net = %v, want 0", got)
	}
	if got := r.Variance(); math.Abs(got-100) > 1e-9 {
		t.Errorf("variance = %v, want 100", got)
	}
	want := math.Sqrt(100.0 / 3.0)
	if got := r.StdError(); math.Abs(got-want) > 1e-9 {
		t.Errorf("stderr = %v, want %v", got, want)
	}

	lo, hi := r.EdgeConfidenceInterval95()
	if lo >= hi {
		t.Errorf("interval [%v, %v] is empty", lo, hi)
	}
	edge := r.HouseEdge()
	if edge < lo || edge > hi {
		t.Errorf("edge %v outside its own interval [%v, %v]", edge, lo, hi)
	}
}

func TestValidateCatchesLedgerMismatch(t *testing.T) {
	t.Parallel()
	r := Results{HandsPlayed: 3, HandsWon: 1, HandsLost: 1}
	if err := r.Validate(); err == nil {
		t.Error("expected ledger mismatch error")
	}
	r = Results{TotalBet: -1}
	if err := r.Validate(); err == nil {
		t.Error("expected negative ledger error")
	}
}
