package statistics

import (
	"fmt"
	"math"
)

// RoundResult is the outcome of a single simulated round
type RoundResult struct {
	Bet     float64 // sum of all seat bets at resolution, insurance included once taken
	Payout  float64 // total returned by Resolve
	Doubles int     // doubles taken during the round
	Splits  int     // splits taken during the round
	Seed    int64   // worker stream seed, for replaying a round
}

// Results accumulates simulation statistics across rounds. All counters are
// monotonic; the house edge is derived on read.
type Results struct {
	HandsPlayed  int
	HandsWon     int
	HandsLost    int
	HandsPushed  int
	DoublesTaken int
	SplitsTaken  int
	TotalBet     float64
	TotalPayout  float64

	// net units per round (payout - bet), tracked as sum and sum of squares
	// for the standard error of the edge estimate
	sumNet  float64
	sumNet2 float64
}

// Add incorporates one round. A round is won when it returned more than was
// staked, lost when it returned less, and pushed when the ledger is flat.
func (r *Results) Add(result RoundResult) {
	r.HandsPlayed++
	switch {
	case result.Payout > result.Bet:
		r.HandsWon++
	case result.Payout < result.Bet:
		r.HandsLost++
	default:
		r.HandsPushed++
	}
	r.DoublesTaken += result.Doubles
	r.SplitsTaken += result.Splits
	r.TotalBet += result.Bet
	r.TotalPayout += result.Payout

	net := result.Payout - result.Bet
	r.sumNet += net
	r.sumNet2 += net * net
}

// Merge folds another result set into this one; used to combine per-worker
// results after a parallel run.
func (r *Results) Merge(other *Results) {
	r.HandsPlayed += other.HandsPlayed
	r.HandsWon += other.HandsWon
	r.HandsLost += other.HandsLost
	r.HandsPushed += other.HandsPushed
	r.DoublesTaken += other.DoublesTaken
	r.SplitsTaken += other.SplitsTaken
	r.TotalBet += other.TotalBet
	r.TotalPayout += other.TotalPayout
	r.sumNet += other.sumNet
	r.sumNet2 += other.sumNet2
}

// HouseEdge returns the fraction of each wagered unit retained by the house.
// Undefined (NaN) until something has been wagered.
func (r *Results) HouseEdge() float64 {
	if r.TotalBet == 0 {
		return math.NaN()
	}
	return (r.TotalBet - r.TotalPayout) / r.TotalBet
}

// MeanNet returns the mean net units per round
func (r *Results) MeanNet() float64 {
	if r.HandsPlayed == 0 {
		return 0
	}
	return r.sumNet / float64(r.HandsPlayed)
}

// Variance returns the sample variance of per-round net units
func (r *Results) Variance() float64 {
	if r.HandsPlayed < 2 {
		return 0
	}
	mean := r.MeanNet()
	return (r.sumNet2 - float64(r.HandsPlayed)*mean*mean) / float64(r.HandsPlayed-1)
}

// StdError returns the standard error of the mean net units
func (r *Results) StdError() float64 {
	if r.HandsPlayed == 0 {
		return 0
	}
	return math.Sqrt(r.Variance()) / math.Sqrt(float64(r.HandsPlayed))
}

// EdgeConfidenceInterval95 returns the 95% confidence interval on the house
// edge, derived from the per-round net variance scaled by the mean bet.
func (r *Results) EdgeConfidenceInterval95() (float64, float64) {
	edge := r.HouseEdge()
	if math.IsNaN(edge) {
		return math.NaN(), math.NaN()
	}
	meanBet := r.TotalBet / float64(r.HandsPlayed)
	margin := 1.96 * r.StdError() / meanBet
	return edge - margin, edge + margin
}

// Validate checks the internal ledger for consistency
func (r *Results) Validate() error {
	if r.HandsWon+r.HandsLost+r.HandsPushed != r.HandsPlayed {
		return fmt.Errorf("round ledger mismatch: %d won + %d lost + %d pushed != %d played",
			r.HandsWon, r.HandsLost, r.HandsPushed, r.HandsPlayed)
	}
	if r.TotalBet < 0 || r.TotalPayout < 0 {
		return fmt.Errorf("negative ledger: bet %.2f payout %.2f", r.TotalBet, r.TotalPayout)
	}
	return nil
}
