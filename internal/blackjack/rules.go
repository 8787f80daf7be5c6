package blackjack

// Rules is an immutable snapshot of the table's rule set. It is built once per
// simulation run and consumed read-only by the game engine and the strategy
// engine.
type Rules struct {
	// Dealer behaviour
	DealerHitsSoft17   bool
	DealerPeeks        bool
	EuropeanNoHoleCard bool

	// Player options
	DoubleAfterSplit      bool
	ResplitAces           bool
	HitSplitAces          bool
	LateSurrenderAllowed  bool
	EarlySurrenderAllowed bool

	// Doubling: false restricts doubles to hard 9-11
	DoubleAnyTwoCards bool

	// MaxSplits of 3 allows splitting to four hands
	MaxSplits int

	// Shoe composition
	NumDecks        int
	ShoePenetration float64

	// Payouts: 1.5 is 3:2 blackjack, 2.0 is 2:1 insurance
	BlackjackPayout float64
	InsurancePayout float64

	// Charlie rules: an unbusted five/six-card hand wins immediately
	FiveCardCharlie bool
	SixCardCharlie  bool
}

// DefaultRules returns the common six-deck Vegas shoe game: dealer stands on
// soft 17 and peeks for blackjack, DAS allowed, split aces get one card, late
// surrender offered, 3:2 blackjack.
func DefaultRules() Rules {
	return Rules{
		DealerHitsSoft17:      false,
		DealerPeeks:           true,
		EuropeanNoHoleCard:    false,
		DoubleAfterSplit:      true,
		ResplitAces:           false,
		HitSplitAces:          false,
		LateSurrenderAllowed:  true,
		EarlySurrenderAllowed: false,
		DoubleAnyTwoCards:     true,
		MaxSplits:             3,
		NumDecks:              6,
		ShoePenetration:       0.75,
		BlackjackPayout:       1.5,
		InsurancePayout:       2.0,
	}
}

// VegasStripRules is DefaultRules without surrender, the classic Strip game
func VegasStripRules() Rules {
	r := DefaultRules()
	r.LateSurrenderAllowed = false
	return r
}

// SingleDeckRules models the old-style single-deck game: H17, no DAS, no
// surrender, and the commonly degraded 6:5 blackjack
func SingleDeckRules() Rules {
	r := DefaultRules()
	r.NumDecks = 1
	r.DealerHitsSoft17 = true
	r.DoubleAfterSplit = false
	r.LateSurrenderAllowed = false
	r.BlackjackPayout = 1.2
	return r
}
