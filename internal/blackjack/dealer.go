package blackjack

// DealerShouldHit implements the fixed dealer policy: hit below 17, and hit a
// soft 17 when the rules say so. This is the single source of truth for dealer
// play; the simulator must not re-implement the threshold.
func DealerShouldHit(hand *Hand, rules Rules) bool {
	value := hand.Value()
	if value < 17 {
		return true
	}
	return rules.DealerHitsSoft17 && value == 17 && hand.IsSoft()
}
