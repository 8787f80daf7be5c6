// Package strategy implements the fixed basic-strategy decision tables and
// the lookup engine that maps a hand situation to a player action. Decisions
// are pure functions of the hand, the dealer up-card, the rule set and the
// caller-supplied capability flags; the tables themselves never change after
// process start.
package strategy

import (
	"github.com/lox/blackjacksim/internal/blackjack"
)

// Decide selects the basic-strategy action for a player hand against the
// dealer's up-card. Precedence, first match wins: pair split, soft total,
// late surrender, hard total. canSplit, canDouble and canSurrender gate what
// the table may prescribe; a prescribed double degrades to its fallback when
// doubling is unavailable.
func Decide(hand *blackjack.Hand, upCard blackjack.Card, rules blackjack.Rules, canSplit, canDouble, canSurrender bool) blackjack.Action {
	value := hand.Value()
	dealerIdx := dealerIndex(upCard)

	if canSplit && hand.CanSplit() {
		switch pairs[pairIndex(hand.Cards()[0].Rank())][dealerIdx] {
		case split:
			return blackjack.Split
		case splitIfDAS:
			if rules.DoubleAfterSplit {
				return blackjack.Split
			}
		}
	}

	if hand.IsSoft() {
		if value >= 21 {
			// soft 21 sits past the table and is always a stand
			return blackjack.Stand
		}
		if value < softBase {
			// soft 12 is an ace pair that cannot be split; always a hit
			return blackjack.Hit
		}
		switch softTotals[value-softBase][dealerIdx] {
		case softStand:
			return blackjack.Stand
		case softDoubleOrHit:
			if canDouble && rules.DoubleAnyTwoCards {
				return blackjack.Double
			}
			return blackjack.Hit
		case softDoubleOrStand:
			if canDouble && rules.DoubleAnyTwoCards {
				return blackjack.Double
			}
			return blackjack.Stand
		default:
			return blackjack.Hit
		}
	}

	if rules.LateSurrenderAllowed && canSurrender && value >= surBase && value < surBase+numSurTotals {
		if surrender[value-surBase][dealerIdx] {
			return blackjack.Surrender
		}
	}

	if value >= 17 {
		return blackjack.Stand
	}
	if value < hardBase {
		return blackjack.Hit
	}
	switch hardTotals[value-hardBase][dealerIdx] {
	case hardStand:
		return blackjack.Stand
	case hardDouble:
		if canDouble {
			return blackjack.Double
		}
		return blackjack.Hit
	default:
		return blackjack.Hit
	}
}

// dealerIndex maps the up-card's point value 2-11 onto 0-9; the Ace's soft
// value of 11 puts it on the last column.
func dealerIndex(upCard blackjack.Card) int {
	return upCard.Value() - 2
}

// pairIndex maps a pair's rank onto the pair table rows: 2-2 through 9-9 on
// 0-7, any ten-value pair on 8, aces on 9.
func pairIndex(rank blackjack.Rank) int {
	switch {
	case rank == blackjack.Ace:
		return 9
	case rank >= blackjack.Ten:
		return 8
	default:
		return int(rank) - 1
	}
}
