package blackjack

import (
	"strconv"
	"strings"
)

const blackjackValue = 21

// Hand is an ordered, growable sequence of cards. Each hand is owned by
// exactly one seat (or the dealer) and is never shared.
type Hand struct {
	cards []Card
}

// NewHand creates an empty hand with room for the initial two cards
func NewHand() *Hand {
	return &Hand{cards: make([]Card, 0, 2)}
}

// Add appends a card to the hand
func (h *Hand) Add(card Card) {
	h.cards = append(h.cards, card)
}

// PopLast removes and returns the most recently added card. It is only called
// by split, which the caller gates behind CanSplit; popping from an empty hand
// panics.
func (h *Hand) PopLast() Card {
	card := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]
	return card
}

// Cards returns the hand's cards in insertion order
func (h *Hand) Cards() []Card {
	return h.cards
}

// Count returns the number of cards in the hand
func (h *Hand) Count() int {
	return len(h.cards)
}

// Value returns the blackjack value of the hand. Each ace counts as 11 when
// the running total allows it and 1 otherwise, taken in any order; the result
// is the same regardless.
func (h *Hand) Value() int {
	sum := 0
	aces := 0
	for _, c := range h.cards {
		if c.IsAce() {
			aces++
		} else {
			sum += c.Value()
		}
	}
	for i := 0; i < aces; i++ {
		if sum+11 <= blackjackValue {
			sum += 11
		} else {
			sum++
		}
	}
	return sum
}

// IsSoft returns true if the hand holds an Ace that can still count as 11.
// Only one Ace's flexibility matters: with two or more Aces at most one can be
// 11 without busting, which is the conventional definition.
func (h *Hand) IsSoft() bool {
	sum := 0
	hasAce := false
	for _, c := range h.cards {
		if c.IsAce() {
			hasAce = true
		} else {
			sum += c.Value()
		}
	}
	return hasAce && sum <= blackjackValue-11
}

// IsBust returns true if the hand's value exceeds 21
func (h *Hand) IsBust() bool {
	return h.Value() > blackjackValue
}

// IsBlackjack returns true for a two-card 21. A three-card 21 is just 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == blackjackValue
}

// CanSplit returns true for a two-card hand whose cards share a point value
// (any ten-value pair splits under this rule, e.g. K-T)
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Value() == h.cards[1].Value()
}

// CanDouble returns true while the hand still holds exactly two cards
func (h *Hand) CanDouble() bool {
	return len(h.cards) == 2
}

// String renders the hand compactly, e.g. "A♠ T♥ (21)"
func (h *Hand) String() string {
	var sb strings.Builder
	for i, c := range h.cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Short())
	}
	sb.WriteString(" (")
	if h.IsSoft() {
		sb.WriteString("soft ")
	}
	sb.WriteString(strconv.Itoa(h.Value()))
	sb.WriteByte(')')
	return sb.String()
}
