package blackjack

import (
	"fmt"
	rand "math/rand/v2"
)

// Shoe holds one or more 52-card decks dealt sequentially from a cursor.
// Shuffling uses Fisher-Yates driven by an explicit RNG so that every run is
// reproducible from its seed. rand/v2's IntN rejects out-of-range samples
// internally, so the shuffle carries no modulo bias.
type Shoe struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewShoe creates a shuffled shoe of numDecks decks using the explicit RNG
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	if numDecks < 1 {
		panic(fmt.Sprintf("blackjack: shoe needs at least one deck, got %d", numDecks))
	}
	s := &Shoe{
		cards: make([]Card, numDecks*CardsPerDeck),
		rng:   rng,
	}
	for i := range s.cards {
		s.cards[i] = Card(i % CardsPerDeck)
	}
	s.Shuffle()
	return s
}

// Shuffle reshuffles the whole shoe in place and resets the cursor
func (s *Shoe) Shuffle() {
	s.next = 0
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw returns the card at the cursor and advances it. Drawing from a depleted
// shoe is a caller contract violation and panics: silently dealing a zero card
// would corrupt every statistic downstream.
func (s *Shoe) Draw() Card {
	if s.next >= len(s.cards) {
		panic("blackjack: draw from depleted shoe")
	}
	card := s.cards[s.next]
	s.next++
	return card
}

// CardsRemaining returns the number of undealt cards
func (s *Shoe) CardsRemaining() int {
	return len(s.cards) - s.next
}

// TotalCards returns the shoe's full capacity
func (s *Shoe) TotalCards() int {
	return len(s.cards)
}

// NeedsReshuffle reports whether the cursor has passed the penetration point
// (0.75 means reshuffle once three quarters of the shoe has been dealt).
// The simulator deals each round from a fresh shoe so it never consults this;
// it exists for continuous-shoe callers.
func (s *Shoe) NeedsReshuffle(penetration float64) bool {
	return float64(s.next) >= float64(len(s.cards))*penetration
}
