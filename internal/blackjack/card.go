package blackjack

import "fmt"

const (
	// CardsPerDeck is the number of distinct cards in a single deck.
	CardsPerDeck = 52
	numRanks     = 13
	numSuits     = 4
)

// Rank represents a card rank. Ace is rank 0 so that a card's rank is simply
// its identity modulo 13.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the long-form name of a rank
func (r Rank) String() string {
	names := [numRanks]string{
		"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Jack", "Queen", "King",
	}
	if r < 0 || int(r) >= numRanks {
		return "?"
	}
	return names[r]
}

// Short returns the compact symbol for a rank (e.g. "A", "T", "7")
func (r Rank) Short() string {
	symbols := [numRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K"}
	if r < 0 || int(r) >= numRanks {
		return "?"
	}
	return symbols[r]
}

// Suit represents a card suit
type Suit int

const (
	Diamonds Suit = iota
	Spades
	Hearts
	Clubs
)

// String returns the long-form name of a suit
func (s Suit) String() string {
	names := [numSuits]string{"Diamonds", "Spades", "Hearts", "Clubs"}
	if s < 0 || int(s) >= numSuits {
		return "?"
	}
	return names[s]
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	symbols := [numSuits]string{"♦", "♠", "♥", "♣"}
	if s < 0 || int(s) >= numSuits {
		return "?"
	}
	return symbols[s]
}

// IsRed returns true for Diamonds and Hearts
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Card is a single playing card, stored as an integer identity in [0, 52).
// Rank is id mod 13 and suit is id div 13, so a shoe of N decks is just the
// identities 0..51 repeated N times.
type Card int

// NewCard creates a card from a rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card(int(suit)*numRanks + int(rank))
}

// Rank returns the card's rank
func (c Card) Rank() Rank {
	return Rank(int(c) % numRanks)
}

// Suit returns the card's suit
func (c Card) Suit() Suit {
	return Suit(int(c) / numRanks)
}

// Value returns the blackjack point value of the card. Aces count as 11 here;
// demotion to 1 happens at the hand level.
func (c Card) Value() int {
	switch r := c.Rank(); {
	case r == Ace:
		return 11
	case r > Nine:
		return 10
	default:
		return int(r) + 1
	}
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank() == Ace
}

// String returns the long rendering, e.g. "Ace of Spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank(), c.Suit())
}

// Short returns the compact rendering, e.g. "A♠"
func (c Card) Short() string {
	return c.Rank().Short() + c.Suit().Symbol()
}
