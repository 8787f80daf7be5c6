package blackjack

import "testing"

func TestCardIdentity(t *testing.T) {
	t.Parallel()
	// rank is id mod 13, suit is id div 13
	for id := 0; id < CardsPerDeck; id++ {
		c := Card(id)
		if got := c.Rank(); got != Rank(id%13) {
			t.Errorf("Card(%d).Rank() = %v, want %v", id, got, Rank(id%13))
		}
		if got := c.Suit(); got != Suit(id/13) {
			t.Errorf("Card(%d).Suit() = %v, want %v", id, got, Suit(id/13))
		}
		if NewCard(c.Rank(), c.Suit()) != c {
			t.Errorf("NewCard round-trip failed for id %d", id)
		}
	}
}

func TestCardValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rank Rank
		want int
	}{
		{Ace, 11},
		{Two, 2},
		{Five, 5},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}
	for _, tt := range tests {
		c := NewCard(tt.rank, Clubs)
		if got := c.Value(); got != tt.want {
			t.Errorf("%s value = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()
	c := NewCard(Ace, Spades)
	if got := c.String(); got != "Ace of Spades" {
		t.Errorf("String() = %q, want %q", got, "Ace of Spades")
	}
	if got := c.Short(); got != "A♠" {
		t.Errorf("Short() = %q, want %q", got, "A♠")
	}
	if !c.IsAce() {
		t.Error("Ace of Spades should report IsAce")
	}
}
