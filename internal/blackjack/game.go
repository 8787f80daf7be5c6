package blackjack

import (
	"fmt"
	rand "math/rand/v2"
)

// Action is a player decision for a single hand
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
	Surrender
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Double:
		return "double"
	case Split:
		return "split"
	case Surrender:
		return "surrender"
	default:
		return "unknown"
	}
}

// Phase is the round's lifecycle tag. Keeping it explicit lets the engine
// reject illegal transitions (acting before the deal, resolving twice) instead
// of silently producing corrupt payouts.
type Phase int

const (
	NotStarted Phase = iota
	Dealt
	Resolved
)

// Seat pairs a hand with its bet. Splits append seats, so the hand/bet
// correspondence is structural rather than two parallel slices kept in step
// by convention.
type Seat struct {
	Hand      *Hand
	Bet       float64
	FromSplit bool
}

// Game is the state of a single blackjack round: one shoe, the dealer's hand,
// a growable list of player seats, an insurance side bet and terminal flags.
type Game struct {
	rules        Rules
	shoe         *Shoe
	dealer       *Hand
	seats        []*Seat
	insuranceBet float64
	surrendered  bool
	phase        Phase
}

// NewGame allocates a round with a freshly shuffled shoe and a single seat
// carrying the initial bet.
func NewGame(rules Rules, initialBet float64, rng *rand.Rand) *Game {
	return &Game{
		rules:  rules,
		shoe:   NewShoe(rules.NumDecks, rng),
		dealer: NewHand(),
		seats:  []*Seat{{Hand: NewHand(), Bet: initialBet}},
	}
}

// Rules returns the round's rule set
func (g *Game) Rules() Rules {
	return g.rules
}

// Dealer returns the dealer's hand
func (g *Game) Dealer() *Hand {
	return g.dealer
}

// Seats returns the player's seats in play order
func (g *Game) Seats() []*Seat {
	return g.seats
}

// Shoe returns the round's shoe
func (g *Game) Shoe() *Shoe {
	return g.shoe
}

// Phase returns the round's lifecycle phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Surrendered reports whether the round was surrendered
func (g *Game) Surrendered() bool {
	return g.surrendered
}

// Deal draws the initial two cards for the player and then two for the
// dealer. Per the reference deal order there is no interleaving.
func (g *Game) Deal() {
	if g.phase != NotStarted {
		panic("blackjack: Deal called twice")
	}
	for i := 0; i < 2; i++ {
		g.seats[0].Hand.Add(g.shoe.Draw())
	}
	for i := 0; i < 2; i++ {
		g.dealer.Add(g.shoe.Draw())
	}
	g.phase = Dealt
}

// DealDealer plays out the dealer's hand under the fixed policy. The caller
// skips this when every player seat busted.
func (g *Game) DealDealer() {
	g.mustBeDealt("DealDealer")
	for DealerShouldHit(g.dealer, g.rules) {
		g.dealer.Add(g.shoe.Draw())
	}
}

// PlayAction applies a player action to the seat at handIndex. Capability
// gating (may this hand double, may the table split further) is the caller's
// responsibility; this method only enforces structural invariants.
func (g *Game) PlayAction(action Action, handIndex int) {
	g.mustBeDealt("PlayAction")
	seat := g.seats[handIndex]
	switch action {
	case Hit:
		seat.Hand.Add(g.shoe.Draw())
	case Stand:
		// control advances in the driver, nothing to mutate
	case Double:
		seat.Bet *= 2
		seat.Hand.Add(g.shoe.Draw())
	case Split:
		if !seat.Hand.CanSplit() {
			panic(fmt.Sprintf("blackjack: split of non-pair hand %v", seat.Hand))
		}
		next := &Seat{Hand: NewHand(), Bet: seat.Bet, FromSplit: true}
		next.Hand.Add(seat.Hand.PopLast())
		seat.FromSplit = true
		seat.Hand.Add(g.shoe.Draw())
		next.Hand.Add(g.shoe.Draw())
		g.seats = append(g.seats, next)
	case Surrender:
		// a single flag for the whole round; the driver only offers
		// surrender before any hit or split
		g.surrendered = true
	default:
		panic(fmt.Sprintf("blackjack: unknown action %d", action))
	}
}

// ShouldOfferInsurance reports whether the dealer is showing an Ace in an
// unresolved round
func (g *Game) ShouldOfferInsurance() bool {
	return g.phase == Dealt && g.dealer.Count() > 0 && g.dealer.Cards()[0].IsAce()
}

// TakeInsurance records the side bet. The caller constrains the amount to
// half the original bet; the engine records whatever it is given.
func (g *Game) TakeInsurance(amount float64) {
	g.mustBeDealt("TakeInsurance")
	g.insuranceBet = amount
}

// InsuranceBet returns the recorded insurance side bet
func (g *Game) InsuranceBet() float64 {
	return g.insuranceBet
}

// TotalBet returns the sum of all seat bets, excluding insurance
func (g *Game) TotalBet() float64 {
	total := 0.0
	for _, seat := range g.seats {
		total += seat.Bet
	}
	return total
}

// Resolve settles every seat against the dealer and returns the round's total
// payout. The per-seat multiplier ladder, first match wins:
//
//	surrendered round        0.5
//	charlie (rules enabled)  2.0
//	dealer bust              2.0
//	player bust or behind    0.0
//	unsplit blackjack        1 + BlackjackPayout
//	player ahead             2.0
//	push                     1.0
//
// Insurance pays separately at InsurancePayout on a dealer two-card blackjack;
// the stake itself is a sunk cost tracked in the driver's total bet.
func (g *Game) Resolve() float64 {
	g.mustBeDealt("Resolve")
	dealerValue := g.dealer.Value()
	dealerBust := dealerValue > blackjackValue

	payout := 0.0
	for _, seat := range g.seats {
		payout += seat.Bet * g.seatMultiplier(seat, dealerValue, dealerBust)
	}

	if g.insuranceBet > 0 && g.dealer.IsBlackjack() {
		payout += g.insuranceBet * g.rules.InsurancePayout
	}

	g.phase = Resolved
	return payout
}

func (g *Game) seatMultiplier(seat *Seat, dealerValue int, dealerBust bool) float64 {
	if g.surrendered {
		return 0.5
	}
	value := seat.Hand.Value()
	if value <= blackjackValue && g.isCharlie(seat.Hand) {
		return 2.0
	}
	if dealerBust {
		return 2.0
	}
	switch {
	case value > blackjackValue || value < dealerValue:
		return 0.0
	case seat.Hand.IsBlackjack() && len(g.seats) == 1:
		return 1 + g.rules.BlackjackPayout
	case value > dealerValue:
		return 2.0
	default:
		return 1.0
	}
}

func (g *Game) isCharlie(hand *Hand) bool {
	if g.rules.FiveCardCharlie && hand.Count() >= 5 {
		return true
	}
	return g.rules.SixCardCharlie && hand.Count() >= 6
}

func (g *Game) mustBeDealt(op string) {
	switch g.phase {
	case NotStarted:
		panic(fmt.Sprintf("blackjack: %s before Deal", op))
	case Resolved:
		panic(fmt.Sprintf("blackjack: %s after Resolve", op))
	}
}
