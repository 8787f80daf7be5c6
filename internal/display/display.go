// Package display renders simulation reports and strategy charts for the
// terminal.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjacksim/internal/blackjack"
	"github.com/lox/blackjacksim/internal/statistics"
	"github.com/lox/blackjacksim/internal/strategy"
)

// Styles contains styling for report output
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Win    lipgloss.Style
	Lose   lipgloss.Style
	Push   lipgloss.Style
	Hit    lipgloss.Style
	Stand  lipgloss.Style
	Double lipgloss.Style
	Split  lipgloss.Style
	Give   lipgloss.Style
}

// NewStyles creates the default style set
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Push: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Hit: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Stand: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Double: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Split: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF79C6")).
			Bold(true),
		Give: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}

// Report renders the final simulation summary
func (s *Styles) Report(results *statistics.Results, duration time.Duration) string {
	var sb strings.Builder

	sb.WriteString(s.Header.Render("SIMULATION RESULTS"))
	sb.WriteString("\n\n")

	roundsPerSec := float64(results.HandsPlayed) / duration.Seconds()
	s.row(&sb, "Rounds played", fmt.Sprintf("%d (%.0f/sec, %v total)",
		results.HandsPlayed, roundsPerSec, duration.Round(time.Millisecond)))

	pct := func(n int) float64 {
		if results.HandsPlayed == 0 {
			return 0
		}
		return float64(n) * 100 / float64(results.HandsPlayed)
	}
	sb.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
		s.Label.Render("Outcomes:"),
		s.Win.Render(fmt.Sprintf("%d won (%.1f%%)", results.HandsWon, pct(results.HandsWon))),
		s.Lose.Render(fmt.Sprintf("%d lost (%.1f%%)", results.HandsLost, pct(results.HandsLost))),
		s.Push.Render(fmt.Sprintf("%d pushed (%.1f%%)", results.HandsPushed, pct(results.HandsPushed)))))

	s.row(&sb, "Doubles taken", fmt.Sprintf("%d", results.DoublesTaken))
	s.row(&sb, "Splits taken", fmt.Sprintf("%d", results.SplitsTaken))
	s.row(&sb, "Total wagered", fmt.Sprintf("%.2f", results.TotalBet))
	s.row(&sb, "Total returned", fmt.Sprintf("%.2f", results.TotalPayout))

	edge := results.HouseEdge()
	low, high := results.EdgeConfidenceInterval95()
	edgeStyle := s.Win
	if edge > 0 {
		edgeStyle = s.Lose
	}
	sb.WriteString(fmt.Sprintf("%s %s %s\n",
		s.Label.Render("House edge:"),
		edgeStyle.Render(fmt.Sprintf("%.4f%%", edge*100)),
		s.Label.Render(fmt.Sprintf("(95%% CI %.4f%% .. %.4f%%)", low*100, high*100))))

	return sb.String()
}

func (s *Styles) row(sb *strings.Builder, label, value string) {
	sb.WriteString(fmt.Sprintf("%s %s\n", s.Label.Render(label+":"), s.Value.Render(value)))
}

// Rules renders the effective rule set
func (s *Styles) Rules(rules blackjack.Rules) string {
	var sb strings.Builder
	sb.WriteString(s.Header.Render("TABLE RULES"))
	sb.WriteString("\n\n")
	s.row(&sb, "Decks", fmt.Sprintf("%d (%.0f%% penetration)", rules.NumDecks, rules.ShoePenetration*100))
	s.row(&sb, "Dealer", fmt.Sprintf("%s soft 17, peek %v", hitOrStand(rules.DealerHitsSoft17), rules.DealerPeeks))
	s.row(&sb, "Blackjack pays", fmt.Sprintf("%.1f:1", rules.BlackjackPayout))
	s.row(&sb, "Insurance pays", fmt.Sprintf("%.0f:1", rules.InsurancePayout))
	s.row(&sb, "Double after split", fmt.Sprintf("%v", rules.DoubleAfterSplit))
	s.row(&sb, "Double any two", fmt.Sprintf("%v", rules.DoubleAnyTwoCards))
	s.row(&sb, "Max splits", fmt.Sprintf("%d", rules.MaxSplits))
	s.row(&sb, "Resplit aces", fmt.Sprintf("%v", rules.ResplitAces))
	s.row(&sb, "Hit split aces", fmt.Sprintf("%v", rules.HitSplitAces))
	s.row(&sb, "Late surrender", fmt.Sprintf("%v", rules.LateSurrenderAllowed))
	if rules.FiveCardCharlie || rules.SixCardCharlie {
		s.row(&sb, "Charlie", fmt.Sprintf("five-card %v, six-card %v", rules.FiveCardCharlie, rules.SixCardCharlie))
	}
	return sb.String()
}

func hitOrStand(hits bool) string {
	if hits {
		return "hits"
	}
	return "stands on"
}

// Chart renders the full basic-strategy chart for the given rules by querying
// the strategy engine across every situation it distinguishes.
func (s *Styles) Chart(rules blackjack.Rules) string {
	var sb strings.Builder

	upCards := make([]blackjack.Card, 0, 10)
	for rank := blackjack.Two; rank <= blackjack.Ten; rank++ {
		upCards = append(upCards, blackjack.NewCard(rank, blackjack.Spades))
	}
	upCards = append(upCards, blackjack.NewCard(blackjack.Ace, blackjack.Spades))

	header := "      2  3  4  5  6  7  8  9  T  A"

	sb.WriteString(s.Header.Render("HARD TOTALS"))
	sb.WriteString("\n" + header + "\n")
	for total := 8; total <= 16; total++ {
		sb.WriteString(fmt.Sprintf("  %2d ", total))
		hand := hardHand(total)
		for _, up := range upCards {
			action := strategy.Decide(hand, up, rules, false, true, false)
			sb.WriteString(" " + s.actionCell(action))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.Header.Render("SOFT TOTALS"))
	sb.WriteString("\n" + header + "\n")
	for total := 13; total <= 20; total++ {
		sb.WriteString(fmt.Sprintf(" A-%d ", total-11))
		hand := softHand(total)
		for _, up := range upCards {
			action := strategy.Decide(hand, up, rules, false, true, false)
			sb.WriteString(" " + s.actionCell(action))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.Header.Render("PAIRS"))
	sb.WriteString("\n" + header + "\n")
	pairRanks := []blackjack.Rank{
		blackjack.Two, blackjack.Three, blackjack.Four, blackjack.Five,
		blackjack.Six, blackjack.Seven, blackjack.Eight, blackjack.Nine,
		blackjack.Ten, blackjack.Ace,
	}
	for _, rank := range pairRanks {
		sb.WriteString(fmt.Sprintf(" %s-%s ", rank.Short(), rank.Short()))
		hand := pairHand(rank)
		for _, up := range upCards {
			action := strategy.Decide(hand, up, rules, true, true, false)
			if action != blackjack.Split {
				sb.WriteString(" " + s.Label.Render("·"))
				continue
			}
			sb.WriteString(" " + s.Split.Render("P"))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.Header.Render("LATE SURRENDER"))
	sb.WriteString("\n" + header + "\n")
	for total := 14; total <= 16; total++ {
		sb.WriteString(fmt.Sprintf("  %2d ", total))
		hand := hardHand(total)
		for _, up := range upCards {
			action := strategy.Decide(hand, up, rules, false, false, true)
			if action == blackjack.Surrender {
				sb.WriteString(" " + s.Give.Render("R"))
			} else {
				sb.WriteString(" " + s.Label.Render("·"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (s *Styles) actionCell(action blackjack.Action) string {
	switch action {
	case blackjack.Stand:
		return s.Stand.Render("S")
	case blackjack.Double:
		return s.Double.Render("D")
	case blackjack.Split:
		return s.Split.Render("P")
	case blackjack.Surrender:
		return s.Give.Render("R")
	default:
		return s.Hit.Render("H")
	}
}

// hardHand builds a two-card hard total that is never a pair or soft
func hardHand(total int) *blackjack.Hand {
	v1 := total / 2
	v2 := total - v1
	if v1 == v2 {
		v1--
		v2++
	}
	hand := blackjack.NewHand()
	hand.Add(blackjack.NewCard(blackjack.Rank(v1-1), blackjack.Hearts))
	hand.Add(blackjack.NewCard(blackjack.Rank(v2-1), blackjack.Spades))
	return hand
}

// softHand builds Ace + (total-11)
func softHand(total int) *blackjack.Hand {
	hand := blackjack.NewHand()
	hand.Add(blackjack.NewCard(blackjack.Ace, blackjack.Hearts))
	hand.Add(blackjack.NewCard(blackjack.Rank(total-11-1), blackjack.Spades))
	return hand
}

func pairHand(rank blackjack.Rank) *blackjack.Hand {
	hand := blackjack.NewHand()
	hand.Add(blackjack.NewCard(rank, blackjack.Hearts))
	hand.Add(blackjack.NewCard(rank, blackjack.Spades))
	return hand
}
