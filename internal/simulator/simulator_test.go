package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjacksim/internal/blackjack"
)

func testConfig(hands int) Config {
	return Config{
		Hands:      hands,
		Rules:      blackjack.DefaultRules(),
		BetPerHand: 10.0,
		Seed:       42,
		Workers:    1,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := testConfig(1000)
	require.NoError(t, valid.Validate())

	for name, mutate := range map[string]func(*Config){
		"zero hands":       func(c *Config) { c.Hands = 0 },
		"negative bet":     func(c *Config) { c.BetPerHand = -1 },
		"zero decks":       func(c *Config) { c.Rules.NumDecks = 0 },
		"negative splits":  func(c *Config) { c.Rules.MaxSplits = -1 },
		"negative workers": func(c *Config) { c.Workers = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			config := testConfig(1000)
			mutate(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	_, err := New(Config{}).Run()
	require.Error(t, err)
}

func TestRunLedgerConsistency(t *testing.T) {
	t.Parallel()
	config := testConfig(5000)
	results, err := New(config).Run()
	require.NoError(t, err)

	assert.Equal(t, config.Hands, results.HandsPlayed)
	assert.Equal(t, results.HandsPlayed, results.HandsWon+results.HandsLost+results.HandsPushed)
	require.NoError(t, results.Validate())

	// every round stakes at least the base bet; splits and doubles only add
	assert.GreaterOrEqual(t, results.TotalBet, float64(config.Hands)*config.BetPerHand)
	assert.GreaterOrEqual(t, results.TotalPayout, 0.0)
}

func TestRunDeterministicForSeed(t *testing.T) {
	t.Parallel()
	config := testConfig(2000)

	first, err := New(config).Run()
	require.NoError(t, err)
	second, err := New(config).Run()
	require.NoError(t, err)
	require.Equal(t, first, second)

	config.Seed = 43
	other, err := New(config).Run()
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestRunParallelMatchesLedger(t *testing.T) {
	t.Parallel()
	config := testConfig(4001) // uneven split across workers
	config.Workers = 4

	results, err := New(config).Run()
	require.NoError(t, err)
	assert.Equal(t, config.Hands, results.HandsPlayed)
	require.NoError(t, results.Validate())

	// same seed and worker count reproduces the run exactly
	again, err := New(config).Run()
	require.NoError(t, err)
	require.Equal(t, results, again)
}

func TestHouseEdgeIsPlausible(t *testing.T) {
	t.Parallel()
	config := testConfig(200000)

	results, err := New(config).Run()
	require.NoError(t, err)

	// six-deck S17 DAS LS under basic strategy runs a house edge of roughly
	// half a percent; anything outside a few percent means broken payouts
	edge := results.HouseEdge()
	assert.Greater(t, edge, -0.02, "edge %f too player-favourable", edge)
	assert.Less(t, edge, 0.03, "edge %f too house-favourable", edge)

	lo, hi := results.EdgeConfidenceInterval95()
	assert.Less(t, lo, hi)
	assert.GreaterOrEqual(t, edge, lo)
	assert.LessOrEqual(t, edge, hi)

	// splits and doubles both occur under basic strategy at these stakes
	assert.Positive(t, results.SplitsTaken)
	assert.Positive(t, results.DoublesTaken)
}

func TestSingleDeckRulesRun(t *testing.T) {
	t.Parallel()
	config := testConfig(5000)
	config.Rules = blackjack.SingleDeckRules()

	results, err := New(config).Run()
	require.NoError(t, err)
	assert.Equal(t, config.Hands, results.HandsPlayed)
	require.NoError(t, results.Validate())
}
