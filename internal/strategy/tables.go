package strategy

// The four basic-strategy tables, each indexed [situationIdx][dealerIdx].
// dealerIdx maps the dealer up-card's point value 2-11 to 0-9 (an Ace shows
// as 11 and lands on index 9). Rows below read across dealer 2,3,4,5,6,7,8,9,T,A,
// matching the printed chart row by row.

// hardAction is a hard-total prescription
type hardAction int

const (
	hardHit hardAction = iota
	hardStand
	hardDouble // demoted to hit when doubling is unavailable
)

// softAction is a soft-total prescription with its fallback baked in
type softAction int

const (
	softHit softAction = iota
	softStand
	softDoubleOrHit
	softDoubleOrStand
)

// pairAction is a split prescription
type pairAction int

const (
	noSplit pairAction = iota
	split
	splitIfDAS // split only when double-after-split is allowed
)

const (
	numDealerCards = 10
	numHardTotals  = 9  // player 8 through 16
	numSoftTotals  = 8  // A-2 (13) through A-9 (20)
	numPairRanks   = 10 // 2-2 through 9-9, then T-T, then A-A
	numSurTotals   = 3  // player 14 through 16
)

const (
	hardBase = 8
	softBase = 13
	surBase  = 14
)

// Shorthand so the literals below read like the printed chart
const (
	h  = hardHit
	s  = hardStand
	d  = hardDouble
	sh = softHit
	ss = softStand
	dh = softDoubleOrHit
	ds = softDoubleOrStand
	n  = noSplit
	y  = split
	yd = splitIfDAS
)

// hardTotals rows are player totals 8..16
var hardTotals = [numHardTotals][numDealerCards]hardAction{
	{h, h, h, h, h, h, h, h, h, h}, //  8
	{h, d, d, d, d, h, h, h, h, h}, //  9
	{d, d, d, d, d, d, d, d, h, h}, // 10
	{d, d, d, d, d, d, d, d, d, d}, // 11
	{h, h, s, s, s, h, h, h, h, h}, // 12
	{s, s, s, s, s, h, h, h, h, h}, // 13
	{s, s, s, s, s, h, h, h, h, h}, // 14
	{s, s, s, s, s, h, h, h, h, h}, // 15
	{s, s, s, s, s, h, h, h, h, h}, // 16
}

// softTotals rows are A-2 (13) .. A-9 (20)
var softTotals = [numSoftTotals][numDealerCards]softAction{
	{sh, sh, sh, dh, dh, sh, sh, sh, sh, sh}, // A-2
	{sh, sh, sh, dh, dh, sh, sh, sh, sh, sh}, // A-3
	{sh, sh, dh, dh, dh, sh, sh, sh, sh, sh}, // A-4
	{sh, sh, dh, dh, dh, sh, sh, sh, sh, sh}, // A-5
	{sh, dh, dh, dh, dh, sh, sh, sh, sh, sh}, // A-6
	{ds, ds, ds, ds, ds, ss, ss, sh, sh, sh}, // A-7
	{ss, ss, ss, ss, ds, ss, ss, ss, ss, ss}, // A-8
	{ss, ss, ss, ss, ss, ss, ss, ss, ss, ss}, // A-9
}

// pairs rows are 2-2 .. 9-9, T-T, A-A
var pairs = [numPairRanks][numDealerCards]pairAction{
	{yd, yd, y, y, y, y, n, n, n, n}, // 2-2
	{yd, yd, y, y, y, y, n, n, n, n}, // 3-3
	{n, n, n, yd, yd, n, n, n, n, n}, // 4-4
	{n, n, n, n, n, n, n, n, n, n},   // 5-5
	{yd, yd, yd, yd, yd, n, n, n, n, n}, // 6-6
	{y, y, y, y, y, y, n, n, n, n},   // 7-7
	{y, y, y, y, y, y, y, y, y, y},   // 8-8
	{y, y, y, y, y, n, y, y, n, n},   // 9-9
	{n, n, n, n, n, n, n, n, n, n},   // T-T
	{y, y, y, y, y, y, y, y, y, y},   // A-A
}

// surrender rows are player totals 14..16; true means late surrender
var surrender = [numSurTotals][numDealerCards]bool{
	{false, false, false, false, false, false, false, false, false, false}, // 14
	{false, false, false, false, false, false, false, false, true, false},  // 15
	{false, false, false, false, false, false, false, true, true, true},    // 16
}
