package harness

import (
	"math/rand"
	"time"

	"github.com/clavichord/chesscompare/internal/engine"
)

// PairResult is the outcome of playing two engines against each other
// twice from the same random opening, once with each color, so that
// neither engine's result is an artifact of the opening's color bias.
type PairResult struct {
	AsWhite GameInfo // A played White
	AsBlack GameInfo // A played Black

	AWins, BWins, Draws, Inconclusive int
}

// PlayGamePair plays engine A against engine B twice, swapping colors,
// from the same random opening. newA and newB must each produce a
// fresh, empty-cached engine instance; PlayGamePair calls them twice
// apiece so the two games never share a transposition table or
// repetition counter.
func PlayGamePair(newA, newB func() *engine.Engine, rng *rand.Rand, maxPlies int, perMoveBudget time.Duration) PairResult {
	opening := RandomOpening(rng)

	aWhite, bBlack := newA(), newB()
	gameAWhite := PlayGame(aWhite, bBlack, opening, maxPlies, perMoveBudget)

	bWhite, aBlack := newB(), newA()
	gameABlack := PlayGame(bWhite, aBlack, opening, maxPlies, perMoveBudget)

	result := PairResult{AsWhite: gameAWhite, AsBlack: gameABlack}

	// Each game is tallied on its own. A pair where the same color wins
	// both games tallies one win for each engine rather than a separate
	// "same-color double win" category, and an Inconclusive game does
	// not cancel the other game's result.
	tally := func(g GameInfo, aIsWhite bool) {
		switch g.Outcome {
		case Draw:
			result.Draws++
		case Inconclusive:
			result.Inconclusive++
		case WhiteWins:
			if aIsWhite {
				result.AWins++
			} else {
				result.BWins++
			}
		case BlackWins:
			if aIsWhite {
				result.BWins++
			} else {
				result.AWins++
			}
		}
	}
	tally(gameAWhite, true)
	tally(gameABlack, false)

	return result
}
