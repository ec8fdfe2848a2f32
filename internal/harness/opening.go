// Package harness runs engine-versus-engine competitions: single
// games, color-swapped pairs, and parallel batches of pairs, tallying
// outcomes and aggregate search statistics across the batch.
package harness

import (
	"math/rand"

	"github.com/clavichord/chesscompare/internal/rules"
)

// OpeningPlies is how many random plies are played from the starting
// position before either engine starts thinking, so that a batch of
// game pairs doesn't repeat the same handful of main-line openings
// over and over.
const OpeningPlies = 5

// RandomOpening plays OpeningPlies random legal moves from the
// starting position using rng, and returns the resulting position. If
// the game ends (checkmate or stalemate) before OpeningPlies moves have
// been played, it stops early and returns whatever position it
// reached.
func RandomOpening(rng *rand.Rand) rules.Position {
	pos := rules.StartingPosition()
	for i := 0; i < OpeningPlies; i++ {
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			break
		}
		pos = pos.MakeMove(moves[rng.Intn(len(moves))])
	}
	return pos
}
