package engine

import "github.com/clavichord/chesscompare/internal/rules"

// SquareControlScore is the mobility term: the legal move count for the
// side to move, scaled down and signed by that side, so that having
// more options is good for whoever is to move. Gated by
// SquareControlMetric.
func SquareControlScore(pos rules.Position, legalMoveCount int) Score {
	sign := Score(1)
	if pos.SideToMove() == rules.Black {
		sign = -1
	}
	return sign * Score(legalMoveCount) / 20
}
