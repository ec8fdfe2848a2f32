package engine

import (
	"math/bits"

	"github.com/clavichord/chesscompare/internal/rules"
)

// Material values in the spec's own pawn-scaled units: note the king
// is assigned a value too (it is always present on both sides, so its
// contribution to the material difference is always zero; the
// material-phase input of the tapered PESTO term, NonKingMaterial,
// leaves the king out entirely).
const (
	PawnMaterial   Score = 1
	KnightMaterial Score = 3
	BishopMaterial Score = 3
	RookMaterial   Score = 5
	QueenMaterial  Score = 9
	KingMaterial   Score = 1000
)

var materialValues = [6]Score{PawnMaterial, KnightMaterial, BishopMaterial, RookMaterial, QueenMaterial, KingMaterial}

// MaterialScore returns the signed material difference, White minus
// Black, summed across every piece type. It is always on: there is no
// module flag gating it.
func MaterialScore(pos rules.Position) Score {
	var total Score
	for pt := rules.Pawn; pt <= rules.King; pt++ {
		whiteCount := Score(bits.OnesCount64(pos.PieceBitboard(rules.White, pt)))
		blackCount := Score(bits.OnesCount64(pos.PieceBitboard(rules.Black, pt)))
		total += (whiteCount - blackCount) * materialValues[pt]
	}
	return total
}

// NonKingMaterial sums material for both sides excluding the king,
// used as the phase input to the tapered PESTO blend: M = (white+black
// material) - 2*KingMaterial, expressed here directly as the sum of
// non-king pieces.
func NonKingMaterial(pos rules.Position) Score {
	var total Score
	for pt := rules.Pawn; pt < rules.King; pt++ {
		whiteCount := Score(bits.OnesCount64(pos.PieceBitboard(rules.White, pt)))
		blackCount := Score(bits.OnesCount64(pos.PieceBitboard(rules.Black, pt)))
		total += (whiteCount + blackCount) * materialValues[pt]
	}
	return total
}
