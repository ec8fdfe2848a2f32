package engine

import (
	"math/bits"

	"github.com/clavichord/chesscompare/internal/rules"
)

// NaivePSQTMemo caches the naive PSQT dot product, one map per piece
// type and color, keyed by the intersecting bitboard (piece bitboard &
// color bitboard) it was computed from. The map is correct by
// construction: an identical key always yields an identical value, so
// nothing ever needs to invalidate an entry, only reset between games.
type NaivePSQTMemo struct {
	byPiece [2][6]map[uint64]Score
}

// NewNaivePSQTMemo creates an empty set of memoization maps.
func NewNaivePSQTMemo() *NaivePSQTMemo {
	m := &NaivePSQTMemo{}
	m.Clear()
	return m
}

// Clear empties every per-piece, per-color map.
func (m *NaivePSQTMemo) Clear() {
	for c := range m.byPiece {
		for i := range m.byPiece[c] {
			m.byPiece[c][i] = make(map[uint64]Score)
		}
	}
}

func (m *NaivePSQTMemo) dotProduct(c rules.Color, pt rules.PieceType, bb uint64) Score {
	table := m.byPiece[c][pt]
	if v, ok := table[bb]; ok {
		return v
	}
	v := naiveDotProduct(c, pt, bb)
	table[bb] = v
	return v
}

// naiveDotProduct sums table entries for every set bit of bb. White's
// bitboard indexes the table directly; Black's is mirrored vertically
// because the table is written from White's point of view.
func naiveDotProduct(c rules.Color, pt rules.PieceType, bb uint64) Score {
	var total Score
	table := &naivePSQT[pt]
	for bb != 0 {
		sq := uint8(bits.TrailingZeros64(bb))
		if c == rules.Black {
			sq = mirror(sq)
		}
		total += table[sq]
		bb &= bb - 1
	}
	return total
}

// NaivePSQTScore scores the side to move's own piece placement against
// the flat PSQT tables, added unsigned (the term is about the mover's
// own placement, not a White-minus-Black differential). Gated by
// NAIVE_PSQT.
func NaivePSQTScore(pos rules.Position, memo *NaivePSQTMemo) Score {
	side := pos.SideToMove()
	var total Score
	for pt := rules.Pawn; pt <= rules.King; pt++ {
		bb := pos.PieceBitboard(side, pt)
		total += memo.dotProduct(side, pt, bb)
	}
	return total
}
