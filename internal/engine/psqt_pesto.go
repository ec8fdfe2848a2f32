package engine

import (
	"math/bits"

	"github.com/clavichord/chesscompare/internal/rules"
)

// maxPhase is the total non-king material at the start of the game in
// the spec's own units (8 pawns + 2 knights + 2 bishops + 2 rooks + 1
// queen, per side, summed over both sides): 2*(8*1 + 2*3 + 2*3 + 2*5 +
// 9) = 78.
const maxPhase = 78

// mgEg is a middlegame/endgame score pair, blended by Phase.
type mgEg struct {
	MG, EG Score
}

func (a mgEg) add(b mgEg) mgEg      { return mgEg{a.MG + b.MG, a.EG + b.EG} }
func (a mgEg) sub(b mgEg) mgEg      { return mgEg{a.MG - b.MG, a.EG - b.EG} }
func (a mgEg) negate() mgEg         { return mgEg{-a.MG, -a.EG} }

// Phase returns the tapering material factor M, clamped to [0, 78].
// Pawn promotion chains could in principle push non-king material
// above the starting total; clamping keeps (maxPhase - M) from going
// negative.
func Phase(pos rules.Position) Score {
	m := NonKingMaterial(pos)
	if m > maxPhase {
		m = maxPhase
	}
	if m < 0 {
		m = 0
	}
	return m
}

// blend linearly interpolates a middlegame/endgame pair by phase M:
// (M*mg + (78-M)*eg) / 78.
func blend(pair mgEg, m Score) Score {
	return (pair.MG*m + pair.EG*(maxPhase-m)) / maxPhase
}

func pestoSquareValue(c rules.Color, pt rules.PieceType, sq uint8) mgEg {
	if c == rules.Black {
		sq = mirror(sq)
	}
	return mgEg{MG: pestoMG[pt][sq], EG: pestoEG[pt][sq]}
}

func pestoDotProduct(c rules.Color, pt rules.PieceType, bb uint64) mgEg {
	var total mgEg
	for bb != 0 {
		sq := uint8(bits.TrailingZeros64(bb))
		total = total.add(pestoSquareValue(c, pt, sq))
		bb &= bb - 1
	}
	return total
}

// PestoPSQTMemo caches per-piece, per-color mg/eg dot products keyed by
// the intersecting bitboard, mirroring NaivePSQTMemo's structure.
type PestoPSQTMemo struct {
	byPiece [2][6]map[uint64]mgEg
}

// NewPestoPSQTMemo creates an empty set of memoization maps.
func NewPestoPSQTMemo() *PestoPSQTMemo {
	m := &PestoPSQTMemo{}
	m.Clear()
	return m
}

// Clear empties every per-piece, per-color map.
func (m *PestoPSQTMemo) Clear() {
	for c := range m.byPiece {
		for i := range m.byPiece[c] {
			m.byPiece[c][i] = make(map[uint64]mgEg)
		}
	}
}

func (m *PestoPSQTMemo) dotProduct(c rules.Color, pt rules.PieceType, bb uint64) mgEg {
	table := m.byPiece[c][pt]
	if v, ok := table[bb]; ok {
		return v
	}
	v := pestoDotProduct(c, pt, bb)
	table[bb] = v
	return v
}

// TaperedPestoScore recomputes the full tapered PSQT term from
// scratch: for each piece type, the White dot product minus the Black
// dot product, blended between middlegame and endgame tables by the
// current material phase. Gated by TAPERED_EVERY_PESTO_PSQT.
func TaperedPestoScore(pos rules.Position, memo *PestoPSQTMemo) Score {
	var total mgEg
	for pt := rules.Pawn; pt <= rules.King; pt++ {
		white := memo.dotProduct(rules.White, pt, pos.PieceBitboard(rules.White, pt))
		black := memo.dotProduct(rules.Black, pt, pos.PieceBitboard(rules.Black, pt))
		total = total.add(white.sub(black))
	}
	return blend(total, Phase(pos))
}

// IncrementalPSQT accumulates the tapered mg/eg PSQT difference across
// a line of play instead of recomputing it at every node. It is
// updated move by move: subtract the moving piece's contribution at
// its source square, add it back at the destination, and subtract a
// captured piece's contribution entirely. The phase factor is still
// evaluated fresh from the position's material (it is cheap and
// doesn't merit incremental tracking of its own).
type IncrementalPSQT struct {
	total mgEg
}

// NewIncrementalPSQT seeds an accumulator by computing the full tapered
// PSQT difference for pos from scratch. Call this once when starting a
// new line of incremental tracking (e.g. at the root of a search).
func NewIncrementalPSQT(pos rules.Position, memo *PestoPSQTMemo) IncrementalPSQT {
	var total mgEg
	for pt := rules.Pawn; pt <= rules.King; pt++ {
		white := memo.dotProduct(rules.White, pt, pos.PieceBitboard(rules.White, pt))
		black := memo.dotProduct(rules.Black, pt, pos.PieceBitboard(rules.Black, pt))
		total = total.add(white.sub(black))
	}
	return IncrementalPSQT{total: total}
}

// ApplyMove returns a new accumulator reflecting the effect of moving a
// piece of type pt and color mover from `from` to `to`, optionally
// capturing a piece of type capturedType belonging to the opponent.
// Sign follows the side to move: +1 for White's move, -1 for Black's,
// matching the spec's incremental-delta convention.
func (acc IncrementalPSQT) ApplyMove(mover rules.Color, pt rules.PieceType, from, to uint8, captured rules.PieceType, hasCapture bool) IncrementalPSQT {
	sign := Score(1)
	if mover == rules.Black {
		sign = -1
	}

	fromVal := pestoSquareValue(mover, pt, from)
	toVal := pestoSquareValue(mover, pt, to)
	delta := toVal.sub(fromVal)
	if sign < 0 {
		delta = delta.negate()
	}
	total := acc.total.add(delta)

	if hasCapture {
		opponent := mover.Opponent()
		capVal := pestoSquareValue(opponent, captured, to)
		// Removing the opponent's piece takes its contribution out of
		// the side it was subtracted from in total = white.sub(black),
		// so it moves total by the same sign as the mover's own delta.
		if sign < 0 {
			capVal = capVal.negate()
		}
		total = total.add(capVal)
	}

	return IncrementalPSQT{total: total}
}

// Score blends the accumulated mg/eg difference by the position's
// current material phase.
func (acc IncrementalPSQT) Score(pos rules.Position) Score {
	return blend(acc.total, Phase(pos))
}
