package engine

// Piece-square tables, indexed 0 (a1) to 63 (h8) from White's point of
// view. Values are expressed in the same pawn-scaled units as
// MaterialScore (a "1.0" entry is worth one pawn). The tables share
// the piece bitboards' a1 = 0 orientation, so White's squares index
// them directly; Black's contribution uses the vertically mirrored
// index (square XOR 56), since the tables are written from White's
// point of view.

// naivePSQT is the single, non-tapered table used by NAIVE_PSQT. It
// follows the classic "simplified evaluation function" shape: pawns
// rewarded for central advance, knights and bishops for centralization,
// rooks for open files and the 7th rank, the king for staying castled.
var naivePSQT = [6][64]Score{
	pawnMG, knightMG, bishopMG, rookMG, queenMG, kingMG,
}

// Middlegame and endgame tables for the tapered PESTO term. The
// middlegame tables are the same arrays naivePSQT uses; the endgame
// tables differ from them only for pawns and the king.
var (
	pawnMG = [64]Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		0.05, 0.10, 0.10, -0.20, -0.20, 0.10, 0.10, 0.05,
		0.05, -0.05, -0.10, 0, 0, -0.10, -0.05, 0.05,
		0, 0, 0, 0.20, 0.20, 0, 0, 0,
		0.05, 0.05, 0.10, 0.25, 0.25, 0.10, 0.05, 0.05,
		0.10, 0.10, 0.20, 0.30, 0.30, 0.20, 0.10, 0.10,
		0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pawnEG = [64]Score{
		0, 0, 0, 0, 0, 0, 0, 0,
		0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10,
		0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10,
		0.20, 0.20, 0.20, 0.20, 0.20, 0.20, 0.20, 0.20,
		0.35, 0.35, 0.35, 0.35, 0.35, 0.35, 0.35, 0.35,
		0.60, 0.60, 0.60, 0.60, 0.60, 0.60, 0.60, 0.60,
		0.90, 0.90, 0.90, 0.90, 0.90, 0.90, 0.90, 0.90,
		0, 0, 0, 0, 0, 0, 0, 0,
	}

	knightMG = [64]Score{
		-0.50, -0.40, -0.30, -0.30, -0.30, -0.30, -0.40, -0.50,
		-0.40, -0.20, 0, 0, 0, 0, -0.20, -0.40,
		-0.30, 0, 0.10, 0.15, 0.15, 0.10, 0, -0.30,
		-0.30, 0.05, 0.15, 0.20, 0.20, 0.15, 0.05, -0.30,
		-0.30, 0, 0.15, 0.20, 0.20, 0.15, 0, -0.30,
		-0.30, 0.05, 0.10, 0.15, 0.15, 0.10, 0.05, -0.30,
		-0.40, -0.20, 0, 0.05, 0.05, 0, -0.20, -0.40,
		-0.50, -0.40, -0.30, -0.30, -0.30, -0.30, -0.40, -0.50,
	}
	knightEG = knightMG

	bishopMG = [64]Score{
		-0.20, -0.10, -0.10, -0.10, -0.10, -0.10, -0.10, -0.20,
		-0.10, 0, 0, 0, 0, 0, 0, -0.10,
		-0.10, 0, 0.05, 0.10, 0.10, 0.05, 0, -0.10,
		-0.10, 0.05, 0.05, 0.10, 0.10, 0.05, 0.05, -0.10,
		-0.10, 0, 0.10, 0.10, 0.10, 0.10, 0, -0.10,
		-0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, -0.10,
		-0.10, 0.05, 0, 0, 0, 0, 0.05, -0.10,
		-0.20, -0.10, -0.10, -0.10, -0.10, -0.10, -0.10, -0.20,
	}
	bishopEG = bishopMG

	rookMG = [64]Score{
		0, 0, 0, 0.05, 0.05, 0, 0, 0,
		-0.05, 0, 0, 0, 0, 0, 0, -0.05,
		-0.05, 0, 0, 0, 0, 0, 0, -0.05,
		-0.05, 0, 0, 0, 0, 0, 0, -0.05,
		-0.05, 0, 0, 0, 0, 0, 0, -0.05,
		-0.05, 0, 0, 0, 0, 0, 0, -0.05,
		0.05, 0.10, 0.10, 0.10, 0.10, 0.10, 0.10, 0.05,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	rookEG = rookMG

	queenMG = [64]Score{
		-0.20, -0.10, -0.10, -0.05, -0.05, -0.10, -0.10, -0.20,
		-0.10, 0, 0.05, 0, 0, 0, 0, -0.10,
		-0.10, 0.05, 0.05, 0.05, 0.05, 0.05, 0, -0.10,
		0, 0, 0.05, 0.05, 0.05, 0.05, 0, -0.05,
		-0.05, 0, 0.05, 0.05, 0.05, 0.05, 0, -0.05,
		-0.10, 0, 0.05, 0.05, 0.05, 0.05, 0, -0.10,
		-0.10, 0, 0, 0, 0, 0, 0, -0.10,
		-0.20, -0.10, -0.10, -0.05, -0.05, -0.10, -0.10, -0.20,
	}
	queenEG = queenMG

	kingMG = [64]Score{
		0.20, 0.30, 0.10, 0, 0, 0.10, 0.30, 0.20,
		0.20, 0.20, 0, 0, 0, 0, 0.20, 0.20,
		-0.10, -0.20, -0.20, -0.20, -0.20, -0.20, -0.20, -0.10,
		-0.20, -0.30, -0.30, -0.40, -0.40, -0.30, -0.30, -0.20,
		-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
		-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
		-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
		-0.30, -0.40, -0.40, -0.50, -0.50, -0.40, -0.40, -0.30,
	}
	kingEG = [64]Score{
		-0.50, -0.30, -0.30, -0.30, -0.30, -0.30, -0.30, -0.50,
		-0.30, -0.30, 0, 0, 0, 0, -0.30, -0.30,
		-0.30, -0.10, 0.20, 0.30, 0.30, 0.20, -0.10, -0.30,
		-0.30, -0.10, 0.30, 0.40, 0.40, 0.30, -0.10, -0.30,
		-0.30, -0.10, 0.30, 0.40, 0.40, 0.30, -0.10, -0.30,
		-0.30, -0.10, 0.20, 0.30, 0.30, 0.20, -0.10, -0.30,
		-0.30, -0.20, -0.10, 0, 0, -0.10, -0.20, -0.30,
		-0.50, -0.40, -0.30, -0.20, -0.20, -0.30, -0.40, -0.50,
	}
)

var pestoMG = [6][64]Score{pawnMG, knightMG, bishopMG, rookMG, queenMG, kingMG}
var pestoEG = [6][64]Score{pawnEG, knightEG, bishopEG, rookEG, queenEG, kingEG}

// mirror flips a square vertically (a1<->a8) so the same White-POV
// table can score a Black piece ("reverse colors").
func mirror(sq uint8) uint8 {
	return sq ^ 56
}
