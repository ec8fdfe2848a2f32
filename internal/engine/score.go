package engine

import "github.com/clavichord/chesscompare/internal/rules"

// Score is a signed evaluation scalar, always expressed from White's
// perspective: larger is better for White regardless of whose turn it
// is to move. It is a float64 rather than an integer because several
// evaluation terms are defined in the spec with half-point increments
// (pawn structure) or plain fractions (mobility, move count / 20);
// scaling those into integer centipawns would just reintroduce the
// rounding the spec avoids by stating them as fractions directly.
type Score float64

const (
	// ForcedLossForWhite is the sentinel for "Black has delivered
	// checkmate". It compares strictly below any achievable positional
	// score.
	ForcedLossForWhite Score = -1_000_000
	// ForcedWinForWhite is the sentinel for "White has delivered
	// checkmate". It compares strictly above any achievable positional
	// score.
	ForcedWinForWhite Score = 1_000_000
	// DrawScore is returned for stalemate and for positions that have
	// reached their third occurrence.
	DrawScore Score = 0
)

// Evaluation is the result carried by both eval() and a transposition
// entry: a possibly-absent score, the action that produced the best
// known continuation, and a slot for an incremental PSQT accumulator.
// NewEvaluation leaves PSQT at its zero value, and the search stores
// evaluations without filling it in.
type Evaluation struct {
	hasScore bool
	Score    Score
	Best     rules.Action
	PSQT     IncrementalPSQT
}

// NoEvaluation is the absent evaluation: "not yet established".
var NoEvaluation = Evaluation{}

// NewEvaluation builds a present evaluation with the given score and
// best continuation.
func NewEvaluation(score Score, best rules.Action) Evaluation {
	return Evaluation{hasScore: true, Score: score, Best: best}
}

// HasScore reports whether this evaluation carries an established
// score, as opposed to the zero-valued absent sentinel.
func (e Evaluation) HasScore() bool {
	return e.hasScore
}

// Better reports whether score a is a strict improvement over score b
// for the side identified by maximizing (true for White, false for
// Black).
func Better(a, b Score, maximizing bool) bool {
	if maximizing {
		return a > b
	}
	return a < b
}
